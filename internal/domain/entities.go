// Package domain holds the core entities and ports of the fit-scoring engine.
package domain

import (
	"context"
	"errors"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrExtractionUnavailable = errors.New("extraction unavailable")
	ErrRemoteTimeout         = errors.New("remote service timeout")
	ErrRemoteMalformed       = errors.New("remote service malformed payload")
	ErrRemoteUnavailable     = errors.New("remote service unavailable")
	ErrInsufficientInput     = errors.New("insufficient input")
	ErrInternal              = errors.New("internal error")
)

// Provenance identifies which tier produced an AnalysisResult.
type Provenance string

const (
	ProvenanceRemoteComprehensive Provenance = "remote-comprehensive"
	ProvenanceRemoteBasic         Provenance = "remote-basic"
	ProvenanceLocal               Provenance = "local"
)

// Entities groups coarse named entities recognized in resume text.
type Entities struct {
	Organizations  []string `json:"organizations"`
	Tools          []string `json:"tools"`
	Certifications []string `json:"certifications"`
}

// ExtractedProfile is the structured signal set pulled from raw resume text.
// Built once per analysis call and never mutated afterwards.
type ExtractedProfile struct {
	Skills          []string
	SoftSkills      []string
	Education       []string
	Languages       []string
	ExperienceYears int
	KeyPhrases      []string
	Entities        Entities
}

// AllSkills returns technical and transversal skills as one slice.
func (p ExtractedProfile) AllSkills() []string {
	out := make([]string, 0, len(p.Skills)+len(p.SoftSkills))
	out = append(out, p.Skills...)
	out = append(out, p.SoftSkills...)
	return out
}

// DomainScore is one professional domain with its affinity score.
type DomainScore struct {
	Domain string  `json:"domain"`
	Score  float64 `json:"score"`
}

// FitScoreBreakdown carries every sub-score in [0,100] plus the weighted composite.
type FitScoreBreakdown struct {
	SkillScore        int `json:"skill_score"`
	ExperienceScore   int `json:"experience_score"`
	EducationScore    int `json:"education_score"`
	SemanticScore     int `json:"semantic_score"`
	PresentationScore int `json:"presentation_score"`
	CoherenceScore    int `json:"coherence_score"`
	SectorScore       int `json:"sector_score"`
	ATSKeywordCount   int `json:"ats_keyword_count"`
	CompositeScore    int `json:"composite_score"`
}

// CognitiveProfile mirrors the soft-signal block remote tiers return.
// Local and basic-tier results carry conservative constants.
type CognitiveProfile struct {
	Communication      int `json:"communication"`
	Leadership         int `json:"leadership"`
	ProblemSolving     int `json:"problem_solving"`
	Teamwork           int `json:"teamwork"`
	Creativity         int `json:"creativity"`
	Adaptability       int `json:"adaptability"`
	LearningAgility    int `json:"learning_agility"`
	AnalyticalThinking int `json:"analytical_thinking"`
	OverallScore       int `json:"overall_score"`
}

// CareerTrajectory summarizes career progression signals.
type CareerTrajectory struct {
	CareerPath        string `json:"career_path"`
	ProgressionRate   int    `json:"progression_rate"`
	Stability         int    `json:"stability"`
	PotentialFit      int    `json:"potential_fit"`
	GrowthPotential   string `json:"growth_potential"`
	TrajectorySummary string `json:"trajectory_summary"`
}

// AnalysisResult is the terminal artifact of one analysis call.
// Recomputed fresh on every call; uniform across tiers.
type AnalysisResult struct {
	Summary         string            `json:"summary"`
	Strengths       []string          `json:"strengths"`
	Weaknesses      []string          `json:"weaknesses"`
	Recommendations []string          `json:"recommendations"`
	FitScore        int               `json:"fit_score"`
	FitAnalysis     string            `json:"fit_analysis"`
	Provenance      Provenance        `json:"provenance"`
	Breakdown       FitScoreBreakdown `json:"breakdown"`
	DomainScores    []DomainScore     `json:"domain_scores"`
	PrimaryDomain   string            `json:"primary_domain,omitempty"`
	KeyPhrases      []string          `json:"key_phrases"`
	Entities        Entities          `json:"entities"`
	ATSKeywords     []string          `json:"ats_keywords"`
	Cognitive       CognitiveProfile  `json:"cognitive_profile"`
	Trajectory      CareerTrajectory  `json:"career_trajectory"`
}

// JobMetadata is optional context about the posting forwarded to remote tiers.
type JobMetadata struct {
	Type     string `json:"type"`
	Level    string `json:"level"`
	Industry string `json:"industry"`
}

// AnalyzeInput is the full input to one analysis invocation.
type AnalyzeInput struct {
	ResumeText     string
	JobText        string
	JobMetadata    *JobMetadata
	RequiredSkills []string
}

// Provider is one scoring tier. TryAnalyze returns a complete result or an
// error that signals advancement to the next tier. Implementations must not
// retry internally.
type Provider interface {
	Name() string
	Provenance() Provenance
	TryAnalyze(ctx Context, in AnalyzeInput) (AnalysisResult, error)
}

// TextExtractor resolves a document reference to plain text.
// Implementations may call external services (e.g., Tika).
type TextExtractor interface {
	ExtractPath(ctx Context, fileName, path string) (string, error)
}

// Context aliases context.Context so adapters and usecases pass it through.
type Context = context.Context
