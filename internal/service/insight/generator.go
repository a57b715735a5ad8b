// Package insight turns sub-scores and extracted facts into qualitative
// strengths, weaknesses, ranked recommendations and a narrative summary.
package insight

import (
	"fmt"
	"strings"

	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
	"github.com/fairyhunter13/resume-fit-engine/internal/lexicon"
	"github.com/fairyhunter13/resume-fit-engine/pkg/textx"
)

const (
	maxStrengths       = 5
	maxWeaknesses      = 5
	maxRecommendations = 5

	presentationThreshold = 65
	coherenceThreshold    = 70
	sectorThreshold       = 70
	atsCountThreshold     = 6
)

// Generator produces the qualitative half of an AnalysisResult. Safe for
// concurrent use.
type Generator struct {
	lex *lexicon.Lexicon
}

// New constructs a Generator over the given lexicon.
func New(lex *lexicon.Lexicon) *Generator {
	return &Generator{lex: lex}
}

// Input carries everything the generator reads. ResumeText is consulted for
// collaboration and achievement language only.
type Input struct {
	Profile       domain.ExtractedProfile
	Breakdown     domain.FitScoreBreakdown
	PrimaryDomain string
	ATSKeywords   []string
	ResumeText    string
}

// Generate fills the narrative fields of a result. FitScore and Provenance
// are owned by the caller.
func (g *Generator) Generate(in Input) domain.AnalysisResult {
	hasCollaboration := textx.ContainsFold(in.ResumeText, "team") || textx.ContainsFold(in.ResumeText, "collaborat")
	hasAchievements := textx.ContainsFold(in.ResumeText, "project") || textx.ContainsFold(in.ResumeText, "achievement") || textx.ContainsFold(in.ResumeText, "delivered")
	hasOutcomes := textx.ContainsFold(in.ResumeText, "result") || textx.ContainsFold(in.ResumeText, "impact")

	return domain.AnalysisResult{
		Summary:         g.summary(in),
		Strengths:       g.strengths(in, hasCollaboration, hasAchievements),
		Weaknesses:      g.weaknesses(in, hasCollaboration, hasOutcomes, hasAchievements),
		Recommendations: g.recommendations(in, hasOutcomes),
		FitAnalysis:     g.fitAnalysis(in),
		Breakdown:       in.Breakdown,
		PrimaryDomain:   in.PrimaryDomain,
		KeyPhrases:      in.Profile.KeyPhrases,
		Entities:        in.Profile.Entities,
		ATSKeywords:     topN(in.ATSKeywords, 10),
	}
}

func (g *Generator) strengths(in Input, hasCollaboration, hasAchievements bool) []string {
	var out []string
	if len(in.Profile.Skills) >= 3 {
		out = append(out, fmt.Sprintf("Relevant technical skills including %s", strings.Join(topN(in.Profile.Skills, 3), ", ")))
	}
	if in.Profile.ExperienceYears > 0 {
		out = append(out, fmt.Sprintf("%d years of professional experience", in.Profile.ExperienceYears))
	}
	if hasCollaboration {
		out = append(out, "Demonstrated teamwork and collaboration experience")
	}
	if hasAchievements {
		out = append(out, "Concrete projects demonstrating applied expertise")
	}
	if len(out) == 0 {
		out = append(out, "Complete profile presenting relevant experience")
	}
	return topN(out, maxStrengths)
}

func (g *Generator) weaknesses(in Input, hasCollaboration, hasOutcomes, hasAchievements bool) []string {
	var out []string
	if len(in.Profile.Skills) < 3 {
		out = append(out, "Limited technical skills identified in the resume")
	}
	if in.Profile.ExperienceYears == 0 {
		out = append(out, "Professional experience is not clearly quantified")
	}
	if !hasCollaboration {
		out = append(out, "No teamwork or collaboration language found")
	}
	if !hasOutcomes && !hasAchievements {
		out = append(out, "Few details on concrete, measurable achievements")
	}
	if len(out) == 0 {
		out = append(out, "Some key skills could be described in more detail")
	}
	return topN(out, maxWeaknesses)
}

// recommendations are ordered most-impactful first; each one is tied to a
// specific measured deficiency.
func (g *Generator) recommendations(in Input, hasOutcomes bool) []string {
	var out []string
	if in.Breakdown.SkillScore < 70 {
		out = append(out, "Tailor the resume to the posting by foregrounding the skills it asks for")
	}
	if in.Breakdown.ATSKeywordCount < atsCountThreshold {
		out = append(out, "Mirror the posting's terminology so applicant tracking filters pick the resume up")
	}
	if in.Breakdown.CoherenceScore < coherenceThreshold {
		out = append(out, "Back each claimed skill with a concrete example inside the experience section")
	}
	if in.Breakdown.PresentationScore < presentationThreshold {
		out = append(out, "Restructure the resume into clearly labeled sections with a tighter format")
	}
	if in.Breakdown.SectorScore < sectorThreshold {
		out = append(out, "Reinforce sector-specific vocabulary to demonstrate domain familiarity")
	}
	if !hasOutcomes {
		out = append(out, "Quantify achievements with measurable results for each experience entry")
	}
	if len(in.ATSKeywords) > 0 {
		out = append(out, fmt.Sprintf("Develop the key skills already recognized as relevant: %s", strings.Join(topN(in.ATSKeywords, 3), ", ")))
	}
	if len(out) == 0 {
		out = append(out, "Align the resume more closely with the requirements of the target role")
	}
	return topN(out, maxRecommendations)
}

func (g *Generator) summary(in Input) string {
	var b strings.Builder
	if in.PrimaryDomain != "" {
		b.WriteString(fmt.Sprintf("Profile in the %s domain", in.PrimaryDomain))
	} else {
		b.WriteString("Professional profile")
	}
	if in.Profile.ExperienceYears > 0 {
		b.WriteString(fmt.Sprintf(" with %d years of experience", in.Profile.ExperienceYears))
	} else {
		b.WriteString(" with unquantified experience")
	}
	b.WriteString(". ")
	if len(in.Profile.Skills) > 0 {
		b.WriteString(fmt.Sprintf("Technical skills include %s. ", strings.Join(topN(in.Profile.Skills, 3), ", ")))
	}
	b.WriteString(fmt.Sprintf("Matches %d%% of the target role.", in.Breakdown.CompositeScore))
	return b.String()
}

func (g *Generator) fitAnalysis(in Input) string {
	score := in.Breakdown.CompositeScore
	var b strings.Builder
	b.WriteString(fmt.Sprintf("The candidate matches the target profile at %d%%. ", score))

	atsPotential := "needs improvement"
	switch {
	case in.Breakdown.ATSKeywordCount >= 7:
		atsPotential = "high"
	case in.Breakdown.ATSKeywordCount >= 4:
		atsPotential = "medium"
	}
	b.WriteString(fmt.Sprintf("ATS filter pass potential: %s. ", atsPotential))

	switch {
	case score >= 85:
		b.WriteString("Strongly recommended profile, exceptional match for this role.")
	case score >= 70:
		b.WriteString("This application deserves particular attention, with strong assets.")
	case score >= 60:
		b.WriteString("Moderate match with specific points to develop for an optimal fit.")
	default:
		b.WriteString("Profile shows gaps against the main requirements; needs improvement.")
	}
	return b.String()
}

func topN(in []string, n int) []string {
	if len(in) <= n {
		return in
	}
	return in[:n]
}
