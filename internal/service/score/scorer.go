// Package score computes the multi-factor fit breakdown between an
// extracted resume profile and a job description.
//
// Every sub-score is a deterministic base-plus-adjustment heuristic clamped
// to [0,100]. When the job text is empty, overlap-based scores fall back to
// their base values instead of dividing by zero.
package score

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
	"github.com/fairyhunter13/resume-fit-engine/internal/lexicon"
	"github.com/fairyhunter13/resume-fit-engine/pkg/textx"
)

var (
	yearRangeRe = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s*[-–—]\s*(?:(?:19|20)\d{2}|present)|\bsince\s+(?:19|20)\d{2}`)
	bulletRe    = regexp.MustCompile(`(?m)•|^\s*[-*]|\d+\.`)
	wordRe      = regexp.MustCompile(`[a-zA-Z][a-zA-Z'\-]{3,}`)
)

// Scorer computes FitScoreBreakdowns. Safe for concurrent use.
type Scorer struct {
	lex *lexicon.Lexicon
	w   Weights
}

// New constructs a Scorer with the given lexicon and weights.
func New(lex *lexicon.Lexicon, w Weights) *Scorer {
	return &Scorer{lex: lex, w: w}
}

// Score combines all sub-scores into one breakdown. atsKeywords should come
// from ATSKeywords on the same inputs so the bonus and the reported list
// agree.
func (s *Scorer) Score(profile domain.ExtractedProfile, domainScores []domain.DomainScore, resumeText, jobText string, atsKeywords []string) domain.FitScoreBreakdown {
	primary := ""
	if len(domainScores) > 0 {
		primary = domainScores[0].Domain
	}

	b := domain.FitScoreBreakdown{
		SkillScore:        s.skillScore(resumeText, jobText),
		ExperienceScore:   s.experienceScore(profile, resumeText),
		EducationScore:    s.educationScore(profile, resumeText),
		SemanticScore:     s.semanticScore(resumeText, jobText),
		PresentationScore: s.presentationScore(resumeText),
		CoherenceScore:    s.coherenceScore(resumeText, profile.AllSkills()),
		SectorScore:       s.sectorScore(resumeText, jobText, primary),
		ATSKeywordCount:   len(atsKeywords),
	}
	b.CompositeScore = s.composite(b)
	return b
}

// skillScore averages the base with the fraction of job-relevant vocabulary
// keywords found in the resume. Empty job text keeps the base.
func (s *Scorer) skillScore(resumeText, jobText string) int {
	if strings.TrimSpace(jobText) == "" {
		return clamp(s.w.SkillBase)
	}
	var jobKeywords []string
	for _, kw := range s.lex.AllSkills() {
		if textx.ContainsWord(jobText, kw) {
			jobKeywords = append(jobKeywords, kw)
		}
	}
	if len(jobKeywords) == 0 {
		return clamp(s.w.SkillBase)
	}
	matched := 0
	for _, kw := range jobKeywords {
		if textx.ContainsWord(resumeText, kw) {
			matched++
		}
	}
	ratio := float64(matched) / float64(len(jobKeywords))
	raw := int(math.Round((float64(s.w.SkillBase) + ratio*100) / 2))
	if raw < s.w.SkillFloor {
		raw = s.w.SkillFloor
	}
	if raw > s.w.SkillCeil {
		raw = s.w.SkillCeil
	}
	return clamp(raw)
}

// experienceScore rewards quantified years and visible experience context.
func (s *Scorer) experienceScore(profile domain.ExtractedProfile, resumeText string) int {
	v := s.w.ExperienceBase
	if profile.ExperienceYears > 0 {
		bonus := profile.ExperienceYears * 5
		if bonus > 30 {
			bonus = 30
		}
		v += bonus
	}
	for _, kw := range s.lex.ExperienceKeywords {
		if textx.ContainsWord(resumeText, kw) {
			v += 10
			break
		}
	}
	if yearRangeRe.MatchString(resumeText) {
		v += 5
	}
	return clamp(v)
}

// educationScore rewards the highest detected degree level plus the presence
// of any education mention at all.
func (s *Scorer) educationScore(profile domain.ExtractedProfile, resumeText string) int {
	v := s.w.EducationBase
	for _, level := range s.lex.EducationLevels {
		found := false
		for _, kw := range level.Keywords {
			if textx.ContainsFold(resumeText, kw) {
				found = true
				break
			}
		}
		if found {
			v += level.Score
			break
		}
	}
	if len(profile.Education) > 0 {
		v += 5
	}
	return clamp(v)
}

// semanticScore approximates a semantic-similarity signal from shared
// high-value terms and document length density.
func (s *Scorer) semanticScore(resumeText, jobText string) int {
	v := s.w.SemanticBase
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return clamp(v)
	}
	for _, term := range s.lex.HighValueTerms {
		if textx.ContainsWord(resumeText, term) && textx.ContainsWord(jobText, term) {
			v += 4
		}
	}
	rw := textx.WordCount(resumeText)
	jw := textx.WordCount(jobText)
	if rw*2 < jw {
		v -= 10
	}
	if rw > 300 && rw < 1500 {
		v += 5
	}
	return clamp(v)
}

// presentationScore judges structure: length band, canonical sections,
// bullet density.
func (s *Scorer) presentationScore(text string) int {
	v := s.w.PresentationBase

	wc := textx.WordCount(text)
	switch {
	case wc < 200:
		v -= 15
	case wc > 1000:
		v -= 10
	case wc > 700:
		v += 5
	case wc >= 300:
		v += 10
	}

	sections := 0
	for _, group := range s.lex.SectionMarkers {
		for _, marker := range group {
			if textx.ContainsFold(text, marker) {
				sections++
				break
			}
		}
	}
	switch {
	case sections >= 4:
		v += 15
	case sections >= 3:
		v += 10
	case sections <= 1:
		v -= 15
	}

	bullets := len(bulletRe.FindAllString(text, -1))
	switch {
	case bullets > 15:
		v += 10
	case bullets < 5:
		v -= 5
	}
	return clamp(v)
}

// coherenceScore measures what fraction of claimed skills show up inside
// experience-context paragraphs.
func (s *Scorer) coherenceScore(text string, skills []string) int {
	v := s.w.CoherenceBase
	if len(skills) == 0 {
		return clamp(v)
	}
	sections := s.experienceSections(text)
	inContext := 0
	for _, skill := range skills {
		for _, section := range sections {
			if textx.ContainsWord(section, skill) {
				inContext++
				break
			}
		}
	}
	ratio := float64(inContext) / float64(len(skills))
	switch {
	case ratio > 0.7:
		v += 25
	case ratio > 0.5:
		v += 15
	case ratio > 0.3:
		v += 5
	case ratio < 0.1:
		v -= 15
	}
	return clamp(v)
}

// experienceSections returns paragraphs that look like employment history:
// they mention an experience keyword or carry a year-range pattern.
func (s *Scorer) experienceSections(text string) []string {
	var out []string
	for _, p := range textx.Paragraphs(text) {
		keep := yearRangeRe.MatchString(p)
		if !keep {
			for _, kw := range s.lex.ExperienceKeywords {
				if textx.ContainsWord(p, kw) {
					keep = true
					break
				}
			}
		}
		if keep {
			out = append(out, p)
		}
	}
	return out
}

// sectorScore measures primary-domain vocabulary density, with a half-point
// bonus per keyword echoed by the job text. No detected domain keeps the base.
func (s *Scorer) sectorScore(resumeText, jobText, primaryDomain string) int {
	v := s.w.SectorBase
	d := s.lex.DomainByName(primaryDomain)
	if d == nil || len(d.SectorKeywords) == 0 {
		return clamp(v)
	}
	matches := 0.0
	for _, kw := range d.SectorKeywords {
		if textx.ContainsWord(resumeText, kw) {
			matches++
		}
		if jobText != "" && textx.ContainsWord(jobText, kw) {
			matches += 0.5
		}
	}
	ratio := matches / float64(len(d.SectorKeywords))
	switch {
	case ratio > 0.7:
		v += 30
	case ratio > 0.5:
		v += 20
	case ratio > 0.3:
		v += 10
	case ratio < 0.2:
		v -= 10
	}
	return clamp(v)
}

// composite applies the fixed weights plus the capped ATS keyword bonus.
func (s *Scorer) composite(b domain.FitScoreBreakdown) int {
	weighted := float64(b.SkillScore)*s.w.Skill +
		float64(b.PresentationScore)*s.w.Presentation +
		float64(b.CoherenceScore)*s.w.Coherence +
		float64(b.SectorScore)*s.w.Sector +
		float64(b.SemanticScore)*s.w.Semantic +
		float64(b.ExperienceScore)*s.w.Experience
	bonus := float64(b.ATSKeywordCount) * s.w.ATSKeywordBonus
	if bonus > s.w.ATSBonusCap {
		bonus = s.w.ATSBonusCap
	}
	return clamp(int(math.Round(weighted + bonus)))
}

// ATSKeywords returns job-description terms an applicant tracking system
// would likely search for that the resume actually contains: the top-20 most
// frequent significant job words, required skills echoed by the resume, and
// qualifying-term phrases.
func (s *Scorer) ATSKeywords(resumeText, jobText string, requiredSkills []string) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(kw string) {
		kw = strings.TrimSpace(kw)
		if kw == "" || len(kw) >= 40 {
			return
		}
		key := strings.ToLower(kw)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, kw)
	}

	for _, jobWord := range s.frequentJobWords(jobText) {
		if textx.ContainsWord(resumeText, jobWord) {
			add(jobWord)
		}
	}
	for _, skill := range requiredSkills {
		if textx.ContainsWord(resumeText, skill) {
			add(skill)
		}
	}
	for _, term := range s.lex.QualifyingTerms {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\s+[\w\s]{3,30}`)
		for _, m := range re.FindAllString(resumeText, -1) {
			add(m)
		}
	}
	return out
}

// frequentJobWords returns the 20 most frequent significant words of the job
// description, most frequent first, alphabetical on ties for determinism.
func (s *Scorer) frequentJobWords(jobText string) []string {
	if strings.TrimSpace(jobText) == "" {
		return nil
	}
	stop := make(map[string]struct{}, len(s.lex.StopWords))
	for _, w := range s.lex.StopWords {
		stop[w] = struct{}{}
	}
	freq := make(map[string]int)
	for _, w := range wordRe.FindAllString(strings.ToLower(jobText), -1) {
		if _, skip := stop[w]; skip {
			continue
		}
		freq[w]++
	}
	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(a, b int) bool {
		if freq[words[a]] != freq[words[b]] {
			return freq[words[a]] > freq[words[b]]
		}
		return words[a] < words[b]
	})
	if len(words) > 20 {
		words = words[:20]
	}
	return words
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
