// Package extract pulls structured signals out of raw resume text.
//
// Extraction is pure pattern and keyword matching against the shared
// lexicon: skills, education mentions, experience years, languages, key
// phrases and coarse named entities. It never fails; degenerate input
// yields an empty profile.
package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
	"github.com/fairyhunter13/resume-fit-engine/internal/lexicon"
	"github.com/fairyhunter13/resume-fit-engine/pkg/textx"
)

const (
	minSentenceLen = 15
	maxKeyPhrases  = 10
)

var (
	experienceYearsRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s+)?(?:experience|work)`)
	yearRe            = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	digitRe           = regexp.MustCompile(`\d`)
)

// Extractor builds ExtractedProfiles from raw text. Safe for concurrent use;
// the lexicon and compiled patterns are never mutated.
type Extractor struct {
	lex          *lexicon.Lexicon
	orgRe        *regexp.Regexp
	vendorToolRe *regexp.Regexp
}

// New constructs an Extractor over the given lexicon. The organization and
// vendor-tool recognizers are compiled from the lexicon's suffix and vendor
// inventories.
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{
		lex:          lex,
		orgRe:        regexp.MustCompile(`\b(?:[A-Z][a-zA-Z]*\s+){1,3}(?:` + alternation(lex.OrgSuffixes) + `)`),
		vendorToolRe: regexp.MustCompile(`\b(?:` + alternation(lex.ToolVendors) + `)\s+[A-Za-z][A-Za-z0-9]*\b`),
	}
}

func alternation(terms []string) string {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		quoted = append(quoted, regexp.QuoteMeta(t))
	}
	return strings.Join(quoted, "|")
}

// Extract builds a profile from text. Empty or near-empty input returns a
// profile with empty collections and zero experience years.
func (e *Extractor) Extract(text string) domain.ExtractedProfile {
	text = textx.SanitizeText(text)
	if text == "" {
		return domain.ExtractedProfile{}
	}
	return domain.ExtractedProfile{
		Skills:          matchVocabulary(text, e.lex.TechnicalSkills),
		SoftSkills:      matchVocabulary(text, e.lex.SoftSkills),
		Education:       e.educationSentences(text),
		Languages:       matchVocabulary(text, e.lex.Languages),
		ExperienceYears: ExperienceYears(text),
		KeyPhrases:      e.keyPhrases(text),
		Entities:        e.entities(text),
	}
}

// ExperienceYears returns the first "<N> years of experience" style match,
// or 0 when absent.
func ExperienceYears(text string) int {
	m := experienceYearsRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// matchVocabulary collects vocabulary terms present in text (word-boundary,
// case-insensitive), preserving vocabulary order and deduplicating.
func matchVocabulary(text string, vocab []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(vocab))
	for _, term := range vocab {
		key := strings.ToLower(term)
		if _, dup := seen[key]; dup {
			continue
		}
		if textx.ContainsWord(text, term) {
			out = append(out, term)
			seen[key] = struct{}{}
		}
	}
	return out
}

// educationSentences returns sentences mentioning an education keyword,
// trimmed and deduplicated, in document order.
func (e *Extractor) educationSentences(text string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, s := range textx.Sentences(text) {
		for _, kw := range e.lex.EducationKeywords {
			if textx.ContainsWord(s, kw) {
				if _, dup := seen[s]; !dup {
					out = append(out, s)
					seen[s] = struct{}{}
				}
				break
			}
		}
	}
	return out
}

type scoredSentence struct {
	text  string
	score int
	order int
}

// keyPhrases scores each sentence by professional information density and
// returns the top phrases, best first, ties broken by document order.
func (e *Extractor) keyPhrases(text string) []string {
	var scored []scoredSentence
	for i, s := range textx.Sentences(text) {
		if len(s) < minSentenceLen {
			continue
		}
		scored = append(scored, scoredSentence{text: s, score: e.scoreSentence(s), order: i})
	}
	sort.SliceStable(scored, func(a, b int) bool {
		if scored[a].score != scored[b].score {
			return scored[a].score > scored[b].score
		}
		return scored[a].order < scored[b].order
	})
	n := len(scored)
	if n > maxKeyPhrases {
		n = maxKeyPhrases
	}
	out := make([]string, 0, n)
	for _, sc := range scored[:n] {
		out = append(out, sc.text)
	}
	return out
}

func (e *Extractor) scoreSentence(s string) int {
	score := 0
	for _, w := range e.lex.SignificantWords {
		if textx.ContainsWord(s, w) {
			score += 2
		}
	}
	for _, p := range e.lex.ProfessionalPhrases {
		if textx.ContainsFold(s, p) {
			score += 5
		}
	}
	if yearRe.MatchString(s) {
		score += 3
	}
	if digitRe.MatchString(s) {
		score += 2
	}
	if len(s) > 30 && len(s) < 150 {
		score += 2
	}
	return score
}

// entities runs the pattern-based recognizers for organizations, tools and
// certifications. All outputs are deduplicated.
func (e *Extractor) entities(text string) domain.Entities {
	orgs := dedup(e.orgRe.FindAllString(text, -1))

	tools := e.vendorToolRe.FindAllString(text, -1)
	for _, t := range e.lex.Tools {
		if textx.ContainsWord(text, t) {
			tools = append(tools, t)
		}
	}

	var certs []string
	for _, c := range e.lex.CertificationTerms {
		if textx.ContainsFold(text, c) {
			certs = append(certs, c)
		}
	}

	return domain.Entities{
		Organizations:  orgs,
		Tools:          dedup(tools),
		Certifications: dedup(certs),
	}
}

func dedup(in []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		out = append(out, s)
		seen[key] = struct{}{}
	}
	return out
}
