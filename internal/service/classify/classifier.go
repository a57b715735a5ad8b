// Package classify scores resume affinity to the professional-domain
// registry from keyword frequency plus key-phrase co-occurrence.
package classify

import (
	"sort"

	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
	"github.com/fairyhunter13/resume-fit-engine/internal/lexicon"
	"github.com/fairyhunter13/resume-fit-engine/pkg/textx"
)

const (
	occurrenceWeight = 2
	keyPhraseWeight  = 3
)

// Classifier ranks domains for one extracted profile. Safe for concurrent use.
type Classifier struct {
	lex *lexicon.Lexicon
}

// New constructs a Classifier over the given lexicon.
func New(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// Classify scores every registry domain against the raw text and the
// profile's key phrases. Domains scoring zero are dropped; the remainder is
// sorted descending with registry order as the tie-break.
func (c *Classifier) Classify(profile domain.ExtractedProfile, rawText string) []domain.DomainScore {
	var scores []domain.DomainScore
	for _, d := range c.lex.Domains {
		s := c.scoreDomain(d, profile.KeyPhrases, rawText)
		if s > 0 {
			scores = append(scores, domain.DomainScore{Domain: d.Name, Score: s})
		}
	}
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].Score > scores[b].Score
	})
	return scores
}

func (c *Classifier) scoreDomain(d lexicon.Domain, keyPhrases []string, rawText string) float64 {
	score := 0.0
	for _, kw := range d.Keywords {
		score += float64(occurrenceWeight * textx.CountWord(rawText, kw))
		for _, phrase := range keyPhrases {
			if textx.ContainsFold(phrase, kw) {
				score += keyPhraseWeight
			}
		}
	}
	return score
}

// Primary returns the top-scoring domain, or empty when none cleared zero.
// Callers must tolerate the empty result.
func Primary(scores []domain.DomainScore) string {
	if len(scores) == 0 {
		return ""
	}
	return scores[0].Domain
}

// Secondary returns up to n runner-up domains.
func Secondary(scores []domain.DomainScore, n int) []string {
	var out []string
	for i := 1; i < len(scores) && len(out) < n; i++ {
		out = append(out, scores[i].Domain)
	}
	return out
}
