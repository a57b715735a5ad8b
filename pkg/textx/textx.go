// Package textx provides small text utilities used across the project.
package textx

import (
	"strings"
	"unicode"
)

// SanitizeText removes control characters except tab/newline/CR and trims spaces.
func SanitizeText(s string) string {
	// strip control chars outside tab/newline/carriage return
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Sentences splits text on sentence terminators and returns trimmed,
// non-empty segments in original order.
func Sentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Paragraphs splits text on blank lines and returns trimmed, non-empty blocks.
func Paragraphs(text string) []string {
	norm := strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(norm, "\n\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// WordCount returns the number of whitespace-separated tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ContainsWord reports whether term occurs in text delimited by non-word
// runes. Matching is case-insensitive.
func ContainsWord(text, term string) bool {
	return CountWord(text, term) > 0
}

// CountWord counts non-overlapping boundary-delimited occurrences of term.
// Terms carrying punctuation (c++, node.js, ci/cd) have their boundary
// satisfied by the punctuation itself.
func CountWord(text, term string) int {
	if term == "" {
		return 0
	}
	lt := strings.ToLower(text)
	tm := strings.ToLower(term)
	count := 0
	for start := 0; ; {
		idx := strings.Index(lt[start:], tm)
		if idx < 0 {
			break
		}
		abs := start + idx
		end := abs + len(tm)
		beforeOK := abs == 0 || !isWordRune(rune(lt[abs-1])) || !isWordRune(rune(tm[0]))
		afterOK := end == len(lt) || !isWordRune(rune(lt[end])) || !isWordRune(rune(tm[len(tm)-1]))
		if beforeOK && afterOK {
			count++
			start = end
		} else {
			start = abs + 1
		}
	}
	return count
}

// ContainsFold reports whether substr occurs anywhere in s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
