// Package lexicon loads the keyword inventories and domain registry the
// engine scores against. The data is read-only configuration: parsed once at
// startup, shared across concurrent analyses, never mutated.
package lexicon

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var embedded []byte

// EducationLevel is one rung of the degree ladder with its score contribution.
type EducationLevel struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Score    int      `yaml:"score"`
}

// Domain is one entry of the professional-domain registry. Registry order is
// the deterministic tie-break when affinity scores are equal.
type Domain struct {
	Name           string   `yaml:"name"`
	Keywords       []string `yaml:"keywords"`
	SectorKeywords []string `yaml:"sector_keywords"`
}

// Lexicon is the full vocabulary set.
type Lexicon struct {
	TechnicalSkills     []string         `yaml:"technical_skills"`
	SoftSkills          []string         `yaml:"soft_skills"`
	Languages           []string         `yaml:"languages"`
	EducationKeywords   []string         `yaml:"education_keywords"`
	EducationLevels     []EducationLevel `yaml:"education_levels"`
	SignificantWords    []string         `yaml:"significant_words"`
	ProfessionalPhrases []string         `yaml:"professional_phrases"`
	SectionMarkers      [][]string       `yaml:"section_markers"`
	ExperienceKeywords  []string         `yaml:"experience_keywords"`
	HighValueTerms      []string         `yaml:"high_value_terms"`
	StopWords           []string         `yaml:"stop_words"`
	QualifyingTerms     []string         `yaml:"qualifying_terms"`
	Tools               []string         `yaml:"tools"`
	ToolVendors         []string         `yaml:"tool_vendors"`
	OrgSuffixes         []string         `yaml:"org_suffixes"`
	CertificationTerms  []string         `yaml:"certification_terms"`
	Domains             []Domain         `yaml:"domains"`
}

// AllSkills returns the technical and transversal vocabularies as one slice.
func (l *Lexicon) AllSkills() []string {
	out := make([]string, 0, len(l.TechnicalSkills)+len(l.SoftSkills))
	out = append(out, l.TechnicalSkills...)
	out = append(out, l.SoftSkills...)
	return out
}

// DomainByName returns the registry entry for name, or nil.
func (l *Lexicon) DomainByName(name string) *Domain {
	for i := range l.Domains {
		if l.Domains[i].Name == name {
			return &l.Domains[i]
		}
	}
	return nil
}

func (l *Lexicon) validate() error {
	if len(l.TechnicalSkills) == 0 {
		return fmt.Errorf("lexicon: technical_skills empty")
	}
	if len(l.Domains) == 0 {
		return fmt.Errorf("lexicon: domain registry empty")
	}
	for _, d := range l.Domains {
		if d.Name == "" || len(d.Keywords) == 0 {
			return fmt.Errorf("lexicon: domain entry incomplete")
		}
	}
	return nil
}

func parse(b []byte) (*Lexicon, error) {
	var l Lexicon
	if err := yaml.Unmarshal(b, &l); err != nil {
		return nil, fmt.Errorf("op=lexicon.parse: %w", err)
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Default parses the embedded lexicon document.
func Default() (*Lexicon, error) {
	return parse(embedded)
}

// Load reads a lexicon override from path, falling back to the embedded
// document when path is empty.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path) //nolint:gosec // operator-provided config path
	if err != nil {
		return nil, fmt.Errorf("op=lexicon.Load path=%s: %w", path, err)
	}
	return parse(b)
}
