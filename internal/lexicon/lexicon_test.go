package lexicon_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-fit-engine/internal/lexicon"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	lex, err := lexicon.Default()
	require.NoError(t, err)
	assert.NotEmpty(t, lex.TechnicalSkills)
	assert.NotEmpty(t, lex.SoftSkills)
	assert.NotEmpty(t, lex.Domains)
	assert.NotEmpty(t, lex.StopWords)
	assert.NotEmpty(t, lex.SectionMarkers)
	for _, d := range lex.Domains {
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Keywords, "domain %s", d.Name)
		assert.NotEmpty(t, d.SectorKeywords, "domain %s", d.Name)
	}
	// degree ladder must be ordered highest first so the first hit wins
	require.GreaterOrEqual(t, len(lex.EducationLevels), 2)
	for i := 1; i < len(lex.EducationLevels); i++ {
		assert.Greater(t, lex.EducationLevels[i-1].Score, lex.EducationLevels[i].Score)
	}
}

func TestAllSkills(t *testing.T) {
	t.Parallel()
	lex, err := lexicon.Default()
	require.NoError(t, err)
	all := lex.AllSkills()
	assert.Len(t, all, len(lex.TechnicalSkills)+len(lex.SoftSkills))
}

func TestDomainByName(t *testing.T) {
	t.Parallel()
	lex, err := lexicon.Default()
	require.NoError(t, err)
	require.NotNil(t, lex.DomainByName("technology"))
	assert.Nil(t, lex.DomainByName("astrology"))
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	t.Parallel()
	lex, err := lexicon.Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, lex.Domains)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := lexicon.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidDocument(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(p, []byte("technical_skills: []\n"), 0o600))
	_, err := lexicon.Load(p)
	require.Error(t, err)
}
