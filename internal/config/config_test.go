package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pr-copilot-config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Contains(t, cfg.ReviewHandling.ActionableKeywords, "please")
	assert.Contains(t, cfg.ReviewHandling.ActionableKeywords, "nit")
	assert.Contains(t, cfg.ReviewHandling.ActionableKeywords, "typo")
	assert.Len(t, cfg.ReviewHandling.ActionableKeywords, 11)
}

func TestLoadFrom_ReadsKeywords(t *testing.T) {
	path := writeConfig(t, `
review_handling:
  actionable_keywords:
    - urgent
    - blocker
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"urgent", "blocker"}, cfg.ReviewHandling.ActionableKeywords)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "review_handling: [unclosed")

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadFrom_EmptyKeywordListFallsBack(t *testing.T) {
	path := writeConfig(t, `
review_handling:
  actionable_keywords: []
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.ReviewHandling.ActionableKeywords)
	assert.Contains(t, cfg.ReviewHandling.ActionableKeywords, "fix")
}

func TestLoadFrom_HistoryDatabaseURL(t *testing.T) {
	path := writeConfig(t, `
report:
  history_database_url: sqlite:///history.db
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	t.Setenv("DATABASE_URL", "")
	assert.Equal(t, "sqlite:///history.db", cfg.HistoryDatabaseURL())

	t.Setenv("DATABASE_URL", "sqlite:///:memory:")
	assert.Equal(t, "sqlite:///:memory:", cfg.HistoryDatabaseURL())
}

func TestHistoryDatabaseURL_DisabledByDefault(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.HistoryDatabaseURL())
}
