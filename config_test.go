package sprakvakt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprakvakt/sprakvakt/srcscan"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sprakvakt.yaml"), []byte(content), 0o644))
	return dir
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t, `
checks:
  - notL10NAvailable
  - deprecatedMacro
ignored_variable_patterns:
  - "^telemetry.*"
min_words_for_unavailable: 3
exceptions_should_be_translatable: true
`)
	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"notL10NAvailable", "deprecatedMacro"}, cfg.Checks)
	assert.Equal(t, 3, cfg.MinWordsForUnavailable)
	assert.True(t, cfg.ExceptionsShouldBeTranslatable)

	opts := cfg.ScanOptions(testLogger())
	assert.True(t, opts.Style&srcscan.CheckNotAvailableForL10N != 0)
	assert.True(t, opts.Style&srcscan.CheckDeprecatedMacros != 0)
	assert.False(t, opts.Style&srcscan.CheckTabs != 0)
	require.Len(t, opts.IgnoredVariablePatterns, 1)
	assert.True(t, opts.IgnoredVariablePatterns[0].MatchString("telemetryTag"))
}

func TestScanOptionsSkipsBadInput(t *testing.T) {
	cfg := Config{
		Checks:                  []string{"notL10NAvailable", "noSuchCheck"},
		IgnoredVariablePatterns: []string{"(unbalanced"},
	}
	opts := cfg.ScanOptions(testLogger())
	// the unknown check and the broken regex are skipped, not fatal
	assert.True(t, opts.Style&srcscan.CheckNotAvailableForL10N != 0)
	assert.Empty(t, opts.IgnoredVariablePatterns)
}

func TestEmptyChecksMeansAll(t *testing.T) {
	opts := Config{}.ScanOptions(testLogger())
	assert.Equal(t, srcscan.CheckAll, opts.Style)
}
