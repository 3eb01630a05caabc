package configcmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/cjk-breaks/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
	}
}

func TestRunShow_WithConfigFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg := &config.Config{
		Either:                true,
		SpaceAfterPunctuation: "half",
		PunctuationTargetsAdd: []string{"。"},
		OutputFormat:          "json",
	}
	require.NoError(t, cfg.Save(configPath))

	var buf bytes.Buffer
	require.NoError(t, runShow(&buf, configPath, true))

	out := buf.String()
	assert.Contains(t, out, "Either:")
	assert.Contains(t, out, "true  (source: config)")
	assert.Contains(t, out, "half  (source: config)")
	assert.Contains(t, out, "。  (source: config)")
	assert.Contains(t, out, "(default)")
	assert.Contains(t, out, "Config file: "+configPath)
	assert.NotContains(t, out, "file not found")
}

func TestRunShow_EnvOverride(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, (&config.Config{SpaceAfterPunctuation: "half"}).Save(configPath))
	t.Setenv("CJKB_PUNCT_SPACE", "full")

	var buf bytes.Buffer
	require.NoError(t, runShow(&buf, configPath, true))
	assert.Contains(t, buf.String(), "full  (source: CJKB_PUNCT_SPACE)")
}

func TestRunShow_Targets(t *testing.T) {
	clearEnv(t)
	empty := []string{}
	tests := []struct {
		name string
		cfg  *config.Config
		want string
	}{
		{"disabled", &config.Config{PunctuationTargetsDisabled: true}, "disabled"},
		{"empty list", &config.Config{PunctuationTargets: &empty}, "none"},
		{"explicit", &config.Config{PunctuationTargets: &[]string{"。", "！"}}, "。 ！"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, tt.cfg.Save(configPath))

			var buf bytes.Buffer
			require.NoError(t, runShow(&buf, configPath, true))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestRunShow_NoConfigFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "missing.yml")

	var buf bytes.Buffer
	require.NoError(t, runShow(&buf, configPath, true))
	assert.Contains(t, buf.String(), "(file not found)")
}
