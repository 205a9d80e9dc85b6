package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/repopulse/internal/testutil"
)

// isolateHome keeps discovery from picking up the developer's own config files
func isolateHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("REPOPULSE_CONFIG", "")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NotNil(t, config)

	assert.Equal(t, "text", config.Output.Format)
	assert.Equal(t, DefaultGitBinary, config.Git.Binary)
	assert.Equal(t, DefaultGitTimeout, config.Git.Timeout)
	assert.False(t, config.Analysis.RespectGitignore)
	assert.Equal(t, DefaultLogLevel, config.Log.Level)
	assert.NoError(t, config.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"invalid output format", func(c *Config) { c.Output.Format = "xml" }},
		{"empty git binary", func(c *Config) { c.Git.Binary = "  " }},
		{"negative timeout", func(c *Config) { c.Git.Timeout = -time.Second }},
		{"invalid log level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".repopulse.yaml")
	writeFile(t, path, `
output:
  format: json
git:
  timeout: 3s
analysis:
  respect_gitignore: true
log:
  level: debug
`)

	config, err := LoadConfigWithTarget(path, "")
	require.NoError(t, err)

	assert.Equal(t, "json", config.Output.Format)
	assert.Equal(t, 3*time.Second, config.Git.Timeout)
	assert.Equal(t, "git", config.Git.Binary, "unset keys keep their defaults")
	assert.True(t, config.Analysis.RespectGitignore)
	assert.Equal(t, logrus.DebugLevel, config.LogLevel())
}

func TestLoadConfig_TOML(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".repopulse.toml")
	writeFile(t, path, `
[output]
format = "yaml"

[git]
binary = "/usr/local/bin/git"
`)

	config, err := LoadConfigWithTarget(path, "")
	require.NoError(t, err)
	assert.Equal(t, "yaml", config.Output.Format)
	assert.Equal(t, "/usr/local/bin/git", config.Git.Binary)
}

func TestLoadConfig_Invalid(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".repopulse.yaml")
	writeFile(t, path, "output:\n  format: html\n")

	_, err := LoadConfigWithTarget(path, "")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfigWithTarget(filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.Error(t, err)
}

func TestLoadConfigWithTarget_DiscoversFromParent(t *testing.T) {
	isolateHome(t)
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeFile(t, filepath.Join(root, "repopulse.yml"), "output:\n  format: yaml\n")

	config, err := LoadConfigWithTarget("", nested)
	require.NoError(t, err)
	assert.Equal(t, "yaml", config.Output.Format)
}

func TestLoadConfigWithTarget_NoFileUsesDefaults(t *testing.T) {
	isolateHome(t)
	testutil.Chdir(t, t.TempDir())

	config, err := LoadConfigWithTarget("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	isolateHome(t)
	testutil.Chdir(t, t.TempDir())
	t.Setenv("REPOPULSE_OUTPUT_FORMAT", "json")
	t.Setenv("REPOPULSE_GIT_TIMEOUT", "1m")

	config, err := LoadConfigWithTarget("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "json", config.Output.Format)
	assert.Equal(t, time.Minute, config.Git.Timeout)
}

func TestGetConfigTemplate_RoundTrips(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".repopulse.yaml")
	writeFile(t, path, GetConfigTemplate())

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(GetConfigTemplate()), &raw))
	assert.Contains(t, raw, "git")

	config, err := LoadConfigWithTarget(path, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}
