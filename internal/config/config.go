package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ludo-technologies/repopulse/internal/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Defaults
const (
	// DefaultGitBinary is resolved through PATH
	DefaultGitBinary = "git"

	// DefaultGitTimeout bounds the commit history query; 0 disables the bound
	DefaultGitTimeout = 10 * time.Second

	// DefaultLogLevel is used when neither config nor --verbose set one
	DefaultLogLevel = "warn"
)

// Config represents the main configuration structure
type Config struct {
	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Git holds settings for the commit history query
	Git GitConfig `json:"git" mapstructure:"git" yaml:"git"`

	// Analysis holds file classification settings
	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis" yaml:"analysis"`

	// Log holds logging settings
	Log LogConfig `json:"log" mapstructure:"log" yaml:"log"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml
	Format string `json:"format" mapstructure:"format" yaml:"format"`
}

// GitConfig holds configuration for the version-control query
type GitConfig struct {
	// Binary is the git executable name or path
	Binary string `json:"binary" mapstructure:"binary" yaml:"binary"`

	// Timeout bounds the git log invocation (0 = no limit)
	Timeout time.Duration `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
}

// AnalysisConfig holds configuration for the file classifier
type AnalysisConfig struct {
	// RespectGitignore additionally excludes paths matched by the root .gitignore
	RespectGitignore bool `json:"respect_gitignore" mapstructure:"respect_gitignore" yaml:"respect_gitignore"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is a logrus level name: debug, info, warn, error
	Level string `json:"level" mapstructure:"level" yaml:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: constants.OutputFormatText,
		},
		Git: GitConfig{
			Binary:  DefaultGitBinary,
			Timeout: DefaultGitTimeout,
		},
		Analysis: AnalysisConfig{
			RespectGitignore: false,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// configCandidates are the file names searched during discovery, in order of preference
var configCandidates = []string{
	".repopulse.yaml",
	".repopulse.yml",
	"repopulse.yaml",
	"repopulse.yml",
	".repopulse.toml",
	".repopulse.json",
}

// LoadConfigWithTarget loads configuration with target path context.
// An empty configPath triggers discovery starting at targetPath.
// Environment variables prefixed with REPOPULSE_ override file values.
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// newViper creates an isolated viper instance seeded with defaults so that
// environment overrides apply even without a config file.
func newViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("git.binary", def.Git.Binary)
	v.SetDefault("git.timeout", def.Git.Timeout)
	v.SetDefault("analysis.respect_gitignore", def.Analysis.RespectGitignore)
	v.SetDefault("log.level", def.Log.Level)

	v.SetEnvPrefix(constants.EnvVarPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfigFromFile reads and parses a configuration file; "" means defaults plus env
func loadConfigFromFile(configPath string) (*Config, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	config := DefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// searchConfigInDirectory searches for configuration files in a specific directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common locations.
// targetPath is the repository being analyzed.
func findDefaultConfig(targetPath string) string {
	if targetPath != "" {
		if absPath, err := filepath.Abs(targetPath); err == nil {
			if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			volume := filepath.VolumeName(absPath)
			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, configCandidates); config != "" {
					return config
				}

				parent := filepath.Dir(dir)
				if parent == dir ||
					dir == volume ||
					(volume != "" && dir == volume+string(filepath.Separator)) {
					break
				}
			}
		}
	}

	// Fallback to current directory
	if config := searchConfigInDirectory(".", configCandidates); config != "" {
		return config
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, constants.ToolName), configCandidates); config != "" {
			return config
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		if config := searchConfigInDirectory(filepath.Join(home, ".config", constants.ToolName), configCandidates); config != "" {
			return config
		}
		if config := searchConfigInDirectory(home, configCandidates); config != "" {
			return config
		}
	}

	if envConfig := os.Getenv(constants.EnvVarPrefix + "_CONFIG"); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validFormats := map[string]bool{
		constants.OutputFormatText: true,
		constants.OutputFormatJSON: true,
		constants.OutputFormatYAML: true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format '%s', must be one of: text, json, yaml", c.Output.Format)
	}

	if strings.TrimSpace(c.Git.Binary) == "" {
		return fmt.Errorf("git.binary cannot be empty")
	}

	if c.Git.Timeout < 0 {
		return fmt.Errorf("git.timeout must be >= 0, got %s", c.Git.Timeout)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level '%s': %w", c.Log.Level, err)
	}

	return nil
}

// LogLevel returns the parsed log level, falling back to warn
func (c *Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
