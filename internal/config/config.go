// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the configuration for localecheck
type Config struct {
	// General settings
	Version     string `yaml:"version" json:"version"`
	ProjectName string `yaml:"project_name,omitempty" json:"project_name,omitempty"`

	// Scan settings
	Scan ScanConfig `yaml:"scan" json:"scan"`

	// Localization dictionary settings
	Dictionary DictionaryConfig `yaml:"dictionary" json:"dictionary"`

	// Output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// File patterns
	Files FilesConfig `yaml:"files" json:"files"`
}

type ScanConfig struct {
	// Root directory scanned when none is given on the command line
	DefaultRoot string `yaml:"default_root" json:"default_root"`

	// How many lines past a stream( call the paired setAlert( may start
	LookaheadLines int `yaml:"lookahead_lines" json:"lookahead_lines"`
}

type DictionaryConfig struct {
	// Path to the nested localization JSON document
	Path string `yaml:"path" json:"path"`
}

type OutputConfig struct {
	// Default output format
	Format string `yaml:"format" json:"format"`

	// Colorized console output
	Colors bool `yaml:"colors" json:"colors"`

	// Verbosity level
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Include raw snippets in console detail
	ShowSnippets bool `yaml:"show_snippets" json:"show_snippets"`

	// Rendered report destination (optional, stdout when empty)
	OutputFile string `yaml:"output_file,omitempty" json:"output_file,omitempty"`

	// Structured report files (optional)
	JSONFile string `yaml:"json_file,omitempty" json:"json_file,omitempty"`
	CSVFile  string `yaml:"csv_file,omitempty" json:"csv_file,omitempty"`
}

type FilesConfig struct {
	// Source extensions to scan
	Extensions []string `yaml:"extensions" json:"extensions"`

	// Directory names to exclude
	Exclude []string `yaml:"exclude" json:"exclude"`

	// Whether to scan front-end test files (*.spec.*, *.test.*)
	IncludeTests bool `yaml:"include_tests" json:"include_tests"`

	// Max file size (in KB)
	MaxFileSize int `yaml:"max_file_size" json:"max_file_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Scan: ScanConfig{
			DefaultRoot:    "./src",
			LookaheadLines: 20,
		},
		Dictionary: DictionaryConfig{
			Path: "./src/assets/i18n/en.json",
		},
		Output: OutputConfig{
			Format:       "console",
			Colors:       true,
			Verbose:      false,
			ShowSnippets: false,
		},
		Files: FilesConfig{
			Extensions:   []string{".ts", ".tsx"},
			Exclude:      []string{"node_modules", ".git", "dist", "build", "coverage"},
			IncludeTests: false,
			MaxFileSize:  1024, // 1MB
		},
	}
}

// LoadConfig loads configuration from file or returns default
func LoadConfig(configPath string) (*Config, error) {
	// If no config path provided, look for default config files
	if configPath == "" {
		configPath = findConfigFile()
	}

	// If still no config found, return default
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// Load from file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := DefaultConfig() // Start with defaults

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// findConfigFile looks for config files in common locations
func findConfigFile() string {
	possiblePaths := []string{
		".localecheck.yml",
		".localecheck.yaml",
		"localecheck.yml",
		"localecheck.yaml",
		".config/localecheck.yml",
		".config/localecheck.yaml",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate output format
	validFormats := []string{"console", "json", "csv"}
	formatValid := false
	for _, format := range validFormats {
		if c.Output.Format == format {
			formatValid = true
			break
		}
	}
	if !formatValid {
		return fmt.Errorf("invalid output format: %s (valid: %v)", c.Output.Format, validFormats)
	}

	if c.Scan.LookaheadLines < 1 {
		return fmt.Errorf("lookahead_lines must be at least 1")
	}

	if len(c.Files.Extensions) == 0 {
		return fmt.Errorf("at least one source extension is required")
	}
	for _, ext := range c.Files.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}

	if c.Files.MaxFileSize < 1 {
		return fmt.Errorf("max_file_size must be at least 1 KB")
	}

	return nil
}

// SaveConfig saves configuration to file
func (c *Config) SaveConfig(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateConfig creates a sample configuration file
func GenerateConfig(configPath string) error {
	config := DefaultConfig()
	return config.SaveConfig(configPath)
}

// ShouldScanFile reports whether a path matches the configured source
// extensions and test-file policy.
func (c *Config) ShouldScanFile(path string) bool {
	matched := false
	for _, ext := range c.Files.Extensions {
		if strings.HasSuffix(path, ext) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	if c.Files.IncludeTests {
		return true
	}
	base := filepath.Base(path)
	for _, ext := range c.Files.Extensions {
		if strings.HasSuffix(base, ".spec"+ext) || strings.HasSuffix(base, ".test"+ext) {
			return false
		}
	}
	return true
}

// ShouldSkipDir reports whether a directory name is excluded from the walk.
func (c *Config) ShouldSkipDir(name string) bool {
	for _, excluded := range c.Files.Exclude {
		if name == excluded {
			return true
		}
	}
	return false
}
