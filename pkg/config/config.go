package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// DefaultTableID is the element id of the archive listing table
const DefaultTableID = "arc-list"

// Config holds the application configuration. Patterns are compiled once by Parse/Load
// and must not be changed afterwards.
type Config struct {
	ArchiveURL     string `yaml:"archive_url" json:"archive_url" jsonschema:"required,description=URL of the archive listing page"`
	BaseURL        string `yaml:"base_url" json:"base_url" jsonschema:"required,description=Prefix prepended to relative thread links"`
	SearchString   string `yaml:"search_string" json:"search_string" jsonschema:"required,description=Case-insensitive regular expression selecting relevant excerpts"`
	DownloadFolder string `yaml:"download_folder" json:"download_folder" jsonschema:"required,description=Folder with already processed threads"`
	DirPattern     string `yaml:"dir_pattern" json:"dir_pattern" jsonschema:"required,description=Regular expression matched at the start of entry names; group 1 is the thread id"`
	TableID        string `yaml:"table_id" json:"table_id" jsonschema:"default=arc-list,description=Element id of the listing table"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=Archive fetch settings"`

	searchRe *regexp.Regexp
	folderRe *regexp.Regexp
}

// FetchConfig holds settings for retrieving the archive page
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP request timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=arcwatch/1.0,description=User agent for HTTP requests"`
}

// ConfigError reports a configuration that can't be used
type ConfigError struct {
	Field  string // yaml key, empty for file-level problems
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	parts := make([]string, 0, 3)
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Reason)
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Load reads configuration from a YAML (or JSON) file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, &ConfigError{Reason: "read config file", Err: err}
	}
	return Parse(data)
}

// Parse builds configuration from YAML (or JSON) document, sets defaults, validates
// required fields and compiles patterns
func Parse(data []byte) (*Config, error) {
	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, &ConfigError{Reason: "parse config", Err: err}
	}

	if cfg.TableID == "" {
		cfg.TableID = DefaultTableID
	}
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 30 * time.Second
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "arcwatch/1.0"
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.compile(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks required fields one by one
func validate(cfg *Config) error {
	required := []struct {
		field string
		value string
	}{
		{"archive_url", cfg.ArchiveURL},
		{"base_url", cfg.BaseURL},
		{"search_string", cfg.SearchString},
		{"download_folder", cfg.DownloadFolder},
		{"dir_pattern", cfg.DirPattern},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ConfigError{Field: r.field, Reason: "is required"}
		}
	}

	if cfg.Fetch.Timeout < 0 {
		return &ConfigError{Field: "fetch.timeout", Reason: "must be positive"}
	}
	return nil
}

// compile prepares both patterns, search pattern is always case-insensitive
func (c *Config) compile() error {
	searchRe, err := regexp.Compile("(?i)" + c.SearchString)
	if err != nil {
		return &ConfigError{Field: "search_string", Reason: "invalid pattern", Err: err}
	}

	folderRe, err := regexp.Compile(c.DirPattern)
	if err != nil {
		return &ConfigError{Field: "dir_pattern", Reason: "invalid pattern", Err: err}
	}
	if folderRe.NumSubexp() < 1 {
		return &ConfigError{Field: "dir_pattern", Reason: fmt.Sprintf("pattern %q has no capturing group", c.DirPattern)}
	}

	c.searchRe, c.folderRe = searchRe, folderRe
	return nil
}

// SearchPattern returns compiled case-insensitive relevance pattern
func (c *Config) SearchPattern() *regexp.Regexp {
	return c.searchRe
}

// FolderPattern returns compiled directory pattern
func (c *Config) FolderPattern() *regexp.Regexp {
	return c.folderRe
}
