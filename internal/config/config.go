// Package config loads the CLI's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2conf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrMissingBaseURL = errors.New("confluence.baseURL is required for upload")
	ErrMissingSpace   = errors.New("confluence.spaceKey is required to create pages")
)

// DefaultTokenEnv is the environment variable read for the API token when
// the config does not name another one.
const DefaultTokenEnv = "CONFLUENCE_API_TOKEN"

// Config holds all configuration for document conversion and upload.
type Config struct {
	Convert    ConvertConfig    `yaml:"convert"`
	Confluence ConfluenceConfig `yaml:"confluence"`
}

// ConvertConfig tunes the conversion pipeline.
type ConvertConfig struct {
	MaxNestingDepth int    `yaml:"maxNestingDepth"` // 0 = library default
	Workers         int    `yaml:"workers"`         // 0 = one per CPU
	OutputDir       string `yaml:"outputDir"`       // empty = next to source
}

// ConfluenceConfig locates the target site and page.
type ConfluenceConfig struct {
	BaseURL  string `yaml:"baseURL"`  // e.g. https://example.atlassian.net/wiki
	Email    string `yaml:"email"`    // account for basic auth
	SpaceKey string `yaml:"spaceKey"` // target space for new pages
	ParentID string `yaml:"parentID"` // optional ancestor for new pages
	TokenEnv string `yaml:"tokenEnv"` // env var holding the API token
}

// Default returns a neutral configuration.
func Default() *Config {
	return &Config{
		Confluence: ConfluenceConfig{TokenEnv: DefaultTokenEnv},
	}
}

// Load reads and parses a YAML config file. A missing path returns
// ErrConfigNotFound; an empty path returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}
	if err := yamlutil.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Confluence.TokenEnv == "" {
		cfg.Confluence.TokenEnv = DefaultTokenEnv
	}
	return cfg, nil
}

// ValidateForUpload checks the fields the upload path depends on.
func (c *Config) ValidateForUpload(createPages bool) error {
	if c.Confluence.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if createPages && c.Confluence.SpaceKey == "" {
		return ErrMissingSpace
	}
	return nil
}
