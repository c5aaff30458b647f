package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/dockerpeek/dockerpeek/internal/catalog"
	"github.com/dockerpeek/dockerpeek/internal/fetch"
	"github.com/dockerpeek/dockerpeek/internal/releases"
)

// EnvConfigPath names an environment variable holding the config file path.
const EnvConfigPath = "DOCKERPEEK_CONFIG"

// Default values, matching the published DockerPeek data layout.
const (
	DefaultBaseURL         = "https://raw.githubusercontent.com"
	DefaultRepoPath        = "FreemanKevin/DockerPeek/main/data"
	DefaultAPIURL          = "https://api.github.com/"
	DefaultOutputDir       = "../data"
	DefaultLatestFile      = "services_latest_versions.json"
	DefaultPenultimateFile = "services_penultimate_versions.json"
)

// configFiles are looked up in the working directory, in order, when no
// explicit path is given.
var configFiles = []string{".dockerpeek.yaml", ".dockerpeek.yml", ".dockerpeek.toml"}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// SourceConfig locates the version manifests.
type SourceConfig struct {
	BaseURL  string `yaml:"base-url" toml:"base-url"`
	RepoPath string `yaml:"repo-path" toml:"repo-path"`
}

// PluginConfig identifies the repository whose releases filter
// Elasticsearch versions.
type PluginConfig struct {
	Owner  string `yaml:"owner" toml:"owner"`
	Repo   string `yaml:"repo" toml:"repo"`
	APIURL string `yaml:"api-url" toml:"api-url"`
}

// OutputConfig controls where snapshot files are written.
type OutputConfig struct {
	Dir             string `yaml:"dir" toml:"dir"`
	LatestFile      string `yaml:"latest-file" toml:"latest-file"`
	PenultimateFile string `yaml:"penultimate-file" toml:"penultimate-file"`
}

// HTTPConfig tunes outgoing requests.
type HTTPConfig struct {
	Timeout   string `yaml:"timeout" toml:"timeout"`
	UserAgent string `yaml:"user-agent" toml:"user-agent"`
}

// Config is the main configuration structure for dockerpeek.
type Config struct {
	Source   SourceConfig      `yaml:"source" toml:"source"`
	Plugin   PluginConfig      `yaml:"plugin" toml:"plugin"`
	Output   OutputConfig      `yaml:"output" toml:"output"`
	HTTP     HTTPConfig        `yaml:"http" toml:"http"`
	Services []catalog.Service `yaml:"services,omitempty" toml:"services,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			BaseURL:  DefaultBaseURL,
			RepoPath: DefaultRepoPath,
		},
		Plugin: PluginConfig{
			Owner:  releases.DefaultOwner,
			Repo:   releases.DefaultRepo,
			APIURL: DefaultAPIURL,
		},
		Output: OutputConfig{
			Dir:             DefaultOutputDir,
			LatestFile:      DefaultLatestFile,
			PenultimateFile: DefaultPenultimateFile,
		},
		HTTP: HTTPConfig{
			Timeout:   fetch.DefaultTimeout.String(),
			UserAgent: fetch.DefaultUserAgent,
		},
		Services: catalog.Default(),
	}
}

// LoadConfigFn is the loader used by the CLI. Tests may replace it.
var LoadConfigFn = Load

// Load resolves the configuration file and decodes it over the defaults.
//
// Lookup order:
//  1. path, when non-empty (the --config flag)
//  2. the file named by DOCKERPEEK_CONFIG
//  3. .dockerpeek.yaml, .dockerpeek.yml or .dockerpeek.toml in the working directory
//
// When no file is found the defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path == "" {
		for _, name := range configFiles {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// Services from a file replace the built-in list rather than extend it.
	cfg.Services = nil

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if err := decode(data, path, cfg); err != nil {
		return nil, err
	}

	cfg.fillDefaults()

	return cfg, nil
}

// fillDefaults restores defaults for settings a config file left empty.
func (c *Config) fillDefaults() {
	def := Default()
	setIfEmpty := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}

	setIfEmpty(&c.Source.BaseURL, def.Source.BaseURL)
	setIfEmpty(&c.Source.RepoPath, def.Source.RepoPath)
	setIfEmpty(&c.Plugin.Owner, def.Plugin.Owner)
	setIfEmpty(&c.Plugin.Repo, def.Plugin.Repo)
	setIfEmpty(&c.Plugin.APIURL, def.Plugin.APIURL)
	setIfEmpty(&c.Output.Dir, def.Output.Dir)
	setIfEmpty(&c.Output.LatestFile, def.Output.LatestFile)
	setIfEmpty(&c.Output.PenultimateFile, def.Output.PenultimateFile)
	setIfEmpty(&c.HTTP.Timeout, def.HTTP.Timeout)
	setIfEmpty(&c.HTTP.UserAgent, def.HTTP.UserAgent)

	if len(c.Services) == 0 {
		c.Services = def.Services
	}
}

// decode unmarshals data into cfg, choosing the format from the file
// extension. Unknown keys are rejected.
func decode(data []byte, path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("failed to parse TOML in %q: %w", path, err)
		}
	case ".yaml", ".yml", "":
		dec := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("failed to parse YAML in %q: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q (use .yaml, .yml or .toml)", filepath.Ext(path))
	}
	return nil
}
