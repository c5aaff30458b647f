package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// TimeoutDuration parses the configured request timeout.
func (h HTTPConfig) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(h.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: http.timeout %q: %v", ErrInvalidConfig, h.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: http.timeout must be positive, got %s", ErrInvalidConfig, h.Timeout)
	}
	return d, nil
}

// Validate checks the configuration and reports every problem found.
// Each returned error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if err := validateURL(c.Source.BaseURL); err != nil {
		add("source.base-url: %v", err)
	}
	if strings.Trim(c.Source.RepoPath, "/") == "" {
		add("source.repo-path is required")
	}

	if c.Plugin.Owner == "" || c.Plugin.Repo == "" {
		add("plugin.owner and plugin.repo are required")
	}
	if err := validateURL(c.Plugin.APIURL); err != nil {
		add("plugin.api-url: %v", err)
	}

	if c.Output.Dir == "" {
		add("output.dir is required")
	}
	files := []struct{ key, name string }{
		{"output.latest-file", c.Output.LatestFile},
		{"output.penultimate-file", c.Output.PenultimateFile},
	}
	for _, f := range files {
		if f.name == "" || strings.ContainsAny(f.name, `/\`) {
			add("%s must be a plain filename, got %q", f.key, f.name)
		}
	}
	if c.Output.LatestFile != "" && c.Output.LatestFile == c.Output.PenultimateFile {
		add("output.latest-file and output.penultimate-file must differ")
	}

	if _, err := c.HTTP.TimeoutDuration(); err != nil {
		errs = append(errs, err)
	}

	names := make(map[string]bool, len(c.Services))
	for i, s := range c.Services {
		if s.Name == "" || s.Manifest == "" {
			add("services[%d]: name and manifest are required", i)
			continue
		}
		key := strings.ToLower(s.Name)
		if names[key] {
			add("services[%d]: duplicate service %q", i, s.Name)
		}
		names[key] = true
	}

	return errors.Join(errs...)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
