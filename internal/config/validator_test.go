package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/dockerpeek/dockerpeek/internal/catalog"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad base url scheme", func(c *Config) { c.Source.BaseURL = "ftp://example.com" }, "source.base-url"},
		{"missing host", func(c *Config) { c.Source.BaseURL = "https://" }, "missing host"},
		{"empty repo path", func(c *Config) { c.Source.RepoPath = "/" }, "source.repo-path"},
		{"missing plugin repo", func(c *Config) { c.Plugin.Repo = "" }, "plugin.owner and plugin.repo"},
		{"empty output dir", func(c *Config) { c.Output.Dir = "" }, "output.dir"},
		{"nested output file", func(c *Config) { c.Output.LatestFile = "a/b.json" }, "output.latest-file"},
		{"same output files", func(c *Config) { c.Output.PenultimateFile = c.Output.LatestFile }, "must differ"},
		{"bad timeout", func(c *Config) { c.HTTP.Timeout = "soon" }, "http.timeout"},
		{"negative timeout", func(c *Config) { c.HTTP.Timeout = "-1s" }, "must be positive"},
		{
			"duplicate service",
			func(c *Config) {
				c.Services = append(c.Services, catalog.Service{Name: "redis", Manifest: "other.json"})
			},
			"duplicate service",
		},
		{
			"service without manifest",
			func(c *Config) { c.Services = []catalog.Service{{Name: "Redis"}} },
			"name and manifest are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Source.RepoPath = ""
	cfg.Output.Dir = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"source.repo-path", "output.dir"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}
