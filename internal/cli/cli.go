// Package cli builds the dockerpeek command line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/dockerpeek/dockerpeek/internal/config"
	urfavecli "github.com/urfave/cli/v3"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// New builds and returns the root command.
func New() *urfavecli.Command {
	return &urfavecli.Command{
		Name:    "dockerpeek",
		Version: Version,
		Usage:   "Snapshot the latest and penultimate versions of tracked container services",
		UsageText: `dockerpeek [options]

Fetches the version manifest of every tracked service, lists the releases of
the Elasticsearch analysis plugin and writes two files to the output directory:

  services_latest_versions.json       newest version per service
  services_penultimate_versions.json  second newest version per service`,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   fmt.Sprintf("Path to a YAML or TOML config file (or set %s)", config.EnvConfigPath),
			},
			&urfavecli.StringFlag{
				Name:        "output-dir",
				Aliases:     []string{"o"},
				Usage:       "Directory the snapshot files are written to",
				DefaultText: config.DefaultOutputDir,
			},
			&urfavecli.StringFlag{
				Name:        "base-url",
				Usage:       "Base URL the manifests are served from",
				DefaultText: config.DefaultBaseURL,
			},
			&urfavecli.StringFlag{
				Name:        "repo-path",
				Usage:       "Path of the manifest directory below the base URL",
				DefaultText: config.DefaultRepoPath,
			},
			&urfavecli.StringFlag{
				Name:        "api-url",
				Usage:       "GitHub API root used to list plugin releases",
				DefaultText: config.DefaultAPIURL,
			},
			&urfavecli.DurationFlag{
				Name:        "timeout",
				Usage:       "Timeout for each HTTP request",
				DefaultText: "30s",
			},
			&urfavecli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the snapshot instead of writing files",
			},
			&urfavecli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Do not print the summary",
			},
			&urfavecli.BoolFlag{
				Name:  "verbose",
				Usage: "Log every request and selection",
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return runRefresh(ctx, cmd)
		},
	}
}
