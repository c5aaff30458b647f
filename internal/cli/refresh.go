package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	urfavecli "github.com/urfave/cli/v3"

	"github.com/dockerpeek/dockerpeek/internal/config"
	"github.com/dockerpeek/dockerpeek/internal/core"
	"github.com/dockerpeek/dockerpeek/internal/fetch"
	"github.com/dockerpeek/dockerpeek/internal/logger"
	"github.com/dockerpeek/dockerpeek/internal/manifest"
	"github.com/dockerpeek/dockerpeek/internal/pipeline"
	"github.com/dockerpeek/dockerpeek/internal/printer"
	"github.com/dockerpeek/dockerpeek/internal/releases"
	"github.com/dockerpeek/dockerpeek/internal/tui"
)

// runRefresh loads the configuration, runs the pipeline and reports.
func runRefresh(ctx context.Context, cmd *urfavecli.Command) error {
	noColor := tui.ColorDisabled(cmd.Bool("no-color"))
	printer.SetNoColor(noColor)
	log := logger.New(cmd.ErrWriter, cmd.Bool("verbose"), noColor)

	cfg, err := config.LoadConfigFn(cmd.String("config"))
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	runner, err := newRunner(cfg, log)
	if err != nil {
		return err
	}

	if cmd.Bool("dry-run") {
		snap, err := runner.Collect(ctx)
		if err != nil {
			return err
		}
		return printSnapshot(cmd, cfg, snap)
	}

	snap, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if !cmd.Bool("quiet") {
		printSummary(cmd, cfg, snap)
	}
	return nil
}

// applyFlags overrides config values with flags given on the command line.
func applyFlags(cmd *urfavecli.Command, cfg *config.Config) {
	if cmd.IsSet("output-dir") {
		cfg.Output.Dir = cmd.String("output-dir")
	}
	if cmd.IsSet("base-url") {
		cfg.Source.BaseURL = cmd.String("base-url")
	}
	if cmd.IsSet("repo-path") {
		cfg.Source.RepoPath = cmd.String("repo-path")
	}
	if cmd.IsSet("api-url") {
		cfg.Plugin.APIURL = cmd.String("api-url")
	}
	if cmd.IsSet("timeout") {
		cfg.HTTP.Timeout = cmd.Duration("timeout").String()
	}
}

// newRunner wires the pipeline to its HTTP, GitHub and filesystem backends.
func newRunner(cfg *config.Config, log zerolog.Logger) (*pipeline.Runner, error) {
	timeout, err := cfg.HTTP.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	client := fetch.NewClient(
		fetch.WithTimeout(timeout),
		fetch.WithUserAgent(cfg.HTTP.UserAgent),
	)

	lister, err := releases.NewLister(client.HTTPClient(), cfg.Plugin.Owner, cfg.Plugin.Repo,
		releases.WithBaseURL(cfg.Plugin.APIURL))
	if err != nil {
		return nil, err
	}

	loader := manifest.NewLoader(client, cfg.Source.BaseURL, cfg.Source.RepoPath, log)

	output := pipeline.Output{
		Dir:             cfg.Output.Dir,
		LatestFile:      cfg.Output.LatestFile,
		PenultimateFile: cfg.Output.PenultimateFile,
	}

	return pipeline.NewRunner(loader, lister, core.NewOSFileSystem(), cfg.Services, output, log), nil
}

// printSnapshot writes both documents to stdout, each under its filename.
func printSnapshot(cmd *urfavecli.Command, cfg *config.Config, snap *pipeline.Snapshot) error {
	docs := []struct {
		file       string
		selections []pipeline.Selection
	}{
		{cfg.Output.LatestFile, snap.Latest},
		{cfg.Output.PenultimateFile, snap.Penultimate},
	}

	for _, d := range docs {
		data, err := pipeline.Encode(d.selections)
		if err != nil {
			return err
		}
		printer.Fprintln(cmd.Writer, printer.Faint("# "+d.file))
		if _, err := cmd.Writer.Write(data); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}
	return nil
}

// printSummary renders a table of the selected versions in service order.
func printSummary(cmd *urfavecli.Command, cfg *config.Config, snap *pipeline.Snapshot) {
	latest := make(map[string]string, len(snap.Latest))
	for _, s := range snap.Latest {
		latest[s.Name] = s.Tag
	}
	penultimate := make(map[string]string, len(snap.Penultimate))
	for _, s := range snap.Penultimate {
		penultimate[s.Name] = s.Tag
	}

	rows := make([][]string, 0, len(cfg.Services))
	for _, svc := range cfg.Services {
		rows = append(rows, []string{svc.Name, latest[svc.Name], penultimate[svc.Name]})
	}

	w := cmd.Writer
	printer.Fprintln(w, printer.Table([]string{"SERVICE", "LATEST", "PENULTIMATE"}, rows))
	if len(snap.PluginTags) > 0 {
		printer.Fprintln(w, printer.Faint("plugin tags: "+strings.Join(snap.PluginTags, ", ")))
	}
	if len(snap.Missing) > 0 {
		printer.Fprintln(w, printer.Warning("no versions found for: "+strings.Join(snap.Missing, ", ")))
	}
	printer.Fprintln(w, printer.Success(fmt.Sprintf("✓ wrote %s and %s",
		filepath.Join(cfg.Output.Dir, cfg.Output.LatestFile),
		filepath.Join(cfg.Output.Dir, cfg.Output.PenultimateFile))))
}
