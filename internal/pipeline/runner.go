package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dockerpeek/dockerpeek/internal/catalog"
	"github.com/dockerpeek/dockerpeek/internal/core"
	"github.com/dockerpeek/dockerpeek/internal/manifest"
	"github.com/dockerpeek/dockerpeek/internal/selector"
)

// ManifestLoader fetches manifests keyed by filename. Files that could not
// be loaded are absent from the result.
type ManifestLoader interface {
	LoadAll(ctx context.Context, files []string) (map[string][]manifest.Record, error)
}

// TagLister returns the newest plugin release tags, newest first.
type TagLister interface {
	Latest(ctx context.Context) ([]string, error)
}

// Runner executes the pipeline.
type Runner struct {
	loader   ManifestLoader
	tags     TagLister
	fs       core.FileSystem
	services []catalog.Service
	output   Output
	log      zerolog.Logger
}

// NewRunner creates a Runner for services.
func NewRunner(loader ManifestLoader, tags TagLister, fs core.FileSystem, services []catalog.Service, output Output, log zerolog.Logger) *Runner {
	return &Runner{
		loader:   loader,
		tags:     tags,
		fs:       fs,
		services: services,
		output:   output,
		log:      log,
	}
}

// Run collects a snapshot and writes it.
func (r *Runner) Run(ctx context.Context) (*Snapshot, error) {
	snap, err := r.Collect(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.Write(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Collect fetches all inputs and selects versions without touching the
// filesystem.
func (r *Runner) Collect(ctx context.Context) (*Snapshot, error) {
	files, err := r.loader.LoadAll(ctx, catalog.Files(r.services))
	if err != nil {
		return nil, fmt.Errorf("load manifests: %w", err)
	}

	pluginTags, err := r.tags.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("plugin releases: %w", err)
	}
	r.log.Debug().Strs("tags", pluginTags).Msg("plugin release tags")

	snap := &Snapshot{
		Latest:      make([]Selection, 0, len(r.services)),
		Penultimate: make([]Selection, 0, len(r.services)),
		PluginTags:  pluginTags,
	}

	for _, svc := range r.services {
		var tags []string
		if strings.EqualFold(svc.Name, catalog.PluginService) {
			tags = pluginTags
		}

		picked := selector.Select(files[svc.Manifest], svc.Name, tags)
		r.log.Debug().Str("service", svc.Name).Int("selected", len(picked)).Msg("selected versions")

		if len(picked) == 0 {
			snap.Missing = append(snap.Missing, svc.Name)
		}
		if len(picked) > 0 {
			snap.Latest = append(snap.Latest, Selection{Name: svc.Name, Tag: picked[0].Version})
		}
		if len(picked) > 1 {
			snap.Penultimate = append(snap.Penultimate, Selection{Name: svc.Name, Tag: picked[1].Version})
		}
	}

	return snap, nil
}

// Write creates the output directory if needed and overwrites both
// snapshot files. The files are written independently; a failure on the
// second leaves the first in place.
func (r *Runner) Write(ctx context.Context, snap *Snapshot) error {
	if err := r.fs.MkdirAll(ctx, r.output.Dir, core.PermDirDefault); err != nil {
		return fmt.Errorf("create output directory %q: %w", r.output.Dir, err)
	}

	targets := []struct {
		file       string
		selections []Selection
	}{
		{r.output.LatestFile, snap.Latest},
		{r.output.PenultimateFile, snap.Penultimate},
	}

	for _, t := range targets {
		data, err := Encode(t.selections)
		if err != nil {
			return err
		}

		path := filepath.Join(r.output.Dir, t.file)
		if err := r.fs.WriteFile(ctx, path, data, core.PermPublicRead); err != nil {
			return fmt.Errorf("failed to write file %q: %w", path, err)
		}
		r.log.Debug().Str("path", path).Int("entries", len(t.selections)).Msg("wrote snapshot")
	}

	return nil
}

// Encode renders selections as a JSON array indented with four spaces and
// terminated by a newline. A nil slice encodes as an empty array.
func Encode(selections []Selection) ([]byte, error) {
	if selections == nil {
		selections = []Selection{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(selections); err != nil {
		return nil, fmt.Errorf("encode selections: %w", err)
	}
	return buf.Bytes(), nil
}
