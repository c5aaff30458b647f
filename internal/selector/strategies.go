package selector

import (
	"strings"

	"github.com/dockerpeek/dockerpeek/internal/manifest"
	"github.com/dockerpeek/dockerpeek/internal/semver"
)

const slimMarker = "-slim"

// FilterPluginTags keeps records whose version contains the numeric part of
// any plugin tag ("v8.11.0" matches "8.11.0" and "8.11.0-amd64"). With no
// plugin tags nothing survives.
func FilterPluginTags(records []manifest.Record, pluginTags []string) []manifest.Record {
	needles := make([]string, 0, len(pluginTags))
	for _, tag := range pluginTags {
		needles = append(needles, strings.TrimPrefix(tag, "v"))
	}

	out := make([]manifest.Record, 0, len(records))
	for _, r := range records {
		for _, needle := range needles {
			if strings.Contains(r.Version, needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// FilterExcludeSlim drops the slim image variants.
func FilterExcludeSlim(records []manifest.Record, _ []string) []manifest.Record {
	out := make([]manifest.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(r.Version, slimMarker) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// PickTop returns the first n records.
func PickTop(sorted []manifest.Record, n int) []manifest.Record {
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// PickFamilies returns the newest record of each of the first n distinct
// major.minor families, in the order they are encountered.
func PickFamilies(sorted []manifest.Record, n int) []manifest.Record {
	seen := make(map[string]bool, n)
	out := make([]manifest.Record, 0, n)

	for _, r := range sorted {
		family := semver.Family(r.Version)
		if seen[family] {
			continue
		}
		seen[family] = true
		out = append(out, r)
		if len(out) == n {
			break
		}
	}
	return out
}
