// Package selector picks the latest and penultimate versions of a service
// from its manifest records.
//
// Each service is handled by a Strategy: an optional filter that narrows the
// records, and a picker that chooses up to two of them once they are sorted
// newest first. Strategies are looked up by service name, case-insensitively;
// services without an entry use the default strategy.
package selector

import (
	"slices"
	"strings"

	"github.com/dockerpeek/dockerpeek/internal/manifest"
	"github.com/dockerpeek/dockerpeek/internal/semver"
)

// maxPicks is the number of ranks produced per service (latest, penultimate).
const maxPicks = 2

// FilterFunc narrows a service's records before sorting. It must return a
// new slice and leave records untouched.
type FilterFunc func(records []manifest.Record, pluginTags []string) []manifest.Record

// PickFunc chooses up to n records from a list sorted newest first.
type PickFunc func(sorted []manifest.Record, n int) []manifest.Record

// Strategy is the selection behavior for one service.
type Strategy struct {
	Filter FilterFunc
	Pick   PickFunc
}

// DefaultStrategy applies no filter and picks the two newest records.
var DefaultStrategy = Strategy{Pick: PickTop}

// strategies is keyed by lower-cased service name.
var strategies = map[string]Strategy{
	"elasticsearch": {Filter: FilterPluginTags, Pick: PickTop},
	"nacos":         {Filter: FilterExcludeSlim, Pick: PickFamilies},
}

// StrategyFor returns the strategy registered for service.
func StrategyFor(service string) Strategy {
	if s, ok := strategies[strings.ToLower(service)]; ok {
		return s
	}
	return DefaultStrategy
}

// Select returns up to two records for service, newest first. pluginTags
// is only consulted by strategies that filter on plugin compatibility.
func Select(records []manifest.Record, service string, pluginTags []string) []manifest.Record {
	strategy := StrategyFor(service)

	candidates := slices.Clone(records)
	if strategy.Filter != nil {
		candidates = strategy.Filter(candidates, pluginTags)
	}

	SortDescending(candidates)

	pick := strategy.Pick
	if pick == nil {
		pick = PickTop
	}
	return pick(candidates, maxPicks)
}

// SortDescending sorts records in place, newest version first. Records that
// compare equal keep their relative order; unparseable versions sort last.
func SortDescending(records []manifest.Record) {
	parsed := make(map[string]semver.Version, len(records))
	for _, r := range records {
		if _, ok := parsed[r.Version]; !ok {
			parsed[r.Version] = semver.Parse(r.Version)
		}
	}

	slices.SortStableFunc(records, func(a, b manifest.Record) int {
		return parsed[b.Version].Compare(parsed[a.Version])
	})
}
