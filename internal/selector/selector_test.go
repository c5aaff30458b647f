package selector

import (
	"slices"
	"testing"

	"github.com/dockerpeek/dockerpeek/internal/manifest"
)

func records(versions ...string) []manifest.Record {
	out := make([]manifest.Record, 0, len(versions))
	for _, v := range versions {
		out = append(out, manifest.Record{Version: v})
	}
	return out
}

func versions(recs []manifest.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Version)
	}
	return out
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		service    string
		input      []string
		pluginTags []string
		want       []string
	}{
		{
			name:    "numeric not lexicographic order",
			service: "Redis",
			input:   []string{"1.2.0", "1.10.0", "1.9.5"},
			want:    []string{"1.10.0", "1.9.5"},
		},
		{
			name:    "fewer than two records",
			service: "Nginx",
			input:   []string{"1.25.3"},
			want:    []string{"1.25.3"},
		},
		{
			name:    "no records",
			service: "Minio",
			input:   nil,
			want:    []string{},
		},
		{
			name:    "suffixes ignored when ordering",
			service: "RabbitMQ",
			input:   []string{"3.12.13-management", "3.13.0-alpine", "3.12.14"},
			want:    []string{"3.13.0-alpine", "3.12.14"},
		},
		{
			name:    "unparseable versions sort last",
			service: "Minio",
			input:   []string{"RELEASE.2024-01-16T16-07-38Z", "1.0.0", "latest"},
			want:    []string{"1.0.0", "RELEASE.2024-01-16T16-07-38Z"},
		},
		{
			name:       "elasticsearch keeps plugin-compatible versions",
			service:    "Elasticsearch",
			input:      []string{"7.17.9", "7.17.3", "8.11.0"},
			pluginTags: []string{"v7.17.9", "v8.11.0"},
			want:       []string{"8.11.0", "7.17.9"},
		},
		{
			name:       "elasticsearch dispatch is case-insensitive",
			service:    "ELASTICSEARCH",
			input:      []string{"8.12.0", "8.11.0"},
			pluginTags: []string{"v8.11.0"},
			want:       []string{"8.11.0"},
		},
		{
			name:    "elasticsearch without plugin tags yields nothing",
			service: "Elasticsearch",
			input:   []string{"8.11.0"},
			want:    []string{},
		},
		{
			name:    "nacos groups by family",
			service: "Nacos",
			input:   []string{"2.3.2", "2.3.1", "2.2.4", "2.1.0"},
			want:    []string{"2.3.2", "2.2.4"},
		},
		{
			name:    "nacos excludes slim before grouping",
			service: "nacos",
			input:   []string{"v2.4.0-slim", "v2.3.2", "v2.3.2-slim", "v2.3.1", "v2.2.4"},
			want:    []string{"v2.3.2", "v2.2.4"},
		},
		{
			name:    "nacos single family",
			service: "Nacos",
			input:   []string{"2.3.1", "2.3.2"},
			want:    []string{"2.3.2"},
		},
		{
			name:       "plugin tags ignored by other services",
			service:    "GeoServer",
			input:      []string{"2.24.2", "2.23.4"},
			pluginTags: []string{"v9.9.9"},
			want:       []string{"2.24.2", "2.23.4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := versions(Select(records(tt.input...), tt.service, tt.pluginTags))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Select() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	input := records("1.0.0", "3.0.0", "2.0.0")
	_ = Select(input, "Redis", nil)

	if got := versions(input); !slices.Equal(got, []string{"1.0.0", "3.0.0", "2.0.0"}) {
		t.Errorf("input was reordered: %v", got)
	}
}

func TestSortDescending_Stable(t *testing.T) {
	recs := records("7.17.9-amd64", "7.17.9", "7.17.9-arm64", "8.0.0")
	SortDescending(recs)

	want := []string{"8.0.0", "7.17.9-amd64", "7.17.9", "7.17.9-arm64"}
	if got := versions(recs); !slices.Equal(got, want) {
		t.Errorf("SortDescending() = %v, want %v", got, want)
	}
}

func TestStrategyFor_Default(t *testing.T) {
	s := StrategyFor("unknown-service")
	if s.Filter != nil {
		t.Error("default strategy should not filter")
	}
	if s.Pick == nil {
		t.Error("default strategy must pick")
	}
}

func TestFilterPluginTags_SubstringMatch(t *testing.T) {
	got := versions(FilterPluginTags(records("8.11.0-amd64", "8.11.1", "7.17.9"), []string{"v8.11.0"}))
	if !slices.Equal(got, []string{"8.11.0-amd64"}) {
		t.Errorf("FilterPluginTags() = %v", got)
	}
}
