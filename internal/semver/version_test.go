package semver

import (
	"strings"
	"testing"
)

func TestParse_Unparseable(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"latest",
		"RELEASE.2024-01-16T16-07-38Z",
		"-slim",
		strings.Repeat("1", maxVersionLength+1),
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			v := Parse(in)
			if !v.IsMin() {
				t.Errorf("Parse(%q) = %s, want minimum", in, v)
			}
			if v.Raw() != in {
				t.Errorf("Raw() = %q, want %q", v.Raw(), in)
			}
		})
	}
}

func TestParse_StripsSuffix(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"7.17.9-amd64", "7.17.9"},
		{"v2.3.2-slim", "v2.3.2"},
		{"3.12.13-management-alpine", "3.12.13"},
		{"1.25.3-alpine", "1.25.3"},
	}

	for _, tt := range tests {
		t.Run(tt.a, func(t *testing.T) {
			if got := Parse(tt.a).Compare(Parse(tt.b)); got != 0 {
				t.Errorf("Parse(%q).Compare(Parse(%q)) = %d, want 0", tt.a, tt.b, got)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.10.0", "1.9.5", 1},
		{"1.9.5", "1.2.0", 1},
		{"1.2.0", "1.10.0", -1},
		{"8.11.0", "8.11.0", 0},
		{"v2.3.2", "2.3.2", 0},
		{"2.3", "2.3.0", 0},
		{"1.0.0", "abc", 1},
		{"abc", "1.0.0", -1},
		{"abc", "xyz", 0},
		{"0.0.1", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			if got := Parse(tt.a).Compare(Parse(tt.b)); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestParseStrict_KeepsPreRelease(t *testing.T) {
	final := ParseStrict("v9.0.0")
	rc := ParseStrict("v9.0.0-rc.1")

	if rc.IsMin() || final.IsMin() {
		t.Fatal("expected both tags to parse")
	}
	if got := rc.Compare(final); got != -1 {
		t.Errorf("pre-release should sort before final release, Compare = %d", got)
	}
	if !ParseStrict("latest").IsMin() {
		t.Error("expected \"latest\" to be the minimum version")
	}
}

func TestVersion_ZeroValueIsMin(t *testing.T) {
	var v Version
	if !v.IsMin() {
		t.Error("zero Version should be the minimum")
	}
	if got := v.Compare(Parse("0.0.0")); got != -1 {
		t.Errorf("zero Version Compare = %d, want -1", got)
	}
}

func TestFamily(t *testing.T) {
	tests := map[string]string{
		"2.3.2":       "2.3",
		"2.3.2.1":     "2.3",
		"v2.3.2-slim": "v2.3",
		"2.3":         "2.3",
		"2":           "2",
		"":            "",
	}

	for in, want := range tests {
		if got := Family(in); got != want {
			t.Errorf("Family(%q) = %q, want %q", in, got, want)
		}
	}
}
