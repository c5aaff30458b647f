// Package semver converts the loosely formatted version strings found in
// container image manifests and release tags into comparable values.
package semver

import (
	"strings"

	mmsemver "github.com/Masterminds/semver/v3"
)

// maxVersionLength is the maximum accepted length for a version string.
// Longer input is treated as unparseable.
const maxVersionLength = 128

// Version is a parsed version. The zero value is the minimum version: it
// compares lower than every successfully parsed version and equal to other
// minimum values.
type Version struct {
	raw    string
	parsed *mmsemver.Version
}

// Parse converts a manifest version string into a Version.
//
// Everything from the first '-' onwards is discarded before parsing, so
// "7.17.9-amd64" and "7.17.9" compare equal. Parse never fails: input that
// cannot be read as a dotted version yields the minimum Version.
//
// Accepted prefixes after suffix removal:
//   - "1.2.3", "1.2", "1"
//   - "v1.2.3" (optional v prefix)
func Parse(raw string) Version {
	prefix, _, _ := strings.Cut(raw, "-")
	return parse(raw, prefix)
}

// ParseStrict parses the whole string, keeping any pre-release or build
// suffix. It is used for release tags such as "v8.11.0" or "v9.0.0-rc.1".
// Like Parse it is total and returns the minimum Version on failure.
func ParseStrict(raw string) Version {
	return parse(raw, raw)
}

func parse(raw, candidate string) Version {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || len(candidate) > maxVersionLength {
		return Version{raw: raw}
	}

	v, err := mmsemver.NewVersion(candidate)
	if err != nil {
		return Version{raw: raw}
	}
	return Version{raw: raw, parsed: v}
}

// IsMin reports whether v is the minimum value, i.e. the input could not
// be parsed.
func (v Version) IsMin() bool {
	return v.parsed == nil
}

// Raw returns the string v was parsed from.
func (v Version) Raw() string {
	return v.raw
}

// String returns the normalized form of v, or the raw input for the
// minimum value.
func (v Version) String() string {
	if v.parsed == nil {
		return v.raw
	}
	return v.parsed.String()
}

// Compare returns -1 if v < other, 0 if they are equal and +1 if v > other.
// Numeric components are compared numerically, so 1.10.0 > 1.9.5.
func (v Version) Compare(other Version) int {
	switch {
	case v.parsed == nil && other.parsed == nil:
		return 0
	case v.parsed == nil:
		return -1
	case other.parsed == nil:
		return 1
	default:
		return v.parsed.Compare(other.parsed)
	}
}

// Family returns the first two dot-separated components of a raw version
// string ("2.3.2" -> "2.3"). Strings with fewer components are returned
// unchanged.
func Family(raw string) string {
	parts := strings.SplitN(raw, ".", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ".")
}
