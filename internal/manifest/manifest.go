// Package manifest downloads and decodes the per-service version manifests.
//
// A manifest is a JSON array of objects, each describing one published
// image tag. Only the "version" field is used; other fields are ignored.
package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrNotArray is returned when a manifest's top-level value is not an array.
var ErrNotArray = errors.New("manifest is not a JSON array")

// Record is one entry of a manifest.
type Record struct {
	Version string `json:"version"`
}

// Decode extracts the records of a manifest document. Entries that are not
// objects or lack a string "version" field are skipped.
func Decode(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid manifest JSON")
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, ErrNotArray
	}

	entries := doc.Array()
	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsObject() {
			continue
		}
		v := entry.Get("version")
		if v.Type != gjson.String {
			continue
		}
		records = append(records, Record{Version: v.Str})
	}

	return records, nil
}

// URL joins the manifest base URL, repository path and filename.
func URL(baseURL, repoPath, file string) string {
	return strings.TrimRight(baseURL, "/") + "/" +
		strings.Trim(repoPath, "/") + "/" +
		strings.TrimLeft(file, "/")
}
