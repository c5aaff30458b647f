package manifest

import (
	"context"

	"github.com/rs/zerolog"
)

// JSONGetter fetches a URL and returns its JSON body.
type JSONGetter interface {
	GetJSON(ctx context.Context, url string) ([]byte, error)
}

// Loader fetches manifests from a fixed base URL and repository path.
type Loader struct {
	getter   JSONGetter
	baseURL  string
	repoPath string
	log      zerolog.Logger
}

// NewLoader creates a Loader.
func NewLoader(getter JSONGetter, baseURL, repoPath string, log zerolog.Logger) *Loader {
	return &Loader{
		getter:   getter,
		baseURL:  baseURL,
		repoPath: repoPath,
		log:      log,
	}
}

// LoadAll fetches every file sequentially and returns the decoded records
// keyed by filename. A file that cannot be fetched or decoded is logged and
// left out of the map; so is a manifest with no usable records. LoadAll
// itself only fails when ctx is done.
func (l *Loader) LoadAll(ctx context.Context, files []string) (map[string][]Record, error) {
	out := make(map[string][]Record, len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		url := URL(l.baseURL, l.repoPath, file)
		l.log.Debug().Str("url", url).Msg("fetching manifest")

		body, err := l.getter.GetJSON(ctx, url)
		if err != nil {
			l.log.Warn().Str("url", url).Err(err).Msg("manifest request failed")
			continue
		}

		records, err := Decode(body)
		if err != nil {
			l.log.Warn().Str("url", url).Err(err).Msg("manifest could not be decoded")
			continue
		}

		if len(records) == 0 {
			l.log.Debug().Str("url", url).Msg("manifest has no versions")
			continue
		}

		out[file] = records
	}

	return out, nil
}
