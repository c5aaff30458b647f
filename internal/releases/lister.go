package releases

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	gh "github.com/google/go-github/v80/github"

	"github.com/dockerpeek/dockerpeek/internal/semver"
)

const (
	// DefaultOwner and DefaultRepo identify the analysis plugin repository.
	DefaultOwner = "infinilabs"
	DefaultRepo  = "analysis-ik"

	// placeholderTag is a moving tag some projects publish next to real ones.
	placeholderTag = "latest"

	// keep is how many tags Latest returns.
	keep = 2
)

// Lister queries the releases of one repository.
type Lister struct {
	gh    *gh.Client
	owner string
	repo  string
}

// Option configures a Lister.
type Option func(*Lister) error

// WithBaseURL points the client at a different API root, such as a GitHub
// Enterprise instance or a test server.
func WithBaseURL(raw string) Option {
	return func(l *Lister) error {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid API base URL %q: %w", raw, err)
		}
		l.gh.BaseURL = u
		return nil
	}
}

// NewLister creates an unauthenticated Lister for owner/repo using hc for
// transport. A nil hc uses http.DefaultClient.
func NewLister(hc *http.Client, owner, repo string, opts ...Option) (*Lister, error) {
	l := &Lister{
		gh:    gh.NewClient(hc),
		owner: owner,
		repo:  repo,
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Latest returns up to two tag names of the newest published releases,
// newest first. Drafts, prereleases and the "latest" placeholder tag are
// ignored. Only the first page of results is consulted.
//
// API and transport failures are returned as-is; callers treat them as
// fatal.
func (l *Lister) Latest(ctx context.Context) ([]string, error) {
	list, _, err := l.gh.Repositories.ListReleases(ctx, l.owner, l.repo, nil)
	if err != nil {
		return nil, fmt.Errorf("list releases of %s/%s: %w", l.owner, l.repo, err)
	}

	return NewestTags(list, keep), nil
}

// NewestTags filters releases down to published, non-placeholder entries,
// sorts them by tag version descending and returns at most n tag names.
func NewestTags(list []*gh.RepositoryRelease, n int) []string {
	type candidate struct {
		tag     string
		version semver.Version
	}

	candidates := make([]candidate, 0, len(list))
	for _, r := range list {
		if r == nil || r.GetDraft() || r.GetPrerelease() {
			continue
		}
		tag := r.GetTagName()
		if strings.EqualFold(tag, placeholderTag) {
			continue
		}
		candidates = append(candidates, candidate{tag: tag, version: semver.ParseStrict(tag)})
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return b.version.Compare(a.version)
	})

	tags := make([]string, 0, n)
	for _, c := range candidates {
		if len(tags) == n {
			break
		}
		tags = append(tags, c.tag)
	}
	return tags
}
