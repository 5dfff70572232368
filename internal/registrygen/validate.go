// Package registrygen compiles an enriched manifest into Go source.
//
// The output is a sorted, constant array literal of version records plus
// the LatestRelease and LatestSnapshot constants. The linker lays the array
// out as static data, so the running binary never parses JSON or touches
// the network to answer a lookup.
package registrygen

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/okc-dev/okc/internal/manifest"
)

// InvalidSourceError lists every problem Validate found in a source.
type InvalidSourceError struct {
	Problems []string
}

func (e *InvalidSourceError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid registry source: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid registry source: %d problems:\n  - %s",
		len(e.Problems), strings.Join(e.Problems, "\n  - "))
}

// Suggestion returns an actionable hint for the user.
func (e *InvalidSourceError) Suggestion() string {
	return "Delete the cache file and run go generate again to refetch the manifest"
}

// Validate checks that src can be compiled into a registry whose lookups
// are all well-defined. It reports every problem at once.
func Validate(src *manifest.Source) error {
	if src == nil {
		return &InvalidSourceError{Problems: []string{"source is nil"}}
	}

	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(src.Versions) == 0 {
		addf("no versions")
	}

	kinds := make(map[string]string, len(src.Versions))
	for i, e := range src.Versions {
		if e.ID == "" {
			addf("entry %d has an empty id", i)
			continue
		}
		if _, dup := kinds[e.ID]; dup {
			addf("duplicate id %q", e.ID)
			continue
		}
		kinds[e.ID] = e.Type

		switch e.Type {
		case manifest.KindRelease:
			if e.ReleaseTime.Before(manifest.ReleaseCutoff) {
				addf("release %q predates the %s cutoff", e.ID, manifest.ReleaseCutoff.Format("2006-01-02"))
			}
		case manifest.KindSnapshot:
		default:
			addf("%q has unsupported kind %q", e.ID, e.Type)
		}

		if e.ReleaseTime.IsZero() {
			addf("%q has no release time", e.ID)
		}
		if e.Time.IsZero() {
			addf("%q has no time", e.ID)
		}
		if u, err := url.Parse(e.ServerURL); e.ServerURL == "" || err != nil || !u.IsAbs() {
			addf("%q has an invalid server url %q", e.ID, e.ServerURL)
		}
	}

	switch kind, ok := kinds[src.Latest.Release]; {
	case !ok:
		addf("latest release %q is not in the version list", src.Latest.Release)
	case kind != manifest.KindRelease:
		addf("latest release %q is a %s", src.Latest.Release, kind)
	}
	// Upstream points latest.snapshot at the newest release when no snapshot
	// has shipped since, so only existence is required here.
	if _, ok := kinds[src.Latest.Snapshot]; !ok {
		addf("latest snapshot %q is not in the version list", src.Latest.Snapshot)
	}

	if len(problems) > 0 {
		return &InvalidSourceError{Problems: problems}
	}
	return nil
}
