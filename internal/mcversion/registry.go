package mcversion

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// Aliases accepted by Resolve.
const (
	AliasLatest         = "latest"
	AliasSnapshot       = "snapshot"
	AliasLatestSnapshot = "latest_snapshot"
)

// ErrBadVersion matches every *BadVersion through errors.Is.
var ErrBadVersion = errors.New("bad version")

// BadVersion reports an identifier with no registry entry.
type BadVersion struct {
	ID string
}

func (e *BadVersion) Error() string {
	return fmt.Sprintf("bad version %q", e.ID)
}

func (e *BadVersion) Is(target error) bool {
	return target == ErrBadVersion
}

// Suggestion returns an actionable hint for the user.
func (e *BadVersion) Suggestion() string {
	return "Use an exact version id such as " + LatestRelease + ", or one of latest, snapshot, latest_snapshot"
}

// entry is the generated table's row. Timestamps stay strings until the
// registry is first used.
type entry struct {
	kind            Kind
	id              string
	url             string
	time            string
	releaseTime     string
	sha1            string
	complianceLevel uint8
	serverURL       string
}

// Registry maps version ids to versions. It is never modified after
// construction and is safe for concurrent use without locking.
type Registry struct {
	versions       []Version // sorted by ID
	latestRelease  string
	latestSnapshot string
}

// NewRegistry builds a registry over versions. Ids must be unique and both
// latest ids must name one of the versions.
func NewRegistry(versions []Version, latestRelease, latestSnapshot string) (*Registry, error) {
	sorted := slices.Clone(versions)
	slices.SortFunc(sorted, func(a, b Version) int {
		return strings.Compare(a.ID, b.ID)
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].ID == sorted[i-1].ID {
			return nil, fmt.Errorf("duplicate version id %q", sorted[i].ID)
		}
	}

	r := &Registry{
		versions:       sorted,
		latestRelease:  latestRelease,
		latestSnapshot: latestSnapshot,
	}
	if _, ok := r.Lookup(latestRelease); !ok {
		return nil, fmt.Errorf("latest release %q is not registered", latestRelease)
	}
	if _, ok := r.Lookup(latestSnapshot); !ok {
		return nil, fmt.Errorf("latest snapshot %q is not registered", latestSnapshot)
	}
	return r, nil
}

func fromTable(rows []entry, latestRelease, latestSnapshot string) (*Registry, error) {
	versions := make([]Version, len(rows))
	for i, row := range rows {
		t, err := time.Parse(time.RFC3339, row.time)
		if err != nil {
			return nil, fmt.Errorf("version %s: time: %w", row.id, err)
		}
		rt, err := time.Parse(time.RFC3339, row.releaseTime)
		if err != nil {
			return nil, fmt.Errorf("version %s: release time: %w", row.id, err)
		}
		versions[i] = Version{
			Kind: row.kind,
			Record: Record{
				ID:              row.id,
				URL:             row.url,
				Time:            t,
				ReleaseTime:     rt,
				SHA1:            row.sha1,
				ComplianceLevel: row.complianceLevel,
				ServerURL:       row.serverURL,
			},
		}
	}
	return NewRegistry(versions, latestRelease, latestSnapshot)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := fromTable(table[:], LatestRelease, LatestSnapshot)
	if err != nil {
		panic("mcversion: generated table is invalid, rerun go generate: " + err.Error())
	}
	return r
})

// Default returns the registry compiled into the binary. The table's
// timestamps are parsed on the first call only.
func Default() *Registry {
	return defaultRegistry()
}

// Lookup returns the version with exactly this id. Aliases are not applied.
func (r *Registry) Lookup(id string) (Version, bool) {
	i, ok := slices.BinarySearchFunc(r.versions, id, func(v Version, id string) int {
		return strings.Compare(v.ID, id)
	})
	if !ok {
		return Version{}, false
	}
	return r.versions[i], true
}

// Resolve maps a user-supplied identifier to a version. "" and "latest"
// name the latest release, "snapshot" and "latest_snapshot" the latest
// snapshot; anything else must be an exact id. A miss is a *BadVersion.
func (r *Registry) Resolve(id string) (Version, error) {
	key := id
	switch id {
	case "", AliasLatest:
		key = r.latestRelease
	case AliasSnapshot, AliasLatestSnapshot:
		key = r.latestSnapshot
	}

	v, ok := r.Lookup(key)
	if !ok {
		return Version{}, &BadVersion{ID: id}
	}
	return v, nil
}

// MustResolve is Resolve for identifiers known to be registered; it panics otherwise.
func (r *Registry) MustResolve(id string) Version {
	v, err := r.Resolve(id)
	if err != nil {
		panic(err)
	}
	return v
}

// LatestRelease returns the version upstream marked as the newest release.
func (r *Registry) LatestRelease() Version {
	return r.MustResolve(AliasLatest)
}

// LatestSnapshot returns the version upstream marked as the newest snapshot.
func (r *Registry) LatestSnapshot() Version {
	return r.MustResolve(AliasSnapshot)
}

// Len returns the number of registered versions.
func (r *Registry) Len() int {
	return len(r.versions)
}

// All returns every version, newest release time first. Versions released
// at the same instant keep id order. The slice is a copy.
func (r *Registry) All() []Version {
	out := slices.Clone(r.versions)
	slices.SortStableFunc(out, func(a, b Version) int {
		return b.Compare(a.Record)
	})
	return out
}

// Resolve resolves id against the compiled registry.
func Resolve(id string) (Version, error) {
	return Default().Resolve(id)
}

// Lookup looks id up in the compiled registry without applying aliases.
func Lookup(id string) (Version, bool) {
	return Default().Lookup(id)
}

// MustResolve resolves id against the compiled registry and panics on a miss.
func MustResolve(id string) Version {
	return Default().MustResolve(id)
}

// All returns every compiled version, newest first.
func All() []Version {
	return Default().All()
}
