// Package manifest acquires Mojang's version manifest at build time.
//
// The upstream document lists every published version; each retained entry
// is enriched with its server jar URL through a second request to the
// entry's detail document. The enriched set (a Source) is written once to a
// local cache file and read from there on every later build.
package manifest

import "time"

// Upstream version kinds. Only KindRelease and KindSnapshot survive Filter.
const (
	KindRelease  = "release"
	KindSnapshot = "snapshot"
	KindOldBeta  = "old_beta"
	KindOldAlpha = "old_alpha"
)

// ReleaseCutoff is the oldest release time kept. Releases before it predate
// server downloads in the launcher metadata.
var ReleaseCutoff = time.Date(2012, time.March, 29, 22, 0, 0, 0, time.UTC)

// Latest holds the ids the upstream manifest marks as newest.
type Latest struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

// Upstream is the version_manifest_v2.json document.
type Upstream struct {
	Latest   Latest            `json:"latest"`
	Versions []UpstreamVersion `json:"versions"`
}

// UpstreamVersion is one entry of the upstream manifest.
type UpstreamVersion struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	URL             string    `json:"url"`
	Time            time.Time `json:"time"`
	ReleaseTime     time.Time `json:"releaseTime"`
	SHA1            string    `json:"sha1"`
	ComplianceLevel uint8     `json:"complianceLevel"`
}

// detailDocument is the subset of a per-version document mcgen reads.
type detailDocument struct {
	Downloads struct {
		Server *struct {
			URL string `json:"url"`
		} `json:"server"`
	} `json:"downloads"`
}

// Source is the enriched, filtered manifest: the cache file's content and
// the registry compiler's input.
type Source struct {
	Latest   Latest  `json:"latest"`
	Versions []Entry `json:"versions"`
}

// Entry is an upstream version plus its resolved server download URL.
type Entry struct {
	Type            string    `json:"type"`
	ID              string    `json:"id"`
	URL             string    `json:"url"`
	Time            time.Time `json:"time"`
	ReleaseTime     time.Time `json:"releaseTime"`
	SHA1            string    `json:"sha1"`
	ComplianceLevel uint8     `json:"complianceLevel"`
	ServerURL       string    `json:"serverUrl"`
}

func newEntry(v UpstreamVersion, serverURL string) Entry {
	return Entry{
		Type:            v.Type,
		ID:              v.ID,
		URL:             v.URL,
		Time:            v.Time.UTC(),
		ReleaseTime:     v.ReleaseTime.UTC(),
		SHA1:            v.SHA1,
		ComplianceLevel: v.ComplianceLevel,
		ServerURL:       serverURL,
	}
}
