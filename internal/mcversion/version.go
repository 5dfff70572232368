package mcversion

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind tells releases and snapshots apart. No other kind is representable.
type Kind uint8

const (
	Release Kind = iota
	Snapshot
)

// Identifiers used by the generated table.
const (
	kindRelease  = Release
	kindSnapshot = Snapshot
)

func (k Kind) String() string {
	switch k {
	case Release:
		return "release"
	case Snapshot:
		return "snapshot"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "release":
		return Release, nil
	case "snapshot":
		return Snapshot, nil
	default:
		return 0, fmt.Errorf("unknown version kind %q", s)
	}
}

// Record is the immutable metadata of one Minecraft version.
type Record struct {
	ID              string
	URL             string // detail document; only meaningful at build time
	Time            time.Time
	ReleaseTime     time.Time
	SHA1            string // sha1 of the detail document
	ComplianceLevel uint8
	ServerURL       string // vanilla server jar
}

// Compare orders records by ReleaseTime alone: -1 if r is older than o,
// +1 if newer, 0 if both were released at the same instant. Records with
// equal release times are not otherwise distinguished.
func (r Record) Compare(o Record) int {
	return r.ReleaseTime.Compare(o.ReleaseTime)
}

// Less reports whether r was released before o.
func (r Record) Less(o Record) bool {
	return r.Compare(o) < 0
}

// Version is a Record tagged with its Kind.
type Version struct {
	Kind Kind
	Record
}

func (v Version) String() string {
	return v.ID
}

// IsRelease reports whether v is a full release.
func (v Version) IsRelease() bool {
	return v.Kind == Release
}

// MarshalJSON renders v the way the manifest cache stores it, with the
// kind in a "type" field next to the record fields.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type            string    `json:"type"`
		ID              string    `json:"id"`
		URL             string    `json:"url"`
		Time            time.Time `json:"time"`
		ReleaseTime     time.Time `json:"releaseTime"`
		SHA1            string    `json:"sha1"`
		ComplianceLevel uint8     `json:"complianceLevel"`
		ServerURL       string    `json:"serverUrl"`
	}{
		Type:            v.Kind.String(),
		ID:              v.ID,
		URL:             v.URL,
		Time:            v.Time,
		ReleaseTime:     v.ReleaseTime,
		SHA1:            v.SHA1,
		ComplianceLevel: v.ComplianceLevel,
		ServerURL:       v.ServerURL,
	})
}
