// Package flavor decides which server distributions can run a Minecraft
// version and where to download them.
//
// Every flavor other than Vanilla is compatible with a half-open range of
// versions ordered by release time. Incompatibility is not an error: the
// check answers false and URL answers nil.
package flavor

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/okc-dev/okc/internal/mcversion"
)

// Flavor is a server distribution.
type Flavor uint8

const (
	Vanilla Flavor = iota
	Paper
)

// PaperMinimum is the oldest version Paper runs.
const PaperMinimum = "1.12"

var names = [...]string{
	Vanilla: "vanilla",
	Paper:   "paper",
}

func (f Flavor) String() string {
	if int(f) < len(names) {
		return names[f]
	}
	return fmt.Sprintf("Flavor(%d)", uint8(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f Flavor) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (f *Flavor) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// AllowsSnapshots reports whether f runs snapshot versions at all. Only
// Vanilla does; every other flavor is limited to releases.
func (f Flavor) AllowsSnapshots() bool {
	return f == Vanilla
}

// All returns every flavor in declaration order.
func All() []Flavor {
	return []Flavor{Vanilla, Paper}
}

// ErrUnknownFlavor matches every *UnknownError.
var ErrUnknownFlavor = errors.New("unknown flavor")

// UnknownError reports a flavor name Parse does not recognize.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown flavor %q", e.Name)
}

func (e *UnknownError) Is(target error) bool {
	return target == ErrUnknownFlavor
}

// Suggestion returns an actionable hint for the user.
func (e *UnknownError) Suggestion() string {
	return "Known flavors: " + strings.Join(names[:], ", ")
}

// Parse returns the flavor with the given name, ignoring case.
func Parse(s string) (Flavor, error) {
	for i, name := range names {
		if strings.EqualFold(s, name) {
			return Flavor(i), nil
		}
	}
	return 0, &UnknownError{Name: s}
}

// UnsupportedError reports a flavor that cannot run a version.
type UnsupportedError struct {
	Flavor  Flavor
	Version mcversion.Version
	Range   Range
}

func (e *UnsupportedError) Error() string {
	if e.Version.Kind == mcversion.Snapshot && e.Flavor != Vanilla {
		return fmt.Sprintf("%s does not support snapshot %s", e.Flavor, e.Version.ID)
	}
	return fmt.Sprintf("%s does not support %s %s (supported: %s)", e.Flavor, e.Version.Kind, e.Version.ID, e.Range)
}

// Suggestion returns an actionable hint for the user.
func (e *UnsupportedError) Suggestion() string {
	if e.Flavor == Vanilla {
		return ""
	}
	return fmt.Sprintf("Pick a release within %s, or use the vanilla server", e.Range)
}

// Range is a half-open interval [From, To) over release time. A nil bound
// is unbounded.
type Range struct {
	From *mcversion.Record
	To   *mcversion.Record
}

// Contains reports whether rec was released inside r.
func (r Range) Contains(rec mcversion.Record) bool {
	if r.From != nil && rec.Less(*r.From) {
		return false
	}
	if r.To != nil && !rec.Less(*r.To) {
		return false
	}
	return true
}

func (r Range) String() string {
	from, to := "", ""
	if r.From != nil {
		from = r.From.ID
	}
	if r.To != nil {
		to = r.To.ID
	}
	switch {
	case from == "" && to == "":
		return "all versions"
	case to == "":
		return from + " and newer"
	case from == "":
		return "older than " + to
	default:
		return from + " up to " + to
	}
}

// Checker applies flavor rules against a registry.
type Checker struct {
	paper Range
}

// NewChecker resolves the range bounds of every flavor in registry.
func NewChecker(registry *mcversion.Registry) (*Checker, error) {
	minimum, ok := registry.Lookup(PaperMinimum)
	if !ok {
		return nil, fmt.Errorf("paper lower bound %s is not registered", PaperMinimum)
	}
	return &Checker{
		paper: Range{From: &minimum.Record},
	}, nil
}

var defaultChecker = sync.OnceValue(func() *Checker {
	c, err := NewChecker(mcversion.Default())
	if err != nil {
		panic("flavor: " + err.Error())
	}
	return c
})

// Default returns the checker for the compiled registry.
func Default() *Checker {
	return defaultChecker()
}

// Range returns the versions f supports. Vanilla's range is unbounded.
func (c *Checker) Range(f Flavor) Range {
	switch f {
	case Paper:
		return c.paper
	default:
		return Range{}
	}
}

// CheckVersion reports whether f can run v.
func (c *Checker) CheckVersion(f Flavor, v mcversion.Version) bool {
	if int(f) >= len(names) {
		return false
	}
	if v.Kind == mcversion.Snapshot && !f.AllowsSnapshots() {
		return false
	}
	return c.Range(f).Contains(v.Record)
}

// Require is CheckVersion reported as an *UnsupportedError.
func (c *Checker) Require(f Flavor, v mcversion.Version) error {
	if c.CheckVersion(f, v) {
		return nil
	}
	return &UnsupportedError{Flavor: f, Version: v, Range: c.Range(f)}
}

// URL returns the server download for f at v. It is nil whenever
// CheckVersion is false. Paper has no download rule yet and always
// answers nil.
func (c *Checker) URL(f Flavor, v mcversion.Version) (*url.URL, bool) {
	if !c.CheckVersion(f, v) {
		return nil, false
	}
	switch f {
	case Vanilla:
		// Registry URLs were validated when the table was generated.
		u, err := url.Parse(v.ServerURL)
		if err != nil {
			panic(fmt.Sprintf("flavor: malformed server url for %s: %v", v.ID, err))
		}
		return u, true
	default:
		// TODO: resolve Paper builds through the PaperMC downloads API.
		return nil, false
	}
}

// CheckVersion reports whether f can run v according to the compiled registry.
func (f Flavor) CheckVersion(v mcversion.Version) bool {
	return Default().CheckVersion(f, v)
}

// URL returns the server download for f at v according to the compiled registry.
func (f Flavor) URL(v mcversion.Version) (*url.URL, bool) {
	return Default().URL(f, v)
}
