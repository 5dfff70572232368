package registrygen

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/okc-dev/okc/internal/manifest"
)

// Options controls the rendered file.
type Options struct {
	// Package is the package clause of the generated file. Default: "mcversion".
	Package string
}

type tableEntry struct {
	Kind            string
	ID              string
	URL             string
	Time            string
	ReleaseTime     string
	SHA1            string
	ComplianceLevel uint8
	ServerURL       string
}

type tableData struct {
	Package        string
	LatestRelease  string
	LatestSnapshot string
	Entries        []tableEntry
}

var tableTemplate = template.Must(template.New("table").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`// Code generated by mcgen. DO NOT EDIT.

package {{ .Package }}

// LatestRelease is the id upstream marked as the newest release.
const LatestRelease = {{ quote .LatestRelease }}

// LatestSnapshot is the id upstream marked as the newest snapshot.
const LatestSnapshot = {{ quote .LatestSnapshot }}

// table is sorted by id.
var table = [...]entry{
{{- range .Entries }}
	{kind: {{ .Kind }}, id: {{ quote .ID }}, url: {{ quote .URL }}, time: {{ quote .Time }}, releaseTime: {{ quote .ReleaseTime }}, sha1: {{ quote .SHA1 }}, complianceLevel: {{ .ComplianceLevel }}, serverURL: {{ quote .ServerURL }}},
{{- end }}
}
`))

// Compile validates src and renders it as a gofmt-formatted Go file.
// Equal sources always produce byte-identical output. On error nothing is
// returned, so callers never see a partial table.
func Compile(src *manifest.Source, opts Options) ([]byte, error) {
	if err := Validate(src); err != nil {
		return nil, err
	}
	if opts.Package == "" {
		opts.Package = "mcversion"
	}

	data := tableData{
		Package:        opts.Package,
		LatestRelease:  src.Latest.Release,
		LatestSnapshot: src.Latest.Snapshot,
		Entries:        make([]tableEntry, 0, len(src.Versions)),
	}
	for _, e := range src.Versions {
		data.Entries = append(data.Entries, tableEntry{
			Kind:            kindIdent(e.Type),
			ID:              e.ID,
			URL:             e.URL,
			Time:            e.Time.UTC().Format(time.RFC3339),
			ReleaseTime:     e.ReleaseTime.UTC().Format(time.RFC3339),
			SHA1:            e.SHA1,
			ComplianceLevel: e.ComplianceLevel,
			ServerURL:       e.ServerURL,
		})
	}
	slices.SortFunc(data.Entries, func(a, b tableEntry) int {
		return strings.Compare(a.ID, b.ID)
	})

	var buf bytes.Buffer
	if err := tableTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render registry table: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format registry table: %w", err)
	}
	return out, nil
}

func kindIdent(kind string) string {
	if kind == manifest.KindSnapshot {
		return "kindSnapshot"
	}
	return "kindRelease"
}
