package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpstream serves a manifest at /manifest.json and one detail document
// per version at /v1/packages/<id>.json. Versions listed in noServer get a
// detail document without downloads.server.
type fakeUpstream struct {
	*httptest.Server
	requests atomic.Int32
	details  atomic.Int32
}

type upstreamVersion struct {
	id          string
	kind        string
	releaseTime string
}

func newFakeUpstream(t *testing.T, latest Latest, versions []upstreamVersion, noServer ...string) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{}
	missing := map[string]bool{}
	for _, id := range noServer {
		missing[id] = true
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/manifest.json", func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		doc := map[string]any{
			"latest": map[string]string{"release": latest.Release, "snapshot": latest.Snapshot},
		}
		var list []map[string]any
		for _, v := range versions {
			list = append(list, map[string]any{
				"id":              v.id,
				"type":            v.kind,
				"url":             f.URL + "/v1/packages/" + v.id + ".json",
				"time":            v.releaseTime,
				"releaseTime":     v.releaseTime,
				"sha1":            strings.Repeat("a", 40),
				"complianceLevel": 1,
			})
		}
		doc["versions"] = list
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	})
	mux.HandleFunc("/v1/packages/", func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		f.details.Add(1)
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v1/packages/"), ".json")
		doc := map[string]any{"id": id, "downloads": map[string]any{}}
		if !missing[id] {
			doc["downloads"] = map[string]any{
				"client": map[string]string{"url": "https://piston-data.mojang.com/v1/objects/c/client.jar"},
				"server": map[string]string{"url": "https://piston-data.mojang.com/v1/objects/" + id + "/server.jar"},
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func (f *fakeUpstream) fetcher() *Fetcher {
	return NewFetcher(WithHTTPClient(f.Client()), WithManifestURL(f.URL+"/manifest.json"))
}

var sampleVersions = []upstreamVersion{
	{"23w14a", KindSnapshot, "2023-04-05T12:05:17+00:00"},
	{"1.19.4", KindRelease, "2023-03-14T12:56:18+00:00"},
	{"1.12", KindRelease, "2017-06-02T13:50:27+00:00"},
	{"1.2.1", KindRelease, "2012-02-29T22:00:00+00:00"},
	{"12w01a", KindSnapshot, "2012-01-05T22:00:00+00:00"},
	{"b1.8.1", KindOldBeta, "2011-09-18T22:00:00+00:00"},
	{"a1.0.4", KindOldAlpha, "2010-07-08T22:00:00+00:00"},
}

var sampleLatest = Latest{Release: "1.19.4", Snapshot: "23w14a"}

func TestFetcher_Acquire(t *testing.T) {
	up := newFakeUpstream(t, sampleLatest, sampleVersions)

	src, err := up.fetcher().Acquire(context.Background())
	require.NoError(t, err)

	assert.Equal(t, sampleLatest, src.Latest)

	var ids []string
	for _, e := range src.Versions {
		ids = append(ids, e.ID)
		assert.Equal(t, "https://piston-data.mojang.com/v1/objects/"+e.ID+"/server.jar", e.ServerURL)
		assert.Equal(t, time.UTC, e.ReleaseTime.Location())
	}
	assert.Equal(t, []string{"23w14a", "1.19.4", "1.12", "12w01a"}, ids)
	assert.EqualValues(t, 4, up.details.Load(), "one detail request per retained version")
}

func TestFetcher_FetchManifest_NoLatest(t *testing.T) {
	up := newFakeUpstream(t, Latest{}, sampleVersions)

	_, err := up.fetcher().FetchManifest(context.Background())

	var mErr *Error
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, ErrTypeValidation, mErr.Type)
}

func TestFetcher_MissingServerDownload(t *testing.T) {
	up := newFakeUpstream(t, sampleLatest, sampleVersions, "1.12")

	_, err := up.fetcher().Acquire(context.Background())

	var mErr *Error
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, ErrTypeParsing, mErr.Type)
	assert.Contains(t, mErr.Error(), "1.12")
}

func TestFetcher_StatusCodes(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorType
	}{
		{http.StatusNotFound, ErrTypeNotFound},
		{http.StatusTooManyRequests, ErrTypeRateLimit},
		{http.StatusInternalServerError, ErrTypeNetwork},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			f := NewFetcher(WithHTTPClient(server.Client()), WithManifestURL(server.URL))
			_, err := f.FetchManifest(context.Background())

			var mErr *Error
			require.ErrorAs(t, err, &mErr)
			assert.Equal(t, tt.want, mErr.Type)
			assert.Contains(t, mErr.Error(), "status")
		})
	}
}

func TestFetcher_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"latest": {"release": `))
	}))
	defer server.Close()

	f := NewFetcher(WithHTTPClient(server.Client()), WithManifestURL(server.URL))
	_, err := f.FetchManifest(context.Background())

	var mErr *Error
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, ErrTypeParsing, mErr.Type)
}

func TestFetcher_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	f := NewFetcher(WithHTTPClient(&http.Client{}), WithManifestURL(addr))
	_, err := f.FetchManifest(context.Background())

	var mErr *Error
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, ErrTypeConnection, mErr.Type)
	assert.True(t, errors.Unwrap(mErr) != nil)
}
