package manifest

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObtain_CacheMissWritesCache(t *testing.T) {
	up := newFakeUpstream(t, sampleLatest, sampleVersions)
	path := filepath.Join(t.TempDir(), "nested", "versions.json")

	src, err := Obtain(context.Background(), path, up.fetcher(), nil)
	require.NoError(t, err)
	require.Len(t, src.Versions, 4)

	cached, err := ReadCache(path)
	require.NoError(t, err)
	assert.Equal(t, src, cached)
}

func TestObtain_CacheHitSkipsNetwork(t *testing.T) {
	up := newFakeUpstream(t, sampleLatest, sampleVersions)
	path := filepath.Join(t.TempDir(), "versions.json")

	first, err := Obtain(context.Background(), path, up.fetcher(), nil)
	require.NoError(t, err)
	before := up.requests.Load()

	second, err := Obtain(context.Background(), path, up.fetcher(), nil)
	require.NoError(t, err)

	assert.Equal(t, before, up.requests.Load(), "cache hit must not touch upstream")
	assert.Equal(t, first, second)
}

func TestObtain_TrustsCacheWithoutRevalidation(t *testing.T) {
	up := newFakeUpstream(t, sampleLatest, sampleVersions)
	path := filepath.Join(t.TempDir(), "versions.json")

	stale := &Source{
		Latest:   Latest{Release: "1.0", Snapshot: "1.0"},
		Versions: []Entry{{Type: KindRelease, ID: "1.0", ServerURL: "https://example.com/server.jar"}},
	}
	require.NoError(t, WriteCache(path, stale))

	src, err := Obtain(context.Background(), path, up.fetcher(), nil)
	require.NoError(t, err)

	assert.Equal(t, "1.0", src.Latest.Release)
	assert.Zero(t, up.requests.Load())
}

func TestObtain_FailureLeavesNoCache(t *testing.T) {
	up := newFakeUpstream(t, sampleLatest, sampleVersions, "1.19.4")
	path := filepath.Join(t.TempDir(), "versions.json")

	_, err := Obtain(context.Background(), path, up.fetcher(), nil)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, fs.ErrNotExist), "failed acquisition must not leave a cache file")
}

func TestObtain_OfflineWithoutCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")

	_, err := Obtain(context.Background(), path, nil, nil)

	var mErr *Error
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, ErrTypeCacheRead, mErr.Type)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriteCache_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

	err := WriteCache(path, &Source{})
	assert.ErrorIs(t, err, ErrCacheExists)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "original", string(data))
}

func TestReadCache_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := ReadCache(path)

	var mErr *Error
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, ErrTypeCacheRead, mErr.Type)
}

func TestReadCache_Missing(t *testing.T) {
	_, err := ReadCache(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
