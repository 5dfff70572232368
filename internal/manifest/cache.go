package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/okc-dev/okc/internal/log"
)

// ReadCache decodes the cache file at path. The content is trusted as-is:
// nothing is compared against upstream. A missing file is reported with an
// error that matches fs.ErrNotExist.
func ReadCache(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, &Error{Type: ErrTypeCacheRead, Op: "read cache", URL: path, Message: "failed to open cache", Err: err}
	}
	defer f.Close()

	return decodeCache(f, path)
}

func decodeCache(r io.Reader, path string) (*Source, error) {
	var src Source
	if err := json.NewDecoder(r).Decode(&src); err != nil {
		return nil, &Error{Type: ErrTypeCacheRead, Op: "read cache", URL: path, Message: "failed to parse cache", Err: err}
	}
	return &src, nil
}

// WriteCache creates path and writes src into it. It never replaces an
// existing file: if path exists the result is an error matching ErrCacheExists.
func WriteCache(path string, src *Source) error {
	f, err := createExclusive(path)
	if err != nil {
		return err
	}
	if err := writeAndClose(f, src); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// Obtain returns the enriched manifest, from the cache file when present
// and from upstream otherwise.
//
// The cache file is created exclusively before any request is made. If
// another process created it first, Obtain reads that file instead. When
// acquisition fails the half-created file is removed and nothing is cached.
// A nil fetcher disables network access: a missing cache is then an error.
func Obtain(ctx context.Context, path string, fetcher *Fetcher, logger log.Logger) (*Source, error) {
	if logger == nil {
		logger = log.NewNoop()
	}

	src, err := ReadCache(path)
	if err == nil {
		logger.Info("using cached manifest", "path", path, "versions", len(src.Versions))
		return src, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if fetcher == nil {
		return nil, &Error{Type: ErrTypeCacheRead, Op: "read cache", URL: path, Message: "no cache file and fetching is disabled", Err: err}
	}

	f, err := createExclusive(path)
	if errors.Is(err, ErrCacheExists) {
		logger.Info("cache appeared concurrently, reading it", "path", path)
		return ReadCache(path)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("cache miss, fetching upstream manifest", "path", path)
	src, err = fetcher.Acquire(ctx)
	if err != nil {
		discard(f)
		return nil, err
	}

	if err := writeAndClose(f, src); err != nil {
		os.Remove(f.Name())
		return nil, err
	}

	logger.Info("wrote manifest cache", "path", path, "versions", len(src.Versions))
	return src, nil
}

func createExclusive(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &Error{Type: ErrTypeCacheWrite, Op: "write cache", URL: path, Message: "failed to create cache directory", Err: err}
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, &Error{Type: ErrTypeCacheWrite, Op: "write cache", URL: path, Message: "refusing to overwrite", Err: ErrCacheExists}
		}
		return nil, &Error{Type: ErrTypeCacheWrite, Op: "write cache", URL: path, Message: "failed to create cache", Err: err}
	}
	return f, nil
}

func writeAndClose(f *os.File, src *Source) error {
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(src); err != nil {
		f.Close()
		return &Error{Type: ErrTypeCacheWrite, Op: "write cache", URL: f.Name(), Message: "failed to encode cache", Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Type: ErrTypeCacheWrite, Op: "write cache", URL: f.Name(), Message: "failed to flush cache", Err: err}
	}
	return nil
}

func discard(f *os.File) {
	f.Close()
	os.Remove(f.Name())
}
