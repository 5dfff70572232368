package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/okc-dev/okc/internal/buildinfo"
	"github.com/okc-dev/okc/internal/config"
	"github.com/okc-dev/okc/internal/httputil"
	"github.com/okc-dev/okc/internal/log"
	"github.com/okc-dev/okc/internal/manifest"
	"github.com/okc-dev/okc/internal/registrygen"
)

// errStale is returned in -check mode when the output differs from what
// the cache compiles to.
var errStale = errors.New("generated file is out of date")

type options struct {
	configPath  string
	cache       string
	out         string
	pkg         string
	manifestURL string
	timeout     time.Duration
	offline     bool
	check       bool
	verbosity   int
}

// settings layers flags over the generator config.
func settings(opts options) (*config.Generator, error) {
	gen, err := config.LoadGenerator(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.cache != "" {
		gen.CacheFile = opts.cache
	}
	if opts.out != "" {
		gen.Output = opts.out
	}
	if opts.pkg != "" {
		gen.Package = opts.pkg
	}
	if opts.manifestURL != "" {
		gen.ManifestURL = opts.manifestURL
	}
	if opts.timeout > 0 {
		gen.Timeout = opts.timeout
	}
	return gen, nil
}

func run(ctx context.Context, opts options, stderr io.Writer) error {
	logger := log.NewCLI(stderr, opts.verbosity)
	log.SetDefault(logger)

	gen, err := settings(opts)
	if err != nil {
		return err
	}
	logger.Debug("generator settings",
		"cache", gen.CacheFile, "output", gen.Output, "manifest_url", gen.ManifestURL, "timeout", gen.Timeout)

	var fetcher *manifest.Fetcher
	if !opts.offline {
		client := httputil.NewSecureClient(httputil.ClientOptions{
			Timeout:   gen.Timeout,
			UserAgent: buildinfo.UserAgent(),
		})
		fetcher = manifest.NewFetcher(
			manifest.WithHTTPClient(client),
			manifest.WithManifestURL(gen.ManifestURL),
			manifest.WithLogger(logger),
		)
	}

	src, err := manifest.Obtain(ctx, gen.CacheFile, fetcher, logger)
	if err != nil {
		return err
	}

	code, err := registrygen.Compile(src, registrygen.Options{Package: gen.Package})
	if err != nil {
		return fmt.Errorf("compile %s: %w", gen.CacheFile, err)
	}

	if opts.check {
		existing, err := os.ReadFile(gen.Output)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("read %s: %w", gen.Output, err)
		}
		if !bytes.Equal(existing, code) {
			return fmt.Errorf("%s: %w; run go generate ./...", gen.Output, errStale)
		}
		logger.Info("generated file is current", "path", gen.Output)
		return nil
	}

	if err := writeAtomic(gen.Output, code); err != nil {
		return err
	}
	logger.Info("wrote version table",
		"path", gen.Output,
		"versions", len(src.Versions),
		"latest_release", src.Latest.Release,
		"latest_snapshot", src.Latest.Snapshot)
	return nil
}

// writeAtomic replaces path with data through a temp file and rename, so
// readers never observe a half-written file.
func writeAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write temp output file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename output file: %w", err)
	}
	return nil
}
