package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// GeneratorFile is the name of the optional generator settings file at the workspace root.
const GeneratorFile = "mcgen.toml"

// Generator holds the settings mcgen runs with.
//
// Values are layered: defaults, then the TOML file, then environment
// variables. Command-line flags are applied by the caller on top.
type Generator struct {
	ManifestURL string        `toml:"manifest_url"`
	CacheFile   string        `toml:"cache_file"`
	Output      string        `toml:"output"`
	Package     string        `toml:"package"`
	Timeout     time.Duration `toml:"-"`

	// RawTimeout is the duration string as written in the file ("45s").
	RawTimeout string `toml:"timeout"`
}

// DefaultGenerator returns generator settings with every field at its default.
func DefaultGenerator() *Generator {
	return &Generator{
		ManifestURL: DefaultManifestURL,
		CacheFile:   DefaultCacheFile,
		Output:      DefaultOutput,
		Package:     DefaultPackage,
		Timeout:     DefaultAPITimeout,
	}
}

// LoadGenerator reads generator settings from path and overlays the
// OKC_* environment variables. A missing file is not an error.
func LoadGenerator(path string) (*Generator, error) {
	g := DefaultGenerator()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read generator config: %w", err)
	default:
		if _, err := toml.Decode(string(data), g); err != nil {
			return nil, fmt.Errorf("failed to parse generator config %s: %w", path, err)
		}
		if g.RawTimeout != "" {
			d, err := time.ParseDuration(g.RawTimeout)
			if err != nil {
				return nil, fmt.Errorf("invalid timeout %q in %s: %w", g.RawTimeout, path, err)
			}
			g.Timeout = clampTimeout("timeout", d)
		}
	}

	if v := os.Getenv(EnvManifestURL); v != "" {
		g.ManifestURL = v
	}
	if v := os.Getenv(EnvCacheFile); v != "" {
		g.CacheFile = v
	}
	if os.Getenv(EnvAPITimeout) != "" {
		g.Timeout = GetAPITimeout()
	}

	return g, nil
}
