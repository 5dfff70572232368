package config

import (
	"fmt"
	"os"
	"time"
)

const (
	// EnvManifestURL is the environment variable to override the upstream version manifest URL
	EnvManifestURL = "OKC_MANIFEST_URL"

	// EnvAPITimeout is the environment variable to configure the per-request timeout
	EnvAPITimeout = "OKC_API_TIMEOUT"

	// EnvCacheFile is the environment variable to override the enriched manifest cache path
	EnvCacheFile = "OKC_CACHE_FILE"

	// DefaultManifestURL is Mojang's launcher manifest (v2 carries sha1 and complianceLevel)
	DefaultManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"

	// DefaultAPITimeout is the default timeout for a single upstream request (30 seconds)
	DefaultAPITimeout = 30 * time.Second

	// DefaultCacheFile is the cache location, relative to the build workspace
	DefaultCacheFile = ".cache/versions.json"

	// DefaultOutput is where mcgen writes the compiled table, relative to the workspace
	DefaultOutput = "internal/mcversion/versions_gen.go"

	// DefaultPackage is the package clause of the compiled table
	DefaultPackage = "mcversion"
)

// GetManifestURL returns the upstream manifest URL from OKC_MANIFEST_URL,
// or DefaultManifestURL when unset.
func GetManifestURL() string {
	if v := os.Getenv(EnvManifestURL); v != "" {
		return v
	}
	return DefaultManifestURL
}

// GetCacheFile returns the cache path from OKC_CACHE_FILE, or DefaultCacheFile when unset.
func GetCacheFile() string {
	if v := os.Getenv(EnvCacheFile); v != "" {
		return v
	}
	return DefaultCacheFile
}

// GetAPITimeout returns the configured API timeout from OKC_API_TIMEOUT environment variable.
// If not set or invalid, returns DefaultAPITimeout (30 seconds).
// Accepts duration strings like "30s", "1m", "2m30s".
func GetAPITimeout() time.Duration {
	envValue := os.Getenv(EnvAPITimeout)
	if envValue == "" {
		return DefaultAPITimeout
	}

	duration, err := time.ParseDuration(envValue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid %s value %q, using default %v\n",
			EnvAPITimeout, envValue, DefaultAPITimeout)
		return DefaultAPITimeout
	}

	return clampTimeout(EnvAPITimeout, duration)
}

// clampTimeout keeps a timeout within 1s..10m, warning on stderr when it had to adjust.
func clampTimeout(name string, d time.Duration) time.Duration {
	if d < 1*time.Second {
		fmt.Fprintf(os.Stderr, "Warning: %s too low (%v), using minimum 1s\n", name, d)
		return 1 * time.Second
	}
	if d > 10*time.Minute {
		fmt.Fprintf(os.Stderr, "Warning: %s too high (%v), using maximum 10m\n", name, d)
		return 10 * time.Minute
	}
	return d
}
