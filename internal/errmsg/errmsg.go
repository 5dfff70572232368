// Package errmsg provides enhanced error message formatting with actionable suggestions.
//
// It depends only on build-time packages so that mcgen keeps building while
// the generated version table is stale or broken.
package errmsg

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/okc-dev/okc/internal/config"
	"github.com/okc-dev/okc/internal/manifest"
)

// suggester is implemented by errors that carry a user-facing hint.
type suggester interface {
	Suggestion() string
}

// Format returns a formatted error message with possible causes and suggestions.
func Format(err error) string {
	if err == nil {
		return ""
	}

	var manifestErr *manifest.Error
	if errors.As(err, &manifestErr) {
		return formatManifestError(err, manifestErr)
	}

	var s suggester
	if errors.As(err, &s) {
		if hint := s.Suggestion(); hint != "" {
			return withSuggestions(err.Error(), nil, []string{hint})
		}
		return err.Error()
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return formatNetworkError(netErr)
	}

	if isPermissionError(err.Error()) {
		return withSuggestions(err.Error(),
			[]string{"The cache or output directory is not writable"},
			[]string{"Check permissions on the directory holding " + config.GetCacheFile()})
	}

	return err.Error()
}

// Fprint writes the formatted error to w as "Error: <message>".
func Fprint(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "Error: %s\n", strings.TrimRight(Format(err), "\n"))
}

func formatManifestError(err error, me *manifest.Error) string {
	var causes []string
	switch me.Type {
	case manifest.ErrTypeNetwork, manifest.ErrTypeConnection, manifest.ErrTypeDNS:
		causes = []string{
			"Network connectivity issue",
			"Mojang's metadata service temporarily unavailable",
		}
	case manifest.ErrTypeTimeout:
		causes = []string{
			"Slow or unstable network connection",
			fmt.Sprintf("Timeout of %s too short for this network", config.GetAPITimeout()),
		}
	case manifest.ErrTypeRateLimit:
		causes = []string{"Too many detail requests in a short period"}
	case manifest.ErrTypeNotFound:
		causes = []string{
			"The manifest URL is wrong",
			"A version was withdrawn upstream after the manifest was fetched",
		}
	case manifest.ErrTypeParsing, manifest.ErrTypeValidation:
		causes = []string{"Unexpected data from the version manifest"}
	case manifest.ErrTypeCacheRead:
		causes = []string{"The cache file is missing or was truncated by an interrupted run"}
	case manifest.ErrTypeCacheWrite:
		causes = []string{"The cache directory is not writable"}
	}

	var suggestions []string
	if hint := me.Suggestion(); hint != "" {
		suggestions = append(suggestions, hint)
	}
	return withSuggestions(err.Error(), causes, suggestions)
}

func formatNetworkError(err net.Error) string {
	causes := []string{"Network connectivity issue", "DNS resolution failure"}
	if err.Timeout() {
		causes = []string{"Request timed out", "Slow or unstable network connection"}
	}
	causes = append(causes, "Firewall or proxy blocking the connection")

	suggestions := []string{"Check your internet connection", "Try again in a few minutes"}
	if err.Timeout() {
		suggestions = append(suggestions, "Raise "+config.EnvAPITimeout)
	}
	return withSuggestions(err.Error(), causes, suggestions)
}

func withSuggestions(msg string, causes, suggestions []string) string {
	var sb strings.Builder
	sb.WriteString(msg)
	sb.WriteString("\n")

	if len(causes) > 0 {
		sb.WriteString("\nPossible causes:\n")
		for _, c := range causes {
			sb.WriteString("  - " + c + "\n")
		}
	}
	if len(suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range suggestions {
			sb.WriteString("  - " + s + "\n")
		}
	}
	return sb.String()
}

// isPermissionError checks if the error message indicates a permission issue
func isPermissionError(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "permission denied") ||
		strings.Contains(lower, "access denied") ||
		strings.Contains(lower, "operation not permitted")
}
