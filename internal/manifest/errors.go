package manifest

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ErrorType classifies acquisition errors for better handling
type ErrorType int

const (
	// ErrTypeNetwork indicates a generic network-related error (fallback when specific type is unknown)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeNotFound indicates the upstream document was not found (HTTP 404)
	ErrTypeNotFound
	// ErrTypeParsing indicates an upstream or cached document could not be decoded
	ErrTypeParsing
	// ErrTypeValidation indicates the document decoded but its content is unusable
	ErrTypeValidation
	// ErrTypeRateLimit indicates the upstream host throttled us (HTTP 429)
	ErrTypeRateLimit
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeDNS indicates DNS resolution failure
	ErrTypeDNS
	// ErrTypeConnection indicates connection refused or reset
	ErrTypeConnection
	// ErrTypeTLS indicates TLS/SSL certificate errors
	ErrTypeTLS
	// ErrTypeCacheRead indicates the cache file exists but could not be read
	ErrTypeCacheRead
	// ErrTypeCacheWrite indicates the cache file could not be created or written
	ErrTypeCacheWrite
)

// ErrCacheExists is returned by WriteCache when the cache file is already present.
var ErrCacheExists = errors.New("cache file already exists")

// Error provides structured information for acquisition failures.
// Every Error aborts the build; none are retried.
type Error struct {
	Type    ErrorType
	Op      string // "fetch manifest", "fetch detail", "read cache", "write cache"
	URL     string // Upstream URL or cache path involved (if any)
	Message string // Human-readable error message
	Err     error  // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("manifest: %s: %s", e.Op, e.Message)
	if e.URL != "" {
		msg += " (" + e.URL + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for error chain support
func (e *Error) Unwrap() error {
	return e.Err
}

// Suggestion returns an actionable suggestion for the user based on the error type.
// Returns an empty string if no specific suggestion is available.
func (e *Error) Suggestion() string {
	switch e.Type {
	case ErrTypeRateLimit:
		return "Wait a few minutes before regenerating; mcgen fetches one detail document per version"
	case ErrTypeTimeout:
		return "Check your internet connection or raise OKC_API_TIMEOUT"
	case ErrTypeDNS:
		return "Check your DNS settings and internet connection"
	case ErrTypeConnection:
		return "piston-meta.mojang.com may be down or blocked. Check if you can access it in a browser"
	case ErrTypeTLS:
		return "There may be a certificate issue. Check your system time is correct"
	case ErrTypeNotFound:
		return "Check OKC_MANIFEST_URL points at a version_manifest_v2.json document"
	case ErrTypeParsing, ErrTypeValidation:
		return "The upstream format may have changed; inspect the document at the URL above"
	case ErrTypeCacheRead:
		return "Delete the cache file and run go generate again to refetch it"
	case ErrTypeCacheWrite:
		return "Check permissions on the cache directory"
	case ErrTypeNetwork:
		return "Check your internet connection and try again"
	default:
		return ""
	}
}

// ClassifyError examines an error and returns the most specific ErrorType.
func ClassifyError(err error) ErrorType {
	if err == nil {
		return ErrTypeNetwork
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTypeTimeout
	}
	if errors.Is(err, context.Canceled) {
		return ErrTypeNetwork
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return ErrTypeTimeout
		}
		return ErrTypeDNS
	}

	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return ErrTypeTLS
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() {
			return ErrTypeTimeout
		}
		return ErrTypeConnection
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return ErrTypeTimeout
		}
		msg := urlErr.Err.Error()
		if strings.Contains(msg, "certificate") ||
			strings.Contains(msg, "tls") ||
			strings.Contains(msg, "x509") {
			return ErrTypeTLS
		}
		return ClassifyError(urlErr.Err)
	}

	return ErrTypeNetwork
}

// wrapNetworkError wraps a transport error with the classified ErrorType.
func wrapNetworkError(err error, op, rawURL string) *Error {
	return &Error{
		Type:    ClassifyError(err),
		Op:      op,
		URL:     rawURL,
		Message: "request failed",
		Err:     err,
	}
}
