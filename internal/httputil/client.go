package httputil

import (
	"fmt"
	"net"
	"net/http"
	"time"
)

// ClientOptions configures the secure HTTP client.
type ClientOptions struct {
	// Timeout is the overall request timeout. Default: 30s.
	Timeout time.Duration

	// DialTimeout is the TCP dial timeout. Default: 10s.
	DialTimeout time.Duration

	// TLSHandshakeTimeout is the TLS handshake timeout. Default: 10s.
	TLSHandshakeTimeout time.Duration

	// ResponseHeaderTimeout is the time to wait for response headers. Default: 10s.
	ResponseHeaderTimeout time.Duration

	// MaxRedirects is the maximum redirect depth. Default: 5.
	MaxRedirects int

	// UserAgent is sent on every request when non-empty.
	UserAgent string
}

// DefaultOptions returns the options mcgen uses against the Mojang endpoints.
func DefaultOptions() ClientOptions {
	return ClientOptions{
		Timeout:               30 * time.Second,
		DialTimeout:           10 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		MaxRedirects:          5,
	}
}

// NewSecureClient creates an HTTP client for talking to upstream metadata hosts.
//
//   - compression is disabled, so a hostile body cannot inflate past the read cap
//   - redirects must stay on HTTPS and may not land on private, loopback or
//     link-local addresses (hostnames are resolved and every IP is checked)
//   - the redirect chain is bounded by MaxRedirects
func NewSecureClient(opts ClientOptions) *http.Client {
	def := DefaultOptions()
	if opts.Timeout == 0 {
		opts.Timeout = def.Timeout
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = def.DialTimeout
	}
	if opts.TLSHandshakeTimeout == 0 {
		opts.TLSHandshakeTimeout = def.TLSHandshakeTimeout
	}
	if opts.ResponseHeaderTimeout == 0 {
		opts.ResponseHeaderTimeout = def.ResponseHeaderTimeout
	}
	if opts.MaxRedirects == 0 {
		opts.MaxRedirects = def.MaxRedirects
	}

	var transport http.RoundTripper = &http.Transport{
		Proxy:              http.ProxyFromEnvironment,
		DisableCompression: true,
		DialContext: (&net.Dialer{
			Timeout:   opts.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   opts.TLSHandshakeTimeout,
		ResponseHeaderTimeout: opts.ResponseHeaderTimeout,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	}
	if opts.UserAgent != "" {
		transport = &userAgentTransport{base: transport, agent: opts.UserAgent}
	}

	return &http.Client{
		Timeout:       opts.Timeout,
		Transport:     transport,
		CheckRedirect: makeRedirectChecker(opts.MaxRedirects),
	}
}

// userAgentTransport stamps a User-Agent on requests that do not carry one.
type userAgentTransport struct {
	base  http.RoundTripper
	agent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.agent)
	return t.base.RoundTrip(r)
}

func makeRedirectChecker(maxRedirects int) func(req *http.Request, via []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if req.URL.Scheme != "https" {
			return fmt.Errorf("redirect to non-HTTPS URL is not allowed: %s", req.URL)
		}

		if len(via) >= maxRedirects {
			return fmt.Errorf("too many redirects")
		}

		host := req.URL.Hostname()
		if ip := net.ParseIP(host); ip != nil {
			return ValidateIP(ip, host)
		}

		ips, err := net.LookupIP(host)
		if err != nil {
			return fmt.Errorf("failed to resolve redirect host %s: %w", host, err)
		}
		for _, ip := range ips {
			if err := ValidateIP(ip, host); err != nil {
				return fmt.Errorf("refusing redirect: %s resolves to blocked IP %s", host, ip)
			}
		}

		return nil
	}
}
