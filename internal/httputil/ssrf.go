package httputil

import (
	"fmt"
	"net"
)

// blockedRanges pairs a predicate with the label used in the refusal message.
// Order matters: the first match names the error.
var blockedRanges = []struct {
	label string
	match func(net.IP) bool
}{
	{"private IP", net.IP.IsPrivate},
	{"loopback IP", net.IP.IsLoopback},
	{"link-local IP", net.IP.IsLinkLocalUnicast},
	{"link-local multicast", net.IP.IsLinkLocalMulticast},
	{"multicast IP", net.IP.IsMulticast},
	{"unspecified IP", net.IP.IsUnspecified},
}

// ValidateIP rejects redirect targets that point back into the build
// host's network: RFC 1918 ranges, loopback, link-local (including the
// cloud metadata address 169.254.169.254), multicast and unspecified.
// host is only used for the error message.
func ValidateIP(ip net.IP, host string) error {
	for _, r := range blockedRanges {
		if r.match(ip) {
			return fmt.Errorf("refusing redirect to %s: %s (%s)", r.label, host, ip)
		}
	}
	return nil
}
