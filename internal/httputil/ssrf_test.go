package httputil

import (
	"net"
	"strings"
	"testing"
)

func TestValidateIP(t *testing.T) {
	tests := []struct {
		ip      string
		wantErr string
	}{
		{"10.0.0.1", "private"},
		{"172.16.0.1", "private"},
		{"192.168.255.255", "private"},
		{"127.0.0.1", "loopback"},
		{"::1", "loopback"},
		{"169.254.169.254", "link-local"},
		{"fe80::1", "link-local"},
		{"224.0.0.1", "multicast"},
		{"239.1.1.1", "multicast"},
		{"0.0.0.0", "unspecified"},
		{"8.8.8.8", ""},
		{"2606:4700::1111", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			err := ValidateIP(net.ParseIP(tt.ip), tt.ip)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateIP(%s) unexpected error: %v", tt.ip, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateIP(%s) expected error containing %q, got nil", tt.ip, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateIP(%s) error = %v, want it to contain %q", tt.ip, err, tt.wantErr)
			}
		})
	}
}
