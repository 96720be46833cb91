package utils

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"
)

// PingService dials the host of serviceURL over TCP and returns how long the
// connection took. The port falls back to the scheme default.
func PingService(ctx context.Context, serviceURL string) (time.Duration, error) {
	u, err := url.Parse(serviceURL)
	if err != nil {
		return 0, fmt.Errorf("invalid URL: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		return 0, fmt.Errorf("invalid URL: %q has no host", serviceURL)
	}

	port := u.Port()
	if port == "" {
		port = schemePort(u.Scheme)
	}
	address := net.JoinHostPort(host, port)

	var dialer net.Dialer
	start := time.Now()
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	elapsed := time.Since(start)
	_ = conn.Close()

	return elapsed, nil
}

func schemePort(scheme string) string {
	if scheme == "https" {
		return "443"
	}
	return "80"
}
