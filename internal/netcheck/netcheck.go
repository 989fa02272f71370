package netcheck

import (
	"net"
	"net/url"

	"go.uber.org/zap"
)

// Host resolves hostname and logs the outcome. Returns whether resolution
// succeeded. Never fatal: a failed lookup only warns, since the subsequent
// network call produces the authoritative error.
func Host(hostname string, log *zap.Logger) bool {
	if hostname == "" {
		return false
	}
	addrs, err := net.LookupHost(hostname)
	if err != nil {
		log.Warn("dns check failed", zap.String("host", hostname), zap.Error(err))
		return false
	}
	log.Debug("dns check ok", zap.String("host", hostname), zap.Strings("addrs", addrs))
	return true
}

// URLHost extracts the hostname from a URL, or "" when none can be derived
// (scp-style git addresses, local paths).
func URLHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
