package pkg

import (
	"net"
	"net/http"
	"regexp"
	"strings"
)

var (
	localDockerIpRegex = regexp.MustCompile(`^172\.\d{1,3}\.0\.1$`)
)

// IPIsLocal reports whether the address is the loopback or a docker bridge gateway.
func IPIsLocal(ipAddr string) bool {
	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		ipAddr = host
	}
	if ip := net.ParseIP(ipAddr); ip != nil && ip.IsLoopback() {
		return true
	}
	return localDockerIpRegex.MatchString(ipAddr)
}

// ClientIP returns the caller address, preferring the proxy headers set by nginx.
// Unparsable values fall back to the raw remote address so a key always exists.
func ClientIP(r *http.Request) string {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		// first hop is the client
		ipAddr, _, _ = strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
		ipAddr = strings.TrimSpace(ipAddr)
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		ipAddr = host
	}
	if IPIsLocal(ipAddr) {
		return "localhost"
	}
	if ip := net.ParseIP(ipAddr); ip != nil {
		return ip.String()
	}
	return r.RemoteAddr
}
