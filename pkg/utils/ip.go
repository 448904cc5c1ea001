package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP extrai o IP do visitante na ordem X-Forwarded-For, X-Real-IP,
// RemoteAddr. O valor pode vir com vários IPs separados por vírgula quando a
// cadeia de proxies anexa os seus; o chamador decide se divide.
func ClientIP(r *http.Request) string {
	if fwd := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); fwd != "" {
		return fwd
	}

	if real := strings.TrimSpace(r.Header.Get("X-Real-Ip")); real != "" {
		return real
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// SplitIPs divide um valor possivelmente composto ("ip1, ip2") nos IPs
// individuais, descartando componentes vazios.
func SplitIPs(raw string) []string {
	parts := strings.Split(raw, ",")
	ips := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ips = append(ips, p)
		}
	}
	return ips
}
