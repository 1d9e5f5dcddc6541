package app

import (
	"net/url"
	"strings"
)

// allowOrigin builds the CORS origin check from the configured pattern list.
// An empty list allows every origin, which is also the development default.
// Patterns match the origin's host[:port]: exact, "*.domain" suffix, or
// "host:*" any-port forms.
func allowOrigin(patterns []string) func(origin string) bool {
	if len(patterns) == 0 {
		return func(string) bool { return true }
	}
	return func(origin string) bool {
		host := origin
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			host = u.Host
		}
		for _, pattern := range patterns {
			if originHostMatches(pattern, host) {
				return true
			}
		}
		return false
	}
}

func originHostMatches(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, strings.TrimSuffix(pattern, "*"))
	default:
		return false
	}
}
