package parser

import "strings"

// CleanURL strips surrounding quotes and adds an https:// scheme when the
// value has none. Empty input stays empty.
func CleanURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}

	if len(u) >= 2 && strings.HasPrefix(u, `"`) && strings.HasSuffix(u, `"`) {
		u = strings.TrimSpace(u[1 : len(u)-1])
		if u == "" {
			return ""
		}
	}

	lower := strings.ToLower(u)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return u
	}
	return "https://" + u
}
