package http

import (
	nethttp "net/http"
	"strings"
)

// nextLink extracts the rel="next" target from RFC 5988 Link headers.
// Evergreen emits headers of the form:
//
//	Link: <https://host/path?start_at=x>; rel="next"
func nextLink(header nethttp.Header) string {
	for _, raw := range header.Values("Link") {
		for _, entry := range strings.Split(raw, ",") {
			target, rel := parseLinkEntry(entry)
			if rel == "next" && target != "" {
				return target
			}
		}
	}
	return ""
}

func parseLinkEntry(entry string) (target, rel string) {
	parts := strings.Split(entry, ";")
	target = strings.TrimSpace(parts[0])
	if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
		return "", ""
	}
	target = strings.Trim(target, "<>")
	for _, param := range parts[1:] {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) == "rel" {
			rel = strings.Trim(strings.TrimSpace(value), `"`)
		}
	}
	return target, rel
}
