package helpers

import (
	"net/url"
	"strings"
)

// ResolveURL resolves href against base, returning href unchanged when
// either value does not parse. Already-absolute hrefs pass through.
func ResolveURL(base, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	hrefURL, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(hrefURL).String()
}

// StripRelativePrefix removes leading "./" and "../" markers from a path
func StripRelativePrefix(path string) string {
	for {
		switch {
		case strings.HasPrefix(path, "../"):
			path = strings.TrimPrefix(path, "../")
		case strings.HasPrefix(path, "./"):
			path = strings.TrimPrefix(path, "./")
		default:
			return path
		}
	}
}
