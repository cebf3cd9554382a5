package common

import (
	"net/http"
	"strings"
)

const logoPrefix = "/static/logos/"

// BaseURL returns the configured public base URL, or one derived from the
// request when none is configured.
func BaseURL(r *http.Request, public string) string {
	if public != "" {
		return strings.TrimRight(public, "/")
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return scheme + "://" + r.Host
}

// LogoURL turns a stored logo path into an absolute URL. Empty paths stay null.
func LogoURL(base string, path *string) *string {
	if path == nil || strings.TrimSpace(*path) == "" {
		return nil
	}
	url := base + logoPrefix + strings.TrimLeft(*path, "/")
	return &url
}
