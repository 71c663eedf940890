package providers

import (
	"net/url"
	"path"
	"strings"
)

const DefaultWikiBase = "https://en.wikipedia.org/wiki/"

// ResolveReference turns a page reference into a URL. Absolute URLs are kept,
// anything else is treated as a page title under base, so that
// "The Big Bang Theory (season 1)" and "The_Big_Bang_Theory_(season_1)"
// resolve to the same page.
func ResolveReference(base, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return base
	}

	u, err := url.Parse(ref)
	if err == nil && u.IsAbs() {
		return u.String()
	}

	if base == "" {
		base = DefaultWikiBase
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	title := strings.ReplaceAll(ref, " ", "_")
	return base + url.PathEscape(title)
}

// TitleFromURL recovers the page title from the last path segment of a wiki
// URL, e.g. ".../wiki/Good_Omens_(TV_series)" gives "Good Omens (TV series)".
func TitleFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return strings.TrimSpace(raw)
	}

	seg := path.Base(u.Path)
	if t, err := url.PathUnescape(seg); err == nil {
		seg = t
	}

	return strings.TrimSpace(strings.ReplaceAll(seg, "_", " "))
}
