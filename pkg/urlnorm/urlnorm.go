// Package urlnorm normalizes URLs into the canonical form the engine uses
// as an identity key for deduplication.
//
// Canonicalization is best-effort and fails open: anything that does not
// parse is returned unchanged, never as an error.
package urlnorm

import (
	"net/url"
	"sort"
	"strings"
)

// TrackingParams are query parameters stripped during canonicalization.
// Any key with the "utm_" prefix is stripped as well.
var TrackingParams = map[string]struct{}{
	"fbclid":       {},
	"gclid":        {},
	"igshid":       {},
	"mc_cid":       {},
	"mc_eid":       {},
	"msclkid":      {},
	"ref":          {},
	"ref_src":      {},
	"utm_campaign": {},
	"utm_content":  {},
	"utm_medium":   {},
	"utm_source":   {},
	"utm_term":     {},
}

// Canonicalize rewrites a URL into its canonical form: lowercase scheme and
// host, no "www." prefix, no default port, no trailing slash on non-root
// paths, tracking parameters removed and the rest sorted. Idempotent.
func Canonicalize(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.Host == "" && u.Scheme == "" {
		// Not something we can treat as a web URL; leave it alone.
		return raw
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme == "" {
		scheme = "https"
	}

	host := strings.ToLower(u.Host)
	if i := strings.LastIndex(host, ":"); i >= 0 {
		port := host[i+1:]
		if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
			host = host[:i]
		}
	}
	host = strings.TrimPrefix(host, "www.")

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}

	query := canonicalQuery(u.RawQuery)

	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(host)
	b.WriteString(path)
	if query != "" {
		b.WriteString("?")
		b.WriteString(query)
	}
	return b.String()
}

// canonicalQuery drops tracking parameters and reserializes the rest
// sorted by key, then value. Unparseable queries are dropped wholesale.
func canonicalQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return ""
	}
	kept := url.Values{}
	for key, vals := range values {
		lower := strings.ToLower(key)
		if _, tracked := TrackingParams[lower]; tracked {
			continue
		}
		if strings.HasPrefix(lower, "utm_") {
			continue
		}
		sort.Strings(vals)
		kept[key] = vals
	}
	// Encode sorts by key, which together with the per-key value sort
	// gives a stable ordering.
	return kept.Encode()
}

// Domain extracts the lowercase host of a URL without port or "www."
// prefix. Returns "" when the URL has no usable host.
func Domain(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Host)
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}
	return strings.TrimPrefix(host, "www.")
}
