package service

import (
	"net/url"
	"strings"
)

// queryParam is one key/value in an ordered query string.
type queryParam struct {
	key   string
	value string
}

// encodeQuery encodes params in the order given; url.Values.Encode would sort them.
func encodeQuery(params ...queryParam) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}

// joinURL builds host + "/" + path, appending "?" + rawQuery only when the
// query is non-empty.
func joinURL(base, path, rawQuery string) string {
	u := strings.TrimRight(base, "/") + "/" + strings.TrimPrefix(path, "/")
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	return u
}

// pathSegment escapes a route parameter so it stays a single path segment.
func pathSegment(s string) string {
	if unescaped, err := url.PathUnescape(s); err == nil {
		s = unescaped
	}
	return url.PathEscape(s)
}
