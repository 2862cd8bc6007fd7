package query

import (
	"net/url"
	"strings"

	"chipbar/internal/model"
)

// SplitURL separates a URL into its path and raw query, dropping any fragment.
// It never fails: anything before the first '?' is the path. A string with
// no '?' that contains '=', does not start with '/' and has no scheme is a
// bare "k=v&..." query.
func SplitURL(raw string) (path, rawQuery string) {
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i], raw[i+1:]
	}
	if strings.Contains(raw, "=") && !strings.HasPrefix(raw, "/") && !strings.Contains(raw, "://") {
		return "", raw
	}
	return raw, ""
}

// Parse returns the query parameters of raw in the order they appear.
// raw may be a full URL, a "?query" or a bare "k=v&..." string.
// Repeated keys are kept; empty segments are skipped.
func Parse(raw string) []model.Param {
	_, q := SplitURL(raw)
	if q == "" {
		return nil
	}

	var params []model.Param
	for _, segment := range strings.Split(q, "&") {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		params = append(params, model.Param{
			Key:   unescape(key),
			Value: unescape(value),
		})
	}
	return params
}

// Identifier is the literal key=value string naming a filter.
func Identifier(key, value string) string {
	return key + "=" + value
}

// Encode joins pairs with '&', escaping each key and value so the result
// parses back to the same pairs.
func Encode(pairs []model.Param) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, url.QueryEscape(p.Key)+"="+url.QueryEscape(p.Value))
	}
	return strings.Join(parts, "&")
}

// Join rebuilds a URL from a path and raw query. An empty query yields the bare path.
func Join(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

// unescape decodes '+' as space and valid percent escapes.
// Malformed escapes are kept as-is, matching browser behaviour.
func unescape(s string) string {
	if !strings.ContainsAny(s, "+%") {
		return s
	}
	if decoded, err := url.QueryUnescape(s); err == nil {
		return decoded
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	}
	return c - 'A' + 10
}
