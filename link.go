package citelean

import "strings"

const upperhex = "0123456789ABCDEF"

// ResolveLink converts a raw doc link ("path" or "path#fragment") into a URL
// that can be placed inside a LaTeX macro argument. Leading "./" segments
// are stripped from the path, the fragment is percent-encoded and every
// '%' and '#' is escaped for LaTeX.
func ResolveLink(raw string) string {
	path, fragment, _ := strings.Cut(raw, "#")
	path = strings.TrimLeft(path, "./")
	escaped := strings.ReplaceAll(encodeComponent(fragment), "%", `\%`)
	return path + `\#` + escaped
}

// encodeComponent percent-encodes every byte outside the unreserved set
// (ALPHA / DIGIT / "-" / "_" / "." / "~").
func encodeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}
