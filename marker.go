package citelean

import (
	"fmt"
	"strings"
)

// MarkerKind identifies what a marker asks for.
type MarkerKind int

// MarkerKind constants.
const (
	// MarkerCite cites a single declaration by name.
	MarkerCite MarkerKind = iota
	// MarkerCiteRoot defines the documentation root macro. Its key is ignored.
	MarkerCiteRoot
)

// Marker is a marker found in a single line of source text.
type Marker struct {
	Kind MarkerKind
	Key  string

	// Byte offsets of the whole marker, needle through closing parenthesis.
	// End is exclusive.
	Start int
	End   int

	needle string
}

// KeyColumn returns the 1-based byte column of the first key character.
func (m Marker) KeyColumn() int {
	return m.Start + len(m.needle) + 1
}

// MarkerStyle is the set of needles and macros used to rewrite markers.
// It is selected once per run.
type MarkerStyle struct {
	Name string

	CiteNeedle string
	// RootNeedle is empty for styles without a root marker.
	RootNeedle string

	// LinkMacro is a format string receiving the resolved URL.
	LinkMacro    string
	MissingMacro string
	// RootMacro is a format string receiving the documentation root URL.
	RootMacro string
}

// Marker styles.
var (
	StyleSimple = MarkerStyle{
		Name:         "simple",
		CiteNeedle:   "cite-lean(",
		LinkMacro:    `\lean{%s}`,
		MissingMacro: `\leanMissing`,
	}

	StyleExtended = MarkerStyle{
		Name:         "extended",
		CiteNeedle:   "cite-lean(",
		RootNeedle:   "cite-lean-root(",
		LinkMacro:    `\citeLean{%s}`,
		MissingMacro: `\citeLeanMissing`,
		RootMacro:    `\newcommand{\citeLeanRoot}{%s}`,
	}
)

// MarkerStyles lists the available styles by name.
var MarkerStyles = map[string]MarkerStyle{
	StyleSimple.Name:   StyleSimple,
	StyleExtended.Name: StyleExtended,
}

// ParseMarkerStyle returns the style registered under name.
func ParseMarkerStyle(name string) (MarkerStyle, error) {
	style, ok := MarkerStyles[name]
	if !ok {
		return MarkerStyle{}, Errorf(EINVALID, "unknown marker style %q", name)
	}
	return style, nil
}

// Scan finds the first marker in line. Only one marker per line is
// reported; anything after it is left for the caller to copy verbatim.
// Returns EUNTERMINATED if the marker has no closing parenthesis on the line.
func (s MarkerStyle) Scan(line string) (Marker, bool, error) {
	m := Marker{Kind: MarkerCite, needle: s.CiteNeedle}
	start := strings.Index(line, s.CiteNeedle)
	if s.RootNeedle != "" {
		if i := strings.Index(line, s.RootNeedle); i >= 0 && (start < 0 || i < start) {
			start = i
			m.Kind = MarkerCiteRoot
			m.needle = s.RootNeedle
		}
	}
	if start < 0 {
		return Marker{}, false, nil
	}

	keyStart := start + len(m.needle)
	n := strings.IndexByte(line[keyStart:], ')')
	if n < 0 {
		return Marker{}, false, Errorf(EUNTERMINATED, "expected closing parenthesis after %q at column %d", m.needle, keyStart+1)
	}

	m.Key = line[keyStart : keyStart+n]
	m.Start = start
	m.End = keyStart + n + 1
	return m, true, nil
}

func (s MarkerStyle) link(url string) string {
	return fmt.Sprintf(s.LinkMacro, url)
}

func (s MarkerStyle) root(url string) string {
	return fmt.Sprintf(s.RootMacro, url)
}
