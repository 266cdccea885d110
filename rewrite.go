package citelean

import (
	"fmt"
	"strings"
	"unicode"
)

// Diagnostic locates a marker whose declaration is not in the index.
type Diagnostic struct {
	Path   string
	Line   int // 1-based
	Column int // 1-based byte column of the key
	Key    string
}

// String returns the diagnostic location as path:line:column.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d", d.Path, d.Line, d.Column)
}

// Reporter receives resolution events from a Rewriter.
type Reporter interface {
	// Resolved is called for each marker that resolved to a doc link.
	Resolved(path, key, docLink string)

	// Missing is called for each marker whose declaration is unknown.
	Missing(d Diagnostic)
}

// RewriteResult is the outcome of rewriting a single file.
type RewriteResult struct {
	Output      string
	Changed     bool
	Diagnostics []Diagnostic
}

// Rewriter replaces markers in source text using an Index.
type Rewriter struct {
	Index *Index
	Style MarkerStyle

	// Reporter is optional.
	Reporter Reporter
}

// Rewrite rebuilds text line by line. Each line is terminated by a newline
// in the output, so a missing final newline is added. Changed reports
// whether the output differs from text.
//
// An unterminated marker returns an EUNTERMINATED error and no result.
func (r *Rewriter) Rewrite(path, text string) (*RewriteResult, error) {
	result := &RewriteResult{}

	var b strings.Builder
	b.Grow(len(text))
	for i, line := range splitLines(text) {
		m, ok, err := r.Style.Scan(line)
		if err != nil {
			return nil, Errorf(ErrorCode(err), "%s:%d: %s", path, i+1, ErrorMessage(err))
		}
		if !ok {
			b.WriteString(line)
			b.WriteByte('\n')
			continue
		}

		var macro string
		switch m.Kind {
		case MarkerCiteRoot:
			macro = r.Style.root(r.Index.Root())
		default:
			if docLink, ok := r.Index.Lookup(m.Key); ok {
				macro = r.Style.link(ResolveLink(docLink))
				r.resolved(path, m.Key, docLink)
			} else {
				d := Diagnostic{Path: path, Line: i + 1, Column: m.KeyColumn(), Key: m.Key}
				result.Diagnostics = append(result.Diagnostics, d)
				macro = r.Style.MissingMacro
				r.missing(d)
			}
		}

		b.WriteString(indentation(line[:m.Start]))
		b.WriteString(macro)
		b.WriteString(" % ")
		b.WriteString(line[m.Start:])
		b.WriteByte('\n')
	}

	result.Output = b.String()
	result.Changed = result.Output != text
	return result, nil
}

func (r *Rewriter) resolved(path, key, docLink string) {
	if r.Reporter != nil {
		r.Reporter.Resolved(path, key, docLink)
	}
}

func (r *Rewriter) missing(d Diagnostic) {
	if r.Reporter != nil {
		r.Reporter.Missing(d)
	}
}

// splitLines splits text on '\n', dropping a trailing '\r' from each line.
// A final newline does not start another line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// indentation returns the leading whitespace of prefix. Any text after it
// is dropped; that is where a previous run put its macro.
func indentation(prefix string) string {
	return prefix[:len(prefix)-len(strings.TrimLeftFunc(prefix, unicode.IsSpace))]
}
