// Package diag collects non-fatal compiler diagnostics, grouped by source file.
package diag

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Diagnostic is one message attached to a line of a source file.
// Line 0 means the message applies to the whole file.
type Diagnostic struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// MultiError maps a source filename to the diagnostics raised against it,
// in the order they were raised.
type MultiError map[string][]Diagnostic

func New() MultiError {
	return MultiError{}
}

// Add records msg against file:line.
func (m MultiError) Add(file string, line int, msg string) {
	m[file] = append(m[file], Diagnostic{Line: line, Message: msg})
}

// Addf is Add with fmt.Sprintf formatting.
func (m MultiError) Addf(file string, line int, format string, args ...any) {
	m.Add(file, line, fmt.Sprintf(format, args...))
}

// Touch makes sure file has an entry, even when it stays empty.
func (m MultiError) Touch(file string) {
	if _, ok := m[file]; !ok {
		m[file] = nil
	}
}

// For returns the diagnostics of one file.
func (m MultiError) For(file string) []Diagnostic {
	return m[file]
}

// Files returns the filenames with at least one diagnostic, sorted.
func (m MultiError) Files() []string {
	files := make([]string, 0, len(m))
	for f, d := range m {
		if len(d) > 0 {
			files = append(files, f)
		}
	}
	sort.Strings(files)
	return files
}

// Len counts all diagnostics across files.
func (m MultiError) Len() int {
	n := 0
	for _, d := range m {
		n += len(d)
	}
	return n
}

// Merge appends every diagnostic of o into m.
func (m MultiError) Merge(o MultiError) {
	for f, ds := range o {
		m[f] = append(m[f], ds...)
	}
}

// Each visits diagnostics file by file (sorted), in raise order within a file.
func (m MultiError) Each(fn func(file string, d Diagnostic)) {
	for _, f := range m.Files() {
		for _, d := range m[f] {
			fn(f, d)
		}
	}
}

func (m MultiError) Error() string {
	n := m.Len()
	if n == 0 {
		return "no diagnostics"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d diagnostic(s)", n)
	first := true
	m.Each(func(file string, d Diagnostic) {
		if !first {
			return
		}
		first = false
		fmt.Fprintf(&b, "; first: %s:%d: %s", file, d.Line, d.Message)
	})
	return b.String()
}

// Err returns m as an error, or nil when nothing was recorded.
func (m MultiError) Err() error {
	if m.Len() == 0 {
		return nil
	}
	return m
}

// Print writes one "file:line: message" line per diagnostic to w.
func (m MultiError) Print(w io.Writer) {
	m.Each(func(file string, d Diagnostic) {
		fmt.Fprintf(w, "%s:%d: %s\n", file, d.Line, d.Message)
	})
}
