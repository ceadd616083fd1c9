// Package preprocess expands the text-level directives of route files
// ($Include, $Sub, $Rnd, $Chr, $If) and cuts the result into statements.
package preprocess

import "strings"

// FileType selects the route dialect.
type FileType int

const (
	CSV FileType = iota
	RW
)

func (ft FileType) String() string {
	if ft == RW {
		return "rw"
	}
	return "csv"
}

// Line is one statement together with where it came from.
type Line struct {
	Contents  string
	FileIndex int
	Line      int
	// Offset is added to every position statement read from this line.
	Offset float64
}

// Lines is the statement list of a route and the sorted, deduplicated list
// of files it was read from. Line.FileIndex indexes Filenames.
type Lines struct {
	Lines     []Line
	Filenames []string
}

// Filename returns the file a line came from.
func (l *Lines) Filename(line Line) string {
	if line.FileIndex < 0 || line.FileIndex >= len(l.Filenames) {
		return ""
	}
	return l.Filenames[line.FileIndex]
}

const whitespace = "\t\n\v\f\r "

func strip(s string) string {
	return strings.Trim(s, whitespace)
}

// RemoveComments drops everything from the comment character to the end of
// each line. With firstInLine only a comment character that opens a line
// counts.
func RemoveComments(text string, comment byte, firstInLine bool) string {
	if strings.IndexByte(text, comment) < 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	removing := false
	newline := true
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == comment && (!firstInLine || newline) {
			removing = true
		}
		if c == '\n' {
			removing = false
			newline = true
		} else {
			newline = false
		}
		if !removing {
			b.WriteByte(c)
		}
	}
	return b.String()
}
