// Package split breaks one preprocessed route statement into its directive
// name, indices, arguments and suffix.
package split

import (
	"errors"
	"strings"

	"bve-compiler/internal/preprocess"
)

// Info is the split form of a statement.
type Info struct {
	Name    string
	Indices []string
	Args    []string
	Suffix  string
	Offset  float64
	// Position is set for position statements ("100", "1:25:3"); Args then
	// holds the distances.
	Position bool
}

var errUnclosed = errors.New("Missing closing parenthesis")

const whitespace = "\t\n\v\f\r "

// Split dispatches on the dialect.
func Split(text string, offset float64, ft preprocess.FileType) (Info, error) {
	if ft == preprocess.RW {
		return RW(text, offset)
	}
	return CSV(text, offset)
}

// isPosition reports whether name is a position statement: anything with a
// colon, or a number with an optional leading minus.
func isPosition(name string) bool {
	if strings.IndexByte(name, ':') >= 0 {
		return true
	}
	if len(name) > 1 && name[0] == '-' {
		name = name[1:]
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c < '0' || c > '9') && c != '.' {
			return false
		}
	}
	return true
}

func fields(text string, sep byte) []string {
	parts := strings.Split(text, string(sep))
	for i := range parts {
		parts[i] = strings.Trim(parts[i], whitespace)
	}
	return parts
}

// CSV splits a statement of the comma dialect:
//
//	Name args;args
//	Name(idx;idx) args;args
//	Name(idx;idx).Suffix args;args
//	Name(idx).Suffix(args;args)
//
// When no argument list follows the parenthesis, its contents are the
// arguments.
func CSV(text string, offset float64) (Info, error) {
	brk := strings.IndexAny(text, " (")
	if brk < 0 {
		brk = len(text)
	}
	name := text[:brk]
	if isPosition(name) {
		if name == "" {
			return Info{}, errors.New("Statement has no name")
		}
		return Info{Args: strings.Split(name, ":"), Offset: offset, Position: true}, nil
	}
	if brk == len(text) {
		return Info{Name: name, Offset: offset}, nil
	}

	// step over the run of separators; brk ends on the last one
	for brk+1 < len(text) && (text[brk+1] == ' ' || text[brk+1] == '(') {
		brk++
	}
	if text[brk] != '(' {
		return Info{Name: name, Args: fields(text[brk+1:], ';'), Offset: offset}, nil
	}

	closing := strings.IndexByte(text[brk+1:], ')')
	if closing < 0 {
		return Info{}, errUnclosed
	}
	closing += brk + 1
	inParens := fields(text[brk+1:closing], ';')

	rest := text[closing+1:]
	if rest == "" {
		return Info{Name: name, Args: inParens, Offset: offset}, nil
	}

	var suffix string
	if rest[0] == '.' {
		end := strings.IndexAny(rest, " (")
		if end < 0 {
			end = len(rest)
		}
		suffix = strings.ToLower(rest[1:end])
		rest = rest[end:]
		if rest == "" {
			return Info{Name: name, Args: inParens, Suffix: suffix, Offset: offset}, nil
		}
	}

	var args string
	switch rest[0] {
	case '(':
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return Info{}, errUnclosed
		}
		args = rest[1:end]
	case ' ':
		args = rest[1:]
	default:
		args = rest
	}
	return Info{Name: name, Indices: inParens, Args: fields(args, ';'), Suffix: suffix, Offset: offset}, nil
}

// RW splits a statement of the sectioned dialect:
//
//	[Section]             -> name "with", args [section]
//	Name(a,b)             -> args a, b
//	Name(a,b) = value     -> indices a, b; args [value]
//	Name(a).Suffix = value
//
// Names are lower-cased.
func RW(text string, offset float64) (Info, error) {
	brk := strings.IndexAny(text, " (=")
	if brk < 0 {
		brk = len(text)
	}
	name := strings.ToLower(text[:brk])
	// "3 = file" in the [Signal] section names an index, not a position
	assigns := strings.HasPrefix(strings.TrimLeft(text[brk:], " "), "=")
	if !assigns && isPosition(name) {
		if name == "" {
			return Info{}, errors.New("Statement has no name")
		}
		return Info{Args: strings.Split(name, ":"), Offset: offset, Position: true}, nil
	}
	if brk == len(text) {
		section := strings.Trim(name, whitespace+"[]")
		return Info{Name: "with", Args: []string{section}, Offset: offset}, nil
	}

	rest := strings.TrimLeft(text[brk:], " ")
	var inParens []string
	if strings.HasPrefix(rest, "(") {
		closing := strings.IndexByte(rest, ')')
		if closing < 0 {
			return Info{}, errUnclosed
		}
		inParens = fields(rest[1:closing], ',')
		rest = rest[closing+1:]
	}

	var suffix string
	if strings.HasPrefix(rest, ".") {
		end := strings.IndexByte(rest, '=')
		if end < 0 {
			end = len(rest)
		}
		suffix = strings.ToLower(strings.Trim(rest[1:end], whitespace))
		rest = rest[end:]
	}

	rest = strings.TrimLeft(rest, " ")
	if !strings.HasPrefix(rest, "=") {
		return Info{Name: name, Args: inParens, Suffix: suffix, Offset: offset}, nil
	}
	value := strings.Trim(rest[1:], whitespace)
	return Info{Name: name, Indices: inParens, Args: []string{value}, Suffix: suffix, Offset: offset}, nil
}
