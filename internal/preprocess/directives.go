package preprocess

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/loose"
)

type condKind int

const (
	condNone condKind = iota
	condTrue
	condFalse
	condElse
	condEnd
)

// expander carries directive state across all lines of one route.
type expander struct {
	vars  map[int64]string
	rng   *rand.Rand
	errs  diag.MultiError
	file  string
	line  int
	cond  condKind
	stack []bool
}

func matchParen(s string, begin, end int) int {
	level := 0
	for i := begin; i < end; i++ {
		switch s[i] {
		case '(':
			level++
		case ')':
			if level != 0 {
				level--
				if level == 0 {
					return i
				}
			}
		}
	}
	return end
}

func indexFrom(s string, begin, end int, c byte) int {
	if begin >= end {
		return end
	}
	if i := strings.IndexByte(s[begin:end], c); i >= 0 {
		return begin + i
	}
	return end
}

// dispatch evaluates the directives found in s[begin:end]. lineEnd bounds
// the text a $Sub assignment may consume; *used receives the index of the
// last character consumed.
func (e *expander) dispatch(s string, begin, end, lineEnd int, used *int) string {
	var out strings.Builder
	for begin < end {
		money := indexFrom(s, begin, end, '$')
		if money == end {
			// a comma ends literal text inside a directive argument
			out.WriteString(s[begin:indexFrom(s, begin, end, ',')])
			break
		}
		paren := indexFrom(s, money, end, '(')
		closing := matchParen(s, paren, end)
		if paren == end || closing == end {
			out.WriteString(s[begin:end])
			*used = end - 1
			break
		}

		var innerUsed int
		inside := strip(e.dispatch(s, paren+1, closing, closing, &innerUsed))
		command := strings.ToLower(strip(s[money+1 : paren]))

		switch command {
		case "sub":
			idx, err := loose.Int(inside)
			if err != nil {
				e.errs.Add(e.file, e.line, err.Error())
				inside = ""
				*used = closing
				break
			}
			equals := indexFrom(s, closing, lineEnd, '=')
			if end != lineEnd && equals != lineEnd {
				var rhsUsed int
				e.vars[idx] = e.dispatch(s, equals+1, lineEnd, lineEnd, &rhsUsed)
				inside = ""
				*used = lineEnd - 1
				closing = lineEnd - 1
			} else {
				inside = e.vars[idx]
				*used = closing
			}
		case "rnd":
			v, err := e.rnd(inside)
			*used = closing
			if err != nil {
				e.errs.Add(e.file, e.line, err.Error())
				begin = closing + 1
				continue
			}
			inside = v
		case "chr":
			v, err := loose.Int(inside)
			inside = ""
			if err != nil {
				e.errs.Add(e.file, e.line, err.Error())
			} else if v == 10 || v == 13 || (v >= 20 && v <= 127) {
				inside = string(rune(v))
			}
			*used = closing
		case "if":
			v, err := loose.Int(inside)
			if err != nil {
				e.errs.Add(e.file, e.line, err.Error())
			}
			e.cond = condFalse
			if v != 0 {
				e.cond = condTrue
			}
			inside = ""
			*used = closing
		case "else":
			e.cond = condElse
			inside = ""
			*used = closing
		case "endif":
			e.cond = condEnd
			inside = ""
			*used = closing
		default:
			e.errs.Add(e.file, e.line, "Error: unknown expression found "+command)
			*used = closing
			begin = closing + 1
			continue
		}

		out.WriteString(s[begin:money])
		out.WriteString(inside)
		begin = closing + 1
	}
	return out.String()
}

func (e *expander) rnd(arg string) (string, error) {
	parts := strings.Split(arg, ";")
	if len(parts) != 2 {
		return "", errors.New("$Rnd takes two arguments")
	}
	lo, err1 := loose.Int(parts[0])
	hi, err2 := loose.Int(parts[1])
	if err1 != nil || err2 != nil {
		return "", errors.New("Error: $Rnd requires numeric values")
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return strconv.FormatInt(lo+e.rng.Int64N(hi-lo+1), 10), nil
}

func (e *expander) enabled() bool {
	return e.stack[len(e.stack)-1]
}

func (e *expander) applyCondition() {
	switch e.cond {
	case condTrue:
		e.stack = append(e.stack, true)
	case condFalse:
		e.stack = append(e.stack, false)
	case condElse:
		e.stack[len(e.stack)-1] = !e.stack[len(e.stack)-1]
	case condEnd:
		if len(e.stack) == 1 {
			e.errs.Add(e.file, e.line, "$EndIf without a matching $If")
		} else {
			e.stack = e.stack[:len(e.stack)-1]
		}
	}
	e.cond = condNone
}

func (e *expander) expandLine(s string) string {
	var out strings.Builder
	begin := 0
	end := len(s)
	for begin < end {
		money := indexFrom(s, begin, end, '$')
		paren := indexFrom(s, money, end, '(')
		closing := matchParen(s, paren, end)
		if money == end || paren == end || closing == end {
			if e.enabled() {
				out.WriteString(s[begin:end])
			}
			break
		}
		if e.enabled() {
			out.WriteString(s[begin:money])
		}

		used := closing
		value := e.dispatch(s, money, closing+1, end, &used)
		e.applyCondition()

		if e.enabled() {
			out.WriteString(value)
		}
		begin = used + 1
	}
	return out.String()
}

// Preprocess expands directives in every line, removes comments and splits
// lines into statements (on ',' for CSV and '@' for RW). Empty statements
// are dropped.
func Preprocess(lines Lines, rng *rand.Rand, errs diag.MultiError, ft FileType) Lines {
	e := &expander{vars: map[int64]string{}, rng: rng, errs: errs, stack: []bool{true}}
	for i := range lines.Lines {
		l := &lines.Lines[i]
		e.file = lines.Filename(*l)
		e.line = l.Line
		l.Contents = RemoveComments(e.expandLine(l.Contents), ';', ft == CSV)
	}

	sep := "@"
	if ft == CSV {
		sep = ","
	}
	out := Lines{Filenames: lines.Filenames}
	for _, l := range lines.Lines {
		for _, part := range strings.Split(l.Contents, sep) {
			part = strip(part)
			if ft == CSV {
				part = strip(RemoveComments(part, ';', true))
			}
			if part == "" {
				continue
			}
			out.Lines = append(out.Lines, Line{Contents: part, FileIndex: l.FileIndex, Line: l.Line, Offset: l.Offset})
		}
	}
	return out
}
