package generate

import (
	"fmt"
	"strings"

	"bve-compiler/internal/loose"
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/split"
)

// ParseError is returned by a directive constructor when its arguments
// cannot form an instruction. The generator reports it and substitutes a
// None instruction.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

func argsAtLeast(in split.Info, n int, name string) error {
	if len(in.Args) >= n {
		return nil
	}
	plural := "s"
	if n == 1 {
		plural = ""
	}
	return &ParseError{Msg: fmt.Sprintf("%s must have at least %d argument%s", name, n, plural)}
}

func indicesAtLeast(in split.Info, n int, name string) error {
	if len(in.Indices) >= n {
		return nil
	}
	word := "indices"
	if n == 1 {
		word = "index"
	}
	return &ParseError{Msg: fmt.Sprintf("%s must have at least %d %s", name, n, word)}
}

// reader parses arguments and keeps the first failure, so a constructor can
// read every field and check the error once.
type reader struct {
	name string
	in   split.Info
	err  error
}

func newReader(in split.Info, name string) *reader {
	return &reader{name: name, in: in}
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = &ParseError{Msg: r.name + ": " + err.Error()}
	}
}

func (r *reader) n() int { return len(r.in.Args) }

func (r *reader) has(i int) bool { return i < len(r.in.Args) }

func (r *reader) str(i int) string {
	if !r.has(i) {
		return ""
	}
	return r.in.Args[i]
}

func (r *reader) lower(i int) string {
	return strings.ToLower(r.str(i))
}

func (r *reader) float(i int) float64 {
	v, err := loose.Float(r.str(i))
	if err != nil {
		r.fail(err)
	}
	return v
}

func (r *reader) floatOr(i int, def float64) float64 {
	if !r.has(i) {
		return def
	}
	return loose.FloatOr(r.in.Args[i], def)
}

func (r *reader) integer(i int) int {
	v, err := loose.Int(r.str(i))
	if err != nil {
		r.fail(err)
	}
	return int(v)
}

func (r *reader) intOr(i int, def int) int {
	if !r.has(i) {
		return def
	}
	return int(loose.IntOr(r.in.Args[i], int64(def)))
}

func (r *reader) uint(i int) int {
	return r.unsigned(r.str(i))
}

// uintOr treats negative numbers like unparsable ones.
func (r *reader) uintOr(i int, def int) int {
	v := r.intOr(i, def)
	if v < 0 {
		return def
	}
	return v
}

func (r *reader) byteOr(i int, def uint8) uint8 {
	v := r.intOr(i, int(def))
	if v < 0 || v > 255 {
		r.fail(fmt.Errorf("%q is out of range 0-255", r.str(i)))
		return def
	}
	return uint8(v)
}

func (r *reader) time(i int) int64 {
	v, err := loose.Time(r.str(i))
	if err != nil {
		r.fail(err)
	}
	return v
}

func (r *reader) index(i int) int {
	var s string
	if i < len(r.in.Indices) {
		s = r.in.Indices[i]
	}
	return r.unsigned(s)
}

func (r *reader) unsigned(s string) int {
	v, err := loose.Int(s)
	if err != nil {
		r.fail(err)
		return 0
	}
	if v < 0 {
		r.fail(fmt.Errorf("%q is not a valid unsigned integer", s))
		return 0
	}
	return int(v)
}

// placement reads x, y, yaw, pitch, roll starting at argument off. Missing
// or unparsable values are 0.
func (r *reader) placement(off int) instr.Placement {
	var p instr.Placement
	p.X = r.floatOr(off, 0)
	p.Y = r.floatOr(off+1, 0)
	p.Yaw = r.floatOr(off+2, 0)
	p.Pitch = r.floatOr(off+3, 0)
	p.Roll = r.floatOr(off+4, 0)
	return p
}
