// Package generate turns preprocessed route statements into the typed
// instruction stream and assigns track positions to it.
package generate

import (
	"errors"
	"fmt"
	"strings"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/preprocess"
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/split"
)

type generator struct {
	lines *preprocess.Lines
	errs  diag.MultiError
	ft    preprocess.FileType
	with  string
}

// Generate builds one instruction per statement. Unknown directives and
// constructor failures are reported to errs and become instr.None, so the
// result is always complete.
func Generate(lines preprocess.Lines, errs diag.MultiError, ft preprocess.FileType) *instr.List {
	g := &generator{lines: &lines, errs: errs, ft: ft}
	list := &instr.List{
		Instructions: make([]instr.Instruction, 0, len(lines.Lines)),
		Filenames:    lines.Filenames,
	}
	for _, l := range lines.Lines {
		i := g.instruction(l)
		b := i.Common()
		b.FileIndex = l.FileIndex
		b.Line = l.Line
		b.Position = -1
		list.Instructions = append(list.Instructions, i)
	}
	return list
}

func (g *generator) report(l preprocess.Line, msg string) {
	g.errs.Add(g.lines.Filename(l), l.Line, msg)
}

func (g *generator) instruction(l preprocess.Line) instr.Instruction {
	info, err := split.Split(l.Contents, l.Offset, g.ft)
	if err != nil {
		g.report(l, err.Error())
		return &instr.None{}
	}
	if info.Position {
		i, err := position(info)
		if err != nil {
			g.report(l, err.Error())
			return &instr.None{}
		}
		return i
	}

	info.Name = strings.ToLower(info.Name)
	if g.ft == preprocess.CSV {
		if strings.HasPrefix(info.Name, ".") {
			info.Name = g.with + info.Name
		}
	} else if info.Name != "with" {
		switch g.with {
		case "":
			return &instr.RouteComment{Text: l.Contents}
		case "signal":
			info.Indices = append(info.Indices, info.Name)
			info.Name = "@@signal@@signalindex"
			info.Args = splitValue(info.Args)
		case "cycle":
			info.Indices = append(info.Indices, info.Name)
			info.Name = "@@cycle@@groundstructureindex"
			info.Args = splitValue(info.Args)
		default:
			info.Name = "@@" + g.with + "@@" + info.Name
		}
	}

	ctor, ok := Catalogue[info.Name]
	if !ok {
		switch {
		case info.Name == "with":
			if len(info.Args) == 0 {
				g.report(l, "With must have at least 1 argument")
				break
			}
			g.with = strings.ToLower(info.Args[0])
		case !ignored[info.Name]:
			g.report(l, fmt.Sprintf("%q is not a known function in a %s file", info.Name, g.ft))
		}
		return &instr.None{}
	}

	i, err := ctor(info)
	if err != nil {
		var pe *ParseError
		if !errors.As(err, &pe) {
			pe = &ParseError{Msg: err.Error()}
		}
		g.report(l, pe.Msg)
		return &instr.None{}
	}
	return i
}

// splitValue breaks the single "a, b, c" value of an RW assignment into its
// parts.
func splitValue(args []string) []string {
	if len(args) != 1 {
		return args
	}
	parts := strings.Split(args[0], ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func position(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Location Statement"); err != nil {
		return nil, err
	}
	r := newReader(in, "Location Statement")
	p := &instr.Position{Distances: make([]float64, 0, r.n()+1)}
	p.Distances = append(p.Distances, in.Offset)
	for i := 0; i < r.n(); i++ {
		p.Distances = append(p.Distances, r.floatOr(i, 0))
	}
	return p, nil
}
