package preprocess

import (
	"errors"
	"math/rand/v2"
	"regexp"
	"sort"
	"strings"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/loose"
	"bve-compiler/internal/source"
)

// Group 1 is the filename, group 2 the position offset, group 3 everything
// after the first filename of a weighted include.
var includeFinder = regexp.MustCompile(`(?i)\$Include\(([\w\-. \\/]+\s*)(?::\s*(\d+))*([\w\s;]*)\)`)

type include struct {
	filename string
	offset   float64
	line     int // 0-based
}

type rawLine struct {
	contents string
	file     string
	line     int
	offset   float64
}

// Reader loads the text of a route file.
type Reader func(path string) (string, error)

// ProcessIncludes reads filename and splices every included file in place of
// the line holding its $Include. A failure to read the top-level file is
// returned; failures inside includes become diagnostics.
func ProcessIncludes(filename string, rng *rand.Rand, errs diag.MultiError, ft FileType, resolve source.Resolver) (Lines, error) {
	return ProcessIncludesWith(filename, rng, errs, ft, resolve, source.ReadFile)
}

// ProcessIncludesWith is ProcessIncludes with a custom file reader.
func ProcessIncludesWith(filename string, rng *rand.Rand, errs diag.MultiError, ft FileType, resolve source.Resolver, read Reader) (Lines, error) {
	text, err := read(filename)
	if err != nil {
		return Lines{}, err
	}
	p := &includeProcessor{rng: rng, errs: errs, ft: ft, resolve: resolve, read: read}
	raw := p.expand(map[string]bool{filename: true}, filename, text)

	names := []string{filename}
	for _, l := range raw {
		names = append(names, l.file)
	}
	sort.Strings(names)
	uniq := names[:0]
	for i, n := range names {
		if i == 0 || n != names[i-1] {
			uniq = append(uniq, n)
		}
	}
	index := make(map[string]int, len(uniq))
	for i, n := range uniq {
		index[n] = i
	}

	out := Lines{Filenames: append([]string(nil), uniq...)}
	for _, l := range raw {
		if l.contents == "" {
			continue
		}
		out.Lines = append(out.Lines, Line{Contents: l.contents, FileIndex: index[l.file], Line: l.line, Offset: l.offset})
	}
	return out, nil
}

type includeProcessor struct {
	rng     *rand.Rand
	errs    diag.MultiError
	ft      FileType
	resolve source.Resolver
	read    Reader
}

func (p *includeProcessor) expand(chain map[string]bool, filename, text string) []rawLine {
	p.errs.Touch(filename)
	text = RemoveComments(text, ';', p.ft == CSV)
	fileLines := strings.Split(text, "\n")
	includes := p.findIncludes(filename, text)

	var out []rawLine
	last := 0
	for _, inc := range includes {
		for j := last; j < inc.line && j < len(fileLines); j++ {
			out = append(out, rawLine{contents: fileLines[j], file: filename, line: j + 1})
		}
		if inc.line+1 > last {
			last = inc.line + 1
		}

		path := p.resolve(filename, inc.filename)
		if chain[path] {
			p.errs.Addf(filename, inc.line+1, "File %q has included this file. There is a circular chain of includes. Including nothing.", path)
			continue
		}
		sub, err := p.read(path)
		if err != nil {
			p.errs.Add(filename, inc.line+1, err.Error())
			continue
		}
		next := make(map[string]bool, len(chain)+1)
		for k := range chain {
			next[k] = true
		}
		next[path] = true
		for _, l := range p.expand(next, path, sub) {
			l.offset += inc.offset
			out = append(out, l)
		}
	}
	for j := last; j < len(fileLines); j++ {
		out = append(out, rawLine{contents: fileLines[j], file: filename, line: j + 1})
	}
	return out
}

func (p *includeProcessor) findIncludes(filename, text string) []include {
	var list []include
	for _, m := range includeFinder.FindAllStringSubmatchIndex(text, -1) {
		line := strings.Count(text[:m[0]], "\n")
		group := func(i int) string {
			if m[2*i] < 0 {
				return ""
			}
			return text[m[2*i]:m[2*i+1]]
		}
		rest := group(3)
		switch {
		case rest != "" && rest[0] == ';':
			inc, err := p.weighted(group(1)+rest, line)
			if err != nil {
				p.errs.Add(filename, line+1, err.Error())
				continue
			}
			list = append(list, inc)
		case group(2) != "":
			list = append(list, include{filename: strings.TrimSpace(group(1)), offset: loose.FloatOr(group(2), 0), line: line})
		default:
			list = append(list, include{filename: strings.TrimSpace(group(1)), line: line})
		}
	}
	return list
}

// weighted picks one file of "a;w1;b;w2..." with probability proportional to
// its weight.
func (p *includeProcessor) weighted(spec string, line int) (include, error) {
	parts := strings.Split(spec, ";")
	if len(parts)%2 != 0 {
		return include{}, errors.New("Weighted includes must have an even amount of arguments")
	}
	sums := make([]float64, 0, len(parts)/2)
	total := 0.0
	for i := 1; i < len(parts); i += 2 {
		total += loose.FloatOr(parts[i], 1)
		sums = append(sums, total)
	}
	chosen := p.rng.Float64() * total
	idx := sort.SearchFloat64s(sums, chosen)
	if idx >= len(sums) {
		idx = len(sums) - 1
	}
	return include{filename: strings.TrimSpace(parts[idx*2]), line: line}, nil
}
