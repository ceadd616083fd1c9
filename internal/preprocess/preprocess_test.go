package preprocess

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"bve-compiler/internal/diag"
)

func memReader(files map[string]string) Reader {
	return func(path string) (string, error) {
		text, ok := files[path]
		if !ok {
			return "", fmt.Errorf("source: read %s: not found", path)
		}
		return text, nil
	}
}

func joinResolver(issuer, ref string) string {
	return filepath.Join(filepath.Dir(issuer), ref)
}

func contents(l Lines) []string {
	out := make([]string, len(l.Lines))
	for i, line := range l.Lines {
		out[i] = line.Contents
	}
	return out
}

func TestRemoveComments(t *testing.T) {
	if got := RemoveComments("a;b\n;c\nd", ';', false); got != "a\n\nd" {
		t.Errorf("anywhere: %q", got)
	}
	if got := RemoveComments("a;b\n;c\nd", ';', true); got != "a;b\n\nd" {
		t.Errorf("first in line: %q", got)
	}
}

func TestIncludesSpliceAndOffset(t *testing.T) {
	files := map[string]string{
		"/r/main.csv": "Track.Pitch 1\n$Include(sub.csv:100)\nTrack.Pitch 2",
		"/r/sub.csv":  "Track.Curve 400\n\nTrack.Height 2",
	}
	errs := diag.New()
	lines, err := ProcessIncludesWith("/r/main.csv", rand.New(rand.NewPCG(1, 1)), errs, CSV, joinResolver, memReader(files))
	if err != nil {
		t.Fatal(err)
	}
	got := contents(lines)
	want := []string{"Track.Pitch 1", "Track.Curve 400", "Track.Height 2", "Track.Pitch 2"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("lines = %q", got)
	}
	if len(lines.Filenames) != 2 || lines.Filenames[0] != "/r/main.csv" || lines.Filenames[1] != "/r/sub.csv" {
		t.Fatalf("filenames = %v", lines.Filenames)
	}
	if l := lines.Lines[1]; l.FileIndex != 1 || l.Offset != 100 || l.Line != 1 {
		t.Fatalf("included line = %+v", l)
	}
	if l := lines.Lines[3]; l.FileIndex != 0 || l.Line != 3 {
		t.Fatalf("trailing line = %+v", l)
	}
	if errs.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", errs)
	}
}

func TestCircularInclude(t *testing.T) {
	files := map[string]string{
		"/r/a.csv": "$Include(b.csv)\nA",
		"/r/b.csv": "$Include(a.csv)\nB",
	}
	errs := diag.New()
	lines, err := ProcessIncludesWith("/r/a.csv", rand.New(rand.NewPCG(1, 1)), errs, CSV, joinResolver, memReader(files))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(contents(lines), "|"); got != "B|A" {
		t.Fatalf("lines = %q", got)
	}
	ds := errs.For("/r/b.csv")
	if len(ds) != 1 || !strings.Contains(ds[0].Message, "circular chain of includes") {
		t.Fatalf("diagnostics = %+v", errs)
	}
}

func TestWeightedIncludeOddArguments(t *testing.T) {
	files := map[string]string{"/r/a.csv": "$Include(x.csv;1;y.csv)"}
	errs := diag.New()
	if _, err := ProcessIncludesWith("/r/a.csv", rand.New(rand.NewPCG(1, 1)), errs, CSV, joinResolver, memReader(files)); err != nil {
		t.Fatal(err)
	}
	ds := errs.For("/r/a.csv")
	if len(ds) != 1 || ds[0].Message != "Weighted includes must have an even amount of arguments" {
		t.Fatalf("diagnostics = %+v", ds)
	}
}

func TestWeightedIncludePicksNonZeroWeight(t *testing.T) {
	files := map[string]string{
		"/r/a.csv": "$Include(x.csv;0;y.csv;5)",
		"/r/x.csv": "X",
		"/r/y.csv": "Y",
	}
	for seed := uint64(0); seed < 10; seed++ {
		lines, err := ProcessIncludesWith("/r/a.csv", rand.New(rand.NewPCG(seed, seed)), diag.New(), CSV, joinResolver, memReader(files))
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.Join(contents(lines), "|"); got != "Y" {
			t.Fatalf("seed %d picked %q", seed, got)
		}
	}
}

func run(t *testing.T, ft FileType, text string) ([]string, diag.MultiError) {
	t.Helper()
	errs := diag.New()
	in := Lines{Filenames: []string{"f"}}
	for i, l := range strings.Split(text, "\n") {
		in.Lines = append(in.Lines, Line{Contents: l, Line: i + 1})
	}
	out := Preprocess(in, rand.New(rand.NewPCG(7, 7)), errs, ft)
	return contents(out), errs
}

func TestSubAssignAndRead(t *testing.T) {
	got, errs := run(t, CSV, "$Sub(3) = 250\nTrack.Curve $Sub(3)")
	if errs.Len() != 0 {
		t.Fatalf("diagnostics: %v", errs)
	}
	if len(got) != 1 || got[0] != "Track.Curve  250" {
		t.Fatalf("got %q", got)
	}
}

func TestChrAndSplit(t *testing.T) {
	got, _ := run(t, CSV, "Route.Comment a$Chr(44)b, Track.Pitch 2 ,, ;comment")
	want := []string{"Route.Comment a", "b", "Track.Pitch 2"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("got %q", got)
	}
}

func TestIfElse(t *testing.T) {
	got, _ := run(t, CSV, "$If(0)\nA\n$Else()\nB\n$EndIf()\nC")
	if strings.Join(got, "|") != "B|C" {
		t.Fatalf("got %q", got)
	}
}

func TestRndInRange(t *testing.T) {
	got, errs := run(t, CSV, "$Rnd(5;3)")
	if errs.Len() != 0 || len(got) != 1 {
		t.Fatalf("got %q, %v", got, errs)
	}
	if got[0] != "3" && got[0] != "4" && got[0] != "5" {
		t.Fatalf("$Rnd out of range: %q", got[0])
	}
}

func TestUnknownDirective(t *testing.T) {
	_, errs := run(t, CSV, "$Foo(1)")
	ds := errs.For("f")
	if len(ds) != 1 || ds[0].Message != "Error: unknown expression found foo" || ds[0].Line != 1 {
		t.Fatalf("diagnostics = %+v", ds)
	}
}

func TestRWSplitsOnAt(t *testing.T) {
	got, _ := run(t, RW, "a=1@b=2")
	if strings.Join(got, "|") != "a=1|b=2" {
		t.Fatalf("got %q", got)
	}
}
