package route

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bve-compiler/internal/mathutil"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestCompileEndToEnd(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.csv": "\ufeffStructure.FreeObj(0) house.obj\r\n" +
			"Route.Elevation 10\r\n" +
			"$Include(more.csv:100)\r\n" +
			"50,Track.FreeObj 0;0\r\n" +
			"Track.Beacon 0;1;2;3\r\n",
		"more.csv": "0,Track.FreeObj 0;0\n",
	})
	main := filepath.Join(dir, "main.csv")
	r, errs, err := Compile(main, Options{Seed: 1})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if r.Altitude != 10 {
		t.Errorf("altitude = %v", r.Altitude)
	}
	if len(r.Objects) != 2 {
		t.Fatalf("objects = %+v", r.Objects)
	}
	for i, z := range []float64{50, 100} {
		o := r.Objects[i]
		if r.ObjectFiles.Name(o.File) != "house.obj" || !o.Position.ApproxEqual(mathutil.Vec3{0, 0, z}, 1e-9) {
			t.Errorf("object %d = %+v", i, o)
		}
	}
	if len(r.Beacons) != 1 {
		t.Errorf("beacons = %+v", r.Beacons)
	}
	got := errs.For(main)
	if len(got) != 1 || got[0].Line != 5 || !strings.HasPrefix(got[0].Message, "Beacon Structure #1 isn't mapped") {
		t.Errorf("diagnostics = %+v", got)
	}
}

func TestCompileMissingFile(t *testing.T) {
	_, _, err := Compile(filepath.Join(t.TempDir(), "absent.csv"), Options{})
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v", err)
	}
}

func TestInstructionsWithoutPass1(t *testing.T) {
	files := map[string]string{"r.rw": "[Railway]\n100\nCurve(600)\n"}
	read := func(p string) (string, error) {
		if text, ok := files[filepath.Base(p)]; ok {
			return text, nil
		}
		return "", os.ErrNotExist
	}
	list, errs, err := Instructions("r.rw", Options{FileType: FileTypeFor("r.rw"), ReadFile: read}, false)
	if err != nil {
		t.Fatal(err)
	}
	if errs.Len() != 0 {
		t.Fatalf("diagnostics = %v", errs.Error())
	}
	for _, i := range list.Instructions {
		if i.Common().Position != -1 {
			t.Errorf("%T has position %v before Pass 1", i, i.Common().Position)
		}
	}
}

func TestFileTypeFor(t *testing.T) {
	if FileTypeFor("x/Route.RW") != RW || FileTypeFor("route.csv") != CSV || FileTypeFor("noext") != CSV {
		t.Fatal("wrong dialect")
	}
}
