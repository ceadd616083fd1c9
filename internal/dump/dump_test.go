package dump

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/mathutil"
	"bve-compiler/internal/object"
	"bve-compiler/internal/route/scene"
)

func sampleRoute() *scene.Route {
	r := scene.New()
	h := r.ObjectFiles.Insert("Poles/Pole.b3d")
	r.Blocks = append(r.Blocks, scene.Block{Position: 0, Length: 25}, scene.Block{Position: 25, Length: 25})
	r.Objects = append(r.Objects, scene.Object{File: h, Position: mathutil.Vec3{3, 0, 10}})
	r.Beacons = append(r.Beacons, scene.Beacon{Position: 50, Type: 1, Data: 2, Section: -1})
	r.RunSounds[1] = 3
	return r
}

func TestRouteRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name     string
		compress bool
	}{
		{"route.json", false},
		{"route.json.zst", false},
		{"route.bin", true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.name)
			if err := Write(path, sampleRoute(), tc.compress); err != nil {
				t.Fatal(err)
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if zipped := bytes.HasPrefix(raw, zstdMagic); zipped != (tc.compress || strings.HasSuffix(tc.name, ".zst")) {
				t.Errorf("compressed = %v", zipped)
			}

			d, err := Read(path)
			if err != nil {
				t.Fatal(err)
			}
			if d.Header != (Header{Kind: KindRoute, Version: Version}) {
				t.Errorf("header = %+v", d.Header)
			}
			if err := d.Validate(); err != nil {
				t.Errorf("validate: %v", err)
			}
			r, err := d.Route()
			if err != nil {
				t.Fatal(err)
			}
			if len(r.Blocks) != 2 || len(r.Objects) != 1 || r.Objects[0].Position[2] != 10 {
				t.Errorf("route = %+v", r)
			}
			if r.ObjectFiles.Name(r.Objects[0].File) != "poles/pole.b3d" {
				t.Errorf("object file = %q", r.ObjectFiles.Name(r.Objects[0].File))
			}
			if r.RunSounds[1] != 3 || r.StartTime != -1 {
				t.Errorf("run sounds %v start %d", r.RunSounds, r.StartTime)
			}
			if _, err := d.Object(); err == nil {
				t.Error("Object() on a route dump should fail")
			}
		})
	}
}

func TestObjectRoundTrip(t *testing.T) {
	errs := diag.New()
	obj := object.Parse("CreateMeshBuilder\nCube,1,1,1\n", object.CSV, errs, "cube.csv")
	path := filepath.Join(t.TempDir(), "cube.json.zst")
	if err := Write(path, obj, true); err != nil {
		t.Fatal(err)
	}
	d, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
	got, err := d.Object()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Meshes) != 1 || got.Meshes[0].Triangles() != obj.Meshes[0].Triangles() {
		t.Errorf("object = %+v", got)
	}
}

func TestValidateRejects(t *testing.T) {
	for _, tc := range []struct {
		name string
		data string
	}{
		{"no header", `{"block_length":25}`},
		{"bad version", "{\"kind\":\"route\",\"version\":9}\n{}"},
		{"unknown kind", "{\"kind\":\"train\",\"version\":1}\n{}"},
		{"missing fields", "{\"kind\":\"route\",\"version\":1}\n{\"block_length\":25}"},
		{"zero block length", "{\"kind\":\"route\",\"version\":1}\n" +
			`{"block_length":0,"blocks":null,"objects":null,"stations":null,"object_files":[],"texture_files":[],"sound_files":[],"signal_speed":[],"start_time":-1}`},
		{"short vector", "{\"kind\":\"route\",\"version\":1}\n" +
			`{"block_length":25,"blocks":null,"objects":[{"file":0,"position":[1,2],"rotation":[0,0,0]}],"stations":null,"object_files":[],"texture_files":[],"sound_files":[],"signal_speed":[],"start_time":-1}`},
	} {
		if err := Validate([]byte(tc.data)); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestWriteRejectsUnknownValue(t *testing.T) {
	if err := Write(filepath.Join(t.TempDir(), "x.json"), 42, false); err == nil {
		t.Fatal("expected error")
	}
}
