package object

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/mathutil"
)

const file = "obj.csv"

func parse(t *testing.T, ft FileType, text string) (*Object, diag.MultiError) {
	t.Helper()
	errs := diag.New()
	return Parse(text, ft, errs, file), errs
}

func messages(errs diag.MultiError) []string {
	var out []string
	for _, d := range errs.For(file) {
		out = append(out, d.Message)
	}
	return out
}

func TestMaterialGrouping(t *testing.T) {
	obj, errs := parse(t, CSV, strings.Join([]string{
		"CreateMeshBuilder",
		"AddVertex, 0, 0, 0",
		"AddVertex, 1, 0, 0",
		"AddVertex, 0, 1, 0",
		"AddVertex, 1, 1, 0",
		"AddFace, 0, 1, 2",
		"AddFace, 1, 3, 2",
		"LoadTexture, b.png",
		"AddFace, 0, 2, 1",
		"AddFace, 1, 2, 3",
		"LoadTexture, a.png",
		"CreateMeshBuilder",
	}, "\n"))
	if errs.Len() != 0 {
		t.Fatalf("diagnostics = %v", messages(errs))
	}
	if len(obj.Meshes) != 1 {
		t.Fatalf("LoadTexture applies to all faces so far: meshes = %d", len(obj.Meshes))
	}

	obj, _ = parse(t, CSV, strings.Join([]string{
		"CreateMeshBuilder",
		"AddVertex, 0, 0, 0",
		"AddVertex, 1, 0, 0",
		"AddVertex, 0, 1, 0",
		"AddFace, 0, 1, 2",
		"SetBlendMode, Additive",
		"AddFace, 0, 2, 1",
		"AddFace, 0, 1, 2",
		"AddFace, 2, 1, 0",
		"LoadTexture, a.png",
	}, "\n"))
	// Face 0 is additive, faces 1-3 are normal; all share a.png.
	if len(obj.Meshes) != 2 {
		t.Fatalf("meshes = %d", len(obj.Meshes))
	}
}

func TestAABBGivesTwoMeshes(t *testing.T) {
	b := &builder{file: file, errs: diag.New()}
	for i := 0; i < 3; i++ {
		b.vertices = append(b.vertices, Vertex{Position: mathutil.Vec3{float64(i), float64(i * i), 0}})
	}
	a, bb := defaultMaterial(), defaultMaterial()
	a.texture, bb.texture = "a.png", "b.png"
	b.faces = []face{
		{indices: []int{0, 1, 2}, mat: bb},
		{indices: []int{2, 1, 0}, mat: a},
		{indices: []int{0, 1, 2}, mat: bb},
		{indices: []int{1, 2, 0}, mat: a},
	}
	b.flush()
	if len(b.meshes) != 2 {
		t.Fatalf("meshes = %d", len(b.meshes))
	}
	if b.meshes[0].Texture.File != "a.png" || b.meshes[1].Texture.File != "b.png" {
		t.Fatalf("textures = %q, %q", b.meshes[0].Texture.File, b.meshes[1].Texture.File)
	}
	if got := b.meshes[0].Indices; !reflect.DeepEqual(got, []int{2, 1, 0, 1, 2, 0}) {
		t.Errorf("mesh a indices = %v", got)
	}
	if got := b.meshes[1].Indices; !reflect.DeepEqual(got, []int{0, 1, 2, 0, 1, 2}) {
		t.Errorf("mesh b indices = %v", got)
	}
	for _, m := range b.meshes {
		if len(m.FaceData) != 2 || len(m.Vertices) != 3 {
			t.Errorf("mesh = %+v", m)
		}
	}
}

func TestSetColorOnlyAffectsExistingFaces(t *testing.T) {
	obj, _ := parse(t, CSV, strings.Join([]string{
		"AddVertex, 0, 0, 0",
		"AddVertex, 1, 0, 0",
		"AddVertex, 0, 1, 0",
		"AddFace, 0, 1, 2",
		"SetColor, 10, 20, 30",
		"AddFace, 2, 1, 0",
		"CreateMeshBuilder",
		"SetColor, 1, 2, 3",
	}, "\n"))
	if len(obj.Meshes) != 1 {
		t.Fatalf("meshes = %d", len(obj.Meshes))
	}
	want := []FaceData{{Color: RGBA{10, 20, 30, 255}}, {Color: RGBA{255, 255, 255, 255}}}
	if !reflect.DeepEqual(obj.Meshes[0].FaceData, want) {
		t.Fatalf("face data = %+v", obj.Meshes[0].FaceData)
	}
}

func TestCubeAndNormals(t *testing.T) {
	obj, errs := parse(t, B3D, "[MeshBuilder]\nCube 1, 2, 3\n")
	if errs.Len() != 0 {
		t.Fatalf("diagnostics = %v", messages(errs))
	}
	m := obj.Meshes[0]
	if len(m.Vertices) != 8 || m.Triangles() != 12 {
		t.Fatalf("cube = %s", m.Summary())
	}
	for _, v := range m.Vertices {
		if math.Abs(v.Normal.Len()-1) > 1e-9 {
			t.Fatalf("normal %v is not unit length", v.Normal)
		}
		// Corner normals point away from the centre.
		if v.Normal.Dot(v.Position) <= 0 {
			t.Errorf("normal %v at %v points inwards", v.Normal, v.Position)
		}
	}
}

func TestTwoSidedFaceDoublesTriangles(t *testing.T) {
	obj, _ := parse(t, CSV, "AddVertex,0,0,0\nAddVertex,1,0,0\nAddVertex,1,1,0\nAddVertex,0,1,0\nAddFace2,0,1,2,3\n")
	m := obj.Meshes[0]
	want := []int{0, 1, 2, 2, 1, 0, 0, 2, 3, 3, 2, 0}
	if !reflect.DeepEqual(m.Indices, want) {
		t.Fatalf("indices = %v", m.Indices)
	}
	if n := m.Vertices[0].Normal; !n.ApproxEqual(mathutil.Vec3{0, 0, 1}, 1e-9) {
		t.Errorf("normal = %v", n)
	}
}

func TestUnusedVerticesDropped(t *testing.T) {
	obj, _ := parse(t, CSV, "AddVertex,9,9,9\nAddVertex,0,0,0\nAddVertex,1,0,0\nAddVertex,0,1,0\nAddFace,1,2,3\n")
	m := obj.Meshes[0]
	if len(m.Vertices) != 3 || !reflect.DeepEqual(m.Indices, []int{0, 1, 2}) {
		t.Fatalf("mesh = %+v", m)
	}
	if m.Vertices[0].Position != (mathutil.Vec3{0, 0, 0}) {
		t.Errorf("first vertex = %v", m.Vertices[0].Position)
	}
}

func TestRotateUsesDegrees(t *testing.T) {
	obj, _ := parse(t, CSV, "AddVertex,1,0,0\nAddVertex,0,1,0\nAddVertex,0,0,1\nAddFace,0,1,2\nRotate,0,1,0,90\n")
	p := obj.Meshes[0].Vertices[0].Position
	if !p.ApproxEqual(mathutil.Vec3{0, 0, -1}, 1e-9) {
		t.Fatalf("rotated vertex = %v", p)
	}
}

func TestTransformAllReachesFlushedMeshes(t *testing.T) {
	obj, _ := parse(t, CSV, strings.Join([]string{
		"AddVertex,0,0,0", "AddVertex,1,0,0", "AddVertex,0,1,0", "AddFace,0,1,2",
		"CreateMeshBuilder",
		"AddVertex,0,0,0", "AddVertex,1,0,0", "AddVertex,0,1,0", "AddFace,0,1,2",
		"Translate,0,0,5",
		"TranslateAll,1,0,0",
	}, "\n"))
	if len(obj.Meshes) != 2 {
		t.Fatalf("meshes = %d", len(obj.Meshes))
	}
	if p := obj.Meshes[0].Vertices[0].Position; p != (mathutil.Vec3{1, 0, 0}) {
		t.Errorf("first mesh vertex = %v", p)
	}
	if p := obj.Meshes[1].Vertices[0].Position; p != (mathutil.Vec3{1, 0, 5}) {
		t.Errorf("second mesh vertex = %v", p)
	}
}

func TestMirrorRewindsFaces(t *testing.T) {
	obj, _ := parse(t, CSV, "AddVertex,0,0,0\nAddVertex,1,0,0\nAddVertex,0,1,0\nAddFace,0,1,2\nMirror,1,0,0\n")
	m := obj.Meshes[0]
	if !reflect.DeepEqual(m.Indices, []int{2, 1, 0}) {
		t.Fatalf("indices = %v", m.Indices)
	}
	if n := m.Vertices[0].Normal; !n.ApproxEqual(mathutil.Vec3{0, 0, 1}, 1e-9) {
		t.Errorf("normal = %v", n)
	}
}

func TestDecalColourSetsFlag(t *testing.T) {
	obj, _ := parse(t, B3D, "Vertex 0,0,0\nVertex 1,0,0\nVertex 0,1,0\nFace 0,1,2\nLoad sign.bmp\nTransparent 0,0,255\n")
	tex := obj.Meshes[0].Texture
	if !tex.HasDecalColor || tex.DecalColor != (RGB{0, 0, 255}) || tex.File != "sign.bmp" {
		t.Fatalf("texture = %+v", tex)
	}
	if !reflect.DeepEqual(obj.Textures, []string{"sign.bmp"}) {
		t.Errorf("textures = %v", obj.Textures)
	}
}

func TestDiagnostics(t *testing.T) {
	_, errs := parse(t, CSV, strings.Join([]string{
		"AddVertex,0,0,0",
		"AddFace,0,1,2",
		"Frobnicate,1",
		"Cube,1",
		"SetTextureCoordinates,4,0,0",
		"GenerateNormals",
	}, "\n"))
	want := []string{
		"AddFace index 1 is larger than the valid range: [0, 0]",
		"AddFace index 2 is larger than the valid range: [0, 0]",
		`Function "frobnicate" not found`,
		"Cube must have at least 3 arguments",
		"SetTextureCoordinates index 4 is larger than the valid range: [0, 0]",
	}
	if got := messages(errs); !reflect.DeepEqual(got, want) {
		t.Fatalf("diagnostics = %q", got)
	}
	if d := errs.For(file); d[2].Line != 3 {
		t.Errorf("line = %d", d[2].Line)
	}
}

func TestLexDefaults(t *testing.T) {
	list := Lex("Scale, 2\nSetColor, 10\nSetBlendMode, additive, 9000\nCylinder, 6, 1, 1, 2 ; comment", CSV)
	if s := list[0].(*Scale); s.Factor != (mathutil.Vec3{2, 1, 1}) {
		t.Errorf("scale = %v", s.Factor)
	}
	if c := list[1].(*SetColor); c.Color != (RGBA{10, 255, 255, 255}) {
		t.Errorf("color = %v", c.Color)
	}
	if b := list[2].(*SetBlendMode); b.Mode != BlendAdditive || b.GlowHalfDistance != 4095 || b.GlowAttenuation != DivideExponent4 {
		t.Errorf("blend = %+v", b)
	}
	if c := list[3].(*Cylinder); c.Sides != 6 || c.Height != 2 || c.SourceLine() != 4 {
		t.Errorf("cylinder = %+v", c)
	}
	if got := Format(list[3]); got != "Cylinder{sides=6, upper=1, lower=1, height=2} (line 4)" {
		t.Errorf("Format = %q", got)
	}
}

func TestCylinderFaces(t *testing.T) {
	obj, _ := parse(t, CSV, "Cylinder, 4, 1, -1, 2")
	m := obj.Meshes[0]
	// 4 side quads and only the upper cap.
	if m.Triangles() != 4*2+2 || len(m.Vertices) != 8 {
		t.Fatalf("cylinder = %s", m.Summary())
	}
}

func TestCompileResolvesTextures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "house.b3d")
	text := "[MeshBuilder]\nCube 1,1,1\n[Texture]\nLoad tex\\wall.png, tex\\night.png\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	obj, errs, err := Compile(path, FileTypeFor(path), nil)
	if err != nil {
		t.Fatal(err)
	}
	if errs.Len() != 0 {
		t.Fatalf("diagnostics = %v", errs.Error())
	}
	want := []string{filepath.Join(dir, "tex", "night.png"), filepath.Join(dir, "tex", "wall.png")}
	if !reflect.DeepEqual(obj.Textures, want) {
		t.Fatalf("textures = %v", obj.Textures)
	}
	if obj.Meshes[0].Texture.File != want[1] {
		t.Errorf("mesh texture = %q", obj.Meshes[0].Texture.File)
	}
}
