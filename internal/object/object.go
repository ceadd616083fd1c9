// Package object compiles B3D and CSV mesh objects into triangle meshes.
//
// Source text is lexed into an instruction list, which a builder then
// interprets in order. Faces accumulate in the builder until the next
// CreateMeshBuilder (or the end of input) flushes them, at which point faces
// sharing the same material become one Mesh.
package object

import (
	"fmt"
	"path/filepath"
	"strings"

	"bve-compiler/internal/mathutil"
)

// FileType selects the object dialect.
type FileType int

const (
	CSV FileType = iota
	B3D
)

func (ft FileType) String() string {
	if ft == B3D {
		return "b3d"
	}
	return "csv"
}

// FileTypeFor picks the dialect from a file extension.
func FileTypeFor(path string) FileType {
	if strings.EqualFold(filepath.Ext(path), ".b3d") {
		return B3D
	}
	return CSV
}

// BlendMode is how a mesh is composited.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendAdditive
)

func (b BlendMode) String() string {
	if b == BlendAdditive {
		return "additive"
	}
	return "normal"
}

// GlowAttenuation is the falloff curve of a glowing mesh.
type GlowAttenuation int

const (
	DivideExponent2 GlowAttenuation = iota
	DivideExponent4
)

func (g GlowAttenuation) String() string {
	if g == DivideExponent2 {
		return "divideexponent2"
	}
	return "divideexponent4"
}

// RGBA is an 8-bit colour with alpha.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// RGB is an 8-bit colour.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type Vertex struct {
	Position mathutil.Vec3 `json:"position"`
	Normal   mathutil.Vec3 `json:"normal"`
	UV       [2]float64    `json:"uv"`
}

// FaceData is the per-triangle material that may differ inside one mesh.
type FaceData struct {
	Color    RGBA `json:"color"`
	Emissive RGB  `json:"emissive"`
}

// Texture is the texture binding shared by every face of a mesh. File is
// empty for untextured meshes.
type Texture struct {
	File          string `json:"file,omitempty"`
	Nighttime     string `json:"nighttime,omitempty"`
	DecalColor    RGB    `json:"decal_color"`
	HasDecalColor bool   `json:"has_decal_color"`
}

// Mesh is a run of faces with identical material traits. Indices holds three
// entries per triangle and FaceData one entry per triangle.
type Mesh struct {
	Vertices         []Vertex        `json:"vertices"`
	Indices          []int           `json:"indices"`
	FaceData         []FaceData      `json:"face_data"`
	Texture          Texture         `json:"texture"`
	Blend            BlendMode       `json:"blend"`
	GlowAttenuation  GlowAttenuation `json:"glow_attenuation"`
	GlowHalfDistance uint16          `json:"glow_half_distance"`
}

// Triangles returns the number of triangles in m.
func (m *Mesh) Triangles() int { return len(m.Indices) / 3 }

// Object is a compiled mesh object. Textures lists the distinct texture files
// the meshes reference.
type Object struct {
	Meshes   []Mesh   `json:"meshes"`
	Textures []string `json:"textures,omitempty"`
}

// Summary is a one-line description of a mesh for listings.
func (m *Mesh) Summary() string {
	tex := m.Texture.File
	if tex == "" {
		tex = "-"
	}
	return fmt.Sprintf("vertices=%d triangles=%d texture=%s blend=%s", len(m.Vertices), m.Triangles(), tex, m.Blend)
}
