package object

import (
	"fmt"
	"strings"

	"bve-compiler/internal/mathutil"
)

// Instruction is one parsed object command. Variants are pointers to
// structs embedding Line; the builder dispatches with a type switch.
type Instruction interface {
	SourceLine() int
	setLine(n int)
}

// Line is the 1-based source line of an instruction.
type Line int

func (l Line) SourceLine() int { return int(l) }

func (l *Line) setLine(n int) { *l = Line(n) }

// Error stands in for a command that could not be constructed.
type Error struct {
	Line
	Cause string
}

type CreateMeshBuilder struct{ Line }

type AddVertex struct {
	Line
	Position mathutil.Vec3
	Normal   mathutil.Vec3
}

// AddFace adds a polygon. TwoSided is set by AddFace2/Face2.
type AddFace struct {
	Line
	Vertices []int
	TwoSided bool
}

type Cube struct {
	Line
	HalfWidth, HalfHeight, HalfDepth float64
}

type Cylinder struct {
	Line
	Sides                            int
	UpperRadius, LowerRadius, Height float64
}

type Translate struct {
	Line
	Offset mathutil.Vec3
	All    bool
}

type Scale struct {
	Line
	Factor mathutil.Vec3
	All    bool
}

// Rotate turns vertices about Axis by Angle degrees.
type Rotate struct {
	Line
	Axis  mathutil.Vec3
	Angle float64
	All   bool
}

// Shear moves each vertex along Shift by Ratio times its projection onto
// Direction.
type Shear struct {
	Line
	Direction mathutil.Vec3
	Shift     mathutil.Vec3
	Ratio     float64
	All       bool
}

type Mirror struct {
	Line
	X, Y, Z bool
	All     bool
}

type SetColor struct {
	Line
	Color RGBA
}

type SetEmissiveColor struct {
	Line
	Color RGB
}

type SetBlendMode struct {
	Line
	Mode             BlendMode
	GlowHalfDistance uint16
	GlowAttenuation  GlowAttenuation
}

type LoadTexture struct {
	Line
	Daytime   string
	Nighttime string
}

type SetDecalTransparentColor struct {
	Line
	Color RGB
}

type SetTextureCoordinates struct {
	Line
	Vertex int
	U, V   float64
}

// Format renders an instruction as "Name{field=value, ...} (line N)".
func Format(i Instruction) string {
	var name, body string
	switch v := i.(type) {
	case *Error:
		name, body = "Error", fmt.Sprintf("cause=%q", v.Cause)
	case *CreateMeshBuilder:
		name = "CreateMeshBuilder"
	case *AddVertex:
		name, body = "AddVertex", fmt.Sprintf("position=%v, normal=%v", v.Position, v.Normal)
	case *AddFace:
		name, body = "AddFace", fmt.Sprintf("vertices=%v", v.Vertices)
		if v.TwoSided {
			name = "AddFace2"
		}
	case *Cube:
		name, body = "Cube", fmt.Sprintf("half=(%g, %g, %g)", v.HalfWidth, v.HalfHeight, v.HalfDepth)
	case *Cylinder:
		name, body = "Cylinder", fmt.Sprintf("sides=%d, upper=%g, lower=%g, height=%g", v.Sides, v.UpperRadius, v.LowerRadius, v.Height)
	case *Translate:
		name, body = allName("Translate", v.All), fmt.Sprintf("offset=%v", v.Offset)
	case *Scale:
		name, body = allName("Scale", v.All), fmt.Sprintf("factor=%v", v.Factor)
	case *Rotate:
		name, body = allName("Rotate", v.All), fmt.Sprintf("axis=%v, angle=%g", v.Axis, v.Angle)
	case *Shear:
		name, body = allName("Shear", v.All), fmt.Sprintf("direction=%v, shift=%v, ratio=%g", v.Direction, v.Shift, v.Ratio)
	case *Mirror:
		name, body = allName("Mirror", v.All), fmt.Sprintf("x=%t, y=%t, z=%t", v.X, v.Y, v.Z)
	case *SetColor:
		name, body = "SetColor", fmt.Sprintf("color=%v", v.Color)
	case *SetEmissiveColor:
		name, body = "SetEmissiveColor", fmt.Sprintf("color=%v", v.Color)
	case *SetBlendMode:
		name, body = "SetBlendMode", fmt.Sprintf("mode=%s, glow_half_distance=%d, glow_attenuation=%s", v.Mode, v.GlowHalfDistance, v.GlowAttenuation)
	case *LoadTexture:
		name, body = "LoadTexture", fmt.Sprintf("daytime=%q, nighttime=%q", v.Daytime, v.Nighttime)
	case *SetDecalTransparentColor:
		name, body = "SetDecalTransparentColor", fmt.Sprintf("color=%v", v.Color)
	case *SetTextureCoordinates:
		name, body = "SetTextureCoordinates", fmt.Sprintf("vertex=%d, uv=(%g, %g)", v.Vertex, v.U, v.V)
	default:
		name = fmt.Sprintf("%T", i)
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	b.WriteString(body)
	b.WriteByte('}')
	fmt.Fprintf(&b, " (line %d)", i.SourceLine())
	return b.String()
}

func allName(name string, all bool) string {
	if all {
		return name + "All"
	}
	return name
}
