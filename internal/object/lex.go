package object

import (
	"fmt"
	"strings"

	"bve-compiler/internal/loose"
	"bve-compiler/internal/mathutil"
	"bve-compiler/internal/preprocess"
)

type constructor func(args []string) (Instruction, error)

// commands maps both the CSV and the B3D spelling of every command.
var commands = map[string]constructor{
	"createmeshbuilder":        func([]string) (Instruction, error) { return &CreateMeshBuilder{}, nil },
	"[meshbuilder]":            func([]string) (Instruction, error) { return &CreateMeshBuilder{}, nil },
	"addvertex":                addVertex,
	"vertex":                   addVertex,
	"addface":                  addFace(false),
	"face":                     addFace(false),
	"addface2":                 addFace(true),
	"face2":                    addFace(true),
	"cube":                     cube,
	"cylinder":                 cylinder,
	"translate":                translate(false),
	"translateall":             translate(true),
	"scale":                    scale(false),
	"scaleall":                 scale(true),
	"rotate":                   rotate(false),
	"rotateall":                rotate(true),
	"shear":                    shear(false),
	"shearall":                 shear(true),
	"mirror":                   mirror(false),
	"mirrorall":                mirror(true),
	"setcolor":                 setColor,
	"color":                    setColor,
	"setemissivecolor":         setEmissiveColor,
	"emissivecolor":            setEmissiveColor,
	"setblendmode":             setBlendMode,
	"blendmode":                setBlendMode,
	"loadtexture":              loadTexture,
	"load":                     loadTexture,
	"setdecaltransparentcolor": setDecalTransparentColor,
	"transparent":              setDecalTransparentColor,
	"settexturecoordinates":    setTextureCoordinates,
	"coordinates":              setTextureCoordinates,
}

// Lex turns object source text into instructions. Commands that cannot be
// built become *Error instructions carrying the reason.
func Lex(text string, ft FileType) []Instruction {
	text = preprocess.RemoveComments(text, ';', false)
	var out []Instruction
	for n, raw := range strings.Split(text, "\n") {
		name, args := splitRow(raw, ft)
		if name == "" {
			continue
		}
		name = strings.ToLower(name)
		if (ft == B3D && name == "[texture]") || (ft == CSV && name == "generatenormals") {
			continue
		}
		var i Instruction
		if ctor, ok := commands[name]; !ok {
			i = &Error{Cause: fmt.Sprintf("Function %q not found", name)}
		} else if built, err := ctor(args); err != nil {
			i = &Error{Cause: err.Error()}
		} else {
			i = built
		}
		i.setLine(n + 1)
		out = append(out, i)
	}
	return out
}

// splitRow cuts a line into a command name and its arguments. B3D separates
// the name from the arguments with whitespace, CSV uses a comma for both.
func splitRow(line string, ft FileType) (string, []string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}
	var name, rest string
	if ft == B3D {
		cut := strings.IndexAny(line, " \t")
		if cut < 0 {
			return line, nil
		}
		name, rest = line[:cut], line[cut+1:]
	} else {
		var found bool
		name, rest, found = strings.Cut(line, ",")
		if !found {
			return strings.TrimSpace(name), nil
		}
	}
	args := strings.Split(rest, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return strings.TrimSpace(name), args
}

// floats reads args positionally into dst; missing or unparsable values
// keep the defaults already in dst.
func floats(args []string, dst ...*float64) {
	for i, d := range dst {
		if i < len(args) {
			*d = loose.FloatOr(args[i], *d)
		}
	}
}

func byteArg(args []string, i int, def int64) uint8 {
	if i >= len(args) {
		return uint8(def)
	}
	return uint8(min(max(loose.IntOr(args[i], def), 0), 255))
}

func need(args []string, n int, name string) error {
	if len(args) < n {
		return fmt.Errorf("%s must have at least %d arguments", name, n)
	}
	return nil
}

func strictFloats(args []string, name string, dst ...*float64) error {
	for i, d := range dst {
		v, err := loose.Float(args[i])
		if err != nil {
			return fmt.Errorf("%s argument %d: %w", name, i+1, err)
		}
		*d = v
	}
	return nil
}

func addVertex(args []string) (Instruction, error) {
	v := &AddVertex{}
	floats(args, &v.Position[0], &v.Position[1], &v.Position[2], &v.Normal[0], &v.Normal[1], &v.Normal[2])
	return v, nil
}

// addFace reads vertex indices until the first unparsable one. At least
// three indices must survive.
func addFace(twoSided bool) constructor {
	name := "AddFace"
	if twoSided {
		name = "AddFace2"
	}
	return func(args []string) (Instruction, error) {
		if err := need(args, 3, name); err != nil {
			return nil, err
		}
		f := &AddFace{TwoSided: twoSided}
		for _, a := range args {
			v, err := loose.Int(a)
			if err != nil || v < 0 {
				break
			}
			f.Vertices = append(f.Vertices, int(v))
		}
		if len(f.Vertices) < 3 {
			return nil, fmt.Errorf("%s must have at least 3 valid vertex indices", name)
		}
		return f, nil
	}
}

func cube(args []string) (Instruction, error) {
	if err := need(args, 3, "Cube"); err != nil {
		return nil, err
	}
	c := &Cube{}
	if err := strictFloats(args, "Cube", &c.HalfWidth, &c.HalfHeight, &c.HalfDepth); err != nil {
		return nil, err
	}
	return c, nil
}

func cylinder(args []string) (Instruction, error) {
	if err := need(args, 4, "Cylinder"); err != nil {
		return nil, err
	}
	sides, err := loose.Int(args[0])
	if err != nil || sides < 2 {
		return nil, fmt.Errorf("Cylinder needs at least 2 sides, got %q", args[0])
	}
	c := &Cylinder{Sides: int(sides)}
	if err := strictFloats(args[1:], "Cylinder", &c.UpperRadius, &c.LowerRadius, &c.Height); err != nil {
		return nil, err
	}
	return c, nil
}

func translate(all bool) constructor {
	return func(args []string) (Instruction, error) {
		t := &Translate{All: all}
		floats(args, &t.Offset[0], &t.Offset[1], &t.Offset[2])
		return t, nil
	}
}

func scale(all bool) constructor {
	return func(args []string) (Instruction, error) {
		s := &Scale{Factor: mathutil.Vec3{1, 1, 1}, All: all}
		floats(args, &s.Factor[0], &s.Factor[1], &s.Factor[2])
		return s, nil
	}
}

func rotate(all bool) constructor {
	return func(args []string) (Instruction, error) {
		r := &Rotate{All: all}
		floats(args, &r.Axis[0], &r.Axis[1], &r.Axis[2], &r.Angle)
		return r, nil
	}
}

func shear(all bool) constructor {
	return func(args []string) (Instruction, error) {
		s := &Shear{All: all}
		floats(args, &s.Direction[0], &s.Direction[1], &s.Direction[2], &s.Shift[0], &s.Shift[1], &s.Shift[2], &s.Ratio)
		return s, nil
	}
}

func mirror(all bool) constructor {
	return func(args []string) (Instruction, error) {
		m := &Mirror{All: all}
		flags := []*bool{&m.X, &m.Y, &m.Z}
		for i, f := range flags {
			if i < len(args) {
				*f = loose.IntOr(args[i], 0) != 0
			}
		}
		return m, nil
	}
}

func setColor(args []string) (Instruction, error) {
	return &SetColor{Color: RGBA{
		R: byteArg(args, 0, 255),
		G: byteArg(args, 1, 255),
		B: byteArg(args, 2, 255),
		A: byteArg(args, 3, 255),
	}}, nil
}

func rgb(args []string) RGB {
	return RGB{R: byteArg(args, 0, 0), G: byteArg(args, 1, 0), B: byteArg(args, 2, 0)}
}

func setEmissiveColor(args []string) (Instruction, error) {
	return &SetEmissiveColor{Color: rgb(args)}, nil
}

func setDecalTransparentColor(args []string) (Instruction, error) {
	return &SetDecalTransparentColor{Color: rgb(args)}, nil
}

func setBlendMode(args []string) (Instruction, error) {
	b := &SetBlendMode{GlowAttenuation: DivideExponent4}
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "additive":
			b.Mode = BlendAdditive
		case "normal":
			b.Mode = BlendNormal
		}
	}
	if len(args) > 1 {
		b.GlowHalfDistance = uint16(min(max(loose.IntOr(args[1], 0), 0), 4095))
	}
	if len(args) > 2 {
		switch strings.ToLower(args[2]) {
		case "divideexponent2":
			b.GlowAttenuation = DivideExponent2
		case "divideexponent4":
			b.GlowAttenuation = DivideExponent4
		}
	}
	return b, nil
}

func loadTexture(args []string) (Instruction, error) {
	t := &LoadTexture{}
	if len(args) > 0 {
		t.Daytime = args[0]
	}
	if len(args) > 1 {
		t.Nighttime = args[1]
	}
	return t, nil
}

func setTextureCoordinates(args []string) (Instruction, error) {
	if err := need(args, 3, "SetTextureCoordinates"); err != nil {
		return nil, err
	}
	idx, err := loose.Int(args[0])
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("SetTextureCoordinates vertex index %q is invalid", args[0])
	}
	s := &SetTextureCoordinates{Vertex: int(idx)}
	if err := strictFloats(args[1:], "SetTextureCoordinates", &s.U, &s.V); err != nil {
		return nil, err
	}
	return s, nil
}
