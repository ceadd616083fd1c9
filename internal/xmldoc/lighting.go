package xmldoc

import (
	"bve-compiler/internal/diag"
	"bve-compiler/internal/loose"
	"bve-compiler/internal/route/scene"
)

// ParseLighting reads a dynamic lighting document: one keyframe per
// <Brightness> element. Fields that are missing keep the route defaults.
func ParseLighting(filename, contents string, errs diag.MultiError) ([]scene.Lighting, error) {
	root, err := parseTree(filename, contents)
	if err != nil {
		return nil, err
	}

	var out []scene.Lighting
	for _, section := range document(root) {
		if section.name != "brightness" {
			continue
		}
		info := scene.DefaultLighting()

		if n := section.child("time"); n != nil {
			t, err := loose.Time(n.value())
			if err != nil {
				errs.Add(filename, 0, err.Error())
			} else {
				info.Time = t
			}
		}
		if n := section.child("ambientlight"); n != nil {
			colorNode(filename, n, "AmbientLight", &info.Ambient, errs)
		}
		if n := section.child("directionallight"); n != nil {
			colorNode(filename, n, "DirectionalLight", &info.Directional, errs)
		}
		if n := section.child("lightdirection"); n != nil {
			parts := n.fields()
			if len(parts) >= 3 {
				for i := range 3 {
					v, err := loose.Float(parts[i])
					if err != nil {
						errs.Add(filename, 0, err.Error())
						continue
					}
					info.Direction[i] = v
				}
			}
			if len(parts) != 3 {
				errs.Add(filename, 0, "<LightDirection> must have exactly 3 arguments")
			}
		}
		if n := section.child("cablighting"); n != nil {
			v, err := loose.Int(n.value())
			if err != nil {
				errs.Add(filename, 0, err.Error())
			} else {
				info.Cab = uint8(v)
			}
		}
		out = append(out, info)
	}

	if len(out) == 0 {
		errs.Add(filename, 0, "XML dynamic lighting must have at least one <brightness> node.")
	}
	return out, nil
}

func colorNode(filename string, n *node, tag string, dst *scene.Color, errs diag.MultiError) {
	parts := n.fields()
	if len(parts) >= 3 {
		var rgb [3]uint8
		for i := range 3 {
			v, err := loose.Int(parts[i])
			if err != nil {
				errs.Add(filename, 0, err.Error())
				return
			}
			rgb[i] = uint8(v)
		}
		*dst = scene.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
	}
	if len(parts) != 3 {
		errs.Addf(filename, 0, "<%s> must have exactly 3 arguments", tag)
	}
}
