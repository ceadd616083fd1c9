package xmldoc

import (
	"strings"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/loose"
	"bve-compiler/internal/route/scene"
	"bve-compiler/internal/source"
)

// DefaultTextureBackground is a background texture before any field is set.
func DefaultTextureBackground() scene.TextureBackground {
	return scene.TextureBackground{Repetitions: 6, TransitionTime: 10}
}

// ParseBackground reads a dynamic background document. An <Object> element
// turns the whole document into an object background and ends parsing.
func ParseBackground(filename, contents string, errs diag.MultiError, resolve source.Resolver) (scene.BackgroundInfo, error) {
	root, err := parseTree(filename, contents)
	if err != nil {
		return scene.BackgroundInfo{}, err
	}

	var info scene.BackgroundInfo
	sections := document(root)
	for i, section := range sections {
		if section.name != "background" {
			continue
		}
		if obj := section.child("object"); obj != nil {
			if i+1 < len(sections) {
				errs.Add(filename, 0, "Multiple Object backgrounds: only one object background is allowed.")
			}
			return scene.BackgroundInfo{Object: resolve(filename, obj.value())}, nil
		}

		tb := DefaultTextureBackground()
		tb.FromXML = true
		if n := section.child("texture"); n != nil {
			tb.Filename = resolve(filename, n.value())
		}
		if n := section.child("repetitions"); n != nil {
			if v, err := loose.Int(n.value()); err != nil {
				errs.Add(filename, 0, err.Error())
			} else {
				tb.Repetitions = int(v)
			}
		}
		if n := section.child("mode"); n != nil {
			switch strings.ToLower(n.value()) {
			case "fadein":
				tb.Transition = scene.TransitionFadeIn
			case "fadeout":
				tb.Transition = scene.TransitionFadeOut
			case "none":
				tb.Transition = scene.TransitionNone
			default:
				errs.Addf(filename, 0, "Unrecognized texture mode: %q assuming \"None\"", n.value())
				tb.Transition = scene.TransitionNone
			}
		}
		if n := section.child("transitiontime"); n != nil {
			if v, err := loose.Int(n.value()); err != nil {
				errs.Add(filename, 0, err.Error())
			} else {
				tb.TransitionTime = int(v)
			}
		}
		if n := section.child("time"); n != nil {
			if v, err := loose.Time(n.value()); err != nil {
				errs.Add(filename, 0, err.Error())
			} else {
				tb.Time = v
			}
		}
		info.Textures = append(info.Textures, tb)
	}
	return info, nil
}
