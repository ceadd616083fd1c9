package exec

import (
	"path"
	"strings"

	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
	"bve-compiler/internal/xmldoc"
)

func (e *Executor) backgroundLoad(v *instr.BackgroundLoad) {
	if strings.EqualFold(path.Ext(strings.ReplaceAll(v.Filename, `\`, "/")), ".xml") {
		e.backgroundXML(v)
		return
	}
	file := e.resolve(v, v.Filename)
	e.route.TextureFiles.Insert(file)
	e.editImageBackground(v, v.Index, "Texture.Background(Image)", func(t *scene.TextureBackground) {
		t.Filename = file
	})
}

func (e *Executor) backgroundXML(v *instr.BackgroundLoad) {
	var info scene.BackgroundInfo
	if file, contents, ok := e.readXML(v, v.Filename); ok {
		parsed, err := xmldoc.ParseBackground(file, contents, e.errs, e.opts.Resolve)
		if err != nil {
			e.errorf(v, "%v", err)
		} else {
			info = parsed
		}
	}
	if info.IsObject() {
		e.route.ObjectFiles.Insert(info.Object)
	}
	for _, t := range info.Textures {
		e.route.TextureFiles.Insert(t.Filename)
	}
	if _, ok := e.backgrounds[v.Index]; ok {
		e.errorf(v, "Texture.Background(XML) is overwriting all prior calls the Texture Background functions")
	}
	e.backgrounds[v.Index] = &info
}

func (e *Executor) backgroundX(v *instr.BackgroundX) {
	e.editImageBackground(v, v.Index, "Texture.Background.X", func(t *scene.TextureBackground) {
		t.Repetitions = v.Repetitions
	})
}

func (e *Executor) backgroundAspect(v *instr.BackgroundAspect) {
	e.editImageBackground(v, v.Index, "Texture.Background.Aspect", func(t *scene.TextureBackground) {
		t.PreserveAspect = v.Mode == instr.AspectPreserve
	})
}

// editImageBackground applies edit to the single texture of an image
// background, creating it on first use. Backgrounds loaded from XML are
// left untouched.
func (e *Executor) editImageBackground(i instr.Instruction, index int, directive string, edit func(*scene.TextureBackground)) {
	bg, ok := e.backgrounds[index]
	if !ok {
		t := xmldoc.DefaultTextureBackground()
		edit(&t)
		e.backgrounds[index] = &scene.BackgroundInfo{Textures: []scene.TextureBackground{t}}
		return
	}
	if bg.IsObject() || len(bg.Textures) == 0 || bg.Textures[0].FromXML {
		e.errorf(i, "Texture.Background(XML) has already been used, ignoring %s", directive)
		return
	}
	edit(&bg.Textures[0])
}

func (e *Executor) back(v *instr.Back) {
	bg, ok := e.backgrounds[v.Index]
	if !ok {
		e.errorf(v, "Background index %d has not been used. Please use Texture.Background to add one. Ignoring.", v.Index)
		return
	}
	info := *bg
	info.Textures = append([]scene.TextureBackground(nil), bg.Textures...)
	e.route.Backgrounds = append(e.route.Backgrounds, scene.Background{Position: v.Position, Info: info})
}
