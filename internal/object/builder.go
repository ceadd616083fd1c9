package object

import (
	"cmp"
	"math"
	"slices"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/mathutil"
)

// material is the state copied into every face. Everything except the
// colours must match for two faces to share a mesh.
type material struct {
	color    RGBA
	emissive RGB

	texture          string
	nighttime        string
	decal            RGB
	hasDecal         bool
	blend            BlendMode
	glowAttenuation  GlowAttenuation
	glowHalfDistance uint16
}

func defaultMaterial() material {
	return material{color: RGBA{255, 255, 255, 255}, glowAttenuation: DivideExponent4}
}

func packRGB(c RGB) int { return int(c.R)<<16 | int(c.G)<<8 | int(c.B) }

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// compareTraits orders materials by the traits that split meshes.
func compareTraits(a, b *material) int {
	return cmp.Or(
		cmp.Compare(a.texture, b.texture),
		cmp.Compare(a.nighttime, b.nighttime),
		cmp.Compare(packRGB(a.decal), packRGB(b.decal)),
		cmp.Compare(boolInt(a.hasDecal), boolInt(b.hasDecal)),
		cmp.Compare(a.blend, b.blend),
		cmp.Compare(a.glowAttenuation, b.glowAttenuation),
		cmp.Compare(a.glowHalfDistance, b.glowHalfDistance),
	)
}

type face struct {
	indices  []int
	twoSided bool
	mat      material
}

// builder interprets instructions. vertices and faces belong to the mesh
// builder currently open; meshes holds everything already flushed.
type builder struct {
	file     string
	errs     diag.MultiError
	vertices []Vertex
	faces    []face
	meshes   []Mesh
}

// Build runs instructions and returns the meshes they describe. Problems are
// reported to errs under file.
func Build(list []Instruction, errs diag.MultiError, file string) *Object {
	b := &builder{file: file, errs: errs}
	for _, i := range list {
		b.execute(i)
	}
	b.flush()
	obj := &Object{Meshes: b.meshes}
	for _, m := range obj.Meshes {
		for _, name := range []string{m.Texture.File, m.Texture.Nighttime} {
			if name != "" {
				obj.Textures = append(obj.Textures, name)
			}
		}
	}
	slices.Sort(obj.Textures)
	obj.Textures = slices.Compact(obj.Textures)
	return obj
}

func (b *builder) execute(i Instruction) {
	switch v := i.(type) {
	case *Error:
		b.errs.Add(b.file, v.SourceLine(), v.Cause)
	case *CreateMeshBuilder:
		b.flush()
	case *AddVertex:
		b.vertices = append(b.vertices, Vertex{Position: v.Position, Normal: v.Normal})
	case *AddFace:
		b.addFace(v)
	case *Cube:
		b.cube(v)
	case *Cylinder:
		b.cylinder(v)
	case *Translate:
		b.transform(v.All, func(vx *Vertex) { vx.Position = vx.Position.Add(v.Offset) })
	case *Scale:
		b.transform(v.All, func(vx *Vertex) { scaleVertex(vx, v.Factor) })
	case *Rotate:
		axis := v.Axis
		if axis.IsZero() {
			axis = mathutil.Vec3{1, 0, 0}
		}
		m := mathutil.AxisAngle(axis.Normalize(), mathutil.Deg2Rad(v.Angle))
		b.transform(v.All, func(vx *Vertex) {
			vx.Position = m.MulVec3(vx.Position)
			vx.Normal = m.MulVec3(vx.Normal)
		})
	case *Shear:
		b.transform(v.All, func(vx *Vertex) { shearVertex(vx, v) })
	case *Mirror:
		b.mirror(v)
	case *SetColor:
		b.setMaterial(func(m *material) { m.color = v.Color })
	case *SetEmissiveColor:
		b.setMaterial(func(m *material) { m.emissive = v.Color })
	case *SetBlendMode:
		b.setMaterial(func(m *material) {
			m.blend = v.Mode
			m.glowHalfDistance = v.GlowHalfDistance
			m.glowAttenuation = v.GlowAttenuation
		})
	case *LoadTexture:
		b.setMaterial(func(m *material) {
			m.texture = v.Daytime
			m.nighttime = v.Nighttime
		})
	case *SetDecalTransparentColor:
		b.setMaterial(func(m *material) {
			m.decal = v.Color
			m.hasDecal = true
		})
	case *SetTextureCoordinates:
		if v.Vertex >= len(b.vertices) {
			b.errs.Addf(b.file, v.SourceLine(), "SetTextureCoordinates index %d is larger than the valid range: [0, %d]", v.Vertex, len(b.vertices)-1)
			return
		}
		b.vertices[v.Vertex].UV = [2]float64{v.U, v.V}
	}
}

func (b *builder) addFace(v *AddFace) {
	f := face{twoSided: v.TwoSided, mat: defaultMaterial()}
	for _, idx := range v.Vertices {
		if idx >= len(b.vertices) {
			b.errs.Addf(b.file, v.SourceLine(), "AddFace index %d is larger than the valid range: [0, %d]", idx, len(b.vertices)-1)
			continue
		}
		f.indices = append(f.indices, idx)
	}
	if len(f.indices) >= 3 {
		b.faces = append(b.faces, f)
	}
}

func (b *builder) quad(i0, i1, i2, i3 int) {
	b.faces = append(b.faces, face{indices: []int{i0, i1, i2, i3}, mat: defaultMaterial()})
}

// cube adds 8 corner vertices and 6 outward quads.
func (b *builder) cube(c *Cube) {
	v := len(b.vertices)
	x, y, z := c.HalfWidth, c.HalfHeight, c.HalfDepth
	for _, p := range []mathutil.Vec3{
		{x, y, -z}, {x, -y, -z}, {-x, -y, -z}, {-x, y, -z},
		{x, y, z}, {x, -y, z}, {-x, -y, z}, {-x, y, z},
	} {
		b.vertices = append(b.vertices, Vertex{Position: p})
	}
	b.quad(v+0, v+1, v+2, v+3)
	b.quad(v+0, v+4, v+5, v+1)
	b.quad(v+0, v+3, v+7, v+4)
	b.quad(v+6, v+5, v+4, v+7)
	b.quad(v+6, v+7, v+3, v+2)
	b.quad(v+6, v+2, v+1, v+5)
}

// cylinder adds an upper and a lower ring of Sides vertices, one side quad
// per segment, and the two end caps. A negative radius suppresses its cap.
func (b *builder) cylinder(c *Cylinder) {
	v := len(b.vertices)
	n := c.Sides
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		cos, sin := math.Cos(a), math.Sin(a)
		b.vertices = append(b.vertices,
			Vertex{Position: mathutil.Vec3{cos * math.Abs(c.UpperRadius), c.Height / 2, sin * math.Abs(c.UpperRadius)}},
			Vertex{Position: mathutil.Vec3{cos * math.Abs(c.LowerRadius), -c.Height / 2, sin * math.Abs(c.LowerRadius)}},
		)
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		b.quad(v+2*next, v+2*next+1, v+2*i+1, v+2*i)
	}
	if c.UpperRadius > 0 {
		f := face{mat: defaultMaterial()}
		for i := n - 1; i >= 0; i-- {
			f.indices = append(f.indices, v+2*i)
		}
		b.faces = append(b.faces, f)
	}
	if c.LowerRadius > 0 {
		f := face{mat: defaultMaterial()}
		for i := 0; i < n; i++ {
			f.indices = append(f.indices, v+2*i+1)
		}
		b.faces = append(b.faces, f)
	}
}

// transform applies fn to the open mesh builder and, when all is set, to
// every mesh flushed before it.
func (b *builder) transform(all bool, fn func(*Vertex)) {
	for i := range b.vertices {
		fn(&b.vertices[i])
	}
	if !all {
		return
	}
	for m := range b.meshes {
		for i := range b.meshes[m].Vertices {
			fn(&b.meshes[m].Vertices[i])
		}
	}
}

func scaleVertex(v *Vertex, f mathutil.Vec3) {
	v.Position = v.Position.Mul(f)
	for k := 0; k < 3; k++ {
		if f[k] != 0 {
			v.Normal[k] /= f[k]
		}
	}
	v.Normal = v.Normal.Normalize()
}

func shearVertex(v *Vertex, s *Shear) {
	v.Position = v.Position.Add(s.Shift.Scale(s.Ratio * s.Direction.Dot(v.Position)))
	if !v.Normal.IsZero() {
		v.Normal = v.Normal.Sub(s.Direction.Scale(s.Ratio * s.Shift.Dot(v.Normal))).Normalize()
	}
}

// mirror flips the selected axes. Faces are rewound after an odd number of
// flips.
func (b *builder) mirror(m *Mirror) {
	f := mathutil.Vec3{1, 1, 1}
	flips := 0
	for k, on := range []bool{m.X, m.Y, m.Z} {
		if on {
			f[k] = -1
			flips++
		}
	}
	b.transform(m.All, func(v *Vertex) {
		v.Position = v.Position.Mul(f)
		v.Normal = v.Normal.Mul(f)
	})
	if flips%2 == 0 {
		return
	}
	for i := range b.faces {
		slices.Reverse(b.faces[i].indices)
	}
	if !m.All {
		return
	}
	for i := range b.meshes {
		idx := b.meshes[i].Indices
		for t := 0; t+2 < len(idx); t += 3 {
			idx[t+1], idx[t+2] = idx[t+2], idx[t+1]
		}
	}
}

// setMaterial edits every face of the open mesh builder. Faces created later
// start from the default material.
func (b *builder) setMaterial(fn func(*material)) {
	for i := range b.faces {
		fn(&b.faces[i].mat)
	}
}

// flush closes the open mesh builder. Faces are stably sorted by material
// traits and every run of equal traits becomes one mesh.
func (b *builder) flush() {
	slices.SortStableFunc(b.faces, func(x, y face) int { return compareTraits(&x.mat, &y.mat) })
	for start := 0; start < len(b.faces); {
		end := start + 1
		for end < len(b.faces) && compareTraits(&b.faces[start].mat, &b.faces[end].mat) == 0 {
			end++
		}
		if m, ok := b.mesh(b.faces[start:end]); ok {
			b.meshes = append(b.meshes, m)
		}
		start = end
	}
	b.vertices = nil
	b.faces = nil
}

// mesh triangulates faces, compacts the vertices they use and computes
// normals. It reports false when the faces yield no triangles.
func (b *builder) mesh(faces []face) (Mesh, bool) {
	mat := faces[0].mat
	m := Mesh{
		Texture: Texture{
			File:          mat.texture,
			Nighttime:     mat.nighttime,
			DecalColor:    mat.decal,
			HasDecalColor: mat.hasDecal,
		},
		Blend:            mat.blend,
		GlowAttenuation:  mat.glowAttenuation,
		GlowHalfDistance: mat.glowHalfDistance,
	}
	// front marks triangles whose normal contributes to vertex normals; the
	// mirrored back side of a two-sided face does not.
	var front []bool
	for _, f := range faces {
		n := triangulate(&m.Indices, f.indices, f.twoSided)
		for t := 0; t < n; t++ {
			m.FaceData = append(m.FaceData, FaceData{Color: f.mat.color, Emissive: f.mat.emissive})
			front = append(front, !f.twoSided || t%2 == 0)
		}
	}
	if len(m.Indices) == 0 {
		return Mesh{}, false
	}
	m.Vertices = compact(b.vertices, m.Indices)
	computeNormals(&m, front)
	return m, true
}

// triangulate fans face out from its first vertex, appending to out. A
// two-sided face gets a reversed copy of every triangle right after it.
// It returns the number of triangles added.
func triangulate(out *[]int, face []int, twoSided bool) int {
	if len(face) < 3 {
		return 0
	}
	n := 0
	for i := 2; i < len(face); i++ {
		*out = append(*out, face[0], face[i-1], face[i])
		n++
		if twoSided {
			*out = append(*out, face[i], face[i-1], face[0])
			n++
		}
	}
	return n
}

// compact copies the vertices referenced by indices, in their original
// order, and rewrites indices to point into the copy.
func compact(vertices []Vertex, indices []int) []Vertex {
	remap := make([]int, len(vertices))
	for i := range remap {
		remap[i] = -1
	}
	for _, idx := range indices {
		remap[idx] = 0
	}
	var out []Vertex
	for i, r := range remap {
		if r == 0 {
			remap[i] = len(out)
			out = append(out, vertices[i])
		}
	}
	for i, idx := range indices {
		indices[i] = remap[idx]
	}
	return out
}

// computeNormals gives every vertex without an explicit normal the
// normalised sum of the unnormalised cross products of its front-facing
// triangles. Explicit normals are only normalised.
func computeNormals(m *Mesh, front []bool) {
	explicit := make([]bool, len(m.Vertices))
	for i := range m.Vertices {
		explicit[i] = !m.Vertices[i].Normal.IsZero()
	}
	sums := make([]mathutil.Vec3, len(m.Vertices))
	for t := 0; t*3+2 < len(m.Indices); t++ {
		if !front[t] {
			continue
		}
		a, b, c := m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]
		pa, pb, pc := m.Vertices[a].Position, m.Vertices[b].Position, m.Vertices[c].Position
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		sums[a] = sums[a].Add(n)
		sums[b] = sums[b].Add(n)
		sums[c] = sums[c].Add(n)
	}
	for i := range m.Vertices {
		if explicit[i] {
			m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
		} else {
			m.Vertices[i].Normal = sums[i].Normalize()
		}
	}
}
