// Package geometry turns the sequential track geometry instructions of a
// route into rail blocks with integrated absolute positions, and answers
// position queries against them.
package geometry

import (
	"math"
	"sort"

	"bve-compiler/internal/mathutil"
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
)

const defaultBlockLength = 25

type resolver struct {
	route       *scene.Route
	firstFactor float64
	blockLength float64
	cant        instr.CantMode
}

// Pass2 folds Track.Curve, Track.Turn, Track.Pitch and Track.Height into
// route.Blocks and route.GroundHeight. list must already be sorted by
// position. A route without any geometry still gets a straight block at 0.
func Pass2(list *instr.List, route *scene.Route) {
	r := &resolver{route: route, firstFactor: 1, blockLength: defaultBlockLength}
	for _, i := range list.Instructions {
		switch v := i.(type) {
		case *instr.UnitOfLength:
			if len(v.Factors) > 1 {
				r.firstFactor = v.Factors[1]
			}
		case *instr.BlockLength:
			r.blockLength = r.firstFactor * v.Length
		case *instr.CantBehavior:
			r.cant = v.Mode
		case *instr.Pitch:
			b := r.block(v.Position)
			b.Pitch = v.Rate / 1000
		case *instr.Curve:
			b := r.block(v.Position)
			b.Radius = v.Radius
			switch {
			case r.cant == instr.CantSigned:
				b.Cant = v.Cant
			case v.Radius != 0:
				b.Cant = math.Abs(v.Cant)
			default:
				b.Cant = 0
			}
		case *instr.Turn:
			b := r.block(v.Position)
			b.Radius = 0
			if v.Ratio != 0 {
				b.Radius = mathutil.RadiusFromDistances(r.blockLength, v.Ratio*r.blockLength)
			}
		case *instr.Height:
			b := r.block(v.Position)
			b.Height = v.Y
			route.GroundHeight = append(route.GroundHeight, scene.Keyframe{Position: v.Position, Value: v.Y})
		}
	}
	if len(route.Blocks) == 0 {
		r.block(0)
	}
	route.BlockLength = r.blockLength
}

// block returns the block starting at pos, splitting the last block when
// pos lies beyond its start. Negative positions clamp to 0. A new block is
// integrated from its predecessor immediately; the list is sorted, so the
// predecessor can no longer change.
func (r *resolver) block(pos float64) *scene.Block {
	pos = math.Max(pos, 0)
	blocks := &r.route.Blocks
	if len(*blocks) == 0 {
		*blocks = append(*blocks, scene.Block{
			Length: r.blockLength,
			Cache:  scene.Cache{Direction: mathutil.Forward},
		})
	}
	last := &(*blocks)[len(*blocks)-1]
	if last.Position == pos {
		return last
	}
	last.Length = pos - last.Position
	next := *last
	next.Position = pos
	next.Cache = integrate(last)
	*blocks = append(*blocks, next)
	return &(*blocks)[len(*blocks)-1]
}

// integrate follows prev to its end and returns the cache of the block that
// starts there.
func integrate(prev *scene.Block) scene.Cache {
	prev.Cache.Direction[1] = prev.Pitch
	prev.Cache.Valid = true
	res := mathutil.EvaluateCurve(prev.Cache.Location, prev.Cache.Direction, prev.Length, prev.Radius)
	return scene.Cache{Location: res.Position, Direction: res.Tangent}
}

// PositionAt returns the absolute location and tangent of the track at pos.
// It panics when blocks is empty.
func PositionAt(blocks []scene.Block, pos float64) mathutil.CurveResult {
	if len(blocks) == 0 {
		panic("geometry: position query before any block exists")
	}
	i := 0
	if pos >= blocks[0].Position {
		i = sort.Search(len(blocks), func(k int) bool { return blocks[k].Position > pos }) - 1
	}
	b := blocks[i]
	dir := b.Cache.Direction
	dir[1] = b.Pitch
	return mathutil.EvaluateCurve(b.Cache.Location, dir, pos-b.Position, b.Radius)
}

// GroundHeightAt interpolates the ground height keyframes linearly at pos.
// Outside the keyframe range the nearest endpoint value is returned; with no
// keyframes the ground is at 0.
func GroundHeightAt(ground []scene.Keyframe, pos float64) float64 {
	if len(ground) == 0 {
		return 0
	}
	first, last := ground[0], ground[len(ground)-1]
	if pos <= first.Position {
		return first.Value
	}
	if pos >= last.Position {
		return last.Value
	}
	hi := sort.Search(len(ground), func(k int) bool { return ground[k].Position > pos })
	lo := hi - 1
	a, b := ground[lo], ground[hi]
	if a.Position == pos {
		return a.Value
	}
	return mathutil.Lerp(a.Value, b.Value, (pos-a.Position)/(b.Position-a.Position))
}
