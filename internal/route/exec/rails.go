package exec

import (
	"math"

	"bve-compiler/internal/filenames"
	"bve-compiler/internal/mathutil"
	"bve-compiler/internal/route/geometry"
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
)

type repeatKind int

const (
	wallL repeatKind = iota
	wallR
	dikeL
	dikeR
	numRepeats
)

var repeatStructure = [numRepeats]instr.StructureType{
	wallL: instr.StructWallL,
	wallR: instr.StructWallR,
	dikeL: instr.StructDikeL,
	dikeR: instr.StructDikeR,
}

// repeat is one repeating-object category of a rail. cursor is the position
// the next fill starts from.
type repeat struct {
	index  int
	cursor float64
	active bool
}

type railState struct {
	x, y   float64
	active bool
	// railFill is false once Track.RailEnd stops the rail's repeating objects.
	railFill bool

	railType   int
	railCursor float64

	repeats [numRepeats]repeat

	pole struct {
		additionalRails int
		location        int
		interval        int
		index           int
		cursor          float64
		active          bool
	}

	groundIndex  int
	groundCursor float64
}

func (s *railState) running() bool {
	return s.active && s.railFill
}

// repeatStride is the distance between consecutive repeating objects.
const repeatStride = 25.0

// strides calls fn at from, from+repeatStride, ... while the position is
// below to.
func strides(from, to float64, fn func(pos float64)) {
	for p := from; p < to; p += repeatStride {
		fn(p)
	}
}

// cycleFile resolves a structure index through a cycle table, falling back
// to the plain structure binding.
func (e *Executor) cycleFile(cycles map[int][]int, objects map[int]filenames.Handle, index int, pos float64) (filenames.Handle, bool) {
	if c, ok := cycles[index]; ok && len(c) > 0 {
		n := int(math.Floor(pos / repeatStride))
		i := n % len(c)
		if i < 0 {
			i += len(c)
		}
		index = c[i]
	}
	h, ok := objects[index]
	return h, ok
}

func (e *Executor) emitRepeat(file filenames.Handle, pos, x, y float64, flip bool) {
	t := e.trackAt(pos)
	e.route.Objects = append(e.route.Objects, scene.Object{
		File:     file,
		Position: mathutil.PositionFromOffsets(t.Position, t.Tangent, x, y),
		FlipX:    flip,
	})
}

func (e *Executor) fillRail(s *railState, to float64) {
	if s.running() {
		strides(s.railCursor, to, func(p float64) {
			if h, ok := e.cycleFile(e.railCycle, e.bindings[instr.StructRail], s.railType, p); ok {
				e.emitRepeat(h, p, s.x, s.y, false)
			}
		})
	}
	s.railCursor = math.Max(s.railCursor, to)
}

func (e *Executor) fillRepeat(s *railState, k repeatKind, to float64) {
	r := &s.repeats[k]
	if r.active && s.running() {
		if h, ok := e.bindings[repeatStructure[k]][r.index]; ok {
			strides(r.cursor, to, func(p float64) {
				e.emitRepeat(h, p, s.x, s.y, false)
			})
		}
	}
	r.cursor = math.Max(r.cursor, to)
}

// fillPoles emits poles on the strides that are multiples of the pole
// interval. Single-rail poles stand on the rail and are mirrored when placed
// on the right; wider poles are offset by 3.8 per unit of location.
func (e *Executor) fillPoles(s *railState, to float64) {
	p := &s.pole
	if p.active && s.running() {
		if h, ok := e.poles[poleKey{p.additionalRails, p.index}]; ok {
			strides(p.cursor, to, func(pos float64) {
				if p.interval > 0 && math.Mod(pos, float64(p.interval)) != 0 {
					return
				}
				if p.additionalRails == 0 {
					e.emitRepeat(h, pos, s.x, s.y, p.location > 0)
				} else {
					e.emitRepeat(h, pos, s.x+float64(p.location)*3.8, s.y, false)
				}
			})
		}
	}
	p.cursor = math.Max(p.cursor, to)
}

// fillGround places ground objects below rail 0 at the local ground height.
func (e *Executor) fillGround(s *railState, to float64) {
	strides(s.groundCursor, to, func(p float64) {
		h, ok := e.cycleFile(e.groundCycle, e.bindings[instr.StructGround], s.groundIndex, p)
		if !ok {
			return
		}
		e.emitRepeat(h, p, 0, -geometry.GroundHeightAt(e.route.GroundHeight, p), false)
	})
	s.groundCursor = math.Max(s.groundCursor, to)
}

// catchUp fills every repeating category of a rail up to pos.
func (e *Executor) catchUp(s *railState, pos float64) {
	e.fillRail(s, pos)
	for k := range s.repeats {
		e.fillRepeat(s, repeatKind(k), pos)
	}
	e.fillPoles(s, pos)
}

func (e *Executor) checkRailType(i instr.Instruction, s *railState) {
	if _, ok := e.bindings[instr.StructRail][s.railType]; ok {
		return
	}
	if _, ok := e.railCycle[s.railType]; ok {
		return
	}
	e.errorf(i, "Rail Structure %d has not been declared. Ignoring.", s.railType)
}

func (e *Executor) applyOffsets(s *railState, x, y *float64, railType *int) {
	if x != nil {
		s.x = *x
	}
	if y != nil {
		s.y = *y
	}
	if railType != nil {
		s.railType = *railType
	}
}

func (e *Executor) railStart(v *instr.RailStart) {
	s := e.rail(v.Rail)
	e.catchUp(s, v.Position)
	if s.running() {
		e.errorf(v, "Rail number %d is still active. Please use Track.Rail to update.", v.Rail)
	}
	e.applyOffsets(s, v.X, v.Y, v.RailType)
	s.active, s.railFill = true, true
	e.checkRailType(v, s)
}

func (e *Executor) railUpdate(v *instr.Rail) {
	s := e.rail(v.Rail)
	e.catchUp(s, v.Position)
	e.applyOffsets(s, v.X, v.Y, v.RailType)
	s.active, s.railFill = true, true
	e.checkRailType(v, s)
}

func (e *Executor) railType(v *instr.RailType) {
	s := e.rail(v.Rail)
	e.catchUp(s, v.Position)
	if !s.active {
		e.errorf(v, "Rail number %d isn't active. Use Track.RailStart to start the track.", v.Rail)
	}
	s.railType = v.Type
	s.active, s.railFill = true, true
	e.checkRailType(v, s)
}

// railEnd stops the rail's repeating objects. The rail stays addressable so
// trailing placements keep its last offsets.
func (e *Executor) railEnd(v *instr.RailEnd) {
	s := e.rail(v.Rail)
	e.catchUp(s, v.Position)
	if !s.running() {
		e.errorf(v, "Rail number %d was already inactive. Did you mean Track.RailStart?", v.Rail)
	}
	e.applyOffsets(s, v.X, v.Y, nil)
	s.railFill = false
}
