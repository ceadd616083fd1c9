// Package exec runs the third route pass: a single forward walk over the
// positioned instruction list that carries per-rail state and structure
// bindings, and fills the output scene.
package exec

import (
	"math"
	"sort"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/filenames"
	"bve-compiler/internal/mathutil"
	"bve-compiler/internal/route/geometry"
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
	"bve-compiler/internal/source"
)

// compatPrefix marks object names that refer to built-in compatibility
// objects rather than files.
const compatPrefix = "\x1ccompat\x1c/"

// denseRails is the number of rail indices kept in the state arena; larger
// indices spill into a map.
const denseRails = 256

// Options are the collaborators Pass 3 uses for referenced files.
type Options struct {
	// Resolve maps a file referenced by a route file to a path.
	Resolve source.Resolver
	// ReadFile loads XML sub-documents. Defaults to source.ReadFile.
	ReadFile func(path string) (string, error)
}

type signalDef struct {
	animated bool
	file     string
	glow     string
}

type poleKey struct {
	additionalRails int
	index           int
}

// Executor holds the Pass 3 state of one compile. It must not be reused.
type Executor struct {
	route *scene.Route
	errs  diag.MultiError
	list  *instr.List
	opts  Options

	unitsOfLength []float64
	unitOfSpeed   float64
	sections      instr.SectionMode

	rails    []*railState
	overflow map[int]*railState

	bindings    [instr.StructBeacon + 1]map[int]filenames.Handle
	poles       map[poleKey]filenames.Handle
	groundCycle map[int][]int
	railCycle   map[int][]int
	signals     map[int]signalDef
	backgrounds map[int]*scene.BackgroundInfo

	usedDynamicLight bool
	usedSimpleLight  bool
}

// Pass3 executes list against route, which must already hold the Pass 2
// blocks. Diagnostics are added to errs; the pass always completes.
func Pass3(list *instr.List, route *scene.Route, errs diag.MultiError, opts Options) {
	e := New(list, route, errs, opts)
	maxPos := 0.0
	for _, i := range list.Instructions {
		e.Execute(i)
		maxPos = math.Max(maxPos, i.Common().Position)
	}
	e.Finalize(maxPos)
}

// New returns an executor with rail 0 active.
func New(list *instr.List, route *scene.Route, errs diag.MultiError, opts Options) *Executor {
	if opts.Resolve == nil {
		opts.Resolve = source.DefaultResolver
	}
	if opts.ReadFile == nil {
		opts.ReadFile = source.ReadFile
	}
	e := &Executor{
		route:         route,
		errs:          errs,
		list:          list,
		opts:          opts,
		unitsOfLength: []float64{1, 1},
		unitOfSpeed:   1,
		overflow:      map[int]*railState{},
		poles:         map[poleKey]filenames.Handle{},
		groundCycle:   map[int][]int{},
		railCycle:     map[int][]int{},
		signals:       map[int]signalDef{},
		backgrounds:   map[int]*scene.BackgroundInfo{},
	}
	for t := range e.bindings {
		e.bindings[t] = map[int]filenames.Handle{}
	}
	e.rail(0).active = true
	e.rail(0).railFill = true
	return e
}

// Execute applies one instruction.
func (e *Executor) Execute(i instr.Instruction) {
	switch v := i.(type) {
	case *instr.None, *instr.Position:
	// options
	case *instr.UnitOfLength:
		e.unitsOfLength = v.Factors
	case *instr.UnitOfSpeed:
		e.unitOfSpeed = v.Factor
	case *instr.SectionBehavior:
		e.sections = v.Mode
	case *instr.CompatibleTransparencyMode:
		e.route.Compatibility.BVE24Transparency = v.On
	case *instr.EnableBveTsHacks:
		e.route.Compatibility.BVE24Content = v.On
	case *instr.BlockLength, *instr.CantBehavior, *instr.ObjectVisibility, *instr.FogBehavior:
		// consumed by Pass 2 or by the runtime
	// route
	case *instr.RouteComment:
		e.route.Comment = v.Text
	case *instr.RouteImage:
		e.route.Image = e.resolve(v, v.Filename)
	case *instr.RouteTimetable:
		e.route.TimetableText = v.Text
	case *instr.RouteChange:
		e.routeChange(v)
	case *instr.RouteGauge:
		e.route.Gauge = v.Width
	case *instr.RouteSignal:
		e.routeSignal(v)
	case *instr.RouteRunInterval:
		e.route.AIIntervals = append([]float64(nil), v.Intervals...)
	case *instr.RouteGravity:
		e.route.Gravity = v.Value
	case *instr.RouteElevation:
		e.route.Altitude = v.Height * e.lengthFactor()
	case *instr.RouteTemperature:
		e.route.Temperature = v.Celsius
	case *instr.RoutePressure:
		e.route.Pressure = v.KPa
	case *instr.RouteDisplaySpeed:
		e.route.DisplayUnit = scene.DisplayUnit{Name: v.Unit, Factor: v.Factor}
	case *instr.RouteLoadingScreen:
		e.route.LoadingImage = e.resolve(v, v.Filename)
	case *instr.RouteStartTime:
		e.route.StartTime = v.Time
	case *instr.RouteDynamicLight:
		e.dynamicLight(v)
	case *instr.RouteAmbientLight:
		if l := e.simpleLight(v, "Route.AmbientLight"); l != nil {
			l.Ambient = v.Color
		}
	case *instr.RouteDirectionalLight:
		if l := e.simpleLight(v, "Route.DirectionalLight"); l != nil {
			l.Directional = v.Color
		}
	case *instr.RouteLightDirection:
		if l := e.simpleLight(v, "Route.LightDirection"); l != nil {
			l.Direction = lightDirection(v.Theta, v.Phi)
		}
	// train
	case *instr.TrainFolder:
		e.route.DefaultTrain = v.Filename
	case *instr.TrainRail:
		e.route.RunSounds[v.RailType] = v.RunSound
	case *instr.TrainFlange:
		e.route.FlangeSounds[v.RailType] = v.FlangeSound
	case *instr.TrainTimetable:
		e.route.Timetables = append(e.route.Timetables, scene.Timetable{
			Index: v.Index,
			Night: !v.Day,
			File:  e.resolve(v, v.Filename),
		})
	case *instr.TrainVelocity:
		e.route.AIMaxSpeed = v.Speed * e.unitOfSpeed
	// structure, texture, cycle and signal definitions
	case *instr.StructureCommand:
		e.structure(v)
	case *instr.StructurePole:
		e.structurePole(v)
	case *instr.BackgroundLoad:
		e.backgroundLoad(v)
	case *instr.BackgroundX:
		e.backgroundX(v)
	case *instr.BackgroundAspect:
		e.backgroundAspect(v)
	case *instr.CycleGround:
		e.cycle(v, "Cycle.Ground", e.groundCycle, v.Index, v.Inputs)
	case *instr.CycleRail:
		e.cycle(v, "Cycle.Rail", e.railCycle, v.Index, v.Inputs)
	case *instr.Signal:
		e.defineSignal(v, v.Index, signalDef{file: v.SignalFile, glow: v.GlowFile})
	case *instr.SignalAnimated:
		e.defineSignal(v, v.Index, signalDef{animated: true, file: v.Filename})
	// track: rails and geometry
	case *instr.RailStart:
		e.railStart(v)
	case *instr.Rail:
		e.railUpdate(v)
	case *instr.RailType:
		e.railType(v)
	case *instr.RailEnd:
		e.railEnd(v)
	case *instr.Adhesion:
		e.route.Adhesion = append(e.route.Adhesion, scene.Keyframe{Position: v.Position, Value: v.Value})
	case *instr.Pitch, *instr.Curve, *instr.Turn, *instr.Height:
		// consumed by Pass 2
	// track: objects
	case *instr.FreeObj:
		e.freeObj(v)
	case *instr.Wall:
		e.wall(v, v.Rail, v.Direction, v.Index, wallL)
	case *instr.WallEnd:
		e.endRepeats(v.Rail, v.Position, wallL, wallR)
	case *instr.Dike:
		e.wall(v, v.Rail, v.Direction, v.Index, dikeL)
	case *instr.DikeEnd:
		e.endRepeats(v.Rail, v.Position, dikeL, dikeR)
	case *instr.Pole:
		e.pole(v)
	case *instr.PoleEnd:
		e.poleEnd(v)
	case *instr.Crack:
		e.crack(v)
	case *instr.Ground:
		e.ground(v)
	// track: stations
	case *instr.Sta:
		e.sta(v)
	case *instr.StationXML:
		e.stationXML(v)
	case *instr.Stop:
		e.stop(v)
	case *instr.Form:
		e.form(v)
	// track: signalling
	case *instr.Limit:
		e.limit(v)
	case *instr.Section:
		e.section(v)
	case *instr.SigF:
		e.sigF(v)
	case *instr.TrackSignal:
		e.trackSignal(v)
	case *instr.Relay:
		e.relay(v)
	case *instr.Beacon:
		e.beacon(v)
	case *instr.Transponder:
		e.transponder(v)
	case *instr.Pattern:
		e.route.Patterns = append(e.route.Patterns, scene.Pattern{Position: v.Position, Speed: v.Speed * e.unitOfSpeed, Permanent: v.Permanent})
	// track: misc
	case *instr.Back:
		e.back(v)
	case *instr.Fog:
		e.fog(v)
	case *instr.Brightness:
		e.route.Brightness = append(e.route.Brightness, scene.Brightness{Position: v.Position, Value: v.Value})
	case *instr.Marker:
		e.marker(v)
	case *instr.MarkerXML:
		e.markerXML(v)
	case *instr.TextMarker:
		e.textMarker(v)
	case *instr.PointOfInterest:
		e.pointOfInterest(v)
	case *instr.PreTrain:
		e.preTrain(v)
	case *instr.Announce:
		e.route.Announcements = append(e.route.Announcements, scene.Announcement{
			Position: v.Position,
			Speed:    v.Speed * e.unitOfSpeed,
			File:     e.route.SoundFiles.Insert(v.Filename),
		})
	case *instr.Doppler:
		e.route.Sounds = append(e.route.Sounds, scene.Sound{
			Position: e.relative(0, v.Position, v.X, v.Y),
			File:     e.route.SoundFiles.Insert(v.Filename),
		})
	case *instr.Buffer:
		e.route.Bumpers = append(e.route.Bumpers, v.Position)
	}
}

// Finalize runs the last catch-up of every repeating category to maxPos so
// that runs still active at the end of the route are not lost.
func (e *Executor) Finalize(maxPos float64) {
	for _, n := range e.railNumbers() {
		s := e.rail(n)
		e.fillRail(s, maxPos)
		for k := range s.repeats {
			e.fillRepeat(s, repeatKind(k), maxPos)
		}
		e.fillPoles(s, maxPos)
		if n == 0 {
			e.fillGround(s, maxPos)
		}
	}
}

func (e *Executor) file(i instr.Instruction) string {
	return e.list.Filename(i)
}

func (e *Executor) errorf(i instr.Instruction, format string, args ...any) {
	e.errs.Addf(e.file(i), i.Common().Line, format, args...)
}

func (e *Executor) resolve(i instr.Instruction, name string) string {
	if name == "" {
		return ""
	}
	return e.opts.Resolve(e.file(i), name)
}

// lengthFactor is the second unit-of-length factor, the one applied to
// lengths that are not positions.
func (e *Executor) lengthFactor() float64 {
	if len(e.unitsOfLength) > 1 {
		return e.unitsOfLength[1]
	}
	return 1
}

func (e *Executor) soundHandle(name string) filenames.Handle {
	if name == "" {
		return filenames.None
	}
	return e.route.SoundFiles.Insert(name)
}

func (e *Executor) trackAt(pos float64) mathutil.CurveResult {
	return geometry.PositionAt(e.route.Blocks, pos)
}

// relative is the absolute location x units right of and y units above the
// current offset of a rail at pos. instr.GroundRail uses rail 0 lowered by
// the ground height.
func (e *Executor) relative(rail int, pos, x, y float64) mathutil.Vec3 {
	t := e.trackAt(pos)
	s := e.rail(rail)
	at := mathutil.PositionFromOffsets(t.Position, t.Tangent, s.x+x, s.y+y)
	if rail == instr.GroundRail {
		at[1] -= geometry.GroundHeightAt(e.route.GroundHeight, pos)
	}
	return at
}

func (e *Executor) placeObject(file filenames.Handle, at mathutil.Vec3, p instr.Placement) {
	e.route.Objects = append(e.route.Objects, scene.Object{
		File:     file,
		Position: at,
		Rotation: mathutil.Vec3{p.Yaw, p.Pitch, p.Roll},
	})
}

// rail returns the state of rail n, creating an inactive one on first use.
// Negative numbers address rail 0.
func (e *Executor) rail(n int) *railState {
	if n < 0 {
		n = 0
	}
	if n >= denseRails {
		s, ok := e.overflow[n]
		if !ok {
			s = &railState{}
			e.overflow[n] = s
		}
		return s
	}
	for len(e.rails) <= n {
		e.rails = append(e.rails, nil)
	}
	if e.rails[n] == nil {
		e.rails[n] = &railState{}
	}
	return e.rails[n]
}

// railNumbers lists every rail with state in ascending order.
func (e *Executor) railNumbers() []int {
	var out []int
	for n, s := range e.rails {
		if s != nil {
			out = append(out, n)
		}
	}
	extra := make([]int, 0, len(e.overflow))
	for n := range e.overflow {
		extra = append(extra, n)
	}
	sort.Ints(extra)
	return append(out, extra...)
}
