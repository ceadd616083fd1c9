package exec

import (
	"bve-compiler/internal/mathutil"
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
	"bve-compiler/internal/xmldoc"
)

func (e *Executor) fog(v *instr.Fog) {
	f := e.lengthFactor()
	e.route.Fog = append(e.route.Fog, scene.Fog{
		Position: v.Position,
		Start:    v.Start * f,
		End:      v.End * f,
		Color:    v.Color,
	})
}

// addMarker shows m ahead of pos for a positive distance and after it for
// a negative one.
func (e *Executor) addMarker(pos float64, m scene.MarkerInfo) {
	mk := scene.Marker{Start: pos - m.Distance, End: pos, Marker: m}
	if m.Distance < 0 {
		mk.Start, mk.End = pos, pos-m.Distance
	}
	e.route.Markers = append(e.route.Markers, mk)
}

func (e *Executor) marker(v *instr.Marker) {
	e.addMarker(v.Position, scene.MarkerInfo{
		OnTime:      e.resolve(v, v.Filename),
		UsingOnTime: true,
		Distance:    v.Distance,
	})
}

func (e *Executor) textMarker(v *instr.TextMarker) {
	e.addMarker(v.Position, scene.MarkerInfo{
		Text:        true,
		OnTime:      v.Text,
		UsingOnTime: true,
		OnTimeColor: v.Color,
		Distance:    v.Distance,
	})
}

func (e *Executor) markerXML(v *instr.MarkerXML) {
	file, contents, ok := e.readXML(v, v.Filename)
	if !ok {
		return
	}
	m, err := xmldoc.ParseMarker(file, contents, e.errs, e.opts.Resolve)
	if err != nil {
		e.errorf(v, "%v", err)
		return
	}
	e.addMarker(v.Position, m)
}

func (e *Executor) pointOfInterest(v *instr.PointOfInterest) {
	if !e.rail(v.Rail).active {
		e.errorf(v, "Track Index %d is not activated. Please use Track.RailStart or Track.Rail to activate", v.Rail)
		return
	}
	e.route.PointsOfInterest = append(e.route.PointsOfInterest, scene.PointOfInterest{
		Position: e.relative(v.Rail, v.Position, v.X, v.Y),
		Rotation: mathutil.Vec3{v.Yaw, v.Pitch, v.Roll},
		Text:     v.Text,
	})
}

// preTrain keeps pretrain times non-decreasing along the route.
func (e *Executor) preTrain(v *instr.PreTrain) {
	if n := len(e.route.PreTrains); n > 0 {
		last := e.route.PreTrains[n-1]
		if last.Time > v.Time {
			e.errorf(v, "Pretrain point at location %g has a later time %d than current point at %g and time %d. Ignoring.",
				last.Position, last.Time, v.Position, v.Time)
			return
		}
	}
	e.route.PreTrains = append(e.route.PreTrains, scene.PreTrain{Position: v.Position, Time: v.Time})
}
