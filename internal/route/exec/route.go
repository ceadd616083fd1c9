package exec

import (
	"math"

	"bve-compiler/internal/mathutil"
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
	"bve-compiler/internal/xmldoc"
)

func (e *Executor) routeChange(v *instr.RouteChange) {
	switch v.Mode {
	case instr.ChangeEmergencyBrakes:
		e.route.Safety = scene.SafetyEmergencyBrakes
	case instr.ChangeDeactivatedEmergencyBrakes:
		e.route.Safety = scene.SafetyDeactivatedEmergencyBrakes
	default:
		e.route.Safety = scene.SafetyServiceBrakes
	}
}

// routeSignal sets the speed of one aspect, growing the table with -1
// (no limit) entries as needed.
func (e *Executor) routeSignal(v *instr.RouteSignal) {
	if v.AspectIndex < 0 {
		return
	}
	for len(e.route.SignalSpeed) <= v.AspectIndex {
		e.route.SignalSpeed = append(e.route.SignalSpeed, -1)
	}
	speed := v.Speed
	if speed >= 0 {
		speed *= e.unitOfSpeed
	}
	e.route.SignalSpeed[v.AspectIndex] = speed
}

// readXML loads a sub-document referenced by i. Failures are reported
// against the referencing line.
func (e *Executor) readXML(i instr.Instruction, name string) (path, contents string, ok bool) {
	path = e.resolve(i, name)
	contents, err := e.opts.ReadFile(path)
	if err != nil {
		e.errorf(i, "%v", err)
		return path, "", false
	}
	return path, contents, true
}

// dynamicLight replaces all lighting with the keyframes of an XML document.
// A document that cannot be read or parsed leaves lighting unchanged.
func (e *Executor) dynamicLight(v *instr.RouteDynamicLight) {
	if e.usedSimpleLight || len(e.route.Lighting) > 0 {
		e.errorf(v, "Route.DynamicLight is overwriting all prior calls the Route Lighting functions")
	}
	path, contents, ok := e.readXML(v, v.Filename)
	if !ok {
		return
	}
	keys, err := xmldoc.ParseLighting(path, contents, e.errs)
	if err != nil {
		e.errorf(v, "%v", err)
		return
	}
	e.usedDynamicLight = true
	e.route.Lighting = keys
}

// simpleLight returns the single lighting keyframe the simple setters write
// to, or nil when dynamic lighting owns the route's lighting.
func (e *Executor) simpleLight(i instr.Instruction, directive string) *scene.Lighting {
	if e.usedDynamicLight {
		e.errorf(i, "Route.DynamicLight has already been used, ignoring %s", directive)
		return nil
	}
	e.usedSimpleLight = true
	if len(e.route.Lighting) == 0 {
		e.route.Lighting = append(e.route.Lighting, scene.DefaultLighting())
	}
	return &e.route.Lighting[0]
}

// lightDirection converts angles in degrees to a unit vector.
func lightDirection(theta, phi float64) mathutil.Vec3 {
	t, p := mathutil.Deg2Rad(theta), mathutil.Deg2Rad(phi)
	return mathutil.Vec3{
		math.Cos(t) * math.Sin(p),
		-math.Sin(t),
		math.Cos(t) * math.Cos(p),
	}
}
