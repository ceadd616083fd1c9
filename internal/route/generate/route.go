package generate

import (
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
	"bve-compiler/internal/route/split"
)

func singleString(in split.Info, name string) (string, error) {
	if err := argsAtLeast(in, 1, name); err != nil {
		return "", err
	}
	return in.Args[0], nil
}

func routeComment(in split.Info) (instr.Instruction, error) {
	s, err := singleString(in, "Route.Comment")
	if err != nil {
		return nil, err
	}
	return &instr.RouteComment{Text: s}, nil
}

func routeImage(in split.Info) (instr.Instruction, error) {
	s, err := singleString(in, "Route.Image")
	if err != nil {
		return nil, err
	}
	return &instr.RouteImage{Filename: s}, nil
}

func routeTimetable(in split.Info) (instr.Instruction, error) {
	s, err := singleString(in, "Route.Timetable")
	if err != nil {
		return nil, err
	}
	return &instr.RouteTimetable{Text: s}, nil
}

func routeChange(in split.Info) (instr.Instruction, error) {
	mode := instr.ChangeServiceBrakes
	switch newReader(in, "").intOr(0, -1) {
	case 0:
		mode = instr.ChangeEmergencyBrakes
	case 1:
		mode = instr.ChangeDeactivatedEmergencyBrakes
	}
	return &instr.RouteChange{Mode: mode}, nil
}

func routeGauge(in split.Info) (instr.Instruction, error) {
	return &instr.RouteGauge{Width: newReader(in, "").floatOr(0, 1435)}, nil
}

func routeSignal(in split.Info) (instr.Instruction, error) {
	if err := indicesAtLeast(in, 1, "Route.Signal"); err != nil {
		return nil, err
	}
	if err := argsAtLeast(in, 1, "Route.Signal"); err != nil {
		return nil, err
	}
	r := newReader(in, "Route.Signal")
	s := &instr.RouteSignal{AspectIndex: r.index(0), Speed: r.float(0)}
	return s, r.err
}

func routeRunInterval(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Route.RunInterval"); err != nil {
		return nil, err
	}
	r := newReader(in, "Route.RunInterval")
	ri := &instr.RouteRunInterval{Intervals: make([]float64, 0, r.n())}
	for i := 0; i < r.n(); i++ {
		ri.Intervals = append(ri.Intervals, r.float(i))
	}
	return ri, r.err
}

func routeGravity(in split.Info) (instr.Instruction, error) {
	return &instr.RouteGravity{Value: newReader(in, "").floatOr(0, 9.80665)}, nil
}

func routeElevation(in split.Info) (instr.Instruction, error) {
	return &instr.RouteElevation{Height: newReader(in, "").floatOr(0, 0)}, nil
}

func routeTemperature(in split.Info) (instr.Instruction, error) {
	return &instr.RouteTemperature{Celsius: newReader(in, "").floatOr(0, 20)}, nil
}

func routePressure(in split.Info) (instr.Instruction, error) {
	return &instr.RoutePressure{KPa: newReader(in, "").floatOr(0, 101.325)}, nil
}

func routeDisplaySpeed(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 2, "Route.DisplaySpeed"); err != nil {
		return nil, err
	}
	r := newReader(in, "Route.DisplaySpeed")
	ds := &instr.RouteDisplaySpeed{Unit: r.str(0), Factor: r.float(1)}
	return ds, r.err
}

func routeLoadingScreen(in split.Info) (instr.Instruction, error) {
	s, err := singleString(in, "Route.LoadingScreen")
	if err != nil {
		return nil, err
	}
	return &instr.RouteLoadingScreen{Filename: s}, nil
}

func routeStartTime(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Route.StartTime"); err != nil {
		return nil, err
	}
	r := newReader(in, "Route.StartTime")
	st := &instr.RouteStartTime{Time: r.time(0)}
	return st, r.err
}

func routeDynamicLight(in split.Info) (instr.Instruction, error) {
	s, err := singleString(in, "Route.DynamicLight")
	if err != nil {
		return nil, err
	}
	return &instr.RouteDynamicLight{Filename: s}, nil
}

func lightColor(in split.Info, name string) (scene.Color, error) {
	r := newReader(in, name)
	c := scene.Color{R: r.byteOr(0, 160), G: r.byteOr(1, 160), B: r.byteOr(2, 160)}
	return c, r.err
}

func routeAmbientLight(in split.Info) (instr.Instruction, error) {
	c, err := lightColor(in, "Route.AmbientLight")
	if err != nil {
		return nil, err
	}
	return &instr.RouteAmbientLight{Color: c}, nil
}

func routeDirectionalLight(in split.Info) (instr.Instruction, error) {
	c, err := lightColor(in, "Route.DirectionalLight")
	if err != nil {
		return nil, err
	}
	return &instr.RouteDirectionalLight{Color: c}, nil
}

func routeLightDirection(in split.Info) (instr.Instruction, error) {
	r := newReader(in, "Route.LightDirection")
	return &instr.RouteLightDirection{Theta: r.floatOr(0, 60), Phi: r.floatOr(1, -26.57)}, nil
}
