package instr

import "bve-compiler/internal/route/scene"

type ChangeMode int

const (
	ChangeServiceBrakes ChangeMode = iota
	ChangeEmergencyBrakes
	ChangeDeactivatedEmergencyBrakes
)

type RouteComment struct {
	Base
	Text string
}

type RouteImage struct {
	Base
	Filename string
}

type RouteTimetable struct {
	Base
	Text string
}

type RouteChange struct {
	Base
	Mode ChangeMode
}

// RouteGauge is the track gauge in millimetres.
type RouteGauge struct {
	Base
	Width float64
}

type RouteSignal struct {
	Base
	AspectIndex int
	Speed       float64
}

type RouteRunInterval struct {
	Base
	Intervals []float64
}

type RouteGravity struct {
	Base
	Value float64
}

type RouteElevation struct {
	Base
	Height float64
}

type RouteTemperature struct {
	Base
	Celsius float64
}

type RoutePressure struct {
	Base
	KPa float64
}

type RouteDisplaySpeed struct {
	Base
	Unit   string
	Factor float64
}

type RouteLoadingScreen struct {
	Base
	Filename string
}

// RouteStartTime is seconds after midnight.
type RouteStartTime struct {
	Base
	Time int64
}

type RouteDynamicLight struct {
	Base
	Filename string
}

type RouteAmbientLight struct {
	Base
	Color scene.Color
}

type RouteDirectionalLight struct {
	Base
	Color scene.Color
}

// RouteLightDirection angles are in degrees.
type RouteLightDirection struct {
	Base
	Theta float64
	Phi   float64
}
