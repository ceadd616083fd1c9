package instr

import "bve-compiler/internal/route/scene"

// RailStart activates a rail. Nil offsets and types keep the rail's previous
// values.
type RailStart struct {
	Base
	Rail     int
	X        *float64
	Y        *float64
	RailType *int
}

// Rail updates an active rail or activates it.
type Rail struct {
	Base
	Rail     int
	X        *float64
	Y        *float64
	RailType *int
}

type RailType struct {
	Base
	Rail int
	Type int
}

type RailEnd struct {
	Base
	Rail int
	X    *float64
	Y    *float64
}

type Adhesion struct {
	Base
	Value float64
}

// Pitch is per mille.
type Pitch struct {
	Base
	Rate float64
}

type Curve struct {
	Base
	Radius float64
	Cant   float64
}

type Turn struct {
	Base
	Ratio float64
}

type Height struct {
	Base
	Y float64
}

// GroundRail is the FreeObj rail number that places objects relative to the
// ground under rail 0.
const GroundRail = -1

type FreeObj struct {
	Base
	Placement
	Rail  int
	Index int
}

type Wall struct {
	Base
	Rail      int
	Direction scene.Side
	Index     int
}

type WallEnd struct {
	Base
	Rail int
}

type Dike struct {
	Base
	Rail      int
	Direction scene.Side
	Index     int
}

type DikeEnd struct {
	Base
	Rail int
}

// Pole places overhead line poles every Interval blocks. Location is the
// side for single-rail poles.
type Pole struct {
	Base
	Rail            int
	AdditionalRails int
	Location        int
	Interval        int
	Index           int
}

type PoleEnd struct {
	Base
	Rail int
}

type Crack struct {
	Base
	Rail1 int
	Rail2 int
	Index int
}

type Ground struct {
	Base
	Index int
}
