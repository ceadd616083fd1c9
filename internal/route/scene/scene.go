// Package scene holds the compiled form of a route: rail geometry blocks,
// positioned objects, stations, signalling and environment keyframes.
package scene

import (
	"bve-compiler/internal/filenames"
	"bve-compiler/internal/mathutil"
)

// Color is an 8-bit RGB colour.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Direction is a one-sided placement.
type Direction int

const (
	Left Direction = iota
	None
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Side selects the left, right or both sides of a rail.
type Side int

const (
	SideLeft Side = iota
	SideBoth
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "both"
}

// Block is one fixed-length stretch of track. Cache holds the absolute
// location and heading at the start of the block once integrated.
type Block struct {
	Position float64 `json:"position"`
	Length   float64 `json:"length"`
	Pitch    float64 `json:"pitch"`
	Radius   float64 `json:"radius"`
	Cant     float64 `json:"cant"`
	Height   float64 `json:"height"`
	Cache    Cache   `json:"cache"`
}

type Cache struct {
	Location  mathutil.Vec3 `json:"location"`
	Direction mathutil.Vec3 `json:"direction"`
	Valid     bool          `json:"valid"`
}

// Keyframe is a value that takes effect at a track position.
type Keyframe struct {
	Position float64 `json:"position"`
	Value    float64 `json:"value"`
}

// Object is one placed instance of an object file. Rotation is yaw, pitch,
// roll in degrees.
type Object struct {
	File     filenames.Handle `json:"file"`
	Position mathutil.Vec3    `json:"position"`
	Rotation mathutil.Vec3    `json:"rotation"`
	FlipX    bool             `json:"flip_x,omitempty"`
}

type DisplayUnit struct {
	Name   string  `json:"name"`
	Factor float64 `json:"factor"`
}

type Compatibility struct {
	BVE24Transparency bool `json:"bve24_transparency"`
	BVE24Content      bool `json:"bve24_content"`
}

// SafetyStatus is the state of the train protection at start.
type SafetyStatus int

const (
	SafetyServiceBrakes SafetyStatus = iota
	SafetyEmergencyBrakes
	SafetyDeactivatedEmergencyBrakes
)

type Beacon struct {
	Position float64 `json:"position"`
	Type     int64   `json:"type"`
	Data     int64   `json:"data"`
	Section  int64   `json:"section"`
}

// Pattern is an ATS-P speed pattern.
type Pattern struct {
	Position  float64 `json:"position"`
	Speed     float64 `json:"speed"`
	Permanent bool    `json:"permanent"`
}

type Fog struct {
	Position float64 `json:"position"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Color    Color   `json:"color"`
}

type Brightness struct {
	Position float64 `json:"position"`
	Value    uint8   `json:"value"`
}

type Section struct {
	Position float64 `json:"position"`
	ATerms   []int   `json:"a_terms"`
}

type PreTrain struct {
	Position float64 `json:"position"`
	Time     int64   `json:"time"`
}

type Limit struct {
	Position float64   `json:"position"`
	Speed    float64   `json:"speed"`
	Post     Direction `json:"post"`
	Course   Direction `json:"course"`
}

type Sound struct {
	Position mathutil.Vec3    `json:"position"`
	File     filenames.Handle `json:"file"`
}

type Announcement struct {
	Position float64          `json:"position"`
	Speed    float64          `json:"speed"`
	File     filenames.Handle `json:"file"`
}

type PointOfInterest struct {
	Position mathutil.Vec3 `json:"position"`
	Rotation mathutil.Vec3 `json:"rotation"`
	Text     string        `json:"text"`
}

// Timetable is a timetable image for one timetable index.
type Timetable struct {
	Index int    `json:"index"`
	Night bool   `json:"night"`
	File  string `json:"file"`
}

// Marker is an in-cab message shown between Start and End.
type Marker struct {
	Start  float64    `json:"start"`
	End    float64    `json:"end"`
	Marker MarkerInfo `json:"marker"`
}

// Crack records a deformable crack object stretched between two rails.
type Crack struct {
	Position float64          `json:"position"`
	RailA    int              `json:"rail_a"`
	RailB    int              `json:"rail_b"`
	File     filenames.Handle `json:"file"`
}

// FormPlacement says where a platform is built relative to its first rail.
type FormPlacement int

const (
	FormLeft FormPlacement = iota
	FormRight
	FormRail
)

// Form records a platform segment.
type Form struct {
	Position  float64       `json:"position"`
	RailA     int           `json:"rail_a"`
	RailB     int           `json:"rail_b"`
	Placement FormPlacement `json:"placement"`
	Roof      int           `json:"roof"`
	Form      int           `json:"form"`
}

// Route is the compiled scene.
type Route struct {
	BlockLength  float64    `json:"block_length"`
	Blocks       []Block    `json:"blocks"`
	GroundHeight []Keyframe `json:"ground_height"`
	Bumpers      []float64  `json:"bumpers"`
	Adhesion     []Keyframe `json:"adhesion"`

	Objects  []Object  `json:"objects"`
	Stations []Station `json:"stations"`
	Limits   []Limit   `json:"limits"`
	Cracks   []Crack   `json:"cracks"`
	Forms    []Form    `json:"forms"`

	ObjectFiles  filenames.Set `json:"object_files"`
	TextureFiles filenames.Set `json:"texture_files"`
	SoundFiles   filenames.Set `json:"sound_files"`

	Lighting    []Lighting   `json:"lighting"`
	Backgrounds []Background `json:"backgrounds"`
	Fog         []Fog        `json:"fog"`
	Brightness  []Brightness `json:"brightness"`

	SignalSpeed []float64 `json:"signal_speed"`
	Sections    []Section `json:"sections"`
	Beacons     []Beacon  `json:"beacons"`
	Patterns    []Pattern `json:"patterns"`

	PreTrains     []PreTrain    `json:"pretrains"`
	AIIntervals   []float64     `json:"ai_intervals"`
	AIMaxSpeed    float64       `json:"ai_max_speed"`
	Compatibility Compatibility `json:"compatibility"`

	Safety SafetyStatus `json:"safety"`
	// StartTime is seconds after midnight, -1 when unset.
	StartTime int64 `json:"start_time"`

	Sounds        []Sound        `json:"sounds"`
	Announcements []Announcement `json:"announcements"`
	RunSounds     map[int]int    `json:"run_sounds"`
	FlangeSounds  map[int]int    `json:"flange_sounds"`

	DefaultTrain     string            `json:"default_train"`
	Image            string            `json:"image"`
	LoadingImage     string            `json:"loading_image"`
	Comment          string            `json:"comment"`
	TimetableText    string            `json:"timetable_text"`
	Timetables       []Timetable       `json:"timetables"`
	DisplayUnit      DisplayUnit       `json:"display_unit"`
	Markers          []Marker          `json:"markers"`
	PointsOfInterest []PointOfInterest `json:"points_of_interest"`

	Gauge       float64 `json:"gauge"`
	Gravity     float64 `json:"gravity"`
	Temperature float64 `json:"temperature"`
	Pressure    float64 `json:"pressure"`
	Altitude    float64 `json:"altitude"`
}

// DefaultSignalSpeeds is the aspect to speed table before any Route.Signal.
var DefaultSignalSpeeds = []float64{0, 25, 55, 75, -1, -1}

// New returns an empty route with the documented world defaults.
func New() *Route {
	return &Route{
		BlockLength:  25,
		SignalSpeed:  append([]float64(nil), DefaultSignalSpeeds...),
		StartTime:    -1,
		RunSounds:    map[int]int{},
		FlangeSounds: map[int]int{},
		Gauge:        1435,
		Gravity:      9.80665,
		Temperature:  20,
		Pressure:     101.325,
	}
}
