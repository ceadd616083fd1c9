package scene

import "bve-compiler/internal/mathutil"

// Lighting is one keyframe of route lighting. Time is seconds after midnight.
type Lighting struct {
	Time        int64         `json:"time"`
	Ambient     Color         `json:"ambient"`
	Directional Color         `json:"directional"`
	Direction   mathutil.Vec3 `json:"direction"`
	Cab         uint8         `json:"cab"`
}

// DefaultLighting is the lighting used until a route overrides it.
func DefaultLighting() Lighting {
	return Lighting{
		Ambient:     Color{160, 160, 160},
		Directional: Color{160, 160, 160},
		Direction:   mathutil.DefaultLightDirection,
		Cab:         255,
	}
}

// Transition is how a background fades in.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionFadeIn
	TransitionFadeOut
)

// TextureBackground is one panorama texture, optionally time-switched.
type TextureBackground struct {
	Time           int64      `json:"time"`
	Transition     Transition `json:"transition"`
	Repetitions    int        `json:"repetitions"`
	Filename       string     `json:"filename"`
	TransitionTime int        `json:"transition_time"`
	PreserveAspect bool       `json:"preserve_aspect"`
	FromXML        bool       `json:"from_xml"`
}

// BackgroundInfo is either a list of textures or a single object.
type BackgroundInfo struct {
	Textures []TextureBackground `json:"textures,omitempty"`
	Object   string              `json:"object,omitempty"`
}

// IsObject reports whether the background is an object file.
func (b BackgroundInfo) IsObject() bool {
	return b.Object != ""
}

// Background is the background that takes effect at Position.
type Background struct {
	Position float64        `json:"position"`
	Info     BackgroundInfo `json:"info"`
}

// TextColor is the font colour of a text marker.
type TextColor int

const (
	TextBlack TextColor = iota
	TextGray
	TextWhite
	TextRed
	TextOrange
	TextGreen
	TextBlue
	TextMagenta
)

var textColorNames = [...]string{"black", "gray", "white", "red", "orange", "green", "blue", "magenta"}

func (c TextColor) String() string {
	if c < 0 || int(c) >= len(textColorNames) {
		return "black"
	}
	return textColorNames[c]
}

// ParseTextColor maps a colour name (grey is accepted) to a TextColor.
func ParseTextColor(name string) (TextColor, bool) {
	if name == "grey" {
		return TextGray, true
	}
	for i, n := range textColorNames {
		if n == name {
			return TextColor(i), true
		}
	}
	return TextBlack, false
}

// MarkerInfo is either an image marker or a text marker. Image markers
// leave the text fields empty and vice versa.
type MarkerInfo struct {
	Text          bool      `json:"text"`
	AllowedTrains []string  `json:"allowed_trains,omitempty"`
	Early         string    `json:"early,omitempty"`
	OnTime        string    `json:"on_time,omitempty"`
	Late          string    `json:"late,omitempty"`
	EarlyTime     int64     `json:"early_time"`
	LateTime      int64     `json:"late_time"`
	Timeout       int64     `json:"timeout"`
	Distance      float64   `json:"distance"`
	UsingEarly    bool      `json:"using_early"`
	UsingOnTime   bool      `json:"using_on_time"`
	UsingLate     bool      `json:"using_late"`
	EarlyColor    TextColor `json:"early_color"`
	OnTimeColor   TextColor `json:"on_time_color"`
	LateColor     TextColor `json:"late_color"`
}

// RequestStop describes the request-stop behaviour of a station.
type RequestStop struct {
	EarlyTime   int64   `json:"early_time"`
	UsingEarly  bool    `json:"using_early"`
	LateTime    int64   `json:"late_time"`
	UsingLate   bool    `json:"using_late"`
	Distance    float64 `json:"distance"`
	StopMessage Message `json:"stop_message"`
	PassMessage Message `json:"pass_message"`
	Probability Odds    `json:"probability"`
	MaxCars     int     `json:"max_cars"`
	AIFullSpeed bool    `json:"ai_full_speed"`
}

type Message struct {
	Early  string `json:"early"`
	OnTime string `json:"on_time"`
	Late   string `json:"late"`
}

// Odds are percentages.
type Odds struct {
	Early  uint8 `json:"early"`
	OnTime uint8 `json:"on_time"`
	Late   uint8 `json:"late"`
}

// StationInfo is a station described by an XML document.
type StationInfo struct {
	Name           string
	Arrival        int64
	UsingArrival   bool
	Departure      int64
	UsingDeparture bool
	Doors          Doors
	ForceRed       bool
	PassengerRatio float64
	ArrivalSound   string
	DepartureSound string
	StopDuration   float64
	TimetableIndex int
	RequestStop    RequestStop
}
