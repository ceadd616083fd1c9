package instr

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	x := 2.5
	rs := &RailStart{Base: Base{FileIndex: 0, Line: 4, Position: 100}, Rail: 1, X: &x}
	list := &List{Instructions: []Instruction{rs}, Filenames: []string{"route.csv"}}

	got := list.Format(rs)
	want := "Track.RailStart{Rail=1, X=2.5, Y=unset, RailType=unset} @100 (route.csv:4)"
	if got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestFormatFlattensPlacement(t *testing.T) {
	fo := &FreeObj{Base: NewBase(), Rail: 0, Index: 3, Placement: Placement{X: 1}}
	list := &List{Instructions: []Instruction{fo}}
	got := list.Format(fo)
	if !strings.HasPrefix(got, "Track.FreeObj{X=1, Y=0, Yaw=0, Pitch=0, Roll=0, Rail=0, Index=3}") {
		t.Fatalf("Format = %q", got)
	}
	if !strings.HasSuffix(got, "@-1 (:0)") {
		t.Fatalf("Format = %q", got)
	}
}

func TestNameOfEveryTrackVariant(t *testing.T) {
	cases := map[Instruction]string{
		&Sta{}:          "Track.Sta",
		&TrackSignal{}:  "Track.Signal",
		&Signal{}:       "Signal",
		&BackgroundX{}:  "Texture.Background.X",
		&RouteGravity{}: "Route.AccelerationDueToGravity",
	}
	for in, want := range cases {
		if got := Name(in); got != want {
			t.Errorf("Name(%T) = %q, want %q", in, got, want)
		}
	}
}
