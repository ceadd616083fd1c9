package split

import (
	"reflect"
	"testing"

	"bve-compiler/internal/preprocess"
)

func TestCSV(t *testing.T) {
	tests := []struct {
		in   string
		want Info
	}{
		{"Track.Pitch 5", Info{Name: "Track.Pitch", Args: []string{"5"}}},
		{"Track.FreeObj 0; 1 ;2", Info{Name: "Track.FreeObj", Args: []string{"0", "1", "2"}}},
		{"Track.Pitch(5)", Info{Name: "Track.Pitch", Args: []string{"5"}}},
		{"Structure.Ground(3) ground.b3d", Info{Name: "Structure.Ground", Indices: []string{"3"}, Args: []string{"ground.b3d"}}},
		{"Texture.Background(0).X 4", Info{Name: "Texture.Background", Indices: []string{"0"}, Args: []string{"4"}, Suffix: "x"}},
		{"Texture.Background(0).Aspect(1)", Info{Name: "Texture.Background", Indices: []string{"0"}, Args: []string{"1"}, Suffix: "aspect"}},
		{"Train.Timetable(1).Day", Info{Name: "Train.Timetable", Args: []string{"1"}, Suffix: "day"}},
		{"Track.Buffer", Info{Name: "Track.Buffer"}},
		{"100", Info{Args: []string{"100"}, Position: true}},
		{"1:25.5", Info{Args: []string{"1", "25.5"}, Position: true}},
		{".25", Info{Args: []string{".25"}, Position: true}},
		{"-25", Info{Args: []string{"-25"}, Position: true}},
		{"-", Info{Name: "-"}},
	}
	for _, tt := range tests {
		got, err := CSV(tt.in, 0)
		if err != nil {
			t.Errorf("CSV(%q) error: %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("CSV(%q)\n got %+v\nwant %+v", tt.in, got, tt.want)
		}
	}
}

func TestCSVUnclosed(t *testing.T) {
	if _, err := CSV("Structure.Ground(3 x.b3d", 0); err == nil {
		t.Fatal("expected error for missing ')'")
	}
}

func TestRW(t *testing.T) {
	tests := []struct {
		in   string
		want Info
	}{
		{"[Railway]", Info{Name: "with", Args: []string{"railway"}}},
		{"Pitch(5)", Info{Name: "pitch", Args: []string{"5"}}},
		{"Rail(1) = rail.b3d", Info{Name: "rail", Indices: []string{"1"}, Args: []string{"rail.b3d"}}},
		{"Comment = a b", Info{Name: "comment", Args: []string{"a b"}}},
		{"Background(0).X = 2", Info{Name: "background", Indices: []string{"0"}, Args: []string{"2"}, Suffix: "x"}},
		{"FreeObj(0, 1, 2)", Info{Name: "freeobj", Args: []string{"0", "1", "2"}}},
		{"150", Info{Args: []string{"150"}, Position: true}},
		{"-12.5", Info{Args: []string{"-12.5"}, Position: true}},
		{"3 = sig.csv", Info{Name: "3", Args: []string{"sig.csv"}}},
	}
	for _, tt := range tests {
		got, err := Split(tt.in, 0, preprocess.RW)
		if err != nil {
			t.Errorf("RW(%q) error: %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("RW(%q)\n got %+v\nwant %+v", tt.in, got, tt.want)
		}
	}
}

func TestOffsetCarried(t *testing.T) {
	got, err := Split("Track.Pitch 1", 250, preprocess.CSV)
	if err != nil || got.Offset != 250 {
		t.Fatalf("offset = %v, %v", got.Offset, err)
	}
}
