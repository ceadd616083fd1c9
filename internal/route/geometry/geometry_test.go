package geometry

import (
	"math"
	"testing"

	"bve-compiler/internal/mathutil"
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
)

func at(pos float64) instr.Base {
	return instr.Base{Position: pos}
}

func resolve(list ...instr.Instruction) *scene.Route {
	r := scene.New()
	Pass2(&instr.List{Instructions: list}, r)
	return r
}

func TestStraightRouteGetsOneBlock(t *testing.T) {
	r := resolve()
	if len(r.Blocks) != 1 || r.Blocks[0].Position != 0 {
		t.Fatalf("blocks = %+v", r.Blocks)
	}
	got := PositionAt(r.Blocks, 50)
	if !got.Position.ApproxEqual(mathutil.Vec3{0, 0, 50}, 1e-9) {
		t.Fatalf("position = %v", got.Position)
	}
}

func TestCurveSplitsAndIntegrates(t *testing.T) {
	const radius = 100.0
	quarter := math.Pi / 2 * radius
	r := resolve(
		&instr.Curve{Base: at(100), Radius: radius},
		&instr.Curve{Base: at(100 + quarter), Radius: 0},
	)
	if len(r.Blocks) != 3 {
		t.Fatalf("got %d blocks", len(r.Blocks))
	}
	if r.Blocks[0].Length != 100 {
		t.Errorf("first block length = %v", r.Blocks[0].Length)
	}
	if !r.Blocks[1].Cache.Location.ApproxEqual(mathutil.Vec3{0, 0, 100}, 1e-9) {
		t.Errorf("curve start = %v", r.Blocks[1].Cache.Location)
	}
	end := r.Blocks[2].Cache
	if !end.Location.ApproxEqual(mathutil.Vec3{radius, 0, 100 + radius}, 1e-6) {
		t.Errorf("curve end = %v", end.Location)
	}
	if !end.Direction.ApproxEqual(mathutil.Vec3{1, 0, 0}, 1e-6) {
		t.Errorf("curve end heading = %v", end.Direction)
	}

	mid := PositionAt(r.Blocks, 100+quarter+10)
	if !mid.Position.ApproxEqual(mathutil.Vec3{radius + 10, 0, 100 + radius}, 1e-6) {
		t.Errorf("after curve = %v", mid.Position)
	}
	before := PositionAt(r.Blocks, -5)
	if !before.Position.ApproxEqual(mathutil.Vec3{0, 0, -5}, 1e-9) {
		t.Errorf("before start = %v", before.Position)
	}
}

func TestSamePositionReusesBlock(t *testing.T) {
	r := resolve(
		&instr.Pitch{Base: at(50), Rate: 10},
		&instr.Curve{Base: at(50), Radius: 300, Cant: 5},
	)
	if len(r.Blocks) != 2 {
		t.Fatalf("got %d blocks", len(r.Blocks))
	}
	b := r.Blocks[1]
	if b.Pitch != 0.01 || b.Radius != 300 || b.Cant != 5 {
		t.Fatalf("block = %+v", b)
	}
}

func TestCantBehavior(t *testing.T) {
	r := resolve(
		&instr.Curve{Base: at(0), Radius: 0, Cant: 5},
		&instr.Curve{Base: at(25), Radius: -300, Cant: -7},
	)
	if r.Blocks[0].Cant != 0 || r.Blocks[1].Cant != 7 {
		t.Fatalf("unsigned cant = %v, %v", r.Blocks[0].Cant, r.Blocks[1].Cant)
	}
	r = resolve(
		&instr.CantBehavior{Mode: instr.CantSigned},
		&instr.Curve{Base: at(25), Radius: -300, Cant: -7},
	)
	if r.Blocks[1].Cant != -7 {
		t.Fatalf("signed cant = %v", r.Blocks[1].Cant)
	}
}

func TestBlockLengthUsesUnitOfLength(t *testing.T) {
	r := resolve(
		&instr.UnitOfLength{Factors: []float64{1, 2}},
		&instr.BlockLength{Length: 10},
	)
	if r.BlockLength != 20 {
		t.Fatalf("block length = %v", r.BlockLength)
	}
	if resolve().BlockLength != 25 {
		t.Fatal("default block length is not 25")
	}
}

func TestTurnRadius(t *testing.T) {
	r := resolve(&instr.Turn{Base: at(0), Ratio: 1})
	if got := r.Blocks[0].Radius; math.Abs(got-25) > 1e-9 {
		t.Fatalf("turn radius = %v", got)
	}
}

func TestGroundHeightAt(t *testing.T) {
	r := resolve(
		&instr.Height{Base: at(100), Y: 2},
		&instr.Height{Base: at(200), Y: 4},
	)
	tests := []struct {
		pos, want float64
	}{
		{0, 2},
		{100, 2},
		{150, 3},
		{175, 3.5},
		{200, 4},
		{1000, 4},
	}
	for _, tt := range tests {
		if got := GroundHeightAt(r.GroundHeight, tt.pos); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("GroundHeightAt(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
	if got := GroundHeightAt(nil, 10); got != 0 {
		t.Errorf("empty ground = %v", got)
	}
}

func TestPositionAtPanicsWithoutBlocks(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	PositionAt(nil, 0)
}
