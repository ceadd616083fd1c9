package generate

import (
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
	"bve-compiler/internal/route/split"
)

func back(in split.Info) (instr.Instruction, error) {
	v, err := singleUint(in, "Track.Back")
	if err != nil {
		return nil, err
	}
	return &instr.Back{Index: v}, nil
}

func fog(in split.Info) (instr.Instruction, error) {
	r := newReader(in, "Track.Fog")
	f := &instr.Fog{
		Start: r.floatOr(0, 0),
		End:   r.floatOr(1, 0),
		Color: scene.Color{R: r.byteOr(2, 128), G: r.byteOr(3, 128), B: r.byteOr(4, 128)},
	}
	return f, r.err
}

func brightness(in split.Info) (instr.Instruction, error) {
	r := newReader(in, "Track.Brightness")
	b := &instr.Brightness{Value: r.byteOr(0, 255)}
	return b, r.err
}

func marker(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Track.Marker"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.Marker")
	if r.n() < 2 {
		return &instr.MarkerXML{Filename: r.str(0)}, nil
	}
	m := &instr.Marker{Filename: r.str(0), Distance: r.float(1)}
	return m, r.err
}

func textMarker(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Track.TextMarker"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.TextMarker")
	if r.n() < 2 {
		return &instr.MarkerXML{Filename: r.str(0)}, nil
	}
	m := &instr.TextMarker{Text: r.str(0), Distance: r.float(1), Color: scene.TextBlack}
	if r.has(2) {
		m.Color, _ = scene.ParseTextColor(r.lower(2))
	}
	return m, r.err
}

func pointOfInterest(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Track.PointOfInterest"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.PointOfInterest")
	p := &instr.PointOfInterest{Rail: r.uint(0), Placement: r.placement(1), Text: r.str(6)}
	return p, r.err
}

func preTrain(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Track.PreTrain"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.PreTrain")
	p := &instr.PreTrain{Time: r.time(0)}
	return p, r.err
}

func announce(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Track.Announce"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.Announce")
	return &instr.Announce{Filename: r.str(0), Speed: r.floatOr(1, 0)}, nil
}

func doppler(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Track.Doppler"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.Doppler")
	d := &instr.Doppler{Filename: r.str(0)}
	if r.has(1) {
		d.X = r.float(1)
	}
	if r.has(2) {
		d.Y = r.float(2)
	}
	return d, r.err
}

func buffer(split.Info) (instr.Instruction, error) {
	return &instr.Buffer{}, nil
}
