package generate

import (
	"strings"

	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/split"
)

var structureTypes = map[string]instr.StructureType{
	"ground":  instr.StructGround,
	"rail":    instr.StructRail,
	"walll":   instr.StructWallL,
	"wallr":   instr.StructWallR,
	"dikel":   instr.StructDikeL,
	"diker":   instr.StructDikeR,
	"forml":   instr.StructFormL,
	"formr":   instr.StructFormR,
	"formcl":  instr.StructFormCL,
	"formcr":  instr.StructFormCR,
	"roofl":   instr.StructRoofL,
	"roofr":   instr.StructRoofR,
	"roofcl":  instr.StructRoofCL,
	"roofcr":  instr.StructRoofCR,
	"crackl":  instr.StructCrackL,
	"crackr":  instr.StructCrackR,
	"freeobj": instr.StructFreeObj,
	"beacon":  instr.StructBeacon,
}

// memberName strips the namespace from "structure.walll" or "@@object@@walll".
func memberName(name string) string {
	if i := strings.LastIndex(name, "@@"); i >= 0 {
		return name[i+2:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func structureCommand(in split.Info) (instr.Instruction, error) {
	if err := indexAndArg(in, "Structure.Command"); err != nil {
		return nil, err
	}
	typ, ok := structureTypes[memberName(in.Name)]
	if !ok {
		return nil, &ParseError{Msg: "Structure.Command has no structure named " + in.Name}
	}
	r := newReader(in, "Structure.Command")
	c := &instr.StructureCommand{Type: typ, Index: r.index(0), Filename: r.str(0)}
	return c, r.err
}

func structurePole(in split.Info) (instr.Instruction, error) {
	if err := indexAndArg(in, "Structure.Pole"); err != nil {
		return nil, err
	}
	r := newReader(in, "Structure.Pole")
	p := &instr.StructurePole{Filename: r.str(0)}
	if len(in.Indices) == 1 {
		p.Index = r.index(0)
	} else {
		p.AdditionalRails = r.index(0)
		p.Index = r.index(1)
	}
	return p, r.err
}

func textureBackground(in split.Info) (instr.Instruction, error) {
	if err := indexAndArg(in, "Texture.Background"); err != nil {
		return nil, err
	}
	r := newReader(in, "Texture.Background")
	idx := r.index(0)
	if in.Suffix == "" || in.Suffix == "load" {
		return &instr.BackgroundLoad{Index: idx, Filename: r.str(0)}, r.err
	}
	n := r.uint(0)
	if r.err != nil {
		return nil, r.err
	}
	switch in.Suffix {
	case "x":
		return &instr.BackgroundX{Index: idx, Repetitions: n}, nil
	case "aspect":
		mode := instr.AspectFixed
		if n != 0 {
			mode = instr.AspectPreserve
		}
		return &instr.BackgroundAspect{Index: idx, Mode: mode}, nil
	}
	return nil, &ParseError{Msg: "Invalid suffix to Texture.Background"}
}

func cycleInputs(in split.Info, name string) (int, []int, error) {
	if err := indexAndArg(in, name); err != nil {
		return 0, nil, err
	}
	r := newReader(in, name)
	idx := r.index(0)
	inputs := make([]int, 0, r.n())
	for i := 0; i < r.n(); i++ {
		inputs = append(inputs, r.uint(i))
	}
	return idx, inputs, r.err
}

func cycleGround(in split.Info) (instr.Instruction, error) {
	idx, inputs, err := cycleInputs(in, "Cycle.Ground")
	if err != nil {
		return nil, err
	}
	return &instr.CycleGround{Index: idx, Inputs: inputs}, nil
}

func cycleRail(in split.Info) (instr.Instruction, error) {
	idx, inputs, err := cycleInputs(in, "Cycle.Rail")
	if err != nil {
		return nil, err
	}
	return &instr.CycleRail{Index: idx, Inputs: inputs}, nil
}

func signal(in split.Info) (instr.Instruction, error) {
	if err := indexAndArg(in, "Signal"); err != nil {
		return nil, err
	}
	r := newReader(in, "Signal")
	idx := r.index(0)
	if r.err != nil {
		return nil, r.err
	}
	if r.n() >= 2 {
		return &instr.Signal{Index: idx, SignalFile: r.str(0), GlowFile: r.str(1)}, nil
	}
	return &instr.SignalAnimated{Index: idx, Filename: r.str(0)}, nil
}
