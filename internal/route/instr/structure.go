package instr

// StructureType selects the structure table a Structure.* binding writes.
type StructureType int

const (
	StructGround StructureType = iota
	StructRail
	StructWallL
	StructWallR
	StructDikeL
	StructDikeR
	StructFormL
	StructFormR
	StructFormCL
	StructFormCR
	StructRoofL
	StructRoofR
	StructRoofCL
	StructRoofCR
	StructCrackL
	StructCrackR
	StructFreeObj
	StructBeacon
)

var structureNames = [...]string{
	"Ground", "Rail", "WallL", "WallR", "DikeL", "DikeR",
	"FormL", "FormR", "FormCL", "FormCR", "RoofL", "RoofR", "RoofCL", "RoofCR",
	"CrackL", "CrackR", "FreeObj", "Beacon",
}

func (t StructureType) String() string {
	if t < 0 || int(t) >= len(structureNames) {
		return "Unknown"
	}
	return structureNames[t]
}

// StructureCommand binds an object file to a structure index.
type StructureCommand struct {
	Base
	Type     StructureType
	Index    int
	Filename string
}

// StructurePole is keyed by the (AdditionalRails, Index) pair.
type StructurePole struct {
	Base
	AdditionalRails int
	Index           int
	Filename        string
}

type AspectMode int

const (
	AspectFixed AspectMode = iota
	AspectPreserve
)

type BackgroundLoad struct {
	Base
	Index    int
	Filename string
}

type BackgroundX struct {
	Base
	Index       int
	Repetitions int
}

type BackgroundAspect struct {
	Base
	Index int
	Mode  AspectMode
}

type CycleGround struct {
	Base
	Index  int
	Inputs []int
}

type CycleRail struct {
	Base
	Index  int
	Inputs []int
}

// Signal is a traditional signal made of a signal texture and a glow texture.
type Signal struct {
	Base
	Index      int
	SignalFile string
	GlowFile   string
}

// SignalAnimated is a signal described by an animated object file.
type SignalAnimated struct {
	Base
	Index    int
	Filename string
}
