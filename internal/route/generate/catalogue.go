package generate

import (
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/split"
)

// Constructor builds one instruction from a split statement.
type Constructor func(split.Info) (instr.Instruction, error)

// Catalogue maps every lower-cased directive spelling of both dialects to
// its constructor. RW names are qualified as "@@section@@name".
var Catalogue = map[string]Constructor{
	"options.unitoflength":               unitOfLength,
	"options.unitofspeed":                unitOfSpeed,
	"options.blocklength":                blockLength,
	"options.objectvisibility":           objectVisibility,
	"options.sectionbehavior":            sectionBehavior,
	"options.cantbehavior":               cantBehavior,
	"options.fogbehavior":                fogBehavior,
	"options.compatibletransparencymode": compatibleTransparencyMode,
	"options.enablebvetshacks":           enableBveTsHacks,

	"route.comment":                  routeComment,
	"route.image":                    routeImage,
	"route.timetable":                routeTimetable,
	"route.change":                   routeChange,
	"route.gauge":                    routeGauge,
	"route.signal":                   routeSignal,
	"route.runinterval":              routeRunInterval,
	"route.accelerationduetogravity": routeGravity,
	"route.elevation":                routeElevation,
	"route.temperature":              routeTemperature,
	"route.pressure":                 routePressure,
	"route.displayspeed":             routeDisplaySpeed,
	"route.loadingscreen":            routeLoadingScreen,
	"route.starttime":                routeStartTime,
	"route.dynamiclight":             routeDynamicLight,
	"route.ambientlight":             routeAmbientLight,
	"route.directionallight":         routeDirectionalLight,
	"route.lightdirection":           routeLightDirection,

	"train.folder":    trainFolder,
	"train.file":      trainFolder,
	"train.run":       trainRun,
	"train.rail":      trainRun,
	"train.flange":    trainFlange,
	"train.timetable": trainTimetable,
	"train.gauge":     routeGauge,
	"train.interval":  routeRunInterval,
	"train.velocity":  trainVelocity,

	"structure.rail":    structureCommand,
	"structure.ground":  structureCommand,
	"structure.walll":   structureCommand,
	"structure.wallr":   structureCommand,
	"structure.dikel":   structureCommand,
	"structure.diker":   structureCommand,
	"structure.forml":   structureCommand,
	"structure.formr":   structureCommand,
	"structure.formcl":  structureCommand,
	"structure.formcr":  structureCommand,
	"structure.roofl":   structureCommand,
	"structure.roofr":   structureCommand,
	"structure.roofcl":  structureCommand,
	"structure.roofcr":  structureCommand,
	"structure.crackl":  structureCommand,
	"structure.crackr":  structureCommand,
	"structure.freeobj": structureCommand,
	"structure.beacon":  structureCommand,
	"structure.pole":    structurePole,

	"texture.background": textureBackground,
	"cycle.ground":       cycleGround,
	"cycle.rail":         cycleRail,
	"signal":             signal,

	"track.railstart":       railStart,
	"track.rail":            rail,
	"track.railtype":        railType,
	"track.railend":         railEnd,
	"track.accuracy":        accuracy,
	"track.adhesion":        adhesion,
	"track.pitch":           pitch,
	"track.curve":           curve,
	"track.turn":            turn,
	"track.height":          height,
	"track.freeobj":         freeObj,
	"track.wall":            wall,
	"track.wallend":         wallEnd,
	"track.dike":            dike,
	"track.dikeend":         dikeEnd,
	"track.pole":            pole,
	"track.poleend":         poleEnd,
	"track.crack":           crack,
	"track.ground":          ground,
	"track.sta":             sta,
	"track.stationxml":      stationXML,
	"track.station":         station,
	"track.stop":            stop,
	"track.form":            form,
	"track.limit":           limit,
	"track.section":         section,
	"track.sigf":            sigF,
	"track.signal":          trackSignal,
	"track.sig":             trackSignal,
	"track.relay":           relay,
	"track.beacon":          beacon,
	"track.transponder":     transponder,
	"track.tr":              transponder,
	"track.atssn":           atsSn,
	"track.atsp":            atsP,
	"track.pattern":         pattern,
	"track.plimit":          pLimit,
	"track.back":            back,
	"track.fog":             fog,
	"track.brightness":      brightness,
	"track.marker":          marker,
	"track.textmarker":      textMarker,
	"track.pointofinterest": pointOfInterest,
	"track.pretrain":        preTrain,
	"track.announce":        announce,
	"track.doppler":         doppler,
	"track.buffer":          buffer,

	"@@options@@unitoflength":     unitOfLength,
	"@@options@@unitofspeed":      unitOfSpeed,
	"@@options@@blocklength":      blockLength,
	"@@options@@objectvisibility": objectVisibility,
	"@@options@@sectionbehavior":  sectionBehavior,
	"@@options@@cantbehavior":     cantBehavior,
	"@@options@@fogbehavior":      fogBehavior,

	"@@route@@comment":                  routeComment,
	"@@route@@image":                    routeImage,
	"@@route@@timetable":                routeTimetable,
	"@@route@@change":                   routeChange,
	"@@route@@gauge":                    routeGauge,
	"@@route@@signal":                   routeSignal,
	"@@route@@runinterval":              routeRunInterval,
	"@@route@@accelerationduetogravity": routeGravity,
	"@@route@@elevation":                routeElevation,
	"@@route@@temperature":              routeTemperature,
	"@@route@@pressure":                 routePressure,
	"@@route@@ambientlight":             routeAmbientLight,
	"@@route@@directionallight":         routeDirectionalLight,
	"@@route@@lightdirection":           routeLightDirection,

	"@@train@@folder":    trainFolder,
	"@@train@@file":      trainFolder,
	"@@train@@run":       trainRun,
	"@@train@@rail":      trainRun,
	"@@train@@flange":    trainFlange,
	"@@train@@timetable": trainTimetable,
	"@@train@@gauge":     routeGauge,
	"@@train@@interval":  routeRunInterval,
	"@@train@@velocity":  trainVelocity,

	"@@object@@rail":    structureCommand,
	"@@object@@beacon":  structureCommand,
	"@@object@@ground":  structureCommand,
	"@@object@@walll":   structureCommand,
	"@@object@@wallr":   structureCommand,
	"@@object@@dikel":   structureCommand,
	"@@object@@diker":   structureCommand,
	"@@object@@forml":   structureCommand,
	"@@object@@formr":   structureCommand,
	"@@object@@formcl":  structureCommand,
	"@@object@@formcr":  structureCommand,
	"@@object@@roofl":   structureCommand,
	"@@object@@roofr":   structureCommand,
	"@@object@@roofcl":  structureCommand,
	"@@object@@roofcr":  structureCommand,
	"@@object@@crackl":  structureCommand,
	"@@object@@crackr":  structureCommand,
	"@@object@@freeobj": structureCommand,
	"@@object@@pole":    structurePole,
	"@@object@@back":    textureBackground,

	"@@cycle@@groundstructureindex": cycleGround,
	"@@signal@@signalindex":         signal,

	"@@railway@@railstart":       railStart,
	"@@railway@@rail":            rail,
	"@@railway@@railtype":        railType,
	"@@railway@@railend":         railEnd,
	"@@railway@@accuracy":        accuracy,
	"@@railway@@adhesion":        adhesion,
	"@@railway@@pitch":           pitch,
	"@@railway@@curve":           curve,
	"@@railway@@turn":            turn,
	"@@railway@@height":          height,
	"@@railway@@freeobj":         freeObj,
	"@@railway@@wall":            wall,
	"@@railway@@wallend":         wallEnd,
	"@@railway@@dike":            dike,
	"@@railway@@dikeend":         dikeEnd,
	"@@railway@@pole":            pole,
	"@@railway@@poleend":         poleEnd,
	"@@railway@@crack":           crack,
	"@@railway@@ground":          ground,
	"@@railway@@sta":             sta,
	"@@railway@@station":         station,
	"@@railway@@stop":            stop,
	"@@railway@@form":            form,
	"@@railway@@limit":           limit,
	"@@railway@@section":         section,
	"@@railway@@sigf":            sigF,
	"@@railway@@signal":          trackSignal,
	"@@railway@@relay":           relay,
	"@@railway@@beacon":          beacon,
	"@@railway@@transponder":     transponder,
	"@@railway@@atssn":           atsSn,
	"@@railway@@atsp":            atsP,
	"@@railway@@pattern":         pattern,
	"@@railway@@plimit":          pLimit,
	"@@railway@@back":            back,
	"@@railway@@fog":             fog,
	"@@railway@@brightness":      brightness,
	"@@railway@@marker":          marker,
	"@@railway@@pointofinterest": pointOfInterest,
	"@@railway@@pretrain":        preTrain,
	"@@railway@@announce":        announce,
	"@@railway@@doppler":         doppler,
	"@@railway@@buffer":          buffer,
}

var ignored = map[string]bool{
	"route.developerid":     true,
	"train.acceleration":    true,
	"train.station":         true,
	"@@route@@developerid":  true,
	"@@train@@acceleration": true,
	"@@train@@station":      true,
}
