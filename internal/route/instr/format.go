package instr

import (
	"fmt"
	"reflect"
	"strings"
)

// Name returns the directive name of an instruction in CSV spelling.
func Name(i Instruction) string {
	switch i.(type) {
	case *None:
		return "None"
	case *Position:
		return "Position"
	case *UnitOfLength:
		return "Options.UnitOfLength"
	case *UnitOfSpeed:
		return "Options.UnitOfSpeed"
	case *BlockLength:
		return "Options.BlockLength"
	case *ObjectVisibility:
		return "Options.ObjectVisibility"
	case *SectionBehavior:
		return "Options.SectionBehavior"
	case *CantBehavior:
		return "Options.CantBehavior"
	case *FogBehavior:
		return "Options.FogBehavior"
	case *CompatibleTransparencyMode:
		return "Options.CompatibleTransparencyMode"
	case *EnableBveTsHacks:
		return "Options.EnableBveTsHacks"
	case *RouteComment:
		return "Route.Comment"
	case *RouteImage:
		return "Route.Image"
	case *RouteTimetable:
		return "Route.Timetable"
	case *RouteChange:
		return "Route.Change"
	case *RouteGauge:
		return "Route.Gauge"
	case *RouteSignal:
		return "Route.Signal"
	case *RouteRunInterval:
		return "Route.RunInterval"
	case *RouteGravity:
		return "Route.AccelerationDueToGravity"
	case *RouteElevation:
		return "Route.Elevation"
	case *RouteTemperature:
		return "Route.Temperature"
	case *RoutePressure:
		return "Route.Pressure"
	case *RouteDisplaySpeed:
		return "Route.DisplaySpeed"
	case *RouteLoadingScreen:
		return "Route.LoadingScreen"
	case *RouteStartTime:
		return "Route.StartTime"
	case *RouteDynamicLight:
		return "Route.DynamicLight"
	case *RouteAmbientLight:
		return "Route.AmbientLight"
	case *RouteDirectionalLight:
		return "Route.DirectionalLight"
	case *RouteLightDirection:
		return "Route.LightDirection"
	case *TrainFolder:
		return "Train.Folder"
	case *TrainRail:
		return "Train.Rail"
	case *TrainFlange:
		return "Train.Flange"
	case *TrainTimetable:
		return "Train.Timetable"
	case *TrainVelocity:
		return "Train.Velocity"
	case *StructureCommand:
		return "Structure.Command"
	case *StructurePole:
		return "Structure.Pole"
	case *BackgroundLoad:
		return "Texture.Background"
	case *BackgroundX:
		return "Texture.Background.X"
	case *BackgroundAspect:
		return "Texture.Background.Aspect"
	case *CycleGround:
		return "Cycle.Ground"
	case *CycleRail:
		return "Cycle.Rail"
	case *Signal:
		return "Signal"
	case *SignalAnimated:
		return "SignalAnimated"
	case *RailStart:
		return "Track.RailStart"
	case *Rail:
		return "Track.Rail"
	case *RailType:
		return "Track.RailType"
	case *RailEnd:
		return "Track.RailEnd"
	case *Adhesion:
		return "Track.Adhesion"
	case *Pitch:
		return "Track.Pitch"
	case *Curve:
		return "Track.Curve"
	case *Turn:
		return "Track.Turn"
	case *Height:
		return "Track.Height"
	case *FreeObj:
		return "Track.FreeObj"
	case *Wall:
		return "Track.Wall"
	case *WallEnd:
		return "Track.WallEnd"
	case *Dike:
		return "Track.Dike"
	case *DikeEnd:
		return "Track.DikeEnd"
	case *Pole:
		return "Track.Pole"
	case *PoleEnd:
		return "Track.PoleEnd"
	case *Crack:
		return "Track.Crack"
	case *Ground:
		return "Track.Ground"
	case *Sta:
		return "Track.Sta"
	case *StationXML:
		return "Track.StationXML"
	case *Stop:
		return "Track.Stop"
	case *Form:
		return "Track.Form"
	case *Limit:
		return "Track.Limit"
	case *Section:
		return "Track.Section"
	case *SigF:
		return "Track.SigF"
	case *TrackSignal:
		return "Track.Signal"
	case *Relay:
		return "Track.Relay"
	case *Beacon:
		return "Track.Beacon"
	case *Transponder:
		return "Track.Transponder"
	case *Pattern:
		return "Track.Pattern"
	case *Back:
		return "Track.Back"
	case *Fog:
		return "Track.Fog"
	case *Brightness:
		return "Track.Brightness"
	case *Marker:
		return "Track.Marker"
	case *MarkerXML:
		return "Track.MarkerXML"
	case *TextMarker:
		return "Track.TextMarker"
	case *PointOfInterest:
		return "Track.PointOfInterest"
	case *PreTrain:
		return "Track.PreTrain"
	case *Announce:
		return "Track.Announce"
	case *Doppler:
		return "Track.Doppler"
	case *Buffer:
		return "Track.Buffer"
	}
	return fmt.Sprintf("%T", i)
}

// Format renders one instruction as
//
//	Track.Curve{Radius=600, Cant=0} @125 (route.csv:12)
func (l *List) Format(i Instruction) string {
	var sb strings.Builder
	sb.WriteString(Name(i))
	sb.WriteByte('{')
	first := true
	writeFields(&sb, reflect.ValueOf(i).Elem(), &first)
	sb.WriteByte('}')
	b := i.Common()
	fmt.Fprintf(&sb, " @%g (%s:%d)", b.Position, l.Filename(i), b.Line)
	return sb.String()
}

func writeFields(sb *strings.Builder, v reflect.Value, first *bool) {
	t := v.Type()
	for n := 0; n < v.NumField(); n++ {
		f := t.Field(n)
		if f.Name == "Base" {
			continue
		}
		if f.Anonymous {
			writeFields(sb, v.Field(n), first)
			continue
		}
		if !*first {
			sb.WriteString(", ")
		}
		*first = false
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		sb.WriteString(formatValue(v.Field(n)))
	}
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return "unset"
		}
		return formatValue(v.Elem())
	case reflect.String:
		return fmt.Sprintf("%q", v.String())
	case reflect.Struct:
		return fmt.Sprintf("%+v", v.Interface())
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v.Interface())
}

// Dump writes every instruction on its own line.
func (l *List) Dump(sb *strings.Builder) {
	for _, i := range l.Instructions {
		sb.WriteString(l.Format(i))
		sb.WriteByte('\n')
	}
}
