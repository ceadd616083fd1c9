package xmldoc

import (
	"strings"
	"testing"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/mathutil"
	"bve-compiler/internal/route/scene"
)

func joinResolver(issuer, referenced string) string {
	return "/abs/" + referenced
}

func TestParseLighting(t *testing.T) {
	doc := `<?xml version="1.0"?>
<openBVE>
  <Brightness>
    <Time>10.30</Time>
    <AmbientLight>10,20,30</AmbientLight>
    <CabLighting>128</CabLighting>
  </Brightness>
  <brightness>
    <time>18</time>
    <LightDirection>0,-1</LightDirection>
  </brightness>
</openBVE>`
	errs := diag.New()
	got, err := ParseLighting("light.xml", doc, errs)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d keyframes", len(got))
	}
	if got[0].Time != 10*3600+30*60 || got[0].Ambient != (scene.Color{R: 10, G: 20, B: 30}) || got[0].Cab != 128 {
		t.Errorf("first = %+v", got[0])
	}
	if got[0].Directional != (scene.Color{R: 160, G: 160, B: 160}) {
		t.Errorf("directional default = %+v", got[0].Directional)
	}
	if got[1].Direction != mathutil.DefaultLightDirection {
		t.Errorf("direction with two fields = %v", got[1].Direction)
	}
	d := errs.For("light.xml")
	if len(d) != 1 || d[0].Message != "<LightDirection> must have exactly 3 arguments" {
		t.Errorf("diagnostics = %v", d)
	}
}

func TestParseLightingEmpty(t *testing.T) {
	errs := diag.New()
	got, err := ParseLighting("light.xml", "<openBVE></openBVE>", errs)
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v, %v", got, err)
	}
	if d := errs.For("light.xml"); len(d) != 1 || !strings.Contains(d[0].Message, "at least one <brightness> node") {
		t.Errorf("diagnostics = %v", d)
	}
}

func TestParseBackground(t *testing.T) {
	doc := `<openBVE>
<Background><Texture>day.png</Texture><Mode>FadeIn</Mode><Time>06</Time></Background>
<Background><Texture>night.png</Texture><Repetitions>4</Repetitions><Mode>sideways</Mode></Background>
</openBVE>`
	errs := diag.New()
	got, err := ParseBackground("bg.xml", doc, errs, joinResolver)
	if err != nil {
		t.Fatal(err)
	}
	if got.IsObject() || len(got.Textures) != 2 {
		t.Fatalf("background = %+v", got)
	}
	day, night := got.Textures[0], got.Textures[1]
	if day.Filename != "/abs/day.png" || day.Transition != scene.TransitionFadeIn || day.Time != 6*3600 || day.Repetitions != 6 || !day.FromXML {
		t.Errorf("day = %+v", day)
	}
	if night.Repetitions != 4 || night.Transition != scene.TransitionNone || night.TransitionTime != 10 {
		t.Errorf("night = %+v", night)
	}
	if d := errs.For("bg.xml"); len(d) != 1 || !strings.HasPrefix(d[0].Message, "Unrecognized texture mode") {
		t.Errorf("diagnostics = %v", d)
	}
}

func TestParseBackgroundObjectWins(t *testing.T) {
	doc := `<Background><Object>sky.b3d</Object></Background><Background><Texture>x.png</Texture></Background>`
	errs := diag.New()
	got, err := ParseBackground("bg.xml", doc, errs, joinResolver)
	if err != nil {
		t.Fatal(err)
	}
	if got.Object != "/abs/sky.b3d" || len(got.Textures) != 0 {
		t.Fatalf("background = %+v", got)
	}
	if errs.Len() != 1 {
		t.Errorf("diagnostics = %v", errs.For("bg.xml"))
	}
}

func TestParseMarker(t *testing.T) {
	doc := `<openBVE><TextMarker>
  <Early><Time>09.00</Time><Text>too soon</Text><Color>Red</Color></Early>
  <OnTime><Text>on time</Text></OnTime>
  <Distance>-200</Distance>
  <Trains>a;b;</Trains>
</TextMarker></openBVE>`
	errs := diag.New()
	m, err := ParseMarker("m.xml", doc, errs, joinResolver)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Text || m.Early != "too soon" || m.EarlyColor != scene.TextRed || m.EarlyTime != 9*3600 || !m.UsingEarly {
		t.Errorf("early = %+v", m)
	}
	if m.OnTime != "on time" || !m.UsingOnTime || m.Distance != -200 {
		t.Errorf("on time = %+v", m)
	}
	if len(m.AllowedTrains) != 2 || m.AllowedTrains[1] != "b" {
		t.Errorf("trains = %v", m.AllowedTrains)
	}
	if errs.Len() != 0 {
		t.Errorf("diagnostics = %v", errs.For("m.xml"))
	}
}

func TestParseImageMarkerMissingOnTime(t *testing.T) {
	doc := `<ImageMarker><Late><Time>1</Time></Late><Timeout>-3</Timeout></ImageMarker>`
	errs := diag.New()
	m, err := ParseMarker("m.xml", doc, errs, joinResolver)
	if err != nil {
		t.Fatal(err)
	}
	if m.Text || m.UsingLate || m.Timeout != 0 {
		t.Errorf("marker = %+v", m)
	}
	want := []string{
		"An <ImageMarker> section must have a <OnTime> and either a <Distance> or <Timeout>",
		"XML node <Late> must have a <Time> AND a <Image> node.",
		"Timeout node should not have a negative time",
	}
	d := errs.For("m.xml")
	if len(d) != len(want) {
		t.Fatalf("diagnostics = %v", d)
	}
	for i := range want {
		if d[i].Message != want[i] {
			t.Errorf("diagnostic %d = %q, want %q", i, d[i].Message, want[i])
		}
	}
}

func TestParseStation(t *testing.T) {
	doc := `<openBVE><Station>
  <Name>Central</Name>
  <ArrivalTime>10.15</ArrivalTime>
  <Doors>Left</Doors>
  <ForcedRedSignal>TRUE</ForcedRedSignal>
  <ArrivalSound>bell.wav</ArrivalSound>
  <RequestStop>
    <Probability><Early>10</Early><OnTime>150</OnTime></Probability>
    <StopMessage>Stopping</StopMessage>
    <AIBehaviour>FullSpeed</AIBehaviour>
  </RequestStop>
</Station></openBVE>`
	errs := diag.New()
	st, err := ParseStation("s.xml", doc, errs, joinResolver)
	if err != nil {
		t.Fatal(err)
	}
	if st.Name != "Central" || st.Arrival != 10*3600+15*60 || !st.UsingArrival || st.UsingDeparture {
		t.Errorf("times = %+v", st)
	}
	if st.Doors != scene.DoorsLeft || !st.ForceRed || st.ArrivalSound != "/abs/bell.wav" {
		t.Errorf("station = %+v", st)
	}
	if st.PassengerRatio != 100 || st.StopDuration != 15 {
		t.Errorf("defaults = %v, %v", st.PassengerRatio, st.StopDuration)
	}
	rs := st.RequestStop
	if rs.Probability != (scene.Odds{Early: 10}) || rs.StopMessage.Late != "Stopping" || !rs.AIFullSpeed {
		t.Errorf("request stop = %+v", rs)
	}
	if d := errs.For("s.xml"); len(d) != 1 || d[0].Message != "<OnTime> has to be between 0 and 100 but found 150" {
		t.Errorf("diagnostics = %v", d)
	}
}

func TestMalformedDocument(t *testing.T) {
	if _, err := ParseStation("s.xml", "<Station><Name>x</Station>", diag.New(), joinResolver); err == nil {
		t.Fatal("expected a parse error")
	}
}
