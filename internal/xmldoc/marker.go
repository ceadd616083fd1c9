package xmldoc

import (
	"strings"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/loose"
	"bve-compiler/internal/route/scene"
	"bve-compiler/internal/source"
)

// ParseMarker reads an <ImageMarker> or <TextMarker> document. Image paths
// are resolved against filename.
func ParseMarker(filename, contents string, errs diag.MultiError, resolve source.Resolver) (scene.MarkerInfo, error) {
	root, err := parseTree(filename, contents)
	if err != nil {
		return scene.MarkerInfo{}, err
	}

	var m scene.MarkerInfo
	doc := document(root)
	if len(doc) == 0 {
		errs.Add(filename, 0, "XML marker document is empty.")
		return m, nil
	}
	primary := doc[0]
	switch primary.name {
	case "imagemarker":
	case "textmarker":
		m.Text = true
	default:
		errs.Addf(filename, 0, "XML node named: %s is not a valid XML marker tag.", primary.raw)
		m.Text = true
	}

	tag, data := "ImageMarker", "image"
	if m.Text {
		tag, data = "TextMarker", "text"
	}
	path := func(s string) string {
		if m.Text || s == "" {
			return s
		}
		return resolve(filename, s)
	}

	onTime := primary.child("ontime")
	distance := primary.child("distance")
	timeout := primary.child("timeout")
	if onTime == nil || (distance == nil && timeout == nil) {
		errs.Addf(filename, 0, "An <%s> section must have a <OnTime> and either a <Distance> or <Timeout>", tag)
	}

	if n := primary.child("early"); n != nil {
		e := earlyLate(filename, n, "Early", data, errs)
		m.EarlyTime, m.Early, m.EarlyColor, m.UsingEarly = e.time, path(e.value), e.color, e.using
	}
	if onTime != nil {
		if d := onTime.child(data); d != nil {
			m.OnTime, m.UsingOnTime = path(d.value()), true
		} else {
			errs.Addf(filename, 0, "XML node <OnTime> must have a <%s> node.", titled(data))
		}
		if c := onTime.child("color"); c != nil && m.Text {
			m.OnTimeColor = textColor(c)
		}
	}
	if n := primary.child("late"); n != nil {
		l := earlyLate(filename, n, "Late", data, errs)
		m.LateTime, m.Late, m.LateColor, m.UsingLate = l.time, path(l.value), l.color, l.using
	}
	if distance != nil {
		v, err := loose.Float(distance.value())
		if err != nil {
			errs.Add(filename, 0, err.Error())
		}
		m.Distance = v
	}
	if timeout != nil {
		v, err := loose.Int(timeout.value())
		switch {
		case err != nil:
			errs.Add(filename, 0, err.Error())
		case v < 0:
			errs.Add(filename, 0, "Timeout node should not have a negative time")
		default:
			m.Timeout = v
		}
	}
	if n := primary.child("trains"); n != nil {
		for _, t := range loose.Split(n.value(), ';') {
			if t = strings.TrimSpace(t); t != "" {
				m.AllowedTrains = append(m.AllowedTrains, t)
			}
		}
	}
	return m, nil
}

type timedMessage struct {
	time  int64
	value string
	color scene.TextColor
	using bool
}

func earlyLate(filename string, n *node, tag, data string, errs diag.MultiError) timedMessage {
	timeNode, dataNode := n.child("time"), n.child(data)
	if timeNode == nil || dataNode == nil {
		errs.Addf(filename, 0, "XML node <%s> must have a <Time> AND a <%s> node.", tag, titled(data))
		return timedMessage{}
	}
	out := timedMessage{value: dataNode.value(), using: true}
	t, err := loose.Time(timeNode.value())
	if err != nil {
		errs.Add(filename, 0, err.Error())
		out.using = false
	}
	out.time = t
	if c := n.child("color"); c != nil && data == "text" {
		out.color = textColor(c)
	}
	return out
}

// textColor maps a colour name, falling back to black.
func textColor(n *node) scene.TextColor {
	c, _ := scene.ParseTextColor(strings.ToLower(n.value()))
	return c
}

func titled(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
