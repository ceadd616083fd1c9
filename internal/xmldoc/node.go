// Package xmldoc parses the XML sub-documents a route can reference: dynamic
// lighting, dynamic backgrounds, route markers and stations. Element names are
// matched case-insensitively and an enclosing <openBVE> element is optional.
package xmldoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"bve-compiler/internal/loose"
)

// node is a lower-cased element tree; attributes are not used by any
// of the documents.
type node struct {
	name     string
	raw      string
	text     strings.Builder
	children []*node
}

func parseTree(filename, contents string) (*node, error) {
	dec := xml.NewDecoder(strings.NewReader(contents))
	// contents were decoded by source.ReadFile; a declared encoding is stale.
	dec.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) { return r, nil }

	root := &node{}
	stack := []*node{root}
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmldoc: parse %s: %w", filename, err)
		}
		top := stack[len(stack)-1]
		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{name: strings.ToLower(t.Name.Local), raw: t.Name.Local}
			top.children = append(top.children, n)
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			top.text.Write(t)
		}
	}
	return root, nil
}

// document returns the children of <openBVE> when present, otherwise the
// top-level elements.
func document(root *node) []*node {
	if ob := root.child("openbve"); ob != nil {
		return ob.children
	}
	return root.children
}

func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (n *node) all(name string) []*node {
	var out []*node
	for _, c := range n.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

func (n *node) value() string {
	return strings.TrimSpace(n.text.String())
}

// fields splits a comma separated node value.
func (n *node) fields() []string {
	parts := loose.Split(n.value(), ',')
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
