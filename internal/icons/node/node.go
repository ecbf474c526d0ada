// Package node defines the data shape of one renderable SVG primitive.
package node

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyAttr is the bookkeeping attribute catalog authors use to deduplicate
// shapes. Renderers never emit it.
const KeyAttr = "key"

// Node describes one SVG element: its tag, attributes and nested children.
//
// Nodes placed in a catalog are shared between callers and must be treated as
// read-only.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []Node
}

// New builds a node from a tag and alternating attribute name/value pairs.
// A trailing name without a value is ignored.
func New(tag string, pairs ...string) Node {
	n := Node{Tag: tag}
	if len(pairs) >= 2 {
		n.Attrs = make(map[string]string, len(pairs)/2)
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		n.Attrs[pairs[i]] = pairs[i+1]
	}
	return n
}

// WithChildren returns a copy of n holding children.
func (n Node) WithChildren(children ...Node) Node {
	n.Children = children
	return n
}

// Number serializes a numeric attribute value in its shortest decimal form.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Clone returns a deep copy of nodes.
func Clone(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = Node{Tag: n.Tag, Children: Clone(n.Children)}
		if n.Attrs != nil {
			out[i].Attrs = make(map[string]string, len(n.Attrs))
			for k, v := range n.Attrs {
				out[i].Attrs[k] = v
			}
		}
	}
	return out
}

// Validate checks that every node in the tree carries a tag.
func Validate(nodes []Node) error {
	return validate(nodes, "")
}

func validate(nodes []Node, path string) error {
	for i, n := range nodes {
		at := path + "/" + strconv.Itoa(i)
		if strings.TrimSpace(n.Tag) == "" {
			return fmt.Errorf("node %s: tag is required", at)
		}
		for name := range n.Attrs {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("node %s: empty attribute name", at)
			}
		}
		if err := validate(n.Children, at); err != nil {
			return err
		}
	}
	return nil
}
