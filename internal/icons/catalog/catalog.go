// Package catalog holds icon catalogs: read-only maps from canonical icon
// names to the ordered shape nodes that draw each icon.
//
// Catalogs travel as JSON objects mapping PascalCase names to arrays of
// [tag, attrs] or [tag, attrs, children] tuples.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/louisbranch/iconkit/internal/icons/name"
	"github.com/louisbranch/iconkit/internal/icons/node"
)

var (
	ErrTupleShape     = errors.New("node tuple must be [tag, attrs] or [tag, attrs, children]")
	ErrAttrValue      = errors.New("attribute value must be a string or number")
	ErrDuplicateIcon  = errors.New("duplicate canonical icon name")
	ErrEmptyIconName  = errors.New("icon name is required")
	ErrTrailingTokens = errors.New("unexpected data after catalog")
)

// Catalog maps canonical icon names to their shape nodes.
type Catalog map[string][]node.Node

// Names returns the catalog's icon names in sorted order.
func Names(c Catalog) []string {
	names := make([]string, 0, len(c))
	for n := range c {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Decode reads a JSON catalog. Names are canonicalized; two entries that
// canonicalize to the same name are rejected.
func Decode(r io.Reader) (Catalog, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw map[string][]tuple
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if dec.More() {
		return nil, ErrTrailingTokens
	}

	out := make(Catalog, len(raw))
	for rawName, tuples := range raw {
		canonical := name.Canonical(rawName)
		if canonical == "" {
			return nil, fmt.Errorf("catalog entry %q: %w", rawName, ErrEmptyIconName)
		}
		if _, ok := out[canonical]; ok {
			return nil, fmt.Errorf("catalog entry %q: %w: %s", rawName, ErrDuplicateIcon, canonical)
		}
		nodes := fromTuples(tuples)
		if err := node.Validate(nodes); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", rawName, err)
		}
		out[canonical] = nodes
	}
	return out, nil
}

// Encode writes c as a JSON catalog with names in sorted order.
func Encode(w io.Writer, c Catalog) error {
	raw := make(map[string][]tuple, len(c))
	for n, nodes := range c {
		raw[n] = toTuples(nodes)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}

// DecodeNodes parses a single JSON node list.
func DecodeNodes(data []byte) ([]node.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tuples []tuple
	if err := dec.Decode(&tuples); err != nil {
		return nil, fmt.Errorf("decode nodes: %w", err)
	}
	nodes := fromTuples(tuples)
	if err := node.Validate(nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

// EncodeNodes serializes a node list as a JSON tuple array.
func EncodeNodes(nodes []node.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(toTuples(nodes)); err != nil {
		return nil, fmt.Errorf("encode nodes: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// tuple is the wire form of one node.
type tuple struct {
	Tag      string
	Attrs    map[string]string
	Children []tuple
}

func (t tuple) MarshalJSON() ([]byte, error) {
	attrs := t.Attrs
	if attrs == nil {
		attrs = map[string]string{}
	}
	parts := []any{t.Tag, attrs}
	if len(t.Children) > 0 {
		parts = append(parts, t.Children)
	}
	return json.Marshal(parts)
}

func (t *tuple) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return ErrTupleShape
	}
	if len(parts) < 2 || len(parts) > 3 {
		return ErrTupleShape
	}
	if err := json.Unmarshal(parts[0], &t.Tag); err != nil {
		return fmt.Errorf("%w: tag must be a string", ErrTupleShape)
	}

	dec := json.NewDecoder(bytes.NewReader(parts[1]))
	dec.UseNumber()
	var attrs map[string]any
	if err := dec.Decode(&attrs); err != nil {
		return fmt.Errorf("%w: attrs must be an object", ErrTupleShape)
	}
	t.Attrs = make(map[string]string, len(attrs))
	for key, value := range attrs {
		switch v := value.(type) {
		case string:
			t.Attrs[key] = v
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return fmt.Errorf("attribute %q: %w", key, ErrAttrValue)
			}
			t.Attrs[key] = node.Number(f)
		default:
			return fmt.Errorf("attribute %q: %w", key, ErrAttrValue)
		}
	}

	if len(parts) == 3 {
		if err := json.Unmarshal(parts[2], &t.Children); err != nil {
			return err
		}
	}
	return nil
}

func fromTuples(tuples []tuple) []node.Node {
	if len(tuples) == 0 {
		return nil
	}
	nodes := make([]node.Node, len(tuples))
	for i, t := range tuples {
		nodes[i] = node.Node{
			Tag:      strings.TrimSpace(t.Tag),
			Children: fromTuples(t.Children),
		}
		if len(t.Attrs) > 0 {
			nodes[i].Attrs = t.Attrs
		}
	}
	return nodes
}

func toTuples(nodes []node.Node) []tuple {
	if len(nodes) == 0 {
		return nil
	}
	tuples := make([]tuple, len(nodes))
	for i, n := range nodes {
		tuples[i] = tuple{Tag: n.Tag, Attrs: n.Attrs, Children: toTuples(n.Children)}
	}
	return tuples
}
