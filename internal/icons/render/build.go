package render

import (
	"sort"

	"github.com/louisbranch/iconkit/internal/icons/node"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const svgTag = "svg"

// Build materializes req into a detached <svg> element. Shapes are appended
// depth-first in declared order, since later siblings paint over earlier
// ones. The bookkeeping key attribute is dropped.
func Build(req Request) *html.Node {
	attrs := Attributes(req)
	attrs["class"] = Classes(req)

	root := element(svgTag)
	root.Attr = orderedAttrs(attrs, rootAttrOrder)
	appendNodes(root, req.Nodes)
	return root
}

func appendNodes(parent *html.Node, nodes []node.Node) {
	for _, n := range nodes {
		el := element(n.Tag)
		el.Attr = orderedAttrs(n.Attrs, nil)
		appendNodes(el, n.Children)
		parent.AppendChild(el)
	}
}

func element(tag string) *html.Node {
	return &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		DataAtom:  atom.Lookup([]byte(tag)),
		Namespace: svgTag,
	}
}

// orderedAttrs emits the keys listed in first (when present) and then the
// remaining keys sorted.
func orderedAttrs(attrs map[string]string, first []string) []html.Attribute {
	out := make([]html.Attribute, 0, len(attrs))
	used := make(map[string]struct{}, len(first))
	for _, key := range first {
		if value, ok := attrs[key]; ok {
			out = append(out, html.Attribute{Key: key, Val: value})
			used[key] = struct{}{}
		}
	}
	rest := make([]string, 0, len(attrs))
	for key := range attrs {
		if _, ok := used[key]; ok || key == node.KeyAttr {
			continue
		}
		rest = append(rest, key)
	}
	sort.Strings(rest)
	for _, key := range rest {
		out = append(out, html.Attribute{Key: key, Val: attrs[key]})
	}
	return out
}

// symbolAttrOrder lists the attributes a sprite symbol keeps from the root.
var symbolAttrOrder = []string{
	"id",
	"viewBox",
	"fill",
	"stroke",
	"stroke-width",
	"stroke-linecap",
	"stroke-linejoin",
}

// Symbol builds a <symbol> element for sprite sheets. It carries the drawing
// attributes of req under id; size and classes are left to the <use> site.
func Symbol(id string, req Request) *html.Node {
	attrs := Attributes(req)
	attrs["id"] = id
	kept := make(map[string]string, len(symbolAttrOrder))
	for _, key := range symbolAttrOrder {
		kept[key] = attrs[key]
	}

	symbol := element("symbol")
	symbol.Attr = orderedAttrs(kept, symbolAttrOrder)
	appendNodes(symbol, req.Nodes)
	return symbol
}
