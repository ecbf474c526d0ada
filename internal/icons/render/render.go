package render

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/louisbranch/iconkit/internal/icons/node"
	"github.com/louisbranch/iconkit/internal/icons/provider"
	"golang.org/x/net/html"
)

// ErrHostRequired reports a render without a host element.
var ErrHostRequired = errors.New("host element is required")

// Render resolves in, builds its <svg> tree and replaces every child of host
// with it. On error host is left as it was.
func Render(host *html.Node, reg *provider.Registry, defaults Defaults, in Inputs) error {
	if host == nil {
		return ErrHostRequired
	}
	req, err := Resolve(reg, defaults, in)
	if err != nil {
		return err
	}
	replaceChildren(host, Build(req))
	return nil
}

func replaceChildren(host, root *html.Node) {
	for child := host.FirstChild; child != nil; child = host.FirstChild {
		host.RemoveChild(child)
	}
	host.AppendChild(root)
}

// Icon keeps one host element in sync with its inputs. It is not safe for
// concurrent use; it owns the host's children.
type Icon struct {
	host     *html.Node
	registry *provider.Registry
	defaults Defaults

	// applied are the inputs of the last successful render.
	applied  Inputs
	rendered bool
}

// NewIcon binds an icon renderer to host.
func NewIcon(host *html.Node, reg *provider.Registry, defaults Defaults) (*Icon, error) {
	if host == nil {
		return nil, ErrHostRequired
	}
	if reg == nil {
		return nil, fmt.Errorf("provider registry is required")
	}
	if err := defaults.Validate(); err != nil {
		return nil, err
	}
	return &Icon{host: host, registry: reg, defaults: defaults}, nil
}

// Set applies new inputs. It renders when in differs from the inputs of the
// last successful render and reports whether it did. A failed render returns
// the error and keeps both the host and the previously applied inputs.
func (i *Icon) Set(in Inputs) (bool, error) {
	if i.rendered && inputsEqual(i.applied, in) {
		return false, nil
	}
	if err := Render(i.host, i.registry, i.defaults, in); err != nil {
		return false, err
	}
	in.Nodes = node.Clone(in.Nodes)
	if in.AbsoluteStrokeWidth != nil {
		in.AbsoluteStrokeWidth = Bool(*in.AbsoluteStrokeWidth)
	}
	i.applied = in
	i.rendered = true
	return true, nil
}

// Refresh re-renders the applied inputs unconditionally. Before the first
// successful Set there is nothing to render and it fails like an empty Set.
func (i *Icon) Refresh() error {
	return Render(i.host, i.registry, i.defaults, i.applied)
}

// Inputs returns the inputs of the last successful render. Its Nodes are a
// copy owned by the icon.
func (i *Icon) Inputs() Inputs {
	return i.applied
}

// Host returns the element the icon renders into.
func (i *Icon) Host() *html.Node {
	return i.host
}

func inputsEqual(a, b Inputs) bool {
	if a.Name != b.Name || a.Color != b.Color || a.Size != b.Size ||
		a.StrokeWidth != b.StrokeWidth || a.Class != b.Class {
		return false
	}
	if (a.AbsoluteStrokeWidth == nil) != (b.AbsoluteStrokeWidth == nil) {
		return false
	}
	if a.AbsoluteStrokeWidth != nil && *a.AbsoluteStrokeWidth != *b.AbsoluteStrokeWidth {
		return false
	}
	return reflect.DeepEqual(a.Nodes, b.Nodes)
}
