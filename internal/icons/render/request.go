package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/iconkit/internal/icons/name"
	"github.com/louisbranch/iconkit/internal/icons/node"
	"github.com/louisbranch/iconkit/internal/icons/provider"
	apperrors "github.com/louisbranch/iconkit/internal/platform/errors"
)

// Inputs are the declarative inputs of one icon. Zero values mean unset and
// fall back to Defaults. Exactly one of Name or Nodes should be set; when both
// are, Nodes wins.
type Inputs struct {
	// Name is the requested icon in any spelling Canonical accepts.
	Name string
	// Nodes is an inline shape list that bypasses the registry.
	Nodes []node.Node

	Color string
	// Size and StrokeWidth accept numeric strings, see Px.
	Size        string
	StrokeWidth string
	// AbsoluteStrokeWidth keeps the visual stroke thickness constant across
	// sizes when true.
	AbsoluteStrokeWidth *bool
	// Class holds extra whitespace-separated CSS classes for the root.
	Class string
}

// Px formats a number for the Size and StrokeWidth inputs.
func Px(v float64) string {
	return node.Number(v)
}

// Bool returns a pointer to v for the AbsoluteStrokeWidth input.
func Bool(v bool) *bool {
	return &v
}

// Request is the effective render request for one cycle: the inputs with
// defaults applied and the icon resolved.
type Request struct {
	// Name is the canonical icon name, empty for inline nodes.
	Name                string
	Nodes               []node.Node
	Color               string
	Size                float64
	StrokeWidth         float64
	AbsoluteStrokeWidth bool
	Class               string
}

// Resolve computes the effective request for in. It fails when neither a
// name nor inline nodes are given, when size or stroke width do not parse,
// and when no registered provider has the named icon.
func Resolve(reg *provider.Registry, defaults Defaults, in Inputs) (Request, error) {
	requested := strings.TrimSpace(in.Name)
	if in.Nodes == nil && requested == "" {
		return Request{}, apperrors.New(apperrors.CodeIconSourceMissing, "icon name or inline nodes are required")
	}

	req := Request{
		Color:               defaults.Color,
		Size:                defaults.Size,
		StrokeWidth:         defaults.StrokeWidth,
		AbsoluteStrokeWidth: defaults.AbsoluteStrokeWidth,
		Class:               in.Class,
	}
	if color := strings.TrimSpace(in.Color); color != "" {
		req.Color = color
	}
	if in.AbsoluteStrokeWidth != nil {
		req.AbsoluteStrokeWidth = *in.AbsoluteStrokeWidth
	}

	var err error
	if strings.TrimSpace(in.Size) != "" {
		req.Size, err = parseNumber(in.Size)
		if err != nil || req.Size <= 0 {
			return Request{}, apperrors.WrapWithMetadata(
				apperrors.CodeIconInvalidSize,
				fmt.Sprintf("invalid icon size %q", in.Size),
				map[string]string{"Value": in.Size},
				err,
			)
		}
	}
	if strings.TrimSpace(in.StrokeWidth) != "" {
		req.StrokeWidth, err = parseNumber(in.StrokeWidth)
		if err != nil || req.StrokeWidth < 0 {
			return Request{}, apperrors.WrapWithMetadata(
				apperrors.CodeIconInvalidStrokeWidth,
				fmt.Sprintf("invalid icon stroke width %q", in.StrokeWidth),
				map[string]string{"Value": in.StrokeWidth},
				err,
			)
		}
	}

	if in.Nodes != nil {
		if err := node.Validate(in.Nodes); err != nil {
			return Request{}, apperrors.Wrap(apperrors.CodeIconInvalidNodes, "invalid inline icon nodes", err)
		}
		req.Nodes = in.Nodes
		return req, nil
	}

	nodes, err := reg.Resolve(requested)
	if err != nil {
		return Request{}, err
	}
	req.Name = name.Canonical(requested)
	req.Nodes = nodes
	return req, nil
}

func parseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("%q is not a finite number", raw)
	}
	return v, nil
}
