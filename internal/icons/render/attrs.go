package render

import (
	"math"
	"strings"

	"github.com/louisbranch/iconkit/internal/icons/name"
	"github.com/louisbranch/iconkit/internal/icons/node"
)

const (
	// ClassMarker is set on every rendered icon root.
	ClassMarker = "lucide"
	// classIconPrefix prefixes the per-icon class derived from its name.
	classIconPrefix = "lucide-"

	strokeWidthDecimals = 3
)

// rootAttrOrder is the emission order of the baseline root attributes.
var rootAttrOrder = []string{
	"xmlns",
	"width",
	"height",
	"viewBox",
	"fill",
	"stroke",
	"stroke-width",
	"stroke-linecap",
	"stroke-linejoin",
	"class",
}

func baselineAttrs() map[string]string {
	return map[string]string{
		"xmlns":           svgNamespace,
		"width":           node.Number(baseSize),
		"height":          node.Number(baseSize),
		"viewBox":         "0 0 24 24",
		"fill":            "none",
		"stroke":          baseColor,
		"stroke-width":    node.Number(baseStrokeWidth),
		"stroke-linecap":  "round",
		"stroke-linejoin": "round",
	}
}

// Attributes returns the root <svg> attributes for req: the baseline
// overridden by size, color and the effective stroke width.
func Attributes(req Request) map[string]string {
	attrs := baselineAttrs()
	attrs["width"] = node.Number(req.Size)
	attrs["height"] = node.Number(req.Size)
	attrs["stroke"] = req.Color
	attrs["stroke-width"] = StrokeWidth(req)
	return attrs
}

// StrokeWidth returns the serialized stroke width for req. In absolute mode
// the width is divided by the scale factor size/24 and rounded to three
// decimals, so 2 at size 48 becomes "1" and 2 at size 12 becomes "4".
// The divisor is the 24px box the shapes are drawn in; a configured
// Defaults.Size does not change it.
func StrokeWidth(req Request) string {
	if !req.AbsoluteStrokeWidth || req.Size <= 0 {
		return node.Number(req.StrokeWidth)
	}
	scaled := req.StrokeWidth / (req.Size / baseSize)
	return node.Number(roundTo(scaled, strokeWidthDecimals))
}

// Classes returns the root class list: the marker class, the per-icon class
// for named lookups, then the caller's classes. Duplicates are dropped.
func Classes(req Request) string {
	classes := []string{ClassMarker}
	if req.Name != "" {
		classes = append(classes, classIconPrefix+name.Kebab(req.Name))
	}
	classes = append(classes, strings.Fields(req.Class)...)

	seen := make(map[string]struct{}, len(classes))
	out := classes[:0]
	for _, c := range classes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return strings.Join(out, " ")
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
