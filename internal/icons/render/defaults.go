package render

import (
	"fmt"
	"math"
	"strings"
)

// Baseline geometry of every icon. Catalog shapes are drawn in a 24x24 box.
const (
	baseSize        = 24
	baseStrokeWidth = 2
	baseColor       = "currentColor"
	svgNamespace    = "http://www.w3.org/2000/svg"
)

// Defaults is the application-wide default style. It fills every input a
// renderer leaves unset and is injected once at composition time.
type Defaults struct {
	Color               string  `env:"ICONKIT_DEFAULT_COLOR" envDefault:"currentColor"`
	Size                float64 `env:"ICONKIT_DEFAULT_SIZE" envDefault:"24"`
	StrokeWidth         float64 `env:"ICONKIT_DEFAULT_STROKE_WIDTH" envDefault:"2"`
	AbsoluteStrokeWidth bool    `env:"ICONKIT_DEFAULT_ABSOLUTE_STROKE_WIDTH" envDefault:"false"`
}

// DefaultStyle returns the built-in default style.
func DefaultStyle() Defaults {
	return Defaults{
		Color:       baseColor,
		Size:        baseSize,
		StrokeWidth: baseStrokeWidth,
	}
}

// Validate checks that d can be used to render.
func (d Defaults) Validate() error {
	if strings.TrimSpace(d.Color) == "" {
		return fmt.Errorf("default color is required")
	}
	if !isFinite(d.Size) || d.Size <= 0 {
		return fmt.Errorf("default size must be greater than zero, got %v", d.Size)
	}
	if !isFinite(d.StrokeWidth) || d.StrokeWidth < 0 {
		return fmt.Errorf("default stroke width must not be negative, got %v", d.StrokeWidth)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
