package icons

import (
	"sort"
	"strings"

	"github.com/louisbranch/iconkit/internal/icons/provider"
	"github.com/louisbranch/iconkit/internal/icons/render"
	"golang.org/x/net/html"
)

// LucideSprite renders an SVG sprite holding one <symbol> per Lucide icon the
// core icon ids use, each addressable as LucideSymbolID(name).
func LucideSprite(reg *provider.Registry, defaults render.Defaults) (string, error) {
	sheet := &html.Node{
		Type:      html.ElementNode,
		Data:      "svg",
		Namespace: "svg",
		Attr: []html.Attribute{
			{Key: "xmlns", Val: "http://www.w3.org/2000/svg"},
			{Key: "style", Val: "display:none"},
			{Key: "aria-hidden", Val: "true"},
		},
	}
	for _, lucideName := range spriteNames() {
		req, err := render.Resolve(reg, defaults, render.Inputs{Name: lucideName})
		if err != nil {
			return "", err
		}
		sheet.AppendChild(render.Symbol(LucideSymbolID(lucideName), req))
	}

	var b strings.Builder
	if err := html.Render(&b, sheet); err != nil {
		return "", err
	}
	return b.String(), nil
}

func spriteNames() []string {
	seen := make(map[string]struct{}, len(lucideIconNames))
	names := make([]string, 0, len(lucideIconNames))
	for _, lucideName := range lucideIconNames {
		if _, ok := seen[lucideName]; ok {
			continue
		}
		seen[lucideName] = struct{}{}
		names = append(names, lucideName)
	}
	sort.Strings(names)
	return names
}
