package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/iconkit/internal/icons/catalog"
	"github.com/louisbranch/iconkit/internal/icons/node"
	"github.com/louisbranch/iconkit/internal/icons/provider"
	apperrors "github.com/louisbranch/iconkit/internal/platform/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const xMarkup = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="lucide lucide-x"><path d="M18 6 6 18"></path><path d="m6 6 12 12"></path></svg>`

func testRegistry(t *testing.T) *provider.Registry {
	t.Helper()
	reg, err := provider.NewRegistry(provider.NewCatalogProvider(catalog.Catalog{
		"X": {
			node.New("path", "d", "M18 6 6 18", "key", "1bl5f8"),
			node.New("path", "d", "m6 6 12 12", "key", "d8bk6v"),
		},
		"ArrowDown": {
			node.New("path", "d", "M12 5v14"),
			node.New("path", "d", "m19 12-7 7-7-7"),
		},
		"CircleDot": {
			node.New("circle", "cx", "12", "cy", "12", "r", "10"),
			node.New("g", "opacity", "0.5").WithChildren(
				node.New("circle", "r", "1", "cx", "12", "cy", "12"),
			),
		},
	}))
	if err != nil {
		t.Fatalf("NewRegistry() = %v", err)
	}
	return reg
}

func newHost() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
}

func renderHTML(t *testing.T, n *html.Node) string {
	t.Helper()
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		t.Fatalf("html.Render() = %v", err)
	}
	return b.String()
}

func childCount(n *html.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestMarkupDefaults(t *testing.T) {
	got, err := Markup(testRegistry(t), DefaultStyle(), Inputs{Name: "x"})
	if err != nil {
		t.Fatalf("Markup() = %v", err)
	}
	if got != xMarkup {
		t.Fatalf("Markup() =\n%s\nwant\n%s", got, xMarkup)
	}
}

func TestAttributesOverrideBaseline(t *testing.T) {
	req, err := Resolve(testRegistry(t), DefaultStyle(), Inputs{
		Name:        "x",
		Color:       "red",
		Size:        "32",
		StrokeWidth: "1.5",
	})
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	want := map[string]string{
		"xmlns":           "http://www.w3.org/2000/svg",
		"width":           "32",
		"height":          "32",
		"viewBox":         "0 0 24 24",
		"fill":            "none",
		"stroke":          "red",
		"stroke-width":    "1.5",
		"stroke-linecap":  "round",
		"stroke-linejoin": "round",
	}
	if diff := cmp.Diff(want, Attributes(req)); diff != "" {
		t.Fatalf("Attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestAbsoluteStrokeWidth(t *testing.T) {
	tests := []struct {
		size        string
		strokeWidth string
		absolute    bool
		want        string
	}{
		{size: "48", strokeWidth: "2", absolute: true, want: "1"},
		{size: "12", strokeWidth: "2", absolute: true, want: "4"},
		{size: "36", strokeWidth: "2", absolute: true, want: "1.333"},
		{size: "24", strokeWidth: "2", absolute: true, want: "2"},
		{size: "48", strokeWidth: "2", absolute: false, want: "2"},
		{size: "7", strokeWidth: "1", absolute: true, want: "3.429"},
	}
	for _, tt := range tests {
		req, err := Resolve(testRegistry(t), DefaultStyle(), Inputs{
			Name:                "x",
			Size:                tt.size,
			StrokeWidth:         tt.strokeWidth,
			AbsoluteStrokeWidth: Bool(tt.absolute),
		})
		if err != nil {
			t.Fatalf("Resolve() = %v", err)
		}
		if got := Attributes(req)["stroke-width"]; got != tt.want {
			t.Errorf("size=%s stroke=%s absolute=%v: stroke-width = %q, want %q",
				tt.size, tt.strokeWidth, tt.absolute, got, tt.want)
		}
	}
}

func TestAbsoluteStrokeWidthFromDefaults(t *testing.T) {
	defaults := DefaultStyle()
	defaults.AbsoluteStrokeWidth = true
	req, err := Resolve(testRegistry(t), defaults, Inputs{Name: "x", Size: Px(48)})
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	if got := StrokeWidth(req); got != "1" {
		t.Fatalf("StrokeWidth() = %q, want 1", got)
	}
}

func TestAbsoluteStrokeWidthIgnoresConfiguredDefaultSize(t *testing.T) {
	defaults := DefaultStyle()
	defaults.Size = 48
	defaults.AbsoluteStrokeWidth = true

	req, err := Resolve(testRegistry(t), defaults, Inputs{Name: "x"})
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	if got := StrokeWidth(req); got != "1" {
		t.Fatalf("StrokeWidth() at default size 48 = %q, want 1", got)
	}

	req, err = Resolve(testRegistry(t), defaults, Inputs{Name: "x", Size: "24"})
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	if got := StrokeWidth(req); got != "2" {
		t.Fatalf("StrokeWidth() at size 24 = %q, want 2", got)
	}
}

func TestClasses(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{"named", Request{Name: "ArrowDown"}, "lucide lucide-arrow-down"},
		{"named with extras", Request{Name: "X", Class: "  big\tred "}, "lucide lucide-x big red"},
		{"inline", Request{Class: "custom"}, "lucide custom"},
		{"duplicates", Request{Name: "X", Class: "lucide lucide-x red red"}, "lucide lucide-x red"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classes(tt.req); got != tt.want {
				t.Fatalf("Classes() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		want apperrors.Code
	}{
		{"no source", Inputs{Color: "red"}, apperrors.CodeIconSourceMissing},
		{"blank name", Inputs{Name: "   "}, apperrors.CodeIconSourceMissing},
		{"unknown icon", Inputs{Name: "NotAnIcon"}, apperrors.CodeIconNotFound},
		{"size not numeric", Inputs{Name: "x", Size: "abc"}, apperrors.CodeIconInvalidSize},
		{"size zero", Inputs{Name: "x", Size: "0"}, apperrors.CodeIconInvalidSize},
		{"size infinite", Inputs{Name: "x", Size: "Inf"}, apperrors.CodeIconInvalidSize},
		{"stroke width not numeric", Inputs{Name: "x", StrokeWidth: "thick"}, apperrors.CodeIconInvalidStrokeWidth},
		{"stroke width negative", Inputs{Name: "x", StrokeWidth: "-1"}, apperrors.CodeIconInvalidStrokeWidth},
		{"inline empty tag", Inputs{Nodes: []node.Node{{}}}, apperrors.CodeIconInvalidNodes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(testRegistry(t), DefaultStyle(), tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperrors.GetCode(err); got != tt.want {
				t.Fatalf("code = %q, want %q (err %v)", got, tt.want, err)
			}
		})
	}
}

func TestResolveNotFoundNamesIcon(t *testing.T) {
	_, err := Resolve(testRegistry(t), DefaultStyle(), Inputs{Name: "NotAnIcon"})
	if err == nil || !strings.Contains(err.Error(), "NotAnIcon") {
		t.Fatalf("expected error naming the icon, got %v", err)
	}
	if !errors.Is(err, provider.ErrNotFound) {
		t.Fatalf("expected provider.ErrNotFound in chain, got %v", err)
	}
}

func TestResolveNumericStrings(t *testing.T) {
	req, err := Resolve(testRegistry(t), DefaultStyle(), Inputs{Name: "x", Size: " 48 ", StrokeWidth: "1.50"})
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	if req.Size != 48 || req.StrokeWidth != 1.5 {
		t.Fatalf("size, stroke = %v, %v; want 48, 1.5", req.Size, req.StrokeWidth)
	}
}

func TestResolveInlineNodesWinOverName(t *testing.T) {
	inline := []node.Node{node.New("rect", "width", "10", "height", "10")}
	req, err := Resolve(testRegistry(t), DefaultStyle(), Inputs{Name: "NotAnIcon", Nodes: inline})
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	if req.Name != "" {
		t.Fatalf("Name = %q, want empty for inline nodes", req.Name)
	}
	if diff := cmp.Diff(inline, req.Nodes); diff != "" {
		t.Fatalf("Nodes mismatch (-want +got):\n%s", diff)
	}
	if got := Classes(req); got != ClassMarker {
		t.Fatalf("Classes() = %q, want %q", got, ClassMarker)
	}
}

func TestResolveEquivalentSpellings(t *testing.T) {
	reg := testRegistry(t)
	var first string
	for i, spelling := range []string{"arrow-down", "arrow_down", "ArrowDown"} {
		got, err := Markup(reg, DefaultStyle(), Inputs{Name: spelling})
		if err != nil {
			t.Fatalf("Markup(%q) = %v", spelling, err)
		}
		if i == 0 {
			first = got
			continue
		}
		if got != first {
			t.Fatalf("Markup(%q) differs from Markup(arrow-down)", spelling)
		}
	}
}

func TestBuildKeepsOrderAndNesting(t *testing.T) {
	req, err := Resolve(testRegistry(t), DefaultStyle(), Inputs{Name: "circle-dot"})
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	root := Build(req)
	if root.Data != "svg" || root.Parent != nil {
		t.Fatalf("expected detached svg root, got %q", root.Data)
	}
	first := root.FirstChild
	if first == nil || first.Data != "circle" || attr(first, "r") != "10" {
		t.Fatalf("first child = %+v, want circle r=10", first)
	}
	group := first.NextSibling
	if group == nil || group.Data != "g" || group.NextSibling != nil {
		t.Fatalf("second child = %+v, want final g", group)
	}
	inner := group.FirstChild
	if inner == nil || inner.Data != "circle" || attr(inner, "r") != "1" {
		t.Fatalf("nested child = %+v, want circle r=1", inner)
	}
	if got := renderHTML(t, inner); got != `<circle cx="12" cy="12" r="1"></circle>` {
		t.Fatalf("nested markup = %s", got)
	}
}

func TestBuildDropsKeyAttribute(t *testing.T) {
	req, err := Resolve(testRegistry(t), DefaultStyle(), Inputs{Name: "x"})
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	for c := Build(req).FirstChild; c != nil; c = c.NextSibling {
		for _, a := range c.Attr {
			if a.Key == node.KeyAttr {
				t.Fatalf("%s carries bookkeeping key attribute", c.Data)
			}
		}
	}
}

func TestBuildDoesNotMutateCatalogNodes(t *testing.T) {
	reg := testRegistry(t)
	before, err := reg.Resolve("x")
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	snapshot := node.Clone(before)
	if _, err := Markup(reg, DefaultStyle(), Inputs{Name: "x", Color: "blue", Class: "a"}); err != nil {
		t.Fatalf("Markup() = %v", err)
	}
	after, _ := reg.Resolve("x")
	if diff := cmp.Diff(snapshot, after); diff != "" {
		t.Fatalf("catalog nodes changed (-want +got):\n%s", diff)
	}
}

func TestRenderReplacesHostChildren(t *testing.T) {
	reg := testRegistry(t)
	host := newHost()
	host.AppendChild(&html.Node{Type: html.TextNode, Data: "loading"})

	if err := Render(host, reg, DefaultStyle(), Inputs{Name: "x"}); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if childCount(host) != 1 || host.FirstChild.Data != "svg" {
		t.Fatalf("host children = %d, want single svg", childCount(host))
	}

	if err := Render(host, reg, DefaultStyle(), Inputs{Name: "arrow-down"}); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if childCount(host) != 1 {
		t.Fatalf("host children = %d after re-render, want 1", childCount(host))
	}
	if got := attr(host.FirstChild, "class"); got != "lucide lucide-arrow-down" {
		t.Fatalf("class = %q, want arrow-down icon", got)
	}
}

func TestRenderFailureLeavesHostUntouched(t *testing.T) {
	reg := testRegistry(t)
	host := newHost()
	if err := Render(host, reg, DefaultStyle(), Inputs{Name: "x"}); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	before := renderHTML(t, host)
	previous := host.FirstChild

	for _, in := range []Inputs{
		{Name: "NotAnIcon"},
		{Name: "x", Size: "abc"},
		{},
	} {
		if err := Render(host, reg, DefaultStyle(), in); err == nil {
			t.Fatalf("Render(%+v) succeeded, want error", in)
		}
		if host.FirstChild != previous || renderHTML(t, host) != before {
			t.Fatalf("host changed after failed Render(%+v)", in)
		}
	}
}

func TestRenderRequiresHost(t *testing.T) {
	if err := Render(nil, testRegistry(t), DefaultStyle(), Inputs{Name: "x"}); !errors.Is(err, ErrHostRequired) {
		t.Fatalf("Render(nil) = %v, want %v", err, ErrHostRequired)
	}
}

func TestRenderWithoutRegistryReportsNotFound(t *testing.T) {
	err := Render(newHost(), nil, DefaultStyle(), Inputs{Name: "x"})
	if got := apperrors.GetCode(err); got != apperrors.CodeIconNotFound {
		t.Fatalf("code = %q, want %q", got, apperrors.CodeIconNotFound)
	}
}
