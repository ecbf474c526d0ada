package render

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/iconkit/internal/icons/provider"
	"golang.org/x/net/html"
)

// Component returns a templ component that writes the icon's markup. The
// icon is resolved when the component renders, so lookup and parse errors
// surface from Render.
func Component(reg *provider.Registry, defaults Defaults, in Inputs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		req, err := Resolve(reg, defaults, in)
		if err != nil {
			return err
		}
		return html.Render(w, Build(req))
	})
}

// Markup renders the icon to a string.
func Markup(reg *provider.Registry, defaults Defaults, in Inputs) (string, error) {
	var b strings.Builder
	if err := Component(reg, defaults, in).Render(context.Background(), &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
