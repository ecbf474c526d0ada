// Package lucide vendors a subset of the Lucide icon set (https://lucide.dev,
// ISC License) as an embedded catalog.
package lucide

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/louisbranch/iconkit/internal/icons/catalog"
)

//go:embed icons.json
var iconsJSON []byte

var load = sync.OnceValue(func() catalog.Catalog {
	c, err := catalog.Decode(bytes.NewReader(iconsJSON))
	if err != nil {
		panic("lucide: failed to decode embedded icons: " + err.Error())
	}
	return c
})

// Catalog returns the embedded Lucide catalog. The result is shared and must
// not be modified.
func Catalog() catalog.Catalog {
	return load()
}
