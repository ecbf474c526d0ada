// Package errors provides structured error handling for icon resolution and
// rendering.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Render configuration errors
	CodeIconSourceMissing Code = "ICON_SOURCE_MISSING"
	CodeIconInvalidNodes  Code = "ICON_INVALID_NODES"

	// Lookup errors
	CodeIconNotFound Code = "ICON_NOT_FOUND"

	// Parse errors
	CodeIconInvalidSize        Code = "ICON_INVALID_SIZE"
	CodeIconInvalidStrokeWidth Code = "ICON_INVALID_STROKE_WIDTH"

	// Catalog errors
	CodeCatalogInvalid Code = "CATALOG_INVALID"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - caller supplied unusable inputs
	case CodeIconSourceMissing,
		CodeIconInvalidNodes,
		CodeIconInvalidSize,
		CodeIconInvalidStrokeWidth,
		CodeCatalogInvalid:
		return http.StatusBadRequest

	case CodeIconNotFound:
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
