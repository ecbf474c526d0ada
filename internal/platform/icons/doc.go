// Package icons defines core icon identifiers shared across the platform.
//
// The catalog maps stable icon identifiers to human-readable labels so that
// callers can communicate intent without dictating presentation. Each id is
// drawn with a Lucide icon; AliasProvider exposes the ids as icon names so a
// template can request "document" and render "book-open".
package icons
