// web/embed.go
package web

import "embed"

// Templates holds the server-rendered HTML views.
//
//go:embed templates
var Templates embed.FS

// Static holds the stylesheet and the small scripts the views load.
//
//go:embed static
var Static embed.FS
