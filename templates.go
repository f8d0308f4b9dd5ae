package formbind

import (
	"io/fs"

	"github.com/goliatone/go-formbind/pkg/presenters"
)

// EmbeddedTemplates exposes the built-in presenter templates so callers can
// copy or extend them and load the result with WithBaseDir.
func EmbeddedTemplates() fs.FS {
	return presenters.Templates()
}
