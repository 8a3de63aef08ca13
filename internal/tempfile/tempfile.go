// Package tempfile generates collision-free paths for per-request scratch
// files. Concurrent runs never share a path, so no locking is needed.
package tempfile

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// New returns a fresh path under the system temp directory. ext must
// include the leading dot.
func New(prefix, ext string) string {
	return filepath.Join(os.TempDir(), prefix+"_"+uuid.NewString()+ext)
}
