package pipeline

import (
	"log"
	"os"
)

// Result is the final bundle handed to the caller. The caller owns the
// files behind AudioPath and VideoPath and must call Release on every exit
// path; nothing else deletes them.
type Result struct {
	CommentaryText  string
	AudioPath       string
	VideoPath       string
	DurationSeconds float64
	StatusNotes     []string
}

// Release deletes the result's files plus any extra paths, best effort.
func (r *Result) Release(extraPaths ...string) {
	paths := append([]string{r.AudioPath, r.VideoPath}, extraPaths...)
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: could not remove %s: %v", path, err)
		}
	}
}
