// Package notes defines the stable status-note identifiers recorded when a
// run degrades without failing. Presentation layers map them to labels.
package notes

const (
	FallbackVoice    = "fallback-voice-used"
	AudioTrimmed     = "audio-trimmed"
	MockCommentary   = "mock-commentary-used"
	PlaceholderAudio = "placeholder-audio-used"
)

// Dedupe returns the given notes with duplicates removed, preserving the
// first occurrence of each.
func Dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
