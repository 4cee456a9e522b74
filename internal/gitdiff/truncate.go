package gitdiff

// Size budget for patch text sent to the model. Diffs often carry their most
// important changes near the end, so truncation keeps the tail as well as
// the head.
const (
	MaxDiffChars = 30000
	TailChars    = 5000
)

// TruncationMarker separates the retained head and tail of an oversized diff.
const TruncationMarker = "\n\n... [diff truncated to save context] ...\n\n"

// Truncate bounds text to maxChars, keeping tailChars from the end when the
// budget is exceeded. Cuts are exact character counts, not line-aligned.
func Truncate(text string, maxChars, tailChars int) string {
	if len(text) <= maxChars {
		return text
	}
	head := maxChars - tailChars
	if head < 0 {
		head = 0
	}
	if tailChars > len(text) {
		tailChars = len(text)
	}
	return text[:head] + TruncationMarker + text[len(text)-tailChars:]
}
