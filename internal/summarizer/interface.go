package summarizer

import "context"

// Summarizer turns the retained transcript text into a short
// motivational summary. The pipeline treats the response as an opaque
// string and a failure as non-fatal.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
