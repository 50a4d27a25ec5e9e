package transcriber

import (
	"context"

	"github.com/reelworks/reelify/internal/domain"
)

// Transcriber converts an audio file into ordered, time-stamped
// segments for the requested spoken language. Implementations own the
// speech model for the process lifetime; construct one at startup and
// share it across runs.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) ([]domain.Segment, error)
}
