package pipeline

import (
	"context"

	"github.com/reelworks/reelify/internal/domain"
)

// Request describes one pipeline invocation. Exactly one of Upload or
// URL must be set. Username is an opaque artifact key supplied by the
// caller and is never interpreted. Progress is optional; when set, the
// pipeline emits coarse milestones on it without ever blocking.
type Request struct {
	Username string
	Language string
	Upload   []byte
	URL      string
	Progress chan<- domain.ProgressUpdate
}

// Pipeline runs the full transcription-to-reel flow. Process always
// returns an Outcome describing what was produced; on failure the
// error is a *StageError and Outcome.FailedStage names the stage.
type Pipeline interface {
	Process(ctx context.Context, req Request) (*domain.Outcome, error)
}
