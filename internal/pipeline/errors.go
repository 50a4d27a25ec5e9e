package pipeline

import (
	"errors"
	"fmt"

	"github.com/reelworks/reelify/internal/domain"
)

var (
	// ErrNoVideoSource means the caller supplied neither an upload
	// buffer nor a URL. Raised before any directory is touched.
	ErrNoVideoSource = errors.New("no video source provided")

	// ErrAmbiguousVideoSource means the caller supplied both an upload
	// buffer and a URL.
	ErrAmbiguousVideoSource = errors.New("both upload and URL provided")

	// ErrNothingToTranscribe means transcription succeeded but produced
	// zero segments. Terminal, but distinct from a model failure.
	ErrNothingToTranscribe = errors.New("nothing to transcribe")

	// ErrNoValidClips means every segment of a group failed validation,
	// so no reel was rendered for it. Non-fatal to the overall run.
	ErrNoValidClips = errors.New("no valid clips in group")
)

// ExtractionError wraps a failed audio demux/transcode, including the
// no-audio-stream case.
type ExtractionError struct {
	VideoPath string
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract audio from %s: %v", e.VideoPath, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// StageError tags a fatal failure with the pipeline stage it occurred
// in. The orchestrator returns it to the caller instead of raw errors.
type StageError struct {
	Stage domain.Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage domain.Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
