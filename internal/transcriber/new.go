package transcriber

import (
	"github.com/reelworks/reelify/internal/config"
	"github.com/reelworks/reelify/internal/logger"
	"github.com/reelworks/reelify/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
	// The whisper model is not proven safe for concurrent invocations,
	// so admission is one transcription at a time.
	admission chan struct{}
}

// New creates a whisper.cpp-backed Transcriber. The model referenced
// by cfg is loaded by the whisper binary on each call; the handle here
// is the process-wide admission gate around it.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:       cfg,
		executor:  exec,
		logger:    log,
		admission: make(chan struct{}, 1),
	}
}
