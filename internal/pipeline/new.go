package pipeline

import (
	"github.com/reelworks/reelify/internal/config"
	"github.com/reelworks/reelify/internal/logger"
	"github.com/reelworks/reelify/internal/media"
	"github.com/reelworks/reelify/internal/sentiment"
	"github.com/reelworks/reelify/internal/summarizer"
	"github.com/reelworks/reelify/internal/transcriber"
	"github.com/reelworks/reelify/pkg/executor"
)

type implPipeline struct {
	cfg         *config.Config
	executor    executor.Executor
	acquirer    media.Acquirer
	transcriber transcriber.Transcriber
	scorer      sentiment.Scorer
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New creates a Pipeline. The transcriber and scorer are expected to
// be process-wide singletons constructed once at startup; the pipeline
// only borrows them.
func New(
	cfg *config.Config,
	exec executor.Executor,
	acq media.Acquirer,
	tr transcriber.Transcriber,
	scorer sentiment.Scorer,
	sum summarizer.Summarizer,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		executor:    exec,
		acquirer:    acq,
		transcriber: tr,
		scorer:      scorer,
		summarizer:  sum,
		logger:      log,
	}
}
