package media

import (
	"github.com/reelworks/reelify/internal/config"
	"github.com/reelworks/reelify/internal/logger"
	"github.com/reelworks/reelify/pkg/executor"
)

type implAcquirer struct {
	paths    config.PathsConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates an Acquirer writing uploads into the temp directory and
// downloads into the per-user videos directory.
func New(paths config.PathsConfig, exec executor.Executor, log logger.Logger) Acquirer {
	return &implAcquirer{
		paths:    paths,
		executor: exec,
		logger:   log,
	}
}
