package pipeline

import (
	"context"
	"os"

	"github.com/reelworks/reelify/internal/logger"
)

// runArtifacts tracks the temporary inputs of one run. Both are
// removed exactly once at end-of-run, whichever stage the run reached.
type runArtifacts struct {
	videoPath string
	audioPath string
}

func (p *implPipeline) cleanupRun(ctx context.Context, run *runArtifacts, log logger.Logger) {
	for _, path := range []string{run.audioPath, run.videoPath} {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil {
			if !os.IsNotExist(err) {
				log.Warn(ctx, "Failed to remove temp file %s: %v", path, err)
			}
			continue
		}
		log.Debug(ctx, "Removed temp file: %s", path)
	}
}
