package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reelworks/reelify/internal/logger"
)

// extractAudio demuxes the video's audio track into a 16kHz mono PCM
// WAV at audioPath, the format the whisper model decodes best. ffmpeg
// fails when the container has no audio stream, which surfaces here as
// an ExtractionError.
func (p *implPipeline) extractAudio(ctx context.Context, videoPath, audioPath string, log logger.Logger) error {
	if err := os.MkdirAll(filepath.Dir(audioPath), 0755); err != nil {
		return &ExtractionError{VideoPath: videoPath, Err: fmt.Errorf("create audio dir: %w", err)}
	}

	log.Info(ctx, "Extracting audio: %s -> %s", videoPath, audioPath)

	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return &ExtractionError{VideoPath: videoPath, Err: err}
	}

	return nil
}
