package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/reelworks/reelify/internal/domain"
	"github.com/reelworks/reelify/internal/media"
	"github.com/reelworks/reelify/internal/sentiment"
)

// Process runs one end-to-end pipeline invocation:
// acquire -> extract audio -> transcribe -> filter -> summarize,
// then group/render and transcript writing, then cleanup. A fatal
// failure at any stage short-circuits straight to cleanup; the
// temporary video and audio files are removed exactly once per run
// regardless of where the run stopped.
func (p *implPipeline) Process(ctx context.Context, req Request) (*domain.Outcome, error) {
	runID := uuid.NewString()
	log := p.logger.WithField("run_id", runID)
	started := time.Now()

	out := &domain.Outcome{RunID: runID}
	progress := newReporter(req.Progress, log)

	// Precondition check happens before any directory is touched or
	// any cost is incurred.
	hasUpload := len(req.Upload) > 0
	hasURL := req.URL != ""
	if !hasUpload && !hasURL {
		out.FailedStage = domain.StageAcquire
		return out, stageErr(domain.StageAcquire, ErrNoVideoSource)
	}
	if hasUpload && hasURL {
		out.FailedStage = domain.StageAcquire
		return out, stageErr(domain.StageAcquire, ErrAmbiguousVideoSource)
	}

	progress.report(ctx, 0, "starting")

	var src *media.Source
	var err error
	if hasURL {
		src, err = p.acquirer.FromURL(ctx, req.URL, req.Username)
	} else {
		src, err = p.acquirer.FromUpload(ctx, req.Upload)
	}
	if err != nil {
		out.FailedStage = domain.StageAcquire
		return out, stageErr(domain.StageAcquire, err)
	}

	run := &runArtifacts{videoPath: src.Path}
	defer p.cleanupRun(ctx, run, log)

	sourceName := filepath.Base(src.Path)
	log.Info(ctx, "Processing %s (%.2fs, language=%s, user=%s)", sourceName, src.Duration, req.Language, req.Username)

	if err := ctx.Err(); err != nil {
		out.FailedStage = domain.StageExtractAudio
		return out, stageErr(domain.StageExtractAudio, err)
	}

	audioPath := filepath.Join(p.cfg.Paths.AudioDir(), fmt.Sprintf("%s_%s.wav", req.Username, sourceName))
	if err := p.extractAudio(ctx, src.Path, audioPath, log); err != nil {
		out.FailedStage = domain.StageExtractAudio
		return out, stageErr(domain.StageExtractAudio, err)
	}
	run.audioPath = audioPath
	progress.report(ctx, 20, "audio extracted")

	if err := ctx.Err(); err != nil {
		out.FailedStage = domain.StageTranscribe
		return out, stageErr(domain.StageTranscribe, err)
	}

	segments, err := p.transcriber.Transcribe(ctx, audioPath, req.Language)
	if err != nil {
		out.FailedStage = domain.StageTranscribe
		return out, stageErr(domain.StageTranscribe, err)
	}
	if len(segments) == 0 {
		out.FailedStage = domain.StageTranscribe
		return out, stageErr(domain.StageTranscribe, ErrNothingToTranscribe)
	}
	progress.report(ctx, 40, fmt.Sprintf("transcribed %d segments", len(segments)))

	important := sentiment.Filter(segments, p.scorer, p.cfg.Sentiment.Threshold)
	out.ImportantSegments = len(important)
	log.Info(ctx, "Sentiment filter retained %d of %d segments", len(important), len(segments))
	progress.report(ctx, 60, "sentiment analyzed")

	if blob := sentiment.JoinText(important); blob != "" {
		summary, err := p.summarizer.Summarize(ctx, blob)
		if err != nil {
			// User-visible but not pipeline-fatal.
			log.Warn(ctx, "Summarization failed: %v", err)
		} else {
			out.Summary = summary
		}
	}
	progress.report(ctx, 80, "summary ready")

	if err := ctx.Err(); err != nil {
		out.FailedStage = domain.StageRender
		return out, stageErr(domain.StageRender, err)
	}

	// Group renders and the transcript write are independent once the
	// filtered list exists. Renders share nothing mutable: each shells
	// out to its own ffmpeg processes and only reads the source file.
	groups := groupSegments(important, p.cfg.Reels.Count)
	out.ReelsAttempted = len(groups)

	reels := make([]*domain.Reel, len(groups))
	renderErrs := make([]error, len(groups))
	var wg sync.WaitGroup
	for i, group := range groups {
		wg.Add(1)
		go func(i int, group domain.SegmentGroup) {
			defer wg.Done()
			reels[i], renderErrs[i] = p.renderReel(ctx, group, src, req.Username, log)
		}(i, group)
	}

	transcriptPath, transcriptErr := p.writeTranscript(ctx, important, req.Username, sourceName, log)

	wg.Wait()
	for i, err := range renderErrs {
		if err != nil {
			log.Warn(ctx, "Reel %d not produced: %v", groups[i].Index, err)
			continue
		}
		out.Reels = append(out.Reels, *reels[i])
	}
	if len(groups) > 0 {
		log.Info(ctx, "Produced %d of %d reels", len(out.Reels), len(groups))
	}

	if transcriptErr != nil {
		out.FailedStage = domain.StageTranscript
		return out, stageErr(domain.StageTranscript, transcriptErr)
	}
	out.TranscriptPath = transcriptPath

	progress.report(ctx, 100, "done")
	log.Info(ctx, "Pipeline run finished in %s", time.Since(started).Round(time.Millisecond))
	return out, nil
}
