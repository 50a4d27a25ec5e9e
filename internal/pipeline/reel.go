package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reelworks/reelify/internal/domain"
	"github.com/reelworks/reelify/internal/logger"
	"github.com/reelworks/reelify/internal/media"
)

// renderReel extracts each valid segment of the group as a sub-clip,
// capped per clip, concatenates the clips in original order and
// encodes the result as uploads/reels/<username>_reel_<index>.mp4.
// Segments failing bounds validation are skipped with a warning; a
// group with zero valid clips fails with ErrNoValidClips and writes
// nothing.
func (p *implPipeline) renderReel(ctx context.Context, group domain.SegmentGroup, src *media.Source, username string, log logger.Logger) (*domain.Reel, error) {
	clips := p.collectClips(ctx, group, src.Duration, log)
	if len(clips) == 0 {
		return nil, fmt.Errorf("reel %d: %w", group.Index, ErrNoValidClips)
	}

	scratch, err := os.MkdirTemp(p.cfg.Paths.Temp, fmt.Sprintf("reel-%d-*", group.Index))
	if err != nil {
		return nil, fmt.Errorf("reel %d: create scratch dir: %w", group.Index, err)
	}
	defer os.RemoveAll(scratch)

	var list strings.Builder
	for i, clip := range clips {
		clipName := fmt.Sprintf("clip_%03d.mp4", i)
		if err := p.extractClip(ctx, src.Path, filepath.Join(scratch, clipName), clip); err != nil {
			return nil, fmt.Errorf("reel %d: %w", group.Index, err)
		}
		fmt.Fprintf(&list, "file '%s'\n", clipName)
	}

	listPath := filepath.Join(scratch, "clips.txt")
	if err := os.WriteFile(listPath, []byte(list.String()), 0644); err != nil {
		return nil, fmt.Errorf("reel %d: write concat list: %w", group.Index, err)
	}

	reelsDir := p.cfg.Paths.ReelsDir()
	if err := os.MkdirAll(reelsDir, 0755); err != nil {
		return nil, fmt.Errorf("reel %d: create reels dir: %w", group.Index, err)
	}

	outPath := filepath.Join(reelsDir, fmt.Sprintf("%s_reel_%d.mp4", username, group.Index))
	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return nil, fmt.Errorf("reel %d: resolve output path: %w", group.Index, err)
	}

	// Clips were re-encoded during extraction, so concatenation is a
	// pure stream copy.
	_, err = p.executor.ExecuteInDir(ctx, scratch, "ffmpeg",
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", "clips.txt",
		"-c", "copy",
		absOut,
	)
	if err != nil {
		return nil, fmt.Errorf("reel %d: concat: %w", group.Index, err)
	}

	var total float64
	for _, clip := range clips {
		total += clip.End - clip.Start
	}

	log.Info(ctx, "Rendered reel %d: %s (%d clips, %.2fs)", group.Index, outPath, len(clips), total)

	return &domain.Reel{
		Index:    group.Index,
		Path:     outPath,
		Clips:    clips,
		Duration: total,
	}, nil
}

// collectClips validates segment bounds against the source duration
// and applies the per-clip duration cap.
func (p *implPipeline) collectClips(ctx context.Context, group domain.SegmentGroup, sourceDuration float64, log logger.Logger) []domain.ClipRange {
	maxClip := p.cfg.Reels.MaxClipSeconds

	var clips []domain.ClipRange
	for _, seg := range group.Segments {
		valid := seg.Start >= 0 && seg.Start < sourceDuration &&
			seg.End > 0 && seg.End <= sourceDuration &&
			seg.Start < seg.End
		if !valid {
			log.Warn(ctx, "Reel %d: skipping invalid segment [%.2fs - %.2fs] (source is %.2fs)",
				group.Index, seg.Start, seg.End, sourceDuration)
			continue
		}

		end := seg.End
		if end-seg.Start > maxClip {
			end = seg.Start + maxClip
		}
		clips = append(clips, domain.ClipRange{Start: seg.Start, End: end})
	}
	return clips
}

// extractClip re-encodes the [Start, End] range of the source into a
// standalone clip file.
func (p *implPipeline) extractClip(ctx context.Context, sourcePath, clipPath string, clip domain.ClipRange) error {
	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		return fmt.Errorf("resolve source path: %w", err)
	}

	args := []string{
		"-y",
		"-ss", fmt.Sprintf("%.3f", clip.Start),
		"-i", absSource,
		"-t", fmt.Sprintf("%.3f", clip.End-clip.Start),
		"-c:v", p.cfg.FFmpeg.VideoCodec,
		"-preset", p.cfg.FFmpeg.Preset,
		"-c:a", p.cfg.FFmpeg.AudioCodec,
		clipPath,
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("extract clip [%.2fs - %.2fs]: %w", clip.Start, clip.End, err)
	}
	return nil
}
