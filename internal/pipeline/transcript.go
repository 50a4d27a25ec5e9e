package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reelworks/reelify/internal/domain"
	"github.com/reelworks/reelify/internal/logger"
)

// writeTranscript serializes the retained segments as one line each,
// keyed by (username, source filename), overwriting any previous
// artifact at the same key. An empty segment list produces an empty
// file. When docx export is enabled, a .docx rendition is written next
// to the .txt; its failure is logged, not fatal.
func (p *implPipeline) writeTranscript(ctx context.Context, segments []domain.Segment, username, sourceName string, log logger.Logger) (string, error) {
	dir := p.cfg.Paths.TranscriptsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create transcripts dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", username, sourceName))

	var b strings.Builder
	for _, seg := range segments {
		fmt.Fprintf(&b, "[%.2fs - %.2fs]: %s\n", seg.Start, seg.End, seg.Text)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	log.Info(ctx, "Saved transcript: %s (%d segments)", path, len(segments))

	if p.cfg.Transcripts.Docx {
		docxPath := strings.TrimSuffix(path, ".txt") + ".docx"
		if err := writeTranscriptDocx(sourceName, segments, docxPath); err != nil {
			log.Warn(ctx, "Failed to write docx transcript %s: %v", docxPath, err)
		} else {
			log.Info(ctx, "Saved docx transcript: %s", docxPath)
		}
	}

	return path, nil
}
