package sentiment

import (
	"strings"

	"github.com/reelworks/reelify/internal/domain"
)

// Filter scores each segment and retains those whose compound polarity
// is strictly greater than threshold, preserving original order. The
// returned segments carry their computed score.
func Filter(segments []domain.Segment, scorer Scorer, threshold float64) []domain.Segment {
	var important []domain.Segment
	for _, seg := range segments {
		score := scorer.Score(seg.Text)
		if score > threshold {
			seg.Sentiment = score
			important = append(important, seg)
		}
	}
	return important
}

// JoinText concatenates segment texts newline-joined in original
// order. This is the payload handed to the summarization service.
func JoinText(segments []domain.Segment) string {
	parts := make([]string, len(segments))
	for i, seg := range segments {
		parts[i] = seg.Text
	}
	return strings.Join(parts, "\n")
}
