package pipeline

import "github.com/reelworks/reelify/internal/domain"

// groupSegments partitions the important segments into k contiguous
// groups of equal size n = len/k. Fewer than 3 important segments
// produce zero groups (no reels are attempted). When len is not
// divisible by k, the tail segments beyond k*n are dropped, not
// appended to the last group.
func groupSegments(segments []domain.Segment, k int) []domain.SegmentGroup {
	if k <= 0 || len(segments) < 3 {
		return nil
	}

	n := len(segments) / k
	if n == 0 {
		return nil
	}

	groups := make([]domain.SegmentGroup, 0, k)
	for i := 0; i < k; i++ {
		groups = append(groups, domain.SegmentGroup{
			Index:    i + 1,
			Segments: segments[i*n : (i+1)*n],
		})
	}
	return groups
}
