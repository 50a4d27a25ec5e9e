package domain

// Segment is one time-stamped unit of transcribed speech.
// Start and End are offsets into the source video, in seconds.
type Segment struct {
	Start     float64
	End       float64
	Text      string
	Sentiment float64
}

// Duration returns the span of the segment in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// SegmentGroup is a contiguous run of important segments that renders
// into one reel. Index is 1-based.
type SegmentGroup struct {
	Index    int
	Segments []Segment
}

// ClipRange is a [Start, End] slice of the source video, in seconds,
// as actually rendered (after the per-clip cap).
type ClipRange struct {
	Start float64
	End   float64
}

// Reel is one rendered output video assembled from a segment group.
type Reel struct {
	Index    int
	Path     string
	Clips    []ClipRange
	Duration float64
}

// Stage identifies a pipeline state for progress and failure reporting.
type Stage string

const (
	StageAcquire      Stage = "acquire"
	StageExtractAudio Stage = "extract_audio"
	StageTranscribe   Stage = "transcribe"
	StageRender       Stage = "render"
	StageTranscript   Stage = "transcript"
)

// ProgressUpdate is one coarse milestone emitted while a run advances.
type ProgressUpdate struct {
	Percent int
	Status  string
}

// Outcome is the structured result of one pipeline run. FailedStage is
// empty when the run completed; Reels holds whatever renders succeeded
// (a failed group render does not fail the run).
type Outcome struct {
	RunID             string
	Summary           string
	TranscriptPath    string
	Reels             []Reel
	ReelsAttempted    int
	ImportantSegments int
	FailedStage       Stage
}
