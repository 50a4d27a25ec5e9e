package media

import "context"

// Source is a locally readable video file ready for processing.
// Duration is the container duration in seconds, probed at acquisition
// so later stages can validate segment bounds without reopening the
// file.
type Source struct {
	Path     string
	Duration float64
}

// Acquirer turns either an uploaded byte buffer or a remote URL into a
// local Source.
type Acquirer interface {
	FromUpload(ctx context.Context, data []byte) (*Source, error)
	FromURL(ctx context.Context, url, username string) (*Source, error)
}
