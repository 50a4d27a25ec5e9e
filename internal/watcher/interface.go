package watcher

import "context"

// Watcher monitors an inbox directory and dispatches new video files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one newly dropped video file.
type Handler func(ctx context.Context, filePath string) error
