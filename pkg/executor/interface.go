package executor

import "context"

// Executor runs external tools (ffmpeg, ffprobe, yt-dlp, whisper).
// Implementations return captured stdout; stderr is folded into the
// error on failure. Injected everywhere so tests can fake the tools.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
}
