package media

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// DownloadError wraps a failed remote fetch (network failure,
// unsupported URL, unavailable formats).
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// FromUpload writes an uploaded video buffer verbatim to a new
// temporary file and probes its duration.
func (a *implAcquirer) FromUpload(ctx context.Context, data []byte) (*Source, error) {
	if err := os.MkdirAll(a.paths.Temp, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	tmp, err := os.CreateTemp(a.paths.Temp, "upload-*.mp4")
	if err != nil {
		return nil, fmt.Errorf("create temp video: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("write temp video: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("close temp video: %w", err)
	}

	a.logger.Info(ctx, "Saved uploaded video: %s (%d bytes)", tmp.Name(), len(data))

	duration, err := a.probeDuration(ctx, tmp.Name())
	if err != nil {
		os.Remove(tmp.Name())
		return nil, err
	}

	return &Source{Path: tmp.Name(), Duration: duration}, nil
}

// FromURL resolves a remote URL through yt-dlp, fetching the best
// available audio+video stream into the per-user videos directory. The
// output filename is derived from the remote title.
func (a *implAcquirer) FromURL(ctx context.Context, url, username string) (*Source, error) {
	videoDir := a.paths.VideosDir(username)
	if err := os.MkdirAll(videoDir, 0755); err != nil {
		return nil, fmt.Errorf("create video dir: %w", err)
	}

	a.logger.Info(ctx, "Downloading video from %s", url)

	// --print after_move:filepath makes yt-dlp report the final file
	// location on stdout once the merge finished.
	out, err := a.executor.ExecuteInDir(ctx, videoDir, "yt-dlp",
		"-f", "bestvideo+bestaudio/best",
		"-o", "%(title)s.%(ext)s",
		"--no-playlist",
		"--no-simulate",
		"--print", "after_move:filepath",
		"--quiet",
		url,
	)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}

	videoPath := lastLine(out)
	if videoPath == "" {
		return nil, &DownloadError{URL: url, Err: fmt.Errorf("yt-dlp reported no output file")}
	}

	a.logger.Info(ctx, "Downloaded video: %s", videoPath)

	duration, err := a.probeDuration(ctx, videoPath)
	if err != nil {
		os.Remove(videoPath)
		return nil, err
	}

	return &Source{Path: videoPath, Duration: duration}, nil
}

func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
