package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reelworks/reelify/internal/config"
	"github.com/reelworks/reelify/internal/logger"
)

type fakeExecutor struct {
	calls   [][]string
	handler func(dir, name string, args []string) (string, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.run("", name, args)
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.run(dir, name, args)
}

func (f *fakeExecutor) run(dir, name string, args []string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.handler != nil {
		return f.handler(dir, name, args)
	}
	return "", nil
}

func probeResponse(seconds float64) string {
	return fmt.Sprintf(`{"format":{"duration":"%.6f"}}`, seconds)
}

func newTestAcquirer(t *testing.T, exec *fakeExecutor) (Acquirer, config.PathsConfig) {
	t.Helper()
	paths := config.PathsConfig{
		Uploads: filepath.Join(t.TempDir(), "uploads"),
		Temp:    filepath.Join(t.TempDir(), "tmp"),
	}
	return New(paths, exec, logger.New("error", "text")), paths
}

func TestFromUpload(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(dir, name string, args []string) (string, error) {
			if name != "ffprobe" {
				t.Fatalf("unexpected command %s", name)
			}
			return probeResponse(600), nil
		},
	}
	acq, _ := newTestAcquirer(t, exec)

	payload := []byte("not really a video")
	src, err := acq.FromUpload(context.Background(), payload)
	if err != nil {
		t.Fatalf("FromUpload() error = %v", err)
	}

	data, err := os.ReadFile(src.Path)
	if err != nil {
		t.Fatalf("reading uploaded file: %v", err)
	}
	if string(data) != string(payload) {
		t.Error("uploaded bytes were not written verbatim")
	}
	if filepath.Ext(src.Path) != ".mp4" {
		t.Errorf("temp file extension = %s, want .mp4", filepath.Ext(src.Path))
	}
	if src.Duration != 600 {
		t.Errorf("Duration = %v, want 600", src.Duration)
	}
}

func TestFromURL(t *testing.T) {
	var videoPath string
	exec := &fakeExecutor{}
	exec.handler = func(dir, name string, args []string) (string, error) {
		switch name {
		case "yt-dlp":
			videoPath = filepath.Join(dir, "Some Remote Title.mp4")
			return videoPath + "\n", nil
		case "ffprobe":
			return probeResponse(123.5), nil
		}
		return "", fmt.Errorf("unexpected command %s", name)
	}
	acq, paths := newTestAcquirer(t, exec)

	src, err := acq.FromURL(context.Background(), "https://example.com/watch?v=abc", "alice")
	if err != nil {
		t.Fatalf("FromURL() error = %v", err)
	}
	if src.Path != videoPath {
		t.Errorf("Path = %s, want %s", src.Path, videoPath)
	}
	if src.Duration != 123.5 {
		t.Errorf("Duration = %v, want 123.5", src.Duration)
	}

	// Download goes into the per-user videos directory
	if _, err := os.Stat(paths.VideosDir("alice")); err != nil {
		t.Errorf("per-user video dir not created: %v", err)
	}

	// Best available audio+video stream is requested
	ytCall := strings.Join(exec.calls[0], " ")
	if !strings.Contains(ytCall, "bestvideo+bestaudio/best") {
		t.Errorf("yt-dlp call missing format selection: %s", ytCall)
	}
}

func TestFromURLDownloadError(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(dir, name string, args []string) (string, error) {
			return "", fmt.Errorf("network unreachable")
		},
	}
	acq, _ := newTestAcquirer(t, exec)

	_, err := acq.FromURL(context.Background(), "https://example.com/broken", "alice")
	if err == nil {
		t.Fatal("FromURL() expected error")
	}

	var dlErr *DownloadError
	if !errors.As(err, &dlErr) {
		t.Errorf("error = %T, want *DownloadError", err)
	}
	if dlErr.URL != "https://example.com/broken" {
		t.Errorf("DownloadError.URL = %s", dlErr.URL)
	}
}

func TestFromUploadProbeFailureRemovesTemp(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(dir, name string, args []string) (string, error) {
			return "", fmt.Errorf("moov atom not found")
		},
	}
	acq, paths := newTestAcquirer(t, exec)

	_, err := acq.FromUpload(context.Background(), []byte("broken"))
	if err == nil {
		t.Fatal("FromUpload() expected error")
	}

	leftovers, _ := filepath.Glob(filepath.Join(paths.Temp, "upload-*"))
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind after failed probe: %v", leftovers)
	}
}

func TestFromURLProbeFailureRemovesDownload(t *testing.T) {
	var videoPath string
	exec := &fakeExecutor{}
	exec.handler = func(dir, name string, args []string) (string, error) {
		switch name {
		case "yt-dlp":
			videoPath = filepath.Join(dir, "Remote Title.mp4")
			if err := os.WriteFile(videoPath, []byte("video"), 0644); err != nil {
				return "", err
			}
			return videoPath + "\n", nil
		case "ffprobe":
			return "", fmt.Errorf("moov atom not found")
		}
		return "", fmt.Errorf("unexpected command %s", name)
	}
	acq, _ := newTestAcquirer(t, exec)

	_, err := acq.FromURL(context.Background(), "https://example.com/watch?v=abc", "alice")
	if err == nil {
		t.Fatal("FromURL() expected error")
	}

	if _, statErr := os.Stat(videoPath); !os.IsNotExist(statErr) {
		t.Errorf("downloaded video %s still on disk after failed acquisition", videoPath)
	}
}

func TestFromURLNoOutputFile(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(dir, name string, args []string) (string, error) {
			return "\n", nil
		},
	}
	acq, _ := newTestAcquirer(t, exec)

	_, err := acq.FromURL(context.Background(), "https://example.com/empty", "alice")
	var dlErr *DownloadError
	if !errors.As(err, &dlErr) {
		t.Errorf("error = %v, want *DownloadError", err)
	}
}
