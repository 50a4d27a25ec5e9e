package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/reelworks/reelify/internal/config"
	"github.com/reelworks/reelify/internal/domain"
	"github.com/reelworks/reelify/internal/logger"
	"github.com/reelworks/reelify/internal/media"
	"github.com/reelworks/reelify/internal/pipeline"
	"github.com/reelworks/reelify/internal/sentiment"
	"github.com/reelworks/reelify/internal/summarizer"
	"github.com/reelworks/reelify/internal/transcriber"
	"github.com/reelworks/reelify/internal/watcher"
	"github.com/reelworks/reelify/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	filePath := flag.String("file", "", "process a local video file and exit")
	url := flag.String("url", "", "download and process a video URL and exit")
	username := flag.String("user", "cli", "username artifacts are keyed by")
	language := flag.String("language", "English", "transcription language (falls back to English)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "Reelify starting on %s/%s (%d cores)", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	acq := media.New(cfg.Paths, exec, log)
	tr := transcriber.New(cfg.Whisper, exec, log)
	scorer := sentiment.New()
	sum, err := summarizer.New(cfg.Summarizer, log)
	if err != nil {
		log.Error(ctx, "Failed to create summarizer: %v", err)
		os.Exit(1)
	}
	pipe := pipeline.New(cfg, exec, acq, tr, scorer, sum, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info(ctx, "Shutdown signal received")
		cancel()
	}()

	if *filePath != "" || *url != "" {
		if err := runOnce(ctx, pipe, *filePath, *url, *username, *language, log); err != nil {
			log.Error(ctx, "Run failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if !cfg.Watch.Enabled {
		fmt.Fprintln(os.Stderr, "Nothing to do: pass -file or -url, or enable watch mode in the config")
		os.Exit(2)
	}

	runWatch(ctx, cfg, pipe, log)
}

// runOnce processes a single video from a local file or a URL and
// prints the outcome.
func runOnce(ctx context.Context, pipe pipeline.Pipeline, filePath, url, username, language string, log logger.Logger) error {
	req := pipeline.Request{
		Username: username,
		Language: language,
		URL:      url,
	}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("read input file: %w", err)
		}
		req.Upload = data
	}

	progress := make(chan domain.ProgressUpdate, 16)
	req.Progress = progress
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			fmt.Printf("[%3d%%] %s\n", update.Percent, update.Status)
		}
	}()

	out, err := pipe.Process(ctx, req)
	close(progress)
	<-done
	if err != nil {
		return err
	}

	fmt.Printf("Run %s finished\n", out.RunID)
	fmt.Printf("  important segments: %d\n", out.ImportantSegments)
	fmt.Printf("  transcript: %s\n", out.TranscriptPath)
	fmt.Printf("  reels: %d of %d\n", len(out.Reels), out.ReelsAttempted)
	for _, reel := range out.Reels {
		fmt.Printf("    %s (%.2fs, %d clips)\n", reel.Path, reel.Duration, len(reel.Clips))
	}
	if out.Summary != "" {
		fmt.Printf("  summary: %s\n", out.Summary)
	}
	return nil
}

// runWatch monitors the inbox directory and feeds every new video
// through the pipeline until shutdown.
func runWatch(ctx context.Context, cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger) {
	handler := func(ctx context.Context, filePath string) error {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("read %s: %w", filePath, err)
		}
		out, err := pipe.Process(ctx, pipeline.Request{
			Username: cfg.Watch.Username,
			Language: cfg.Watch.Language,
			Upload:   data,
		})
		if err != nil {
			return err
		}
		log.Info(ctx, "Processed %s: %d reels, transcript %s", filePath, len(out.Reels), out.TranscriptPath)
		// The inbox copy served its purpose
		if err := os.Remove(filePath); err != nil {
			log.Warn(ctx, "Failed to remove inbox file %s: %v", filePath, err)
		}
		return nil
	}

	w, err := watcher.New(cfg.Paths.Inbox, handler, log, cfg.Watch.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	log.Info(ctx, "Watch mode ready. Monitoring: %s", cfg.Paths.Inbox)
	if err := w.Start(ctx); err != nil && err != context.Canceled {
		log.Error(ctx, "Watcher error: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Reelify stopped")
}

// ensureDirectories creates the artifact layout up front so a first
// run never fails on a missing directory.
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Uploads,
		cfg.Paths.Temp,
		cfg.Paths.AudioDir(),
		cfg.Paths.TranscriptsDir(),
		cfg.Paths.ReelsDir(),
	}
	if cfg.Watch.Enabled {
		dirs = append(dirs, cfg.Paths.Inbox)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
