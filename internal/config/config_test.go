package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	return Config{
		Whisper: WhisperConfig{
			ModelPath:  "models/ggml-base.bin",
			BinaryPath: "./whisper-cli",
		},
		Paths: PathsConfig{
			Uploads: "uploads",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing model path",
			mutate:  func(c *Config) { c.Whisper.ModelPath = "" },
			wantErr: true,
		},
		{
			name:    "missing binary path",
			mutate:  func(c *Config) { c.Whisper.BinaryPath = "" },
			wantErr: true,
		},
		{
			name:    "missing uploads path",
			mutate:  func(c *Config) { c.Paths.Uploads = "" },
			wantErr: true,
		},
		{
			name:    "watch enabled without inbox",
			mutate:  func(c *Config) { c.Watch.Enabled = true },
			wantErr: true,
		},
		{
			name: "watch enabled with inbox",
			mutate: func(c *Config) {
				c.Watch.Enabled = true
				c.Paths.Inbox = "inbox"
			},
			wantErr: false,
		},
		{
			name:    "unknown summarizer provider",
			mutate:  func(c *Config) { c.Summarizer.Provider = "anthropic" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Reels.Count != 3 {
		t.Errorf("Reels.Count = %d, want 3", cfg.Reels.Count)
	}
	if cfg.Reels.MaxClipSeconds != 60 {
		t.Errorf("Reels.MaxClipSeconds = %v, want 60", cfg.Reels.MaxClipSeconds)
	}
	if cfg.Sentiment.Threshold != 0.05 {
		t.Errorf("Sentiment.Threshold = %v, want 0.05", cfg.Sentiment.Threshold)
	}
	if cfg.FFmpeg.VideoCodec != "libx264" || cfg.FFmpeg.AudioCodec != "aac" {
		t.Errorf("FFmpeg codecs = %s/%s, want libx264/aac", cfg.FFmpeg.VideoCodec, cfg.FFmpeg.AudioCodec)
	}
	if cfg.Summarizer.Provider != "none" {
		t.Errorf("Summarizer.Provider = %s, want none", cfg.Summarizer.Provider)
	}
	if cfg.Watch.MaxConcurrent != 2 {
		t.Errorf("Watch.MaxConcurrent = %d, want 2", cfg.Watch.MaxConcurrent)
	}
	if cfg.Watch.Language != "English" {
		t.Errorf("Watch.Language = %s, want English", cfg.Watch.Language)
	}
}

func TestOpenAIDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Summarizer.Provider = "openai"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Summarizer.Model != "gpt-3.5-turbo" {
		t.Errorf("Summarizer.Model = %s, want gpt-3.5-turbo", cfg.Summarizer.Model)
	}
	if cfg.Summarizer.Endpoint == "" {
		t.Error("Summarizer.Endpoint not defaulted")
	}
	if cfg.Summarizer.MaxTokens != 150 {
		t.Errorf("Summarizer.MaxTokens = %d, want 150", cfg.Summarizer.MaxTokens)
	}
}

func TestPathHelpers(t *testing.T) {
	p := PathsConfig{Uploads: "uploads"}

	if got := p.AudioDir(); got != filepath.Join("uploads", "audio") {
		t.Errorf("AudioDir() = %s", got)
	}
	if got := p.TranscriptsDir(); got != filepath.Join("uploads", "transcripts") {
		t.Errorf("TranscriptsDir() = %s", got)
	}
	if got := p.ReelsDir(); got != filepath.Join("uploads", "reels") {
		t.Errorf("ReelsDir() = %s", got)
	}
	if got := p.VideosDir("alice"); got != filepath.Join("uploads", "videos", "alice") {
		t.Errorf("VideosDir() = %s", got)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}

	content := `
whisper:
  model_path: "models/ggml-base.bin"
  binary_path: "./whisper-cli"
  threads: 8

paths:
  uploads: "uploads"

sentiment:
  threshold: 0.1

summarizer:
  provider: "openai"
  api_keys:
    - "sk-test"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.Threads != 8 {
		t.Errorf("Threads = %d, want 8", cfg.Whisper.Threads)
	}
	if cfg.Sentiment.Threshold != 0.1 {
		t.Errorf("Threshold = %v, want 0.1", cfg.Sentiment.Threshold)
	}
	if len(cfg.Summarizer.APIKeys) != 1 || cfg.Summarizer.APIKeys[0] != "sk-test" {
		t.Errorf("APIKeys = %v", cfg.Summarizer.APIKeys)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %s, want debug", cfg.Logging.Level)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
