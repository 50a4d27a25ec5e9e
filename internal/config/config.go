package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Reels       ReelsConfig       `yaml:"reels"`
	Sentiment   SentimentConfig   `yaml:"sentiment"`
	Transcripts TranscriptsConfig `yaml:"transcripts"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Watch       WatchConfig       `yaml:"watch"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	VideoCodec string `yaml:"video_codec"`
	AudioCodec string `yaml:"audio_codec"`
	Preset     string `yaml:"preset"`
}

// PathsConfig anchors the artifact layout. Everything the pipeline
// persists lives under Uploads; Temp holds per-run scratch files and
// Inbox is the watched drop directory for watch mode.
type PathsConfig struct {
	Uploads string `yaml:"uploads"`
	Temp    string `yaml:"temp"`
	Inbox   string `yaml:"inbox"`
}

// AudioDir is where extracted audio tracks are written.
func (p PathsConfig) AudioDir() string {
	return filepath.Join(p.Uploads, "audio")
}

// TranscriptsDir is where transcript artifacts are written.
func (p PathsConfig) TranscriptsDir() string {
	return filepath.Join(p.Uploads, "transcripts")
}

// ReelsDir is where rendered reels are written.
func (p PathsConfig) ReelsDir() string {
	return filepath.Join(p.Uploads, "reels")
}

// VideosDir is the per-user directory for downloaded source videos.
func (p PathsConfig) VideosDir(username string) string {
	return filepath.Join(p.Uploads, "videos", username)
}

type ReelsConfig struct {
	Count          int     `yaml:"count"`
	MaxClipSeconds float64 `yaml:"max_clip_seconds"`
}

type SentimentConfig struct {
	Threshold float64 `yaml:"threshold"`
}

type TranscriptsConfig struct {
	Docx bool `yaml:"docx"`
}

type SummarizerConfig struct {
	Provider  string   `yaml:"provider"` // openai | gemini | none
	Model     string   `yaml:"model"`
	Endpoint  string   `yaml:"endpoint"`
	APIKeys   []string `yaml:"api_keys"`
	MaxTokens int      `yaml:"max_tokens"`
}

type WatchConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Username      string `yaml:"username"`
	Language      string `yaml:"language"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Paths.Uploads == "" {
		return fmt.Errorf("paths.uploads is required")
	}
	if c.Watch.Enabled && c.Paths.Inbox == "" {
		return fmt.Errorf("paths.inbox is required when watch is enabled")
	}

	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.VideoCodec == "" {
		c.FFmpeg.VideoCodec = "libx264"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "aac"
	}
	if c.FFmpeg.Preset == "" {
		c.FFmpeg.Preset = "medium"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = filepath.Join(c.Paths.Uploads, "tmp")
	}
	if c.Reels.Count == 0 {
		c.Reels.Count = 3
	}
	if c.Reels.Count < 0 {
		return fmt.Errorf("reels.count must be positive")
	}
	if c.Reels.MaxClipSeconds == 0 {
		c.Reels.MaxClipSeconds = 60
	}
	if c.Sentiment.Threshold == 0 {
		c.Sentiment.Threshold = 0.05
	}
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = "none"
	}
	switch c.Summarizer.Provider {
	case "openai":
		if c.Summarizer.Model == "" {
			c.Summarizer.Model = "gpt-3.5-turbo"
		}
		if c.Summarizer.Endpoint == "" {
			c.Summarizer.Endpoint = "https://api.openai.com/v1/chat/completions"
		}
	case "gemini":
		if c.Summarizer.Model == "" {
			c.Summarizer.Model = "gemini-2.5-flash"
		}
	case "none":
	default:
		return fmt.Errorf("summarizer.provider must be openai, gemini or none")
	}
	if c.Summarizer.MaxTokens == 0 {
		c.Summarizer.MaxTokens = 150
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}
	if c.Watch.Language == "" {
		c.Watch.Language = "English"
	}
	if c.Watch.Username == "" {
		c.Watch.Username = "inbox"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
