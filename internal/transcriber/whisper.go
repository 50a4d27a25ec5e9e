package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/reelworks/reelify/internal/domain"
)

// TranscriptionError wraps a model or decoder failure (corrupt audio,
// unsupported sample rate, model runtime fault).
type TranscriptionError struct {
	AudioPath string
	Err       error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcribe %s: %v", e.AudioPath, e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }

// whisperOutput matches the -oj JSON emitted by whisper.cpp. Offsets
// are milliseconds into the audio track.
type whisperOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// Transcribe runs whisper.cpp over the audio file and parses its JSON
// output into ordered segments. An unrecognized language selector
// falls back to English. Segments come back in whatever order and
// overlap the model produced; nothing here reorders them.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, language string) ([]domain.Segment, error) {
	select {
	case t.admission <- struct{}{}:
		defer func() { <-t.admission }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	code := domain.LanguageCode(language)
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing %s (language=%s, threads=%d)", audioPath, code, t.cfg.Threads)

	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-l", code,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-oj",
		"-of", outputPrefix,
		"-np",
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return nil, &TranscriptionError{AudioPath: audioPath, Err: err}
	}

	jsonPath := outputPrefix + ".json"
	defer os.Remove(jsonPath)

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, &TranscriptionError{AudioPath: audioPath, Err: fmt.Errorf("read whisper output: %w", err)}
	}

	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &TranscriptionError{AudioPath: audioPath, Err: fmt.Errorf("parse whisper output: %w", err)}
	}

	segments := make([]domain.Segment, 0, len(out.Transcription))
	for _, item := range out.Transcription {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		segments = append(segments, domain.Segment{
			Start: float64(item.Offsets.From) / 1000,
			End:   float64(item.Offsets.To) / 1000,
			Text:  text,
		})
	}

	t.logger.Info(ctx, "Transcription produced %d segments", len(segments))
	return segments, nil
}
