package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/reelworks/reelify/internal/domain"
	"github.com/reelworks/reelify/internal/logger"
)

func TestWriteTranscript(t *testing.T) {
	env := newTestEnv(t, nil, 0)
	p := env.pipeline().(*implPipeline)
	log := logger.New("error", "text")

	segments := []domain.Segment{
		{Start: 0, End: 4.2, Text: "hello there"},
		{Start: 4.2, End: 9.876, Text: "and welcome back"},
	}

	path, err := p.writeTranscript(context.Background(), segments, "alice", "talk.mp4", log)
	if err != nil {
		t.Fatalf("writeTranscript() error = %v", err)
	}

	if filepath.Base(path) != "alice_talk.mp4.txt" {
		t.Errorf("transcript file = %s, want alice_talk.mp4.txt", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading transcript: %v", err)
	}
	want := "[0.00s - 4.20s]: hello there\n[4.20s - 9.88s]: and welcome back\n"
	if string(data) != want {
		t.Errorf("transcript = %q, want %q", string(data), want)
	}
}

func TestWriteTranscriptEmpty(t *testing.T) {
	env := newTestEnv(t, nil, 0)
	p := env.pipeline().(*implPipeline)

	path, err := p.writeTranscript(context.Background(), nil, "alice", "silent.mp4", logger.New("error", "text"))
	if err != nil {
		t.Fatalf("writeTranscript() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading transcript: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("transcript = %q, want empty file", string(data))
	}
}

func TestWriteTranscriptOverwrites(t *testing.T) {
	env := newTestEnv(t, nil, 0)
	p := env.pipeline().(*implPipeline)
	log := logger.New("error", "text")

	first := []domain.Segment{
		{Start: 0, End: 1, Text: "first run line one"},
		{Start: 1, End: 2, Text: "first run line two"},
	}
	second := []domain.Segment{
		{Start: 0, End: 1, Text: "second run"},
	}

	if _, err := p.writeTranscript(context.Background(), first, "alice", "talk.mp4", log); err != nil {
		t.Fatal(err)
	}
	path, err := p.writeTranscript(context.Background(), second, "alice", "talk.mp4", log)
	if err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	want := "[0.00s - 1.00s]: second run\n"
	if string(data) != want {
		t.Errorf("transcript = %q, want %q", string(data), want)
	}
}

func TestWriteTranscriptUTF8(t *testing.T) {
	env := newTestEnv(t, nil, 0)
	p := env.pipeline().(*implPipeline)

	segments := []domain.Segment{
		{Start: 0, End: 2, Text: "वणक्कम, नमस्ते"},
		{Start: 2, End: 4, Text: "நன்றி"},
	}

	path, err := p.writeTranscript(context.Background(), segments, "ravi", "clip.mp4", logger.New("error", "text"))
	if err != nil {
		t.Fatalf("writeTranscript() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	want := "[0.00s - 2.00s]: वणक्कम, नमस्ते\n[2.00s - 4.00s]: நன்றி\n"
	if string(data) != want {
		t.Errorf("transcript = %q, want %q", string(data), want)
	}
}

func TestWriteTranscriptDocxExport(t *testing.T) {
	env := newTestEnv(t, nil, 0)
	env.cfg.Transcripts.Docx = true
	p := env.pipeline().(*implPipeline)

	segments := []domain.Segment{{Start: 0, End: 3, Text: "exported"}}
	path, err := p.writeTranscript(context.Background(), segments, "alice", "talk.mp4", logger.New("error", "text"))
	if err != nil {
		t.Fatalf("writeTranscript() error = %v", err)
	}

	docxPath := filepath.Join(filepath.Dir(path), "alice_talk.mp4.docx")
	info, err := os.Stat(docxPath)
	if err != nil {
		t.Fatalf("docx transcript missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx transcript is empty")
	}
}
