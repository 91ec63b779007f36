package reduce

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/docentlabs/docent/internal/llm"
)

func TestSummarize_EmptyInputSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	r := New(mock)

	out, err := r.Summarize(context.Background(), "   \n\n  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != EmptySummary {
		t.Fatalf("expected placeholder, got %q", out)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected 0 provider calls, got %d", mock.CallCount())
	}
}

func TestSummarize_SingleChunkOneCall(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("A short summary.")},
	)
	r := New(mock)

	out, err := r.Summarize(context.Background(), "A small document that fits in one chunk.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "A short summary." {
		t.Fatalf("unexpected summary: %q", out)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call for single chunk, got %d", mock.CallCount())
	}
}

func TestSummarize_MapReduceOverChunks(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("partial one")},
		llm.MockResponse{Content: json.RawMessage("partial two")},
		llm.MockResponse{Content: json.RawMessage("merged summary")},
	)
	cfg := DefaultConfig()
	cfg.SummaryChunkChars = 20
	cfg.MaxWorkers = 1 // Deterministic call order for the mock queue.
	r := NewWithConfig(mock, cfg)

	text := "Alpha part one here.\n\nBeta part two here."
	out, err := r.Summarize(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "merged summary" {
		t.Fatalf("unexpected summary: %q", out)
	}
	// One call per chunk plus the reduce call.
	if mock.CallCount() < 3 {
		t.Fatalf("expected at least 3 calls, got %d", mock.CallCount())
	}

	// The reduce prompt must contain both partials.
	last := mock.Calls[len(mock.Calls)-1]
	if !strings.Contains(last.Messages[0].Content, "partial one") ||
		!strings.Contains(last.Messages[0].Content, "partial two") {
		t.Fatal("reduce prompt should include all partial summaries")
	}
}

func TestSummarize_ClampsToFiveLines(t *testing.T) {
	long := "line1\nline2\nline3\nline4\nline5\nline6\nline7"
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(long)},
	)
	r := New(mock)

	out, err := r.Summarize(context.Background(), "some document")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(strings.Split(out, "\n")); got != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", got, out)
	}
}

func TestSummarize_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	r := New(mock)

	_, err := r.Summarize(context.Background(), "some document")
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestKeypoints_EmptyInputSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	r := New(mock)

	out, err := r.Keypoints(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty keypoints, got %q", out)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected 0 provider calls, got %d", mock.CallCount())
	}
}

func TestKeypoints_SingleChunkOneCall(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("- point one\n- point two")},
	)
	r := New(mock)

	out, err := r.Keypoints(context.Background(), "A small document.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "- point one\n- point two" {
		t.Fatalf("unexpected keypoints: %q", out)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Prioritize definitions, principles, rules, structures, and procedures over examples.") {
		t.Error("keypoint prompt should steer away from examples")
	}
}

func TestKeypoints_MapReduceOverChunks(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("- a\n- b")},
		llm.MockResponse{Content: json.RawMessage("- c\n- d")},
		llm.MockResponse{Content: json.RawMessage("- a\n- b\n- c\n- d")},
	)
	cfg := DefaultConfig()
	cfg.KeypointChunkChars = 20
	cfg.MaxWorkers = 1
	r := NewWithConfig(mock, cfg)

	text := "Alpha part one here.\n\nBeta part two here."
	out, err := r.Keypoints(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "- a\n- b\n- c\n- d" {
		t.Fatalf("unexpected keypoints: %q", out)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestMapChunks_PreservesChunkOrder(t *testing.T) {
	// With MaxWorkers=1 the FIFO mock maps partials to chunks in order,
	// so chunk i must receive partial i in the final reduce prompt.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("FIRST")},
		llm.MockResponse{Content: json.RawMessage("SECOND")},
		llm.MockResponse{Content: json.RawMessage("done")},
	)
	cfg := DefaultConfig()
	cfg.SummaryChunkChars = 20
	cfg.MaxWorkers = 1
	r := NewWithConfig(mock, cfg)

	text := "Alpha part one here.\n\nBeta part two here."
	if _, err := r.Summarize(context.Background(), text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reducePrompt := mock.Calls[len(mock.Calls)-1].Messages[0].Content
	first := strings.Index(reducePrompt, "FIRST")
	second := strings.Index(reducePrompt, "SECOND")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("partials out of order in reduce prompt: %q", reducePrompt)
	}
}

func TestClampLines(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"a\nb\nc", 5, "a\nb\nc"},
		{"a\nb\nc", 2, "a\nb"},
		{"a\n\n\nb", 2, "a\nb"},
		{"", 3, ""},
	}
	for _, tt := range tests {
		if got := clampLines(tt.in, tt.n); got != tt.want {
			t.Errorf("clampLines(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
