package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/docentlabs/docent/internal/llm"
)

const keypointsFixture = "- the sun is a star\n- planets orbit the sun\n- the moon causes tides"

func quizJSON(items ...string) json.RawMessage {
	return json.RawMessage(`{"items":[` + strings.Join(items, ",") + `]}`)
}

const (
	validMCQ = `{"type":"mcq","question":"What is the sun?","options":["A star","A planet","A moon","A comet"],"answer_index":0,"explanation":"The sun is a star at the center of the solar system."}`

	validShort = `{"type":"short","question":"What causes tides?","answer":"The moon's gravity","rubric_keywords":["moon","gravity","pull"],"explanation":"Tidal bulges follow the moon's gravitational pull."}`
)

// newTestGenerator queues a keypoints response ahead of the quiz responses,
// since Generate condenses the document before asking for questions.
func newTestGenerator(quizResponses ...llm.MockResponse) (*Generator, *llm.MockProvider) {
	responses := append([]llm.MockResponse{
		{Content: json.RawMessage(keypointsFixture)},
	}, quizResponses...)
	mock := llm.NewMockProvider(responses...)
	return NewGenerator(mock), mock
}

func TestGenerate_HappyPath(t *testing.T) {
	g, mock := newTestGenerator(
		llm.MockResponse{Content: quizJSON(validMCQ, validShort, validShort)},
	)

	quiz, stats, err := g.Generate(context.Background(), "The sun is a star.", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quiz.ID == "" {
		t.Fatal("expected quiz ID")
	}
	if len(quiz.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(quiz.Questions))
	}
	if stats.Kept != 3 || stats.Dropped != 0 {
		t.Fatalf("stats = %+v", stats)
	}
	if quiz.Questions[0].Type != TypeMCQ {
		t.Errorf("first question type = %q, want mcq", quiz.Questions[0].Type)
	}
	if quiz.Questions[1].Type != TypeShort {
		t.Errorf("second question type = %q, want short", quiz.Questions[1].Type)
	}

	// Keypoints call then quiz call.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}
	quizReq := mock.Calls[1]
	if !quizReq.NoCache {
		t.Error("quiz generation must bypass the response cache")
	}
	if !strings.Contains(quizReq.Messages[0].Content, "the sun is a star") {
		t.Error("quiz prompt should be built from extracted key points")
	}
	if !strings.Contains(quizReq.Messages[0].Content, `"items"`) {
		t.Error("quiz prompt should request questions under an items key")
	}
	if !strings.Contains(quizReq.Messages[0].Content, "explanation") {
		t.Error("quiz prompt should request an explanation per item")
	}
}

func TestGenerate_DropsMalformedItems(t *testing.T) {
	threeOptionMCQ := `{"type":"mcq","question":"Broken","options":["a","b","c"],"answer_index":0}`
	g, _ := newTestGenerator(
		llm.MockResponse{Content: quizJSON(validMCQ, validShort, threeOptionMCQ, validShort, validMCQ)},
	)

	quiz, stats, err := g.Generate(context.Background(), "doc", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz.Questions) != 4 {
		t.Fatalf("expected 4 questions after dropping, got %d", len(quiz.Questions))
	}
	if stats.Parsed != 5 || stats.Kept != 4 || stats.Dropped != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	// Surviving questions keep their original order.
	wantTypes := []ItemType{TypeMCQ, TypeShort, TypeShort, TypeMCQ}
	for i, q := range quiz.Questions {
		if q.Type != wantTypes[i] {
			t.Errorf("question %d type = %q, want %q", i, q.Type, wantTypes[i])
		}
	}
}

func TestGenerate_AllItemsInvalid(t *testing.T) {
	bad := `{"type":"essay","question":"?"}`
	g, _ := newTestGenerator(
		llm.MockResponse{Content: quizJSON(bad, bad)},
	)

	_, _, err := g.Generate(context.Background(), "doc", 3)
	if err == nil {
		t.Fatal("expected error when nothing survives validation")
	}
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestGenerate_ClampsCount(t *testing.T) {
	g, mock := newTestGenerator(
		llm.MockResponse{Content: quizJSON(validMCQ, validShort, validShort, validMCQ, validShort, validMCQ)},
	)

	quiz, stats, err := g.Generate(context.Background(), "doc", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Requested != MaxQuestions {
		t.Errorf("requested = %d, want %d", stats.Requested, MaxQuestions)
	}
	// Surplus valid questions are truncated to the clamped count.
	if len(quiz.Questions) != MaxQuestions {
		t.Errorf("questions = %d, want %d", len(quiz.Questions), MaxQuestions)
	}
	if !strings.Contains(mock.Calls[1].Messages[0].Content, "Write 5 quiz questions") {
		t.Error("prompt should ask for the clamped count")
	}
}

func TestGenerate_WrapsJSONInProse(t *testing.T) {
	wrapped := "Here is your quiz:\n```json\n" + string(quizJSON(validMCQ, validShort, validShort)) + "\n```\nEnjoy!"
	g, _ := newTestGenerator(
		llm.MockResponse{Content: json.RawMessage(wrapped)},
	)

	quiz, _, err := g.Generate(context.Background(), "doc", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(quiz.Questions))
	}
}

func TestGenerate_EmptyDocument(t *testing.T) {
	g := NewGenerator(llm.NewMockProvider())
	if _, _, err := g.Generate(context.Background(), "   ", 3); err == nil {
		t.Fatal("expected error for empty document")
	}
}

func TestGenerate_KeypointFailurePropagates(t *testing.T) {
	// A failed keypoint extraction fails the whole generation instead of
	// silently continuing with raw material.
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("rate limited")}},
		llm.MockResponse{Content: quizJSON(validMCQ, validShort, validShort)},
	)
	g := NewGenerator(mock)

	_, _, err := g.Generate(context.Background(), "The sun is a star.", 3)
	if err == nil {
		t.Fatal("expected error when keypoint extraction fails")
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("error should carry the original message, got %q", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected no quiz-generation call after the failure, got %d calls", mock.CallCount())
	}
}

func TestGenerate_EmptyKeypointsFallsBackToDocument(t *testing.T) {
	// A successful but empty extraction falls back to the raw document head.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("   ")},
		llm.MockResponse{Content: quizJSON(validMCQ, validShort, validShort)},
	)
	g := NewGenerator(mock)

	quiz, _, err := g.Generate(context.Background(), "The sun is a star.", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(quiz.Questions))
	}
	if !strings.Contains(mock.Calls[1].Messages[0].Content, "The sun is a star.") {
		t.Error("prompt should fall back to raw document material")
	}
}

func TestClampCount(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 3}, {1, 3}, {3, 3}, {4, 4}, {5, 5}, {6, 5}, {100, 5}, {-2, 3},
	}
	for _, tt := range tests {
		if got := clampCount(tt.in); got != tt.want {
			t.Errorf("clampCount(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFeedback_MCQ(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("The sun is a star, not a planet.")},
	)
	g := NewGenerator(mock)

	var item Item
	if err := json.Unmarshal([]byte(validMCQ), &item); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	out, err := g.Feedback(context.Background(), item, 1, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == "" {
		t.Fatal("expected feedback text")
	}
	req := mock.Calls[0]
	if !req.NoCache {
		t.Error("feedback must bypass the response cache")
	}
	if !strings.Contains(req.Messages[0].Content, "A planet") {
		t.Error("prompt should name the chosen option")
	}
	if !strings.Contains(req.Messages[0].Content, "A star") {
		t.Error("prompt should name the correct option")
	}
	if !strings.Contains(req.Messages[0].Content, "The sun is a star at the center of the solar system.") {
		t.Error("prompt should include the item's explanation")
	}
}

func TestFeedback_Short(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Close, but mention gravity.")},
	)
	g := NewGenerator(mock)

	var item Item
	if err := json.Unmarshal([]byte(validShort), &item); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	_, err := g.Feedback(context.Background(), item, -1, "the moon does it")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "the moon does it") {
		t.Error("prompt should include the learner's answer")
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Tidal bulges follow the moon's gravitational pull.") {
		t.Error("prompt should include the item's explanation")
	}
}
