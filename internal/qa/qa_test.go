package qa

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/docentlabs/docent/internal/llm"
)

func TestAsk_GroundsPromptInRetrievedContext(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Photosynthesis converts light into chemical energy.")},
	)
	a := New(mock)

	doc := "Photosynthesis converts light into chemical energy.\n\nMitochondria produce ATP through respiration."
	res, err := a.Ask(context.Background(), doc, "What does photosynthesis do?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Answer == "" {
		t.Fatal("expected non-empty answer")
	}
	if res.Context == "" {
		t.Fatal("expected retrieval context to be returned")
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Photosynthesis") {
		t.Fatal("prompt should contain the retrieved chunk")
	}
	if !strings.Contains(prompt, "What does photosynthesis do?") {
		t.Fatal("prompt should contain the question")
	}
}

func TestAsk_SystemPromptRestrictsToContext(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("answer")},
	)
	a := New(mock)

	_, err := a.Ask(context.Background(), "Some document content.", "A question?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].System, "only the provided context") {
		t.Fatalf("system prompt should restrict to context, got %q", mock.Calls[0].System)
	}
}

func TestAsk_EmptyQuestion(t *testing.T) {
	a := New(llm.NewMockProvider())
	if _, err := a.Ask(context.Background(), "doc", "   "); err == nil {
		t.Fatal("expected error for empty question")
	}
}

func TestAsk_EmptyDocumentSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	a := New(mock)

	res, err := a.Ask(context.Background(), "", "What is this about?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Answer == "" {
		t.Fatal("expected placeholder answer")
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected 0 provider calls, got %d", mock.CallCount())
	}
}
