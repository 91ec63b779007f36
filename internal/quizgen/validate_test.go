package quizgen

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestValidateItem_ValidMCQ(t *testing.T) {
	item, err := validateItem(json.RawMessage(validMCQ))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Type != TypeMCQ {
		t.Errorf("type = %q, want mcq", item.Type)
	}
	if len(item.Options) != MCQOptionCount {
		t.Errorf("options = %d, want %d", len(item.Options), MCQOptionCount)
	}
	if item.AnswerIndex != 0 {
		t.Errorf("answer index = %d, want 0", item.AnswerIndex)
	}
	if item.Explanation == "" {
		t.Error("expected explanation")
	}
}

func TestValidateItem_ValidShort(t *testing.T) {
	item, err := validateItem(json.RawMessage(validShort))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Type != TypeShort {
		t.Errorf("type = %q, want short", item.Type)
	}
	if item.Answer == "" {
		t.Error("expected model answer")
	}
	if len(item.RubricKeywords) != 3 {
		t.Errorf("rubric keywords = %d, want 3", len(item.RubricKeywords))
	}
	if item.Explanation == "" {
		t.Error("expected explanation")
	}
}

func TestValidateItem_Rejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "mcq with three options",
			raw:  `{"type":"mcq","question":"Q","options":["a","b","c"],"answer_index":0,"explanation":"E"}`,
		},
		{
			name: "mcq with five options",
			raw:  `{"type":"mcq","question":"Q","options":["a","b","c","d","e"],"answer_index":0,"explanation":"E"}`,
		},
		{
			name: "mcq missing answer_index",
			raw:  `{"type":"mcq","question":"Q","options":["a","b","c","d"],"explanation":"E"}`,
		},
		{
			name: "mcq answer_index out of range",
			raw:  `{"type":"mcq","question":"Q","options":["a","b","c","d"],"answer_index":4,"explanation":"E"}`,
		},
		{
			name: "mcq negative answer_index",
			raw:  `{"type":"mcq","question":"Q","options":["a","b","c","d"],"answer_index":-1,"explanation":"E"}`,
		},
		{
			name: "mcq non-integer answer_index",
			raw:  `{"type":"mcq","question":"Q","options":["a","b","c","d"],"answer_index":"two","explanation":"E"}`,
		},
		{
			name: "mcq missing explanation",
			raw:  `{"type":"mcq","question":"Q","options":["a","b","c","d"],"answer_index":0}`,
		},
		{
			name: "short missing answer",
			raw:  `{"type":"short","question":"Q","rubric_keywords":["k1","k2","k3"],"explanation":"E"}`,
		},
		{
			name: "short missing rubric keywords",
			raw:  `{"type":"short","question":"Q","answer":"A","explanation":"E"}`,
		},
		{
			name: "short empty rubric keywords",
			raw:  `{"type":"short","question":"Q","answer":"A","rubric_keywords":[],"explanation":"E"}`,
		},
		{
			name: "short too few rubric keywords",
			raw:  `{"type":"short","question":"Q","answer":"A","rubric_keywords":["k1","k2"],"explanation":"E"}`,
		},
		{
			name: "short too many rubric keywords",
			raw:  `{"type":"short","question":"Q","answer":"A","rubric_keywords":["k1","k2","k3","k4","k5","k6","k7"],"explanation":"E"}`,
		},
		{
			name: "short missing explanation",
			raw:  `{"type":"short","question":"Q","answer":"A","rubric_keywords":["k1","k2","k3"]}`,
		},
		{
			name: "empty question",
			raw:  `{"type":"short","question":"","answer":"A","rubric_keywords":["k1","k2","k3"],"explanation":"E"}`,
		},
		{
			name: "unknown type",
			raw:  `{"type":"essay","question":"Q"}`,
		},
		{
			name: "missing type",
			raw:  `{"question":"Q"}`,
		},
		{
			name: "not an object",
			raw:  `["a","b"]`,
		},
		{
			name: "malformed JSON",
			raw:  `{oops`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := validateItem(json.RawMessage(tt.raw)); err == nil {
				t.Fatal("expected rejection")
			}
		})
	}
}

func TestItemMarshalJSON_VariantFields(t *testing.T) {
	short := Item{
		Type:           TypeShort,
		Question:       "What causes tides?",
		Answer:         "The moon's gravity",
		RubricKeywords: []string{"moon", "gravity", "pull"},
		Explanation:    "Tides follow the moon.",
	}
	b, err := json.Marshal(short)
	if err != nil {
		t.Fatalf("marshal short: %v", err)
	}
	if strings.Contains(string(b), "answer_index") {
		t.Errorf("short item should not serialize answer_index: %s", b)
	}
	if strings.Contains(string(b), `"options"`) {
		t.Errorf("short item should not serialize options: %s", b)
	}
	if !strings.Contains(string(b), `"explanation":"Tides follow the moon."`) {
		t.Errorf("short item should serialize its explanation: %s", b)
	}

	mcq := Item{
		Type:        TypeMCQ,
		Question:    "What is the sun?",
		Options:     []string{"A star", "A planet", "A moon", "A comet"},
		AnswerIndex: 0,
		Explanation: "The sun is a star.",
	}
	b, err = json.Marshal(mcq)
	if err != nil {
		t.Fatalf("marshal mcq: %v", err)
	}
	if !strings.Contains(string(b), `"answer_index":0`) {
		t.Errorf("mcq item should serialize its zero answer_index: %s", b)
	}
	if strings.Contains(string(b), "rubric_keywords") {
		t.Errorf("mcq item should not serialize rubric_keywords: %s", b)
	}
	if !strings.Contains(string(b), `"explanation":"The sun is a star."`) {
		t.Errorf("mcq item should serialize its explanation: %s", b)
	}
}

func TestQuizRoundTrip(t *testing.T) {
	quiz := Quiz{
		ID: "q-1",
		Questions: []Item{
			{Type: TypeMCQ, Question: "Q1", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 2, Explanation: "E1"},
			{Type: TypeShort, Question: "Q2", Answer: "A", RubricKeywords: []string{"a", "b", "c"}, Explanation: "E2"},
		},
	}

	b, err := json.Marshal(quiz)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Quiz
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != quiz.ID || len(got.Questions) != 2 {
		t.Fatalf("round trip lost data: %+v", got)
	}
	if got.Questions[0].AnswerIndex != 2 {
		t.Errorf("answer index = %d, want 2", got.Questions[0].AnswerIndex)
	}
	if got.Questions[1].Answer != "A" {
		t.Errorf("answer = %q, want A", got.Questions[1].Answer)
	}
	if got.Questions[0].Explanation != "E1" || got.Questions[1].Explanation != "E2" {
		t.Errorf("explanations lost in round trip: %+v", got.Questions)
	}
	if !strings.Contains(string(b), `"items"`) {
		t.Errorf("quiz should serialize questions under items: %s", b)
	}
}
