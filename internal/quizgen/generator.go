package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/docentlabs/docent/internal/llm"
	"github.com/docentlabs/docent/internal/reduce"
)

const (
	// MinQuestions and MaxQuestions bound the requested question count.
	MinQuestions = 3
	MaxQuestions = 5

	// fallbackMaterialChars limits raw document material when keypoint
	// extraction yields nothing.
	fallbackMaterialChars = 4000
)

// Generator produces validated quizzes from document text.
type Generator struct {
	provider  llm.Provider
	reducer   *reduce.Reducer
	maxTokens int
}

// NewGenerator creates a Generator that condenses source material through
// the given provider.
func NewGenerator(p llm.Provider) *Generator {
	return &Generator{
		provider:  p,
		reducer:   reduce.New(p),
		maxTokens: 2048,
	}
}

// Generate builds a quiz of roughly count questions from the document.
// The count is clamped to [MinQuestions, MaxQuestions]. Key points are
// extracted first so the quiz covers the whole document rather than its
// opening chunk. Malformed questions are dropped; generation fails only
// when no question survives validation.
//
// Quiz generation always bypasses the response cache: repeated runs over
// the same document should produce fresh questions.
func (g *Generator) Generate(ctx context.Context, document string, count int) (*Quiz, *Stats, error) {
	document = strings.TrimSpace(document)
	if document == "" {
		return nil, nil, fmt.Errorf("document is empty")
	}

	count = clampCount(count)

	material, err := g.material(ctx, document)
	if err != nil {
		return nil, nil, fmt.Errorf("extract keypoints: %w", err)
	}

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, "quiz-gen"), llm.Request{
		System:    generateSystem,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: generatePrompt(material, count)}},
		MaxTokens: g.maxTokens,
		NoCache:   true,
	})
	if err != nil {
		return nil, nil, err
	}

	payload, err := extractJSON(resp.Text())
	if err != nil {
		return nil, nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	var parsed struct {
		Questions []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("decode quiz: %w", err)}
	}

	stats := &Stats{Requested: count, Parsed: len(parsed.Questions)}

	var kept []Item
	for _, raw := range parsed.Questions {
		item, err := validateItem(raw)
		if err != nil {
			stats.Dropped++
			continue
		}
		kept = append(kept, item)
	}

	if len(kept) == 0 {
		return nil, nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("no valid questions in response (%d parsed, %d dropped)", stats.Parsed, stats.Dropped),
		}
	}

	if len(kept) > count {
		kept = kept[:count]
	}
	stats.Kept = len(kept)

	return &Quiz{ID: uuid.NewString(), Questions: kept}, stats, nil
}

// material condenses the document to key points. A failed extraction fails
// the whole generation; the raw document head substitutes only when the
// reduction succeeds but produces no text.
func (g *Generator) material(ctx context.Context, document string) (string, error) {
	keypoints, err := g.reducer.Keypoints(ctx, document)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(keypoints) != "" {
		return keypoints, nil
	}

	runes := []rune(document)
	if len(runes) > fallbackMaterialChars {
		return string(runes[:fallbackMaterialChars]), nil
	}
	return document, nil
}

func clampCount(n int) int {
	if n < MinQuestions {
		return MinQuestions
	}
	if n > MaxQuestions {
		return MaxQuestions
	}
	return n
}
