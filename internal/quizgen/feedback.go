package quizgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/docentlabs/docent/internal/llm"
)

// Feedback explains a wrong answer in plain language. MCQ feedback names
// the chosen and correct options; short-answer feedback contrasts the
// learner's text with the rubric. Feedback is never cached: it is specific
// to one attempt.
func (g *Generator) Feedback(ctx context.Context, item Item, givenIndex int, givenAnswer string) (string, error) {
	var prompt string
	switch item.Type {
	case TypeMCQ:
		if item.AnswerIndex < 0 || item.AnswerIndex >= len(item.Options) {
			return "", fmt.Errorf("mcq item has no valid answer index")
		}
		prompt = feedbackMCQPrompt(item, givenIndex)
	case TypeShort:
		prompt = feedbackShortPrompt(item, givenAnswer)
	default:
		return "", fmt.Errorf("unknown item type %q", item.Type)
	}

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, "feedback"), llm.Request{
		System:    feedbackSystem,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens: 512,
		NoCache:   true,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}
