// Package qa answers questions about a document using lexical retrieval
// to ground the model in the most relevant chunks.
package qa

import (
	"context"
	"fmt"
	"strings"

	"github.com/docentlabs/docent/internal/llm"
	"github.com/docentlabs/docent/internal/retrieval"
)

const system = "You are a document assistant. Answer using only the provided context. " +
	"If the context does not contain the answer, say that the document does not cover it. Do not use outside knowledge."

// Answerer answers questions grounded in retrieved document context.
type Answerer struct {
	provider  llm.Provider
	retrieval retrieval.Config
	maxTokens int
}

// New creates an Answerer with default retrieval configuration.
func New(p llm.Provider) *Answerer {
	return &Answerer{
		provider:  p,
		retrieval: retrieval.DefaultConfig(),
		maxTokens: 1024,
	}
}

// Result holds the answer and the context it was grounded on.
type Result struct {
	Answer  string
	Context string
}

// Ask retrieves the chunks most relevant to the question and asks the
// model to answer from them alone.
func (a *Answerer) Ask(ctx context.Context, document, question string) (*Result, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("question is empty")
	}

	grounding := retrieval.BuildContext(document, question, a.retrieval)
	if strings.TrimSpace(grounding) == "" {
		return &Result{Answer: "The document has no content to answer from."}, nil
	}

	prompt := fmt.Sprintf("Context:\n%s\n\nQuestion: %s", grounding, question)

	resp, err := a.provider.Generate(llm.WithPurpose(ctx, "qa"), llm.Request{
		System:    system,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens: a.maxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Answer:  strings.TrimSpace(resp.Text()),
		Context: grounding,
	}, nil
}
