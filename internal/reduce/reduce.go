package reduce

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/docentlabs/docent/internal/chunker"
	"github.com/docentlabs/docent/internal/llm"
)

// EmptySummary is returned for documents with no content. No LLM call is made.
const EmptySummary = "There is no content to summarize."

// Config controls chunk sizes and parallelism for hierarchical reduction.
type Config struct {
	SummaryChunkChars  int // chunk size for the summary map step
	KeypointChunkChars int // chunk size for the keypoint map step
	MaxWorkers         int // concurrent map calls
	MaxTokens          int // per-request output budget
}

// DefaultConfig matches the chunk sizes the pipeline was tuned for.
func DefaultConfig() Config {
	return Config{
		SummaryChunkChars:  6000,
		KeypointChunkChars: 4000,
		MaxWorkers:         4,
		MaxTokens:          1024,
	}
}

// Reducer condenses long documents with a map/reduce pass over chunks.
type Reducer struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Reducer with default configuration.
func New(p llm.Provider) *Reducer {
	return NewWithConfig(p, DefaultConfig())
}

// NewWithConfig creates a Reducer with explicit configuration.
func NewWithConfig(p llm.Provider, cfg Config) *Reducer {
	if cfg.SummaryChunkChars <= 0 {
		cfg.SummaryChunkChars = DefaultConfig().SummaryChunkChars
	}
	if cfg.KeypointChunkChars <= 0 {
		cfg.KeypointChunkChars = DefaultConfig().KeypointChunkChars
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = DefaultConfig().MaxWorkers
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	return &Reducer{provider: p, cfg: cfg}
}

// Summarize produces a summary of at most five lines. Documents that fit in
// a single chunk are summarized directly; longer documents get per-chunk
// partial summaries that are merged in a final reduce call.
func (r *Reducer) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return EmptySummary, nil
	}

	chunks := chunker.Split(text, r.cfg.SummaryChunkChars)
	if len(chunks) == 1 {
		out, err := r.generate(ctx, "summary-reduce", summarySystem, summaryDirectPrompt(chunks[0]))
		if err != nil {
			return "", err
		}
		return clampLines(out, summaryMaxLines), nil
	}

	partials, err := r.mapChunks(ctx, chunks, "summary-map", summarySystem, summaryMapPrompt)
	if err != nil {
		return "", err
	}

	out, err := r.generate(ctx, "summary-reduce", summarySystem, summaryReducePrompt(partials))
	if err != nil {
		return "", err
	}
	return clampLines(out, summaryMaxLines), nil
}

// Keypoints extracts 15 to 25 deduplicated bullet points. Each chunk
// contributes 5 to 8 bullets in the map step.
func (r *Reducer) Keypoints(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}

	chunks := chunker.Split(text, r.cfg.KeypointChunkChars)
	if len(chunks) == 1 {
		return r.generate(ctx, "keypoint-reduce", keypointSystem, keypointDirectPrompt(chunks[0]))
	}

	partials, err := r.mapChunks(ctx, chunks, "keypoint-map", keypointSystem, keypointMapPrompt)
	if err != nil {
		return "", err
	}

	return r.generate(ctx, "keypoint-reduce", keypointSystem, keypointReducePrompt(partials))
}

// mapChunks runs the map prompt over every chunk with bounded parallelism.
// Partials are returned in chunk order regardless of completion order.
func (r *Reducer) mapChunks(ctx context.Context, chunks []string, purpose, system string, prompt func(string) string) ([]string, error) {
	partials := make([]string, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.MaxWorkers)

	for i, chunk := range chunks {
		g.Go(func() error {
			out, err := r.generate(gctx, purpose, system, prompt(chunk))
			if err != nil {
				return err
			}
			partials[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}

func (r *Reducer) generate(ctx context.Context, purpose, system, prompt string) (string, error) {
	resp, err := r.provider.Generate(llm.WithPurpose(ctx, purpose), llm.Request{
		System:    system,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens: r.cfg.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

// clampLines keeps at most n non-empty lines of s.
func clampLines(s string, n int) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
		if len(kept) == n {
			break
		}
	}
	return strings.Join(kept, "\n")
}
