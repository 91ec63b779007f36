// Package retrieval ranks document chunks against a free-form query by
// token-set overlap. It is deliberately lexical: no embeddings, no index.
package retrieval

import (
	"sort"
	"strings"

	"github.com/docentlabs/docent/internal/chunker"
)

// ContextSeparator joins the selected chunks in the returned context.
const ContextSeparator = "\n\n---\n\n"

// lengthPenalty nudges scores so that, among chunks with equal overlap,
// shorter ones win. It is small enough that overlap always dominates.
const lengthPenalty = 1e-5

// Config controls retrieval granularity and output size.
type Config struct {
	// ChunkChars is the chunk size used for retrieval. Smaller than the
	// reduction chunk size so scoring operates on focused passages.
	ChunkChars int

	// TopK is how many chunks are joined into the context window.
	TopK int

	// MaxContextChars caps the returned context. The cut is a hard
	// character truncation, not paragraph-aware.
	MaxContextChars int
}

// DefaultConfig returns the standard retrieval settings.
func DefaultConfig() Config {
	return Config{
		ChunkChars:      3000,
		TopK:            4,
		MaxContextChars: 16000,
	}
}

// scoredChunk pairs a chunk with its overlap score for one retrieval call.
type scoredChunk struct {
	score float64
	text  string
}

// BuildContext selects the chunks of fullText most relevant to query and
// joins them into a bounded context string. When the query shares no tokens
// with the document, scores reduce to the length penalty alone and the
// shortest chunks are returned; deciding that the context is insufficient is
// the answering layer's job, not the retriever's.
func BuildContext(fullText, query string, cfg Config) string {
	chunks := chunker.Split(fullText, cfg.ChunkChars)
	if len(chunks) == 0 {
		return ""
	}

	queryTokens := tokenize(query)

	scored := make([]scoredChunk, 0, len(chunks))
	for _, c := range chunks {
		scored = append(scored, scoredChunk{
			score: float64(overlap(queryTokens, tokenize(c))) - lengthPenalty*float64(len(c)),
			text:  c,
		})
	}

	// Stable sort keeps document order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	top := scored
	if len(top) > cfg.TopK {
		top = top[:cfg.TopK]
	}

	parts := make([]string, len(top))
	for i, sc := range top {
		parts[i] = sc.text
	}

	return truncate(strings.Join(parts, ContextSeparator), cfg.MaxContextChars)
}

// tokenize lower-cases s and splits on whitespace into a set of tokens.
// Order is discarded and duplicates collapse.
func tokenize(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, f := range strings.Fields(strings.ToLower(s)) {
		tokens[f] = struct{}{}
	}
	return tokens
}

// overlap counts tokens present in both sets.
func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for t := range a {
		if _, ok := b[t]; ok {
			n++
		}
	}
	return n
}

// truncate hard-cuts s to at most max characters.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
