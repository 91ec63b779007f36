package retrieval

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func testConfig() Config {
	return Config{
		ChunkChars:      40,
		TopK:            2,
		MaxContextChars: 1000,
	}
}

func TestBuildContext_EmptyDocument(t *testing.T) {
	if got := BuildContext("", "anything", testConfig()); got != "" {
		t.Fatalf("expected empty context, got %q", got)
	}
}

func TestBuildContext_PrefersOverlappingChunks(t *testing.T) {
	doc := "cats purr and sleep all day\n\n" +
		"stock markets fell sharply today\n\n" +
		"dogs bark at cats in the yard"

	ctx := BuildContext(doc, "why do cats purr", testConfig())

	if !strings.Contains(ctx, "cats purr and sleep all day") {
		t.Fatalf("expected best-overlap chunk in context, got %q", ctx)
	}
	if strings.Contains(ctx, "stock markets") {
		t.Fatalf("expected zero-overlap chunk excluded, got %q", ctx)
	}
}

func TestBuildContext_OverlapDominatesLength(t *testing.T) {
	// The long chunk overlaps on two tokens, the short one on a single
	// token. The length penalty must not flip that ordering.
	doc := "quantum computing uses qubits for parallel computation\n\n" +
		"qubits exist"

	cfg := testConfig()
	cfg.ChunkChars = 80
	cfg.TopK = 1

	ctx := BuildContext(doc, "quantum computing explained", cfg)
	if !strings.HasPrefix(ctx, "quantum computing uses") {
		t.Fatalf("expected higher-overlap chunk to win, got %q", ctx)
	}
}

func TestBuildContext_NoOverlapReturnsShortestChunks(t *testing.T) {
	doc := "aaaa aaaa aaaa aaaa aaaa aaaa\n\nbb bb"

	cfg := testConfig()
	cfg.ChunkChars = 30
	cfg.TopK = 1

	ctx := BuildContext(doc, "zzz qqq", cfg)
	if ctx != "bb bb" {
		t.Fatalf("expected shortest chunk under pure length penalty, got %q", ctx)
	}
}

func TestBuildContext_TiesKeepDocumentOrder(t *testing.T) {
	// Same token content and same length: scores are identical, so the
	// stable sort must keep original chunk order.
	doc := "tok one\n\ntok two\n\ntok six"

	cfg := testConfig()
	cfg.ChunkChars = 8
	cfg.TopK = 3

	ctx := BuildContext(doc, "tok", cfg)
	want := "tok one" + ContextSeparator + "tok two" + ContextSeparator + "tok six"
	if ctx != want {
		t.Fatalf("expected document order preserved, got %q", ctx)
	}
}

func TestBuildContext_TruncatesToLimit(t *testing.T) {
	doc := strings.Repeat("relevant token text.\n\n", 20)

	cfg := testConfig()
	cfg.MaxContextChars = 25

	ctx := BuildContext(doc, "relevant token", cfg)
	if utf8.RuneCountInString(ctx) > 25 {
		t.Fatalf("expected at most 25 chars, got %d", utf8.RuneCountInString(ctx))
	}
}

func TestBuildContext_FitsWithinLimitUnmodified(t *testing.T) {
	doc := "alpha beta\n\ngamma delta"

	cfg := testConfig()
	cfg.ChunkChars = 12
	cfg.TopK = 4
	cfg.MaxContextChars = 10000

	ctx := BuildContext(doc, "alpha gamma", cfg)
	if !strings.Contains(ctx, ContextSeparator) {
		t.Fatalf("expected full top-K join, got %q", ctx)
	}
	if len(ctx) != len("alpha beta")+len(ContextSeparator)+len("gamma delta") {
		t.Fatalf("expected unmodified join, got %q", ctx)
	}
}

func TestTokenize_CollapsesCaseAndDuplicates(t *testing.T) {
	tokens := tokenize("The THE the quick Quick")
	if len(tokens) != 2 {
		t.Fatalf("expected 2 distinct tokens, got %d", len(tokens))
	}
	if _, ok := tokens["the"]; !ok {
		t.Fatal("expected lower-cased token 'the'")
	}
}
