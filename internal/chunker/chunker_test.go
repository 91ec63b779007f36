package chunker

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplit_EmptyInput(t *testing.T) {
	if got := Split("", 100); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
	if got := Split("\n\n\n\n", 100); got != nil {
		t.Fatalf("expected nil for whitespace-only input, got %v", got)
	}
}

func TestSplit_SingleParagraph(t *testing.T) {
	got := Split("hello world", 100)
	want := []string{"hello world"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplit_ParagraphPerChunkAtTightLimit(t *testing.T) {
	// With maxChars=5 no two 2-char paragraphs can share a chunk
	// (2 + 2 + separator = 6 > 5), so each becomes its own chunk.
	got := Split("ab\n\ncd\n\nef", 5)
	want := []string{"ab", "cd", "ef"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplit_GreedyAccumulation(t *testing.T) {
	// All three paragraphs fit in a single 10-char buffer: 2+2+2 text
	// plus two 2-char separators.
	got := Split("ab\n\ncd\n\nef", 10)
	want := []string{"ab\n\ncd\n\nef"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplit_FlushOnOverflow(t *testing.T) {
	got := Split("aaaa\n\nbbbb\n\ncc", 10)
	want := []string{"aaaa\n\nbbbb", "cc"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplit_OversizedParagraphHardWrapped(t *testing.T) {
	got := Split("abcdefghij", 4)
	want := []string{"abcd", "efgh", "ij"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplit_OversizedParagraphFlushesBuffer(t *testing.T) {
	got := Split("ab\n\nabcdefghij", 4)
	want := []string{"ab", "abcd", "efgh", "ij"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplit_NoChunkExceedsLimit(t *testing.T) {
	text := strings.Repeat("word word word.\n\n", 50) + strings.Repeat("x", 300)
	for _, max := range []int{10, 40, 100, 500} {
		for i, c := range Split(text, max) {
			if utf8.RuneCountInString(c) > max {
				t.Errorf("maxChars=%d: chunk %d has %d chars", max, i, utf8.RuneCountInString(c))
			}
		}
	}
}

func TestSplit_ReconstructsParagraphs(t *testing.T) {
	text := "alpha beta\n\ngamma\n\n  delta epsilon  \n\nzeta"
	joined := strings.Join(Split(text, 20), Separator)

	var wantParts []string
	for _, p := range strings.Split(text, Separator) {
		if p = strings.TrimSpace(p); p != "" {
			wantParts = append(wantParts, p)
		}
	}
	if joined != strings.Join(wantParts, Separator) {
		t.Fatalf("rejoined chunks do not reconstruct trimmed paragraphs:\n%q", joined)
	}
}

func TestSplit_Deterministic(t *testing.T) {
	text := strings.Repeat("some paragraph of text here.\n\n", 30)
	first := Split(text, 64)
	for i := 0; i < 5; i++ {
		if !reflect.DeepEqual(Split(text, 64), first) {
			t.Fatal("expected identical output across calls")
		}
	}
}

func TestSplit_MultibyteRunesNotBroken(t *testing.T) {
	text := strings.Repeat("한", 10)
	for _, c := range Split(text, 4) {
		if !utf8.ValidString(c) {
			t.Fatalf("chunk %q contains a broken rune", c)
		}
		if utf8.RuneCountInString(c) > 4 {
			t.Fatalf("chunk %q exceeds 4 runes", c)
		}
	}
}
