// Package chunker splits raw document text into size-bounded chunks along
// paragraph boundaries. Chunking is deterministic: the same text and limit
// always produce the same sequence.
package chunker

import (
	"strings"
	"unicode/utf8"
)

// Separator joins paragraphs inside a chunk. Its length counts against the
// chunk size limit when paragraphs are accumulated.
const Separator = "\n\n"

// Split breaks text into chunks of at most maxChars characters.
//
// Paragraphs (blank-line delimited, trimmed) are greedily accumulated into a
// buffer until adding the next one would exceed maxChars, at which point the
// buffer is flushed as a chunk. A single paragraph longer than maxChars is
// hard-wrapped into fixed-size slices rather than dropped; the wrap is not
// word-boundary aware. Empty input yields no chunks.
func Split(text string, maxChars int) []string {
	if maxChars <= 0 {
		return nil
	}

	var chunks []string
	var current string

	for _, paragraph := range strings.Split(text, Separator) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		if runeLen(paragraph) > maxChars {
			if current != "" {
				chunks = append(chunks, current)
				current = ""
			}
			chunks = append(chunks, hardWrap(paragraph, maxChars)...)
			continue
		}

		switch {
		case current == "":
			current = paragraph
		case runeLen(current)+runeLen(paragraph)+len(Separator) <= maxChars:
			current = current + Separator + paragraph
		default:
			chunks = append(chunks, current)
			current = paragraph
		}
	}

	if current != "" {
		chunks = append(chunks, current)
	}

	return chunks
}

// hardWrap slices an oversized paragraph into maxChars-sized pieces.
func hardWrap(paragraph string, maxChars int) []string {
	runes := []rune(paragraph)
	slices := make([]string, 0, (len(runes)+maxChars-1)/maxChars)
	for start := 0; start < len(runes); start += maxChars {
		end := start + maxChars
		if end > len(runes) {
			end = len(runes)
		}
		slices = append(slices, string(runes[start:end]))
	}
	return slices
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
