package reduce

import (
	"fmt"
	"strings"
)

const summaryMaxLines = 5

const summarySystem = "You are a careful reading assistant. Work only from the provided text and never invent facts."

const keypointSystem = "You are a careful reading assistant. Extract key points strictly from the provided text."

func summaryDirectPrompt(text string) string {
	return fmt.Sprintf("Summarize the following document in at most %d lines.\n\n%s", summaryMaxLines, text)
}

func summaryMapPrompt(chunk string) string {
	return fmt.Sprintf("Summarize the following section of a document in two or three sentences. Keep only the essential facts.\n\n%s", chunk)
}

func summaryReducePrompt(partials []string) string {
	return fmt.Sprintf(
		"The following are partial summaries of consecutive sections of one document. Merge them into a single coherent summary of at most %d lines.\n\n%s",
		summaryMaxLines,
		strings.Join(partials, "\n\n"),
	)
}

func keypointDirectPrompt(text string) string {
	return fmt.Sprintf("Extract 15 to 25 key points from the following document. Prioritize definitions, principles, rules, structures, and procedures over examples. Output one bullet per line, each starting with \"- \". Do not add commentary.\n\n%s", text)
}

func keypointMapPrompt(chunk string) string {
	return fmt.Sprintf("Extract 5 to 8 key points from the following section of a document. Output one bullet per line, each starting with \"- \". Do not add commentary.\n\n%s", chunk)
}

func keypointReducePrompt(partials []string) string {
	return fmt.Sprintf(
		"The following are key points extracted from consecutive sections of one document. Merge and deduplicate them into 15 to 25 bullets that cover the whole document. Prioritize definitions, principles, rules, structures, and procedures over examples. Output one bullet per line, each starting with \"- \".\n\n%s",
		strings.Join(partials, "\n"),
	)
}
