// Package grader scores quiz submissions deterministically, with no model
// calls: MCQ answers by index equality, short answers by rubric keyword
// coverage.
package grader

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/docentlabs/docent/internal/quizgen"
)

// correctThreshold is the rubric coverage ratio at which a short answer
// counts as correct.
const correctThreshold = 0.5

// Submission is one answer keyed to a question index. Answer holds a JSON
// number for MCQ items and a JSON string for short items; anything else
// grades as incorrect.
type Submission struct {
	Index  int             `json:"index"`
	Answer json.RawMessage `json:"answer"`
}

// NewChoiceSubmission builds an MCQ submission for the given option.
func NewChoiceSubmission(index, choice int) Submission {
	raw, _ := json.Marshal(choice)
	return Submission{Index: index, Answer: raw}
}

// NewTextSubmission builds a short-answer submission.
func NewTextSubmission(index int, text string) Submission {
	raw, _ := json.Marshal(text)
	return Submission{Index: index, Answer: raw}
}

// Result is the grade for a single question. RubricHit and RubricTotal are
// short-answer diagnostics; both stay zero for MCQ items.
type Result struct {
	Index         int              `json:"index"`
	Type          quizgen.ItemType `json:"type"`
	Question      string           `json:"question"`
	Given         string           `json:"given"`
	CorrectAnswer string           `json:"correct_answer"`
	Correct       bool             `json:"correct"`
	Score         float64          `json:"score"`
	RubricHit     int              `json:"rubric_hit"`
	RubricTotal   int              `json:"rubric_total"`
	Feedback      string           `json:"feedback"`
}

// Report is the grade for a whole quiz attempt.
type Report struct {
	Results  []Result `json:"results"`
	Accuracy float64  `json:"accuracy"`
}

// Grade scores every question in the quiz. Questions without a submission
// grade as incorrect. Grading is pure: the same items and submissions
// always produce the same report.
func Grade(items []quizgen.Item, subs []Submission) Report {
	byIndex := make(map[int]Submission, len(subs))
	for _, s := range subs {
		byIndex[s.Index] = s
	}

	report := Report{Results: make([]Result, len(items))}
	correct := 0

	for i, item := range items {
		sub, answered := byIndex[i]

		var res Result
		switch item.Type {
		case quizgen.TypeShort:
			res = gradeShort(item, sub, answered)
		default:
			res = gradeMCQ(item, sub, answered)
		}
		res.Index = i
		res.Type = item.Type
		res.Question = item.Question

		if res.Correct {
			correct++
		}
		report.Results[i] = res
	}

	if len(items) > 0 {
		report.Accuracy = float64(correct) / float64(len(items))
	}
	return report
}

// gradeMCQ scores by strict index equality. A missing, non-integer, or
// out-of-range answer is never correct.
func gradeMCQ(item quizgen.Item, sub Submission, answered bool) Result {
	res := Result{}

	choice := -1
	if answered {
		var n int
		if err := json.Unmarshal(sub.Answer, &n); err == nil {
			choice = n
		}
	}

	if choice >= 0 && choice < len(item.Options) {
		res.Given = item.Options[choice]
	}
	if item.AnswerIndex >= 0 && item.AnswerIndex < len(item.Options) {
		res.CorrectAnswer = item.Options[item.AnswerIndex]
	}

	if choice == item.AnswerIndex {
		res.Correct = true
		res.Score = 1
		res.Feedback = withExplanation("Correct.", item.Explanation)
		return res
	}

	if res.CorrectAnswer != "" {
		res.Feedback = withExplanation(fmt.Sprintf("Incorrect. The correct answer is %q.", res.CorrectAnswer), item.Explanation)
	} else {
		res.Feedback = withExplanation("Incorrect.", item.Explanation)
	}
	return res
}

// gradeShort scores by rubric keyword coverage: the fraction of keywords
// that appear in the lowercased answer, rounded to two decimals.
func gradeShort(item quizgen.Item, sub Submission, answered bool) Result {
	res := Result{}

	var text string
	if answered {
		_ = json.Unmarshal(sub.Answer, &text)
	}
	res.Given = text
	res.CorrectAnswer = item.Answer

	lowered := strings.ToLower(text)
	hits := 0
	for _, kw := range item.RubricKeywords {
		if kw != "" && strings.Contains(lowered, strings.ToLower(kw)) {
			hits++
		}
	}

	total := len(item.RubricKeywords)
	if total < 1 {
		total = 1
	}
	ratio := float64(hits) / float64(total)

	res.RubricHit = hits
	res.RubricTotal = len(item.RubricKeywords)
	res.Score = math.Round(ratio*100) / 100
	res.Correct = ratio >= correctThreshold
	res.Feedback = shortFeedback(item, hits, ratio)
	return res
}

// shortFeedback tiers by coverage: the top tier appends the item's
// explanation, the bottom tier names the full keyword set.
func shortFeedback(item quizgen.Item, hits int, ratio float64) string {
	total := len(item.RubricKeywords)
	switch {
	case ratio >= 0.8:
		return withExplanation(fmt.Sprintf("Good. You included %d/%d key ideas.", hits, total), item.Explanation)
	case ratio >= correctThreshold:
		return fmt.Sprintf("Partial credit. You included %d/%d key ideas. Add the missing keywords.", hits, total)
	default:
		if total == 0 {
			return "Needs work. Review this topic."
		}
		return fmt.Sprintf("Needs work. You included %d/%d key ideas. Your answer should mention: %s.",
			hits, total, strings.Join(item.RubricKeywords, ", "))
	}
}

func withExplanation(msg, explanation string) string {
	if explanation == "" {
		return msg
	}
	return msg + " " + explanation
}
