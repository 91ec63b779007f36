package grader

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/docentlabs/docent/internal/quizgen"
)

func mcqItem(question string, options []string, answer int) quizgen.Item {
	return quizgen.Item{
		Type:        quizgen.TypeMCQ,
		Question:    question,
		Options:     options,
		AnswerIndex: answer,
	}
}

func shortItem(question, answer string, keywords []string) quizgen.Item {
	return quizgen.Item{
		Type:           quizgen.TypeShort,
		Question:       question,
		Answer:         answer,
		RubricKeywords: keywords,
	}
}

func TestGradeEchoesCorrectAnswer(t *testing.T) {
	items := []quizgen.Item{
		mcqItem("Capital of France?", []string{"Berlin", "Paris", "Rome", "Madrid"}, 1),
		shortItem("Q?", "The moon's gravity", []string{"moon", "gravity", "pull"}),
	}
	subs := []Submission{
		NewChoiceSubmission(0, 2),
		NewTextSubmission(1, "no idea"),
	}

	report := Grade(items, subs)
	if got := report.Results[0].CorrectAnswer; got != "Paris" {
		t.Errorf("mcq correct answer = %q, want Paris", got)
	}
	if got := report.Results[1].CorrectAnswer; got != "The moon's gravity" {
		t.Errorf("short correct answer = %q, want the model answer", got)
	}
}

func TestGradeShortRubricDiagnostics(t *testing.T) {
	items := []quizgen.Item{
		shortItem("Q?", "ans", []string{"x", "y", "z", "w"}),
	}
	subs := []Submission{NewTextSubmission(0, "x and y")}

	report := Grade(items, subs)
	res := report.Results[0]
	if res.RubricHit != 2 || res.RubricTotal != 4 {
		t.Errorf("rubric = %d/%d, want 2/4", res.RubricHit, res.RubricTotal)
	}
	if res.Score != 0.5 || !res.Correct {
		t.Errorf("score/correct = %v/%v, want 0.5/true", res.Score, res.Correct)
	}

	// MCQ results carry no rubric diagnostics.
	mcqReport := Grade([]quizgen.Item{
		mcqItem("Q?", []string{"a", "b", "c", "d"}, 0),
	}, []Submission{NewChoiceSubmission(0, 0)})
	mcqRes := mcqReport.Results[0]
	if mcqRes.RubricHit != 0 || mcqRes.RubricTotal != 0 {
		t.Errorf("mcq rubric = %d/%d, want 0/0", mcqRes.RubricHit, mcqRes.RubricTotal)
	}
}

func TestGradeFeedbackCarriesExplanation(t *testing.T) {
	mcq := mcqItem("Q?", []string{"a", "b", "c", "d"}, 0)
	mcq.Explanation = "Option a is defined in section 2."
	short := shortItem("Q?", "ans", []string{"alpha", "beta", "gamma"})
	short.Explanation = "The rubric follows the definition."

	report := Grade([]quizgen.Item{mcq, short}, []Submission{
		NewChoiceSubmission(0, 0),
		NewTextSubmission(1, "alpha beta gamma"),
	})
	if !strings.Contains(report.Results[0].Feedback, "Option a is defined in section 2.") {
		t.Errorf("mcq feedback = %q, want explanation appended", report.Results[0].Feedback)
	}
	if !strings.Contains(report.Results[1].Feedback, "The rubric follows the definition.") {
		t.Errorf("short feedback = %q, want explanation appended", report.Results[1].Feedback)
	}
}

func TestGradeMCQ(t *testing.T) {
	items := []quizgen.Item{
		mcqItem("Capital of France?", []string{"Berlin", "Paris", "Rome", "Madrid"}, 1),
	}

	report := Grade(items, []Submission{NewChoiceSubmission(0, 1)})
	res := report.Results[0]
	if !res.Correct {
		t.Fatalf("expected correct, got %+v", res)
	}
	if res.Score != 1 {
		t.Errorf("score = %v, want 1", res.Score)
	}
	if res.Given != "Paris" {
		t.Errorf("given = %q, want %q", res.Given, "Paris")
	}
	if report.Accuracy != 1 {
		t.Errorf("accuracy = %v, want 1", report.Accuracy)
	}

	report = Grade(items, []Submission{NewChoiceSubmission(0, 2)})
	res = report.Results[0]
	if res.Correct {
		t.Fatalf("expected incorrect, got %+v", res)
	}
	if res.Score != 0 {
		t.Errorf("score = %v, want 0", res.Score)
	}
	if res.Given != "Rome" {
		t.Errorf("given = %q, want %q", res.Given, "Rome")
	}
	if report.Accuracy != 0 {
		t.Errorf("accuracy = %v, want 0", report.Accuracy)
	}
}

func TestGradeMCQMalformedAnswers(t *testing.T) {
	items := []quizgen.Item{
		mcqItem("Q?", []string{"a", "b", "c", "d"}, 0),
	}

	cases := []struct {
		name string
		raw  string
	}{
		{"string index", `"0"`},
		{"float index", `0.5`},
		{"negative", `-1`},
		{"out of range", `4`},
		{"object", `{"choice": 0}`},
		{"null", `null`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			subs := []Submission{{Index: 0, Answer: json.RawMessage(tc.raw)}}
			report := Grade(items, subs)
			if report.Results[0].Correct {
				t.Errorf("answer %s graded correct, want incorrect", tc.raw)
			}
		})
	}
}

func TestGradeMCQUnanswered(t *testing.T) {
	items := []quizgen.Item{
		mcqItem("Q?", []string{"a", "b", "c", "d"}, 2),
	}
	report := Grade(items, nil)
	res := report.Results[0]
	if res.Correct || res.Score != 0 {
		t.Fatalf("unanswered question graded %+v", res)
	}
	if res.Given != "" {
		t.Errorf("given = %q, want empty", res.Given)
	}
	if res.Feedback == "" {
		t.Error("expected feedback naming the correct option")
	}
}

func TestGradeShortFullCoverage(t *testing.T) {
	items := []quizgen.Item{
		shortItem("Explain photosynthesis.", "Plants convert light.", []string{"light", "chlorophyll", "glucose"}),
	}
	subs := []Submission{NewTextSubmission(0, "Chlorophyll absorbs LIGHT and the plant makes glucose.")}

	report := Grade(items, subs)
	res := report.Results[0]
	if !res.Correct {
		t.Fatalf("expected correct, got %+v", res)
	}
	if res.Score != 1 {
		t.Errorf("score = %v, want 1", res.Score)
	}
	if res.Feedback != "Good. You included 3/3 key ideas." {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestGradeShortHalfCoverageIsCorrect(t *testing.T) {
	items := []quizgen.Item{
		shortItem("Q?", "ans", []string{"alpha", "beta", "gamma", "delta"}),
	}
	subs := []Submission{NewTextSubmission(0, "alpha and beta only")}

	report := Grade(items, subs)
	res := report.Results[0]
	if !res.Correct {
		t.Fatalf("ratio 0.5 should grade correct, got %+v", res)
	}
	if res.Score != 0.5 {
		t.Errorf("score = %v, want 0.5", res.Score)
	}
	if res.Feedback != "Partial credit. You included 2/4 key ideas. Add the missing keywords." {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestGradeShortLowCoverage(t *testing.T) {
	items := []quizgen.Item{
		shortItem("Q?", "ans", []string{"alpha", "beta", "gamma"}),
	}
	subs := []Submission{NewTextSubmission(0, "only alpha here")}

	report := Grade(items, subs)
	res := report.Results[0]
	if res.Correct {
		t.Fatalf("ratio 1/3 should grade incorrect, got %+v", res)
	}
	if res.Score != 0.33 {
		t.Errorf("score = %v, want 0.33", res.Score)
	}
	if res.Feedback != "Needs work. You included 1/3 key ideas. Your answer should mention: alpha, beta, gamma." {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestGradeShortEmptyRubric(t *testing.T) {
	items := []quizgen.Item{
		shortItem("Q?", "ans", nil),
	}
	subs := []Submission{NewTextSubmission(0, "anything at all")}

	report := Grade(items, subs)
	res := report.Results[0]
	if res.Correct || res.Score != 0 {
		t.Fatalf("empty rubric should grade 0, got %+v", res)
	}
}

func TestGradeAccuracyMixed(t *testing.T) {
	items := []quizgen.Item{
		mcqItem("Q1?", []string{"a", "b", "c", "d"}, 0),
		mcqItem("Q2?", []string{"a", "b", "c", "d"}, 1),
		shortItem("Q3?", "ans", []string{"alpha", "beta"}),
	}
	subs := []Submission{
		NewChoiceSubmission(0, 0),
		NewChoiceSubmission(1, 3),
		NewTextSubmission(2, "alpha covers half"),
	}

	report := Grade(items, subs)
	want := 2.0 / 3.0
	if math.Abs(report.Accuracy-want) > 1e-9 {
		t.Errorf("accuracy = %v, want %v", report.Accuracy, want)
	}
}

func TestGradeEmptyQuiz(t *testing.T) {
	report := Grade(nil, nil)
	if report.Accuracy != 0 {
		t.Errorf("accuracy = %v, want 0", report.Accuracy)
	}
	if len(report.Results) != 0 {
		t.Errorf("results = %d, want 0", len(report.Results))
	}
}

func TestGradeDeterministic(t *testing.T) {
	items := []quizgen.Item{
		mcqItem("Q1?", []string{"a", "b", "c", "d"}, 2),
		shortItem("Q2?", "ans", []string{"alpha", "beta", "gamma"}),
	}
	subs := []Submission{
		NewChoiceSubmission(0, 2),
		NewTextSubmission(1, "alpha and gamma"),
	}

	first := Grade(items, subs)
	second := Grade(items, subs)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("grading not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestGradeScoreMonotonicWithCoverage(t *testing.T) {
	items := []quizgen.Item{
		shortItem("Q?", "ans", []string{"alpha", "beta", "gamma"}),
	}

	answers := []string{"", "alpha", "alpha beta", "alpha beta gamma"}
	prev := -1.0
	for _, a := range answers {
		report := Grade(items, []Submission{NewTextSubmission(0, a)})
		score := report.Results[0].Score
		if score < prev {
			t.Fatalf("score decreased from %v to %v at answer %q", prev, score, a)
		}
		prev = score
	}
}

func TestGradeCaseInsensitiveKeywords(t *testing.T) {
	items := []quizgen.Item{
		shortItem("Q?", "ans", []string{"TCP", "Handshake"}),
	}
	subs := []Submission{NewTextSubmission(0, "the tcp handshake has three steps")}

	report := Grade(items, subs)
	if report.Results[0].Score != 1 {
		t.Errorf("score = %v, want 1", report.Results[0].Score)
	}
}
