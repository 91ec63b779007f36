package quiz

import (
	"context"
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/docentlabs/docent/internal/llm"
	"github.com/docentlabs/docent/internal/quizgen"
	"github.com/docentlabs/docent/internal/router"
	"github.com/docentlabs/docent/internal/screens/results"
	"github.com/docentlabs/docent/internal/store"
)

// mockEventRepo implements store.EventRepo, capturing answer events.
type mockEventRepo struct {
	answers []store.AnswerEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendQuiz(_ context.Context, _ store.QuizEventData) error {
	return nil
}
func (m *mockEventRepo) QueryQuizEvents(_ context.Context, _ store.QueryOpts) ([]store.QuizEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetQuiz(_ context.Context, _ string) (*store.QuizEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}
func (m *mockEventRepo) QuizAccuracy(_ context.Context, _ string) (float64, error) {
	return 0, nil
}
func (m *mockEventRepo) AnswerStatsAll(_ context.Context) (store.AnswerStats, error) {
	return store.AnswerStats{}, nil
}
func (m *mockEventRepo) RecentMisses(_ context.Context, _ int) ([]store.AnswerEventRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuiz() *quizgen.Quiz {
	return &quizgen.Quiz{
		ID: "test-quiz",
		Questions: []quizgen.Item{
			{
				Type:        quizgen.TypeMCQ,
				Question:    "Capital of France?",
				Options:     []string{"Paris", "Berlin", "Rome", "Madrid"},
				AnswerIndex: 0,
			},
			{
				Type:           quizgen.TypeShort,
				Question:       "Name the protocol.",
				Answer:         "tcp",
				RubricKeywords: []string{"tcp"},
			},
		},
	}
}

func TestMCQSubmitGradesAndShowsFeedback(t *testing.T) {
	repo := &mockEventRepo{}
	s := New(testQuiz(), repo, nil)

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if !qs.showingFeedback {
		t.Fatal("expected feedback phase after submit")
	}
	if len(qs.graded) != 1 {
		t.Fatalf("graded = %d, want 1", len(qs.graded))
	}
	if !qs.graded[0].Correct {
		t.Errorf("option 0 should grade correct, got %+v", qs.graded[0])
	}
	if len(repo.answers) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answers))
	}
	if repo.answers[0].QuizID != "test-quiz" || repo.answers[0].QuestionIndex != 0 {
		t.Errorf("unexpected answer event: %+v", repo.answers[0])
	}
}

func TestWrongMCQRecordsIncorrect(t *testing.T) {
	repo := &mockEventRepo{}
	s := New(testQuiz(), repo, nil)

	scr, _ := s.Update(keyPress('2'))
	qs := scr.(*QuizScreen)

	if qs.graded[0].Correct {
		t.Error("option 1 should grade incorrect")
	}
	if repo.answers[0].Correct {
		t.Error("answer event should record incorrect")
	}
	if qs.loadingFeedback {
		t.Error("no feedback generator configured, nothing should be loading")
	}
}

func TestAdvanceToShortAnswer(t *testing.T) {
	s := New(testQuiz(), nil, nil)

	scr, _ := s.Update(specialKey(tea.KeyEnter)) // submit MCQ
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // dismiss feedback
	qs := scr.(*QuizScreen)

	if qs.current != 1 {
		t.Fatalf("current = %d, want 1", qs.current)
	}
	if qs.showingFeedback {
		t.Error("feedback should be dismissed")
	}
	if qs.Status() != "Q 2/2" {
		t.Errorf("status = %q, want %q", qs.Status(), "Q 2/2")
	}
}

func TestShortAnswerGrading(t *testing.T) {
	repo := &mockEventRepo{}
	s := New(testQuiz(), repo, nil)

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	// Type "tcp" into the short-answer input.
	for _, r := range "tcp" {
		scr, _ = scr.Update(keyPress(r))
	}
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if !qs.showingFeedback {
		t.Fatal("expected feedback phase")
	}
	if len(qs.graded) != 2 {
		t.Fatalf("graded = %d, want 2", len(qs.graded))
	}
	if !qs.graded[1].Correct || qs.graded[1].Score != 1 {
		t.Errorf("rubric hit should grade 1.0, got %+v", qs.graded[1])
	}
}

func TestEmptyShortAnswerNotSubmitted(t *testing.T) {
	s := New(testQuiz(), nil, nil)

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // enter with empty input
	qs := scr.(*QuizScreen)

	if qs.showingFeedback {
		t.Error("empty answer should not submit")
	}
	if len(qs.graded) != 1 {
		t.Errorf("graded = %d, want 1", len(qs.graded))
	}
}

func TestFinishReplacesWithResults(t *testing.T) {
	s := New(testQuiz(), nil, nil)

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	for _, r := range "tcp" {
		scr, _ = scr.Update(keyPress(r))
	}
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, cmd := scr.Update(specialKey(tea.KeyEnter)) // dismiss final feedback
	_ = scr

	if cmd == nil {
		t.Fatal("expected navigation command after last question")
	}
	msg := cmd()
	repl, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := repl.Screen.(*results.ResultsScreen); !ok {
		t.Fatalf("expected results screen, got %T", repl.Screen)
	}
}

func TestWrongAnswerRequestsModelFeedback(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`Remember that Paris is the capital.`),
	})
	gen := quizgen.NewGenerator(provider)

	s := New(testQuiz(), nil, gen)

	scr, cmd := s.Update(keyPress('2'))
	qs := scr.(*QuizScreen)

	if !qs.loadingFeedback {
		t.Fatal("expected feedback fetch to start")
	}
	if cmd == nil {
		t.Fatal("expected feedback command")
	}

	msg := cmd()
	fb, ok := msg.(feedbackMsg)
	if !ok {
		t.Fatalf("expected feedbackMsg, got %T", msg)
	}
	if fb.Err != nil {
		t.Fatalf("feedback error: %v", fb.Err)
	}

	scr, _ = qs.Update(fb)
	qs = scr.(*QuizScreen)
	if qs.loadingFeedback {
		t.Error("loading flag should clear")
	}
	if qs.llmFeedback == "" {
		t.Error("expected model feedback to display")
	}
}

func TestStaleFeedbackIgnored(t *testing.T) {
	s := New(testQuiz(), nil, nil)

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // now on question 2

	scr, _ = scr.Update(feedbackMsg{Index: 0, Text: "late"})
	qs := scr.(*QuizScreen)
	if qs.llmFeedback != "" {
		t.Error("feedback for a past question should be dropped")
	}
}
