package quiz

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/docentlabs/docent/internal/grader"
	"github.com/docentlabs/docent/internal/quizgen"
	"github.com/docentlabs/docent/internal/router"
	"github.com/docentlabs/docent/internal/screen"
	"github.com/docentlabs/docent/internal/screens/results"
	"github.com/docentlabs/docent/internal/store"
	"github.com/docentlabs/docent/internal/ui/components"
	"github.com/docentlabs/docent/internal/ui/layout"
)

// QuizScreen runs one quiz attempt: a question at a time, graded on
// submit, feedback between questions, results at the end.
type QuizScreen struct {
	quiz        *quizgen.Quiz
	eventRepo   store.EventRepo    // nil disables persistence
	feedbackGen *quizgen.Generator // nil disables model feedback

	current       int
	mc            components.MultiChoice
	input         components.TextInput
	questionStart time.Time

	graded          []grader.Result
	showingFeedback bool
	llmFeedback     string
	loadingFeedback bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a quiz screen over a validated quiz.
func New(q *quizgen.Quiz, eventRepo store.EventRepo, feedbackGen *quizgen.Generator) *QuizScreen {
	s := &QuizScreen{
		quiz:        q,
		eventRepo:   eventRepo,
		feedbackGen: feedbackGen,
	}
	s.setupQuestion()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.currentItem().Type == quizgen.TypeShort {
		return s.input.Init()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("Q %d/%d", s.current+1, len(s.quiz.Questions))
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	}
	if s.currentItem().Type == quizgen.TypeMCQ {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "1-4", Description: "Pick"},
			{Key: "Enter", Description: "Submit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackMsg:
		return s.handleFeedback(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward non-key messages (cursor blink) to the text input.
	if !s.showingFeedback && s.currentItem().Type == quizgen.TypeShort {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.showingFeedback {
		if msg.String() == "enter" {
			return s.advance()
		}
		return s, nil
	}

	item := s.currentItem()
	if item.Type == quizgen.TypeMCQ {
		wasSubmitted := s.mc.Submitted
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if !wasSubmitted && s.mc.Submitted {
			return s.grade(grader.NewChoiceSubmission(s.current, s.mc.ChosenIndex))
		}
		return s, cmd
	}

	if msg.String() == "enter" {
		if s.input.Value() == "" {
			return s, nil
		}
		return s.grade(grader.NewTextSubmission(s.current, s.input.Value()))
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// grade scores the current question and enters the feedback phase.
func (s *QuizScreen) grade(sub grader.Submission) (screen.Screen, tea.Cmd) {
	item := s.currentItem()
	sub.Index = 0
	report := grader.Grade([]quizgen.Item{item}, []grader.Submission{sub})
	res := report.Results[0]
	res.Index = s.current
	s.graded = append(s.graded, res)

	if item.Type == quizgen.TypeShort {
		s.input.Submit(res.Correct)
	}

	s.persistAnswer(res)

	s.showingFeedback = true
	s.llmFeedback = ""
	s.loadingFeedback = false

	if !res.Correct && s.feedbackGen != nil {
		s.loadingFeedback = true
		return s, s.fetchFeedback(item, res)
	}
	return s, nil
}

// advance moves to the next question, or to the results screen after the
// last one.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.llmFeedback = ""
	s.loadingFeedback = false
	s.current++

	if s.current >= len(s.quiz.Questions) {
		graded := s.graded
		quizCopy := s.quiz
		eventRepo := s.eventRepo
		feedbackGen := s.feedbackGen
		retake := func() tea.Cmd {
			return func() tea.Msg {
				return router.ReplaceScreenMsg{
					Screen: New(quizCopy, eventRepo, feedbackGen),
				}
			}
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: results.New(graded, retake),
			}
		}
	}

	s.setupQuestion()
	if s.currentItem().Type == quizgen.TypeShort {
		return s, s.input.Init()
	}
	return s, nil
}

func (s *QuizScreen) handleFeedback(msg feedbackMsg) (screen.Screen, tea.Cmd) {
	if msg.Index != s.current || !s.showingFeedback {
		return s, nil
	}
	s.loadingFeedback = false
	if msg.Err == nil {
		s.llmFeedback = msg.Text
	}
	return s, nil
}

// fetchFeedback asks the model to explain a wrong answer.
func (s *QuizScreen) fetchFeedback(item quizgen.Item, res grader.Result) tea.Cmd {
	gen := s.feedbackGen
	index := s.current
	givenIndex := -1
	if item.Type == quizgen.TypeMCQ {
		givenIndex = s.mc.ChosenIndex
	}
	given := res.Given

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		text, err := gen.Feedback(ctx, item, givenIndex, given)
		return feedbackMsg{Index: index, Text: text, Err: err}
	}
}

// persistAnswer records the graded answer. Best effort; the quiz keeps
// going if the write fails.
func (s *QuizScreen) persistAnswer(res grader.Result) {
	if s.eventRepo == nil {
		return
	}
	timeMs := int(time.Since(s.questionStart).Milliseconds())
	_ = s.eventRepo.AppendAnswer(context.Background(), store.AnswerEventData{
		QuizID:        s.quiz.ID,
		QuestionIndex: res.Index,
		QuestionType:  string(res.Type),
		QuestionText:  res.Question,
		GivenAnswer:   res.Given,
		Correct:       res.Correct,
		Score:         res.Score,
		RubricHit:     res.RubricHit,
		RubricTotal:   res.RubricTotal,
		TimeMs:        timeMs,
	})
}

func (s *QuizScreen) setupQuestion() {
	item := s.currentItem()
	s.questionStart = time.Now()
	if item.Type == quizgen.TypeMCQ {
		s.mc = components.NewMultiChoice(item.Question, item.Options, item.AnswerIndex)
	} else {
		s.input = components.NewTextInput("Type your answer...", 300)
	}
}

func (s *QuizScreen) currentItem() quizgen.Item {
	if s.current >= len(s.quiz.Questions) {
		return quizgen.Item{}
	}
	return s.quiz.Questions[s.current]
}
