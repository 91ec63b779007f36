package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/docentlabs/docent/internal/quizgen"
	"github.com/docentlabs/docent/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.current >= len(s.quiz.Questions) {
		return ""
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

// renderQuestion renders the active question with its input widget.
func (s *QuizScreen) renderQuestion(width int) string {
	item := s.currentItem()

	var b strings.Builder

	typeTag := "multiple choice"
	if item.Type == quizgen.TypeShort {
		typeTag = "short answer"
	}
	info := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", s.current+1, len(s.quiz.Questions))) +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  ·  %s", typeTag))
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if item.Type == quizgen.TypeMCQ {
		block := s.mc.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
	} else {
		questionStyle := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true)
		b.WriteString(questionStyle.Render(item.Question))
		b.WriteString("\n\n")
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
	}

	return b.String()
}

// renderFeedback renders the between-questions feedback overlay.
func (s *QuizScreen) renderFeedback(width int) string {
	res := s.graded[len(s.graded)-1]
	item := s.currentItem()

	var b strings.Builder
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if res.Correct {
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("Correct!"))
	} else {
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Not quite"))
		b.WriteString("\n")
		if res.CorrectAnswer != "" {
			b.WriteString(center.Foreground(theme.TextDim).Render(
				fmt.Sprintf("Correct answer: %s", res.CorrectAnswer)))
		}
	}

	if item.Type == quizgen.TypeShort {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(
			fmt.Sprintf("Score: %.2f (%d/%d key ideas)", res.Score, res.RubricHit, res.RubricTotal)))
	}

	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Text).Render(res.Feedback))
	b.WriteString("\n\n")

	if s.loadingFeedback {
		b.WriteString(center.Foreground(theme.TextDim).Italic(true).Render("Preparing feedback..."))
		b.WriteString("\n")
	} else if s.llmFeedback != "" {
		fbStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		fb := fbStyle.Render(s.llmFeedback)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fb))
		b.WriteString("\n")
	}

	return b.String()
}
