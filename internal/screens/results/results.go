package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/docentlabs/docent/internal/grader"
	"github.com/docentlabs/docent/internal/screen"
	"github.com/docentlabs/docent/internal/ui/components"
	"github.com/docentlabs/docent/internal/ui/layout"
	"github.com/docentlabs/docent/internal/ui/theme"
)

// ResultsScreen displays the graded quiz outcome.
type ResultsScreen struct {
	results []grader.Result
	menu    components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen. retake rebuilds the quiz screen for
// another attempt.
func New(results []grader.Result, retake func() tea.Cmd) *ResultsScreen {
	menu := components.NewMenu([]components.MenuItem{
		{Label: "Retake quiz", Action: retake},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return &ResultsScreen{
		results: results,
		menu:    menu,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Quiz complete!"))
	b.WriteString("\n\n")

	correct := 0
	for _, res := range s.results {
		if res.Correct {
			correct++
		}
	}
	accuracy := 0.0
	if len(s.results) > 0 {
		accuracy = float64(correct) / float64(len(s.results))
	}

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		len(s.results), correct, accuracy*100)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", accuracy, true, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Per-question breakdown.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	var rows strings.Builder
	for _, res := range s.results {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !res.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
		question := res.Question
		limit := min(width-24, 56)
		if limit > 0 && len(question) > limit {
			question = question[:limit] + "…"
		}
		rows.WriteString(fmt.Sprintf("%s  Q%d  %-5s  %.2f  %s\n",
			mark, res.Index+1, res.Type, res.Score, question))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}
