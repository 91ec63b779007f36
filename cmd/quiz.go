package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/docentlabs/docent/internal/grader"
	"github.com/docentlabs/docent/internal/llm"
	"github.com/docentlabs/docent/internal/quizgen"
	"github.com/docentlabs/docent/internal/store"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate and grade quizzes",
}

var quizGenerateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate a quiz from a document",
	Long: `Generate a mixed quiz (multiple-choice and short-answer) from a
document. The quiz is printed as JSON, ready for "docent quiz grade" or
"docent study".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		count, _ := cmd.Flags().GetInt("count")
		outPath, _ := cmd.Flags().GetString("out")

		text, err := readDocument(args[0])
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		quiz, stats, err := quizgen.NewGenerator(provider).Generate(ctx, text, count)
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}

		data, err := json.MarshalIndent(quiz, "", "  ")
		if err != nil {
			return fmt.Errorf("encode quiz: %w", err)
		}

		recordQuizEvent(ctx, st.EventRepo(), quiz, stats, len(text), string(data))

		if outPath != "" {
			if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write quiz file: %w", err)
			}
			fmt.Printf("Wrote %d questions to %s (quiz %s)\n", len(quiz.Questions), outPath, quiz.ID)
			return nil
		}

		fmt.Println(string(data))
		return nil
	},
}

var quizGradeCmd = &cobra.Command{
	Use:   "grade <quiz.json> <answers.json>",
	Short: "Grade submitted answers against a quiz",
	Long: `Grade answers against a quiz produced by "docent quiz generate".

The answers file is a JSON array of submissions:

  [
    {"index": 0, "answer": 2},
    {"index": 1, "answer": "free text answer"}
  ]

Multiple-choice answers are option indexes; short answers are strings.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		quiz, err := loadQuiz(args[0])
		if err != nil {
			return err
		}

		var subs []grader.Submission
		raw, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read answers: %w", err)
		}
		if err := json.Unmarshal(raw, &subs); err != nil {
			return fmt.Errorf("parse answers: %w", err)
		}

		report := grader.Grade(quiz.Questions, subs)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		recordAnswerEvents(ctx, st.EventRepo(), quiz.ID, report)

		printReport(report)
		return nil
	},
}

// loadQuiz reads a quiz JSON file and rejects files without questions.
func loadQuiz(path string) (*quizgen.Quiz, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz: %w", err)
	}
	var quiz quizgen.Quiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return nil, fmt.Errorf("parse quiz: %w", err)
	}
	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("quiz %s has no questions", path)
	}
	return &quiz, nil
}

func printReport(report grader.Report) {
	for _, res := range report.Results {
		mark := "✓"
		if !res.Correct {
			mark = "✗"
		}
		fmt.Printf("%s Q%d [%s] %s\n", mark, res.Index+1, res.Type, res.Question)
		if res.Given != "" {
			fmt.Printf("   Your answer: %s\n", res.Given)
		} else {
			fmt.Println("   Your answer: (none)")
		}
		if !res.Correct && res.CorrectAnswer != "" {
			fmt.Printf("   Correct answer: %s\n", res.CorrectAnswer)
		}
		fmt.Printf("   Score: %.2f · %s\n", res.Score, res.Feedback)
		fmt.Println()
	}

	fmt.Println(strings.Repeat("─", 60))
	correct := 0
	for _, res := range report.Results {
		if res.Correct {
			correct++
		}
	}
	fmt.Printf("Result: %d/%d correct (%.0f%%)\n",
		correct, len(report.Results), report.Accuracy*100)
}

// recordQuizEvent persists a generated quiz. Failures are reported but do
// not fail the command.
func recordQuizEvent(ctx context.Context, repo store.EventRepo, quiz *quizgen.Quiz, stats *quizgen.Stats, sourceChars int, itemsJSON string) {
	var mcq, short int
	for _, q := range quiz.Questions {
		if q.Type == quizgen.TypeShort {
			short++
		} else {
			mcq++
		}
	}
	err := repo.AppendQuiz(ctx, store.QuizEventData{
		QuizID:      quiz.ID,
		Requested:   stats.Requested,
		Kept:        stats.Kept,
		Dropped:     stats.Dropped,
		MCQCount:    mcq,
		ShortCount:  short,
		SourceChars: sourceChars,
		ItemsJSON:   itemsJSON,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record quiz event: %v\n", err)
	}
}

// recordAnswerEvents persists one event per graded answer.
func recordAnswerEvents(ctx context.Context, repo store.EventRepo, quizID string, report grader.Report) {
	for _, res := range report.Results {
		err := repo.AppendAnswer(ctx, store.AnswerEventData{
			QuizID:        quizID,
			QuestionIndex: res.Index,
			QuestionType:  string(res.Type),
			QuestionText:  res.Question,
			GivenAnswer:   res.Given,
			Correct:       res.Correct,
			Score:         res.Score,
			RubricHit:     res.RubricHit,
			RubricTotal:   res.RubricTotal,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record answer event: %v\n", err)
		}
	}
}

func init() {
	quizGenerateCmd.Flags().IntP("count", "n", 5, "Number of questions (3-5)")
	quizGenerateCmd.Flags().StringP("out", "o", "", "Write quiz JSON to a file instead of stdout")

	quizCmd.AddCommand(quizGenerateCmd)
	quizCmd.AddCommand(quizGradeCmd)
}
