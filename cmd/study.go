package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/docentlabs/docent/internal/app"
	"github.com/docentlabs/docent/internal/llm"
	"github.com/docentlabs/docent/internal/quizgen"
	"github.com/docentlabs/docent/internal/store"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study [file]",
	Short: "Take a quiz interactively",
	Long: `Generate a quiz from a document and take it in the terminal, one
question at a time, with immediate grading and feedback.

To retake a saved quiz instead of generating a new one:

  docent study --quiz quiz.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		quizPath, _ := cmd.Flags().GetString("quiz")
		count, _ := cmd.Flags().GetInt("count")

		if quizPath == "" && len(args) == 0 {
			return fmt.Errorf("pass a document file or --quiz")
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

		opts := app.Options{EventRepo: st.EventRepo()}

		// Model feedback on wrong answers is optional; the quiz still
		// works with deterministic grading alone.
		provider, provErr := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if provErr == nil {
			opts.FeedbackGen = quizgen.NewGenerator(provider)
		}

		if quizPath != "" {
			quiz, err := loadQuiz(quizPath)
			if err != nil {
				return err
			}
			opts.Quiz = quiz
			return app.Run(opts)
		}

		if provErr != nil {
			return fmt.Errorf("LLM provider: %w", provErr)
		}

		text, err := readDocument(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stderr, "Generating quiz...")
		quiz, stats, err := quizgen.NewGenerator(provider).Generate(ctx, text, count)
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}

		if data, err := json.MarshalIndent(quiz, "", "  "); err == nil {
			recordQuizEvent(ctx, st.EventRepo(), quiz, stats, len(text), string(data))
		}

		opts.Quiz = quiz
		return app.Run(opts)
	},
}

func init() {
	studyCmd.Flags().String("quiz", "", "Path to a saved quiz JSON file")
	studyCmd.Flags().IntP("count", "n", 5, "Number of questions (3-5)")
}
