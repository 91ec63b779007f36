package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/docentlabs/docent/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz performance statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		stats, err := st.EventRepo().AnswerStatsAll(ctx)
		if err != nil {
			return fmt.Errorf("query answer stats: %w", err)
		}

		if stats.Total == 0 {
			fmt.Println("No graded answers yet. Try: docent quiz generate <file>")
			return nil
		}

		fmt.Println("Quiz Performance")
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("Answers graded:  %d\n", stats.Total)
		fmt.Printf("Correct:         %d\n", stats.Correct)
		fmt.Printf("Accuracy:        %.0f%%\n", stats.Accuracy*100)

		if len(stats.ByType) > 0 {
			fmt.Println()
			fmt.Printf("%-12s  %6s  %8s  %9s\n", "Type", "Total", "Correct", "Avg Score")
			fmt.Println(strings.Repeat("─", 56))

			types := make([]string, 0, len(stats.ByType))
			for t := range stats.ByType {
				types = append(types, t)
			}
			sort.Strings(types)

			for _, t := range types {
				ts := stats.ByType[t]
				fmt.Printf("%-12s  %6d  %8d  %9.2f\n", t, ts.Total, ts.Correct, ts.AvgScore)
			}
		}

		misses, err := st.EventRepo().RecentMisses(ctx, 5)
		if err != nil {
			return fmt.Errorf("query recent misses: %w", err)
		}
		if len(misses) > 0 {
			fmt.Println()
			fmt.Println("Recent Misses")
			fmt.Println(strings.Repeat("─", 56))
			for _, m := range misses {
				fmt.Printf("[%s] %s\n", m.QuestionType, m.QuestionText)
				if m.GivenAnswer != "" {
					fmt.Printf("   answered: %s\n", m.GivenAnswer)
				}
			}
		}

		recent, err := st.EventRepo().QueryQuizEvents(ctx, store.QueryOpts{Limit: 5})
		if err != nil {
			return fmt.Errorf("query quiz events: %w", err)
		}
		if len(recent) > 0 {
			fmt.Println()
			fmt.Println("Recent Quizzes")
			fmt.Println(strings.Repeat("─", 56))
			for _, q := range recent {
				acc, err := st.EventRepo().QuizAccuracy(ctx, q.QuizID)
				if err != nil {
					return fmt.Errorf("query quiz accuracy: %w", err)
				}
				fmt.Printf("%s  %-10s  %d questions  %.0f%%\n",
					q.Timestamp.Local().Format("2006-01-02 15:04"),
					shortID(q.QuizID), q.Kept, acc*100)
			}
		}
		return nil
	},
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
