package cmd

import (
	"fmt"

	"github.com/docentlabs/docent/internal/llm"
	"github.com/docentlabs/docent/internal/reduce"
	"github.com/docentlabs/docent/internal/store"
	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Summarize a document in up to five lines",
	Long: `Summarize a document. Long documents are split into chunks, each chunk
is summarized in parallel, and the partial summaries are combined.

Pass "-" to read the document from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

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

		summary, err := reduce.New(provider).Summarize(ctx, text)
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}

		fmt.Println(summary)
		return nil
	},
}
