package cmd

import (
	"fmt"
	"strings"

	"github.com/docentlabs/docent/internal/llm"
	"github.com/docentlabs/docent/internal/qa"
	"github.com/docentlabs/docent/internal/store"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <file> <question>",
	Short: "Ask a question answered only from the document",
	Long: `Ask a question about a document. The most relevant passages are
retrieved by keyword overlap and the answer is grounded in them; questions
the document cannot answer are declined.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		text, err := readDocument(args[0])
		if err != nil {
			return err
		}
		question := strings.Join(args[1:], " ")

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

		res, err := qa.New(provider).Ask(ctx, text, question)
		if err != nil {
			return fmt.Errorf("answer question: %w", err)
		}

		fmt.Println(res.Answer)

		if show, _ := cmd.Flags().GetBool("show-context"); show {
			fmt.Println()
			fmt.Println(strings.Repeat("─", 60))
			fmt.Println("CONTEXT")
			fmt.Println(strings.Repeat("─", 60))
			fmt.Println(res.Context)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().Bool("show-context", false, "Print the retrieved passages after the answer")
}
