package cmd

import (
	"fmt"

	"github.com/docentlabs/docent/internal/llm"
	"github.com/docentlabs/docent/internal/reduce"
	"github.com/docentlabs/docent/internal/store"
	"github.com/spf13/cobra"
)

var keypointsCmd = &cobra.Command{
	Use:   "keypoints <file>",
	Short: "Extract the key points of a document as a bullet list",
	Args:  cobra.ExactArgs(1),
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

		points, err := reduce.New(provider).Keypoints(ctx, text)
		if err != nil {
			return fmt.Errorf("extract key points: %w", err)
		}

		fmt.Println(points)
		return nil
	},
}
