package cmd

import (
	"fmt"
	"time"

	"github.com/f3rmion/wordle-demo/internal/demo"
	"github.com/f3rmion/wordle-demo/internal/render"
	"github.com/f3rmion/wordle-demo/internal/wordle"
	"github.com/spf13/cobra"
)

var futureCmd = &cobra.Command{
	Use:   "future",
	Short: "List the words scheduled from a date onward",
	Long: `List the words the API already knows, one day at a time, starting
today (UTC) or at --from. The list ends at the first date the API has no
word for.

Example:
  wordle-demo future
  wordle-demo future --from 2025-06-01 --limit 7`,
	Args: cobra.NoArgs,
	RunE: runFuture,
}

func init() {
	rootCmd.AddCommand(futureCmd)
	futureCmd.Flags().String("from", "", "first date to look up (YYYY-MM-DD, default today)")
	futureCmd.Flags().Int("limit", 0, "stop after this many words (0 = no limit)")
}

func runFuture(cmd *cobra.Command, args []string) error {
	start := time.Now()
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		t, err := wordle.ParseDate(from)
		if err != nil {
			return fmt.Errorf("invalid --from: %w", err)
		}
		start = t
	}

	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	limit := rt.cfg.Future.MaxDays
	if cmd.Flags().Changed("limit") {
		limit, _ = cmd.Flags().GetInt("limit")
	}

	words := demo.FutureWords(cmd.Context(), rt.client, start,
		demo.WithLimit(limit),
		demo.WithLogger(rt.log),
	)
	if words == nil {
		words = []wordle.WordOfDay{}
	}

	return emit(cmd, words, func(r *render.Renderer) (string, error) {
		return r.FutureWords(words)
	})
}
