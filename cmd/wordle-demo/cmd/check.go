package cmd

import (
	"github.com/f3rmion/wordle-demo/internal/demo"
	"github.com/f3rmion/wordle-demo/internal/render"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <word>",
	Short: "Score a guess against the word of the day",
	Long: `Validate a guess and, if it is a valid word, score it against the
word of the day. Invalid words are reported without being scored.

Example:
  wordle-demo check slate`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	out, err := demo.Check(cmd.Context(), rt.client, args[0])
	if err != nil {
		rt.log.Error().Str("word", args[0]).Err(err).Msg("check.failed")
		return err
	}

	return emit(cmd, out, func(r *render.Renderer) (string, error) {
		return r.Outcome(out)
	})
}
