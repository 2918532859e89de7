package cmd

import (
	"github.com/f3rmion/wordle-demo/internal/render"
	"github.com/spf13/cobra"
)

var validCmd = &cobra.Command{
	Use:   "valid <word>",
	Short: "Check whether a word is an accepted guess",
	Args:  cobra.ExactArgs(1),
	RunE:  runValid,
}

func init() {
	rootCmd.AddCommand(validCmd)
}

func runValid(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	v, err := rt.client.Valid(cmd.Context(), args[0])
	if err != nil {
		rt.log.Error().Str("word", args[0]).Err(err).Msg("validate.failed")
		return err
	}

	return emit(cmd, v, func(r *render.Renderer) (string, error) {
		return r.Validity(v.Valid)
	})
}
