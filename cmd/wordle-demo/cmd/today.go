package cmd

import (
	"github.com/f3rmion/wordle-demo/internal/render"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's word",
	Args:  cobra.NoArgs,
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	w, err := rt.client.WordOfDay(cmd.Context())
	if err != nil {
		rt.log.Error().Err(err).Msg("word_of_day.failed")
		return err
	}

	return emit(cmd, w, func(r *render.Renderer) (string, error) {
		return r.WordOfDay(w)
	})
}
