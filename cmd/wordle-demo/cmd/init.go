package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/wordle-demo/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wordle-demo configuration",
	Long: `Write a config.yaml with the default settings to your config directory.

Every setting can also be overridden with a WORDLE_DEMO_* environment
variable, e.g. WORDLE_DEMO_API_BASE_URL or WORDLE_DEMO_FUTURE_MAX_DAYS.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := configPath()

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureDir(configDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the file to point at another API or tune the rate limit")
	fmt.Fprintln(out, "  2. Run 'wordle-demo today' to test the connection")
	fmt.Fprintln(out, "  3. Run 'wordle-demo' to open the TUI")

	return nil
}
