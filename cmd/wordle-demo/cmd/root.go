// Package cmd contains all CLI commands for wordle-demo.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/wordle-demo/internal/api"
	"github.com/f3rmion/wordle-demo/internal/config"
	"github.com/f3rmion/wordle-demo/internal/logging"
	"github.com/f3rmion/wordle-demo/internal/render"
	"github.com/f3rmion/wordle-demo/internal/tui"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wordle-demo",
	Short: "Explore the Slack Wordle API from the terminal",
	Long: `wordle-demo is a small client for the Slack Wordle API.

It can show today's word, list the words already scheduled for the coming
days, check whether a guess is a valid word, and score a guess against
the word of the day.

Running 'wordle-demo' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/wordle-demo)")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL (default "+api.DefaultBaseURL+")")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("json", false, "print raw JSON instead of text")

	viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

// initConfig reads .env and sets up WORDLE_DEMO_* overrides.
func initConfig() {
	_ = godotenv.Load()

	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding config directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("WORDLE_DEMO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

func configPath() string {
	return filepath.Join(getConfigDir(), config.FileName)
}

// session is what every command needs after flags and files are merged.
type session struct {
	cfg    config.Config
	client *api.Client
	log    zerolog.Logger
	close  func() error
}

// setup loads the config file, applies env and flag overrides, starts
// logging and builds the API client.
func setup() (*session, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, err
	}
	applyOverrides(&cfg)

	logPath := cfg.LogPath(getConfigDir())
	closeLog, err := logging.Setup(logging.Config{Path: logPath, Level: cfg.Log.Level})
	if err != nil {
		// Logging is best effort; the commands still work without it.
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		closeLog = func() error { return nil }
	}

	log := logging.L()
	client := api.New(cfg.ClientConfig(), api.WithLogger(log))

	return &session{
		cfg:    cfg,
		client: client,
		log:    log,
		close:  closeLog,
	}, nil
}

// applyOverrides copies values set through WORDLE_DEMO_* variables or
// flags over the file config.
func applyOverrides(cfg *config.Config) {
	if viper.IsSet("api.base_url") {
		cfg.API.BaseURL = viper.GetString("api.base_url")
	}
	if viper.IsSet("api.timeout") {
		cfg.API.Timeout = viper.GetDuration("api.timeout")
	}
	if viper.IsSet("api.rate_limit") {
		cfg.API.RateLimit = viper.GetFloat64("api.rate_limit")
	}
	if viper.IsSet("api.burst") {
		cfg.API.Burst = viper.GetInt("api.burst")
	}
	if viper.IsSet("api.user_agent") {
		cfg.API.UserAgent = viper.GetString("api.user_agent")
	}
	if viper.IsSet("future.max_days") {
		cfg.Future.MaxDays = viper.GetInt("future.max_days")
	}
	if viper.IsSet("ui.banner") {
		cfg.UI.Banner = viper.GetBool("ui.banner")
	}
	if viper.IsSet("log.level") {
		cfg.Log.Level = viper.GetString("log.level")
	}
	if viper.IsSet("log.file") {
		cfg.Log.File = viper.GetString("log.file")
	}
}

// emit writes either the JSON form of v or the text from the renderer.
func emit(cmd *cobra.Command, v any, text func(*render.Renderer) (string, error)) error {
	var (
		out string
		err error
	)
	if viper.GetBool("json") {
		out, err = render.JSON(v)
	} else {
		out, err = text(render.New())
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// runTUI launches the TUI application.
func runTUI(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	rt.log.Info().Str("base_url", rt.client.BaseURL()).Msg("tui.start")

	err = tui.Run(rt.client, tui.Options{
		Config:     rt.cfg,
		ConfigPath: configPath(),
		LogPath:    logging.Path(),
		APIURL:     rt.client.BaseURL(),
		Logger:     rt.log,
	})
	if err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
