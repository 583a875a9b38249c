package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/ytube/config"
	"github.com/s0up4200/ytube/youtube"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *youtube.Client

	// Persistent flags
	apiKey     string
	jsonOutput bool
	filterExpr string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ytube",
	Short: "Query the YouTube Data API from the command line",
	Long: `ytube looks up videos, channels and playlists, runs searches and
fetches the most popular charts through the YouTube Data API v3.

The API key is read from --key, YTUBE_API_KEY, a .env file or api.key in
config.yaml.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&apiKey, "key", "k", "", "YouTube Data API key (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON responses")
	rootCmd.PersistentFlags().StringVarP(&filterExpr, "filter", "f", "", "expr filter applied to response items")
}

// initializeApp initializes the configuration and client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	if cmd.Flags().Changed("key") {
		cfg.API.Key = apiKey
	}

	client = youtube.NewClient(cfg.API.Key, logger,
		youtube.WithBaseURL(cfg.API.BaseURL),
		youtube.WithTimeout(cfg.API.Timeout),
		youtube.WithUserAgent("ytube/"+appVersion),
		youtube.WithDebug(cfg.API.Debug),
	)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only on a terminal
	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
