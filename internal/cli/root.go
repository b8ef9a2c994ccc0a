package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/arabdict/conjfixtures/internal/logging"
	"github.com/arabdict/conjfixtures/internal/model"
	"github.com/arabdict/conjfixtures/internal/pipeline"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "conjfixtures <url> <tableIndex>",
	Short: "Turn a Wiktionary Arabic conjugation table into test fixtures",
	Long: `conjfixtures fetches a Wiktionary page, picks one of its inflection tables
and prints one fixture line per conjugated form, ready to be pasted into the
conjugation engine's tests.

tableIndex is the zero-based position of the table among all
"inflection-table" elements on the page.

Example:
  conjfixtures https://en.wiktionary.org/wiki/%D9%83%D8%AA%D8%A8 0
  conjfixtures https://en.wiktionary.org/wiki/%D9%83%D8%AA%D8%A8 1 --present-tense --source-comment`,
	Args:          cobra.ExactArgs(2),
	RunE:          runGenerate,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "conjfixtures v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := model.DefaultConfig()
	flags := rootCmd.PersistentFlags()

	// Global flags
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.conjfixtures/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// HTTP flags
	flags.Duration("timeout", defaults.HTTP.Timeout, "HTTP client timeout (0 means none)")
	flags.String("ua", defaults.HTTP.UserAgent, "HTTP User-Agent")
	flags.Int64("max-bytes", defaults.HTTP.MaxBodyBytes, "max response bytes to read (0 means unlimited)")
	flags.String("http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	flags.String("https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
	flags.String("no-proxy", "", "comma-separated hosts reached without the proxy")
	flags.Bool("robots", defaults.HTTP.RespectRobots, "respect robots.txt")
	flags.Float64("rps", defaults.RateLimiting.RequestsPerSecond, "max requests per second per host (0 means unlimited)")

	// Output flags
	flags.Bool("present-tense", defaults.Output.PresentTense, `write non-past finite forms as tense "present"`)
	flags.Bool("source-comment", defaults.Output.SourceComment, "start the output with a //Source: comment")

	bindFlags()

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// bindFlags binds the persistent flags to their viper keys
func bindFlags() {
	defaults := model.DefaultConfig()
	flags := rootCmd.PersistentFlags()

	for key, flag := range map[string]string{
		"verbose":                           "verbose",
		"http.timeout":                      "timeout",
		"http.user_agent":                   "ua",
		"http.max_body_bytes":               "max-bytes",
		"http.http_proxy":                   "http-proxy",
		"http.https_proxy":                  "https-proxy",
		"http.no_proxy":                     "no-proxy",
		"http.respect_robots":               "robots",
		"rate_limiting.requests_per_second": "rps",
		"output.present_tense":              "present-tense",
		"output.source_comment":             "source-comment",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
	viper.SetDefault("rate_limiting.burst_size", defaults.RateLimiting.BurstSize)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	logging.Setup(verbose)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Warn().Err(err).Msg("cannot find home directory")
			return
		}

		viper.AddConfigPath(home + "/.conjfixtures")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match CONJFIXTURES_*
	viper.SetEnvPrefix("CONJFIXTURES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	} else if cfgFile != "" {
		log.Warn().Err(err).Str("file", cfgFile).Msg("cannot read config file")
	}

	// the config file or env may turn on verbose output too
	logging.Setup(viper.GetBool("verbose"))
}

// loadConfig merges defaults, config file, env and flags
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	url := args[0]
	tableIndex, err := strconv.Atoi(args[1])
	if err != nil || tableIndex < 0 {
		return fmt.Errorf("tableIndex must be a non-negative integer, got %q", args[1])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Debug().
		Str("url", url).
		Int("table", tableIndex).
		Bool("robots", cfg.HTTP.RespectRobots).
		Msg("generating fixtures")
	start := time.Now()

	p := pipeline.NewPipeline(cfg)
	if err := p.Run(ctx, url, tableIndex, cmd.OutOrStdout()); err != nil {
		return err
	}

	log.Debug().Dur("took", time.Since(start)).Msg("done")
	return nil
}
