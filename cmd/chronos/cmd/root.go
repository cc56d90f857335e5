package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mdw-chronos/internal/chronos/server"
	"github.com/msto63/mdw-chronos/internal/chronos/service"
	"github.com/msto63/mdw-chronos/pkg/core/config"
	"github.com/msto63/mdw-chronos/pkg/core/logging"
)

var (
	cfgFile    string
	verbose    bool
	jsonOutput bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "chronos",
	Short: "Chronos - TIMEX temporal expressions",
	Long: `Chronos parses, formats and resolves TIMEX temporal expressions.

Examples of TIMEX values:
  2017-09-27                  a date
  XXXX-WXX-5                  every Friday
  2017-W37                    ISO week 37 of 2017
  TMO                         morning
  PT2H                        two hours
  (T14,T16,PT2H)              from 14:00 to 16:00
  PRESENT_REF                 now`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CHRONOS_CONFIG or ./configs/chronos.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level := appConfig.General.LogLevel
	if verbose {
		level = "debug"
	} else if cmd.Name() != serveCmd.Name() {
		// one-shot commands keep stderr quiet
		level = "warn"
	}
	logging.Configure(level, appConfig.General.LogFormat, os.Stderr)
	return nil
}

func newService() (*service.Service, error) {
	if appConfig == nil {
		return service.NewService(service.DefaultConfig())
	}
	return service.NewService(server.ConfigFrom(appConfig).Service)
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
}
