package main

import (
	"fmt"
	"os"

	u "github.com/araddon/gou"
	"github.com/nihei9/relang/config"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	config   *string
	logLevel *string
}{}

// appConfig holds the settings loaded before a command runs.
var appConfig = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "relang",
	Short: "Convert between NFAs, DFAs, and right-linear grammars",
	Long: `relang provides the following features:
- Checks whether an automaton accepts strings.
- Converts an NFA with epsilon transitions into a DFA.
- Translates a right-linear grammar into an NFA or a DFA.
- Compiles a DFA into a portable transition table.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.config = rootCmd.PersistentFlags().String("config", "", "config file path")
	rootFlags.logLevel = rootCmd.PersistentFlags().String("log-level", "", "log level [debug,info,warn,error] (default: log_level of the config file or warn)")
}

func setup(cmd *cobra.Command, args []string) error {
	if *rootFlags.config != "" {
		c, err := config.LoadConfigFromFile(*rootFlags.config)
		if err != nil {
			return fmt.Errorf("Cannot read the config file %s: %w", *rootFlags.config, err)
		}
		appConfig = c
	}
	if *rootFlags.logLevel != "" {
		appConfig.LogLevel = *rootFlags.logLevel
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	u.SetupLogging(appConfig.LogLevel)
	u.SetColorIfTerminal()
	u.Debugf("config: %+v", appConfig)

	return nil
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
