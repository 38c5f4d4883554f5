package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "dev"
var help bool

var rootCmd = &cobra.Command{
	Use:   "agentkit",
	Short: "A toolkit for agents on the Hyperbolic compute platform",
	Long: `                        _   _    _ _
   __ _  __ _  ___ _ __ | |_| | _(_) |_
  / _` + "`" + ` |/ _` + "`" + ` |/ _ \ '_ \| __| |/ / | __|
 | (_| | (_| |  __/ | | | |_|   <| | |_
  \__,_|\__, |\___|_| |_|\__|_|\_\_|\__|
        |___/

A toolkit that lets agents rent GPU compute on the
Hyperbolic marketplace, run commands on the rented
machines over SSH and manage an Ethereum wallet.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if help {
			cmd.Help()
			os.Exit(0)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(0)
	},
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&help, "help", "h", false, "display help for command")
}

// newLogger creates the console logger used by all commands.
func newLogger() zerolog.Logger {
	return log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

// Execute starts the invocation of the command line interface.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
