package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hyperboliclabs/agentkit/pkg/sshx"
)

var (
	execHost    string
	execPort    int
	execUser    string
	execKeyFile string
)

var execCmd = &cobra.Command{
	Use:   "exec [command]",
	Short: "Run a command on a remote machine over SSH",
	Long: `Run a single command on a remote machine over SSH and
print its combined output. If no key file is given,
the command prompts for a password.

The exit code of the remote command becomes the exit
code of this command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		config := &sshx.Config{
			Host:    execHost,
			Port:    execPort,
			User:    execUser,
			KeyFile: execKeyFile,
		}

		if config.KeyFile == "" {
			fmt.Fprintf(os.Stderr, "Password for %s@%s: ", config.User, config.Host)
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return err
			}

			config.Password = string(password)
		}

		client, err := sshx.NewClient(config, sshx.WithLogger(&logger))
		if err != nil {
			return err
		}

		if err := client.Connect(); err != nil {
			return err
		}
		defer client.Disconnect()

		result, err := client.Run(args[0])
		if err != nil {
			return err
		}

		fmt.Print(result.Output)

		if result.ExitCode != 0 {
			os.Exit(result.ExitCode)
		}

		return nil
	},
}

func init() {
	execCmd.Flags().StringVarP(&execHost, "host", "H", "", "host to connect to")
	execCmd.Flags().IntVarP(&execPort, "port", "p", 22, "port to connect to")
	execCmd.Flags().StringVarP(&execUser, "user", "u", "root", "user to connect as")
	execCmd.Flags().StringVarP(&execKeyFile, "key-file", "i", "", "path to the SSH private key")
	execCmd.MarkFlagRequired("host")

	rootCmd.AddCommand(execCmd)
}
