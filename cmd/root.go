package cmd

import (
	"fmt"
	"os"

	"github.com/Yates-Labs/groundqa/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "groundqa",
	Short: "groundqa - context-grounded question answering",
	Long: `groundqa answers a question using only the context you supply.

It formats the question and context into a prompt, sends it to an
OpenAI-compatible chat-completion API and prints the first completion.
A mock mode echoes the context without any network access.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(cmd.ErrOrStderr(), logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.AddCommand(newAskCmd())
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
