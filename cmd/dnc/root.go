package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "dnc",
	Short: "The dnc tool trains memory-augmented networks and inspects " +
		"recorded training runs.",
	Long: `The dnc tool trains memory-augmented networks and inspects ` +
		`recorded training runs. Training runs are persisted into SQLite ` +
		`databases and can be monitored over HTTP while in flight.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
