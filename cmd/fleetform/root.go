package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fleetform",
	Short: "fleetform is an interactive fleet-onboarding wizard",
	Long: `fleetform collects a fleet operator's profile (operator, company,
employees, trucks) through a sequence of validated prompts, shows a
recap and asks for confirmation.

With --persist every validated answer is mirrored to Redis, so a
restarted session resumes from the stored values.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().String("redis-addr", "", "Redis address for persistent mode (default localhost:6379)")
	rootCmd.PersistentFlags().String("prefix", "", "Key prefix for stored answers")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}
