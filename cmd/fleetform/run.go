package main

import (
	"github.com/spf13/cobra"

	"fleetform/internal/cli"
)

func optionsFromFlags(cmd *cobra.Command) cli.RunOptions {
	persist, _ := cmd.Flags().GetBool("persist")
	fresh, _ := cmd.Flags().GetBool("fresh")
	noColor, _ := cmd.Flags().GetBool("no-color")
	configPath, _ := cmd.Flags().GetString("config")
	redisAddr, _ := cmd.Flags().GetString("redis-addr")
	prefix, _ := cmd.Flags().GetString("prefix")
	debug, _ := cmd.Flags().GetBool("debug")

	return cli.RunOptions{
		Persist:    persist,
		RedisAddr:  redisAddr,
		Prefix:     prefix,
		ConfigPath: configPath,
		Fresh:      fresh,
		Debug:      debug,
		NoColor:    noColor,
	}
}

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the onboarding wizard",
	Long:  `Starts the interactive question sequence and exits after a confirmed recap.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Execute(optionsFromFlags(cmd))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("persist", false, "Mirror answers to Redis and resume from stored values")
	runCmd.Flags().Bool("fresh", false, "Clear stored answers before starting")
	runCmd.Flags().Bool("no-color", false, "Disable banner and styled output")

	// 'run' is also the default when no subcommand is given.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
