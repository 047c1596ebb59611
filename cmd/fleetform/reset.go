package main

import (
	"github.com/spf13/cobra"

	"fleetform/internal/cli"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the answers stored in Redis",
	Long:  `Removes every stored answer so the next persistent run starts from scratch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Reset(optionsFromFlags(cmd))
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
