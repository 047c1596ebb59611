package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fleetform"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fleetform",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fleetform version %s\n", fleetform.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
