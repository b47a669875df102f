package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ledgerd version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Version)
	},
}
