package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobfr/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobfr",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gobfr v%s\n", version.Version)
		fmt.Println("Beam Force Analysis Report Generator")
		fmt.Printf("Build time: %s\n", version.BuildTime)
		fmt.Printf("Git commit: %s\n", version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
