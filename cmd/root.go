package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobfr/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gobfr",
	Short: "Beam Force Analysis Report Generator",
	Long: `gobfr - Go Beam Force Reporter

A CLI tool that turns beam force spreadsheets into professional
PDF analysis reports.

The tool reads load positions, shear forces and bending moments
from an Excel workbook and produces:
  - A typeset report with narrative, data table and results summary
  - Shear force and bending moment diagrams with gradient fills
  - Standalone diagram images and terminal previews

Typesetting is delegated to an external LaTeX engine (pdflatex
by default).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobfr v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Beam Force Reporter                                  ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool that turns beam force spreadsheets into")
		fmt.Println("  professional PDF analysis reports.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Excel ingestion with tolerant column resolution")
		fmt.Println("    • Shear force and bending moment diagrams with gradient fills")
		fmt.Println("    • Typeset PDF reports with data table and results summary")
		fmt.Println("    • Standalone diagram images and terminal previews")
		fmt.Println()
		fmt.Println("  Use 'gobfr --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
