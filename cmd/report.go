package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobfr/internal/diagram"
	"github.com/alexiusacademia/gobfr/internal/latex"
	"github.com/alexiusacademia/gobfr/internal/report"
	"github.com/alexiusacademia/gobfr/internal/table"
	"github.com/alexiusacademia/gobfr/internal/xlsx"
)

var (
	// Report inputs
	reportExcel  string
	reportImage  string
	reportOutput string

	// Typesetting options
	reportEngine string
	reportPasses int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a beam force analysis PDF report",
	Long: `Generate a professional beam force analysis PDF report from an
Excel workbook of load positions, shear forces and bending moments.

The report carries the input data table, gradient-filled shear force
and bending moment diagrams, and a summary of key results. The LaTeX
source is written next to the PDF and kept for inspection.

The engine runs twice by default so that the table of contents and
cross-references resolve.

Examples:
  # Generate a report from spreadsheet data
  gobfr report --excel data.xlsx --output beam_report

  # Include a beam configuration image
  gobfr report --excel forces.xlsx --image beam.png --output analysis

  # Using short flags
  gobfr report -e data.xlsx -i diagram.jpg -o report`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	// Input flags
	reportCmd.Flags().StringVarP(&reportExcel, "excel", "e", "", "Path to Excel file containing beam force data [required]")
	reportCmd.Flags().StringVarP(&reportImage, "image", "i", "", "Path to simply supported beam image (optional)")

	// Output flags
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "beam_analysis_report", "Output PDF filename without extension")

	// Typesetting flags
	reportCmd.Flags().StringVar(&reportEngine, "engine", "pdflatex", "LaTeX engine used for typesetting")
	reportCmd.Flags().IntVar(&reportPasses, "passes", latex.DefaultPasses, "Number of typesetting passes")

	reportCmd.MarkFlagRequired("excel")
}

func runReport(cmd *cobra.Command, args []string) {
	rule := strings.Repeat("=", 70)
	fmt.Println(rule)
	fmt.Println("  BEAM FORCE ANALYSIS REPORT GENERATOR")
	fmt.Println(rule)
	fmt.Printf("Excel File:  %s\n", reportExcel)
	image := reportImage
	if image == "" {
		image = "Not provided"
	}
	fmt.Printf("Beam Image:  %s\n", image)
	fmt.Printf("Output Name: %s.pdf\n", reportOutput)
	fmt.Println(rule)
	fmt.Println()

	// Step 1: Read Excel data
	fmt.Println("Step 1: Reading Excel data...")
	tbl, err := xlsx.Load(reportExcel)
	if err != nil {
		reportFailure(fmt.Errorf("reading Excel file: %w", err))
	}
	fmt.Printf("✓ Successfully read data from: %s\n", reportExcel)
	fmt.Printf("  Rows: %d, Columns: %d\n", tbl.NumRows(), len(tbl.Columns))

	// Step 2: Validate image path if provided
	if reportImage != "" {
		if _, err := os.Stat(reportImage); err != nil {
			fmt.Printf("⚠ Warning: Image file not found: %s\n", reportImage)
			fmt.Println("  Proceeding without beam diagram image.")
			reportImage = ""
		}
	}

	series, resolution := table.Resolve(tbl)
	printResolutionNotices(resolution)

	// Step 3: Build and typeset the report
	fmt.Println("\nStep 2: Building PDF report...")
	doc := report.Assemble(tbl, series, reportImage)
	texPath := reportOutput + ".tex"
	if err := latex.WriteTeX(doc, texPath); err != nil {
		reportFailure(fmt.Errorf("writing LaTeX source: %w", err))
	}

	fmt.Println("\n⚙ Generating PDF report...")
	compiler := latex.Compiler{Command: reportEngine, Passes: reportPasses}
	if err := compiler.Compile(texPath); err != nil {
		reportFailure(err)
	}
	fmt.Printf("✓ PDF report generated successfully: %s.pdf\n", reportOutput)

	sum := report.Summarize(series)
	fmt.Println()
	fmt.Print(diagram.SummaryBox("KEY RESULTS", []string{
		fmt.Sprintf("Maximum Shear Force:    %.2f kN", sum.MaxShear),
		fmt.Sprintf("Maximum Bending Moment: %.2f kN-m", sum.MaxMoment),
		fmt.Sprintf("Number of Load Points:  %d", sum.LoadPoints),
		fmt.Sprintf("Beam Span:              %.2f m", sum.Span),
	}))

	fmt.Println()
	fmt.Println(rule)
	fmt.Println("  ✓ REPORT GENERATION COMPLETED SUCCESSFULLY")
	fmt.Println(rule)
}

// printResolutionNotices surfaces the column rules that fell back to
// positional or zero-filled series, so a reordered spreadsheet never
// produces an all-zero report silently.
func printResolutionNotices(res table.Resolution) {
	notices := []struct {
		role string
		r    table.SeriesResolution
	}{
		{"position", res.Position},
		{"shear force", res.Shear},
		{"bending moment", res.Moment},
	}
	for _, n := range notices {
		switch n.r.Rule {
		case table.RuleIndexed:
			fmt.Printf("⚠ Warning: %s column matched by position (column %d)\n", n.role, n.r.Index)
		case table.RuleZeroFilled:
			fmt.Printf("⚠ Warning: no %s column found, series zero-filled\n", n.role)
		}
	}
}

func reportFailure(err error) {
	rule := strings.Repeat("=", 70)
	fmt.Println()
	fmt.Println(rule)
	fmt.Println("  ✗ ERROR DURING REPORT GENERATION")
	fmt.Println(rule)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
