package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobfr/internal/diagram"
	"github.com/alexiusacademia/gobfr/internal/report"
	"github.com/alexiusacademia/gobfr/internal/table"
	"github.com/alexiusacademia/gobfr/internal/xlsx"
)

var (
	// Diagram inputs
	diagramExcel  string
	diagramType   string
	diagramOutput string
	diagramASCII  bool
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Render a single force diagram without the full report",
	Long: `Render the shear force or bending moment diagram from an Excel
workbook, either as a standalone image file or as a quick chart in
the terminal.

The image format follows the output extension: .png, .svg or .pdf.

Examples:
  # Export the shear force diagram as a PNG
  gobfr diagram --excel data.xlsx --type shear --output sfd.png

  # Preview the bending moment diagram in the terminal
  gobfr diagram -e data.xlsx -t moment --ascii`,
	Run: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)

	diagramCmd.Flags().StringVarP(&diagramExcel, "excel", "e", "", "Path to Excel file containing beam force data [required]")
	diagramCmd.Flags().StringVarP(&diagramType, "type", "t", "shear", "Diagram to render: shear or moment")
	diagramCmd.Flags().StringVarP(&diagramOutput, "output", "o", "", "Output image file (.png, .svg or .pdf)")
	diagramCmd.Flags().BoolVar(&diagramASCII, "ascii", false, "Print the diagram to the terminal instead")

	diagramCmd.MarkFlagRequired("excel")
}

func runDiagram(cmd *cobra.Command, args []string) {
	if !diagramASCII && diagramOutput == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to render, pass --output or --ascii")
		os.Exit(1)
	}

	tbl, err := xlsx.Load(diagramExcel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	series, resolution := table.Resolve(tbl)
	printResolutionNotices(resolution)

	var spec diagram.Spec
	var values []float64
	var peakLabel, peakUnit string
	var peak float64
	sum := report.Summarize(series)
	switch diagramType {
	case "shear":
		spec = diagram.ShearSpec()
		values = series.Shears
		peakLabel, peakUnit, peak = "Max |Shear Force|", "kN", sum.MaxShear
	case "moment":
		spec = diagram.MomentSpec()
		values = series.Moments
		peakLabel, peakUnit, peak = "Max |Bending Moment|", "kN-m", sum.MaxMoment
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown diagram type %q (want shear or moment)\n", diagramType)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("SERIES SUMMARY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load Points:\t%d\n", sum.LoadPoints)
	fmt.Fprintf(w, "  Beam Span:\t%.2f m\n", sum.Span)
	fmt.Fprintf(w, "  %s:\t%.2f %s\n", peakLabel, peak, peakUnit)
	w.Flush()
	fmt.Println()

	if diagramASCII {
		fmt.Print(diagram.Preview(spec, series.Positions, values))
	}
	if diagramOutput != "" {
		if err := diagram.WriteImage(spec, series.Positions, values, diagramOutput); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Diagram written to: %s\n", diagramOutput)
	}
}
