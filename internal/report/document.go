// Package report assembles the beam force analysis document from a
// loaded force table and its resolved series.
package report

import "fmt"

// Block is one content unit inside a section.
type Block interface {
	block()
}

// Paragraph is narrative text, escaped when serialized.
type Paragraph string

// Raw is markup passed through to the output verbatim.
type Raw string

// List renders items as a bulleted or numbered list. Items are raw
// markup, not escaped.
type List struct {
	Ordered bool
	Items   []string
}

// Figure embeds an external image by path.
type Figure struct {
	Path    string
	Width   string // includegraphics width expression, defaults to \textwidth
	Caption string
}

// DataTable renders a grid of plain-text cells with a header row.
// Cells are escaped when serialized.
type DataTable struct {
	Headers []string
	Rows    [][]string
}

// Diagram is a pre-rendered vector graphics figure.
type Diagram string

// Subsection nests a titled group of blocks inside a section.
// Unnumbered subsections stay out of the table of contents.
type Subsection struct {
	Title    string
	Numbered bool
	Blocks   []Block
}

func (Paragraph) block()  {}
func (Raw) block()        {}
func (List) block()       {}
func (Figure) block()     {}
func (DataTable) block()  {}
func (Diagram) block()    {}
func (Subsection) block() {}

// Section is one numbered top-level division of the report.
type Section struct {
	Title        string
	Blocks       []Block
	NewPageAfter bool
}

// Document is the assembled report, created once per invocation and
// discarded after serialization.
type Document struct {
	Title    string
	Author   string
	Sections []Section
}

// Validate checks the structural limits of the document: a section
// carries at most one figure, one data table and one diagram, counting
// blocks nested in subsections.
func (d *Document) Validate() error {
	for _, sec := range d.Sections {
		var c blockCounts
		c.tally(sec.Blocks)
		if c.figures > 1 || c.tables > 1 || c.diagrams > 1 {
			return fmt.Errorf("section %q has %d figures, %d tables and %d diagrams, at most one of each is allowed",
				sec.Title, c.figures, c.tables, c.diagrams)
		}
	}
	return nil
}

type blockCounts struct {
	figures, tables, diagrams int
}

func (c *blockCounts) tally(blocks []Block) {
	for _, b := range blocks {
		switch b := b.(type) {
		case Figure:
			c.figures++
		case DataTable:
			c.tables++
		case Diagram:
			c.diagrams++
		case Subsection:
			c.tally(b.Blocks)
		}
	}
}
