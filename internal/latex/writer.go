// Package latex serializes report documents to LaTeX source and drives
// the external typesetting engine.
package latex

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/gobfr/internal/report"
)

const preamble = `\documentclass{article}
\usepackage[T1]{fontenc}
\usepackage[utf8]{inputenc}
\usepackage{lmodern}
\usepackage{textcomp}
\usepackage[margin=1in]{geometry}
\usepackage{tikz}
\usepackage{pgfplots}
\pgfplotsset{compat=1.18}
\usepgfplotslibrary{fillbetween}
\usepackage{graphicx}
\usepackage{float}
\usepackage[hidelinks]{hyperref}
`

var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape quotes the LaTeX special characters in plain text.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Source serializes the document to a complete LaTeX file: preamble,
// title page, table of contents and every section in order.
func Source(doc *report.Document) string {
	var b strings.Builder
	b.WriteString(preamble)
	fmt.Fprintf(&b, "\\title{%s}\n\\author{%s}\n\\date{\\today}\n", Escape(doc.Title), Escape(doc.Author))
	b.WriteString("\\begin{document}\n\\maketitle\n\\newpage\n")
	b.WriteString("\\renewcommand{\\contentsname}{Contents}\n\\tableofcontents\n\\newpage\n")

	for _, sec := range doc.Sections {
		fmt.Fprintf(&b, "\n\\section{%s}\n", Escape(sec.Title))
		writeBlocks(&b, sec.Blocks)
		if sec.NewPageAfter {
			b.WriteString("\\newpage\n")
		}
	}

	b.WriteString("\n\\end{document}\n")
	return b.String()
}

// WriteTeX validates the document and writes its LaTeX source to path.
func WriteTeX(doc *report.Document, path string) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(Source(doc)), 0644)
}

func writeBlocks(b *strings.Builder, blocks []report.Block) {
	for _, blk := range blocks {
		switch blk := blk.(type) {
		case report.Paragraph:
			b.WriteString(Escape(string(blk)))
			b.WriteString("\n")
		case report.Raw:
			b.WriteString(string(blk))
			b.WriteString("\n")
		case report.List:
			env := "itemize"
			if blk.Ordered {
				env = "enumerate"
			}
			fmt.Fprintf(b, "\\begin{%s}\n", env)
			for _, item := range blk.Items {
				fmt.Fprintf(b, "\\item %s\n", item)
			}
			fmt.Fprintf(b, "\\end{%s}\n", env)
		case report.Figure:
			width := blk.Width
			if width == "" {
				width = `\textwidth`
			}
			b.WriteString("\\begin{figure}[htbp]\n\\centering\n")
			fmt.Fprintf(b, "\\includegraphics[width=%s]{%s}\n", width, blk.Path)
			if blk.Caption != "" {
				fmt.Fprintf(b, "\\caption{%s}\n", Escape(blk.Caption))
			}
			b.WriteString("\\end{figure}\n")
		case report.DataTable:
			writeTable(b, blk)
		case report.Diagram:
			b.WriteString(string(blk))
			if !strings.HasSuffix(string(blk), "\n") {
				b.WriteString("\n")
			}
		case report.Subsection:
			star := "*"
			if blk.Numbered {
				star = ""
			}
			fmt.Fprintf(b, "\\subsection%s{%s}\n", star, Escape(blk.Title))
			writeBlocks(b, blk.Blocks)
		}
	}
}

// writeTable renders the grid as a bordered tabular, headers bold, one
// rule after every row.
func writeTable(b *strings.Builder, t report.DataTable) {
	cols := len(t.Headers)
	if cols == 0 {
		return
	}

	b.WriteString("\\begin{center}\n")
	fmt.Fprintf(b, "\\begin{tabular}{%s}\n\\hline\n", "|"+strings.Repeat("c|", cols))

	headers := make([]string, cols)
	for i, h := range t.Headers {
		headers[i] = "\\textbf{" + Escape(h) + "}"
	}
	fmt.Fprintf(b, "%s \\\\\n\\hline\n", strings.Join(headers, " & "))

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = Escape(c)
		}
		fmt.Fprintf(b, "%s \\\\\n\\hline\n", strings.Join(cells, " & "))
	}

	b.WriteString("\\end{tabular}\n\\end{center}\n")
}
