package latex

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultPasses is how many engine runs it takes for the table of
// contents and cross-references to settle.
const DefaultPasses = 2

// Compiler invokes the external typesetting engine on a .tex file. The
// zero value runs pdflatex for DefaultPasses passes.
type Compiler struct {
	Command string   // engine binary, defaults to pdflatex
	Args    []string // extra engine arguments
	Passes  int      // number of runs, defaults to DefaultPasses
}

// Compile runs the engine on texPath, working in the file's directory
// so the PDF and auxiliary files land next to the source. The engine
// output of a failed pass is attached to the returned error.
func (c Compiler) Compile(texPath string) error {
	command := c.Command
	if command == "" {
		command = "pdflatex"
	}
	passes := c.Passes
	if passes < 1 {
		passes = DefaultPasses
	}

	args := append([]string{"-interaction=nonstopmode"}, c.Args...)
	args = append(args, filepath.Base(texPath))

	for pass := 1; pass <= passes; pass++ {
		cmd := exec.Command(command, args...)
		cmd.Dir = filepath.Dir(texPath)
		out, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("typesetting pass %d/%d failed: %w\n%s",
				pass, passes, err, tail(out, 20))
		}
	}
	return nil
}

// tail keeps the last n lines of engine output, where the failure
// detail usually is.
func tail(out []byte, n int) string {
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
