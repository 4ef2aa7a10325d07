package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"slc/ast"
	"slc/codegen"
	"slc/common"
	"slc/config"
	"slc/generate"
	"slc/report"
	"slc/syntax"
	"slc/vm"

	"github.com/sanity-io/litter"
)

// Compiler represents the overall state and configuration of the compilation
// of a single source file.
type Compiler struct {
	// The path to the source file or `-` for standard input.
	srcPath string

	// The path to display for the source file in messages.
	reprPath string

	// The full text of the source file.
	src string

	// The build profile.
	profile *config.Profile

	// The writer that dumps, run output, and `-` outputs are written to.
	stdout io.Writer

	// Stdin is the reader the source is read from when the source path is `-`.
	// It defaults to standard input.
	Stdin io.Reader

	// The parsed program.
	prog *ast.Block

	// Whether to print the token stream, the syntax tree, and whether to print
	// them as raw data structures.
	DumpTokens, DumpAST, DumpRaw bool
}

// NewCompiler creates a new compiler for the source file at srcPath.
func NewCompiler(srcPath string, profile *config.Profile, stdout io.Writer) *Compiler {
	reprPath := srcPath
	if srcPath == common.StdioPath {
		reprPath = "<stdin>"
	}

	return &Compiler{
		srcPath:  srcPath,
		reprPath: reprPath,
		profile:  profile,
		stdout:   stdout,
		Stdin:    os.Stdin,
	}
}

// OutputPath returns the path the compiler writes its output to.
func (c *Compiler) OutputPath() string {
	return c.profile.ResolveOutputPath()
}

// Compile runs all the phases of compilation.  It returns whether compilation
// succeeded.  All errors are reported as they are encountered.
func (c *Compiler) Compile() bool {
	if !c.loadSource() {
		return false
	}

	if c.DumpTokens && !c.dumpTokens() {
		return false
	}

	if !c.phase("Parsing", c.parse) {
		return false
	}

	if c.DumpAST {
		c.dumpAST()
	}

	switch c.profile.OutputMode {
	case config.OutputASM:
		var listing *codegen.Listing
		return c.phase("Generating", func() bool {
			listing = c.generateListing()
			return true
		}) && c.phase("Writing", func() bool {
			return c.writeOutput(listing.String())
		})
	case config.OutputLLVM:
		var llvmText string
		return c.phase("Generating", func() bool {
			mod, err := generate.Generate(c.prog, c.reprPath)
			if err != nil {
				report.ReportError(c.reprPath, c.src, err)
				return false
			}

			llvmText = mod.String()
			return true
		}) && c.phase("Writing", func() bool {
			return c.writeOutput(llvmText)
		})
	case config.OutputRun:
		var listing *codegen.Listing
		return c.phase("Generating", func() bool {
			listing = c.generateListing()
			return true
		}) && c.phase("Running", func() bool {
			return c.run(listing)
		})
	default:
		report.ReportICE("unknown output mode `%s`", c.profile.OutputMode)
		return false
	}
}

// -----------------------------------------------------------------------------

// phase runs a single phase of compilation and reports its completion.
func (c *Compiler) phase(name string, f func() bool) bool {
	start := time.Now()
	ok := f()
	report.ReportPhase(name, time.Since(start), ok)
	return ok
}

// loadSource reads the source text.
func (c *Compiler) loadSource() bool {
	var buff []byte
	var err error
	if c.srcPath == common.StdioPath {
		buff, err = io.ReadAll(c.Stdin)
	} else {
		buff, err = os.ReadFile(c.srcPath)
	}

	if err != nil {
		report.ReportStdError(c.reprPath, err)
		return false
	}

	c.src = string(buff)
	return true
}

// parse parses the source text.
func (c *Compiler) parse() bool {
	prog, warnings, err := syntax.Parse(
		strings.NewReader(c.src),
		syntax.WithMaxTokenLen(c.profile.MaxTokenLen),
	)

	c.reportWarnings(warnings)

	if err != nil {
		report.ReportError(c.reprPath, c.src, err)
		return false
	}

	c.prog = prog
	return true
}

// generateListing generates the pseudo-assembly listing of the program.
func (c *Compiler) generateListing() *codegen.Listing {
	listing := codegen.Generate(c.prog)

	for _, warning := range listing.Warnings {
		report.ReportCompileWarning(c.reprPath, c.src, nil, "%s", warning)
	}

	return listing
}

// run evaluates a listing and prints the final values of all variables.
func (c *Compiler) run(listing *codegen.Listing) bool {
	m := vm.NewMachine()
	if err := m.Run(listing); err != nil {
		report.ReportStdError(c.reprPath, err)
		return false
	}

	for _, v := range m.Vars() {
		fmt.Fprintf(c.stdout, "%s = %s\n", v.Name, v.Value)
	}

	return true
}

// writeOutput writes the generated output text to the output path.
func (c *Compiler) writeOutput(text string) bool {
	outputPath := c.OutputPath()

	if outputPath == common.StdioPath {
		if _, err := io.WriteString(c.stdout, text); err != nil {
			report.ReportStdError(outputPath, err)
			return false
		}

		return true
	}

	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		report.ReportStdError(outputPath, err)
		return false
	}

	return true
}

// reportWarnings reports lexical warnings.
func (c *Compiler) reportWarnings(warnings []*report.LocalCompileError) {
	for _, w := range warnings {
		report.ReportCompileWarning(c.reprPath, c.src, w.Span, "%s", w.Message)
	}
}

// -----------------------------------------------------------------------------

// rawDumper is the configuration used to dump raw data structures.
var rawDumper = litter.Options{
	HidePrivateFields: true,
	StripPackageNames: true,
}

// dumpTokens prints the token stream of the source text.
func (c *Compiler) dumpTokens() bool {
	toks, _, err := syntax.Tokenize(strings.NewReader(c.src))
	if err != nil {
		report.ReportError(c.reprPath, c.src, err)
		return false
	}

	if c.DumpRaw {
		fmt.Fprintln(c.stdout, rawDumper.Sdump(toks))
		return true
	}

	for _, tok := range toks {
		fmt.Fprintln(c.stdout, tok)
	}

	return true
}

// dumpAST prints the syntax tree of the program.
func (c *Compiler) dumpAST() {
	if c.DumpRaw {
		fmt.Fprintln(c.stdout, rawDumper.Sdump(c.prog))
		return
	}

	ast.Fprint(c.stdout, c.prog)
}
