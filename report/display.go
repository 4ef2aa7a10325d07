package report

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	fmt.Fprintf(rep.out, "%s %s\n", ErrorStyleBG.Sprint("internal compiler error"), message)
	fmt.Fprint(rep.out, "This error was not supposed to happen: please open an issue.\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	fmt.Fprintf(rep.out, "%s %s\n\n", ErrorStyleBG.Sprint("fatal error"), ErrorColorFG.Sprint(message))
}

// displayInfoMessage displays an informational message prefixed by a tag.
func displayInfoMessage(tag, msg string) {
	fmt.Fprintf(rep.out, "%s %s\n", InfoStyleBG.Sprint(tag), InfoColorFG.Sprint(msg))
}

// displayCompileMessage displays a compilation error or warning.  The label is
// the string to prefix the message with: eg. if we want to display an error,
// the label is "error".
func displayCompileMessage(label, reprPath, src string, span *TextSpan, message string) {
	var styledLabel string
	if label == "error" {
		styledLabel = ErrorColorFG.Sprint(label)
	} else {
		styledLabel = WarnColorFG.Sprint(label)
	}

	if span == nil {
		fmt.Fprintf(rep.out, "%s: %s: %s\n\n", reprPath, styledLabel, message)
	} else {
		fmt.Fprintf(rep.out, "%s:%d:%d: %s: %s\n\n", reprPath, span.StartLine+1, span.StartCol+1, styledLabel, message)
		displaySourceText(src, span)
	}
}

// displayStdError displays a standard Go error.
func displayStdError(reprPath string, err error) {
	fmt.Fprintf(rep.out, "%s: %s: %s\n\n", reprPath, ErrorColorFG.Sprint("error"), err)
}

// -----------------------------------------------------------------------------

// displaySourceText displays a segment of source text defined by a text span.
func displaySourceText(src string, span *TextSpan) {
	// Collect all the source lines containing the given source text.
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(src))
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	// The span may point at the end of the file past the last line.
	if len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation.
	minIndent := math.MaxInt
	for _, line := range lines {
		lineIndent := len(line) - len(strings.TrimLeft(line, " "))
		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Calculate the maximum line number length.
	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))

	// Generate the format string for line numbers.
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		// Print the line number and the source text with the leading indent
		// trimmed off.
		fmt.Fprintf(rep.out, lineNumFmtStr, i+span.StartLine+1)
		fmt.Fprintln(rep.out, line[minIndent:])

		// Print the line and bar used for the line for carret underlining.
		fmt.Fprint(rep.out, strings.Repeat(" ", maxLineNumLen), " | ")

		// Any line which is not the starting line continues the underlining
		// of the previous line from its first column.
		carretStart := minIndent
		if i == 0 && span.StartCol > minIndent {
			carretStart = span.StartCol
		}

		// Only the last line stops underlining before the end of the line.
		carretEnd := len(line)
		if i == len(lines)-1 && span.EndCol < carretEnd {
			carretEnd = span.EndCol
		}

		// Always underline at least one column so that errors positioned at
		// the end of a line are still visible.
		if carretEnd <= carretStart {
			carretEnd = carretStart + 1
		}

		fmt.Fprint(rep.out, strings.Repeat(" ", carretStart-minIndent))
		fmt.Fprintln(rep.out, ErrorColorFG.Sprint(strings.Repeat("^", carretEnd-carretStart)))
	}

	// Print newlines after the error message.
	fmt.Fprintln(rep.out)
}

// -----------------------------------------------------------------------------

// displayCompileHeader displays all the compiler information before starting
// compilation.
func displayCompileHeader(version, mode string) {
	fmt.Fprintf(rep.out, "slc %s -- mode: %s\n", InfoColorFG.Sprint("v"+version), InfoColorFG.Sprint(mode))
}

// maxPhaseLength is the length of the longest phase name.
const maxPhaseLength = len("Generating")

// displayPhase displays the end of a compilation phase.
func displayPhase(phase string, elapsed time.Duration, success bool) {
	padding := strings.Repeat(" ", maxPhaseLength-len(phase)+2)

	if success {
		fmt.Fprintf(rep.out, "%s %s%s(%.3fs)\n", SuccessStyleBG.Sprint("Done"), phase, padding, elapsed.Seconds())
	} else {
		fmt.Fprintf(rep.out, "%s %s\n", ErrorStyleBG.Sprint("Fail"), phase)
	}
}

// displayCompilationFinished displays a compilation finished message.
func displayCompilationFinished(success bool, warnCount int, outputPath string) {
	fmt.Fprintln(rep.out)

	if success {
		fmt.Fprint(rep.out, SuccessColorFG.Sprint("All done! "))
	} else {
		fmt.Fprint(rep.out, ErrorColorFG.Sprint("Oh no! "))
	}

	switch warnCount {
	case 0:
		fmt.Fprint(rep.out, "(", SuccessColorFG.Sprint(0), " warnings)")
	case 1:
		fmt.Fprint(rep.out, "(", WarnColorFG.Sprint(1), " warning)")
	default:
		fmt.Fprint(rep.out, "(", WarnColorFG.Sprint(warnCount), " warnings)")
	}

	if success && outputPath != "" {
		fmt.Fprintf(rep.out, " output written to %s", outputPath)
	}

	fmt.Fprintln(rep.out)
}
