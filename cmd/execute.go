// Package cmd is the top-level "driver" package for the SimpleLang compiler: it
// contains all the functionality for parsing command-line arguments, loading
// build profiles, and running all the various phases of the compiler.
package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"slc/common"
	"slc/config"
	"slc/report"

	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `slc` CLI utility.  It returns the
// exit status of the process.
func Execute() int {
	return execute(os.Args, os.Stdin, os.Stdout, os.Stderr)
}

// newCLI sets up the argument parser and all its extended commands and
// arguments.  Named arguments take the form `--name=value` or `-short=value`
// and may follow the subcommand: global arguments included.
func newCLI() *olive.Command {
	cli := olive.NewCLI("slc", "slc is a compiler for SimpleLang programs", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	cli.AddFlag("no-color", "nc", "disable colored output")

	buildCmd := cli.AddSubcommand("build", "compile a source file", true)
	buildCmd.AddPrimaryArg("source-path", "the path to the source file to build", false)
	buildCmd.AddFlag("stdin", "in", "read the source file from standard input")
	buildCmd.AddStringArg("output", "o", "the path to write output to or `-` for standard output", false)
	buildCmd.AddSelectorArg("mode", "m", "the kind of output to produce", false, config.OutputModes())
	buildCmd.AddStringArg("profile", "p", "the path to the build profile to use", false)
	buildCmd.AddFlag("tokens", "tk", "print the token stream of the source file")
	buildCmd.AddFlag("ast", "a", "print the syntax tree of the source file")
	buildCmd.AddFlag("raw", "r", "print tokens and syntax trees as raw data structures")

	cli.AddSubcommand("version", "print the slc version", false)

	return cli
}

// execute runs the CLI over args.  Compiler output goes to stdout while all
// messages go to stderr.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	report.InitReporter(report.LogLevelVerbose, stderr)

	result, err := olive.ParseArgs(newCLI(), args)
	if err != nil {
		report.ReportStdError("slc", err)
		return 1
	}

	if result.HasFlag("no-color") {
		report.NoColor()
	}

	// an explicit log level always takes precedence over the build profile
	logLevelName, hasLogLevel := result.Arguments["loglevel"].(string)
	if hasLogLevel {
		logLevel, _ := report.LogLevelFromName(logLevelName)
		report.SetLogLevel(logLevel)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		return execBuildCommand(subResult, hasLogLevel, stdin, stdout)
	case "version":
		report.DisplayInfoMessage("slc version", common.SlcVersion)
	}

	return 0
}

// execBuildCommand executes the build subcommand and handles all errors.
func execBuildCommand(result *olive.ArgParseResult, hasLogLevel bool, stdin io.Reader, stdout io.Writer) int {
	srcPath, hasSrcPath := result.PrimaryArg()
	if result.HasFlag("stdin") == hasSrcPath {
		report.ReportStdError("slc build", errors.New("expected either a source path or --stdin"))
		return 1
	}

	if !hasSrcPath {
		srcPath = common.StdioPath
	}

	prof, err := loadBuildProfile(result, srcPath)
	if err != nil {
		report.ReportStdError("slc build", err)
		return 1
	}

	if !hasLogLevel {
		report.SetLogLevel(prof.LogLevel)
	}

	// command line options override the profile
	if mode, ok := result.Arguments["mode"]; ok {
		prof.OutputMode = mode.(string)
	}

	if outputPath, ok := result.Arguments["output"]; ok {
		prof.OutputPath = outputPath.(string)
	}

	c := NewCompiler(srcPath, prof, stdout)
	c.Stdin = stdin
	c.DumpTokens = result.HasFlag("tokens")
	c.DumpAST = result.HasFlag("ast")
	c.DumpRaw = result.HasFlag("raw")

	report.ReportCompileHeader(common.SlcVersion, prof.OutputMode)

	ok := c.Compile()

	report.ReportCompilationFinished(c.OutputPath())

	if !ok || report.AnyErrors() {
		return 1
	}

	return 0
}

// loadBuildProfile loads the build profile to use.  An explicitly selected
// profile is loaded if given.  Otherwise, a profile file sitting next to the
// source file is used if one exists.  Failing that, the default profile named
// after the source file is used.
func loadBuildProfile(result *olive.ArgParseResult, srcPath string) (*config.Profile, error) {
	profPath, ok := result.Arguments["profile"].(string)
	if !ok {
		if srcPath == common.StdioPath {
			return config.DefaultProfile(), nil
		}

		if profPath, ok = config.FindProfile(filepath.Dir(srcPath)); !ok {
			prof := config.DefaultProfile()
			prof.Name = strings.TrimSuffix(filepath.Base(srcPath), common.SlcFileExt)
			return prof, nil
		}
	}

	return config.LoadProfile(profPath)
}
