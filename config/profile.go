// Package config loads build profiles: TOML files which set the default
// options of a build.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"slc/common"
	"slc/report"
	"slc/util"

	"github.com/pelletier/go-toml"
)

// Enumeration of output modes.
const (
	OutputASM  = "asm"
	OutputLLVM = "llvm"
	OutputRun  = "run"
)

// outputModes lists the enumerated output modes.
var outputModes = []string{OutputASM, OutputLLVM, OutputRun}

// outputExts maps each output mode that writes a file to its file extension.
var outputExts = map[string]string{
	OutputASM:  ".asm",
	OutputLLVM: ".ll",
}

// Profile represents a build profile.
type Profile struct {
	// The name of the build.  This is used to name default outputs.
	Name string

	// The kind of output to produce.  This must be one of the enumerated output
	// modes.
	OutputMode string

	// The path to write the output to.  This is empty if the output path should
	// be derived from the name and output mode.
	OutputPath string

	// The log level of the build.  This must be one of the enumerated log
	// levels in package report.
	LogLevel int

	// The maximum length of identifiers and number literals.  Zero means that
	// tokens may be of any length.
	MaxTokenLen int
}

// tomlProfile represents a build profile as it is encoded in TOML.
type tomlProfile struct {
	Name        string `toml:"name"`
	OutputMode  string `toml:"output-mode"`
	OutputPath  string `toml:"output-path"`
	LogLevel    string `toml:"log-level"`
	MaxTokenLen int    `toml:"max-token-len"`
	SlcVersion  string `toml:"slc-version"`
}

// DefaultProfile returns the profile used when no profile file is given.
func DefaultProfile() *Profile {
	return &Profile{
		Name:       "out",
		OutputMode: OutputASM,
		LogLevel:   report.LogLevelVerbose,
	}
}

// LoadProfile loads and validates the profile at path.
func LoadProfile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open profile at `%s`: %w", path, err)
	}
	defer f.Close()

	prof, err := ReadProfile(f)
	if err != nil {
		return nil, fmt.Errorf("profile at `%s`: %w", path, err)
	}

	return prof, nil
}

// ReadProfile reads and validates a profile from r.  Any field not present in
// the TOML keeps its default value.
func ReadProfile(r io.Reader) (*Profile, error) {
	buff, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	tomlProf := &tomlProfile{}
	if err := toml.Unmarshal(buff, tomlProf); err != nil {
		return nil, err
	}

	prof := DefaultProfile()
	if err := validateProfile(prof, tomlProf); err != nil {
		return nil, err
	}

	return prof, nil
}

// FindProfile looks for a profile file in dir.  It returns the path to the
// profile and whether one exists.
func FindProfile(dir string) (string, bool) {
	path := filepath.Join(dir, common.SlcProfileFileName)

	if finfo, err := os.Stat(path); err == nil && !finfo.IsDir() {
		return path, true
	}

	return "", false
}

// validateProfile checks that the TOML profile contents are valid and moves
// them over to prof.
func validateProfile(prof *Profile, tomlProf *tomlProfile) error {
	if tomlProf.Name != "" {
		if strings.ContainsAny(tomlProf.Name, `/\`) {
			return fmt.Errorf("profile name `%s` must not contain path separators", tomlProf.Name)
		}

		prof.Name = tomlProf.Name
	}

	if tomlProf.OutputMode != "" {
		if !IsOutputMode(tomlProf.OutputMode) {
			return fmt.Errorf("invalid output mode `%s`: expected asm, llvm or run", tomlProf.OutputMode)
		}

		prof.OutputMode = tomlProf.OutputMode
	}

	prof.OutputPath = tomlProf.OutputPath

	if tomlProf.LogLevel != "" {
		level, ok := report.LogLevelFromName(tomlProf.LogLevel)
		if !ok {
			return fmt.Errorf("invalid log level `%s`", tomlProf.LogLevel)
		}

		prof.LogLevel = level
	}

	if tomlProf.MaxTokenLen < 0 {
		return fmt.Errorf("max-token-len must not be negative")
	}
	prof.MaxTokenLen = tomlProf.MaxTokenLen

	if tomlProf.SlcVersion != "" && tomlProf.SlcVersion != common.SlcVersion {
		report.ReportCompileWarning(
			common.SlcProfileFileName, "", nil,
			"profile targets slc v%s but this is slc v%s", tomlProf.SlcVersion, common.SlcVersion,
		)
	}

	return nil
}

// IsOutputMode returns whether mode is one of the enumerated output modes.
func IsOutputMode(mode string) bool {
	return util.Contains(outputModes, mode)
}

// ResolveOutputPath returns the path the build's output is written to.  It is
// empty for output modes which write no file.
func (p *Profile) ResolveOutputPath() string {
	if p.OutputPath != "" {
		return p.OutputPath
	}

	ext, ok := outputExts[p.OutputMode]
	if !ok {
		return ""
	}

	return p.Name + ext
}

// OutputModes returns the names of all the output modes.
func OutputModes() []string {
	return append([]string(nil), outputModes...)
}
