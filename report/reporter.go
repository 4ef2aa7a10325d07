package report

import (
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
)

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during program execution.  The reporter respects the set
// log level and is synchronized: its methods can be safely called from multiple
// goroutines.
type Reporter struct {
	// The mutex used to synchonize different error method calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The writer all messages are displayed to.
	out io.Writer

	// Indicates whether or not an error has been detected.
	isErr bool

	// The number of warnings reported.
	warnCount int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// logLevelNames maps the command-line names of the log levels to their values.
var logLevelNames = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warn":    LogLevelWarn,
	"verbose": LogLevelVerbose,
}

// LogLevelFromName converts a log level name into its enumerated value.
func LogLevelFromName(name string) (int, bool) {
	level, ok := logLevelNames[name]
	return level, ok
}

// rep is the global reporter instance.
var rep = &Reporter{m: &sync.Mutex{}, logLevel: LogLevelVerbose, out: os.Stderr}

// InitReporter initializes the global error reporter to the given log level
// writing to out.  If out is nil, standard error is used: standard output is
// reserved for compiler output.
func InitReporter(logLevel int, out io.Writer) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if out == nil {
		out = os.Stderr
	}

	rep.logLevel = logLevel
	rep.out = out
	rep.isErr = false
	rep.warnCount = 0
}

// NoColor disables all colored output.
func NoColor() {
	pterm.DisableColor()
}

// SetLogLevel changes the log level of the global reporter without resetting
// any of its other state.
func SetLogLevel(logLevel int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.logLevel = logLevel
}
