package report

import (
	"fmt"
	"strings"
	"sync"
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

	// The number of errors and warnings reported so far.
	errorCount, warningCount int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// logLevelNames maps the log level names accepted on the command line and in
// build profiles to their log levels.
var logLevelNames = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warn":    LogLevelWarn,
	"verbose": LogLevelVerbose,
}

// ParseLogLevel converts the name of a log level to its enumerated value.
func ParseLogLevel(name string) (int, error) {
	if lvl, ok := logLevelNames[strings.ToLower(name)]; ok {
		return lvl, nil
	}

	return 0, fmt.Errorf("unknown log level: `%s`", name)
}

// rep is the global reporter instance.  It starts out silent so that library
// use of the compiler (eg. in tests) produces no output until the driver
// initializes it.
var rep = &Reporter{
	m:        &sync.Mutex{},
	logLevel: LogLevelSilent,
}

// InitReporter initializes the global error reporter to the given log level.
// Calling it again resets the reporter's error state.
func InitReporter(logLevel int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.logLevel = logLevel
	rep.errorCount = 0
	rep.warningCount = 0
}

// LogLevel returns the current log level of the global reporter.
func LogLevel() int {
	return rep.logLevel
}
