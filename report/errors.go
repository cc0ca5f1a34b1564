package report

import (
	"fmt"
	"os"
)

// TextSpan represents a range or "span" of source text. It is used to specify
// erroneous or otherwise significant source text in a Locus program.  Text
// spans are half-open: the starting position is the position of the first
// character in the span and the ending position is the position just past the
// last character in the span.  The line and column numbers are zero-indexed.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	if start == nil {
		return end
	} else if end == nil {
		return start
	}

	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

func (ts *TextSpan) String() string {
	return fmt.Sprintf("%d:%d", ts.StartLine+1, ts.StartCol+1)
}

// -----------------------------------------------------------------------------

// LocalCompileError is a compilation error that occurs in a context in which
// the file is known by the error handler and thus doesn't need to be passed
// along with the error.
type LocalCompileError struct {
	// The error message.
	Message string

	// The span over which the error occurs.
	Span *TextSpan
}

func (lce *LocalCompileError) Error() string {
	if lce.Span == nil {
		return lce.Message
	}

	return fmt.Sprintf("%s: %s", lce.Span, lce.Message)
}

// Raise creates a new local compile error.
func Raise(span *TextSpan, msg string, args ...interface{}) *LocalCompileError {
	return &LocalCompileError{Message: fmt.Sprintf(msg, args...), Span: span}
}

// -----------------------------------------------------------------------------

// ReportICE reports an internal compiler error.  These are errors that
// specifically result from a bug or unexpected condition occurring within the
// compiler: they are not intended to ever happen.  These errors are always
// displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayICE(fmt.Sprintf(message, args...))

	os.Exit(-1)
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately.  However, they are expected errors that
// generally result from invalid configuration of some form: missing input
// file, unreadable build profile, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportCompileError reports a compilation error: ie. erroneous input code. The
// absPath is the absolute path to the erroneous source file. The reprPath is
// the path displayed to the user.  The span may be nil in which case no
// position information will be printed.
func ReportCompileError(absPath, reprPath string, span *TextSpan, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayCompileMessage("error", absPath, reprPath, span, fmt.Sprintf(message, args...))
	}
}

// ReportCompileWarning reports a compilation warning.  The arguments are of the
// same form as those to ReportCompileError.
func ReportCompileWarning(absPath, reprPath string, span *TextSpan, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++

	if rep.logLevel > LogLevelError {
		displayCompileMessage("warning", absPath, reprPath, span, fmt.Sprintf(message, args...))
	}
}

// ReportDiagnostic reports a diagnostic collected by semantic analysis using
// the display appropriate to its severity.
func ReportDiagnostic(absPath, reprPath string, diag *Diagnostic) {
	msg := fmt.Sprintf("%s: %s", diag.Kind, diag.Message)

	if diag.Severity == SeverityError {
		ReportCompileError(absPath, reprPath, diag.Span, "%s", msg)
	} else {
		ReportCompileWarning(absPath, reprPath, diag.Span, "%s", msg)
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(reprPath string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayStdError(reprPath, err)
	}
}

// ReportInfo reports an informational message.  These are only displayed at
// the verbose log level.
func ReportInfo(tag, message string, args ...interface{}) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayInfo(tag, fmt.Sprintf(message, args...))
	}
}

// ReportBeginPhase displays a spinner for a compilation phase.  Phases are only
// displayed at the verbose log level.
func ReportBeginPhase(phase string) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayBeginPhase(phase)
	}
}

// ReportEndPhase ends the phase begun by ReportBeginPhase.
func ReportEndPhase(success bool) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayEndPhase(success)
	}
}

// -----------------------------------------------------------------------------

// AnyErrors returns whether or not any errors were detected.
func AnyErrors() bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount > 0
}

// Counts returns the number of errors and warnings reported so far.
func Counts() (int, int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount, rep.warningCount
}

// ReportFinished displays the closing summary of a compiler run.
func ReportFinished() {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel > LogLevelSilent {
		displayFinished(rep.errorCount == 0, rep.errorCount, rep.warningCount)
	}
}

// -----------------------------------------------------------------------------

// CatchErrors catches any errors thrown by a `panic` during a stage of
// compilation. In effect, this handler determines when any errors
// "unrecoverable" within a given subsection of the compiler should stop
// bubbling.
// NB: This function must ALWAYS be deferred.
func CatchErrors(absPath, reprPath string) {
	if x := recover(); x != nil {
		if cerr, ok := x.(*LocalCompileError); ok {
			ReportCompileError(
				absPath,
				reprPath,
				cerr.Span,
				cerr.Message,
			)
		} else if diag, ok := x.(*Diagnostic); ok {
			ReportDiagnostic(absPath, reprPath, diag)
		} else if serr, ok := x.(error); ok {
			ReportStdError(reprPath, serr)
		} else {
			ReportFatal("%s", x)
		}
	}
}
