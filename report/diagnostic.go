package report

import "fmt"

// DiagKind enumerates the kinds of semantic problems the analyzer can detect.
type DiagKind int

const (
	UnresolvedName DiagKind = iota
	UnresolvedType
	NonExhaustiveMatch
	InvalidPatternArity
	InvalidAssignmentTarget
	InvalidCallArity
	DuplicateDefinition
	InvalidReturn
	InvalidLiteral
)

var diagKindNames = map[DiagKind]string{
	UnresolvedName:          "unresolved name",
	UnresolvedType:          "unresolved type",
	NonExhaustiveMatch:      "non-exhaustive match",
	InvalidPatternArity:     "invalid pattern arity",
	InvalidAssignmentTarget: "invalid assignment target",
	InvalidCallArity:        "invalid call arity",
	DuplicateDefinition:     "duplicate definition",
	InvalidReturn:           "invalid return",
	InvalidLiteral:          "invalid literal",
}

func (dk DiagKind) String() string {
	if name, ok := diagKindNames[dk]; ok {
		return name
	}

	return fmt.Sprintf("diagnostic(%d)", int(dk))
}

// Severity is the severity of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}

	return "error"
}

// Diagnostic is a single semantic error or warning attached to a span of the
// source program.
type Diagnostic struct {
	Kind     DiagKind
	Severity Severity
	Span     *TextSpan
	Message  string
}

// NewDiagnostic creates a new error diagnostic.
func NewDiagnostic(kind DiagKind, span *TextSpan, msg string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Kind:     kind,
		Severity: SeverityError,
		Span:     span,
		Message:  fmt.Sprintf(msg, args...),
	}
}

// NewWarning creates a new warning diagnostic.
func NewWarning(kind DiagKind, span *TextSpan, msg string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Kind:     kind,
		Severity: SeverityWarning,
		Span:     span,
		Message:  fmt.Sprintf(msg, args...),
	}
}

func (d *Diagnostic) Error() string {
	if d.Span == nil {
		return fmt.Sprintf("%s: %s: %s", d.Severity, d.Kind, d.Message)
	}

	return fmt.Sprintf("%s: %s: %s: %s", d.Span, d.Severity, d.Kind, d.Message)
}

// IsError returns whether the diagnostic should stop code generation.
func (d *Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}
