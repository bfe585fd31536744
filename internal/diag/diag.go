// Package diag defines the structured diagnostics emitted by the
// generators. Structural and annotation errors are detected once, at
// generation time, and reported as Diagnostics; they never leak into
// generated code.
package diag

import "fmt"

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Location represents a position in source code
type Location struct {
	File   string
	Line   int
	Column int
}

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Diagnostic is a single generator finding tied to a source location.
type Diagnostic struct {
	Phase    string // "reader", "classifier", "gen", "repeat"
	Code     string // "E101", "E201", ...
	Message  string
	Severity Severity
	Location Location
}

// Error implements the error interface so a Diagnostic can flow
// through ordinary error returns.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Location, d.Severity, d.Message)
}

// Errorf builds an Error-severity diagnostic with a formatted message.
func Errorf(phase, code string, loc Location, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Phase:    phase,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Severity: Error,
		Location: loc,
	}
}

// HasErrors reports whether any diagnostic in the list is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity >= Error {
			return true
		}
	}
	return false
}
