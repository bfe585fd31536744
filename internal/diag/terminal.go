package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgBlue, color.Bold)
	locColor  = color.New(color.FgCyan)
)

// FormatForTerminal renders a diagnostic for terminal output with colors.
func (d Diagnostic) FormatForTerminal() string {
	c := infoColor
	switch d.Severity {
	case Warning:
		c = warnColor
	case Error:
		c = errColor
	}

	return fmt.Sprintf("%s: %s [%s]\n  %s %s\n",
		c.Sprint(d.Severity.String()),
		d.Message,
		d.Code,
		locColor.Sprint("-->"),
		d.Location)
}

// Print writes every diagnostic to w in terminal format.
func Print(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		fmt.Fprint(w, d.FormatForTerminal())
	}
}
