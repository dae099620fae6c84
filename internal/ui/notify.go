// Package ui renders terminal notifications, color swatches and clipboard
// writes for the CLI.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	badgeSuccess = color.New(color.BgGreen, color.FgBlack)
	badgeError   = color.New(color.BgRed, color.FgWhite)
	badgeInfo    = color.New(color.BgBlue, color.FgWhite)

	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrDim     = color.New(color.FgHiBlack)
)

// Notifier prints transient status messages. Success and info go to Out,
// errors to Err.
type Notifier struct {
	Out io.Writer
	Err io.Writer
}

// Success reports a completed action.
func (n Notifier) Success(format string, args ...any) {
	fmt.Fprintf(n.Out, "%s %s\n", badgeSuccess.Sprint(" OK "), clrSuccess.Sprintf(format, args...))
}

// Error reports a failed action.
func (n Notifier) Error(format string, args ...any) {
	fmt.Fprintf(n.Err, "%s %s\n", badgeError.Sprint(" ERROR "), clrError.Sprintf(format, args...))
}

// Info prints a neutral note.
func (n Notifier) Info(format string, args ...any) {
	fmt.Fprintf(n.Out, "%s %s\n", badgeInfo.Sprint(" INFO "), fmt.Sprintf(format, args...))
}

// Detail prints an indented, dimmed line under a notification.
func (n Notifier) Detail(format string, args ...any) {
	fmt.Fprintf(n.Out, "  %s\n", clrDim.Sprintf(format, args...))
}
