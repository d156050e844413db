// Package console prints the marked status lines users see for every task.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

const (
	successMark = "++++++++++"
	failureMark = "----------"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)

	out io.Writer = os.Stdout
)

// SetOutput redirects status lines, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// Success prints a marked success line.
func Success(format string, args ...any) {
	_, _ = successColor.Fprintln(out, SuccessLine(fmt.Sprintf(format, args...)))
}

// Failure prints a marked failure line.
func Failure(format string, args ...any) {
	_, _ = failureColor.Fprintln(out, FailureLine(fmt.Sprintf(format, args...)))
}

// Line prints an unmarked line.
func Line(format string, args ...any) {
	_, _ = fmt.Fprintf(out, format+"\n", args...)
}

// SuccessLine returns msg framed by the success marks.
func SuccessLine(msg string) string {
	return successMark + " " + msg + " " + successMark
}

// FailureLine returns msg framed by the failure marks.
func FailureLine(msg string) string {
	return failureMark + " " + msg + " " + failureMark
}
