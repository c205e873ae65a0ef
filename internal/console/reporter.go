package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ReportFatal prints a one-line diagnostic for a fatal error.
func ReportFatal(w io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprintf(w, "babysub: error: %s\n", err)
}

// ReportParseError prints a caret-style diagnostic for a parse error: the
// location header, the offending input line, and a marker under the column
// the scanner stopped at.
func ReportParseError(w io.Writer, path string, line, column int, lineText, msg string) {
	errColor := color.New(color.FgRed, color.Bold)
	dim := color.New(color.Faint).SprintFunc()

	errColor.Fprintf(w, "babysub: parse error: at line %d in '%s': %s\n", line, path, msg)
	if lineText == "" {
		return
	}
	fmt.Fprintf(w, " %s %s\n", dim("-->"), lineText)
	if column > 0 {
		marker := strings.Repeat(" ", column-1) + "^"
		fmt.Fprintf(w, "     %s\n", errColor.Sprint(marker))
	}
}
