// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/invowk/cmdloader/internal/issue"
	"github.com/invowk/cmdloader/internal/loader"
	"github.com/invowk/cmdloader/pkg/command"
)

// printCommands writes a titled listing of cmds, one "name - description" line each.
func printCommands(w io.Writer, title string, cmds []command.Command) {
	fmt.Fprintln(w, TitleStyle.Render(title))
	fmt.Fprintln(w)
	if len(cmds) == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(no commands)"))
		return
	}
	for _, c := range cmds {
		line := "  " + nameStyle.Render(c.Name())
		if desc := c.Description(); desc != "" {
			line += " - " + descStyle.Render(desc)
		}
		fmt.Fprintln(w, line)
	}
}

// printSummary writes the loaded and skipped counts of res. In verbose mode
// it lists every diagnostic and renders the catalog entries explaining them.
func (a *App) printSummary(w io.Writer, res loader.Result) {
	fmt.Fprintln(w)
	summary := fmt.Sprintf("%d command(s) loaded, %d skipped", len(res.Commands), res.Skipped())
	if res.Skipped() > 0 || res.HasErrors() {
		fmt.Fprintln(w, WarningStyle.Render(summary))
	} else {
		fmt.Fprintln(w, SubtitleStyle.Render(summary))
	}

	if !a.verbose || len(res.Diagnostics) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render("Diagnostics"))
	rendered := make(map[issue.Id]bool)
	for _, d := range res.Diagnostics {
		fmt.Fprintf(w, "  %s %s\n", diagnosticStyle(d.Severity).Render("["+string(d.Severity)+"]"), formatDiagnostic(d))
	}
	for _, d := range res.Diagnostics {
		id, ok := issueForCode(d.Code)
		if !ok || rendered[id] {
			continue
		}
		rendered[id] = true
		a.renderIssue(w, id)
	}
}

// formatDiagnostic renders a diagnostic as "code: message (path)".
func formatDiagnostic(d loader.Diagnostic) string {
	var b strings.Builder
	b.WriteString(VerboseStyle.Render(d.Code + ":"))
	b.WriteString(" ")
	b.WriteString(d.Message)
	if d.Path != "" {
		b.WriteString(" ")
		b.WriteString(sourceStyle.Render("(" + d.Path + ")"))
	}
	return b.String()
}

func diagnosticStyle(s loader.Severity) lipgloss.Style {
	switch s {
	case loader.SeverityError:
		return ErrorStyle
	case loader.SeverityWarning:
		return WarningStyle
	default:
		return VerboseStyle
	}
}
