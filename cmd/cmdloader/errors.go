// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/invowk/cmdloader/internal/config"
	"github.com/invowk/cmdloader/internal/issue"
	"github.com/invowk/cmdloader/internal/loader"
)

// errCommandNotFound is returned by `run` when the module has no command of that name.
var errCommandNotFound = errors.New("command not found")

// actionable wraps a failure with the operation that was attempted and the
// suggestions matching its kind. Errors that already carry context are kept.
func actionable(operation, resource string, err error) error {
	if err == nil {
		return nil
	}
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return err
	}

	var le *loader.Error
	if resource == "" && errors.As(err, &le) {
		resource = le.Path
	}

	return issue.NewErrorContext().
		WithOperation(operation).
		WithResource(resource).
		WithSuggestions(suggestionsFor(err)...).
		Wrap(err).
		Build()
}

// suggestionsFor returns the hints shown under an error of the given kind.
func suggestionsFor(err error) []string {
	switch {
	case errors.Is(err, loader.ErrLoaderNotReady):
		return []string{
			"Pass --path and --namespace, or set CMDLOADER_PATH and CMDLOADER_NAMESPACE",
			"Run 'cmdloader config show' to inspect the effective configuration",
		}
	case errors.Is(err, loader.ErrModuleNotFound):
		return []string{
			"Check the module name; it is a subdirectory of the base path",
			"Use --error-policy soft to treat missing modules as empty",
		}
	case errors.Is(err, loader.ErrPathInvalid):
		return []string{"Check that the directory exists relative to the working directory"}
	case errors.Is(err, loader.ErrInvalidArgument):
		return []string{"Module names must be relative paths inside the base path"}
	case errors.Is(err, errCommandNotFound):
		return []string{"Run 'cmdloader list <module>' to see the available commands"}
	default:
		return nil
	}
}

// issueFor maps an error to the catalog entry explaining it.
func issueFor(err error) (issue.Id, bool) {
	switch {
	case errors.Is(err, loader.ErrLoaderNotReady):
		return issue.LoaderNotReadyId, true
	case errors.Is(err, loader.ErrModuleNotFound):
		return issue.ModuleNotFoundId, true
	case errors.Is(err, loader.ErrPathInvalid):
		return issue.PathInvalidId, true
	case errors.Is(err, loader.ErrInvalidArgument), errors.Is(err, loader.ErrInvalidSyntax):
		return issue.InvalidArgumentId, true
	case errors.Is(err, errCommandNotFound):
		return issue.CommandNotFoundId, true
	case errors.Is(err, config.ErrInvalidConfig):
		return issue.ConfigLoadFailedId, true
	default:
		return 0, false
	}
}

// issueForCode maps a diagnostic code to the catalog entry explaining it.
func issueForCode(code string) (issue.Id, bool) {
	switch code {
	case loader.CodeManifestInvalid:
		return issue.ManifestInvalidId, true
	case loader.CodeNamespaceNotFound, loader.CodeClassUnresolvable, loader.CodeClassNotConstructible:
		return issue.ClassUnresolvableId, true
	case loader.CodeModuleNotFound:
		return issue.ModuleNotFoundId, true
	case loader.CodeLoaderNotReady:
		return issue.LoaderNotReadyId, true
	case loader.CodePathInvalid, loader.CodeDirectoryUnresolvable:
		return issue.PathInvalidId, true
	default:
		return 0, false
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderIssue writes the catalog entry id to w using the configured color scheme.
func (a *App) renderIssue(w io.Writer, id issue.Id) {
	i := issue.Get(id)
	if i == nil {
		return
	}
	rendered, err := i.Render(a.colorScheme.String())
	if err != nil {
		return
	}
	fmt.Fprint(w, rendered)
}

// reportError prints err the way every cmdloader command fails: the formatted
// error, plus the matching catalog entry in verbose mode. An ExitError without
// cause only sets the exit code.
func (a *App) reportError(w io.Writer, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.verbose))
	if !a.verbose {
		return
	}
	if id, ok := issueFor(err); ok {
		a.renderIssue(w, id)
	}
}
