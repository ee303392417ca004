// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Loader loads the commands of one module below a configured base path.
// Identities are derived from configuration and file location only:
// <namespace><sep><module><sep><file>. A Loader is not safe for concurrent
// mutation; configure it once, then load.
type Loader struct {
	settings
	path      string
	namespace string
}

// New returns an unconfigured Loader. SetPath and SetNamespace must be called
// before ModuleCommands.
func New(opts ...Option) *Loader {
	return &Loader{settings: newSettings(opts)}
}

// SetPath sets the base path modules live under. Relative paths are resolved
// against the work dir when used, not when set.
func (l *Loader) SetPath(path string) *Loader {
	l.path = path
	return l
}

// SetNamespace sets the identifier prefix of every loaded command.
func (l *Loader) SetNamespace(namespace string) *Loader {
	l.namespace = namespace
	return l
}

// Namespace returns the configured prefix and whether one is set.
func (l *Loader) Namespace() (string, bool) {
	return l.namespace, l.namespace != ""
}

// Policy returns the configured error policy.
func (l *Loader) Policy() Policy { return l.policy }

// Ready reports whether both the path and the namespace are set.
func (l *Loader) Ready() bool {
	return l.path != "" && l.namespace != ""
}

// Check returns an ErrLoaderNotReady error naming every setter that still has
// to be called before caller can run. It ignores the policy.
func (l *Loader) Check(caller string) error {
	var missing []string
	if l.path == "" {
		missing = append(missing, "SetPath()")
	}
	if l.namespace == "" {
		missing = append(missing, "SetNamespace()")
	}
	if len(missing) == 0 {
		return nil
	}
	msg := fmt.Sprintf("use %s prior to %s()", strings.Join(missing, " and "), caller)
	return newError(ErrLoaderNotReady, caller, "", msg, nil)
}

// Path returns the canonical absolute base path. Under the soft policy a
// failure is logged and an empty string is returned with a nil error.
func (l *Loader) Path() (string, error) {
	p, err := l.resolvePath("Path")
	return p, l.apply(err)
}

// ModulePath returns the canonical absolute directory of module. Under the
// soft policy a failure is logged and an empty string is returned with a nil error.
func (l *Loader) ModulePath(module string) (string, error) {
	p, err := l.resolveModule("ModulePath", module)
	return p, l.apply(err)
}

// ModuleCommands loads every command below the module directory, recursively.
// Files that cannot be resolved, abstract types and types rejected by filter
// are left out; all but the filtered ones leave a diagnostic. Configuration
// failures are returned as errors under the strict policy and as a single
// error diagnostic in an otherwise empty Result under the soft policy.
func (l *Loader) ModuleCommands(module string, filter Filter) (Result, error) {
	const op = "ModuleCommands"

	root, err := l.prepare(op, module)
	if err != nil {
		if l.apply(err) != nil {
			return Result{}, err
		}
		return Result{Diagnostics: []Diagnostic{diagnosticFor(err)}}, nil
	}

	var res Result
	m, err := LoadManifest(root)
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, l.report(Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeManifestInvalid,
			Message:  fmt.Sprintf("ignoring manifest in %s", root),
			Path:     filepath.Join(root, ManifestFileName),
			Cause:    err,
		}))
		m = nil
	}

	files, unreadable, err := ScanTree(root, l.syntax, m.excludes()...)
	if err != nil {
		scanErr := newError(ErrPathInvalid, op, root, "scan failed", err)
		if l.apply(scanErr) != nil {
			return Result{}, scanErr
		}
		return Result{Diagnostics: []Diagnostic{diagnosticFor(scanErr)}}, nil
	}
	for _, u := range unreadable {
		res.Diagnostics = append(res.Diagnostics, l.report(Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeScanFailed,
			Message:  fmt.Sprintf("skipping unreadable directory %s", u.Path),
			Path:     filepath.Join(root, filepath.FromSlash(u.Path)),
			Cause:    u.Err,
		}))
	}

	for _, file := range files {
		c := l.moduleCandidate(l.namespace, module, file, m)
		cmd, d := l.instantiate(root, c, filter)
		if d != nil {
			res.Diagnostics = append(res.Diagnostics, *d)
		}
		if cmd != nil {
			res.Commands = append(res.Commands, cmd)
		}
	}

	l.logger.Debug("module loaded", "module", module, "commands", len(res.Commands), "skipped", res.Skipped())
	return res, nil
}

// prepare runs every configuration check ModuleCommands needs and returns the
// module directory.
func (l *Loader) prepare(op, module string) (string, error) {
	if err := l.Check(op); err != nil {
		return "", err
	}
	if err := l.syntax.Validate(); err != nil {
		return "", newError(ErrInvalidArgument, op, "", "invalid syntax", err)
	}
	return l.resolveModule(op, module)
}

func (l *Loader) resolvePath(op string) (string, error) {
	if l.path == "" {
		return "", newError(ErrLoaderNotReady, op, "", fmt.Sprintf("use SetPath() prior to %s()", op), nil)
	}
	p, err := ResolveDir(l.workDir, l.path)
	if err != nil {
		return "", newError(ErrLoaderNotReady, op, l.path, fmt.Sprintf("path %q cannot be resolved", l.path), err)
	}
	return p, nil
}

func (l *Loader) resolveModule(op, module string) (string, error) {
	if strings.TrimSpace(module) == "" {
		return "", newError(ErrInvalidArgument, op, "", "module name is required", nil)
	}
	if !filepath.IsLocal(filepath.FromSlash(module)) {
		return "", newError(ErrInvalidArgument, op, module, fmt.Sprintf("module %q must be a relative path inside the base path", module), nil)
	}

	if l.path == "" {
		return "", newError(ErrLoaderNotReady, op, "", fmt.Sprintf("use SetPath() prior to %s()", op), nil)
	}

	// Base and module resolve together: a missing base is a missing module.
	dir := filepath.Join(l.path, filepath.FromSlash(module))
	if !filepath.IsAbs(dir) && l.workDir != "" {
		dir = filepath.Join(l.workDir, dir)
	}
	p, err := ResolveDir("", dir)
	if err != nil {
		return "", newError(ErrModuleNotFound, op, dir, fmt.Sprintf("could not find a module at %s", dir), err)
	}
	return p, nil
}

// apply enforces the policy on err: strict returns it, soft logs it and
// returns nil.
func (l *Loader) apply(err error) error {
	if err == nil || l.policy != PolicySoft {
		return err
	}
	l.report(diagnosticFor(err))
	return nil
}
