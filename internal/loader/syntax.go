// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrInvalidSyntax is the sentinel wrapped by syntax validation errors.
var ErrInvalidSyntax = errors.New("invalid source syntax")

var (
	patternCache sync.Map // keyword -> *regexp.Regexp

	keywordPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Syntax describes how command source files look on disk: which files count
// as sources, how a file declares its namespace, and how identifiers are joined.
type Syntax struct {
	// Keyword is the declaration keyword preceding the namespace (e.g., "package").
	Keyword string `json:"keyword"`
	// Extension is the source file suffix including the dot (e.g., ".go").
	Extension string `json:"extension"`
	// Separator joins identifier segments (e.g., "." or `\`).
	Separator string `json:"separator"`
	// Ignore lists doublestar globs, relative to the scanned directory, of files never scanned.
	Ignore []string `json:"ignore,omitempty"`
}

// GoSyntax returns the default syntax: Go files declaring their package,
// identifiers joined with ".", tests and package docs ignored.
func GoSyntax() Syntax {
	return Syntax{
		Keyword:   "package",
		Extension: ".go",
		Separator: ".",
		Ignore:    []string{"**/*_test.go", "**/doc.go"},
	}
}

// Validate returns an error describing every problem with the syntax.
func (s Syntax) Validate() error {
	var errs []error
	if !keywordPattern.MatchString(s.Keyword) {
		errs = append(errs, fmt.Errorf("keyword %q must be a single identifier", s.Keyword))
	}
	if len(s.Extension) < 2 || !strings.HasPrefix(s.Extension, ".") || strings.ContainsAny(s.Extension, `/\`) {
		errs = append(errs, fmt.Errorf("extension %q must start with '.' and name a file suffix", s.Extension))
	}
	if s.Separator == "" || strings.TrimSpace(s.Separator) != s.Separator {
		errs = append(errs, fmt.Errorf("separator %q must be non-empty and contain no surrounding whitespace", s.Separator))
	}
	for _, pattern := range s.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("ignore pattern %q is not a valid glob", pattern))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSyntax, errors.Join(errs...))
}

// namespacePattern returns the compiled declaration pattern for the keyword.
func (s Syntax) namespacePattern() *regexp.Regexp {
	if cached, ok := patternCache.Load(s.Keyword); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(s.Keyword) + `\s+([\w\\/.-]+)`)
	actual, _ := patternCache.LoadOrStore(s.Keyword, re)
	return actual.(*regexp.Regexp)
}
