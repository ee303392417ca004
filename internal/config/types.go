// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/cmdloader/internal/loader"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Path is the base directory modules live under.
		Path string `json:"path" mapstructure:"path"`
		// Namespace is the identifier prefix of module commands.
		Namespace string `json:"namespace" mapstructure:"namespace"`
		// ErrorPolicy is "strict" or "soft".
		ErrorPolicy string `json:"error_policy" mapstructure:"error_policy"`
		// Syntax describes command source files.
		Syntax SyntaxConfig `json:"syntax" mapstructure:"syntax"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`

		// Source is the file the values were read from, empty for defaults.
		Source string `json:"-" mapstructure:"-"`
	}

	// SyntaxConfig mirrors loader.Syntax.
	SyntaxConfig struct {
		Keyword   string   `json:"keyword" mapstructure:"keyword"`
		Extension string   `json:"extension" mapstructure:"extension"`
		Separator string   `json:"separator" mapstructure:"separator"`
		Ignore    []string `json:"ignore" mapstructure:"ignore"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme ("auto", "dark", "light").
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging and error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	syntax := loader.GoSyntax()
	return &Config{
		ErrorPolicy: string(loader.PolicyStrict),
		Syntax: SyntaxConfig{
			Keyword:   syntax.Keyword,
			Extension: syntax.Extension,
			Separator: syntax.Separator,
			Ignore:    syntax.Ignore,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// Validate returns nil if the ColorScheme is one of the defined schemes.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so errors.Is
// matches both the sentinel and the cause of each field.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Validate checks the constraints the CUE schema cannot express.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Policy(); err != nil {
		errs = append(errs, fmt.Errorf("error_policy: %w", err))
	}
	if err := c.Syntax.Loader().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("syntax: %w", err))
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("ui.color_scheme: %w", err))
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Policy returns the configured loader error policy.
func (c *Config) Policy() (loader.Policy, error) {
	return loader.ParsePolicy(c.ErrorPolicy)
}

// Loader converts the configuration into a loader.Syntax.
func (s SyntaxConfig) Loader() loader.Syntax {
	return loader.Syntax{
		Keyword:   s.Keyword,
		Extension: s.Extension,
		Separator: s.Separator,
		Ignore:    s.Ignore,
	}
}
