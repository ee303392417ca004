// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// envOverrides lists the environment variables that override file values.
// Unset variables leave the pointer nil.
type envOverrides struct {
	Path        *string `env:"CMDLOADER_PATH"`
	Namespace   *string `env:"CMDLOADER_NAMESPACE"`
	ErrorPolicy *string `env:"CMDLOADER_ERROR_POLICY"`
	Verbose     *bool   `env:"CMDLOADER_VERBOSE"`
}

// parseEnv loads the overrides from the process environment.
func parseEnv() (envOverrides, error) {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return o, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// applyEnv sets every override present in the environment on v.
func applyEnv(v *viper.Viper) error {
	o, err := parseEnv()
	if err != nil {
		return err
	}
	if o.Path != nil {
		v.Set("path", *o.Path)
	}
	if o.Namespace != nil {
		v.Set("namespace", *o.Namespace)
	}
	if o.ErrorPolicy != nil {
		v.Set("error_policy", *o.ErrorPolicy)
	}
	if o.Verbose != nil {
		v.Set("ui.verbose", *o.Verbose)
	}
	return nil
}
