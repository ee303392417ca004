// SPDX-License-Identifier: MPL-2.0

package core

import (
	"fmt"

	"github.com/invowk/cmdloader/pkg/registry"
)

const (
	// IDPrefix is the identifier prefix of every built-in command.
	IDPrefix = "cmdloader.core."
	// AliasPrefix is the short alias prefix matching the package clause of this directory.
	AliasPrefix = "core."

	// TagFS marks commands that only inspect paths.
	TagFS = "fs"
	// TagExec marks commands that start processes or interpret scripts.
	TagExec = "exec"
)

// register adds a built-in command to the default registry.
func register(name string, factory registry.Factory, tags ...string) {
	registry.RegisterDefault(registry.Type{
		ID:      IDPrefix + name,
		Aliases: []string{AliasPrefix + name},
		Tags:    tags,
		New:     factory,
	})
}

// wrapError prefixes a command failure with the command name.
func wrapError(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("core %s: %w", name, err)
}
