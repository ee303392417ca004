// SPDX-License-Identifier: MPL-2.0

package command

import "context"

type (
	// Command is the capability set a discovered implementation exposes.
	// Instances are created by a zero-argument factory and handed to the host,
	// which owns their lifetime from then on.
	Command interface {
		// Name returns the name the host registers the command under (e.g., "version").
		Name() string

		// Description returns a one-line summary used in listings and help output.
		Description() string

		// Run executes the command. args holds the raw arguments following the
		// command name; the command parses them itself.
		Run(ctx context.Context, args []string) error
	}

	// Base implements the descriptive half of Command and is meant to be embedded.
	//
	//	type Version struct{ command.Base }
	//
	//	func NewVersion() command.Command {
	//		return &Version{Base: command.NewBase("version", "Print the build version")}
	//	}
	Base struct {
		name        string
		description string
	}
)

// NewBase creates a Base with the given name and description.
func NewBase(name, description string) Base {
	return Base{name: name, description: description}
}

// Name returns the command name.
func (b Base) Name() string { return b.name }

// Description returns the command description.
func (b Base) Description() string { return b.description }
