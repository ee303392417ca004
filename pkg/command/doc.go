// SPDX-License-Identifier: MPL-2.0

// Package command defines the capability every discoverable command implements,
// plus the execution environment handed to it and an adapter that turns an
// instance into a cobra command for host registration.
//
// Commands never change the process working directory. Anything that needs a
// directory reads it from the Env carried on the context:
//
//	env := command.EnvFrom(ctx)
//	manifest := env.Path("build/manifest.json")
package command
