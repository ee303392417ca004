// SPDX-License-Identifier: MPL-2.0

// Package core provides the built-in commands shipped with cmdloader.
//
// Each command lives in a file named after it and registers itself in
// registry.Default from init under "cmdloader.core.<name>", with the alias
// "core.<name>". Both identities are discoverable: scanning this directory in
// flat mode yields "core.<name>" from the package clause, and loading the
// "core" module under the "cmdloader" namespace yields the primary identifier.
//
// Commands read their streams and working directory from command.EnvFrom and
// never change the process working directory.
package core
