// SPDX-License-Identifier: MPL-2.0

// Package loader discovers command source files on disk and turns them into
// ready-to-register command instances.
//
// Two entry points share one pipeline:
//   - Loader: configured with a base path and an identity prefix; loads the
//     commands of one module (a subdirectory) with identities derived entirely
//     from configuration and file location.
//   - LoadDirectory: unconfigured and permissive; derives each file's
//     namespace from its own contents and never fails.
//
// Per file the pipeline builds a fully-qualified identifier, looks it up in a
// registry.Registry, skips abstract types and anything a caller filter rejects,
// and instantiates the rest through their zero-argument factories. Files that
// cannot be resolved are skipped with a Diagnostic; they never abort a scan.
//
// File organization:
//   - errors.go: error kinds, Error and Policy
//   - diagnostic.go: Diagnostic and Result
//   - syntax.go, namespace.go, identity.go: source syntax, namespace extraction, identifiers
//   - resolve.go, scan.go: path resolution and directory scanning
//   - manifest.go: optional commands.cue identity manifest
//   - instantiate.go: registry lookup, filtering and instantiation
//   - loader.go, directory.go: the two entry points
package loader
