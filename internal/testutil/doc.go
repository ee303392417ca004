// SPDX-License-Identifier: MPL-2.0

// Package testutil provides fixture helpers that fail the test on error
// instead of returning it: directories (MustMkdirAll), single files
// (MustWriteFile), whole command trees (WriteTree) and environment
// overrides (MustUnsetenv). Subpackage commandtest builds stub commands and
// registries.
package testutil
