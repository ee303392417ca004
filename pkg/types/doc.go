// SPDX-License-Identifier: MPL-2.0

// Package types holds small validated value types shared by the loader and the CLI.
package types
