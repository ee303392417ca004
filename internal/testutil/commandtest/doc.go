// SPDX-License-Identifier: MPL-2.0

// Package commandtest provides stub commands and registries for loader and CLI tests.
package commandtest
