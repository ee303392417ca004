// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the cmdloader CLI: a host application that discovers
// commands with internal/loader, lists them, and registers them into a cobra
// tree to run them.
package cmd
