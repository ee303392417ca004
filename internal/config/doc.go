// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is layered: built-in defaults, then config.cue from the config
// directory (~/.config/cmdloader on Linux, ~/Library/Application Support/cmdloader
// on macOS, %APPDATA%\cmdloader on Windows) or else from the work dir, then the
// CMDLOADER_* environment variables. Files are validated against the embedded
// config_schema.cue before they are merged.
package config
