// SPDX-License-Identifier: MPL-2.0

// Package cueutil wraps the CUE steps shared by the config file and the
// command identity manifest: compile an embedded schema, unify user data with
// one of its definitions, validate, and decode into a Go struct. It also
// renders Go values back into formatted CUE source.
//
//	//go:embed manifest_schema.cue
//	var manifestSchema []byte
//
//	res, err := cueutil.ParseAndDecode[Manifest](manifestSchema, data, "#Manifest",
//		cueutil.WithFilename(path))
package cueutil
