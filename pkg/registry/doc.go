// SPDX-License-Identifier: MPL-2.0

// Package registry maps fully-qualified command identifiers to zero-argument
// factories.
//
// Discovery never resolves symbols at runtime. Command packages register their
// types from init(), and the loader turns every file it finds on disk into an
// identifier that is looked up here:
//
//	func init() {
//		registry.RegisterDefault(registry.Type{
//			ID:  "core.version",
//			New: func() command.Command { return NewVersion() },
//		})
//	}
//
// Abstract types (shared bases that live next to concrete commands) are
// registered with Abstract set and no factory so the loader can recognise and
// skip them instead of reporting them as unknown.
package registry
