// SPDX-License-Identifier: MPL-2.0

package core

import "github.com/invowk/cmdloader/pkg/registry"

// The base entry describes what every built-in shares. It is registered as an
// abstract type so discovery reports it without ever constructing it.
func init() {
	registry.Default.RegisterAbstract(IDPrefix+"base", AliasPrefix+"base")
}
