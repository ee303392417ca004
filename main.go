// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/invowk/cmdloader/cmd/cmdloader"

func main() {
	cmd.Execute()
}
