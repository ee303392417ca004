// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"
)

// Encode renders v (a struct or map with json tags) as formatted CUE source.
func Encode(v any) ([]byte, error) {
	value := cuecontext.New().Encode(v)
	if value.Err() != nil {
		return nil, fmt.Errorf("encode value: %w", value.Err())
	}

	out, err := format.Node(value.Syntax(cue.Concrete(true)))
	if err != nil {
		return nil, fmt.Errorf("format cue: %w", err)
	}
	return out, nil
}
