// SPDX-License-Identifier: MPL-2.0

package loader

// ExtractNamespace returns the identifier declared by the first line of
// contents that starts (after optional whitespace) with the syntax keyword.
// Only the first declaration counts. ok is false when there is none.
func (s Syntax) ExtractNamespace(contents []byte) (namespace string, ok bool) {
	m := s.namespacePattern().FindSubmatch(contents)
	if len(m) < 2 || len(m[1]) == 0 {
		return "", false
	}
	return string(m[1]), true
}
