// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

// Tagged is a datatype constructor instance: a tag plus an ordered tuple of
// values. The compiler lowers source-level sum types to these.
type Tagged struct {
	Kind   string
	Tag    string
	Values []Erased
}

// Constructor builds a datatype constructor for the given kind/tag: calling
// the returned function with the constructor's field values produces the
// tagged record the compiler's pattern matching dispatches on.
func Constructor(kind, tag string) func(values ...Erased) Tagged {
	return func(values ...Erased) Tagged {
		return Tagged{Kind: kind, Tag: tag, Values: values}
	}
}

// Hole terminates the program with "implementation missing". It is one of
// exactly two non-recoverable failure modes (alongside an unhandled
// prompt, see [ErrUnhandledPrompt]); the compiler inserts it as a
// placeholder for code paths it has not yet lowered.
func Hole() Erased {
	panic("dkont: implementation missing (hole)")
}
