// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

import "github.com/pkg/errors"

// ErrUnhandledPrompt is returned by Run when a suspension survives past
// every enclosing Handle. An unhandled prompt has no well-defined
// continuation to resume, so this package resolves the case by detecting
// the escape and reporting a specific, wrapped error rather
// than propagating an opaque value.
var ErrUnhandledPrompt = errors.New("dkont: suspension escaped all handlers")

// Run drives thunk to completion. If a *Suspension escapes every enclosing
// Handle, Run reports ErrUnhandledPrompt, annotated with the prompt that
// went unmatched and a stack trace captured at the point of detection.
func Run(thunk func() Erased) (Erased, error) {
	result := thunk()
	if susp, ok := result.(*Suspension); ok {
		return nil, errors.Wrapf(ErrUnhandledPrompt, "prompt %d", susp.Prompt)
	}
	return result, nil
}

// MustRun drives thunk to completion and panics if a suspension escapes
// every enclosing Handle — the counterpart to [Hole] as a non-recoverable
// failure mode. Neither is meant to be caught by user code: both indicate a
// bug in the code the compiler emitted, not a user-level error, which stays
// encoded as an ordinary suspension.
func MustRun(thunk func() Erased) Erased {
	v, err := Run(thunk)
	if err != nil {
		panic(err)
	}
	return v
}
