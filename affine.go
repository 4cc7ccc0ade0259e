// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

import "sync/atomic"

// Affine wraps a resume closure with one-shot enforcement. Every
// continuation this package produces is multi-shot by default; Affine is
// the opt-in for the handlers that want the narrower guarantee instead —
// e.g. a resource handler that must forbid resuming past a release it has
// already run. The check happens at run time: a second Resume panics.
type Affine struct {
	used   atomic.Uintptr
	resume func(Erased) Erased
}

// Once wraps resume so it can be invoked at most once.
func Once(resume func(Erased) Erased) *Affine {
	return &Affine{resume: resume}
}

// Resume invokes the wrapped closure with v. Panics if already used.
func (a *Affine) Resume(v Erased) Erased {
	if a.used.Add(1) != 1 {
		panic("dkont: affine continuation resumed twice")
	}
	return a.resume(v)
}

// TryResume invokes the wrapped closure with v, reporting false instead of
// panicking if it has already been used.
func (a *Affine) TryResume(v Erased) (Erased, bool) {
	if a.used.Add(1) != 1 {
		return nil, false
	}
	return a.resume(v), true
}

// Discard marks the continuation used without invoking it, for the case
// where dropping it on an abort path needs to be explicit about which
// continuations were deliberately never resumed.
func (a *Affine) Discard() {
	a.used.Store(1)
}
