// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

// WithResource acquires a value, runs use against it, and releases it with
// native defer — release always runs, whether use returns a plain value, an
// in-flight *Suspension captured by some outer Handle, or panics. A captured
// continuation that resumes back into use after release has already run
// reopens the resource's region only (Rewind in control.go); it does not
// re-acquire the resource itself, so cleanup that only runs once per
// WithResource call (closing a file, releasing a lock) is still correct
// under multi-shot resumption.
func WithResource[R any](acquire func() R, release func(R), use func(R) Comp) Comp {
	return func() Erased {
		r := acquire()
		defer release(r)
		return use(r)()
	}
}
