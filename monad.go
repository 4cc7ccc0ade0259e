// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

// Comp is a suspending computation: called with no arguments, it returns
// either a plain value or a *Suspension. It is the typed-erased unit the
// combinators below sequence; Handle/Rewind are what ultimately drive one to
// completion.
type Comp = func() Erased

// Bind sequences m then f, in the style a compiler emits by hand around
// every direct-style expression above a suspend point: if m completes
// normally, f runs immediately against its result; if m suspends, f is
// pushed onto the in-flight suspension as a pending frame so the matching
// Handle's rewind applies it later, in order, exactly once per resumption.
//
// Bind composes two Comp values by explicit Push rather than by composing
// two CPS closures directly, because a Go function cannot itself be paused
// and later resumed the way a captured Segment can.
func Bind[A, B any](m Comp, f func(A) Comp) Comp {
	return func() Erased {
		result := m()
		if susp, ok := result.(*Suspension); ok {
			return Push(susp, func(v Erased) Erased { return f(v.(A))() })
		}
		return f(result.(A))()
	}
}

// Map applies a pure function to m's eventual result, without the
// intermediate closure a Bind(m, func(a A) Comp { return Return(f(a)) })
// would allocate.
func Map[A, B any](m Comp, f func(A) B) Comp {
	return func() Erased {
		result := m()
		if susp, ok := result.(*Suspension); ok {
			return Push(susp, func(v Erased) Erased { return f(v.(A)) })
		}
		return f(result.(A))
	}
}

// Then sequences m before n, discarding m's result.
func Then[B any](m Comp, n Comp) Comp {
	return func() Erased {
		result := m()
		if susp, ok := result.(*Suspension); ok {
			return Push(susp, func(Erased) Erased { return n() })
		}
		return n()
	}
}

// Return lifts a plain value into Comp: a computation that never suspends.
func Return[A any](a A) Comp {
	return func() Erased { return a }
}
