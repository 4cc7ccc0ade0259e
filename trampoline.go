// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

// Step is a tail-call descriptor the compiler emits at tail positions it
// cannot otherwise shrink, so that Trampoline can drive an arbitrarily long
// chain of them without growing the Go call stack.
type Step struct {
	Computation func(Erased) Erased
	Kont        Erased
}

// MakeStep builds the Erased value Trampoline recognizes as "not done yet".
func MakeStep(computation func(Erased) Erased, kont Erased) Erased {
	return Step{Computation: computation, Kont: kont}
}

// Trampoline repeatedly applies r.Computation to r.Kont while r is a Step,
// otherwise returns r. This is a plain iterative loop: native stack depth
// stays O(1) regardless of how many Step values the chain produces, which
// is what gives a tail-recursive loop lowered through this primitive its
// stack safety, regardless of how many iterations it runs.
func Trampoline(r Erased) Erased {
	for {
		step, ok := r.(Step)
		if !ok {
			return r
		}
		r = step.Computation(step.Kont)
	}
}
