// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

// resetPrompts is the dynamic stack of prompts installed by Reset, innermost
// last. It is process-wide, single-threaded state, same as regionStack in
// region.go: there is exactly one logical executor.
var resetPrompts []Prompt

// Reset installs a fresh prompt, runs m against it, and returns m's eventual
// plain result cast to A. Pairs with Shift, which reads off the innermost
// prompt Reset currently has installed — the classical shift/reset pairing
// (Danvy & Filinski), built here from Handle/Suspend rather than from the
// closure-chasing Cont the rest of the corpus favors, since a delimited
// control operator is exactly what Handle/Suspend already are.
func Reset[A any](m Comp) A {
	p := FreshPrompt()
	resetPrompts = append(resetPrompts, p)
	defer func() { resetPrompts = resetPrompts[:len(resetPrompts)-1] }()
	result := Handle(p, m)
	return result.(A)
}

// Shift captures the continuation up to the innermost enclosing Reset and
// passes it to f as k. Calling k any number of times resumes that
// continuation with a fresh argument each time; not calling it at all
// discards the continuation, aborting back to Reset with f's own return
// value. f and its continuation communicate in Erased, not A, because a
// captured continuation answers with a plain value OR another *Suspension
// when what comes after it itself shifts again — composing Shift results
// with further code goes through Bind/Map (monad.go), not Go's native "+",
// exactly as the corpus's own Cont-based example does.
func Shift[A any](f func(k func(A) Erased) Erased) Comp {
	return func() Erased {
		p := resetPrompts[len(resetPrompts)-1]
		return Suspend(p, func(resume func(Erased) Erased) Erased {
			return f(func(a A) Erased { return resume(a) })
		})
	}
}
