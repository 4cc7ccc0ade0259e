// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

// Throw aborts the enclosing RunError at p with err: unlike Get/Put in
// state.go, the suspension's body never calls resume, so the pending frames
// captured along the way — and whatever they would have done — are simply
// discarded. This is an abort worked through a named effect instead of a
// raw suspend call.
func Throw[E, A any](p Prompt, err E) Comp {
	return func() Erased {
		return Suspend(p, func(resume func(Erased) Erased) Erased {
			return Left[E, A](err)
		})
	}
}

// RunError allocates a fresh error prompt, passes it to build (which must
// route every Throw call in its computation to that same prompt), and
// reports the outcome as an Either: Right on normal completion, Left on the
// first Throw reached. build's own plain result is wrapped in Right before
// the handler is installed, so the computation never needs to know about
// Either itself.
func RunError[E, A any](build func(p Prompt) Comp) Either[E, A] {
	p := FreshPrompt()
	wrapped := Map[A, Either[E, A]](build(p), func(a A) Either[E, A] { return Right[E, A](a) })
	result := Handle(p, wrapped)
	return result.(Either[E, A])
}

// Catch runs build under a fresh error prompt and recovers from a Throw by
// calling onError, producing a plain (unwrapped) A either way.
func Catch[E, A any](build func(p Prompt) Comp, onError func(E) A) A {
	either := RunError[E, A](build)
	return MatchEither(either, onError, func(a A) A { return a })
}
