// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dkont is a runtime for multi-prompt delimited control: first-class,
// resumable, multi-shot continuations paired with lexically-scoped mutable
// regions. It is the target a compiler for a direct-style effectful language
// lowers to, not a library end users write infix control expressions
// against directly.
//
// # Core data model
//
// A running computation's state is a chain of [Segment] values, one per
// live prompt between a [Suspend] call and the [Handle] that will eventually
// match it. [Prompt] identifies a handler instance; [Suspension] is the
// transient value an in-flight unwind carries; [Cell] and [Arena] are the
// mutable storage a [Segment] snapshots and restores on every resumption, so
// that invoking the same captured continuation twice never lets one
// invocation's writes leak into the other. This region isolation is
// exercised by this package's own tests rather than spelled out further here.
//
//   - [Suspend]: begin an unwind toward prompt
//   - [Handle]: run a computation, capturing or rethrowing its suspensions
//   - [Rewind]: invoke a captured continuation, any number of times
//   - [Push]: accumulate a pure frame onto an in-flight suspension
//
// # Composition
//
// Go cannot itself pause and resume a call stack, so direct-style
// composition ("1 + Suspend(...)") is not available the way it would be in
// the source language this runtime targets. [Comp] and its combinators are
// the CPS shape a compiler would emit by hand around every such expression:
//
//   - [Comp]: a computation that returns a plain value or a *[Suspension]
//   - [Bind], [Map], [Then], [Return]: sequencing combinators over Comp
//   - [Trampoline], [Step], [MakeStep]: tail-call bounding for loops a
//     compiler could not otherwise shrink to constant native stack depth
//
// # Delimited control sugar
//
//   - [Reset], [Shift]: the classical shift/reset pairing, built directly on
//     Suspend/Handle rather than on a closure-chasing continuation monad
//
// # Standard effects
//
// A handful of effects are provided as worked examples of the primitives
// above, each grounded in one of the named scenarios this package's own
// tests exercise against the raw engine:
//
// State, backed by a region [Cell] rather than a bare closed-over variable:
//
//   - [GetState], [PutState], [ModifyState], [RunState]
//
// Generators, demonstrating true multi-shot resumption (a driver may call
// the same Resume closure more than once, branching the generator):
//
//   - [Yield], [Yielded], [Collect], [CollectAll]
//
// Errors, demonstrating the Abort scenario (a suspension whose body never
// calls resume, discarding whatever frames had accumulated):
//
//   - [Throw], [RunError], [Catch], [Either]
//
// Resource safety, built on native defer rather than a bracket combinator:
//
//   - [WithResource]
//
// # Constructors and diagnostics
//
//   - [Constructor], [Tagged]: the datatype constructors a compiler lowers
//     source-level sum types to
//   - [Hole]: placeholder for code paths a compiler has not lowered yet
//   - [Run], [MustRun], [ErrUnhandledPrompt]: top-level entry points
//   - [Affine], [Once]: opt-in one-shot enforcement for a resume closure
//   - [CheckInvariants], [Invariant]: aggregate multiple named checks into a
//     single error, for tests that assert several properties of one run
//
// # Example
//
// Direct-style composition around a suspend point ("1 + Suspend(...)") is
// not available in hand-written Go the way it would be in the source
// language this runtime targets, since Suspend always returns immediately
// with a *Suspension and Body runs later, from inside the matching Handle.
// Map/Bind are the CPS shape that stands in for it:
//
//	p := dkont.FreshPrompt()
//	suspend := func() dkont.Erased {
//		return dkont.Suspend(p, func(resume func(dkont.Erased) dkont.Erased) dkont.Erased {
//			return resume(41)
//		})
//	}
//	result := dkont.Handle(p, dkont.Map[int, int](suspend, func(x int) int { return x + 1 }))
//	// result == 42
package dkont
