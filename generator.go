// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

// Yielded is what a generator body's suspension returns instead of calling
// resume itself: the yielded value paired with the resume closure, left for
// the driver (Collect) to invoke whenever and however many times it likes.
// Calling Resume more than once on the same Yielded replays the generator
// from that point with a different input each time, which is what lets a
// driver use it for backtracking-style enumeration rather than a single
// forward pass.
type Yielded struct {
	Value  Erased
	Resume func(Erased) Erased
}

// Yield suspends to p, handing Value and the caller's own resume closure
// back up to whatever is driving the prompt, rather than resuming itself.
func Yield[T any](p Prompt, v T) Comp {
	return func() Erased {
		return Suspend(p, func(resume func(Erased) Erased) Erased {
			return Yielded{Value: v, Resume: resume}
		})
	}
}

// Collect drives body to completion under a fresh Handle at p, calling
// onValue with each yielded value in turn and feeding its return value back
// in as the argument to the matching Resume. It returns body's eventual
// plain result once no further Yield is reached.
func Collect[T any](p Prompt, body Comp, onValue func(T) Erased) Erased {
	result := Handle(p, body)
	for {
		y, ok := result.(Yielded)
		if !ok {
			return result
		}
		result = y.Resume(onValue(y.Value.(T)))
	}
}

// CollectAll drains a generator that yields values of type T into a slice,
// resuming each step with the empty struct value struct{}{}, and returns the
// generator's final plain result alongside everything it yielded.
func CollectAll[T any](p Prompt, body Comp) ([]T, Erased) {
	var values []T
	result := Collect[T](p, body, func(v T) Erased {
		values = append(values, v)
		return struct{}{}
	})
	return values, result
}
