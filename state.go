// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

// GetState suspends to p, resuming immediately with cell's current value.
// Because every Suspend captures a continuation rooted at the prompt it
// targets, and Rewind restores cell's region from an immutable snapshot
// before replaying that continuation (control.go), invoking the same
// captured continuation twice sees cell exactly as it read at capture time
// on each replay — region isolation made directly observable through an
// ordinary-looking Get.
func GetState(p Prompt, cell *Cell) Comp {
	return func() Erased {
		return Suspend(p, func(resume func(Erased) Erased) Erased {
			return resume(cell.Read())
		})
	}
}

// PutState suspends to p and resumes immediately with v, writing v into cell
// through a pushed frame rather than inside the suspension's body. A write
// made directly in the body would run after the matching Handle has taken its
// region snapshot but before Rewind restores it — and Rewind restores
// unconditionally on every invocation, including the first, so a body-level
// write would be silently undone the instant resume is called. Pushing the
// write as a frame instead means it runs where every other frame does: after
// Restore, during applyFrames, which is exactly the point in the replay
// where it is supposed to take effect.
func PutState(p Prompt, cell *Cell, v Erased) Comp {
	return func() Erased {
		susp := Suspend(p, func(resume func(Erased) Erased) Erased {
			return resume(v)
		})
		return Push(susp.(*Suspension), func(result Erased) Erased {
			cell.Write(v)
			return result
		})
	}
}

// ModifyState suspends to p, resumes immediately with the result of applying
// f to cell's current value, and writes that result into cell through a
// pushed frame, for the same reason PutState does.
func ModifyState(p Prompt, cell *Cell, f func(Erased) Erased) Comp {
	return func() Erased {
		susp := Suspend(p, func(resume func(Erased) Erased) Erased {
			return resume(f(cell.Read()))
		})
		return Push(susp.(*Suspension), func(result Erased) Erased {
			cell.Write(result)
			return result
		})
	}
}

// RunState opens a fresh region, allocates a cell holding initial inside it,
// and runs build(p, cell) — a computation built from GetState/PutState/
// ModifyState against that prompt and cell — to completion under a matching
// Handle. It returns build's result and the cell's final value. The region
// is popped by a deferred LeaveRegion on every exit path. If a suspension to
// some other prompt escapes the Handle, asserting the result to A panics.
func RunState[A any](initial Erased, build func(p Prompt, cell *Cell) Comp) (A, Erased) {
	region := FreshRegion()
	defer LeaveRegion()
	cell := region.Fresh(initial)
	p := FreshPrompt()
	result := Handle(p, build(p, cell))
	return result.(A), cell.Read()
}
