// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

import "sync/atomic"

// Prompt is a process-wide monotonically increasing identifier for a live
// handler instance. Equality is the only operation the engine requires of
// it. FreshPrompt never returns a value below firstPrompt; those values are
// left free, and nothing in this package uses them (Reset in reset.go mints
// its prompts through FreshPrompt like any other caller).
type Prompt int64

const firstPrompt = Prompt(2)

var promptCounter atomic.Int64

func init() {
	promptCounter.Store(int64(firstPrompt) - 1)
}

// FreshPrompt allocates a new globally unique prompt.
func FreshPrompt() Prompt {
	return Prompt(promptCounter.Add(1))
}

// regionStack is process-wide, single-threaded, unsynchronized mutable
// state: there is exactly one logical executor, so no locking guards it.
// With FreshRegion/LeaveRegion pairs alone, the current arena is the global
// arena exactly when the stack is empty. Rewind enters the region a segment
// was captured in, which can be the global arena, so while a continuation
// captured at top level is being resumed the global arena is current with a
// non-empty stack.
type regionStack struct {
	stack   []*Arena
	current *Arena
}

var regions = &regionStack{current: globalArena}

// EnterRegion pushes the current arena and makes r current, returning r.
func EnterRegion(r *Arena) *Arena {
	regions.stack = append(regions.stack, regions.current)
	regions.current = r
	return r
}

// LeaveRegion pops the region stack and returns the previously current
// arena.
func LeaveRegion() *Arena {
	prev := regions.current
	n := len(regions.stack)
	regions.current = regions.stack[n-1]
	regions.stack = regions.stack[:n-1]
	return prev
}

// FreshRegion creates a new arena and makes it current.
func FreshRegion() *Arena {
	return EnterRegion(NewArena())
}

// CurrentRegion returns the arena currently on top of the region stack.
func CurrentRegion() *Arena {
	return regions.current
}

// FreshInCurrent allocates a cell in the current region.
func FreshInCurrent(init Erased) *Cell {
	return regions.current.Fresh(init)
}

// Fresh allocates a cell in the current region. It is the primitive the
// compiler emits for every source-level local variable binding.
func Fresh(init Erased) *Cell {
	return FreshInCurrent(init)
}
