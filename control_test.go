// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont_test

import (
	"testing"

	"code.hybscloud.com/dkont"
)

// TestIdentityResume covers scenario 1: handle(p, () -> 1 + suspend(p, (k) -> k(2))) -> 3.
func TestIdentityResume(t *testing.T) {
	p := dkont.FreshPrompt()
	suspend := func() dkont.Erased {
		return dkont.Suspend(p, func(resume func(dkont.Erased) dkont.Erased) dkont.Erased {
			return resume(2)
		})
	}
	comp := dkont.Map[int, int](suspend, func(x int) int { return x + 1 })
	got := dkont.Handle(p, comp)
	if got != 3 {
		t.Fatalf("got %v, want 3", got)
	}
}

// TestAbort covers scenario 2: handle(p, () -> 1 + suspend(p, (_) -> 99)) -> 99. The
// body never calls resume, so the pending +1 frame never runs.
func TestAbort(t *testing.T) {
	p := dkont.FreshPrompt()
	suspend := func() dkont.Erased {
		return dkont.Suspend(p, func(resume func(dkont.Erased) dkont.Erased) dkont.Erased {
			return 99
		})
	}
	comp := dkont.Map[int, int](suspend, func(x int) int { return x + 1 })
	got := dkont.Handle(p, comp)
	if got != 99 {
		t.Fatalf("got %v, want 99", got)
	}
}

// TestTwice covers scenario 3: resuming the same continuation twice with a
// pending *10 frame and summing the results yields 30.
func TestTwice(t *testing.T) {
	p := dkont.FreshPrompt()
	result := dkont.Handle(p, func() dkont.Erased {
		susp := dkont.Suspend(p, func(resume func(dkont.Erased) dkont.Erased) dkont.Erased {
			return resume(1).(int) + resume(2).(int)
		})
		return dkont.Push(susp.(*dkont.Suspension), func(v dkont.Erased) dkont.Erased {
			return v.(int) * 10
		})
	})
	if result != 30 {
		t.Fatalf("got %v, want 30", result)
	}
}

// TestNestedPrompts covers scenario 4: a suspend targeting an outer prompt
// from inside an inner handler transfers control outward, and resuming
// re-enters the inner handler's scope.
func TestNestedPrompts(t *testing.T) {
	outer := dkont.FreshPrompt()
	inner := dkont.FreshPrompt()
	result := dkont.Handle(outer, func() dkont.Erased {
		return dkont.Handle(inner, func() dkont.Erased {
			return dkont.Suspend(outer, func(resume func(dkont.Erased) dkont.Erased) dkont.Erased {
				return resume(7)
			})
		})
	})
	if result != 7 {
		t.Fatalf("got %v, want 7", result)
	}
}

// captureReadOfCell builds a computation that suspends to p, stashes the
// resume closure into k, and whose captured continuation reads cell exactly
// once more after every resumption — so the read only ever observes
// whatever value the region held at the moment of capture.
func captureReadOfCell(p dkont.Prompt, cell *dkont.Cell, k *func(dkont.Erased) dkont.Erased) dkont.Comp {
	return func() dkont.Erased {
		susp := dkont.Suspend(p, func(resume func(dkont.Erased) dkont.Erased) dkont.Erased {
			*k = resume
			return nil
		})
		return dkont.Push(susp.(*dkont.Suspension), func(dkont.Erased) dkont.Erased {
			return cell.Read()
		})
	}
}

// TestRegionSnapshot covers scenario 5: a continuation captured inside a
// region observes the cell's value as of capture time, not later mutations.
func TestRegionSnapshot(t *testing.T) {
	region := dkont.FreshRegion()
	defer dkont.LeaveRegion()
	cell := region.Fresh(0)
	p := dkont.FreshPrompt()

	var k func(dkont.Erased) dkont.Erased
	dkont.Handle(p, captureReadOfCell(p, cell, &k))

	cell.Write(5)
	got := k(nil)
	if got != 0 {
		t.Fatalf("resumed read after mutation: got %v, want 0 (region isolation violated)", got)
	}
}

// TestMultiShotRegion covers scenario 6: invoking the same captured
// continuation twice, mutating the cell between invocations, yields the
// capture-time value both times.
func TestMultiShotRegion(t *testing.T) {
	region := dkont.FreshRegion()
	defer dkont.LeaveRegion()
	cell := region.Fresh(0)
	p := dkont.FreshPrompt()

	var k func(dkont.Erased) dkont.Erased
	dkont.Handle(p, captureReadOfCell(p, cell, &k))

	cell.Write(5)
	if got := k(nil); got != 0 {
		t.Fatalf("first resume: got %v, want 0", got)
	}
	cell.Write(9)
	if got := k(nil); got != 0 {
		t.Fatalf("second resume: got %v, want 0", got)
	}
}

// TestHandleReturnsPlainValueDirectly covers the "for all values v and
// thunks t that return v directly" quantified invariant.
func TestHandleReturnsPlainValueDirectly(t *testing.T) {
	p := dkont.FreshPrompt()
	got := dkont.Handle(p, func() dkont.Erased { return "plain" })
	if got != "plain" {
		t.Fatalf("got %v, want plain", got)
	}
}

// TestNonMatchingPromptRethrows exercises a suspend whose prompt does not
// match the nearest handle: it must propagate to the next enclosing one
// rather than being swallowed.
func TestNonMatchingPromptRethrows(t *testing.T) {
	inner := dkont.FreshPrompt()
	outer := dkont.FreshPrompt()
	got := dkont.Handle(outer, func() dkont.Erased {
		return dkont.Handle(inner, func() dkont.Erased {
			return dkont.Suspend(outer, func(resume func(dkont.Erased) dkont.Erased) dkont.Erased {
				return "outer caught it"
			})
		})
	})
	if got != "outer caught it" {
		t.Fatalf("got %v, want outer caught it", got)
	}
}

// TestPendingFrameSurvivesNonMatchingHandle covers "outer handlers see
// through": a frame pushed onto a suspension targeting outer, while it is
// still propagating outward through a non-matching inner handle, must
// survive that pass-through and still run once outer finally captures and
// resumes it.
func TestPendingFrameSurvivesNonMatchingHandle(t *testing.T) {
	outer := dkont.FreshPrompt()
	inner := dkont.FreshPrompt()
	comp := dkont.Map[int, int](func() dkont.Erased {
		return dkont.Suspend(outer, func(resume func(dkont.Erased) dkont.Erased) dkont.Erased {
			return resume(5)
		})
	}, func(x int) int { return x + 100 })
	got := dkont.Handle(outer, func() dkont.Erased {
		return dkont.Handle(inner, func() dkont.Erased {
			return comp()
		})
	})
	if got != 105 {
		t.Fatalf("got %v, want 105 (pending frame dropped across non-matching handle)", got)
	}
}
