// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont_test

import (
	"testing"

	"code.hybscloud.com/dkont"
)

type fakeResource struct {
	closed bool
}

func TestWithResourceReleasesOnNormalCompletion(t *testing.T) {
	r := &fakeResource{}
	comp := dkont.WithResource(
		func() *fakeResource { return r },
		func(res *fakeResource) { res.closed = true },
		func(res *fakeResource) dkont.Comp { return dkont.Return(res) },
	)
	got := comp()
	if got.(*fakeResource) != r {
		t.Fatalf("got %v, want the acquired resource", got)
	}
	if !r.closed {
		t.Fatalf("resource was not released")
	}
}

func TestWithResourceReleasesOnSuspend(t *testing.T) {
	r := &fakeResource{}
	p := dkont.FreshPrompt()
	comp := dkont.WithResource(
		func() *fakeResource { return r },
		func(res *fakeResource) { res.closed = true },
		func(res *fakeResource) dkont.Comp {
			return func() dkont.Erased {
				return dkont.Suspend(p, func(resume func(dkont.Erased) dkont.Erased) dkont.Erased {
					return resume(res)
				})
			}
		},
	)
	got := dkont.Handle(p, comp)
	if got.(*fakeResource) != r {
		t.Fatalf("got %v, want the acquired resource", got)
	}
	if !r.closed {
		t.Fatalf("resource was not released across the suspend")
	}
}

func TestWithResourceReleasesOnPanic(t *testing.T) {
	r := &fakeResource{}
	comp := dkont.WithResource(
		func() *fakeResource { return r },
		func(res *fakeResource) { res.closed = true },
		func(res *fakeResource) dkont.Comp {
			return func() dkont.Erased { panic("boom") }
		},
	)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic to propagate")
		}
		if !r.closed {
			t.Fatalf("resource was not released on panic")
		}
	}()
	comp()
}
