// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

// Suspend begins an unwind targeting prompt, carrying body. No pure frames
// have been collected at the suspend site itself; Push accumulates them as
// the unwind passes intervening direct-style work on its way to the
// matching Handle.
func Suspend(prompt Prompt, body func(resume func(Erased) Erased) Erased) Erased {
	return &Suspension{Prompt: prompt, Body: body}
}

// Handle runs thunk. If it returns a plain value, that value is the result.
// If it terminates by producing a *Suspension, Handle consults the
// suspension's prompt: a match captures the continuation and invokes the
// suspension's body with a resume closure; a mismatch repackages and
// returns a new suspension with an extra segment prepended so an enclosing
// Handle can inspect it in turn.
func Handle(prompt Prompt, thunk func() Erased) Erased {
	return captureOrRethrow(prompt, thunk(), nil)
}

// captureOrRethrow is the single helper shared by Handle and Rewind: each
// frame is effectively a new handle for the segment's prompt. rest is empty
// when called directly from Handle, and holds the segment's
// own not-yet-applied frames when called from within a Rewind whose frame
// itself raised a fresh suspension.
func captureOrRethrow(prompt Prompt, result Erased, rest []Frame) Erased {
	susp, ok := result.(*Suspension)
	if !ok {
		return result
	}
	region := CurrentRegion()
	seg := &Segment{
		Prompt: prompt,
		Region: region,
		Tail:   susp.Tail,
	}
	if region != globalArena {
		seg.Backup = region.Snapshot()
	}
	if susp.Prompt == prompt {
		seg.Frames = reverseOnto(susp.frames, rest)
		resume := func(v Erased) Erased {
			return Rewind(seg, v)
		}
		return susp.Body(resume)
	}
	seg.Frames = rest
	return &Suspension{
		Prompt: susp.Prompt,
		Body:   susp.Body,
		frames: susp.frames,
		Tail:   seg,
	}
}

// Rewind invokes a captured continuation with v, performing the recursive,
// prompt-rooted resumption. Rewind never mutates seg: every invocation
// restores its own fresh copy of the captured region from seg.Backup, which
// is what makes the same continuation safe to invoke any number of times
// with each invocation seeing its own isolated view of the captured state.
func Rewind(seg *Segment, v Erased) Erased {
	if seg == nil {
		return v
	}
	EnterRegion(seg.Region)
	defer LeaveRegion()
	if seg.Region != globalArena {
		seg.Region.Restore(seg.Backup)
	}

	curr := Rewind(seg.Tail, v)
	return applyFrames(seg, curr)
}

// applyFrames threads curr through seg's frames in order. If a frame raises
// a fresh suspension, the remaining (not yet applied) frames of seg become
// the rest argument to captureOrRethrow — the frame is a new suspend point
// scoped to seg's own prompt, exactly as if a fresh handle had been entered
// for it.
func applyFrames(seg *Segment, curr Erased) Erased {
	for i, f := range seg.Frames {
		result := f(curr)
		if susp, ok := result.(*Suspension); ok {
			remaining := append([]Frame(nil), seg.Frames[i+1:]...)
			return captureOrRethrow(seg.Prompt, susp, remaining)
		}
		curr = result
	}
	return curr
}
