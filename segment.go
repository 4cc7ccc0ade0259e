// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

// Frame is an opaque one-argument function produced by the compiler.
// Applied to a value, it returns either a plain value (the frame's
// continuation ran to completion) or a *Suspension (the frame itself
// performed a suspend). The engine recognizes a suspension in flight with a
// type assertion rather than a host-language exception, so a suspension in
// flight is an ordinary returned value instead of something unwound via
// panic/recover.
type Frame func(Erased) Erased

// frameNode is a cons cell over accumulated pure frames. Suspend emits no
// frames; Push prepends one per direct-style expression the compiler lifted
// out around a suspend point, in O(1), so unwinding through n pending
// frames costs O(n) total rather than O(n^2).
type frameNode struct {
	frame Frame
	next  *frameNode
}

// Suspension is the value thrown up the stack during an unwind. It is
// transient: produced by Suspend, consumed by the matching Handle/Rewind or
// rethrown outward by a non-matching one.
type Suspension struct {
	Prompt Prompt
	// Body receives a resume closure; resume(v) rewinds the captured
	// continuation with v and returns the continuation's eventual result.
	Body func(resume func(Erased) Erased) Erased
	// frames accumulates in LIFO order (most recently pushed first).
	frames *frameNode
	// Tail is the portion of the continuation already captured by outer
	// handlers as this suspension propagated past them.
	Tail *Segment
}

// Push consumes an in-flight suspension and returns a new suspension
// identical to s except that f is prepended to the accumulating frame list.
func Push(s *Suspension, f Frame) *Suspension {
	return &Suspension{
		Prompt: s.Prompt,
		Body:   s.Body,
		frames: acquireFrameNode(f, s.frames),
		Tail:   s.Tail,
	}
}

// Segment is one link of a captured continuation: a prompt-scoped chain of
// pure frames plus the region that was current at capture time.
type Segment struct {
	// Frames is in application order: outermost first.
	Frames []Frame
	Prompt Prompt
	Region *Arena
	Backup []func() *Cell
	Tail   *Segment
}

// reverseOnto converts the LIFO frame accumulation built by repeated Push
// calls into application order (outermost first), with rest appended after
// it. rest is empty when a handler captures directly and non-empty only
// when the shared capture helper is invoked from inside Rewind (see
// control.go), where it represents frames of the segment being rewound that
// had not yet been applied when a fresh suspend occurred.
func reverseOnto(frames *frameNode, rest []Frame) []Frame {
	var reversed []Frame
	for n := frames; n != nil; n = n.next {
		reversed = append(reversed, n.frame)
	}
	releaseFrameNodeChain(frames)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	if len(rest) == 0 {
		return reversed
	}
	return append(reversed, rest...)
}
