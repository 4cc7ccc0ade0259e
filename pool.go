// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

import "sync"

// frameNode pooling, adapted from the corpus's genericMarker/EffectFrame
// pools. Those pool one-shot CPS frames under an explicit acquire/release
// discipline; a *Segment cannot follow the same discipline because a
// captured Segment must stay valid and replayable for the lifetime of
// whatever user code holds its resume
// closure, which may call it any number of times at any point — the opposite
// of sync.Pool's single-owner, single-use contract. frameNode itself has no
// such requirement: Push allocates one per pending frame during an unwind,
// and reverseOnto walks and discards the whole chain exactly once, turning
// it into the immutable []Frame a Segment actually carries. That walk-once
// lifetime is what makes frameNode, and only frameNode, safe to pool here.
var frameNodePool = sync.Pool{New: func() any { return new(frameNode) }}

func acquireFrameNode(f Frame, next *frameNode) *frameNode {
	n := frameNodePool.Get().(*frameNode)
	n.frame = f
	n.next = next
	return n
}

func releaseFrameNodeChain(head *frameNode) {
	for n := head; n != nil; {
		next := n.next
		n.frame = nil
		n.next = nil
		frameNodePool.Put(n)
		n = next
	}
}
