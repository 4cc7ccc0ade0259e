// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

// Erased marks a type-erased value flowing through the control engine.
// Cell contents, suspension payloads, and frame inputs/outputs are all
// Erased: the compiler that targets this runtime knows the concrete types,
// the runtime itself does not need to.
type Erased = any

// Cell is a single mutable location. Source-level variable access lowers to
// Cell.Read / Cell.Write calls; the runtime has no string-keyed dispatch —
// string-tagged read/write operations are a dynamically-typed-host concern
// that this package resolves with concrete methods instead.
//
// A Cell is created by the Arena that owns it; see [Arena.Fresh].
type Cell struct {
	value Erased
}

// Read returns the cell's current value.
func (c *Cell) Read() Erased {
	return c.value
}

// Write replaces the cell's current value.
func (c *Cell) Write(v Erased) {
	c.value = v
}

// Snapshot captures the cell's current value into a closure and returns a
// restore thunk. Invoking the thunk writes the captured value back into
// this same cell and returns the cell, so that references held by user code
// across a restore stay valid. Multiple snapshots of the same cell are
// independent: each closes over its own captured value.
func (c *Cell) Snapshot() func() *Cell {
	captured := c.value
	return func() *Cell {
		c.value = captured
		return c
	}
}
