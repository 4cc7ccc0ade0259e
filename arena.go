// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

// Arena is an ordered collection of cells forming one lexical region. Its
// contents are captured and restored wholesale as part of continuation
// capture/rewind (see Segment.Backup in segment.go).
type Arena struct {
	cells []*Cell
}

// NewArena creates an empty arena. User code normally obtains one through
// FreshRegion rather than calling this directly.
func NewArena() *Arena {
	return &Arena{}
}

// Fresh appends a new cell with the given initial value and returns it.
func (a *Arena) Fresh(init Erased) *Cell {
	c := &Cell{value: init}
	a.cells = append(a.cells, c)
	return c
}

// Snapshot returns one restore thunk per existing cell, in creation order.
func (a *Arena) Snapshot() []func() *Cell {
	if len(a.cells) == 0 {
		return nil
	}
	snap := make([]func() *Cell, len(a.cells))
	for i, c := range a.cells {
		snap[i] = c.Snapshot()
	}
	return snap
}

// Restore invokes each thunk in order and replaces the arena's cell list
// with the results. It handles both shrinking (the current list is longer,
// so the tail is dropped) and growing (the snapshot is longer, so the
// restored cells are re-adopted) relative to the arena's current cell count.
func (a *Arena) Restore(snapshot []func() *Cell) {
	if len(snapshot) == 0 {
		a.cells = nil
		return
	}
	cells := make([]*Cell, len(snapshot))
	for i, thunk := range snapshot {
		cells[i] = thunk()
	}
	a.cells = cells
}

// globalArena exists for the program's lifetime and is never captured by a
// continuation: it is current exactly when no user-defined region is on the
// region stack (see region.go).
var globalArena = NewArena()

// Global returns a handle to the global arena.
func Global() *Arena {
	return globalArena
}
