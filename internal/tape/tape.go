// Package tape implements the two-way-infinite tape a Turing machine runs on.
//
// A tape is indexable at any integer position, negative positions included.
// Cells that have never been written read as the blank symbol, and writes
// grow the backing store in either direction as needed, so neither reads nor
// writes can fail.
package tape

import "strings"

// Blank is the symbol every never-written cell reads as.
const Blank = "_"

// halfTape is a one-way run of cells growing away from the origin.
type halfTape struct {
	cells []string
}

// get returns the cell at index, or Blank past the written extent.
// Reads never grow the store.
func (h *halfTape) get(index int) string {
	if index >= len(h.cells) {
		return Blank
	}
	return h.cells[index]
}

// set stores value at index, filling any gap with Blank.
func (h *halfTape) set(index int, value string) {
	for len(h.cells) <= index {
		h.cells = append(h.cells, Blank)
	}
	h.cells[index] = value
}

// Tape is an unbounded tape of symbols. The zero position is the first cell
// of the input the tape was built from; cells to its left sit at negative
// positions.
type Tape struct {
	right  halfTape // positions 0, 1, 2, ...
	left   halfTape // positions -1, -2, ... stored at 0, 1, ...
	seeded bool
}

// New builds a tape whose cells at positions 0..n-1 hold the runes of input,
// one symbol per rune. An empty input yields a blank tape.
func New(input string) *Tape {
	t := &Tape{}
	for _, r := range input {
		t.right.cells = append(t.right.cells, string(r))
	}
	t.seeded = len(t.right.cells) > 0
	return t
}

// Get returns the symbol at position, or Blank if the cell was never written.
func (t *Tape) Get(position int) string {
	if position < 0 {
		return t.left.get(-position - 1)
	}
	return t.right.get(position)
}

// Set stores symbol at position, extending the tape in either direction.
func (t *Tape) Set(position int, symbol string) {
	if position < 0 {
		t.left.set(-position-1, symbol)
		return
	}
	t.right.set(position, symbol)
}

// IsBlank reports whether the tape was built from empty input.
func (t *Tape) IsBlank() bool {
	return !t.seeded
}

// LeftExtent returns the number of cells written at negative positions.
// Adding it to a tape position gives that cell's index within String.
func (t *Tape) LeftExtent() int {
	return len(t.left.cells)
}

// Cells returns the written extent of the tape, leftmost cell first.
func (t *Tape) Cells() []string {
	cells := make([]string, 0, len(t.left.cells)+len(t.right.cells))
	for i := len(t.left.cells) - 1; i >= 0; i-- {
		cells = append(cells, t.left.cells[i])
	}
	return append(cells, t.right.cells...)
}

// String renders the written extent of the tape, leftmost cell first, with
// blank cells as Blank.
func (t *Tape) String() string {
	return strings.Join(t.Cells(), "")
}
