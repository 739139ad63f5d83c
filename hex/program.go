package hex

import "github.com/golang/glog"

// isSpace reports whether c is ASCII whitespace. Bytes like NEL (0x85)
// or NBSP (0xA0) are instruction cells, not whitespace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// A cell is one slot of the program hexagon.
type cell struct {
	value byte
	debug bool
}

// Program is the hexagon of instructions loaded from source text. It is
// immutable after load.
type Program struct {
	cells []cell
	rings int
}

// NewProgram lays the source bytes out as the smallest hexagon that
// fits them. A backtick marks the next non-space byte as a debug
// breakpoint, whitespace is skipped, and unused tail cells become '.'
// no-ops.
func NewProgram(src []byte) *Program {
	p := &Program{rings: 1}
	debugNext := false
	for _, c := range src {
		if c == '`' {
			debugNext = true
			continue
		}
		if isSpace(c) {
			continue
		}
		p.cells = append(p.cells, cell{value: c, debug: debugNext})
		debugNext = false
	}
	for hexNumber(p.rings) < len(p.cells) {
		p.rings++
	}
	for len(p.cells) < hexNumber(p.rings) {
		p.cells = append(p.cells, cell{value: '.'})
	}
	return p
}

// Rings returns the ring count of the hexagon.
func (p *Program) Rings() int {
	return p.rings
}

// Size returns the number of cells in the hexagon.
func (p *Program) Size() int {
	return len(p.cells)
}

// hasBreakpoints reports whether any cell carries a debug mark.
func (p *Program) hasBreakpoints() bool {
	for _, c := range p.cells {
		if c.debug {
			return true
		}
	}
	return false
}

// fetch returns the cell at axial (p, q).
func (p *Program) fetch(pp, qq int) cell {
	i := axialToIndex(pp, qq, p.rings)
	if i < 0 {
		glog.Fatalf("Program fetch outside the hexagon: (%d, %d)", pp, qq)
	}
	return p.cells[i]
}
