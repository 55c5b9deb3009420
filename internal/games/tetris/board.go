package tetris

// Board is the settled-cell grid. Each cell holds 0 (empty) or the palette
// index of the piece that settled there. Row 0 is the top, row h-1 the floor.
type Board struct {
	width  int
	height int
	cells  [][]int
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]int, height)
	for y := range b.cells {
		b.cells[y] = make([]int, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// At returns the value of a cell, or 0 outside the board.
func (b *Board) At(c Cell) int {
	if !b.InBounds(c) {
		return 0
	}
	return b.cells[c.Row][c.Col]
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width
}

// Settled reports whether c is an occupied grid cell.
func (b *Board) Settled(c Cell) bool {
	return b.InBounds(c) && b.cells[c.Row][c.Col] != 0
}

// Rows returns a copy of the grid.
func (b *Board) Rows() [][]int {
	rows := make([][]int, b.height)
	for y, row := range b.cells {
		rows[y] = append([]int(nil), row...)
	}
	return rows
}

// clear resets every cell to empty.
func (b *Board) clear() {
	for _, row := range b.cells {
		for x := range row {
			row[x] = 0
		}
	}
}

// set writes a cell value. Used by merges and test fixtures.
func (b *Board) set(c Cell, v int) {
	if b.InBounds(c) {
		b.cells[c.Row][c.Col] = v
	}
}

// horizontalBump reports whether shifting the piece by dCol columns would
// leave the board or hit a settled cell.
func (b *Board) horizontalBump(p *Piece, dCol int) bool {
	for _, c := range p.Cells() {
		shifted := Cell{Row: c.Row, Col: c.Col + dCol}
		if shifted.Col < 0 || shifted.Col >= b.width || b.Settled(shifted) {
			return true
		}
	}
	return false
}

// rotationBump reports whether the piece's next rotation state would leave
// the board on any edge or hit a settled cell.
func (b *Board) rotationBump(p *Piece) bool {
	for _, c := range p.PeekRotatedCells() {
		if !b.InBounds(c) || b.Settled(c) {
			return true
		}
	}
	return false
}

// meetsPool is the downward-contact test: some cell of the piece rests on
// the floor, or on a settled cell that is not part of the piece itself.
func (b *Board) meetsPool(p *Piece) bool {
	for _, c := range p.Cells() {
		below := Cell{Row: c.Row + 1, Col: c.Col}
		if c.Row == b.height-1 || (!p.Contains(below) && b.Settled(below)) {
			return true
		}
	}
	return false
}

// overlaps reports whether any cell of the piece is already settled.
func (b *Board) overlaps(p *Piece) bool {
	for _, c := range p.Cells() {
		if b.Settled(c) {
			return true
		}
	}
	return false
}

// merge writes the piece's palette index into each of its cells.
func (b *Board) merge(p *Piece) {
	color := p.Color()
	for _, c := range p.Cells() {
		b.set(c, color)
	}
}

// fullRows returns the indices of completely filled rows, top to bottom.
func (b *Board) fullRows() []int {
	var full []int
	for y, row := range b.cells {
		filled := true
		for _, v := range row {
			if v == 0 {
				filled = false
				break
			}
		}
		if filled {
			full = append(full, y)
		}
	}
	return full
}

// clearFullRows removes every full row, keeps the remaining rows in order
// and prepends as many empty rows, so the board keeps its height.
// Returns the number of rows removed.
func (b *Board) clearFullRows() int {
	full := b.fullRows()
	if len(full) == 0 {
		return 0
	}

	remove := make(map[int]bool, len(full))
	for _, y := range full {
		remove[y] = true
	}

	compacted := make([][]int, 0, b.height)
	for _, y := range full {
		row := b.cells[y]
		for x := range row {
			row[x] = 0
		}
		compacted = append(compacted, row)
	}
	for y, row := range b.cells {
		if !remove[y] {
			compacted = append(compacted, row)
		}
	}

	b.cells = compacted
	return len(full)
}
