package tetris

import (
	"github.com/kamstrup/intmap"
)

// CellsPerPiece is the number of cells in every rotation state.
const CellsPerPiece = 4

// Variant identifies one of the seven piece shapes.
type Variant int

const (
	VariantI Variant = iota
	VariantO
	VariantT
	VariantL
	VariantMirroredL
	VariantZ
	VariantMirroredZ

	variantCount
)

// PaletteSize is the largest palette index a settled cell can hold.
const PaletteSize = int(variantCount)

// String returns the conventional one-letter name of the variant.
// Mirrored L and mirrored Z are J and S.
func (v Variant) String() string {
	switch v {
	case VariantI:
		return "I"
	case VariantO:
		return "O"
	case VariantT:
		return "T"
	case VariantL:
		return "L"
	case VariantMirroredL:
		return "J"
	case VariantZ:
		return "Z"
	case VariantMirroredZ:
		return "S"
	default:
		return "?"
	}
}

// Color returns the palette index written into the grid for this variant.
// Always in [1, PaletteSize].
func (v Variant) Color() int {
	return int(v) + 1
}

// RotationCount returns how many rotation states the variant cycles through.
func (v Variant) RotationCount() int {
	return len(rotations[v])
}

// Variants returns all piece variants in palette order.
func Variants() []Variant {
	vs := make([]Variant, variantCount)
	for i := range vs {
		vs[i] = Variant(i)
	}
	return vs
}

// Cell is a (row, column) position. Row 0 is the top of the board.
type Cell struct {
	Row, Col int
}

// shape is one rotation state: cell offsets relative to the piece anchor.
type shape [CellsPerPiece]Cell

// rotations lists every variant's states in rotation order.
// Row offsets are in [0, 3] and column offsets in [-2, 1], so a piece
// anchored at (0, w/2) is on the board whenever w >= 4 and h >= 4.
var rotations = [variantCount][]shape{
	VariantI: {
		{{0, -2}, {0, -1}, {0, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	},
	VariantO: {
		{{0, -1}, {0, 0}, {1, -1}, {1, 0}},
	},
	VariantT: {
		{{0, 0}, {1, -1}, {1, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {1, 0}},
		{{0, 0}, {1, -1}, {1, 0}, {2, 0}},
	},
	VariantL: {
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {1, -1}},
		{{0, -1}, {0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, -1}, {1, 0}, {1, 1}},
	},
	VariantMirroredL: {
		{{0, 0}, {1, 0}, {2, -1}, {2, 0}},
		{{0, -1}, {1, -1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {2, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {1, 1}},
	},
	VariantZ: {
		{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	},
	VariantMirroredZ: {
		{{0, 0}, {0, 1}, {1, -1}, {1, 0}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
}

// Rand is the source of randomness for piece generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Piece is the falling tetromino: a variant, its rotation index and an
// anchor on the board. Absolute cells are recomputed after every mutation.
type Piece struct {
	variant  Variant
	rotation int
	anchor   Cell

	cells    [CellsPerPiece]Cell
	occupied *intmap.Map[int64, struct{}]
}

// NewPiece creates a piece with an explicit variant, rotation and anchor.
// The rotation index wraps into the variant's state list.
func NewPiece(v Variant, rotation int, anchor Cell) *Piece {
	n := v.RotationCount()
	p := &Piece{
		variant:  v,
		rotation: ((rotation % n) + n) % n,
		anchor:   anchor,
		occupied: intmap.New[int64, struct{}](CellsPerPiece * 2),
	}
	p.project()
	return p
}

// GeneratePiece picks a variant and one of its rotation states uniformly at
// random and anchors the piece at (0, column).
func GeneratePiece(rng Rand, column int) *Piece {
	v := Variant(rng.Intn(int(variantCount)))
	rotation := rng.Intn(v.RotationCount())
	return NewPiece(v, rotation, Cell{Row: 0, Col: column})
}

// Variant returns the piece's shape.
func (p *Piece) Variant() Variant {
	return p.variant
}

// Rotation returns the current rotation index.
func (p *Piece) Rotation() int {
	return p.rotation
}

// Anchor returns the piece's anchor position.
func (p *Piece) Anchor() Cell {
	return p.anchor
}

// Color returns the palette index of the piece.
func (p *Piece) Color() int {
	return p.variant.Color()
}

// Cells returns the absolute cells currently occupied by the piece.
func (p *Piece) Cells() [CellsPerPiece]Cell {
	return p.cells
}

// Contains reports whether c is one of the piece's own cells.
func (p *Piece) Contains(c Cell) bool {
	_, ok := p.occupied.Get(cellKey(c))
	return ok
}

// Rotate advances to the next rotation state, wrapping to the first.
func (p *Piece) Rotate() {
	p.rotation = p.nextRotation()
	p.project()
}

// PeekRotatedCells returns the cells the piece would occupy after Rotate,
// without changing it.
func (p *Piece) PeekRotatedCells() [CellsPerPiece]Cell {
	return project(rotations[p.variant][p.nextRotation()], p.anchor)
}

// Move translates the anchor by the given deltas.
func (p *Piece) Move(dRow, dCol int) {
	p.anchor.Row += dRow
	p.anchor.Col += dCol
	p.project()
}

func (p *Piece) nextRotation() int {
	return (p.rotation + 1) % p.variant.RotationCount()
}

// project refreshes the absolute cells and the membership set.
func (p *Piece) project() {
	for _, c := range p.cells {
		p.occupied.Del(cellKey(c))
	}
	p.cells = project(rotations[p.variant][p.rotation], p.anchor)
	for _, c := range p.cells {
		p.occupied.Put(cellKey(c), struct{}{})
	}
}

func project(s shape, anchor Cell) [CellsPerPiece]Cell {
	var cells [CellsPerPiece]Cell
	for i, off := range s {
		cells[i] = Cell{Row: anchor.Row + off.Row, Col: anchor.Col + off.Col}
	}
	return cells
}

// cellKey packs a cell into a map key. Columns may be negative.
func cellKey(c Cell) int64 {
	return int64(c.Row)<<32 | int64(uint32(c.Col))
}
