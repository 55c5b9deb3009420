package tetris

// State is the session state of the engine.
type State int

const (
	StateFalling State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// PieceView is the render-ready view of the falling piece.
type PieceView struct {
	Variant  Variant
	Rotation int
	Cells    [CellsPerPiece]Cell
	Color    int // Palette index
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	Width  int
	Height int
	Grid   [][]int // Copy; Grid[row][col] is 0 or a palette index

	Piece PieceView

	Score          int
	Round          int
	FallIntervalMs float64
	State          State

	Ticks        uint64 // Engine ticks processed
	Merges       uint64 // Pieces settled this session
	LinesCleared uint64 // Rows removed this session
}

// GameOver reports whether the session has ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Width:  e.board.Width(),
		Height: e.board.Height(),
		Grid:   e.board.Rows(),
		Piece: PieceView{
			Variant:  e.piece.Variant(),
			Rotation: e.piece.Rotation(),
			Cells:    e.piece.Cells(),
			Color:    e.piece.Color(),
		},
		Score:          e.score,
		Round:          e.round,
		FallIntervalMs: e.fallInterval,
		State:          e.state,
		Ticks:          e.ticks,
		Merges:         e.merges,
		LinesCleared:   e.lines,
	}
}
