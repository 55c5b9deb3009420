// Package tetris implements the falling-block puzzle: the piece table, the
// board engine (collisions, merging, row clearing, round progression) and
// the platform adapter that renders it.
package tetris

// Intent is a single player request applied to the falling piece.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentSoftDrop
	IntentHardDrop
	IntentRotate
)

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentSoftDrop:
		return "soft_drop"
	case IntentHardDrop:
		return "hard_drop"
	case IntentRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// Engine is one game session: the settled grid, the falling piece and the
// score/round/speed bookkeeping. It never blocks and never reads a clock;
// time arrives through Tick.
type Engine struct {
	cfg   Config
	rng   Rand
	board *Board
	piece *Piece

	score        int
	round        int
	fallInterval float64 // Milliseconds
	elapsed      int64   // Milliseconds since the last automatic fall
	state        State

	ticks  uint64
	merges uint64
	lines  uint64
}

// NewEngine validates cfg and starts a fresh session.
func NewEngine(cfg Config, rng Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		rng:   rng,
		board: NewBoard(cfg.Width, cfg.Height),
	}
	e.Reset()
	return e, nil
}

// Reset clears the grid, spawns a new piece and restores score, round and
// fall interval to their base values.
func (e *Engine) Reset() {
	e.board.clear()
	e.score = 0
	e.round = 1
	e.fallInterval = e.cfg.BaseFallIntervalMs
	e.elapsed = 0
	e.state = StateFalling
	e.ticks = 0
	e.merges = 0
	e.lines = 0
	e.spawn()
}

// Piece returns the falling piece. Callers must not mutate it.
func (e *Engine) Piece() *Piece {
	return e.piece
}

// State returns the session state.
func (e *Engine) State() State {
	return e.state
}

// ApplyIntent processes one player intent against the falling piece.
// After game over every intent is ignored until Reset.
func (e *Engine) ApplyIntent(in Intent) Snapshot {
	if !e.ensurePlayable() {
		return e.Snapshot()
	}

	switch in {
	case IntentLeft:
		e.shift(-1)
	case IntentRight:
		e.shift(1)
	case IntentRotate:
		if !e.board.rotationBump(e.piece) {
			e.piece.Rotate()
		}
	case IntentSoftDrop:
		e.softDrop()
	case IntentHardDrop:
		e.hardDrop()
	}

	e.clearRows()
	return e.Snapshot()
}

// Tick advances the gravity timer by elapsedMs. Once the accumulated time
// reaches the fall interval the piece drops one row (or merges) and the
// timer restarts from zero.
func (e *Engine) Tick(elapsedMs int64) Snapshot {
	if !e.ensurePlayable() {
		return e.Snapshot()
	}

	e.ticks++
	if elapsedMs > 0 {
		e.elapsed += elapsedMs
	}
	if float64(e.elapsed) >= e.fallInterval {
		e.elapsed = 0
		e.softDrop()
	}

	e.clearRows()
	return e.Snapshot()
}

// Step is one integrated host tick: gravity first, then the intent.
func (e *Engine) Step(in Intent, elapsedMs int64) Snapshot {
	e.Tick(elapsedMs)
	return e.ApplyIntent(in)
}

// ensurePlayable runs the game-over check. A piece that overlaps settled
// cells can only exist right after a spawn.
func (e *Engine) ensurePlayable() bool {
	if e.state == StateGameOver {
		return false
	}
	if e.board.overlaps(e.piece) {
		e.state = StateGameOver
		return false
	}
	return true
}

func (e *Engine) shift(dCol int) {
	if !e.board.horizontalBump(e.piece, dCol) {
		e.piece.Move(0, dCol)
	}
}

func (e *Engine) softDrop() {
	if e.board.meetsPool(e.piece) {
		e.merge()
		return
	}
	e.piece.Move(1, 0)
}

// hardDrop drops until contact, then merges. The floor bounds the loop.
func (e *Engine) hardDrop() {
	for i := 0; i < e.board.Height() && !e.board.meetsPool(e.piece); i++ {
		e.piece.Move(1, 0)
	}
	e.merge()
}

// merge settles the piece, clears completed rows and spawns the next piece.
// It does not check for game over; the next tick does.
func (e *Engine) merge() {
	e.board.merge(e.piece)
	e.merges++
	e.clearRows()
	e.spawn()
}

// clearRows removes full rows and credits them. Without an intervening
// merge a second call finds nothing to clear.
func (e *Engine) clearRows() int {
	n := e.board.clearFullRows()
	if n > 0 {
		e.lines += uint64(n)
		e.addScore(n)
	}
	return n
}

func (e *Engine) spawn() {
	e.piece = GeneratePiece(e.rng, e.cfg.SpawnColumn())
}
