package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed values, reduced modulo n. Once exhausted it
// returns 0, which yields a horizontal I piece.
type scriptedRand struct {
	values []int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

// pieces builds a script spawning the given (variant, rotation) pairs in order.
func pieces(specs ...[2]int) *scriptedRand {
	r := &scriptedRand{}
	for _, s := range specs {
		r.values = append(r.values, s[0], s[1])
	}
	return r
}

func testConfig(w, h int) Config {
	return Config{
		Width:              w,
		Height:             h,
		BaseFallIntervalMs: 100,
		RoundPassScore:     10,
		SpeedUpRate:        0.9,
	}
}

func newTestEngine(t *testing.T, cfg Config, rng Rand) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, rng)
	require.NoError(t, err)
	return e
}

// fillRow settles every column of row except the listed ones.
func fillRow(b *Board, row, color int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for col := 0; col < b.Width(); col++ {
		if !skip[col] {
			b.set(Cell{Row: row, Col: col}, color)
		}
	}
}

func allZero(grid [][]int) bool {
	for _, row := range grid {
		for _, v := range row {
			if v != 0 {
				return false
			}
		}
	}
	return true
}
