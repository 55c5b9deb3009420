package tetris

// addScore credits cleared rows. Every multiple of RoundPassScore crossed
// advances the round once and shortens the fall interval once.
// Returns the number of rounds gained.
func (e *Engine) addScore(rows int) int {
	if rows <= 0 {
		return 0
	}

	before := e.score / e.cfg.RoundPassScore
	e.score += rows
	gained := e.score/e.cfg.RoundPassScore - before

	for range gained {
		e.round++
		e.fallInterval *= e.cfg.SpeedUpRate
	}
	return gained
}
