// Package score tracks the running score and persists the high score.
package score

// Board holds the score of the current game and the best score seen.
// High never decreases: every Add leaves High = max(High, Score).
type Board struct {
	Score uint32
	High  uint32
}

// NewBoard returns a board seeded with a previously persisted high score.
func NewBoard(high uint32) Board {
	return Board{High: high}
}

// Add credits delta points.
func (b *Board) Add(delta uint32) {
	b.Score += delta
	if b.Score > b.High {
		b.High = b.Score
	}
}

// Reset starts a new game. The high score is kept.
func (b *Board) Reset() {
	b.Score = 0
}
