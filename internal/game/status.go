package game

import "github.com/amterp/freecell/internal/model"

// IsGameOver is true once every foundation holds a full suit. It is false
// before the game starts. Stuck positions are not detected.
func (b *Board) IsGameOver() bool {
	if !b.started {
		return false
	}
	for i := range b.foundations {
		if b.foundations[i].Len() != model.MaxRank {
			return false
		}
	}
	return true
}
