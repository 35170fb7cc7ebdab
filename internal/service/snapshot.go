package service

import (
	"github.com/amterp/freecell/internal/model"
)

// BoardSnapshot is the JSON view of a session.
type BoardSnapshot struct {
	ID              string         `json:"id"`
	Mode            string         `json:"mode"`
	Seed            uint64         `json:"seed"`
	StartedAtMillis int64          `json:"started_at_millis"`
	Moves           int            `json:"moves"`
	Started         bool           `json:"started"`
	GameOver        bool           `json:"game_over"`
	Foundations     [][]model.Card `json:"foundations"`
	Opens           []*model.Card  `json:"opens"`
	Cascades        [][]model.Card `json:"cascades"`
}

// Snapshot captures the session's current state. Pile slices are copies.
// Before the first deal the pile fields are empty.
func (s *Session) Snapshot() BoardSnapshot {
	snap := BoardSnapshot{
		ID:              s.ID,
		Mode:            s.Mode.String(),
		Seed:            s.Seed,
		StartedAtMillis: s.StartedAtMillis,
		Moves:           s.moves,
		Started:         s.board.Started(),
		Foundations:     [][]model.Card{},
		Opens:           []*model.Card{},
		Cascades:        [][]model.Card{},
	}
	if !snap.Started {
		return snap
	}
	snap.GameOver = s.board.IsGameOver()

	snap.Foundations = piles(s, model.Foundation)
	snap.Cascades = piles(s, model.Cascade)
	for i := 0; i < s.board.NumOpens(); i++ {
		c, ok, err := s.board.CardAt(model.Open, i, 0)
		if err != nil || !ok {
			snap.Opens = append(snap.Opens, nil)
			continue
		}
		snap.Opens = append(snap.Opens, &c)
	}
	return snap
}

func piles(s *Session, kind model.PileKind) [][]model.Card {
	n := s.board.NumPiles(kind)
	out := make([][]model.Card, 0, n)
	for i := 0; i < n; i++ {
		cards, err := s.board.Pile(kind, i)
		if err != nil || cards == nil {
			cards = []model.Card{}
		}
		out = append(out, cards)
	}
	return out
}
