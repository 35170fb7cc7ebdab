package service

import (
	"math/rand/v2"

	"github.com/amterp/freecell/internal/game"
	"github.com/amterp/freecell/internal/id"
	"github.com/amterp/freecell/internal/model"
	"github.com/amterp/freecell/internal/util"
)

// pcgStream is the fixed second PCG word; the seed alone picks the deal.
const pcgStream = 0x9e3779b97f4a7c15

// Options configure a new game session.
type Options struct {
	Mode game.Mode
	// Seed fixes the shuffle. Nil picks a random seed, which is still
	// recorded on the session so the deal can be replayed.
	Seed *uint64
}

// GameService creates game sessions.
type GameService struct {
	ids id.Source
	now func() int64
}

// NewGameService creates a game service that names sessions from ids.
func NewGameService(ids id.Source) *GameService {
	return &GameService{ids: ids, now: util.NowMillis}
}

// NewGame creates an unstarted session. Call Deal to start it.
func (s *GameService) NewGame(opts Options) *Session {
	seed := rand.Uint64()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	board, engine := game.New(opts.Mode, rand.New(rand.NewPCG(seed, pcgStream)))

	return &Session{
		ID:              s.ids.Generate(),
		Mode:            opts.Mode,
		Seed:            seed,
		StartedAtMillis: s.now(),
		board:           board,
		engine:          engine,
	}
}

// Session is one game: a board, its engine and bookkeeping.
type Session struct {
	ID              string
	Mode            game.Mode
	Seed            uint64
	StartedAtMillis int64

	moves  int
	board  *game.Board
	engine *game.Engine
}

func (s *Session) Board() *game.Board {
	return s.board
}

func (s *Session) Engine() *game.Engine {
	return s.engine
}

// Moves returns the number of successful moves since the last deal.
func (s *Session) Moves() int {
	return s.moves
}

// Deal starts (or restarts) the game and resets the move count.
func (s *Session) Deal(deck []model.Card, numCascades, numOpens int, shuffle bool) error {
	if err := s.board.Deal(deck, numCascades, numOpens, shuffle); err != nil {
		return err
	}
	s.moves = 0
	return nil
}

// Move applies a move and counts it if it succeeds.
func (s *Session) Move(src model.PileRef, cardIndex int, dst model.PileRef) error {
	if err := s.engine.Move(src, cardIndex, dst); err != nil {
		return err
	}
	s.moves++
	return nil
}
