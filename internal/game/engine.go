package game

import (
	"fmt"
	"strings"

	fcerr "github.com/amterp/freecell/internal/errors"
	"github.com/amterp/freecell/internal/model"
)

// Mode selects how many cards a single move may relocate.
type Mode int

const (
	// SingleMove relocates exactly one card per move.
	SingleMove Mode = iota
	// MultiMove additionally allows moving a build between cascades in one step.
	MultiMove
)

func (m Mode) String() string {
	if m == MultiMove {
		return "multi"
	}
	return "single"
}

// ParseMode accepts "single" or "multi" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return SingleMove, nil
	case "multi":
		return MultiMove, nil
	default:
		return 0, fcerr.InvalidField("mode", fmt.Sprintf("%q (expected single or multi)", s))
	}
}

// Engine validates and executes moves against a board.
type Engine struct {
	board *Board
	mode  Mode
}

// NewEngine binds an engine in the given mode to a board.
func NewEngine(board *Board, mode Mode) *Engine {
	return &Engine{board: board, mode: mode}
}

// New creates an unstarted board and an engine for it.
func New(mode Mode, rng Shuffler) (*Board, *Engine) {
	b := NewBoard(rng)
	return b, NewEngine(b, mode)
}

func (e *Engine) Board() *Board {
	return e.board
}

func (e *Engine) Mode() Mode {
	return e.mode
}

// Move relocates the card at cardIndex of src onto dst. In MultiMove mode a
// cascade-to-cascade move from below the top card moves the whole run above it.
// A failed move leaves the board exactly as it was.
func (e *Engine) Move(src model.PileRef, cardIndex int, dst model.PileRef) error {
	b := e.board
	if !b.started {
		return fcerr.GameNotStarted("move")
	}
	if src.Kind == model.Foundation {
		return fcerr.BadRetrieval("cannot move cards out of a foundation pile")
	}
	if err := b.checkPile(src.Kind, src.Index); err != nil {
		return err
	}
	if err := b.checkPile(dst.Kind, dst.Index); err != nil {
		return err
	}
	if cardIndex < 0 {
		return fcerr.BadIndex("card index cannot be negative")
	}

	if e.mode == MultiMove && src.Kind == model.Cascade && dst.Kind == model.Cascade &&
		cardIndex < b.cascades[src.Index].Len()-1 {
		return e.moveRun(src.Index, cardIndex, dst.Index)
	}
	return e.moveSingle(src, cardIndex, dst)
}

// MaxSupermove returns how many cards could move onto cascade dstIndex given
// the current free opens and free cascades.
func (e *Engine) MaxSupermove(dstIndex int) (int, error) {
	b := e.board
	if !b.started {
		return 0, fcerr.GameNotStarted("compute move capacity")
	}
	if err := b.checkPile(model.Cascade, dstIndex); err != nil {
		return 0, err
	}
	if e.mode == SingleMove {
		return 1, nil
	}
	return supermoveCapacity(b.freeOpens(), b.freeCascades(dstIndex)), nil
}

func (e *Engine) moveSingle(src model.PileRef, cardIndex int, dst model.PileRef) error {
	b := e.board

	card, err := b.peekSource(src, cardIndex)
	if err != nil {
		return err
	}
	if err := b.checkPlacement(card, dst); err != nil {
		return err
	}

	if src.Kind == model.Open {
		b.opens[src.Index] = model.Empty()
	} else {
		if _, err := b.cascades[src.Index].RemoveAt(cardIndex); err != nil {
			return err
		}
	}

	switch dst.Kind {
	case model.Open:
		b.opens[dst.Index] = model.Occupied(card)
	default:
		b.pile(dst.Kind, dst.Index).Add(card)
	}
	return nil
}

func (e *Engine) moveRun(srcIndex, cardIndex, dstIndex int) error {
	b := e.board
	src := &b.cascades[srcIndex]
	dst := &b.cascades[dstIndex]

	run := src.Cards()[cardIndex:]
	capacity := supermoveCapacity(b.freeOpens(), b.freeCascades(dstIndex))
	if len(run) > capacity {
		return fcerr.NotEnoughCapacity(len(run), capacity)
	}

	for i := 1; i < len(run); i++ {
		if !stacksOn(run[i], run[i-1]) {
			return fcerr.BadRetrieval("cards %s through %s do not form a build (%s cannot sit on %s)",
				run[0], run[len(run)-1], run[i], run[i-1])
		}
	}

	// The destination's own top card is never folded into the run; that
	// takes separate moves.
	if top, ok := dst.Top(); ok && !stacksOn(run[0], top) {
		return fcerr.BadPlacement("cannot place build starting at %s onto %s", run[0], top)
	}

	for range run {
		c, err := src.RemoveAt(cardIndex)
		if err != nil {
			return err
		}
		dst.Add(c)
	}
	return nil
}

// peekSource returns the card a single move would take, without removing it.
func (b *Board) peekSource(src model.PileRef, cardIndex int) (model.Card, error) {
	if src.Kind == model.Open {
		if cardIndex != 0 {
			return model.Card{}, fcerr.BadIndex("open piles only have card index 0, got %d", cardIndex)
		}
		c, ok := b.opens[src.Index].Card()
		if !ok {
			return model.Card{}, fcerr.BadRetrieval("open pile %s is empty", src)
		}
		return c, nil
	}

	pile := &b.cascades[src.Index]
	c, err := pile.At(cardIndex)
	if err != nil {
		return model.Card{}, err
	}
	if cardIndex != pile.Len()-1 {
		return model.Card{}, fcerr.BadRetrieval("%s is not the top card of %s", c, src)
	}
	return c, nil
}

func (b *Board) checkPlacement(card model.Card, dst model.PileRef) error {
	switch dst.Kind {
	case model.Open:
		if !b.opens[dst.Index].IsEmpty() {
			return fcerr.BadPlacement("open pile %s is occupied", dst)
		}
	case model.Cascade:
		if top, ok := b.cascades[dst.Index].Top(); ok && !stacksOn(card, top) {
			return fcerr.BadPlacement("%s must be one rank lower than %s and the opposite color", card, top)
		}
	case model.Foundation:
		top, ok := b.foundations[dst.Index].Top()
		if !ok {
			if card.Rank() != model.MinRank {
				return fcerr.BadPlacement("only an ace can start foundation %s, got %s", dst, card)
			}
			return nil
		}
		if card.Suit() != top.Suit() || card.Rank() != top.Rank()+1 {
			return fcerr.BadPlacement("%s must be the same suit as %s and one rank higher", card, top)
		}
	}
	return nil
}

// stacksOn reports whether card may sit directly on onto in a cascade build.
func stacksOn(card, onto model.Card) bool {
	return card.Rank() == onto.Rank()-1 && !card.SameColor(onto)
}

// supermoveCapacity is (freeOpens+1) * 2^freeCascades. It stops doubling once
// the value exceeds a full deck.
func supermoveCapacity(freeOpens, freeCascades int) int {
	capacity := freeOpens + 1
	for i := 0; i < freeCascades && capacity <= model.DeckSize; i++ {
		capacity *= 2
	}
	return capacity
}
