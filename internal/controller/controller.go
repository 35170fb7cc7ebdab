// Package controller drives a Freecell game from a stream of text commands.
//
// Input is a whitespace-separated token stream. Each move is three tokens:
// the source pile (C3, O2, F1), the 1-based card position within that pile,
// and the destination pile. "q" or "Q" quits at any point.
package controller

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	fcerr "github.com/amterp/freecell/internal/errors"
	"github.com/amterp/freecell/internal/game"
	"github.com/amterp/freecell/internal/model"
	"github.com/amterp/freecell/internal/render"
	"github.com/amterp/freecell/internal/util"
)

// ErrInputExhausted is returned when input ends before the game is over.
var ErrInputExhausted = errors.New("input exhausted before game over")

const (
	msgCouldNotStart = "Could not start game."
	msgMakeMove      = "Make your move: \n"
	msgQuit          = "Game quit prematurely.\n"
	msgGameOver      = "Game over.\n"
	msgInvalidMove   = "invalid move: "
)

// slot is the part of a move the next token fills.
type slot int

const (
	slotSource slot = iota
	slotCard
	slotDest
)

func (s slot) retryMessage() string {
	switch s {
	case slotSource:
		return "Try again: input valid source pile identifier: O1, C3, O2, etc\n"
	case slotCard:
		return "Try again: input valid card index: 0, 1, 2, 3, etc\n"
	default:
		return "Try again: input valid destination pile identifier: O1, C3, F2, etc\n"
	}
}

// Game is what the controller drives. *game.Engine and *service.Session
// both satisfy it.
type Game interface {
	Board() *game.Board
	Move(src model.PileRef, cardIndex int, dst model.PileRef) error
}

// Controller reads moves from in and reports through view.
type Controller struct {
	game Game
	in   io.Reader
	view render.Renderer
}

// New creates a controller. The renderer should be built over g.Board().
func New(g Game, in io.Reader, view render.Renderer) (*Controller, error) {
	if g == nil || g.Board() == nil {
		return nil, fcerr.InvalidField("game", "cannot be nil")
	}
	if in == nil {
		return nil, fcerr.InvalidField("input", "cannot be nil")
	}
	if view == nil {
		return nil, fcerr.InvalidField("view", "cannot be nil")
	}
	return &Controller{game: g, in: in, view: view}, nil
}

// PlayGame deals and then runs the move loop until the game ends, the user
// quits, or input runs out. A deal the board rejects is reported to the view
// and is not an error.
func (c *Controller) PlayGame(deck []model.Card, numCascades, numOpens int, shuffle bool) error {
	if err := c.game.Board().Deal(deck, numCascades, numOpens, shuffle); err != nil {
		return c.message(msgCouldNotStart)
	}
	if err := c.board(); err != nil {
		return err
	}
	if err := c.message(msgMakeMove); err != nil {
		return err
	}
	return c.loop(bufio.NewScanner(c.in))
}

func (c *Controller) loop(sc *bufio.Scanner) error {
	sc.Split(bufio.ScanWords)

	next := slotSource
	var src, dst model.PileRef
	var cardIndex int

	for sc.Scan() {
		token := util.NormalizeToken(sc.Text())
		if token == "Q" {
			return c.message(msgQuit)
		}

		switch next {
		case slotSource:
			ref, ok := parsePile(token)
			if !ok {
				if err := c.message(next.retryMessage()); err != nil {
					return err
				}
				continue
			}
			src = ref
			next = slotCard
		case slotCard:
			n, err := strconv.Atoi(token)
			if err != nil {
				if err := c.message(next.retryMessage()); err != nil {
					return err
				}
				continue
			}
			cardIndex = n - 1
			next = slotDest
		case slotDest:
			ref, ok := parsePile(token)
			if !ok {
				if err := c.message(next.retryMessage()); err != nil {
					return err
				}
				continue
			}
			dst = ref
			next = slotSource
			if err := c.game.Move(src, cardIndex, dst); err != nil {
				if !fcerr.IsArgumentError(err) {
					return fmt.Errorf("move %s %d %s: %w", src, cardIndex+1, dst, err)
				}
				if err := c.message(msgInvalidMove + err.Error() + "\n"); err != nil {
					return err
				}
			} else if err := c.board(); err != nil {
				return err
			}
		}

		if c.game.Board().IsGameOver() {
			if err := c.board(); err != nil {
				return err
			}
			return c.message(msgGameOver)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return ErrInputExhausted
}

// parsePile reads a pile token such as C3 into a 0-based reference.
func parsePile(token string) (model.PileRef, bool) {
	if len(token) < 2 {
		return model.PileRef{}, false
	}
	kind, err := model.ParsePileKind(token[:1])
	if err != nil {
		return model.PileRef{}, false
	}
	n, err := strconv.Atoi(token[1:])
	if err != nil {
		return model.PileRef{}, false
	}
	return model.PileRef{Kind: kind, Index: n - 1}, true
}

func (c *Controller) board() error {
	if err := c.view.RenderBoard(); err != nil {
		return fmt.Errorf("rendering board: %w", err)
	}
	return nil
}

func (c *Controller) message(msg string) error {
	if err := c.view.RenderMessage(msg); err != nil {
		return fmt.Errorf("rendering message: %w", err)
	}
	return nil
}
