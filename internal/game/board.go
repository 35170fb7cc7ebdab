package game

import (
	fcerr "github.com/amterp/freecell/internal/errors"
	"github.com/amterp/freecell/internal/model"
)

const (
	NumFoundations = 4
	MinCascades    = 4
	MinOpens       = 1
)

// Shuffler permutes n elements via swap. *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Board owns every pile of a Freecell game. It is not safe for concurrent use;
// one driver owns a board for its lifetime.
type Board struct {
	rng         Shuffler
	started     bool
	cascades    []model.Pile
	opens       []model.OpenCell
	foundations [NumFoundations]model.Pile
}

// NewBoard creates an empty, unstarted board that shuffles with rng.
// rng may be nil if every deal is unshuffled.
func NewBoard(rng Shuffler) *Board {
	return &Board{rng: rng}
}

// Deal validates the deck and starts a new game, discarding any previous one.
// The caller's deck is never modified. On error the board is unchanged.
func (b *Board) Deal(deck []model.Card, numCascades, numOpens int, shuffle bool) error {
	if err := model.ValidateDeck(deck); err != nil {
		return err
	}
	if numCascades < MinCascades {
		return fcerr.BadIndex("need at least %d cascade piles, got %d", MinCascades, numCascades)
	}
	if numOpens < MinOpens {
		return fcerr.BadIndex("need at least %d open pile, got %d", MinOpens, numOpens)
	}
	if shuffle && b.rng == nil {
		return fcerr.InvalidField("shuffle", "no randomness source configured")
	}

	cards := make([]model.Card, len(deck))
	copy(cards, deck)
	if shuffle {
		b.rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	}

	cascades := make([]model.Pile, numCascades)
	for i, c := range cards {
		cascades[i%numCascades].Add(c)
	}

	b.cascades = cascades
	b.opens = make([]model.OpenCell, numOpens)
	b.foundations = [NumFoundations]model.Pile{}
	b.started = true
	return nil
}

// Started reports whether a deal has succeeded.
func (b *Board) Started() bool {
	return b.started
}

// NumCascades returns the number of cascade piles, or -1 before the game starts.
func (b *Board) NumCascades() int {
	if !b.started {
		return -1
	}
	return len(b.cascades)
}

// NumOpens returns the number of open cells, or -1 before the game starts.
func (b *Board) NumOpens() int {
	if !b.started {
		return -1
	}
	return len(b.opens)
}

// NumPiles returns how many piles of the given kind exist, or -1 before the game starts.
func (b *Board) NumPiles(kind model.PileKind) int {
	if !b.started {
		return -1
	}
	switch kind {
	case model.Cascade:
		return len(b.cascades)
	case model.Open:
		return len(b.opens)
	case model.Foundation:
		return NumFoundations
	default:
		return 0
	}
}

// NumCardsIn returns the card count of one pile. Open cells hold 0 or 1.
func (b *Board) NumCardsIn(kind model.PileKind, pileIndex int) (int, error) {
	if !b.started {
		return 0, fcerr.GameNotStarted("count cards")
	}
	if err := b.checkPile(kind, pileIndex); err != nil {
		return 0, err
	}
	if kind == model.Open {
		return b.opens[pileIndex].Len(), nil
	}
	return b.pile(kind, pileIndex).Len(), nil
}

// CardAt returns the card at a position. For an empty open cell it returns
// ok=false and no error.
func (b *Board) CardAt(kind model.PileKind, pileIndex, cardIndex int) (model.Card, bool, error) {
	if !b.started {
		return model.Card{}, false, fcerr.GameNotStarted("read cards")
	}
	if err := b.checkPile(kind, pileIndex); err != nil {
		return model.Card{}, false, err
	}
	if kind == model.Open {
		if cardIndex != 0 {
			return model.Card{}, false, fcerr.BadIndex("open piles only have card index 0, got %d", cardIndex)
		}
		c, ok := b.opens[pileIndex].Card()
		return c, ok, nil
	}
	c, err := b.pile(kind, pileIndex).At(cardIndex)
	if err != nil {
		return model.Card{}, false, err
	}
	return c, true, nil
}

// Pile returns a copy of one pile's cards, bottom first.
func (b *Board) Pile(kind model.PileKind, pileIndex int) ([]model.Card, error) {
	if !b.started {
		return nil, fcerr.GameNotStarted("read piles")
	}
	if err := b.checkPile(kind, pileIndex); err != nil {
		return nil, err
	}
	if kind == model.Open {
		if c, ok := b.opens[pileIndex].Card(); ok {
			return []model.Card{c}, nil
		}
		return []model.Card{}, nil
	}
	return b.pile(kind, pileIndex).Cards(), nil
}

// FreeOpens counts empty open cells.
func (b *Board) FreeOpens() (int, error) {
	if !b.started {
		return 0, fcerr.GameNotStarted("count free opens")
	}
	return b.freeOpens(), nil
}

// FreeCascades counts empty cascade piles, ignoring the pile at index excluding.
// Pass -1 to count all of them.
func (b *Board) FreeCascades(excluding int) (int, error) {
	if !b.started {
		return 0, fcerr.GameNotStarted("count free cascades")
	}
	return b.freeCascades(excluding), nil
}

// TotalCards counts every card on the board. It is 52 whenever the game
// has started.
func (b *Board) TotalCards() (int, error) {
	if !b.started {
		return 0, fcerr.GameNotStarted("count cards")
	}
	n := 0
	for i := range b.cascades {
		n += b.cascades[i].Len()
	}
	for _, o := range b.opens {
		n += o.Len()
	}
	for i := range b.foundations {
		n += b.foundations[i].Len()
	}
	return n, nil
}

func (b *Board) freeOpens() int {
	n := 0
	for _, o := range b.opens {
		if o.IsEmpty() {
			n++
		}
	}
	return n
}

func (b *Board) freeCascades(excluding int) int {
	n := 0
	for i := range b.cascades {
		if i != excluding && b.cascades[i].Len() == 0 {
			n++
		}
	}
	return n
}

func (b *Board) checkPile(kind model.PileKind, pileIndex int) error {
	var n int
	switch kind {
	case model.Cascade:
		n = len(b.cascades)
	case model.Open:
		n = len(b.opens)
	case model.Foundation:
		n = NumFoundations
	default:
		return fcerr.BadIndex("unknown pile kind %v", kind)
	}
	if pileIndex < 0 || pileIndex >= n {
		return fcerr.BadIndex("no %s pile %s%d (have %d)", kind, kind.Letter(), pileIndex+1, n)
	}
	return nil
}

// pile returns the cascade or foundation pile; callers must have run checkPile.
func (b *Board) pile(kind model.PileKind, pileIndex int) *model.Pile {
	if kind == model.Foundation {
		return &b.foundations[pileIndex]
	}
	return &b.cascades[pileIndex]
}
