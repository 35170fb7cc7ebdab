package model

import (
	"fmt"

	fcerr "github.com/amterp/freecell/internal/errors"
)

// PileKind is the role a pile plays on the board.
type PileKind int

const (
	Cascade PileKind = iota
	Open
	Foundation
)

// Letter returns the single-letter prefix used in pile labels.
func (k PileKind) Letter() string {
	switch k {
	case Cascade:
		return "C"
	case Open:
		return "O"
	case Foundation:
		return "F"
	default:
		return "?"
	}
}

func (k PileKind) String() string {
	switch k {
	case Cascade:
		return "cascade"
	case Open:
		return "open"
	case Foundation:
		return "foundation"
	default:
		return fmt.Sprintf("pilekind(%d)", int(k))
	}
}

// ParsePileKind maps C, O or F to a kind.
func ParsePileKind(letter string) (PileKind, error) {
	switch letter {
	case "C":
		return Cascade, nil
	case "O":
		return Open, nil
	case "F":
		return Foundation, nil
	default:
		return 0, fcerr.InvalidField("pile", fmt.Sprintf("unknown pile letter %q (expected C, O or F)", letter))
	}
}

// PileRef names one pile on the board. Index is 0-based.
type PileRef struct {
	Kind  PileKind
	Index int
}

// String returns the 1-based label, e.g. C3.
func (r PileRef) String() string {
	return fmt.Sprintf("%s%d", r.Kind.Letter(), r.Index+1)
}

// Pile is an ordered run of cards, bottom first.
type Pile struct {
	cards []Card
}

// NewPile builds a pile holding the given cards, bottom first.
func NewPile(cards ...Card) Pile {
	p := Pile{}
	p.cards = append(p.cards, cards...)
	return p
}

func (p *Pile) Len() int {
	return len(p.cards)
}

// Add places a card on top of the pile.
func (p *Pile) Add(c Card) {
	p.cards = append(p.cards, c)
}

// At returns the card at index i.
func (p *Pile) At(i int) (Card, error) {
	if i < 0 || i >= len(p.cards) {
		return Card{}, fcerr.BadIndex("card index %d out of range (pile has %d cards)", i, len(p.cards))
	}
	return p.cards[i], nil
}

// Top returns the last card, or false when the pile is empty.
func (p *Pile) Top() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// RemoveAt removes and returns the card at index i, shifting later cards down.
func (p *Pile) RemoveAt(i int) (Card, error) {
	c, err := p.At(i)
	if err != nil {
		return Card{}, err
	}
	p.cards = append(p.cards[:i], p.cards[i+1:]...)
	return c, nil
}

// Cards returns a copy of the pile's contents.
func (p *Pile) Cards() []Card {
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// OpenCell holds at most one card. The zero value is an empty cell.
type OpenCell struct {
	card     Card
	occupied bool
}

// Occupied returns a cell holding c.
func Occupied(c Card) OpenCell {
	return OpenCell{card: c, occupied: true}
}

// Empty returns an empty cell.
func Empty() OpenCell {
	return OpenCell{}
}

func (o OpenCell) IsEmpty() bool {
	return !o.occupied
}

// Card returns the held card, or false when the cell is empty.
func (o OpenCell) Card() (Card, bool) {
	return o.card, o.occupied
}

// Len is 1 for an occupied cell and 0 otherwise.
func (o OpenCell) Len() int {
	if o.occupied {
		return 1
	}
	return 0
}
