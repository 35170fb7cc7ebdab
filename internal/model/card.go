package model

import (
	"fmt"
	"strconv"
	"strings"

	fcerr "github.com/amterp/freecell/internal/errors"
)

const (
	MinRank = 1
	MaxRank = 13
)

// Suit is one of the four French suits. The zero value is not a valid suit.
type Suit int

const (
	Club Suit = iota + 1
	Diamond
	Heart
	Spade
)

// Suits lists the suits in canonical deck order.
var Suits = [...]Suit{Club, Diamond, Heart, Spade}

// Color is derived from a card's suit.
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Club && s <= Spade
}

// Color returns Black for clubs and spades, Red for diamonds and hearts.
func (s Suit) Color() Color {
	if s == Diamond || s == Heart {
		return Red
	}
	return Black
}

// Glyph returns the suit symbol used in board output.
func (s Suit) Glyph() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

func (s Suit) String() string {
	switch s {
	case Club:
		return "club"
	case Diamond:
		return "diamond"
	case Heart:
		return "heart"
	case Spade:
		return "spade"
	default:
		return fmt.Sprintf("suit(%d)", int(s))
	}
}

// Card is an immutable playing card. Two cards are equal iff rank and suit match,
// so Card can be compared with == and used as a map key. Only NewCard,
// MustCard and ParseCard produce valid cards; the zero Card is invalid.
type Card struct {
	rank int
	suit Suit
}

// NewCard validates rank and suit.
func NewCard(rank int, suit Suit) (Card, error) {
	if rank < MinRank || rank > MaxRank {
		return Card{}, fcerr.InvalidField("card", fmt.Sprintf("rank %d outside %d..%d", rank, MinRank, MaxRank))
	}
	if !suit.Valid() {
		return Card{}, fcerr.InvalidField("card", "missing or unknown suit")
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is NewCard for literals known to be valid.
func MustCard(rank int, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank is 1 (ace) through 13 (king).
func (c Card) Rank() int {
	return c.rank
}

func (c Card) Suit() Suit {
	return c.suit
}

// Valid reports whether the card has a legal rank and suit.
func (c Card) Valid() bool {
	return c.rank >= MinRank && c.rank <= MaxRank && c.suit.Valid()
}

func (c Card) Color() Color {
	return c.suit.Color()
}

func (c Card) SameColor(other Card) bool {
	return c.Color() == other.Color()
}

// RankGlyph returns A, 2..10, J, Q or K.
func (c Card) RankGlyph() string {
	switch c.rank {
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	default:
		return strconv.Itoa(c.rank)
	}
}

func (c Card) String() string {
	return c.RankGlyph() + c.suit.Glyph()
}

// ParseCard reads the notation produced by String. ASCII suit letters
// (C, D, H, S) are accepted in place of the glyph, in either case.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fcerr.InvalidField("card", "empty")
	}

	var suit Suit
	var rankPart string
	for _, candidate := range Suits {
		if strings.HasSuffix(s, candidate.Glyph()) {
			suit = candidate
			rankPart = strings.TrimSuffix(s, candidate.Glyph())
			break
		}
	}
	if suit == 0 {
		last := strings.ToUpper(s[len(s)-1:])
		switch last {
		case "C":
			suit = Club
		case "D":
			suit = Diamond
		case "H":
			suit = Heart
		case "S":
			suit = Spade
		default:
			return Card{}, fcerr.InvalidField("card", fmt.Sprintf("%q has no suit", s))
		}
		rankPart = s[:len(s)-1]
	}

	var rank int
	switch strings.ToUpper(rankPart) {
	case "A":
		rank = 1
	case "J":
		rank = 11
	case "Q":
		rank = 12
	case "K":
		rank = 13
	default:
		n, err := strconv.Atoi(rankPart)
		if err != nil {
			return Card{}, fcerr.InvalidField("card", fmt.Sprintf("%q has no rank", s))
		}
		rank = n
	}
	return NewCard(rank, suit)
}

// MarshalText renders the card in board notation so snapshots read naturally.
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fcerr.InvalidField("card", "cannot encode invalid card")
	}
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
