package model

import (
	fcerr "github.com/amterp/freecell/internal/errors"
)

// DeckSize is the number of cards in a complete deck.
const DeckSize = 52

// StandardDeck returns a new 52-card deck ordered by suit (clubs, diamonds,
// hearts, spades), aces first within each suit.
func StandardDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for r := MinRank; r <= MaxRank; r++ {
			deck = append(deck, Card{rank: r, suit: s})
		}
	}
	return deck
}

// ValidateDeck returns nil iff deck holds exactly 52 distinct valid cards,
// which means it holds every rank and suit combination once.
func ValidateDeck(deck []Card) error {
	if len(deck) != DeckSize {
		return fcerr.BadDeck("expected %d cards, got %d", DeckSize, len(deck))
	}
	seen := make(map[Card]bool, DeckSize)
	for i, c := range deck {
		if !c.Valid() {
			return fcerr.BadDeck("card %d is not a valid card", i+1)
		}
		if seen[c] {
			return fcerr.BadDeck("duplicate card %s", c)
		}
		seen[c] = true
	}
	return nil
}

// IsValidDeck is ValidateDeck as a predicate.
func IsValidDeck(deck []Card) bool {
	return ValidateDeck(deck) == nil
}
