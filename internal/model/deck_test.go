package model

import (
	"reflect"
	"testing"

	fcerr "github.com/amterp/freecell/internal/errors"
)

func TestStandardDeck_Order(t *testing.T) {
	deck := StandardDeck()

	if len(deck) != DeckSize {
		t.Fatalf("Expected %d cards, got %d", DeckSize, len(deck))
	}
	if deck[0] != MustCard(1, Club) || deck[12] != MustCard(13, Club) {
		t.Errorf("Expected clubs A..K first, got %v..%v", deck[0], deck[12])
	}
	if deck[13] != MustCard(1, Diamond) || deck[51] != MustCard(13, Spade) {
		t.Errorf("Unexpected suit ordering: %v, %v", deck[13], deck[51])
	}
	if err := ValidateDeck(deck); err != nil {
		t.Errorf("Standard deck should validate: %v", err)
	}
}

func TestStandardDeck_FreshEachCall(t *testing.T) {
	a := StandardDeck()
	b := StandardDeck()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Expected equal decks")
	}
	a[0] = MustCard(2, Spade)
	if b[0] != MustCard(1, Club) {
		t.Error("Expected independent slices")
	}
}

func TestValidateDeck(t *testing.T) {
	short := StandardDeck()[:51]

	dup := StandardDeck()
	dup[51] = dup[0]

	invalid := StandardDeck()
	invalid[3] = Card{rank: 0, suit: Club}

	tests := []struct {
		name string
		deck []Card
	}{
		{"nil", nil},
		{"short", short},
		{"long", append(StandardDeck(), MustCard(1, Club))},
		{"duplicate", dup},
		{"invalid card", invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeck(tt.deck)
			if fcerr.KindOf(err) != fcerr.InvalidDeck {
				t.Errorf("Expected InvalidDeck, got %v", err)
			}
			if IsValidDeck(tt.deck) {
				t.Error("IsValidDeck should be false")
			}
		})
	}
}
