package game

import (
	"math/rand/v2"
	"reflect"
	"sort"
	"testing"

	fcerr "github.com/amterp/freecell/internal/errors"
	"github.com/amterp/freecell/internal/model"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// allCards collects every card on the board, sorted for multiset comparison.
func allCards(t *testing.T, b *Board) []model.Card {
	t.Helper()

	var out []model.Card
	for _, kind := range []model.PileKind{model.Cascade, model.Open, model.Foundation} {
		for i := 0; i < b.NumPiles(kind); i++ {
			cards, err := b.Pile(kind, i)
			if err != nil {
				t.Fatalf("Pile(%v, %d) failed: %v", kind, i, err)
			}
			out = append(out, cards...)
		}
	}
	sortCards(out)
	return out
}

func sortCards(cards []model.Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Suit() != cards[j].Suit() {
			return cards[i].Suit() < cards[j].Suit()
		}
		return cards[i].Rank() < cards[j].Rank()
	})
}

func TestDeal_RoundRobin(t *testing.T) {
	deck := model.StandardDeck()
	b := NewBoard(nil)

	if err := b.Deal(deck, 5, 2, false); err != nil {
		t.Fatalf("Deal failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		got, _ := b.Pile(model.Cascade, i)
		var want []model.Card
		for j := i; j < len(deck); j += 5 {
			want = append(want, deck[j])
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("C%d = %v, want %v", i+1, got, want)
		}
	}
	if b.NumCascades() != 5 || b.NumOpens() != 2 {
		t.Errorf("Got %d cascades, %d opens", b.NumCascades(), b.NumOpens())
	}
	if n, err := b.TotalCards(); err != nil || n != model.DeckSize {
		t.Errorf("Expected %d cards on board, got %d (%v)", model.DeckSize, n, err)
	}
}

func TestDeal_ShufflePreservesCallerDeck(t *testing.T) {
	tests := []struct {
		name     string
		cascades int
		opens    int
		seed     uint64
	}{
		{"four cascades", 4, 1, 1},
		{"eight cascades", 8, 4, 42},
		{"fifty-two cascades", 52, 3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := model.StandardDeck()
			original := model.StandardDeck()
			b := NewBoard(seeded(tt.seed))

			if err := b.Deal(deck, tt.cascades, tt.opens, true); err != nil {
				t.Fatalf("Deal failed: %v", err)
			}
			if !reflect.DeepEqual(deck, original) {
				t.Error("Deal must not modify the caller's deck")
			}

			want := model.StandardDeck()
			sortCards(want)
			if got := allCards(t, b); !reflect.DeepEqual(got, want) {
				t.Error("Board contents differ from the dealt deck")
			}
		})
	}
}

func TestDeal_SeedIsDeterministic(t *testing.T) {
	a := NewBoard(seeded(99))
	b := NewBoard(seeded(99))
	a.Deal(model.StandardDeck(), 8, 4, true)
	b.Deal(model.StandardDeck(), 8, 4, true)

	for i := 0; i < 8; i++ {
		pa, _ := a.Pile(model.Cascade, i)
		pb, _ := b.Pile(model.Cascade, i)
		if !reflect.DeepEqual(pa, pb) {
			t.Fatalf("C%d differs between equally seeded boards", i+1)
		}
	}
}

func TestDeal_InvalidArgumentsLeaveBoardUntouched(t *testing.T) {
	dup := model.StandardDeck()
	dup[10] = dup[11]

	tests := []struct {
		name     string
		deck     []model.Card
		cascades int
		opens    int
		wantKind fcerr.Kind
	}{
		{"short deck", model.StandardDeck()[:40], 8, 4, fcerr.InvalidDeck},
		{"duplicate card", dup, 8, 4, fcerr.InvalidDeck},
		{"three cascades", model.StandardDeck(), 3, 4, fcerr.InvalidIndex},
		{"zero opens", model.StandardDeck(), 8, 0, fcerr.InvalidIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fresh := NewBoard(nil)
			err := fresh.Deal(tt.deck, tt.cascades, tt.opens, false)
			if fcerr.KindOf(err) != tt.wantKind {
				t.Errorf("Expected %v, got %v", tt.wantKind, err)
			}
			if fresh.Started() {
				t.Error("Failed deal must not start the game")
			}

			dealt := NewBoard(nil)
			if err := dealt.Deal(model.StandardDeck(), 6, 2, false); err != nil {
				t.Fatalf("Deal failed: %v", err)
			}
			before := allCards(t, dealt)
			c1, _ := dealt.Pile(model.Cascade, 0)

			if err := dealt.Deal(tt.deck, tt.cascades, tt.opens, false); err == nil {
				t.Fatal("Expected error")
			}
			if dealt.NumCascades() != 6 || dealt.NumOpens() != 2 {
				t.Error("Failed redeal changed pile counts")
			}
			after, _ := dealt.Pile(model.Cascade, 0)
			if !reflect.DeepEqual(c1, after) || !reflect.DeepEqual(before, allCards(t, dealt)) {
				t.Error("Failed redeal changed board contents")
			}
		})
	}
}

func TestDeal_ShuffleWithoutSource(t *testing.T) {
	b := NewBoard(nil)
	err := b.Deal(model.StandardDeck(), 8, 4, true)
	if !fcerr.IsArgumentError(err) {
		t.Errorf("Expected argument error, got %v", err)
	}
}

func TestDeal_RestartDiscardsState(t *testing.T) {
	b, e := New(SingleMove, nil)
	if err := b.Deal(model.StandardDeck(), 4, 2, false); err != nil {
		t.Fatalf("Deal failed: %v", err)
	}
	// C1 top is 10♠ (position 48); park it in O1.
	if err := e.Move(model.PileRef{Kind: model.Cascade, Index: 0}, 12, model.PileRef{Kind: model.Open, Index: 0}); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if err := b.Deal(model.StandardDeck(), 7, 1, false); err != nil {
		t.Fatalf("Redeal failed: %v", err)
	}
	if b.NumCascades() != 7 || b.NumOpens() != 1 {
		t.Errorf("Got %d cascades, %d opens", b.NumCascades(), b.NumOpens())
	}
	if n, _ := b.NumCardsIn(model.Open, 0); n != 0 {
		t.Error("Expected open cells to be cleared on redeal")
	}
}

func TestQueries_BeforeStart(t *testing.T) {
	b := NewBoard(nil)

	if b.Started() {
		t.Error("Expected unstarted board")
	}
	if b.NumCascades() != -1 || b.NumOpens() != -1 {
		t.Errorf("Expected -1 counts, got %d, %d", b.NumCascades(), b.NumOpens())
	}
	if _, err := b.NumCardsIn(model.Cascade, 0); !fcerr.IsStateError(err) {
		t.Errorf("NumCardsIn: expected state error, got %v", err)
	}
	if _, _, err := b.CardAt(model.Foundation, 0, 0); !fcerr.IsStateError(err) {
		t.Errorf("CardAt: expected state error, got %v", err)
	}
	if _, err := b.Pile(model.Open, 0); !fcerr.IsStateError(err) {
		t.Errorf("Pile: expected state error, got %v", err)
	}
	if _, err := b.FreeOpens(); !fcerr.IsStateError(err) {
		t.Errorf("FreeOpens: expected state error, got %v", err)
	}
	if _, err := b.FreeCascades(-1); !fcerr.IsStateError(err) {
		t.Errorf("FreeCascades: expected state error, got %v", err)
	}
	if _, err := b.TotalCards(); !fcerr.IsStateError(err) {
		t.Errorf("TotalCards: expected state error, got %v", err)
	}
	if b.IsGameOver() {
		t.Error("Unstarted game cannot be over")
	}
}

func TestQueries_AfterStart(t *testing.T) {
	b := NewBoard(nil)
	if err := b.Deal(model.StandardDeck(), 4, 2, false); err != nil {
		t.Fatalf("Deal failed: %v", err)
	}

	if n, err := b.NumCardsIn(model.Cascade, 3); err != nil || n != 13 {
		t.Errorf("NumCardsIn(C4) = %d, %v", n, err)
	}
	if n, err := b.NumCardsIn(model.Foundation, 3); err != nil || n != 0 {
		t.Errorf("NumCardsIn(F4) = %d, %v", n, err)
	}
	c, ok, err := b.CardAt(model.Cascade, 1, 0)
	if err != nil || !ok || c != model.MustCard(2, model.Club) {
		t.Errorf("CardAt(C2, 0) = %v, %v, %v", c, ok, err)
	}
	if _, ok, err := b.CardAt(model.Open, 1, 0); err != nil || ok {
		t.Errorf("Empty open cell should report absent without error, got ok=%v err=%v", ok, err)
	}
	if n, err := b.FreeOpens(); err != nil || n != 2 {
		t.Errorf("FreeOpens() = %d, %v", n, err)
	}
	if n, err := b.FreeCascades(-1); err != nil || n != 0 {
		t.Errorf("FreeCascades(-1) = %d, %v", n, err)
	}

	bad := []struct {
		kind model.PileKind
		pile int
		card int
	}{
		{model.Cascade, 4, 0},
		{model.Cascade, -1, 0},
		{model.Cascade, 0, 13},
		{model.Open, 2, 0},
		{model.Open, 0, 1},
		{model.Foundation, 4, 0},
		{model.Foundation, 0, 0},
	}
	for _, q := range bad {
		if _, _, err := b.CardAt(q.kind, q.pile, q.card); !fcerr.IsArgumentError(err) {
			t.Errorf("CardAt(%v, %d, %d): expected argument error, got %v", q.kind, q.pile, q.card, err)
		}
	}
}
