package render

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/amterp/freecell/internal/game"
	"github.com/amterp/freecell/internal/model"
)

const fiveCascadeDeal = "F1:\nF2:\nF3:\nF4:\nO1:\nO2:\n" +
	"C1: A♣, 6♣, J♣, 3♦, 8♦, K♦, 5♥, 10♥, 2♠, 7♠, Q♠\n" +
	"C2: 2♣, 7♣, Q♣, 4♦, 9♦, A♥, 6♥, J♥, 3♠, 8♠, K♠\n" +
	"C3: 3♣, 8♣, K♣, 5♦, 10♦, 2♥, 7♥, Q♥, 4♠, 9♠\n" +
	"C4: 4♣, 9♣, A♦, 6♦, J♦, 3♥, 8♥, K♥, 5♠, 10♠\n" +
	"C5: 5♣, 10♣, 2♦, 7♦, Q♦, 4♥, 9♥, A♠, 6♠, J♠"

func dealtBoard(t *testing.T) (*game.Board, *game.Engine) {
	t.Helper()
	b, e := game.New(game.SingleMove, nil)
	if err := b.Deal(model.StandardDeck(), 5, 2, false); err != nil {
		t.Fatalf("Deal failed: %v", err)
	}
	return b, e
}

func TestText_NotStarted(t *testing.T) {
	if got := Text(game.NewBoard(nil)); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestText_FreshDeal(t *testing.T) {
	b, _ := dealtBoard(t)
	if got := Text(b); got != fiveCascadeDeal {
		t.Errorf("Text mismatch:\ngot:\n%s\nwant:\n%s", got, fiveCascadeDeal)
	}
}

func TestText_AfterMoves(t *testing.T) {
	b, e := dealtBoard(t)

	// Q♠ off C1 into O2, then K♠ off C2 into O1.
	if err := e.Move(model.PileRef{Kind: model.Cascade, Index: 0}, 10, model.PileRef{Kind: model.Open, Index: 1}); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if err := e.Move(model.PileRef{Kind: model.Cascade, Index: 1}, 10, model.PileRef{Kind: model.Open, Index: 0}); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	want := "F1:\nF2:\nF3:\nF4:\nO1: K♠\nO2: Q♠\n" +
		"C1: A♣, 6♣, J♣, 3♦, 8♦, K♦, 5♥, 10♥, 2♠, 7♠\n" +
		"C2: 2♣, 7♣, Q♣, 4♦, 9♦, A♥, 6♥, J♥, 3♠, 8♠\n" +
		"C3: 3♣, 8♣, K♣, 5♦, 10♦, 2♥, 7♥, Q♥, 4♠, 9♠\n" +
		"C4: 4♣, 9♣, A♦, 6♦, J♦, 3♥, 8♥, K♥, 5♠, 10♠\n" +
		"C5: 5♣, 10♣, 2♦, 7♦, Q♦, 4♥, 9♥, A♠, 6♠, J♠"
	if got := Text(b); got != want {
		t.Errorf("Text mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// brokenView reports a failing pile to check the layout survives it.
type brokenView struct {
	*game.Board
	broken model.PileRef
}

func (v brokenView) Pile(kind model.PileKind, index int) ([]model.Card, error) {
	if kind == v.broken.Kind && index == v.broken.Index {
		return nil, errors.New("pile unavailable")
	}
	return v.Board.Pile(kind, index)
}

func TestText_PileErrorKeepsLabel(t *testing.T) {
	b, _ := dealtBoard(t)
	view := brokenView{Board: b, broken: model.PileRef{Kind: model.Cascade, Index: 2}}

	want := strings.Replace(fiveCascadeDeal, "C3: 3♣, 8♣, K♣, 5♦, 10♦, 2♥, 7♥, Q♥, 4♠, 9♠", "C3:", 1)
	if got := Text(view); got != want {
		t.Errorf("Text mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestStyled_SameLayoutAsText(t *testing.T) {
	b, _ := dealtBoard(t)
	if got := ansi.ReplaceAllString(Styled(b), ""); got != fiveCascadeDeal {
		t.Errorf("Styled layout differs from Text:\n%s", got)
	}
	if Styled(game.NewBoard(nil)) != "" {
		t.Error("Expected empty styled output before start")
	}
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	unstarted := NewTextRenderer(game.NewBoard(nil), &buf)
	if err := unstarted.RenderBoard(); err != nil {
		t.Fatalf("RenderBoard failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output before start, got %q", buf.String())
	}

	b, _ := dealtBoard(t)
	r := NewTextRenderer(b, &buf)
	if err := r.RenderBoard(); err != nil {
		t.Fatalf("RenderBoard failed: %v", err)
	}
	if err := r.RenderMessage("Game over."); err != nil {
		t.Fatalf("RenderMessage failed: %v", err)
	}
	if buf.String() != fiveCascadeDeal+"\nGame over." {
		t.Errorf("Unexpected output %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTextRenderer_WriteError(t *testing.T) {
	b, _ := dealtBoard(t)
	r := NewTextRenderer(b, failingWriter{})
	if err := r.RenderBoard(); err == nil {
		t.Error("Expected write error from RenderBoard")
	}
	if err := r.RenderMessage("hi"); err == nil {
		t.Error("Expected write error from RenderMessage")
	}
}
