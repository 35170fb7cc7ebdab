package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/amterp/freecell/internal/model"
)

// BoardView is the read-only surface a renderer needs. *game.Board satisfies it.
type BoardView interface {
	Started() bool
	NumPiles(kind model.PileKind) int
	Pile(kind model.PileKind, index int) ([]model.Card, error)
}

// renderOrder is the order piles appear in board output.
var renderOrder = []model.PileKind{model.Foundation, model.Open, model.Cascade}

// CardFormatter turns one card into its on-screen form.
type CardFormatter func(model.Card) string

// LabelFormatter turns a pile label like "C3:" into its on-screen form.
type LabelFormatter func(string) string

// Text renders the board as plain text: F1..F4, O1..On, C1..Cm, one pile per
// line, cards separated by ", ". Returns "" before the game starts.
func Text(view BoardView) string {
	return format(view, model.Card.String, func(s string) string { return s })
}

func format(view BoardView, card CardFormatter, label LabelFormatter) string {
	if !view.Started() {
		return ""
	}

	var lines []string
	for _, kind := range renderOrder {
		for i := 0; i < view.NumPiles(kind); i++ {
			cards, err := view.Pile(kind, i)
			if err != nil {
				// Keep the line so the layout stays stable.
				cards = nil
			}
			line := label(fmt.Sprintf("%s%d:", kind.Letter(), i+1))
			if len(cards) > 0 {
				rendered := make([]string, len(cards))
				for j, c := range cards {
					rendered[j] = card(c)
				}
				line += " " + strings.Join(rendered, ", ")
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// Renderer writes boards and messages to an output.
type Renderer interface {
	RenderBoard() error
	RenderMessage(message string) error
}

// TextRenderer writes a board view to w using a board formatter.
type TextRenderer struct {
	view   BoardView
	out    io.Writer
	format func(BoardView) string
}

// NewTextRenderer renders plain text.
func NewTextRenderer(view BoardView, out io.Writer) *TextRenderer {
	return &TextRenderer{view: view, out: out, format: Text}
}

// NewStyledRenderer renders with terminal colors.
func NewStyledRenderer(view BoardView, out io.Writer) *TextRenderer {
	return &TextRenderer{view: view, out: out, format: Styled}
}

// RenderBoard writes the board followed by a newline. Nothing is written
// before the game starts.
func (r *TextRenderer) RenderBoard() error {
	board := r.format(r.view)
	if board == "" {
		return nil
	}
	_, err := io.WriteString(r.out, board+"\n")
	return err
}

// RenderMessage writes message verbatim.
func (r *TextRenderer) RenderMessage(message string) error {
	_, err := io.WriteString(r.out, message)
	return err
}
