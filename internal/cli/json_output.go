package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/amterp/freecell/internal/model"
	"github.com/amterp/freecell/internal/service"
)

// GameOutput wraps a session snapshot for JSON output.
type GameOutput struct {
	Game service.BoardSnapshot `json:"game"`
}

// NewGameOutput creates a GameOutput from a session.
func NewGameOutput(session *service.Session) GameOutput {
	return GameOutput{Game: session.Snapshot()}
}

// DeckOutput wraps a deck for JSON output.
type DeckOutput struct {
	Cards []model.Card `json:"cards"`
}

// NewDeckOutput creates a DeckOutput.
// Always returns an empty array (not null) when there are no cards.
func NewDeckOutput(cards []model.Card) DeckOutput {
	if cards == nil {
		cards = []model.Card{}
	}
	return DeckOutput{Cards: cards}
}

func printJson(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
