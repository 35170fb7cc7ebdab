package cli

import (
	"fmt"
	"strings"

	"github.com/amterp/freecell/internal/model"
	"github.com/amterp/freecell/internal/render"
	"github.com/amterp/ra"
)

func registerDeck(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("deck")
	cmd.SetDescription("Print the canonical 52-card deck in deal order")

	ctx.DeckJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.DeckUsed, _ = parent.RegisterCmd(cmd)
}

func runDeck(jsonOutput bool) {
	app := NewApp(false)
	if err := app.Deck(jsonOutput); err != nil {
		Fatal(err)
	}
}

// Deck writes the canonical deck, one suit per line.
func (a *App) Deck(jsonOutput bool) error {
	deck := model.StandardDeck()
	if jsonOutput {
		return printJson(a.Out, NewDeckOutput(deck))
	}

	styled := true
	if settings, err := a.SettingsService.Load(); err == nil {
		styled = settings.Styled
	}

	perSuit := model.MaxRank
	for i := 0; i < len(deck); i += perSuit {
		cards := make([]string, 0, perSuit)
		for _, c := range deck[i : i+perSuit] {
			if styled {
				cards = append(cards, render.StyledCard(c))
			} else {
				cards = append(cards, c.String())
			}
		}
		if _, err := fmt.Fprintln(a.Out, strings.Join(cards, ", ")); err != nil {
			return err
		}
	}
	return nil
}
