package cli

import (
	"github.com/amterp/freecell/internal/model"
	"github.com/amterp/freecell/internal/service"
	"github.com/amterp/ra"
)

func registerDeal(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("deal")
	cmd.SetDescription("Deal a board and print it without playing")

	registerGameFlags(cmd, &ctx.DealCascades, &ctx.DealOpens, &ctx.DealNoShuffle, &ctx.DealSeed, &ctx.DealPlain)

	ctx.DealJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.DealUsed, _ = parent.RegisterCmd(cmd)
}

func runDeal(flags GameFlags, jsonOutput bool) {
	app := NewApp(false)
	if err := app.Deal(flags, jsonOutput); err != nil {
		Fatal(err)
	}
}

// Deal deals one board from settings and flags and writes it to a.Out.
func (a *App) Deal(flags GameFlags, jsonOutput bool) error {
	seed, err := flags.ParseSeed()
	if err != nil {
		return err
	}
	cfg, err := a.SettingsService.Resolve(flags.Overrides())
	if err != nil {
		return err
	}

	session := a.GameService.NewGame(service.Options{Mode: cfg.Mode, Seed: seed})
	if err := session.Deal(model.StandardDeck(), cfg.Cascades, cfg.Opens, cfg.Shuffle); err != nil {
		return err
	}

	if jsonOutput {
		return printJson(a.Out, NewGameOutput(session))
	}
	return newRenderer(session.Board(), a.Out, cfg.Styled).RenderBoard()
}
