package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/amterp/freecell/internal/controller"
	fcerr "github.com/amterp/freecell/internal/errors"
	"github.com/amterp/freecell/internal/follow"
	"github.com/amterp/freecell/internal/game"
	"github.com/amterp/freecell/internal/model"
	"github.com/amterp/freecell/internal/prompt"
	"github.com/amterp/freecell/internal/render"
	"github.com/amterp/freecell/internal/service"
	"github.com/amterp/freecell/internal/util"
	"github.com/amterp/ra"
)

func registerPlay(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("play")
	cmd.SetDescription("Play a game, reading moves like 'C3 2 O1' from stdin")

	registerGameFlags(cmd, &ctx.PlayCascades, &ctx.PlayOpens, &ctx.PlayNoShuffle, &ctx.PlaySeed, &ctx.PlayPlain)

	ctx.PlayMode, _ = ra.NewString("mode").
		SetShort("m").
		SetOptional(true).
		SetFlagOnly(true).
		SetEnumConstraint([]string{"single", "multi"}).
		SetUsage("Move mode: single card moves, or multi to move builds between cascades").
		Register(cmd)

	ctx.PlayFollow, _ = ra.NewString("follow").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Read moves appended to this file instead of stdin").
		Register(cmd)

	ctx.PlayUsed, _ = parent.RegisterCmd(cmd)
}

func runPlay(flags GameFlags, followPath string, interactive bool) {
	app := NewApp(interactive)

	if followPath != "" {
		follower, err := follow.New(followPath)
		if err != nil {
			Fatal(err)
		}
		defer follower.Close()

		// Ctrl-C ends a followed game; stdin games end on EOF instead.
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		go func() {
			<-sigCh
			follower.Close()
		}()

		PrintInfo("Following moves in %s", follower.Path())
		app.In = follower
	}

	session, err := app.Play(flags)
	now := util.NowMillis()
	if err != nil {
		if errors.Is(err, controller.ErrInputExhausted) && session != nil {
			PrintWarning("Input ended after %d moves; game %s (started %s) abandoned",
				session.Moves(), RenderID(session.ID), util.FormatStarted(session.StartedAtMillis, now))
			os.Exit(1)
		}
		Fatal(err)
	}
	if session.Board().IsGameOver() {
		PrintSuccess("Solved game %s in %d moves (%s)",
			RenderID(session.ID), session.Moves(), util.FormatElapsed(session.StartedAtMillis, now))
	}
}

// Play resolves settings, deals, and runs the move loop on a.In / a.Out.
// The session is returned even when the loop fails, for reporting.
func (a *App) Play(flags GameFlags) (*service.Session, error) {
	seed, err := flags.ParseSeed()
	if err != nil {
		return nil, err
	}

	overrides := flags.Overrides()
	if !flags.hasLayout() && !a.SettingsStore.Exists() {
		if err := a.promptSetup(&overrides); err != nil {
			return nil, err
		}
	}

	cfg, err := a.SettingsService.Resolve(overrides)
	if err != nil {
		return nil, err
	}

	session := a.GameService.NewGame(service.Options{Mode: cfg.Mode, Seed: seed})
	view := newRenderer(session.Board(), a.Out, cfg.Styled)

	fmt.Fprintf(a.Out, "%s\n", gameHeader(session, cfg))

	ctrl, err := controller.New(session, a.In, view)
	if err != nil {
		return session, err
	}
	if err := ctrl.PlayGame(model.StandardDeck(), cfg.Cascades, cfg.Opens, cfg.Shuffle); err != nil {
		return session, err
	}
	return session, nil
}

// promptSetup asks for a layout on first run, and offers to save it.
// Without a terminal (NoopPrompter) it leaves the defaults alone.
func (a *App) promptSetup(o *service.Overrides) error {
	defaults := service.GameConfig{}
	if settings, err := a.SettingsStore.Load(); err == nil {
		defaults.Cascades, defaults.Opens = settings.Cascades, settings.Opens
		defaults.Mode, _ = game.ParseMode(settings.Mode)
	}

	mode, err := a.Prompter.Select("Move mode", []string{"multi", "single"}, defaults.Mode.String())
	if errors.Is(err, prompt.ErrNonInteractive) {
		return nil
	}
	if err != nil {
		return err
	}

	cascadesStr, err := a.Prompter.Input("Cascade piles", strconv.Itoa(defaults.Cascades), atLeast(game.MinCascades))
	if err != nil {
		return err
	}
	opensStr, err := a.Prompter.Input("Open cells", strconv.Itoa(defaults.Opens), atLeast(game.MinOpens))
	if err != nil {
		return err
	}

	cascades, err := parseCount("cascades", cascadesStr, game.MinCascades)
	if err != nil {
		return err
	}
	opens, err := parseCount("opens", opensStr, game.MinOpens)
	if err != nil {
		return err
	}
	o.Mode, o.Cascades, o.Opens = &mode, &cascades, &opens

	save, err := a.Prompter.Confirm("Save as your defaults?", true)
	if err != nil {
		return err
	}
	if save {
		settings, err := a.SettingsStore.Load()
		if err != nil {
			return err
		}
		settings.Mode, settings.Cascades, settings.Opens = mode, cascades, opens
		if err := a.SettingsStore.Save(settings); err != nil {
			return err
		}
		PrintSuccess("Saved defaults to %s", a.SettingsStore.Path())
	}
	return nil
}

// atLeast validates prompt input as an integer >= minimum.
func atLeast(minimum int) func(string) error {
	return func(s string) error {
		_, err := parseCount("value", s, minimum)
		return err
	}
}

func parseCount(field, s string, minimum int) (int, error) {
	n, err := strconv.Atoi(util.NormalizeToken(s))
	if err != nil {
		return 0, fcerr.InvalidField(field, fmt.Sprintf("%q is not a number", s))
	}
	if n < minimum {
		return 0, fcerr.InvalidField(field, fmt.Sprintf("must be at least %d", minimum))
	}
	return n, nil
}

func newRenderer(board *game.Board, out io.Writer, styled bool) render.Renderer {
	if styled {
		return render.NewStyledRenderer(board, out)
	}
	return render.NewTextRenderer(board, out)
}

func gameHeader(session *service.Session, cfg service.GameConfig) string {
	line := fmt.Sprintf("Game %s  %s mode  seed %d", session.ID, cfg.Mode, session.Seed)
	if !cfg.Shuffle {
		line = fmt.Sprintf("Game %s  %s mode  unshuffled", session.ID, cfg.Mode)
	}
	if cfg.Styled {
		return TitleBox(line)
	}
	return line
}
