package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool

	// play command
	PlayUsed      *bool
	PlayCascades  *int
	PlayOpens     *int
	PlayMode      *string
	PlayNoShuffle *bool
	PlaySeed      *string
	PlayPlain     *bool
	PlayFollow    *string

	// deal command
	DealUsed      *bool
	DealCascades  *int
	DealOpens     *int
	DealNoShuffle *bool
	DealSeed      *string
	DealPlain     *bool
	DealJson      *bool

	// deck command
	DeckUsed *bool
	DeckJson *bool

	// config command
	ConfigUsed      *bool
	ConfigShowUsed  *bool
	ConfigInitUsed  *bool
	ConfigInitForce *bool
	ConfigEditUsed  *bool

	// completion command
	CompletionUsed  *bool
	CompletionShell *string
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}
	cmd := newRootCmd(ctx)

	// Parse command line
	cmd.ParseOrExit(os.Args[1:])

	// Execute the appropriate command
	executeCommand(ctx, cmd)
}

func newRootCmd(ctx *CommandContext) *ra.Cmd {
	cmd := ra.NewCmd("freecell")
	cmd.SetDescription("Play Freecell in the terminal")

	// Global flag for non-interactive mode
	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	// Register all subcommands
	registerPlay(cmd, ctx)
	registerDeal(cmd, ctx)
	registerDeck(cmd, ctx)
	registerConfig(cmd, ctx)
	registerCompletion(cmd, ctx)

	return cmd
}

func executeCommand(ctx *CommandContext, rootCmd *ra.Cmd) {
	interactive := !*ctx.NonInteractive

	switch {
	case *ctx.PlayUsed:
		runPlay(GameFlags{
			Cascades:  *ctx.PlayCascades,
			Opens:     *ctx.PlayOpens,
			Mode:      *ctx.PlayMode,
			NoShuffle: *ctx.PlayNoShuffle,
			Seed:      *ctx.PlaySeed,
			Plain:     *ctx.PlayPlain,
		}, *ctx.PlayFollow, interactive)

	case *ctx.DealUsed:
		runDeal(GameFlags{
			Cascades:  *ctx.DealCascades,
			Opens:     *ctx.DealOpens,
			NoShuffle: *ctx.DealNoShuffle,
			Seed:      *ctx.DealSeed,
			Plain:     *ctx.DealPlain,
		}, *ctx.DealJson)

	case *ctx.DeckUsed:
		runDeck(*ctx.DeckJson)

	case *ctx.ConfigShowUsed:
		runConfigShow()

	case *ctx.ConfigInitUsed:
		runConfigInit(*ctx.ConfigInitForce, interactive)

	case *ctx.ConfigEditUsed:
		runConfigEdit()

	case *ctx.CompletionUsed:
		runCompletion(*ctx.CompletionShell, rootCmd)
	}
}
