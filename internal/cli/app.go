package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/amterp/freecell/internal/config"
	"github.com/amterp/freecell/internal/id"
	"github.com/amterp/freecell/internal/prompt"
	"github.com/amterp/freecell/internal/service"
	"github.com/amterp/freecell/internal/store"
)

// App holds all the dependencies for the CLI.
// Uses interfaces for testability.
type App struct {
	SettingsStore   store.SettingsStore
	SettingsService *service.SettingsService
	GameService     *service.GameService
	Prompter        prompt.Prompter
	In              io.Reader
	Out             io.Writer
}

// NewApp creates a new App with all dependencies wired up.
// If interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(interactive bool) *App {
	settingsStore := store.NewSettingsStore(config.SettingsPath())

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}

	return &App{
		SettingsStore:   settingsStore,
		SettingsService: service.NewSettingsService(settingsStore),
		GameService:     service.NewGameService(id.Default()),
		Prompter:        prompter,
		In:              os.Stdin,
		Out:             os.Stdout,
	}
}

// Fatal prints an error and exits.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
