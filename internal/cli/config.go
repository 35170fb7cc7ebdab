package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/amterp/freecell/internal/editor"
	"github.com/amterp/freecell/internal/model"
	"github.com/amterp/freecell/internal/prompt"
	"github.com/amterp/freecell/internal/service"
	"github.com/amterp/freecell/internal/store"
	"github.com/amterp/freecell/internal/version"
	"github.com/amterp/ra"
)

func registerConfig(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("config")
	cmd.SetDescription("Manage default game settings")

	showCmd := ra.NewCmd("show")
	showCmd.SetDescription("Show the effective settings and where they come from")
	ctx.ConfigShowUsed, _ = cmd.RegisterCmd(showCmd)

	initCmd := ra.NewCmd("init")
	initCmd.SetDescription("Write a settings file with the defaults")
	ctx.ConfigInitForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Overwrite an existing settings file").
		Register(initCmd)
	ctx.ConfigInitUsed, _ = cmd.RegisterCmd(initCmd)

	editCmd := ra.NewCmd("edit")
	editCmd.SetDescription("Edit the settings file in your editor")
	ctx.ConfigEditUsed, _ = cmd.RegisterCmd(editCmd)

	ctx.ConfigUsed, _ = parent.RegisterCmd(cmd)
}

func runConfigShow() {
	app := NewApp(false)
	if err := app.ConfigShow(); err != nil {
		Fatal(err)
	}
}

// ConfigShow writes the effective settings as TOML.
func (a *App) ConfigShow() error {
	settings, err := a.SettingsService.Load()
	if err != nil {
		return err
	}

	const labelWidth = 8
	source := a.SettingsStore.Path()
	if !a.SettingsStore.Exists() {
		source = "built-in defaults (no file at " + a.SettingsStore.Path() + ")"
	}
	fmt.Fprintln(a.Out, LabelValue("Source", source, labelWidth))
	fmt.Fprintln(a.Out)

	return toml.NewEncoder(a.Out).Encode(settings)
}

func runConfigInit(force, interactive bool) {
	app := NewApp(interactive)
	if err := app.ConfigInit(force); err != nil {
		Fatal(err)
	}
}

// ConfigInit writes default settings, asking before overwriting when it can.
func (a *App) ConfigInit(force bool) error {
	if a.SettingsStore.Exists() && !force {
		overwrite, err := a.Prompter.Confirm(fmt.Sprintf("%s exists. Overwrite with defaults?", a.SettingsStore.Path()), false)
		if err != nil && !errors.Is(err, prompt.ErrNonInteractive) {
			return err
		}
		force = overwrite
	}

	if err := a.SettingsService.Init(force); err != nil {
		return err
	}
	PrintSuccess("Wrote default settings to %s", a.SettingsStore.Path())
	return nil
}

func runConfigEdit() {
	app := NewApp(true)

	configured := ""
	if settings, err := app.SettingsStore.Load(); err == nil {
		configured = settings.Editor
	}
	if err := app.ConfigEdit(editor.NewEditor(configured)); err != nil {
		Fatal(err)
	}
}

// textEditor edits text interactively.
type textEditor interface {
	Edit(content, suffix string) (string, error)
}

// ConfigEdit opens the settings in ed and saves the result if it parses and
// validates. Invalid edits leave the file untouched.
func (a *App) ConfigEdit(ed textEditor) error {
	current, err := a.currentSettingsText()
	if err != nil {
		return err
	}

	edited, err := ed.Edit(current, ".toml")
	if err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	if edited == current && a.SettingsStore.Exists() {
		PrintInfo("No changes")
		return nil
	}

	settings, err := store.ParseSettings(a.SettingsStore.Path(), []byte(edited))
	if err != nil {
		return err
	}
	if err := service.ValidateSettings(*settings); err != nil {
		return err
	}
	if err := a.SettingsStore.Save(settings); err != nil {
		return err
	}
	PrintSuccess("Saved settings to %s", a.SettingsStore.Path())
	return nil
}

// currentSettingsText returns the settings file verbatim, or the defaults
// rendered as TOML when there is no file yet.
func (a *App) currentSettingsText() (string, error) {
	if a.SettingsStore.Exists() {
		data, err := os.ReadFile(a.SettingsStore.Path())
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	settings := model.DefaultSettings()
	settings.FreecellSchema = version.CurrentSettingsSchema()
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(settings); err != nil {
		return "", err
	}
	return buf.String(), nil
}
