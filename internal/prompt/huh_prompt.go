package prompt

import (
	"github.com/charmbracelet/huh"
)

// HuhPrompter asks setup questions on the terminal with charmbracelet/huh.
// Every question runs as its own single-field form.
type HuhPrompter struct {
	theme *huh.Theme
}

func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{theme: huh.ThemeBase()}
}

func (p *HuhPrompter) ask(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).WithTheme(p.theme).Run()
}

func (p *HuhPrompter) Select(title string, options []string, defaultValue string) (string, error) {
	choice := defaultValue
	field := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&choice)
	return choice, p.ask(field)
}

func (p *HuhPrompter) Input(title string, defaultValue string, validate func(string) error) (string, error) {
	text := defaultValue
	field := huh.NewInput().Title(title).Value(&text)
	if validate != nil {
		field = field.Validate(validate)
	}
	return text, p.ask(field)
}

func (p *HuhPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	yes := defaultValue
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&yes)
	return yes, p.ask(field)
}
