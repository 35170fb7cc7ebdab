package prompt

import "errors"

// ErrNonInteractive is returned by NoopPrompter. Callers that can fall back
// to defaults check for it with errors.Is.
var ErrNonInteractive = errors.New("input needed but running non-interactively (-I)")

// Prompter asks the player questions during game setup.
type Prompter interface {
	// Select starts on defaultValue when it is one of options.
	Select(title string, options []string, defaultValue string) (string, error)

	// Input reads free text. validate may be nil.
	Input(title string, defaultValue string, validate func(string) error) (string, error)

	Confirm(title string, defaultValue bool) (bool, error)
}

// NoopPrompter refuses every question.
type NoopPrompter struct{}

func (*NoopPrompter) Select(string, []string, string) (string, error) {
	return "", ErrNonInteractive
}

func (*NoopPrompter) Input(string, string, func(string) error) (string, error) {
	return "", ErrNonInteractive
}

func (*NoopPrompter) Confirm(string, bool) (bool, error) {
	return false, ErrNonInteractive
}
