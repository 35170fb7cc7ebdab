package store

import "github.com/amterp/freecell/internal/model"

// SettingsStore handles persistence of the user's game defaults.
type SettingsStore interface {
	Load() (*model.Settings, error)
	Save(settings *model.Settings) error
	Exists() bool
	Path() string
}
