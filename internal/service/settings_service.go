package service

import (
	"fmt"

	fcerr "github.com/amterp/freecell/internal/errors"
	"github.com/amterp/freecell/internal/game"
	"github.com/amterp/freecell/internal/model"
	"github.com/amterp/freecell/internal/store"
)

// Overrides are per-invocation values that win over stored settings.
// Nil fields fall through to the settings file.
type Overrides struct {
	Cascades *int
	Opens    *int
	Mode     *string
	Shuffle  *bool
	Styled   *bool
}

// GameConfig is a validated, fully resolved set of game parameters.
type GameConfig struct {
	Cascades int
	Opens    int
	Mode     game.Mode
	Shuffle  bool
	Styled   bool
}

// SettingsService loads, validates and resolves user settings.
type SettingsService struct {
	store store.SettingsStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store store.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Path returns where settings are stored.
func (s *SettingsService) Path() string {
	return s.store.Path()
}

// Load returns the stored settings, validated.
func (s *SettingsService) Load() (*model.Settings, error) {
	settings, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if err := ValidateSettings(*settings); err != nil {
		return nil, fmt.Errorf("%s: %w", s.store.Path(), err)
	}
	return settings, nil
}

// Init writes default settings. An existing file is only replaced with force.
func (s *SettingsService) Init(force bool) error {
	if s.store.Exists() && !force {
		return fcerr.InvalidField("settings", fmt.Sprintf("%s already exists (use --force to overwrite)", s.store.Path()))
	}
	settings := model.DefaultSettings()
	return s.store.Save(&settings)
}

// Resolve applies overrides to the stored settings and validates the result.
func (s *SettingsService) Resolve(o Overrides) (GameConfig, error) {
	settings, err := s.store.Load()
	if err != nil {
		return GameConfig{}, err
	}

	merged := *settings
	if o.Cascades != nil {
		merged.Cascades = *o.Cascades
	}
	if o.Opens != nil {
		merged.Opens = *o.Opens
	}
	if o.Mode != nil {
		merged.Mode = *o.Mode
	}
	if o.Shuffle != nil {
		merged.Shuffle = *o.Shuffle
	}
	if o.Styled != nil {
		merged.Styled = *o.Styled
	}

	if err := ValidateSettings(merged); err != nil {
		return GameConfig{}, err
	}
	mode, _ := game.ParseMode(merged.Mode)
	return GameConfig{
		Cascades: merged.Cascades,
		Opens:    merged.Opens,
		Mode:     mode,
		Shuffle:  merged.Shuffle,
		Styled:   merged.Styled,
	}, nil
}

// ValidateSettings checks values a board would reject, so bad settings are
// reported by name before a game starts.
func ValidateSettings(settings model.Settings) error {
	if settings.Cascades < game.MinCascades {
		return fcerr.InvalidField("cascades", fmt.Sprintf("must be at least %d, got %d", game.MinCascades, settings.Cascades))
	}
	if settings.Opens < game.MinOpens {
		return fcerr.InvalidField("opens", fmt.Sprintf("must be at least %d, got %d", game.MinOpens, settings.Opens))
	}
	if _, err := game.ParseMode(settings.Mode); err != nil {
		return err
	}
	return nil
}
