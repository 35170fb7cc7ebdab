package service

import (
	"fmt"

	"github.com/amterp/freecell/internal/model"
	"github.com/amterp/freecell/internal/store"
)

var _ store.SettingsStore = (*testSettingsStore)(nil)

// testSettingsStore is an in-memory SettingsStore.
type testSettingsStore struct {
	settings *model.Settings
	loadErr  error
	saves    int
}

func newTestSettingsStore() *testSettingsStore {
	return &testSettingsStore{}
}

func (s *testSettingsStore) Load() (*model.Settings, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.settings == nil {
		d := model.DefaultSettings()
		return &d, nil
	}
	cp := *s.settings
	return &cp, nil
}

func (s *testSettingsStore) Save(settings *model.Settings) error {
	settings.FreecellSchema = "settings/1"
	cp := *settings
	s.settings = &cp
	s.saves++
	return nil
}

func (s *testSettingsStore) Exists() bool {
	return s.settings != nil
}

func (s *testSettingsStore) Path() string {
	return "/test/config.toml"
}

// counterIDs yields g1, g2, ...
type counterIDs struct {
	n int
}

func (c *counterIDs) Generate() string {
	c.n++
	return fmt.Sprintf("g%d", c.n)
}
