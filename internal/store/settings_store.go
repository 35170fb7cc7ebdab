package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	fcerr "github.com/amterp/freecell/internal/errors"
	"github.com/amterp/freecell/internal/model"
	"github.com/amterp/freecell/internal/version"
)

// FileSettingsStore implements SettingsStore as a TOML file.
type FileSettingsStore struct {
	path string
}

// NewSettingsStore creates a store for the settings file at path. An empty
// path (no home directory) behaves as a store that never has a file.
func NewSettingsStore(path string) *FileSettingsStore {
	return &FileSettingsStore{path: path}
}

// Path returns the settings file location.
func (s *FileSettingsStore) Path() string {
	return s.path
}

// Exists reports whether the settings file is present.
func (s *FileSettingsStore) Exists() bool {
	if s.path == "" {
		return false
	}
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads settings from disk. Keys absent from the file keep their
// defaults, and a missing file yields DefaultSettings.
func (s *FileSettingsStore) Load() (*model.Settings, error) {
	settings := model.DefaultSettings()
	if s.path == "" {
		return &settings, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &settings, nil
		}
		return nil, err
	}

	return ParseSettings(s.path, data)
}

// ParseSettings decodes a settings file body over the defaults and applies
// the same strict checks as Load. path is only used in error messages.
func ParseSettings(path string, data []byte) (*model.Settings, error) {
	settings := model.DefaultSettings()
	meta, err := toml.Decode(string(data), &settings)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Strict version validation
	if settings.FreecellSchema == "" {
		return nil, version.MissingSettingsSchema(path)
	}
	if settings.FreecellSchema != version.CurrentSettingsSchema() {
		return nil, version.InvalidSettingsSchema(path, settings.FreecellSchema)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fcerr.InvalidField("settings", fmt.Sprintf("unknown key(s) in %s: %s", path, strings.Join(keys, ", ")))
	}

	return &settings, nil
}

// Save writes settings to disk, stamping the current schema.
func (s *FileSettingsStore) Save(settings *model.Settings) error {
	settings.FreecellSchema = version.CurrentSettingsSchema()

	if s.path == "" {
		return fcerr.InvalidField("settings", "cannot determine settings location (no home directory)")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(settings)
}
