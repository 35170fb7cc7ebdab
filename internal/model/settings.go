package model

// Settings are the user's defaults for new games.
// Stored at ~/.config/freecell/config.toml
// Schema changes require a version bump; see internal/version/version.go.
type Settings struct {
	FreecellSchema string `toml:"freecell_schema"`
	Cascades       int    `toml:"cascades"`
	Opens          int    `toml:"opens"`
	Mode           string `toml:"mode"`
	Shuffle        bool   `toml:"shuffle"`
	Styled         bool   `toml:"styled"`
	Editor         string `toml:"editor,omitempty"`
}

// DefaultSettings is the classic layout: 8 cascades, 4 open cells,
// multi-card moves, a shuffled deck and colored output.
func DefaultSettings() Settings {
	return Settings{
		Cascades: 8,
		Opens:    4,
		Mode:     "multi",
		Shuffle:  true,
		Styled:   true,
	}
}
