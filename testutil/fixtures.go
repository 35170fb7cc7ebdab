package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/freecell/internal/model"
)

// Cards parses card notation ("A♣", "10h", "QS") and fails the test on error.
func Cards(t *testing.T, specs ...string) []model.Card {
	t.Helper()

	cards := make([]model.Card, 0, len(specs))
	for _, s := range specs {
		c, err := model.ParseCard(s)
		if err != nil {
			t.Fatalf("bad card fixture %q: %v", s, err)
		}
		cards = append(cards, c)
	}
	return cards
}

// DescendingSuitDeck returns a deck that, dealt unshuffled into 4 cascades,
// gives cascade i the whole of suit i from king (bottom) to ace (top).
func DescendingSuitDeck() []model.Card {
	deck := make([]model.Card, 0, model.DeckSize)
	for r := model.MaxRank; r >= model.MinRank; r-- {
		for _, s := range model.Suits {
			deck = append(deck, model.MustCard(r, s))
		}
	}
	return deck
}

// TempConfigDir creates a temporary directory to stand in for the user's
// home directory and points HOME at it for the duration of the test.
func TempConfigDir(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "freecell-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	if err := os.MkdirAll(filepath.Join(dir, ".config"), 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	t.Setenv("HOME", dir)
	return dir
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
