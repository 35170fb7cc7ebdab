package id

import (
	"time"

	fid "github.com/amterp/flexid"
)

// Source produces unique game IDs.
type Source interface {
	Generate() string
}

type flexSource struct {
	gen *fid.Generator
}

func (s flexSource) Generate() string {
	return s.gen.MustGenerate()
}

var defaultSource Source

func init() {
	epoch := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	config := fid.NewConfig().
		WithEpoch(epoch).
		WithTickSize(10 * time.Millisecond).
		WithNumRandomChars(3)

	defaultSource = flexSource{gen: fid.MustNewGenerator(config)}
}

// Default returns the process-wide game ID source.
func Default() Source {
	return defaultSource
}

// Generate returns a new unique game ID.
func Generate() string {
	return defaultSource.Generate()
}
