package cli

import (
	"fmt"
	"strconv"

	fcerr "github.com/amterp/freecell/internal/errors"
	"github.com/amterp/freecell/internal/service"
	"github.com/amterp/ra"
)

// unsetCount is the default for count flags, meaning "use settings".
const unsetCount = -1

// GameFlags are the game-shaping flags shared by play and deal.
type GameFlags struct {
	Cascades  int
	Opens     int
	Mode      string
	NoShuffle bool
	Seed      string
	Plain     bool
}

// Overrides converts explicitly given flags into settings overrides.
func (f GameFlags) Overrides() service.Overrides {
	var o service.Overrides
	if f.Cascades != unsetCount {
		o.Cascades = &f.Cascades
	}
	if f.Opens != unsetCount {
		o.Opens = &f.Opens
	}
	if f.Mode != "" {
		o.Mode = &f.Mode
	}
	if f.NoShuffle {
		shuffle := false
		o.Shuffle = &shuffle
	}
	if f.Plain {
		styled := false
		o.Styled = &styled
	}
	return o
}

// ParseSeed returns the seed flag as a number, or nil when not given.
func (f GameFlags) ParseSeed() (*uint64, error) {
	if f.Seed == "" {
		return nil, nil
	}
	seed, err := strconv.ParseUint(f.Seed, 10, 64)
	if err != nil {
		return nil, fcerr.InvalidField("seed", fmt.Sprintf("%q is not a non-negative integer", f.Seed))
	}
	return &seed, nil
}

// hasLayout reports whether any flag already decides the board layout.
func (f GameFlags) hasLayout() bool {
	return f.Cascades != unsetCount || f.Opens != unsetCount || f.Mode != ""
}

// registerGameFlags adds the layout flags common to play and deal.
func registerGameFlags(cmd *ra.Cmd, cascades, opens **int, noShuffle **bool, seed **string, plain **bool) {
	*cascades, _ = ra.NewInt("cascades").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault(unsetCount).
		SetUsage("Number of cascade piles (at least 4). Defaults to settings.").
		Register(cmd)

	*opens, _ = ra.NewInt("opens").
		SetShort("o").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault(unsetCount).
		SetUsage("Number of open cells (at least 1). Defaults to settings.").
		Register(cmd)

	*noShuffle, _ = ra.NewBool("no-shuffle").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Deal the canonical deck in order").
		Register(cmd)

	*seed, _ = ra.NewString("seed").
		SetShort("s").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Shuffle seed, to replay a deal").
		Register(cmd)

	*plain, _ = ra.NewBool("plain").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Disable colored output").
		Register(cmd)
}
