package game

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/jp-mud/internal/errors"
)

// DefaultThemes flavour the world prompt
var DefaultThemes = []string{
	"set around a mountain shrine",
	"set in a bustling harbor town",
	"set in a quiet farming village",
	"set near an old castle town",
	"set along a forest pilgrimage road",
	"set in a hot spring resort",
}

// ThemeRoller picks a world theme with a die roll
type ThemeRoller struct {
	roller dice.Roller
	themes []string
}

// NewThemeRoller creates a theme roller. A nil roller uses the toolkit default
// and empty themes use DefaultThemes.
func NewThemeRoller(roller dice.Roller, themes []string) *ThemeRoller {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	if len(themes) == 0 {
		themes = DefaultThemes
	}
	return &ThemeRoller{roller: roller, themes: themes}
}

// Roll returns one theme
func (t *ThemeRoller) Roll() (string, error) {
	n, err := t.roller.Roll(len(t.themes))
	if err != nil {
		return "", errors.Wrap(err, "failed to roll theme")
	}
	if n < 1 || n > len(t.themes) {
		return "", errors.Internalf("theme roll out of range: %d", n)
	}
	return t.themes[n-1], nil
}
