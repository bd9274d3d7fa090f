package encode

import (
	"fmt"

	"github.com/fatih/color"
)

type colorAttr int

const (
	sectionColor colorAttr = iota
	keyColor
	valueColor
	commentColor
)

// Colors maps output elements to sprintf-style colorizers.
type Colors struct {
	Map map[colorAttr]func(string, ...any) string
}

// NewColors returns the default palette.
func NewColors() *Colors {
	return &Colors{
		Map: map[colorAttr]func(string, ...any) string{
			sectionColor: color.RGB(196, 96, 16).SprintfFunc(),
			keyColor:     color.CyanString,
			valueColor:   color.WhiteString,
			commentColor: color.BlueString,
		},
	}
}

func (c *Colors) color(attr colorAttr, msg string, args ...any) string {
	f, ok := c.Map[attr]
	if !ok {
		return sprintf(msg, args...)
	}
	return f(msg, args...)
}

func sprintf(msg string, args ...any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
