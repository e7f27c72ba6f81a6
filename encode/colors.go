package encode

import "github.com/fatih/color"

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	ValueColor
	NullColor
	BlockColor
	CommentColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			KeyColor:     color.RGB(128, 168, 196).SprintfFunc(),
			ValueColor:   color.RGB(8, 196, 16).SprintfFunc(),
			NullColor:    color.RGB(168, 0, 196).SprintfFunc(),
			BlockColor:   color.RGB(198, 198, 46).SprintfFunc(),
			CommentColor: color.BlueString,
		},
	}
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}

func colorDefault(s string, args ...any) string {
	if len(args) == 0 {
		return s
	}
	return color.WhiteString(s, args...)
}
