package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Color is one of the 16 standard terminal colors
type Color int

const (
	ColorNone Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	White
	LightBlack
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightPurple
	LightCyan
	LightWhite
)

var colorNames = map[string]Color{
	"":             ColorNone,
	"none":         ColorNone,
	"black":        Black,
	"red":          Red,
	"green":        Green,
	"yellow":       Yellow,
	"blue":         Blue,
	"purple":       Purple,
	"magenta":      Purple,
	"cyan":         Cyan,
	"white":        White,
	"light_black":  LightBlack,
	"gray":         LightBlack,
	"light_red":    LightRed,
	"light_green":  LightGreen,
	"light_yellow": LightYellow,
	"light_blue":   LightBlue,
	"light_purple": LightPurple,
	"light_cyan":   LightCyan,
	"light_white":  LightWhite,
}

// ParseColor parses a color name such as "red" or "light_cyan"
func ParseColor(name string) (Color, error) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ColorNone, fmt.Errorf("unknown color: %s", name)
	}
	return c, nil
}

// fg returns the SGR foreground code for c
func (c Color) fg() pterm.Color {
	switch {
	case c >= Black && c <= White:
		return pterm.FgBlack + pterm.Color(c-Black)
	case c >= LightBlack && c <= LightWhite:
		return pterm.FgDarkGray + pterm.Color(c-LightBlack)
	}
	return pterm.FgDefault
}

// bg returns the SGR background code for c, which is always fg + 10
func (c Color) bg() pterm.Color {
	return c.fg() + 10
}

// TextStyle is a set of SGR attributes. The zero value is a pass-through.
type TextStyle struct {
	FG         Color
	BG         Color
	Bold       bool
	Faint      bool
	Italic     bool
	Underline  bool
	BlinkSlow  bool
	BlinkFast  bool
	CrossedOut bool
}

// Codes returns the SGR attributes the style enables, colors first
func (s TextStyle) Codes() []pterm.Color {
	var codes []pterm.Color
	if s.FG != ColorNone {
		codes = append(codes, s.FG.fg())
	}
	if s.BG != ColorNone {
		codes = append(codes, s.BG.bg())
	}
	attrs := []struct {
		on   bool
		code pterm.Color
	}{
		{s.Bold, pterm.Bold},
		{s.Faint, pterm.Fuzzy},
		{s.Italic, pterm.Italic},
		{s.Underline, pterm.Underscore},
		{s.BlinkSlow, pterm.Blink},
		{s.BlinkFast, pterm.FastBlink},
		{s.CrossedOut, pterm.Strikethrough},
	}
	for _, a := range attrs {
		if a.on {
			codes = append(codes, a.code)
		}
	}
	return codes
}

// IsZero reports whether the style carries no attribute
func (s TextStyle) IsZero() bool {
	return len(s.Codes()) == 0
}

// Format implements Formatter
func (s TextStyle) Format(text string) string {
	codes := s.Codes()
	if len(codes) == 0 {
		return text
	}
	return pterm.NewStyle(codes...).Sprint(text)
}

// Disable turns colored output off for every backend this package uses
func Disable() {
	pterm.DisableColor()
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Enable turns colored output back on
func Enable() {
	pterm.EnableColor()
	lipgloss.SetColorProfile(termenv.ANSI256)
}
