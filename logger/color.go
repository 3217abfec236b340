package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode controls ANSI colors on the console sink.
type ColorMode int

const (
	// ColorAuto colors output only when it goes to a terminal and NO_COLOR is unset.
	ColorAuto ColorMode = iota
	// ColorAlways forces ANSI colors.
	ColorAlways
	// ColorNever disables colors.
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on", "true":
		return ColorAlways, nil
	case "never", "off", "false":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q", s)
}

// colorAllowedByEnv is evaluated once per process.
var colorAllowedByEnv = sync.OnceValue(func() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb"
})

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func colorEnabled(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal(w) && colorAllowedByEnv()
	}
}

// glyphStyles renders the "[<glyph>]" marker of each level for one console writer.
type glyphStyles struct {
	styles map[Level]lipgloss.Style
}

func newGlyphStyles(w io.Writer, mode ColorMode) glyphStyles {
	r := lipgloss.NewRenderer(w)
	if colorEnabled(w, mode) {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	gs := glyphStyles{styles: make(map[Level]lipgloss.Style, len(levelTable))}
	for _, info := range levelTable {
		gs.styles[info.level] = r.NewStyle().Foreground(info.color)
	}
	return gs
}

func (gs glyphStyles) render(level Level) string {
	marker := glyphMarker(level)
	if s, ok := gs.styles[level]; ok {
		return s.Render(marker)
	}
	return marker
}

func glyphMarker(level Level) string {
	return "[" + string(level.Char()) + "]"
}
