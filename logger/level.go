package logger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level defines log severity. Higher values are more severe.
type Level int

const (
	// DebugLevel is the most verbose level and the default threshold.
	DebugLevel Level = 0
	// InfoLevel is for informational messages.
	InfoLevel Level = 1
	// WarnLevel is for warnings.
	WarnLevel Level = 2
	// ErrorLevel is for errors.
	ErrorLevel Level = 3
	// NoneLevel sits above every real level; as a threshold it silences the logger.
	NoneLevel Level = 100
)

type levelInfo struct {
	level Level
	name  string
	char  rune
	color lipgloss.Color
}

// levelTable holds the fixed per-level attributes in ascending order. ANSI
// colors 6, 2, 3, 1, 7 are cyan, green, yellow, red and white.
var levelTable = [...]levelInfo{
	{level: DebugLevel, name: "DEBUG", char: '#', color: lipgloss.Color("6")},
	{level: InfoLevel, name: "INFO", char: 'i', color: lipgloss.Color("2")},
	{level: WarnLevel, name: "WARNING", char: '!', color: lipgloss.Color("3")},
	{level: ErrorLevel, name: "ERROR", char: 'X', color: lipgloss.Color("1")},
	{level: NoneLevel, name: "NONE", char: '-', color: lipgloss.Color("7")},
}

// lookup returns the table entry for l. The real levels are indexed by
// their ordinal; NONE is the last entry.
func (l Level) lookup() (levelInfo, bool) {
	switch {
	case l >= DebugLevel && l <= ErrorLevel:
		return levelTable[l], true
	case l == NoneLevel:
		return levelTable[len(levelTable)-1], true
	}
	return levelInfo{}, false
}

// Levels returns all levels in ascending order.
func Levels() []Level {
	levels := make([]Level, len(levelTable))
	for i, info := range levelTable {
		levels[i] = info.level
	}
	return levels
}

// Valid reports whether l is a member of the enumeration.
func (l Level) Valid() bool {
	_, ok := l.lookup()
	return ok
}

// String returns the level name, e.g. "WARNING".
func (l Level) String() string {
	if info, ok := l.lookup(); ok {
		return info.name
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// Char returns the single-character glyph shown in log lines.
func (l Level) Char() rune {
	if info, ok := l.lookup(); ok {
		return info.char
	}
	return '?'
}

// Color returns the terminal color used for the glyph.
func (l Level) Color() lipgloss.Color {
	if info, ok := l.lookup(); ok {
		return info.color
	}
	return lipgloss.Color("")
}

// ParseLevel parses a level name (case-insensitive) or its numeric value.
// "WARN" is accepted as an alias for WARNING.
func ParseLevel(s string) (Level, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "WARN" {
		return WarnLevel, nil
	}
	for _, info := range levelTable {
		if info.name == s {
			return info.level, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return DebugLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}
