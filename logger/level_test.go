package logger

import (
	"errors"
	"testing"
)

func TestLevelAttributes(t *testing.T) {
	cases := []struct {
		level Level
		value int
		name  string
		char  rune
	}{
		{DebugLevel, 0, "DEBUG", '#'},
		{InfoLevel, 1, "INFO", 'i'},
		{WarnLevel, 2, "WARNING", '!'},
		{ErrorLevel, 3, "ERROR", 'X'},
		{NoneLevel, 100, "NONE", '-'},
	}
	for _, c := range cases {
		if int(c.level) != c.value {
			t.Errorf("%s: value %d, want %d", c.name, int(c.level), c.value)
		}
		if got := c.level.String(); got != c.name {
			t.Errorf("String() = %q, want %q", got, c.name)
		}
		if got := c.level.Char(); got != c.char {
			t.Errorf("%s: Char() = %q, want %q", c.name, got, c.char)
		}
		if !c.level.Valid() {
			t.Errorf("%s should be valid", c.name)
		}
		if c.level.Color() == "" {
			t.Errorf("%s should have a color", c.name)
		}
	}
}

func TestLevelAttributes_Invalid(t *testing.T) {
	l := Level(5)
	if l.Valid() {
		t.Fatal("Level(5) should be invalid")
	}
	if got := l.String(); got != "Level(5)" {
		t.Fatalf("String() = %q", got)
	}
	if got := l.Char(); got != '?' {
		t.Fatalf("Char() = %q", got)
	}
}

func TestLevelTable_MatchesOrdinals(t *testing.T) {
	for i, info := range levelTable[:len(levelTable)-1] {
		if int(info.level) != i {
			t.Errorf("entry %d holds %s", i, info.level)
		}
	}
	if last := levelTable[len(levelTable)-1]; last.level != NoneLevel {
		t.Errorf("last entry should be NONE, got %s", last.level)
	}
}

func TestLevels_Ascending(t *testing.T) {
	levels := Levels()
	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Fatalf("levels not ascending at %d: %v", i, levels)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		" Warn ":  WarnLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
		"none":    NoneLevel,
		"3":       ErrorLevel,
		"100":     NoneLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}

	for _, in := range []string{"", "verbose", "4", "-1"} {
		if _, err := ParseLevel(in); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("ParseLevel(%q) should fail with ErrInvalidLevel, got %v", in, err)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	cases := map[string]ColorMode{"": ColorAuto, "auto": ColorAuto, "ALWAYS": ColorAlways, "never": ColorNever}
	for in, want := range cases {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Errorf("ParseColorMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseColorMode("rainbow"); err == nil {
		t.Error("expected error for unknown color mode")
	}
}
