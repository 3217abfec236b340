package logger

import (
	"fmt"
	"strings"
	"time"
)

const (
	fieldSeparator = "    "
	timeLayout     = "02.01.2006 15:04:05"
	callerIndent   = 30
)

// now is swapped in tests for a fixed clock.
var now = time.Now

// Record is a single log event. It lives only while it is being formatted.
type Record struct {
	Level   Level
	Message string
	Time    time.Time
	Caller  Caller
}

// Format renders r without colors:
//
//	[<glyph>]    <DD.MM.YYYY HH:MM:SS>    <message>
//
// DEBUG and ERROR records get a second, indented line naming the caller.
func Format(r Record) string {
	return formatRecord(r, glyphMarker(r.Level))
}

// CreateMessage formats message at level, stamped with the current time and
// the caller of CreateMessage.
func CreateMessage(level Level, message string) string {
	return Format(Record{Level: level, Message: message, Time: now(), Caller: CallerAt(1)})
}

func formatRecord(r Record, marker string) string {
	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(fieldSeparator)
	b.WriteString(r.Time.Local().Format(timeLayout))
	b.WriteString(fieldSeparator)
	b.WriteString(r.Message)
	if hasCallerLine(r.Level) {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", callerIndent))
		fmt.Fprintf(&b, "-%s\\%s (%d)-", r.Caller.File, r.Caller.Function, r.Caller.Line)
	}
	return b.String()
}

func hasCallerLine(level Level) bool {
	return level == DebugLevel || level == ErrorLevel
}
