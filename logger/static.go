package logger

import (
	"io"
	"sync"
)

// staticStyles is built on first use and shared by every Static call.
var staticStyles = sync.OnceValue(func() glyphStyles {
	return newGlyphStyles(outStdout, ColorAuto)
})

// Static formats and prints message without a Logger and without level
// filtering, appending it to filePath when one is given. An empty message
// becomes "Message was not passed.". It never panics: an invalid level,
// a write failure or anything else results in false.
func Static(message string, level Level, filePath string) bool {
	return staticAt(outStdout, staticStyles(), CallerAt(1), message, level, filePath)
}

// StaticTo is Static with the console record written to w instead of
// standard output.
func StaticTo(w io.Writer, message string, level Level, filePath string) bool {
	if w == nil {
		w = outStdout
	}
	return staticAt(w, newGlyphStyles(w, ColorAuto), CallerAt(1), message, level, filePath)
}

func staticAt(w io.Writer, styles glyphStyles, c Caller, message string, level Level, filePath string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	if !level.Valid() {
		return false
	}
	if message == "" {
		message = msgNoMessage
	}
	r := Record{Level: level, Message: message, Time: now(), Caller: c}
	block := formatRecord(r, styles.render(level))
	if err := writeConsole(w, block); err != nil {
		return false
	}
	if filePath != "" {
		if err := appendRecord(filePath, block); err != nil {
			return false
		}
	}
	return true
}
