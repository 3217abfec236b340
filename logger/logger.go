package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// DefaultFilePath is the conventional development log file. It is only a
// default for configuration layers; New never writes to a file unless
// Config.FilePath is set.
const DefaultFilePath = "dev/log.txt"

// Config defines options for New.
type Config struct {
	// Level is the minimum level emitted; an invalid value falls back to DebugLevel.
	// Default: DebugLevel
	Level Level
	// FilePath appends every record to this file (created on demand); empty disables file logging.
	// Default: "" (file logging disabled)
	FilePath string
	// Color selects ANSI coloring of the console output.
	// Default: ColorAuto
	Color ColorMode
	// Output receives console records.
	// Default: nil (stdout)
	Output io.Writer
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// Logger filters records by a minimum level and writes them to the console
// and, optionally, to an append-only file.
// It is safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	level    Level
	filePath string
	out      io.Writer
	styles   glyphStyles
	lastErr  error
}

// New returns a ready Logger. An invalid cfg.Level resets the threshold to
// DebugLevel and logs "Invalid level passed." through the new logger.
func New(cfg Config) *Logger {
	return newAt(CallerAt(1), cfg)
}

// newAt is New with the call site used for the invalid-level diagnostic.
func newAt(c Caller, cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = outStdout
	}
	l := &Logger{
		filePath: cfg.FilePath,
		out:      out,
		styles:   newGlyphStyles(out, cfg.Color),
	}
	l.setLevelAt(c, cfg.Level)
	return l
}

// SetLevel replaces the minimum level. An invalid level resets the
// threshold to DebugLevel, logs a diagnostic and returns false.
func (l *Logger) SetLevel(level Level) bool {
	return l.setLevelAt(CallerAt(1), level)
}

func (l *Logger) setLevelAt(c Caller, level Level) (ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			l.lastErr = fmt.Errorf("%w: %v", ErrWrite, r)
			ok = false
		}
	}()

	if !level.Valid() {
		l.level = DebugLevel
		l.diagnose(c, msgInvalidLevel)
		l.lastErr = fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
		return false
	}
	l.level = level
	l.lastErr = nil
	return true
}

// Level returns the current minimum level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// String returns the name of the current minimum level.
func (l *Logger) String() string {
	return l.Level().String()
}

// Char returns the glyph of the current minimum level.
func (l *Logger) Char() rune {
	return l.Level().Char()
}

// FilePath returns the configured log file, or "" when file logging is off.
func (l *Logger) FilePath() string {
	return l.filePath
}

// Err returns the reason the most recent Log, Print or SetLevel call
// returned false, or nil if it succeeded.
func (l *Logger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// Log writes message at level. It returns false when the level is invalid
// or below the threshold, when the message is empty on a non-DEBUG logger,
// or when a sink fails.
func (l *Logger) Log(level Level, message string) bool {
	return l.logAt(CallerAt(1), level, true, message)
}

// Print writes message at the logger's own minimum level. On a NONE
// logger it writes nothing and returns false.
func (l *Logger) Print(message string) bool {
	return l.logAt(CallerAt(1), DebugLevel, false, message)
}

// LogCaller is Log with an explicit call site instead of the captured one.
func (l *Logger) LogCaller(c Caller, level Level, message string) bool {
	return l.logAt(c, level, true, message)
}

// Debugf logs a debug message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) bool {
	return l.logAt(CallerAt(1), DebugLevel, true, fmt.Sprintf(format, v...))
}

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) bool {
	return l.logAt(CallerAt(1), InfoLevel, true, fmt.Sprintf(format, v...))
}

// Warnf logs a warning formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...any) bool {
	return l.logAt(CallerAt(1), WarnLevel, true, fmt.Sprintf(format, v...))
}

// Errorf logs an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) bool {
	return l.logAt(CallerAt(1), ErrorLevel, true, fmt.Sprintf(format, v...))
}

func (l *Logger) logAt(c Caller, level Level, explicit bool, message string) (ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			l.lastErr = fmt.Errorf("%w: %v", ErrWrite, r)
			ok = false
		}
	}()

	l.lastErr = l.logLocked(c, level, explicit, message)
	return l.lastErr == nil
}

func (l *Logger) logLocked(c Caller, level Level, explicit bool, message string) error {
	if !explicit {
		// A NONE threshold silences records without an explicit level.
		if l.level == NoneLevel {
			l.diagnose(c, msgFilteredOut)
			return fmt.Errorf("%w: no level under threshold %s", ErrFilteredOut, l.level)
		}
		level = l.level
	}
	if !level.Valid() {
		l.diagnose(c, msgInvalidLevel)
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}
	if level < l.level {
		l.diagnose(c, msgFilteredOut)
		return fmt.Errorf("%w: %s under threshold %s", ErrFilteredOut, level, l.level)
	}
	if message == "" {
		if l.level != DebugLevel {
			l.diagnose(c, msgMissingMessage)
			return ErrMissingMessage
		}
		message = msgNoMessage
	}
	return l.emit(Record{Level: level, Message: message, Time: now(), Caller: c})
}

// diagnose logs a DEBUG record about the logger itself. It goes through the
// same threshold but never produces a further diagnostic.
func (l *Logger) diagnose(c Caller, message string) {
	if l.level != DebugLevel {
		return
	}
	_ = l.emit(Record{Level: DebugLevel, Message: message, Time: now(), Caller: c})
}

// emit writes one record to the console and then the file. A console
// failure does not prevent the file append.
func (l *Logger) emit(r Record) error {
	block := formatRecord(r, l.styles.render(r.Level))
	var errs []error
	if err := writeConsole(l.out, block); err != nil {
		errs = append(errs, err)
	}
	if l.filePath != "" {
		if err := appendRecord(l.filePath, block); err != nil {
			errs = append(errs, err)
		}
	}
	err := errors.Join(errs...)
	if err != nil {
		fmt.Fprintf(outStderr, "glyphlog: %v\n", err)
	}
	return err
}
