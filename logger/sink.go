package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// pathLocks serializes appends to the same file across every Logger in the
// process and the Static path.
type pathLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var fileLocks = &pathLocks{locks: make(map[string]*sync.Mutex)}

func (p *pathLocks) get(path string) *sync.Mutex {
	key := filepath.Clean(path)
	if abs, err := filepath.Abs(key); err == nil {
		key = abs
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.locks[key]
	if !ok {
		l = &sync.Mutex{}
		p.locks[key] = l
	}
	return l
}

// appendRecord appends "\n"+block to path with ANSI sequences removed.
// The file is opened and closed on every call so the record is on disk
// before returning.
func appendRecord(path, block string) error {
	lock := fileLocks.get(path)
	lock.Lock()
	defer lock.Unlock()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create log directory: %w", ErrWrite, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open log file: %w", ErrWrite, err)
	}
	_, werr := f.WriteString("\n" + ansi.Strip(block))
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("%w: append to %s: %w", ErrWrite, path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("%w: close %s: %w", ErrWrite, path, cerr)
	}
	return nil
}

func writeConsole(w io.Writer, block string) error {
	if _, err := io.WriteString(w, block+"\n"); err != nil {
		return fmt.Errorf("%w: console: %w", ErrWrite, err)
	}
	return nil
}
