package logger

import (
	"runtime"
	"strings"
)

// Caller identifies the call site that produced a record.
type Caller struct {
	File     string
	Function string
	Line     int
}

// CallerAt returns the caller skip frames above CallerAt's own caller,
// so CallerAt(0) describes the function calling CallerAt.
// The function name is shortened to "package.Function".
func CallerAt(skip int) Caller {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Caller{File: "unknown", Function: "unknown"}
	}
	c := Caller{File: file, Function: "unknown", Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		c.Function = shortFuncName(fn.Name())
	}
	return c
}

// shortFuncName strips the package path, keeping package.Function.
func shortFuncName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 && i+1 < len(full) {
		return full[i+1:]
	}
	return full
}
