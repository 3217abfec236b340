package logger_test

import (
	"fmt"
	"time"

	"github.com/mordilloSan/glyphlog/logger"
)

// This example shows a console and file logger that skips DEBUG records.
func ExampleNew() {
	log := logger.New(logger.Config{Level: logger.InfoLevel, FilePath: logger.DefaultFilePath})
	log.Log(logger.DebugLevel, "not shown")
	log.Log(logger.InfoLevel, "ready")
	log.Errorf("oops: %v", "boom")
}

// This example uses the shared default logger.
func ExampleInit() {
	logger.Init(logger.Config{Level: logger.WarnLevel, Color: logger.ColorNever})
	logger.Infof("filtered")
	logger.Warnf("disk at %d%%", 91)
}

// Static writes one record before any configuration exists.
func ExampleStatic() {
	logger.Static("loading configuration", logger.InfoLevel, "")
}

func ExampleFormat() {
	r := logger.Record{
		Level:   logger.WarnLevel,
		Message: "low disk space",
		Time:    time.Date(2026, time.October, 18, 8, 30, 0, 0, time.Local),
	}
	fmt.Println(logger.Format(r))
	// Output: [!]    18.10.2026 08:30:00    low disk space
}

func ExampleLevel_Char() {
	for _, l := range logger.Levels() {
		fmt.Printf("%c %s\n", l.Char(), l)
	}
	// Output:
	// # DEBUG
	// i INFO
	// ! WARNING
	// X ERROR
	// - NONE
}
