// Package logger provides a small leveled logger that writes glyph-tagged,
// timestamped lines to the console and to an append-only file.
//
// # Output
//
// Every record is one line:
//
//	[i]    18.10.2026 14:03:22    server started
//
// DEBUG and ERROR records carry a second line with the call site:
//
//	[X]    18.10.2026 14:03:22    connection lost
//	                              -/src/app/net.go\net.(*Conn).Read (88)-
//
// Glyphs are '#' DEBUG, 'i' INFO, '!' WARNING, 'X' ERROR and '-' NONE. On a
// terminal the "[glyph]" marker is colored; set Config.Color to force or
// disable colors. The file copy never contains color sequences.
//
// # Usage
//
//	log := logger.New(logger.Config{Level: logger.InfoLevel, FilePath: "dev/log.txt"})
//	log.Log(logger.InfoLevel, "ready")
//	log.Errorf("failed to connect: %v", err)
//
// A process-wide default is available through Init and the package-level
// functions, and Static writes a single record without any Logger at all.
//
// # Level Filtering
//
// A record is written when its level is at or above the logger's minimum
// level. NoneLevel as the minimum silences the logger. Calls never panic;
// every rejection or write failure is reported as a false result and
// (*Logger).Err explains it.
package logger
