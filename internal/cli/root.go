// Package cli implements the glyphlog command, a small front end for the
// logger package.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mordilloSan/glyphlog/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment overrides, e.g. GLYPHLOG_LEVEL.
const envPrefix = "GLYPHLOG"

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree with its own viper instance so
// that settings never leak between invocations.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "glyphlog",
		Short: "Leveled console and file logging",
		Long: `glyphlog writes glyph-tagged, timestamped records to the console and
appends them to a log file.

Settings come from flags or from GLYPHLOG_LEVEL, GLYPHLOG_FILE and
GLYPHLOG_COLOR.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringP("level", "l", "debug", "minimum level: debug, info, warning, error, none")
	flags.StringP("file", "f", logger.DefaultFilePath, "append records to this file (empty disables)")
	flags.String("color", "auto", "console colors: auto, always, never")
	for _, key := range []string{"level", "file", "color"} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(
		newLogCommand(v),
		newStaticCommand(v),
		newLevelsCommand(),
		newDemoCommand(v),
	)
	return root
}

// newLogger builds a Logger from the resolved settings, writing console
// records to out.
func newLogger(v *viper.Viper, out io.Writer) (*logger.Logger, error) {
	level, err := logger.ParseLevel(v.GetString("level"))
	if err != nil {
		return nil, fmt.Errorf("--level: %w", err)
	}
	color, err := logger.ParseColorMode(v.GetString("color"))
	if err != nil {
		return nil, fmt.Errorf("--color: %w", err)
	}
	return logger.New(logger.Config{
		Level:    level,
		FilePath: v.GetString("file"),
		Color:    color,
		Output:   out,
	}), nil
}
