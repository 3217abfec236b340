package cli

import (
	"fmt"
	"strings"

	"github.com/mordilloSan/glyphlog/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newLogCommand(v *viper.Viper) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "log [message...]",
		Short: "Log a message through a configured logger",
		Long: `Log a message. Without --at the message is logged at the logger's own
minimum level. An empty message is only accepted at level debug.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(v, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			message := strings.Join(args, " ")

			var ok bool
			if at == "" {
				ok = l.Print(message)
			} else {
				level, err := logger.ParseLevel(at)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
				ok = l.Log(level, message)
			}
			if !ok {
				return fmt.Errorf("message rejected: %w", l.Err())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "level of the message (default: the minimum level)")
	return cmd
}

func newStaticCommand(v *viper.Viper) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "static [message...]",
		Short: "Write one record without level filtering",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(at)
			if err != nil {
				return fmt.Errorf("--at: %w", err)
			}
			if !logger.StaticTo(cmd.OutOrStdout(), strings.Join(args, " "), level, v.GetString("file")) {
				return fmt.Errorf("static log failed")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "info", "level of the message")
	return cmd
}

func newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List levels with their values and glyphs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, l := range logger.Levels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %c  %s\n", int(l), l.Char(), l)
			}
		},
	}
}

func newDemoCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Write one record per level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(v, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if path := l.FilePath(); path != "" {
				l.Infof("Logging to file: %s", path)
			} else {
				l.Infof("Logging to console only")
			}
			l.Debugf("starting with threshold %s", l)
			l.Infof("hello %s", "world")
			l.Warnf("be careful")
			l.Errorf("oops: %v", "something happened")
			l.Print("")
			return nil
		},
	}
}
