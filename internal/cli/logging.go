package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// NewLogger returns a text logger writing to w. The configured level is
// lowered one step per verbose count and raised to error when quiet is set.
func NewLogger(w io.Writer, level string, verbose int, quiet bool) (*slog.Logger, error) {
	var lvl slog.Level
	if level != "" {
		if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
			return nil, ConfigError(fmt.Sprintf("invalid log level %q", level), nil)
		}
	}
	switch {
	case quiet:
		lvl = slog.LevelError
	case verbose > 0:
		lvl -= slog.Level(4 * verbose)
		if lvl < slog.LevelDebug {
			lvl = slog.LevelDebug
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
