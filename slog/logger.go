package slog

import (
	"io"
	"log/slog"
	"strings"

	"github.com/fwojciec/compass"
)

// NewLogger returns a text logger writing to w at the named level
// ("debug", "info", "warn" or "error").
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, compass.Errorf(compass.EINVALID, "unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}
