package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns console logger writing to w. Unknown level falls back to
// info, the returned bool is false in that case.
func New(level string, w io.Writer) (zerolog.Logger, bool) {
	lvl, err := zerolog.ParseLevel(level)
	ok := err == nil
	if !ok || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), ok
}
