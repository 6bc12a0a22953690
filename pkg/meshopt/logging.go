package meshopt

import (
	"io"

	"golang.org/x/exp/slog"
)

// discardLogger is used whenever a caller does not supply one, so the
// core stays silent by default (spec §5: no I/O performed by a call).
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func logOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return discardLogger
	}
	return l
}
