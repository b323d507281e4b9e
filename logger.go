package tailor

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger sets the logger shared by the render backends and the config
// watcher. Drafting itself never logs. Pass nil to discard everything,
// which is the default.
//
// Records by level:
//   - [slog.LevelDebug]: each PDF or PNG page drawn, the PNG overview and
//     SVG sheet encoded, parameter file change events
//   - [slog.LevelInfo]: PDF document and page PNGs written, watch started,
//     parameter file reloaded
//   - [slog.LevelWarn]: watcher errors and failed reloads
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the logger set by [SetLogger].
func Logger() *slog.Logger {
	return logger.Load()
}
