package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// levelSourceHandler wraps a handler and attaches source location only for
// selected levels. The wrapped handler must be built with AddSource: false.
type levelSourceHandler struct {
	handler      slog.Handler
	sourceLevels map[slog.Level]bool
}

// NewLevelSourceHandler returns a handler that records source location only
// for the given levels. Keeps routine info/debug lines short while warn and
// error stay traceable.
func NewLevelSourceHandler(handler slog.Handler, levels ...slog.Level) slog.Handler {
	levelMap := make(map[slog.Level]bool, len(levels))
	for _, level := range levels {
		levelMap[level] = true
	}
	return &levelSourceHandler{
		handler:      handler,
		sourceLevels: levelMap,
	}
}

func (h *levelSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.sourceLevels[r.Level] {
		// Skip this frame plus the slog internal frame.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		fs := runtime.CallersFrames(pcs[:])
		f, _ := fs.Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: f.Function,
				File:     f.File,
				Line:     f.Line,
			}),
		})
	}

	return h.handler.Handle(ctx, r)
}

func (h *levelSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelSourceHandler{
		handler:      h.handler.WithAttrs(attrs),
		sourceLevels: h.sourceLevels,
	}
}

func (h *levelSourceHandler) WithGroup(name string) slog.Handler {
	return &levelSourceHandler{
		handler:      h.handler.WithGroup(name),
		sourceLevels: h.sourceLevels,
	}
}

func (h *levelSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
