package errs

import "log/slog"

type LogErrorHandler struct {
	title string
}

func NewLogErrorHandler(title string) *LogErrorHandler {
	return &LogErrorHandler{title: title}
}

func (e *LogErrorHandler) PublicError(_ int, err error) {
	slog.Warn("Public error", "title", e.title, "err", err)
}

func (e *LogErrorHandler) PrivateError(err error) {
	slog.Warn("Private error", "title", e.title, "err", err)
}
