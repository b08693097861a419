package test_helpers

import (
	"io"
	"log/slog"

	"github.com/chainguard-dev/clog"
)

// Logger returns a debug level logger writing to w, usually GinkgoWriter
func Logger(w io.Writer) *clog.Logger {
	return clog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
