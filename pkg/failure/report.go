package failure

import (
	"context"
	"log/slog"
	"net/http"
)

// Report logs err on the reporting side channel. Validation failures are
// never reported. Client errors log at info and everything else at error.
// Report recovers from a panicking handler and has no effect on the Response.
func Report(ctx context.Context, logger *slog.Logger, err error) {
	if logger == nil || err == nil || !ShouldReport(err) {
		return
	}

	defer func() {
		_ = recover()
	}()

	resp, _ := Classify(err, false)
	level := slog.LevelError
	if resp.Status() < http.StatusInternalServerError {
		level = slog.LevelInfo
	}

	logger.Log(ctx, level, "request failed",
		"kind", Kind(err),
		"status", resp.Status(),
		"error", err,
	)
}

// ShouldReport reports whether err belongs on the reporting side channel.
func ShouldReport(err error) bool {
	_, skip := match(err).(*ValidationFailed)
	return !skip
}
