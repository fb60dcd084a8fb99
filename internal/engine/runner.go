package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"sync"

	"github.com/clipforge/clipforge/internal/errs"
)

type RunOutcome int

const (
	// RunDone means the subprocess exited. The exit code is deliberately not
	// part of the outcome: partial successes (one of several subtitle
	// languages failing) exit non-zero yet still produce the artifact, so
	// file presence is the authoritative success signal.
	RunDone RunOutcome = iota

	// RunRateLimited means a rate-limit signature appeared on stderr. The
	// caller should answer immediately; the subprocess is abandoned and
	// reaped in the background.
	RunRateLimited
)

// stderrMonitor watches engine diagnostics chunk by chunk and fires once on
// the first rate-limit signature.
type stderrMonitor struct {
	logger  *slog.Logger
	once    sync.Once
	limited chan struct{}
}

func newStderrMonitor(logger *slog.Logger) *stderrMonitor {
	return &stderrMonitor{logger: logger, limited: make(chan struct{})}
}

func (m *stderrMonitor) Write(p []byte) (int, error) {
	chunk := string(p)
	m.logger.Debug("Engine stderr", "chunk", chunk)
	if IsRateLimitText(chunk) {
		m.once.Do(func() { close(m.limited) })
	}
	return len(p), nil
}

// Run spawns the engine with the given argument vector and waits for either
// process exit or a rate-limit signature, whichever comes first. On exit the
// returned error is nil even when the exit code was non-zero; spawn failures
// and timeout/cancellation expiries are reported as errors.
func (e *Engine) Run(ctx context.Context, args []string, logger *slog.Logger) (RunOutcome, error) {
	if e.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.jobTimeout)
		defer cancel()
	}

	monitor := newStderrMonitor(logger)
	cmd := exec.CommandContext(ctx, e.binaryPath, args...)
	cmd.Stderr = monitor

	logger.Info("Spawning extraction engine", "binary", e.binaryPath, "args", args)
	if err := cmd.Start(); err != nil {
		return RunDone, fmt.Errorf("%w: %v", errs.ErrSpawn, err)
	}

	waitCh := make(chan error, 1)
	go func() { waitCh <- cmd.Wait() }()

	select {
	case <-monitor.limited:
		logger.Warn("Upstream rate limit detected, abandoning subprocess")
		go func() { <-waitCh }()
		return RunRateLimited, nil

	case err := <-waitCh:
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Warn("Engine run aborted", "err", ctxErr)
			return RunDone, fmt.Errorf("engine aborted: %w", ctxErr)
		}
		if err != nil {
			// Non-fatal: file discovery decides success.
			logger.Debug("Engine exited with error", "err", err)
		}
		return RunDone, nil
	}
}
