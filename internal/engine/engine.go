// Package engine wraps the external extraction tool (yt-dlp or compatible)
// behind two invocation modes: a metadata probe that yields one JSON document
// and a download run that writes one artifact into the temp store. Argument
// translation, subprocess lifecycle and stderr monitoring live here; the
// engine itself is a black box.
package engine

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

type Engine struct {
	binaryPath string
	ffmpegPath string
	jobTimeout time.Duration
}

// New creates an engine handle. binaryPath must already be resolved to an
// executable; it is always passed to the subprocess explicitly rather than
// relying on ambient PATH discovery. ffmpegPath may be empty. jobTimeout
// bounds a single download run, zero means unbounded.
func New(binaryPath, ffmpegPath string, jobTimeout time.Duration) *Engine {
	return &Engine{binaryPath: binaryPath, ffmpegPath: ffmpegPath, jobTimeout: jobTimeout}
}

// FetchMetadata runs the engine in metadata mode and parses its stdout into
// the raw document. Any failure, engine or parse, comes back as one error:
// no partial document is ever returned.
func (e *Engine) FetchMetadata(ctx context.Context, url string) (*Metadata, error) {
	if e.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.jobTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, e.binaryPath, MetadataArgs(url)...)
	stdout, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("metadata probe: %w", err)
	}

	meta, err := ParseMetadata(stdout)
	if err != nil {
		return nil, fmt.Errorf("metadata parse: %w", err)
	}

	return meta, nil
}
