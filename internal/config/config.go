// Package config resolves all runtime configuration once at startup. The
// extraction-engine binary path in particular is resolved here, before any
// request is served, so no job can ever run against an unset path.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"time"
)

const (
	defaultAddr       = "localhost:5000"
	defaultTempDir    = "./temp"
	defaultJobTimeout = 10 * time.Minute
	defaultEngineName = "yt-dlp"
	defaultFFmpegName = "ffmpeg"
)

type Config struct {
	Addr         string
	TempDir      string
	EngineBinary string
	FFmpegPath   string
	JobTimeout   time.Duration
	CertFile     string
	KeyFile      string
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr:       envOr("CLIPFORGE_ADDR", defaultAddr),
		TempDir:    envOr("CLIPFORGE_TEMP_DIR", defaultTempDir),
		JobTimeout: defaultJobTimeout,
	}

	if timeoutStr, ok := os.LookupEnv("CLIPFORGE_JOB_TIMEOUT"); ok {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid CLIPFORGE_JOB_TIMEOUT: %w", err)
		}
		cfg.JobTimeout = timeout
	}

	binary, err := resolveBinary("YTDLP_PATH", defaultEngineName)
	if err != nil {
		return nil, fmt.Errorf("extraction engine unavailable: %w", err)
	}
	cfg.EngineBinary = binary

	// ffmpeg is optional: without it the engine skips merge/convert steps.
	if ffmpeg, err := resolveBinary("FFMPEG_PATH", defaultFFmpegName); err == nil {
		cfg.FFmpegPath = ffmpeg
	}

	cfg.CertFile = os.Getenv("HTTPS_CERT_FILE")
	cfg.KeyFile = os.Getenv("HTTPS_KEY_FILE")

	return cfg, nil
}

func (c *Config) TLS() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// resolveBinary prefers an explicitly configured path and falls back to a
// one-time PATH lookup; the result is pinned for the process lifetime.
func resolveBinary(envKey, name string) (string, error) {
	if path, ok := os.LookupEnv(envKey); ok && path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%s points to %s: %w", envKey, path, err)
		}
		return path, nil
	}

	return exec.LookPath(name)
}
