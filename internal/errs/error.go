package errs

import "errors"

// Caller-visible failures. The message strings are part of the API surface:
// clients match on them to distinguish retryable throttling from hard errors.
var (
	ErrMissingURL      = errors.New("URL is required")
	ErrMissingKind     = errors.New("Download type is required")
	ErrMissingLanguage = errors.New("Subtitle language is required")
	ErrRateLimited     = errors.New("Rate limit exceeded. Please try again later.")
	ErrMetadataFetch   = errors.New("Failed to fetch metadata")
	ErrSubtitleMissing = errors.New("Subtitle file missing - check availability")
	ErrFileMissing     = errors.New("File missing")
	ErrReadArtifact    = errors.New("Read error")
	ErrTempDir         = errors.New("FS error")
	ErrSpawn           = errors.New("Failed to start download process")
	ErrDownloadFailed  = errors.New("Download failed")
	ErrThumbnailFetch  = errors.New("Failed to download thumbnail")
)
