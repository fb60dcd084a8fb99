package engine

import (
	"fmt"

	"github.com/clipforge/clipforge/internal/temp"
)

// Identifying string sent upstream on metadata probes; some extractors serve
// degraded format lists to unknown clients.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Artifact name kinds, see temp.ArtifactName.
const (
	downloadArtifactKind = "download"
	subtitleArtifactKind = "sub"
)

// Final subtitle formats the engine converts to verbatim. The pseudo-formats
// srt/text/raw are handled separately: text starts from an SRT intermediate
// (stripping happens downstream) and raw from VTT so browsers can render it.
var verbatimSubtitleFormats = map[string]bool{
	"vtt": true,
	"ass": true,
	"lrc": true,
}

// DownloadPrefix returns the artifact prefix a job of the given kind writes
// under.
func DownloadPrefix(kind Kind, token string) string {
	if kind == KindSubtitle {
		return temp.ArtifactName(subtitleArtifactKind, token)
	}
	return temp.ArtifactName(downloadArtifactKind, token)
}

// MetadataArgs builds the argument vector for a metadata probe: one
// non-playlist JSON document on stdout, forced IPv4, browser-like UA.
func MetadataArgs(url string) []string {
	return []string{
		url,
		"--dump-json",
		"--no-playlist",
		"--force-ipv4",
		"--user-agent", userAgent,
	}
}

// DownloadArgs translates a validated request into the engine's argument
// vector. The output lands in store under DownloadPrefix(req.Kind, token).
func (e *Engine) DownloadArgs(req *DownloadRequest, token string, store *temp.Store) []string {
	args := []string{req.URL}

	if e.ffmpegPath != "" {
		args = append(args, "--ffmpeg-location", e.ffmpegPath)
	}

	switch req.Kind {
	case KindSubtitle:
		args = append(args,
			"-o", store.Path(DownloadPrefix(KindSubtitle, token)),
			"--skip-download",
			"--ignore-errors",
		)
		if req.AutoCaption {
			args = append(args, "--write-auto-sub")
		} else {
			args = append(args, "--write-sub")
		}
		args = append(args, "--sub-lang", req.Language)

		switch {
		case req.Format == "srt" || req.Format == "text":
			args = append(args, "--convert-subs", "srt")
		case req.Format == "raw":
			args = append(args, "--convert-subs", "vtt")
		case verbatimSubtitleFormats[req.Format]:
			args = append(args, "--convert-subs", req.Format)
		}

	case KindAudio:
		args = append(args,
			"-o", store.Path(DownloadPrefix(KindAudio, token))+".%(ext)s",
			"-x",
		)
		if req.Format == "mp3" {
			args = append(args, "--audio-format", "mp3", "--audio-quality", "0")
		} else {
			args = append(args, "--audio-format", req.Format)
		}

	default:
		args = append(args, "-o", store.Path(DownloadPrefix(KindVideo, token))+".%(ext)s")
		if req.Quality != "" {
			args = append(args, "-f", fmt.Sprintf("bestvideo[height=%s]+bestaudio/best[height<=%s]/best", req.Quality, req.Quality))
		} else {
			args = append(args, "-f", "bestvideo+bestaudio/best")
		}
		if req.Format != "" {
			args = append(args, "--merge-output-format", req.Format)
		}
	}

	return args
}
