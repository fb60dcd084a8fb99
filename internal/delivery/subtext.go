package delivery

import (
	"regexp"
	"strings"
)

var (
	cueIndexPattern     = regexp.MustCompile(`(?m)^\d+$`)
	srtTimingPattern    = regexp.MustCompile(`\d{2}:\d{2}:\d{2},\d{3} --> \d{2}:\d{2}:\d{2},\d{3}`)
	vttTimingPattern    = regexp.MustCompile(`\d{2}:\d{2}:\d{2}\.\d{3} --> \d{2}:\d{2}:\d{2}\.\d{3}`)
	webvttHeaderPattern = regexp.MustCompile(`WEBVTT.*`)
	blankRunPattern     = regexp.MustCompile(`\n\s*\n`)
	markupTagPattern    = regexp.MustCompile(`<[^>]*>`)
)

// SubtitleText reduces raw SRT or WebVTT caption content to plain narrative
// text. Step order is fixed: normalize line endings, strip cue indices, strip
// SRT then VTT timing lines, strip the WEBVTT header, collapse blank-line
// runs, strip inline markup tags, trim.
func SubtitleText(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = cueIndexPattern.ReplaceAllString(text, "")
	text = srtTimingPattern.ReplaceAllString(text, "")
	text = vttTimingPattern.ReplaceAllString(text, "")
	text = webvttHeaderPattern.ReplaceAllString(text, "")
	text = collapseBlankRuns(text)
	text = markupTagPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// collapseBlankRuns rewrites until stable: a single pass can leave a residual
// blank pair when stripped lines produced adjacent runs.
func collapseBlankRuns(text string) string {
	for {
		collapsed := blankRunPattern.ReplaceAllString(text, "\n")
		if collapsed == text {
			return collapsed
		}
		text = collapsed
	}
}

// SubtitleTextFilename derives the `.txt` download name from the discovered
// artifact name by dropping the caption-format extension.
func SubtitleTextFilename(name string) string {
	for _, ext := range []string{".srt", ".vtt", ".ass"} {
		name = strings.TrimSuffix(name, ext)
	}
	return name + ".txt"
}
