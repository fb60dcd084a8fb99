package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/clipforge/clipforge/internal/engine"
)

const (
	// Containers every browser handles; the dedup walk pairs each height
	// with both.
	nativeContainer = "mp4"
	webContainer    = "webm"

	// The universal-compatibility audio codec; other codecs get a converted
	// twin targeting it.
	universalAudio = "mp3"
)

// Build normalizes one raw metadata document into the option catalog.
func Build(meta *engine.Metadata, originalURL string) *Catalog {
	return &Catalog{
		Title:     meta.Title,
		Thumbnail: meta.Thumbnail,
		Duration:  meta.Duration,
		Formats: FormatOptions{
			Video: videoOptions(meta.Formats),
			Audio: audioOptions(meta.Formats),
		},
		Thumbnails:  thumbnailOptions(meta.Thumbnails),
		Subtitles:   subtitleOptions(meta),
		OriginalURL: originalURL,
	}
}

// videoOptions walks video-only descriptors from the highest height down and
// emits two container variants per distinct height. Later descriptors with an
// already-seen height are necessarily equal or lower quality and are skipped.
func videoOptions(formats []engine.FormatDescriptor) []VideoOption {
	sorted := make([]engine.FormatDescriptor, len(formats))
	copy(sorted, formats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Height > sorted[j].Height
	})

	seen := make(map[int]bool)
	options := []VideoOption{}
	for _, f := range sorted {
		if !f.HasVideo() || f.HasAudio() || f.Height == 0 || seen[f.Height] {
			continue
		}
		seen[f.Height] = true

		resolution := fmt.Sprintf("%dp", f.Height)
		options = append(options,
			VideoOption{
				ID:          f.FormatID,
				Ext:         nativeContainer,
				Resolution:  resolution,
				Height:      f.Height,
				Filesize:    f.Filesize,
				Note:        "High Quality",
				OriginalExt: f.Ext,
			},
			VideoOption{
				ID:          f.FormatID,
				Ext:         webContainer,
				Resolution:  resolution,
				Height:      f.Height,
				Filesize:    f.Filesize,
				Note:        "WebM",
				OriginalExt: f.Ext,
			},
		)
	}

	return options
}

// audioOptions keeps one audio-only descriptor per distinct rounded bitrate,
// best first, and adds a conversion variant for non-mp3 sources.
func audioOptions(formats []engine.FormatDescriptor) []AudioOption {
	var audio []engine.FormatDescriptor
	for _, f := range formats {
		if f.HasAudio() && !f.HasVideo() {
			audio = append(audio, f)
		}
	}
	sort.SliceStable(audio, func(i, j int) bool {
		return audio[i].ABR > audio[j].ABR
	})

	seen := make(map[int]bool)
	options := []AudioOption{}
	for _, f := range audio {
		kbps := int(math.Round(f.ABR))
		if kbps <= 0 || seen[kbps] {
			continue
		}
		seen[kbps] = true

		resolution := fmt.Sprintf("%dkbps", kbps)
		options = append(options, AudioOption{
			ID:         f.FormatID,
			Ext:        f.Ext,
			Bitrate:    kbps,
			Resolution: resolution,
			Filesize:   f.Filesize,
			Note:       fmt.Sprintf("Original (%s)", strings.ToUpper(f.Ext)),
		})

		if f.Ext != universalAudio {
			options = append(options, AudioOption{
				ID:         f.FormatID,
				Ext:        universalAudio,
				Bitrate:    kbps,
				Resolution: resolution,
				Filesize:   f.Filesize,
				Note:       "Converted to MP3",
			})
		}
	}

	return options
}

// thumbnailOptions reverses the engine's ascending-quality list so the best
// entries surface first.
func thumbnailOptions(thumbs []engine.ThumbnailInfo) []ThumbnailOption {
	options := make([]ThumbnailOption, 0, len(thumbs))
	for i := len(thumbs) - 1; i >= 0; i-- {
		t := thumbs[i]
		resolution := t.Resolution
		if resolution == "" {
			if t.Width > 0 && t.Height > 0 {
				resolution = fmt.Sprintf("%dx%d", t.Width, t.Height)
			} else {
				resolution = "Unknown"
			}
		}
		options = append(options, ThumbnailOption{
			ID:         t.ID,
			URL:        t.URL,
			Width:      t.Width,
			Height:     t.Height,
			Resolution: resolution,
		})
	}
	return options
}

func subtitleOptions(meta *engine.Metadata) []SubtitleOption {
	options := []SubtitleOption{}
	options = appendCaptions(options, meta.Subtitles, false)
	options = appendCaptions(options, meta.AutomaticCaptions, true)
	return options
}

// appendCaptions flattens one caption map. Language keys are visited in
// sorted order for a stable catalog; auto-generated tracks keep a distinct
// display name even when the language code matches a human track.
func appendCaptions(options []SubtitleOption, captions map[string][]engine.CaptionTrack, auto bool) []SubtitleOption {
	langs := make([]string, 0, len(captions))
	for lang := range captions {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	for _, lang := range langs {
		tracks := captions[lang]
		if len(tracks) == 0 {
			continue
		}

		name := tracks[0].Name
		if name == "" {
			name = lang
		}
		if auto {
			name += " (Auto)"
		}

		formats := make([]string, 0, len(tracks))
		for _, track := range tracks {
			formats = append(formats, track.Ext)
		}

		options = append(options, SubtitleOption{
			Language: lang,
			Name:     name,
			Auto:     auto,
			Formats:  formats,
		})
	}

	return options
}
