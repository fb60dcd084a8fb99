// Package catalog normalizes a raw engine metadata document into the
// deduplicated set of selectable options presented to callers.
package catalog

// VideoOption is one selectable video rendition. Each distinct source height
// appears exactly twice: once as the native high-quality container and once
// as the web-friendly one, both selecting the same underlying format id.
type VideoOption struct {
	ID          string `json:"id"`
	Ext         string `json:"ext"`
	Resolution  string `json:"resolution"`
	Height      int    `json:"height"`
	Filesize    int64  `json:"filesize,omitempty"`
	Note        string `json:"note"`
	OriginalExt string `json:"original_ext"`
}

// AudioOption is one selectable audio rendition. Each distinct rounded
// bitrate appears once in its source container, plus an mp3-converted twin
// when the source is not already mp3.
type AudioOption struct {
	ID         string `json:"id"`
	Ext        string `json:"ext"`
	Bitrate    int    `json:"abr"`
	Resolution string `json:"resolution"`
	Filesize   int64  `json:"filesize,omitempty"`
	Note       string `json:"note"`
}

type ThumbnailOption struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Resolution string `json:"resolution"`
}

type SubtitleOption struct {
	Language string   `json:"lang"`
	Name     string   `json:"name"`
	Auto     bool     `json:"isAuto"`
	Formats  []string `json:"formats"`
}

type FormatOptions struct {
	Video []VideoOption `json:"video"`
	Audio []AudioOption `json:"audio"`
}

// Catalog is the normalized, caller-facing view of one media resource.
type Catalog struct {
	Title       string            `json:"title"`
	Thumbnail   string            `json:"thumbnail"`
	Duration    float64           `json:"duration"`
	Formats     FormatOptions     `json:"formats"`
	Thumbnails  []ThumbnailOption `json:"thumbnails"`
	Subtitles   []SubtitleOption  `json:"subtitles"`
	OriginalURL string            `json:"original_url"`
}
