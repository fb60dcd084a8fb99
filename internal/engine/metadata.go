package engine

import "encoding/json"

// Metadata is the raw JSON document the engine emits in metadata mode.
// Only the fields the catalog builder consumes are mapped; absent or null
// values decode to zero values.
type Metadata struct {
	Title             string                    `json:"title"`
	Duration          float64                   `json:"duration"`
	Thumbnail         string                    `json:"thumbnail"`
	Formats           []FormatDescriptor        `json:"formats"`
	Thumbnails        []ThumbnailInfo           `json:"thumbnails"`
	Subtitles         map[string][]CaptionTrack `json:"subtitles"`
	AutomaticCaptions map[string][]CaptionTrack `json:"automatic_captions"`
}

// FormatDescriptor is one engine-reported encoding variant of the source
// media. VCodec/ACodec carry the literal "none" when the stream lacks that
// track.
type FormatDescriptor struct {
	FormatID string  `json:"format_id"`
	Ext      string  `json:"ext"`
	VCodec   string  `json:"vcodec"`
	ACodec   string  `json:"acodec"`
	Height   int     `json:"height"`
	ABR      float64 `json:"abr"`
	Filesize int64   `json:"filesize"`
}

const noCodec = "none"

func (f *FormatDescriptor) HasVideo() bool {
	return f.VCodec != noCodec && f.VCodec != ""
}

func (f *FormatDescriptor) HasAudio() bool {
	return f.ACodec != noCodec && f.ACodec != ""
}

// ThumbnailInfo is one entry of the engine's thumbnail list, emitted in
// ascending quality order.
type ThumbnailInfo struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Resolution string `json:"resolution"`
}

// CaptionTrack is one serialization of a subtitle language.
type CaptionTrack struct {
	Name string `json:"name"`
	Ext  string `json:"ext"`
}

func ParseMetadata(data []byte) (*Metadata, error) {
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
