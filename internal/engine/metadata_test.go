package engine

import "testing"

func TestParseMetadata(t *testing.T) {
	doc := `{
		"title": "Example",
		"duration": 212,
		"thumbnail": "https://example.com/t.jpg",
		"formats": [
			{"format_id": "137", "ext": "mp4", "vcodec": "avc1", "acodec": "none", "height": 1080, "filesize": 1234},
			{"format_id": "251", "ext": "webm", "vcodec": "none", "acodec": "opus", "abr": 129.8, "height": null, "filesize": null}
		],
		"thumbnails": [{"id": "0", "url": "https://example.com/0.jpg", "width": 120, "height": 90}],
		"subtitles": {"en": [{"name": "English", "ext": "vtt"}]},
		"automatic_captions": {"en": [{"ext": "vtt"}]}
	}`

	meta, err := ParseMetadata([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if meta.Title != "Example" || meta.Duration != 212 {
		t.Fatalf("Unexpected header fields: %+v", meta)
	}
	if len(meta.Formats) != 2 {
		t.Fatalf("Expected 2 formats, got %d", len(meta.Formats))
	}

	video := meta.Formats[0]
	if !video.HasVideo() || video.HasAudio() || video.Height != 1080 {
		t.Fatalf("Unexpected video descriptor: %+v", video)
	}

	audio := meta.Formats[1]
	if audio.HasVideo() || !audio.HasAudio() || audio.Height != 0 || audio.Filesize != 0 {
		t.Fatalf("Null fields must decode to zero values: %+v", audio)
	}

	if len(meta.Subtitles["en"]) != 1 || len(meta.AutomaticCaptions["en"]) != 1 {
		t.Fatalf("Caption maps not decoded: %+v", meta)
	}
}

func TestParseMetadataRejectsGarbage(t *testing.T) {
	if _, err := ParseMetadata([]byte("ERROR: not json")); err == nil {
		t.Fatal("Garbage input must fail to parse")
	}
}
