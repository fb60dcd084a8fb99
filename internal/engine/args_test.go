package engine

import (
	"slices"
	"strings"
	"testing"

	"github.com/clipforge/clipforge/internal/temp"
)

func testStore(t *testing.T) *temp.Store {
	t.Helper()
	store, err := temp.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("Unable to create temp store: %v", err)
	}
	return store
}

func hasFlag(args []string, flag, value string) bool {
	for i, a := range args {
		if a == flag && i+1 < len(args) && args[i+1] == value {
			return true
		}
	}
	return false
}

func TestMetadataArgs(t *testing.T) {
	args := MetadataArgs("https://example.com/v")

	if args[0] != "https://example.com/v" {
		t.Fatalf("URL must come first, got %q", args[0])
	}
	for _, flag := range []string{"--dump-json", "--no-playlist", "--force-ipv4"} {
		if !slices.Contains(args, flag) {
			t.Fatalf("Missing %s in %v", flag, args)
		}
	}
	if !hasFlag(args, "--user-agent", userAgent) {
		t.Fatalf("Missing user agent in %v", args)
	}
}

func TestVideoArgsWithQualityAndFormat(t *testing.T) {
	eng := New("/usr/bin/yt-dlp", "/usr/bin/ffmpeg", 0)
	store := testStore(t)

	req := &DownloadRequest{URL: "https://example.com/v", Kind: KindVideo, Quality: "1080", Format: "mp4"}
	args := eng.DownloadArgs(req, "tok", store)

	if !hasFlag(args, "-f", "bestvideo[height=1080]+bestaudio/best[height<=1080]/best") {
		t.Fatalf("Unexpected format selector in %v", args)
	}
	if !hasFlag(args, "--merge-output-format", "mp4") {
		t.Fatalf("Missing merge format in %v", args)
	}
	if !hasFlag(args, "--ffmpeg-location", "/usr/bin/ffmpeg") {
		t.Fatalf("ffmpeg location must be explicit in %v", args)
	}
	if !hasFlag(args, "-o", store.Path("download_tok")+".%(ext)s") {
		t.Fatalf("Unexpected output template in %v", args)
	}
}

func TestVideoArgsWithoutQuality(t *testing.T) {
	eng := New("yt-dlp", "", 0)
	req := &DownloadRequest{URL: "u", Kind: KindVideo}
	args := eng.DownloadArgs(req, "tok", testStore(t))

	if !hasFlag(args, "-f", "bestvideo+bestaudio/best") {
		t.Fatalf("Expected unconditional best selection, got %v", args)
	}
	if slices.Contains(args, "--merge-output-format") {
		t.Fatalf("No merge format requested, got %v", args)
	}
	if slices.Contains(args, "--ffmpeg-location") {
		t.Fatalf("No ffmpeg configured, got %v", args)
	}
}

func TestAudioArgs(t *testing.T) {
	eng := New("yt-dlp", "", 0)
	store := testStore(t)

	mp3 := eng.DownloadArgs(&DownloadRequest{URL: "u", Kind: KindAudio, Format: "mp3"}, "tok", store)
	if !slices.Contains(mp3, "-x") {
		t.Fatalf("Audio extraction flag missing in %v", mp3)
	}
	if !hasFlag(mp3, "--audio-format", "mp3") || !hasFlag(mp3, "--audio-quality", "0") {
		t.Fatalf("mp3 must request max quality encoding, got %v", mp3)
	}

	opus := eng.DownloadArgs(&DownloadRequest{URL: "u", Kind: KindAudio, Format: "opus"}, "tok", store)
	if !hasFlag(opus, "--audio-format", "opus") {
		t.Fatalf("Non-mp3 format must pass through, got %v", opus)
	}
	if slices.Contains(opus, "--audio-quality") {
		t.Fatalf("Quality flag reserved for mp3, got %v", opus)
	}
}

func TestSubtitleArgs(t *testing.T) {
	eng := New("yt-dlp", "", 0)
	store := testStore(t)

	cases := []struct {
		format    string
		converted string
	}{
		{"srt", "srt"},
		{"text", "srt"},
		{"raw", "vtt"},
		{"vtt", "vtt"},
		{"ass", "ass"},
		{"lrc", "lrc"},
	}

	for _, tc := range cases {
		req := &DownloadRequest{URL: "u", Kind: KindSubtitle, Language: "en", Format: tc.format}
		args := eng.DownloadArgs(req, "tok", store)

		for _, flag := range []string{"--skip-download", "--ignore-errors", "--write-sub"} {
			if !slices.Contains(args, flag) {
				t.Fatalf("format %s: missing %s in %v", tc.format, flag, args)
			}
		}
		if !hasFlag(args, "--sub-lang", "en") {
			t.Fatalf("format %s: missing language restriction in %v", tc.format, args)
		}
		if !hasFlag(args, "--convert-subs", tc.converted) {
			t.Fatalf("format %s: expected conversion to %s in %v", tc.format, tc.converted, args)
		}
		if !hasFlag(args, "-o", store.Path("sub_tok")) {
			t.Fatalf("format %s: unexpected output path in %v", tc.format, args)
		}
	}
}

func TestSubtitleArgsAutoCaption(t *testing.T) {
	eng := New("yt-dlp", "", 0)
	req := &DownloadRequest{URL: "u", Kind: KindSubtitle, Language: "en", Format: "srt", AutoCaption: true}
	args := eng.DownloadArgs(req, "tok", testStore(t))

	if !slices.Contains(args, "--write-auto-sub") {
		t.Fatalf("Auto captions must request --write-auto-sub, got %v", args)
	}
	if slices.Contains(args, "--write-sub") {
		t.Fatalf("Auto captions must not also request human subs, got %v", args)
	}
}

func TestUnknownSubtitleFormatSkipsConversion(t *testing.T) {
	eng := New("yt-dlp", "", 0)
	req := &DownloadRequest{URL: "u", Kind: KindSubtitle, Language: "en", Format: "ttml"}
	args := eng.DownloadArgs(req, "tok", testStore(t))

	if slices.Contains(args, "--convert-subs") {
		t.Fatalf("Unknown format must not request conversion, got %v", args)
	}
}

func TestDownloadPrefix(t *testing.T) {
	if p := DownloadPrefix(KindSubtitle, "abc"); p != "sub_abc" {
		t.Fatalf("Unexpected subtitle prefix %q", p)
	}
	for _, kind := range []Kind{KindVideo, KindAudio} {
		if p := DownloadPrefix(kind, "abc"); p != "download_abc" {
			t.Fatalf("Unexpected %s prefix %q", kind, p)
		}
	}
	if !strings.HasPrefix(temp.ArtifactName("download", "abc"), "download_") {
		t.Fatal("Artifact naming convention changed")
	}
}
