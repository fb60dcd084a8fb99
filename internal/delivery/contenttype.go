package delivery

import (
	"path/filepath"
	"strings"
)

const (
	binaryContentType    = "application/octet-stream"
	plainTextContentType = "text/plain; charset=utf-8"
	fallbackImageType    = "image/jpeg"
)

var contentTypesByExt = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mp3":  "audio/mpeg",
}

// ContentTypeFor maps an artifact filename to its content type, defaulting to
// a generic binary type for containers outside the normalized set.
func ContentTypeFor(name string) string {
	if ct, ok := contentTypesByExt[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return binaryContentType
}
