package engine

import "github.com/clipforge/clipforge/internal/errs"

type Kind string

const (
	KindVideo     Kind = "video"
	KindAudio     Kind = "audio"
	KindSubtitle  Kind = "subtitle"
	KindThumbnail Kind = "thumbnail"
)

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindVideo, KindAudio, KindSubtitle, KindThumbnail:
		return Kind(s), true
	}
	return "", false
}

// DownloadRequest is the validated caller intent for one delivery.
type DownloadRequest struct {
	URL         string
	Kind        Kind
	Format      string
	Quality     string
	Language    string
	AutoCaption bool

	// TargetURL short-circuits thumbnail requests to a plain fetch of the
	// given image, bypassing the engine entirely.
	TargetURL string
}

func (r *DownloadRequest) Validate() error {
	if r.URL == "" {
		return errs.ErrMissingURL
	}
	if r.Kind == "" {
		return errs.ErrMissingKind
	}
	if r.Kind == KindSubtitle && r.Language == "" {
		return errs.ErrMissingLanguage
	}
	return nil
}
