// Package delivery turns a finished download job into exactly one response:
// it locates the artifact the engine produced, applies subtitle
// post-processing where requested, streams the bytes with correct framing
// and schedules the artifact for deletion.
package delivery

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/clipforge/clipforge/internal/engine"
	"github.com/clipforge/clipforge/internal/errs"
	"github.com/clipforge/clipforge/internal/temp"
)

const (
	// Grace period before a delivered artifact is deleted, long enough for
	// the transport layer to finish flushing the response body.
	defaultCleanupDelay = 5 * time.Second

	fetchTimeout = 30 * time.Second
)

type Pipeline struct {
	Engine       *engine.Engine
	Store        *temp.Store
	Client       *http.Client
	CleanupDelay time.Duration
}

func NewPipeline(eng *engine.Engine, store *temp.Store) *Pipeline {
	return &Pipeline{
		Engine:       eng,
		Store:        store,
		Client:       &http.Client{Timeout: fetchTimeout},
		CleanupDelay: defaultCleanupDelay,
	}
}

// Deliver runs one download job end to end and produces the single terminal
// response on sink. The request must already be validated.
func (p *Pipeline) Deliver(ctx context.Context, req *engine.DownloadRequest, sink Sink) {
	if req.Kind == engine.KindThumbnail && req.TargetURL != "" {
		p.deliverThumbnail(ctx, req.TargetURL, sink)
		return
	}

	job := engine.NewJob(req)
	logger := job.Logger()

	args := p.Engine.DownloadArgs(req, job.Token, p.Store)
	outcome, err := p.Engine.Run(ctx, args, logger)
	if err != nil {
		if errors.Is(err, errs.ErrSpawn) {
			sink.Error(http.StatusInternalServerError, errs.ErrSpawn)
		} else {
			sink.Error(http.StatusInternalServerError, errs.ErrDownloadFailed)
		}
		logger.Warn("Engine run failed", "err", err)
		p.Store.ScheduleRemovePrefix(job.Prefix(), p.CleanupDelay)
		return
	}

	if outcome == engine.RunRateLimited {
		sink.Error(http.StatusTooManyRequests, errs.ErrRateLimited)
		p.Store.ScheduleRemovePrefix(job.Prefix(), p.CleanupDelay)
		return
	}

	if sink.Sent() {
		return
	}

	if req.Kind == engine.KindSubtitle {
		p.deliverSubtitle(job, sink)
	} else {
		p.deliverFile(job, sink)
	}
}

func (p *Pipeline) deliverSubtitle(job *engine.Job, sink Sink) {
	logger := job.Logger()

	name, found, err := p.Store.FindByPrefix(job.Prefix())
	if err != nil {
		logger.Warn("Unable to scan temp store", "err", err)
		sink.Error(http.StatusInternalServerError, errs.ErrTempDir)
		return
	}
	if !found {
		// Distinct from an I/O failure: the engine finished but the language
		// was not available.
		sink.Error(http.StatusNotFound, errs.ErrSubtitleMissing)
		return
	}

	path := p.Store.Path(name)
	switch job.Request.Format {
	case "text":
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("Unable to read subtitle artifact", "err", err)
			sink.Error(http.StatusInternalServerError, errs.ErrReadArtifact)
			return
		}
		text := SubtitleText(string(raw))
		sink.Data(plainTextContentType, AttachmentDisposition(SubtitleTextFilename(name)), []byte(text))

	case "raw":
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("Unable to read subtitle artifact", "err", err)
			sink.Error(http.StatusInternalServerError, errs.ErrReadArtifact)
			return
		}
		sink.Data(plainTextContentType, InlineDisposition, raw)

	default:
		if err := sink.File(ContentTypeFor(name), AttachmentDisposition(name), path); err != nil {
			logger.Warn("Unable to stream subtitle artifact", "err", err)
			sink.Error(http.StatusInternalServerError, errs.ErrReadArtifact)
			return
		}
	}

	p.Store.ScheduleRemove(name, p.CleanupDelay)
}

func (p *Pipeline) deliverFile(job *engine.Job, sink Sink) {
	logger := job.Logger()

	name, found, err := p.Store.FindByPrefix(job.Prefix())
	if err != nil {
		logger.Warn("Unable to scan temp store", "err", err)
		sink.Error(http.StatusInternalServerError, errs.ErrTempDir)
		return
	}
	if !found {
		sink.Error(http.StatusNotFound, errs.ErrFileMissing)
		return
	}

	if err := sink.File(ContentTypeFor(name), AttachmentDisposition(name), p.Store.Path(name)); err != nil {
		logger.Warn("Unable to stream artifact", "err", err)
		sink.Error(http.StatusInternalServerError, errs.ErrReadArtifact)
		return
	}

	p.Store.ScheduleRemove(name, p.CleanupDelay)
}

func (p *Pipeline) deliverThumbnail(ctx context.Context, targetURL string, sink Sink) {
	data, contentType, err := p.fetchImage(ctx, targetURL)
	if err != nil {
		errs.NewLogErrorHandler("Thumbnail fetch").PrivateError(err)
		sink.Error(http.StatusInternalServerError, errs.ErrThumbnailFetch)
		return
	}

	filename := "thumbnail_" + temp.NewToken() + ".jpg"
	sink.Data(contentType, AttachmentDisposition(filename), data)
}

// DeliverImage proxies a remote image through with its origin content type
// and an inline disposition.
func (p *Pipeline) DeliverImage(ctx context.Context, targetURL string, sink Sink) {
	data, contentType, err := p.fetchImage(ctx, targetURL)
	if err != nil {
		errs.NewLogErrorHandler("Image proxy").PrivateError(err)
		sink.Error(http.StatusInternalServerError, errs.ErrThumbnailFetch)
		return
	}

	sink.Data(contentType, InlineDisposition, data)
}

func (p *Pipeline) fetchImage(ctx context.Context, targetURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", errs.ErrThumbnailFetch
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = fallbackImageType
	}

	return data, contentType, nil
}
