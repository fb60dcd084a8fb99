package engine

import (
	"log/slog"

	"github.com/clipforge/clipforge/internal/temp"
	"github.com/google/uuid"
)

// Job binds one download subprocess invocation to its request and its
// artifact namespace in the temp store.
type Job struct {
	ID      uuid.UUID
	Token   string
	Request *DownloadRequest
}

func NewJob(req *DownloadRequest) *Job {
	return &Job{ID: uuid.New(), Token: temp.NewToken(), Request: req}
}

// Prefix is the artifact name prefix every file this job produces carries.
func (j *Job) Prefix() string {
	return DownloadPrefix(j.Request.Kind, j.Token)
}

func (j *Job) Logger() *slog.Logger {
	return slog.With("job", j.ID.String(), "kind", string(j.Request.Kind))
}
