// Package temp manages the working directory that download jobs write their
// artifacts into. Artifact names are `<kind>_<token>[.ext]` where token is a
// random per-job identifier, so concurrent jobs cannot collide and a job can
// rediscover its output by prefix without knowing the engine-chosen extension.
package temp

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dchest/uniuri"
)

const tokenLength = 16

type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// NewToken returns a fresh artifact token. Collision-freedom between
// concurrent jobs rests entirely on this value.
func NewToken() string {
	return uniuri.NewLen(tokenLength)
}

// ArtifactName builds the canonical `<kind>_<token>` artifact prefix.
func ArtifactName(kind, token string) string {
	return kind + "_" + token
}

// FindByPrefix scans the store for the first file whose name starts with
// prefix and returns its bare name.
func (s *Store) FindByPrefix(prefix string) (string, bool, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", false, err
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			return entry.Name(), true, nil
		}
	}

	return "", false, nil
}

// ScheduleRemove deletes the named artifact after the given delay. Removal is
// best-effort: the delay exists so the transport layer can finish flushing a
// response that is still streaming from the file.
func (s *Store) ScheduleRemove(name string, delay time.Duration) {
	path := s.Path(name)
	go func() {
		time.Sleep(delay)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Unable to remove temp artifact", "path", path, "err", err)
		}
	}()
}

// ScheduleRemovePrefix removes every artifact carrying the prefix after the
// delay. Used to reap partial files left behind by failed jobs.
func (s *Store) ScheduleRemovePrefix(prefix string, delay time.Duration) {
	go func() {
		time.Sleep(delay)
		entries, err := os.ReadDir(s.dir)
		if err != nil {
			slog.Debug("Unable to scan temp dir for cleanup", "err", err)
			return
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
				continue
			}
			if err := os.Remove(s.Path(entry.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
				slog.Debug("Unable to remove temp artifact", "name", entry.Name(), "err", err)
			}
		}
	}()
}
