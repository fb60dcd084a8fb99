package temp

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "work", "artifacts")
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	info, err := os.Stat(store.Dir())
	if err != nil || !info.IsDir() {
		t.Fatalf("Store directory not created: %v", err)
	}
}

func TestArtifactName(t *testing.T) {
	if name := ArtifactName("download", "abc123"); name != "download_abc123" {
		t.Fatalf("Unexpected artifact name %q", name)
	}
}

func TestNewTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := NewToken()
		if len(token) != tokenLength {
			t.Fatalf("Unexpected token length %d", len(token))
		}
		if seen[token] {
			t.Fatalf("Token collision: %q", token)
		}
		seen[token] = true
	}
}

func TestFindByPrefix(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := os.WriteFile(store.Path("download_tok1.mp4"), []byte("x"), 0o644); err != nil {
		t.Fatalf("Unable to seed artifact: %v", err)
	}
	if err := os.WriteFile(store.Path("sub_tok2.en.srt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("Unable to seed artifact: %v", err)
	}

	name, found, err := store.FindByPrefix("download_tok1")
	if err != nil || !found || name != "download_tok1.mp4" {
		t.Fatalf("FindByPrefix: name=%q found=%v err=%v", name, found, err)
	}

	name, found, err = store.FindByPrefix("sub_tok2")
	if err != nil || !found || name != "sub_tok2.en.srt" {
		t.Fatalf("FindByPrefix: name=%q found=%v err=%v", name, found, err)
	}

	_, found, err = store.FindByPrefix("download_other")
	if err != nil || found {
		t.Fatalf("Unexpected match for foreign prefix: found=%v err=%v", found, err)
	}
}

func waitRemoved(t *testing.T, path string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Artifact %s was not removed", path)
}

func TestScheduleRemove(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := os.WriteFile(store.Path("download_x.mp4"), []byte("x"), 0o644); err != nil {
		t.Fatalf("Unable to seed artifact: %v", err)
	}

	store.ScheduleRemove("download_x.mp4", 10*time.Millisecond)
	waitRemoved(t, store.Path("download_x.mp4"))

	// removing an already-gone artifact must be silent
	store.ScheduleRemove("download_x.mp4", time.Millisecond)
	time.Sleep(50 * time.Millisecond)
}

func TestScheduleRemovePrefix(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	for _, name := range []string{"sub_tok.en.srt", "sub_tok.de.srt", "download_other.mp4"} {
		if err := os.WriteFile(store.Path(name), []byte("x"), 0o644); err != nil {
			t.Fatalf("Unable to seed artifact: %v", err)
		}
	}

	store.ScheduleRemovePrefix("sub_tok", 10*time.Millisecond)
	waitRemoved(t, store.Path("sub_tok.en.srt"))
	waitRemoved(t, store.Path("sub_tok.de.srt"))

	if _, err := os.Stat(store.Path("download_other.mp4")); err != nil {
		t.Fatalf("Foreign artifact must survive: %v", err)
	}
}
