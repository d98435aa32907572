package pipeline

import (
	"testing"
	"time"

	"github.com/inklight/pdfmark/internal/pdfdoc"
)

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "j1", Status: StatusQueued, UpdatedAt: time.Now()}
	store.Put(job)

	if got := store.Get("j1"); got != job {
		t.Errorf("expected to get the stored job back")
	}
	if got := store.Get("missing"); got != nil {
		t.Errorf("expected nil for unknown job, got %+v", got)
	}
}

func TestJobStore_CleanupEvictsExpired(t *testing.T) {
	store := NewJobStore(10 * time.Millisecond)
	old := &Job{ID: "old", UpdatedAt: time.Now().Add(-time.Minute)}
	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	store.Put(old)
	store.Put(fresh)

	store.Cleanup()

	if store.Get("old") != nil {
		t.Error("expected expired job evicted")
	}
	if store.Get("fresh") == nil {
		t.Error("expected fresh job retained")
	}
}

func TestJob_SnapshotIsolatedFromMutation(t *testing.T) {
	job := &Job{ID: "j2", Status: StatusQueued, Filename: "a.pdf"}
	job.SetCounts(2, 10, 1)
	snap := job.Snapshot()

	job.IncrChunksProcessed()
	if snap.Progress.ChunksProcessed != 0 {
		t.Error("snapshot should not observe later mutations")
	}
	if snap.Progress.Errors == nil {
		t.Error("snapshot errors should be non-nil for JSON safety")
	}
	if snap.Progress.Pages != 2 || snap.Progress.Sentences != 10 {
		t.Errorf("counts not captured: %+v", snap.Progress)
	}
}

func TestJob_ResultAccessors(t *testing.T) {
	job := &Job{ID: "j3"}
	set := pdfdoc.AnnotationSet{
		Rects: []pdfdoc.RectAnnotation{{Page: 0}},
		Notes: []pdfdoc.NoteAnnotation{{Page: 0, Text: "n"}},
	}
	job.SetResult(1, set, []byte("PK"))

	if got := job.Annotations(); len(got.Rects) != 1 || len(got.Notes) != 1 {
		t.Errorf("annotations not stored: %+v", got)
	}
	if string(job.ReportDocx()) != "PK" {
		t.Error("report bytes not stored")
	}
	if job.Progress.Groups != 1 || job.Progress.Rects != 1 {
		t.Errorf("progress not updated: %+v", job.Progress)
	}
}

func TestNewJobID_UniqueAndSized(t *testing.T) {
	a := NewJobID()
	b := NewJobID()
	if len(a) != 26 || len(b) != 26 {
		t.Fatalf("expected 26-char ULIDs, got %q / %q", a, b)
	}
	if a == b {
		t.Error("expected distinct job IDs")
	}
}
