package pdfdoc

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Engine is the annotation surface of the PDF engine. The engine itself
// is an external collaborator; the pipeline only depends on this
// interface. Implementations are not required to be safe for concurrent
// use — the annotation writer owns the engine exclusively during the
// write phase.
type Engine interface {
	// AddFilledRect draws a translucent filled rectangle annotation on
	// the given page.
	AddFilledRect(pageIndex int, r Rect, c Color, opacity float64) error

	// AddTextNote attaches a comment annotation anchored at a point.
	AddTextNote(pageIndex int, at Point, text string) error

	// Save persists the annotated document to path. The original input
	// is never modified in place.
	Save(path string) error
}

// RectAnnotation is one recorded rectangle annotation.
type RectAnnotation struct {
	Page    int     `json:"page"`
	Rect    Rect    `json:"rect"`
	Color   Color   `json:"color"`
	Opacity float64 `json:"opacity"`
}

// NoteAnnotation is one recorded comment annotation.
type NoteAnnotation struct {
	Page int    `json:"page"`
	At   Point  `json:"at"`
	Text string `json:"text"`
}

// AnnotationSet is a JSON-safe snapshot of everything an engine was
// asked to draw.
type AnnotationSet struct {
	Rects []RectAnnotation `json:"rects"`
	Notes []NoteAnnotation `json:"notes"`
}

// Recorder is an in-memory Engine. It backs the tests and the API's
// annotation listing; Save writes the recorded set as JSON.
type Recorder struct {
	mu    sync.Mutex
	rects []RectAnnotation
	notes []NoteAnnotation
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) AddFilledRect(pageIndex int, rect Rect, c Color, opacity float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rects = append(r.rects, RectAnnotation{Page: pageIndex, Rect: rect, Color: c, Opacity: opacity})
	return nil
}

func (r *Recorder) AddTextNote(pageIndex int, at Point, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, NoteAnnotation{Page: pageIndex, At: at, Text: text})
	return nil
}

func (r *Recorder) Save(path string) error {
	data, err := json.MarshalIndent(r.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal annotations: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write annotations: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the recorded annotations.
func (r *Recorder) Snapshot() AnnotationSet {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := AnnotationSet{
		Rects: make([]RectAnnotation, len(r.rects)),
		Notes: make([]NoteAnnotation, len(r.notes)),
	}
	copy(set.Rects, r.rects)
	copy(set.Notes, r.notes)
	return set
}
