package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/inklight/pdfmark/internal/align"
	"github.com/inklight/pdfmark/internal/annotate"
	"github.com/inklight/pdfmark/internal/chunker"
	"github.com/inklight/pdfmark/internal/llm"
	"github.com/inklight/pdfmark/internal/pdfdoc"
	"github.com/inklight/pdfmark/internal/report"
)

// Completer is the slice of the model client the worker needs.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Worker processes a single highlight job.
type Worker struct {
	model  Completer
	writer *annotate.Writer
	log    *slog.Logger

	chunkSize           int
	maxConcurrentChunks int
}

func NewWorker(model Completer, writer *annotate.Writer, log *slog.Logger, chunkSize, maxConcurrentChunks int) *Worker {
	if chunkSize <= 0 {
		chunkSize = chunker.DefaultChunkSize
	}
	if maxConcurrentChunks <= 0 {
		maxConcurrentChunks = 1
	}
	return &Worker{
		model:               model,
		writer:              writer,
		log:                 log,
		chunkSize:           chunkSize,
		maxConcurrentChunks: maxConcurrentChunks,
	}
}

// Process runs the full highlight pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	job.SetStatus(StatusExtracting, "extracting")
	pages, err := pdfdoc.ExtractWords(bytes.NewReader(job.FileData()))
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	w.Run(ctx, job, pages)
}

// Run executes alignment through annotation over already-extracted
// pages. Split out from Process so the transform can be driven without
// a real PDF.
func (w *Worker) Run(ctx context.Context, job *Job, pages []pdfdoc.PageWords) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Align each page against its own word list, then merge in page
	// order for global indices.
	job.SetStatus(StatusAligning, "aligning")
	perPage := make([][]align.Sentence, len(pages))
	for i, p := range pages {
		perPage[i] = align.Page(p.Words, p.Index)
	}
	sentences := align.Reindex(perPage)

	if len(sentences) == 0 {
		log.Warn("no alignable sentences")
		job.AddError("no alignable text")
		job.SetStatus(StatusFailed, "aligning")
		return
	}

	job.SetStatus(StatusChunking, "chunking")
	chunks := chunker.Split(sentences, w.chunkSize)
	job.SetCounts(len(pages), len(sentences), len(chunks))
	log.Info("chunked document", "pages", len(pages), "sentences", len(sentences), "chunks", len(chunks))

	// Ask the model about every chunk with bounded concurrency. Failed
	// chunks are retried on transient errors, then skipped; results are
	// reassembled in chunk order so explanation numbering stays
	// reproducible.
	job.SetStatus(StatusSelecting, "selecting")
	type chunkResult struct {
		groups []llm.HighlightGroup
		err    error
		idx    int
	}
	results := make(chan chunkResult, len(chunks))
	sem := make(chan struct{}, w.maxConcurrentChunks)

	for i, c := range chunks {
		// Cancellation is checked before each dispatch: the model call
		// is the dominant cost and must not start after an abort.
		if err := ctx.Err(); err != nil {
			results <- chunkResult{err: err, idx: i}
			continue
		}
		sem <- struct{}{}
		go func(i int, c chunker.Chunk) {
			defer func() { <-sem }()
			prompt := llm.EncodeChunk(c)
			var output string
			var lastErr error
			for attempt := range MaxRetries {
				output, lastErr = w.model.Complete(ctx, prompt)
				if lastErr == nil || !IsRetryable(lastErr) {
					break
				}
				log.Warn("retryable selection error", "chunk", i, "attempt", attempt, "error", lastErr)
				select {
				case <-time.After(Backoff(attempt)):
				case <-ctx.Done():
					results <- chunkResult{err: ctx.Err(), idx: i}
					return
				}
			}
			if lastErr != nil {
				results <- chunkResult{err: lastErr, idx: i}
				return
			}
			results <- chunkResult{groups: llm.DecodeGroups(output, c), idx: i}
		}(i, c)
	}

	ordered := make([][]llm.HighlightGroup, len(chunks))
	hadErrors := false
	for range chunks {
		r := <-results
		job.IncrChunksProcessed()
		if r.err != nil {
			log.Error("selection failed", "chunk", r.idx, "error", r.err)
			job.AddError(fmt.Sprintf("chunk %d: %s", r.idx, r.err))
			hadErrors = true
			continue
		}
		ordered[r.idx] = r.groups
	}

	var groups []llm.HighlightGroup
	for _, g := range ordered {
		groups = append(groups, g...)
	}
	log.Info("selection complete", "groups", len(groups), "errors", hadErrors)

	if len(groups) == 0 && hadErrors {
		job.SetStatus(StatusFailed, "selecting")
		return
	}

	// Draw the annotations. The recorder owns the write phase; pages
	// are only ever written from this goroutine.
	job.SetStatus(StatusAnnotating, "annotating")
	rec := pdfdoc.NewRecorder()
	if err := w.writer.Apply(rec, groups, pdfdoc.BuildWordMap(pages)); err != nil {
		log.Error("annotation failed", "error", err)
		job.AddError(fmt.Sprintf("annotate: %s", err))
		job.SetStatus(StatusFailed, "annotating")
		return
	}

	docxBytes, err := report.BuildDocx(job.Filename, groups)
	if err != nil {
		// The report is a convenience artifact; its failure does not
		// invalidate the annotations.
		log.Warn("report build failed", "error", err)
		job.AddError(fmt.Sprintf("report: %s", err))
		hadErrors = true
		docxBytes = nil
	}

	job.SetResult(len(groups), rec.Snapshot(), docxBytes)

	if hadErrors {
		job.SetStatus(StatusPartial, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
}
