package ingest

import (
	"context"
	"sync"
	"time"

	"resumerank/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a directory for resume file changes and re-ingests
// changed files after a debounce delay. Rapid bursts of writes collapse
// into a single callback invocation.
type Watcher struct {
	dir       string
	debounce  time.Duration
	extractor *Extractor
	store     *Store
	onChange  func(ctx context.Context)
	logger    *errors.Logger

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
}

// NewWatcher creates a watcher for the given directory. onChange fires
// after changed files have been re-ingested into the store.
func NewWatcher(dir string, debounce time.Duration, extractor *Extractor, store *Store, onChange func(ctx context.Context), logger *errors.Logger) *Watcher {
	return &Watcher{
		dir:       dir,
		debounce:  debounce,
		extractor: extractor,
		store:     store,
		onChange:  onChange,
		logger:    logger,
		pending:   make(map[string]struct{}),
	}
}

// Run watches the directory until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.NewInternalError("WATCHER_INIT_FAILED", "failed to create file watcher", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return errors.NewIOError(errors.ErrCodeFileNotReadable, "failed to watch directory: "+w.dir, err)
	}

	if w.logger != nil {
		w.logger.Info("Watching directory for resume changes",
			"dir", w.dir,
			"debounce", w.debounce.String())
	}

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if w.logger != nil {
				w.logger.LogError(err, "File watcher error", "dir", w.dir)
			}
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if !IsSupportedFile(event.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[event.Name] = struct{}{}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.flush(ctx)
	})
}

// flush re-ingests all pending files and fires the change callback.
func (w *Watcher) flush(ctx context.Context) {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	if len(paths) == 0 || ctx.Err() != nil {
		return
	}

	candidates := w.extractor.IngestFiles(ctx, paths)

	// Re-ingested files should replace candidates from the same file
	// rather than accumulate. Match by filename since fresh ingests get
	// fresh IDs.
	for _, c := range candidates {
		for _, existing := range w.store.List() {
			if existing.Filename == c.Filename {
				c.ID = existing.ID
				break
			}
		}
		w.store.Upsert(c)
	}

	if w.logger != nil {
		w.logger.Info("Re-ingested changed resumes", "count", len(candidates))
	}

	if w.onChange != nil {
		w.onChange(ctx)
	}
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
