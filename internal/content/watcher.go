package content

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Holder publishes the current content to concurrent readers.
type Holder struct {
	p atomic.Pointer[Content]
}

func NewHolder(c *Content) *Holder {
	h := &Holder{}
	h.p.Store(c)
	return h
}

func (h *Holder) Get() *Content { return h.p.Load() }

func (h *Holder) Set(c *Content) { h.p.Store(c) }

// Watcher reloads a content file into a Holder whenever it changes on disk.
// Invalid edits and removals are logged and the previous content stays live.
type Watcher struct {
	path     string
	holder   *Holder
	log      *zap.Logger
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// NewWatcher watches the directory containing path, since editors often
// replace files instead of writing them in place.
func NewWatcher(path string, holder *Holder, log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{
		path:     filepath.Clean(path),
		holder:   holder,
		log:      log,
		debounce: 250 * time.Millisecond,
		watcher:  fw,
	}, nil
}

// Run blocks until ctx is cancelled, then releases the underlying watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("content watcher error", zap.Error(err))
		}
	}
}

// reload never falls back to the defaults: a file that was moved away or
// deleted leaves the current content live.
func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.log.Warn("content file unreadable; keeping current content", zap.String("path", w.path), zap.Error(err))
		return
	}
	c, err := parse(w.path, data)
	if err != nil {
		w.log.Warn("content reload rejected", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.holder.Set(c)
	w.log.Info("content reloaded",
		zap.String("path", w.path),
		zap.Int("skills", len(c.Skills)),
		zap.Int("projects", len(c.Projects)))
}
