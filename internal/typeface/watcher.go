package typeface

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Watcher is a Source that reloads the font file whenever it changes on disk.
// A reload that fails keeps serving the previous font.
type Watcher struct {
	logger *slog.Logger
	path   string

	current atomic.Pointer[Font]

	fsw       *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
	wg        sync.WaitGroup
}

// NewWatcher - loads the font at path and starts watching it.
func NewWatcher(logger *slog.Logger, path string) (*Watcher, error) {
	font, err := Load(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create font watcher: %w", err)
	}

	// Watch the directory: editors and deploy tools replace files by rename,
	// which drops a watch placed on the file itself.
	if err = fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("could not watch %s: %w", path, err)
	}

	watcher := &Watcher{
		logger: logger.With("component", "font-watcher", "path", path),
		path:   filepath.Clean(path),
		fsw:    fsw,
		done:   make(chan struct{}),
	}
	watcher.current.Store(font)

	watcher.wg.Add(1)
	go watcher.watch()

	return watcher, nil
}

// Current returns the most recently loaded font.
func (that *Watcher) Current() (*Font, error) {
	return that.current.Load(), nil
}

// Reload - re-reads the font file and swaps it in.
func (that *Watcher) Reload() error {
	font, err := Load(that.path)
	if err != nil {
		return err
	}

	that.current.Store(font)
	that.logger.Info("font reloaded", "family", font.Name())

	return nil
}

// Close stops watching. It is safe to call more than once.
func (that *Watcher) Close() error {
	that.closeOnce.Do(func() {
		close(that.done)
		that.closeErr = that.fsw.Close()
		that.wg.Wait()
	})

	return that.closeErr
}

func (that *Watcher) watch() {
	defer that.wg.Done()

	for {
		select {
		case <-that.done:
			return
		case event, ok := <-that.fsw.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != that.path {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if err := that.Reload(); err != nil {
				that.logger.Error("could not reload font, keeping previous one", "error", err)
			}
		case err, ok := <-that.fsw.Errors:
			if !ok {
				return
			}

			if !errors.Is(err, fsnotify.ErrEventOverflow) {
				that.logger.Error("font watcher error", "error", err)
				continue
			}

			// events were dropped, the file may have changed
			if err = that.Reload(); err != nil {
				that.logger.Error("could not reload font after overflow", "error", err)
			}
		}
	}
}
