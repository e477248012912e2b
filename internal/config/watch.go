package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change to a
// file before reloading it. Editors often write a file in several steps.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a config file when it changes on disk.
// Successfully reloaded configs are delivered on Configs; read and
// validation failures on Errors. Both channels are closed by Close.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher

	Configs chan DuelConfig
	Errors  chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path. The containing directory is watched so
// atomic saves (write to temp, rename over) are picked up as well.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		watcher:  fw,
		Configs:  make(chan DuelConfig, 1),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Configs)
		close(w.Errors)
		close(w.done)
	}()

	var reload <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// Trailing debounce: reload once the file has been quiet.
			reload = time.After(w.debounce)
		case <-reload:
			reload = nil
			cfg, err := LoadFile(w.path)
			if err != nil {
				w.sendError(err)
				continue
			}
			w.sendConfig(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

// sendConfig replaces any undelivered config with the newest one.
func (w *Watcher) sendConfig(cfg DuelConfig) {
	select {
	case <-w.Configs:
	default:
	}
	select {
	case w.Configs <- cfg:
	case <-w.closeCh:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	default:
		// Drop errors nobody is reading; the next one will do.
	}
}
