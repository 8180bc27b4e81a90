package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDelay is how long the config files must stay quiet before a
// change is reported. Editors often write a file in several steps.
const DefaultWatchDelay = 250 * time.Millisecond

// Watcher reports changes to a set of config files. Directories are watched
// rather than the files themselves so files created later, or replaced by a
// rename, are still seen.
type Watcher struct {
	fs      *fsnotify.Watcher
	files   map[string]bool
	changes chan struct{}
	deb     *debouncer
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once

	mu     sync.Mutex
	closed bool
}

// Watch starts watching paths with DefaultWatchDelay.
func Watch(paths ...string) (*Watcher, error) {
	return WatchWithDelay(DefaultWatchDelay, paths...)
}

// WatchWithDelay starts watching paths. Paths whose directory does not exist
// are ignored.
func WatchWithDelay(delay time.Duration, paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}

	w := &Watcher{
		fs:      fsw,
		files:   make(map[string]bool),
		changes: make(chan struct{}, 1),
		deb:     newDebouncer(delay),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		w.files[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Changes receives a value after the watched files change. Changes that
// arrive before the previous one was received are merged.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching. Changes is closed once the watcher has stopped.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
		w.deb.cancel()

		w.mu.Lock()
		w.closed = true
		close(w.changes)
		w.mu.Unlock()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.deb.trigger(w.notify)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("config watcher: %v", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !w.files[filepath.Clean(ev.Name)] {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}

func (w *Watcher) notify() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
