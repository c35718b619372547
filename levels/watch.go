package levels

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reports level pack and Tiled map changes in the watched
// directories. A burst of writes to one file is reported once, after the
// file has been quiet for watchDebounce.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	pending := newPending()
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isLevelFile(event.Name) {
				continue
			}
			pending.touch(event.Name, time.Now())
			timer.Reset(watchDebounce)
		case now := <-timer.C:
			ready, wait := pending.due(now)
			for _, name := range ready {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			if wait > 0 {
				timer.Reset(wait)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// pending tracks the last change to each file still inside its debounce
// window.
type pending map[string]time.Time

func newPending() pending {
	return make(pending)
}

func (p pending) touch(name string, at time.Time) {
	p[name] = at
}

// due removes and returns, sorted, the files quiet for watchDebounce at now,
// plus how long until the next one settles (0 when none are left).
func (p pending) due(now time.Time) ([]string, time.Duration) {
	var ready []string
	var next time.Duration
	for name, at := range p {
		wait := at.Add(watchDebounce).Sub(now)
		if wait <= 0 {
			ready = append(ready, name)
			delete(p, name)
			continue
		}
		if next == 0 || wait < next {
			next = wait
		}
	}
	sort.Strings(ready)
	return ready, next
}

func isLevelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tmx", ".tsx":
		return true
	}
	return false
}
