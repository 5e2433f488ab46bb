package levels

import (
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SettleDelay is how long a map file must stay untouched before an edit is
// reported. Editors often save in several writes.
const SettleDelay = 100 * time.Millisecond

// Change is a settled edit to one watched map file.
type Change struct {
	Path    string
	Removed bool
}

// Watcher reports edits to a set of map files on disk. Changes is closed once
// the watcher stops.
type Watcher struct {
	fs      *fsnotify.Watcher
	files   map[string]struct{}
	settle  time.Duration
	Changes chan Change
	Errors  chan error
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the given files. Their parent directories are watched so
// that a file replaced on save keeps being tracked.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	files := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		clean := filepath.Clean(p)
		files[clean] = struct{}{}
		dirs[filepath.Dir(clean)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		files:   files,
		settle:  SettleDelay,
		Changes: make(chan Change, len(files)),
		Errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Changes)

	// path -> removed, for edits that have not settled yet
	pending := make(map[string]bool)
	timer := time.NewTimer(w.settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			name := filepath.Clean(ev.Name)
			if _, ok := w.files[name]; !ok {
				continue
			}
			switch {
			case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create):
				pending[name] = false
			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				pending[name] = true
			default:
				continue
			}
			timer.Reset(w.settle)
		case <-timer.C:
			if !w.flush(pending) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

// flush sends the settled edits in path order. It reports false when the
// watcher was closed while sending.
func (w *Watcher) flush(pending map[string]bool) bool {
	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		select {
		case w.Changes <- Change{Path: p, Removed: pending[p]}:
		case <-w.done:
			return false
		}
		delete(pending, p)
	}
	return true
}
