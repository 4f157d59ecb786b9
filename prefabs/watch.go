package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce drops repeated events for the same file; editors often write
// a file several times on save.
const watchDebounce = 100 * time.Millisecond

// ChangeKind classifies a changed prefab file.
type ChangeKind int

const (
	ChangeScene ChangeKind = iota
	ChangeScript
)

// Change reports an edited scene or driver script.
type Change struct {
	Path string
	Kind ChangeKind
}

// Name is the scene name for scene changes and the script file name for
// script changes.
func (c Change) Name() string {
	if c.Kind == ChangeScene {
		return SceneName(c.Path)
	}
	return filepath.Base(c.Path)
}

// Watcher reports edits to scene and script files on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
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
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// Poll returns a pending change without blocking. It is meant to be called
// once per frame from the game loop.
func (w *Watcher) Poll() (Change, bool) {
	if w == nil {
		return Change{}, false
	}
	select {
	case c, ok := <-w.Events:
		return c, ok
	default:
		return Change{}, false
	}
}

// PollError returns a pending watcher error without blocking.
func (w *Watcher) PollError() (error, bool) {
	if w == nil {
		return nil, false
	}
	select {
	case err, ok := <-w.Errors:
		return err, ok
	default:
		return nil, false
	}
}

func (w *Watcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			kind, ok := classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < watchDebounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- Change{Path: event.Name, Kind: kind}:
			case <-w.closeCh:
				return
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

func classify(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ChangeScene, true
	case ".tengo":
		return ChangeScript, true
	default:
		return 0, false
	}
}
