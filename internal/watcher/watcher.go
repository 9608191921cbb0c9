package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is how long a file must stay quiet before its change
// is reported.
const debounceDelay = 500 * time.Millisecond

// Change reports that a watched file settled after being modified.
type Change struct {
	// Input is the pipeline input to reprocess.
	Input string

	// Path is the file that actually changed.
	Path string
}

// Watcher reports debounced changes to a fixed set of files.
type Watcher struct {
	fsw     *fsnotify.Watcher
	targets map[string]string
	changes chan Change

	mu       sync.Mutex
	debounce map[string]*time.Timer
}

// New creates a watcher for targets, a map from watched file path to
// the pipeline input the file belongs to.
func New(targets map[string]string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	cleaned := make(map[string]string, len(targets))
	for path, input := range targets {
		cleaned[filepath.Clean(path)] = input
	}

	return &Watcher{
		fsw:      fsw,
		targets:  cleaned,
		changes:  make(chan Change, 100),
		debounce: make(map[string]*time.Timer),
	}, nil
}

// Start installs the directory watches and begins delivering changes.
func (w *Watcher) Start() error {
	dirs := make(map[string]bool)
	for path := range w.targets {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		log.Printf("Watching %s", dir)
	}

	go w.processEvents()
	return nil
}

// Changes delivers debounced change notifications.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			path := filepath.Clean(event.Name)
			input, tracked := w.targets[path]
			if !tracked {
				continue
			}
			w.schedule(path, input)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Watch error: %v", err)
		}
	}
}

// schedule arms the debounce timer for path, restarting it if the
// file is already pending.
func (w *Watcher) schedule(path, input string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}
	w.debounce[path] = time.AfterFunc(debounceDelay, func() {
		w.mu.Lock()
		delete(w.debounce, path)
		w.mu.Unlock()
		w.changes <- Change{Input: input, Path: path}
	})
}

// Stop cancels pending timers and closes the filesystem watcher. The
// changes channel stays open; a timer that already fired may still
// deliver a notification.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	for path, timer := range w.debounce {
		timer.Stop()
		delete(w.debounce, path)
	}
	w.mu.Unlock()
	return w.fsw.Close()
}
