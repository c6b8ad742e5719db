// Package watcher provides debounced file watching for development mode:
// theme files, configuration, and static assets are watched so the dev
// server can push live reloads.
package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType classifies a file change.
type EventType int

const (
	EventCreated EventType = iota
	EventModified
	EventDeleted
	EventRenamed
)

// String returns the event type name.
func (e EventType) String() string {
	switch e {
	case EventCreated:
		return "created"
	case EventModified:
		return "modified"
	case EventDeleted:
		return "deleted"
	case EventRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// ChangeEvent is one debounced file change.
type ChangeEvent struct {
	Type    EventType
	Path    string
	ModTime time.Time
}

// Filter decides whether a path is interesting.
type Filter func(path string) bool

// Handler receives each debounced batch of changes.
type Handler func(events []ChangeEvent)

// FileWatcher wraps fsnotify with debouncing so bursts of writes to the
// same file collapse into one reload.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	delay    time.Duration
	filters  []Filter
	handlers []Handler
	incoming chan ChangeEvent
	mu       sync.RWMutex
}

// New creates a watcher with the given debounce delay.
func New(delay time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FileWatcher{
		watcher:  w,
		delay:    delay,
		incoming: make(chan ChangeEvent, 64),
	}, nil
}

// AddFilter registers a path filter; all filters must accept a path.
func (fw *FileWatcher) AddFilter(f Filter) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.filters = append(fw.filters, f)
}

// AddHandler registers a change handler.
func (fw *FileWatcher) AddHandler(h Handler) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.handlers = append(fw.handlers, h)
}

// AddPath watches a single file or directory.
func (fw *FileWatcher) AddPath(path string) error {
	return fw.watcher.Add(filepath.Clean(path))
}

// AddRecursive watches a directory tree.
func (fw *FileWatcher) AddRecursive(root string) error {
	return filepath.Walk(filepath.Clean(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fw.watcher.Add(path)
		}
		return nil
	})
}

// Start begins watching until ctx is cancelled.
func (fw *FileWatcher) Start(ctx context.Context) {
	go fw.debounce(ctx)
	go fw.watchLoop(ctx)
}

// Stop closes the underlying watcher.
func (fw *FileWatcher) Stop() error {
	return fw.watcher.Close()
}

func (fw *FileWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("file watcher error", "error", err)
		}
	}
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	fw.mu.RLock()
	filters := fw.filters
	fw.mu.RUnlock()

	for _, f := range filters {
		if !f(event.Name) {
			return
		}
	}

	var modTime time.Time
	if info, err := os.Stat(event.Name); err == nil {
		modTime = info.ModTime()
	}

	var typ EventType
	switch {
	case event.Op.Has(fsnotify.Create):
		typ = EventCreated
	case event.Op.Has(fsnotify.Remove):
		typ = EventDeleted
	case event.Op.Has(fsnotify.Rename):
		typ = EventRenamed
	default:
		typ = EventModified
	}

	select {
	case fw.incoming <- ChangeEvent{Type: typ, Path: event.Name, ModTime: modTime}:
	default:
		// Channel full under an event storm; the debounced batch that is
		// already pending will trigger the reload anyway.
	}
}

// debounce groups rapid changes into batches separated by quiet periods.
func (fw *FileWatcher) debounce(ctx context.Context) {
	var pending []ChangeEvent
	timer := time.NewTimer(fw.delay)
	if !timer.Stop() {
		<-timer.C
	}

	flush := func() {
		if len(pending) == 0 {
			return
		}
		batch := pending
		pending = nil

		fw.mu.RLock()
		handlers := fw.handlers
		fw.mu.RUnlock()
		for _, h := range handlers {
			h(batch)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-fw.incoming:
			pending = append(pending, ev)
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(fw.delay)
		case <-timer.C:
			flush()
		}
	}
}

// ExtFilter accepts only paths with one of the given extensions.
func ExtFilter(exts ...string) Filter {
	return func(path string) bool {
		ext := filepath.Ext(path)
		for _, e := range exts {
			if ext == e {
				return true
			}
		}
		return false
	}
}
