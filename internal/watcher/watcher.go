package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/logger"
)

var log = logger.ForComponent("watcher")

// Watcher observes workspace roots for devcontainer configuration changes
// made outside this process and reports them, debounced, to its callback.
type Watcher struct {
	config      WatcherConfig
	fsWatcher   *fsnotify.Watcher
	fsWatcherMu sync.Mutex
	debouncer   *Debouncer
	onChange    func([]FileEvent)
	roots       []string
	mu          sync.RWMutex
	running     bool
	ctx         context.Context
	cancel      context.CancelFunc
}

func New(config WatcherConfig, onChange func([]FileEvent)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		config:    config,
		fsWatcher: fsWatcher,
		onChange:  onChange,
		roots:     make([]string, 0),
	}

	w.debouncer = NewDebouncer(config.DebounceWindow, config.MaxBatchSize, w.onFlush)

	return w, nil
}

func (w *Watcher) addToWatcher(path string) error {
	w.fsWatcherMu.Lock()
	defer w.fsWatcherMu.Unlock()
	return w.fsWatcher.Add(path)
}

func (w *Watcher) removeFromWatcher(path string) {
	w.fsWatcherMu.Lock()
	defer w.fsWatcherMu.Unlock()
	w.fsWatcher.Remove(path)
}

// AddRoot watches a workspace root and its .devcontainer directory when
// one exists. Only the two configuration locations produce events.
func (w *Watcher) AddRoot(path string) error {
	w.mu.RLock()
	for _, root := range w.roots {
		if root == path {
			w.mu.RUnlock()
			return nil
		}
	}
	w.mu.RUnlock()

	log.Info("watching workspace", "path", path)

	if err := w.addToWatcher(path); err != nil {
		return err
	}

	devDir := filepath.Join(path, ".devcontainer")
	if info, err := os.Stat(devDir); err == nil && info.IsDir() {
		if err := w.addToWatcher(devDir); err != nil {
			log.Debug("failed to watch .devcontainer", "path", devDir, "error", err)
		}
	}

	w.mu.Lock()
	w.roots = append(w.roots, path)
	w.mu.Unlock()

	return nil
}

func (w *Watcher) RemoveRoot(path string) {
	w.removeFromWatcher(path)
	w.removeFromWatcher(filepath.Join(path, ".devcontainer"))

	w.mu.Lock()
	defer w.mu.Unlock()

	for i, root := range w.roots {
		if root == path {
			w.roots = append(w.roots[:i], w.roots[i+1:]...)
			break
		}
	}
}

func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	w.running = true
	w.ctx, w.cancel = context.WithCancel(ctx)
	w.mu.Unlock()

	go w.handleEvents()

	return nil
}

func (w *Watcher) handleEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			log.Debug("file event", "path", event.Name, "op", event.Op.String())

			// A .devcontainer directory created after AddRoot still needs
			// watching.
			if event.Has(fsnotify.Create) && filepath.Base(event.Name) == ".devcontainer" {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addToWatcher(event.Name); err != nil {
						log.Debug("failed to watch new .devcontainer", "path", event.Name, "error", err)
					}
				}
			}

			fileEvent := w.convertEvent(event)
			if fileEvent != nil {
				w.debouncer.Add(*fileEvent)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Debug("watch error", "error", err)
		}
	}
}

func (w *Watcher) convertEvent(event fsnotify.Event) *FileEvent {
	if !isConfigPath(event.Name) || w.shouldIgnore(event.Name) {
		return nil
	}

	var eventType EventType

	switch {
	case event.Has(fsnotify.Create):
		eventType = EventCreate
	case event.Has(fsnotify.Write):
		eventType = EventModify
	case event.Has(fsnotify.Remove):
		eventType = EventDelete
	case event.Has(fsnotify.Rename):
		eventType = EventRename
	default:
		return nil
	}

	return &FileEvent{
		Path:      event.Name,
		Type:      eventType,
		Timestamp: time.Now(),
	}
}

func isConfigPath(path string) bool {
	base := filepath.Base(path)
	if base == ".devcontainer.json" {
		return true
	}
	return base == "devcontainer.json" && filepath.Base(filepath.Dir(path)) == ".devcontainer"
}

func (w *Watcher) onFlush(events []FileEvent) {
	if len(events) == 0 || w.onChange == nil {
		return
	}

	log.Info("devcontainer configuration changed on disk", "count", len(events))
	w.onChange(events)
}

func (w *Watcher) shouldIgnore(path string) bool {
	for _, pattern := range w.config.IgnorePatterns {
		if match, _ := doublestar.Match(pattern, path); match {
			return true
		}
		if match, _ := doublestar.Match(pattern, strings.TrimPrefix(path, string(filepath.Separator))); match {
			return true
		}
	}
	return false
}

func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}

	w.running = false
	w.cancel()
	w.mu.Unlock()

	w.debouncer.Stop()

	w.fsWatcherMu.Lock()
	defer w.fsWatcherMu.Unlock()
	return w.fsWatcher.Close()
}
