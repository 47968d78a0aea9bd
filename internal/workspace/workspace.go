package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/devcontainer"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/engine"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/logger"
)

var log = logger.ForComponent("workspace")

// Locations a devcontainer configuration may live at, relative to the
// workspace root, in lookup order.
var configLocations = []string{
	filepath.Join(".devcontainer", "devcontainer.json"),
	".devcontainer.json",
}

// Manager loads and saves devcontainer documents for workspace roots,
// keeping a parse cache that the file watcher invalidates.
type Manager struct {
	mu       sync.RWMutex
	cache    map[string]*devcontainer.Document
	observer func(root string)
}

func NewManager() *Manager {
	return &Manager{
		cache: make(map[string]*devcontainer.Document),
	}
}

// SetObserver registers a callback invoked with every workspace root this
// manager touches. The serve loop uses it to start watching roots.
func (m *Manager) SetObserver(fn func(root string)) {
	m.mu.Lock()
	m.observer = fn
	m.mu.Unlock()
}

func (m *Manager) notify(root string) {
	m.mu.RLock()
	fn := m.observer
	m.mu.RUnlock()
	if fn != nil {
		fn(root)
	}
}

// ConfigPath returns the path of the workspace's existing configuration,
// or the default location and false when none exists yet.
func (m *Manager) ConfigPath(root string) (string, bool) {
	for _, rel := range configLocations {
		path := filepath.Join(root, rel)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return filepath.Join(root, configLocations[0]), false
}

// Load reads and parses the workspace's devcontainer document. Returned
// documents are copies; mutating them does not poison the cache.
func (m *Manager) Load(root string) (*devcontainer.Document, string, error) {
	m.notify(root)

	path, exists := m.ConfigPath(root)
	if !exists {
		return nil, "", fmt.Errorf("%w in %s", engine.ErrConfigNotFound, root)
	}

	m.mu.RLock()
	cached, ok := m.cache[path]
	m.mu.RUnlock()
	if ok {
		return cached.Clone(), path, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := devcontainer.Parse(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	m.mu.Lock()
	m.cache[path] = doc.Clone()
	m.mu.Unlock()

	return doc, path, nil
}

// Save writes the document to the workspace's configuration path,
// creating .devcontainer/ when needed. Output is indented JSON with a
// trailing newline.
func (m *Manager) Save(root string, doc *devcontainer.Document) (string, error) {
	m.notify(root)

	path, _ := m.ConfigPath(root)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	m.mu.Lock()
	m.cache[path] = doc.Clone()
	m.mu.Unlock()

	log.Info("saved devcontainer configuration", "path", path)
	return path, nil
}

// Invalidate drops the cached parse for a configuration path. Called by
// the watcher when the file changes on disk outside this process.
func (m *Manager) Invalidate(path string) {
	m.mu.Lock()
	if _, ok := m.cache[path]; ok {
		delete(m.cache, path)
		log.Debug("invalidated cached document", "path", path)
	}
	m.mu.Unlock()
}
