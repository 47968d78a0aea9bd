package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/devcontainer"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/engine"
)

func TestLoadMissingConfig(t *testing.T) {
	m := NewManager()

	_, _, err := m.Load(t.TempDir())
	if !errors.Is(err, engine.ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	m := NewManager()
	root := t.TempDir()

	doc := &devcontainer.Document{
		Name:         "Env",
		Image:        "alpine:3.19",
		ForwardPorts: []int{3000},
	}

	path, err := m.Save(root, doc)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if path != filepath.Join(root, ".devcontainer", "devcontainer.json") {
		t.Errorf("unexpected path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("saved file should end with a newline")
	}

	loaded, loadedPath, err := m.Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loadedPath != path {
		t.Errorf("Load path %s, want %s", loadedPath, path)
	}
	if loaded.Name != "Env" || loaded.Image != "alpine:3.19" {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestLoadRootLevelConfig(t *testing.T) {
	m := NewManager()
	root := t.TempDir()

	content := `{"name": "Root Level", "image": "alpine:3.19"}`
	if err := os.WriteFile(filepath.Join(root, ".devcontainer.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	doc, path, err := m.Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if filepath.Base(path) != ".devcontainer.json" {
		t.Errorf("unexpected path %s", path)
	}
	if doc.Name != "Root Level" {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestLoadedDocumentDoesNotPoisonCache(t *testing.T) {
	m := NewManager()
	root := t.TempDir()

	if _, err := m.Save(root, &devcontainer.Document{Name: "Env"}); err != nil {
		t.Fatal(err)
	}

	first, _, err := m.Load(root)
	if err != nil {
		t.Fatal(err)
	}
	first.Name = "Mutated"

	second, _, err := m.Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if second.Name != "Env" {
		t.Errorf("mutating a loaded document leaked into the cache: %q", second.Name)
	}
}

func TestInvalidateForcesReload(t *testing.T) {
	m := NewManager()
	root := t.TempDir()

	path, err := m.Save(root, &devcontainer.Document{Name: "Old"})
	if err != nil {
		t.Fatal(err)
	}

	// Simulate an outside edit.
	if err := os.WriteFile(path, []byte(`{"name": "New"}`), 0644); err != nil {
		t.Fatal(err)
	}

	doc, _, err := m.Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "Old" {
		t.Fatalf("expected cached document before invalidation, got %q", doc.Name)
	}

	m.Invalidate(path)

	doc, _, err = m.Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "New" {
		t.Errorf("expected reloaded document after invalidation, got %q", doc.Name)
	}
}

func TestObserverSeesTouchedRoots(t *testing.T) {
	m := NewManager()
	root := t.TempDir()

	var seen []string
	m.SetObserver(func(r string) { seen = append(seen, r) })

	if _, err := m.Save(root, &devcontainer.Document{Name: "Env"}); err != nil {
		t.Fatal(err)
	}

	if len(seen) != 1 || seen[0] != root {
		t.Errorf("observer saw %v, want [%s]", seen, root)
	}
}
