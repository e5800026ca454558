package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Load reads, decodes and validates the graph file at path.
func Load(path string) (*GraphFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("graph %s: %w", path, err)
	}

	return f, nil
}

// Parse decodes and validates a graph-file document. Unknown keys are
// rejected. An empty document is an empty graph.
func Parse(data []byte) (*GraphFile, error) {
	var f GraphFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := Validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// ErrWatch wraps errors reported by the file watcher itself.
var ErrWatch = errors.New("graph watcher")

// Loader holds the latest valid graph file and reloads it on demand or
// when the file changes on disk.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *GraphFile
	onChange []func(*GraphFile, error)
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}

	return &Loader{path: path, current: f}, nil
}

// Current returns the latest valid graph file.
func (l *Loader) Current() *GraphFile {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers a callback run after every reload attempt. On failure
// it receives the previous valid file together with the error.
func (l *Loader) OnChange(fn func(*GraphFile, error)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload re-reads the file. A file that fails to load leaves Current
// unchanged.
func (l *Loader) Reload() (*GraphFile, error) {
	f, err := Load(l.path)

	l.mu.Lock()
	if err == nil {
		l.current = f
	}
	l.mu.Unlock()

	l.notify(err)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// notify hands the current file and err to every OnChange callback.
func (l *Loader) notify(err error) {
	l.mu.RLock()
	cur := l.current
	callbacks := make([]func(*GraphFile, error), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.RUnlock()

	for _, fn := range callbacks {
		fn(cur, err)
	}
}

func watchError(err error) error {
	return fmt.Errorf("%w: %w", ErrWatch, err)
}

// Watch starts a goroutine that reloads the file whenever it is written,
// created or renamed into place. The parent directory is watched so editors
// that replace the file atomically are still seen. Watcher failures reach
// the OnChange callbacks wrapped in ErrWatch. Call stop to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("graph watcher: %w", err)
	}
	dir := filepath.Dir(l.path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("graph watcher add %s: %w", dir, err)
	}
	target := filepath.Clean(l.path)

	done := make(chan struct{})
	var once sync.Once
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					_, _ = l.Reload()
				}
			case werr, ok := <-w.Errors:
				if !ok {
					return
				}
				l.notify(watchError(werr))
			case <-done:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }, nil
}
