package config

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Prompt holds the base LLM system prompt and reloads it when the backing
// file changes, so operators can tune prompts without a restart.
type Prompt struct {
	mu   sync.RWMutex
	text string
	path string
	log  *slog.Logger
}

// LoadPrompt reads the prompt file verbatim.
func LoadPrompt(path string, log *slog.Logger) (*Prompt, error) {
	if log == nil {
		log = slog.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Prompt{text: string(data), path: path, log: log}, nil
}

// Text returns the current prompt.
func (p *Prompt) Text() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.text
}

// Watch reloads the prompt on file changes until ctx is cancelled.
func (p *Prompt) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(p.path); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				data, err := os.ReadFile(p.path)
				if err != nil {
					p.log.Warn("prompt reload failed", "path", p.path, "error", err)
					continue
				}
				p.mu.Lock()
				p.text = string(data)
				p.mu.Unlock()
				p.log.Info("prompt reloaded", "path", p.path, "bytes", len(data))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Warn("prompt watcher error", "error", err)
			}
		}
	}()
	return nil
}
