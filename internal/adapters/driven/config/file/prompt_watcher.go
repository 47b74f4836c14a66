package file

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/butch-garage/showroom/internal/logger"
)

// PromptWatcher reloads a PromptStore whenever a prompt file changes on disk.
type PromptWatcher struct {
	mu       sync.Mutex
	store    *PromptStore
	watcher  *fsnotify.Watcher
	onReload func(name string)
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewPromptWatcher creates a watcher for the store's prompt directory.
// onReload, if non-nil, is called with the prompt name after each reload.
func NewPromptWatcher(store *PromptStore, onReload func(name string)) (*PromptWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create prompt watcher: %w", err)
	}
	return &PromptWatcher{
		store:    store,
		watcher:  w,
		onReload: onReload,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking; events are handled in a
// goroutine until ctx is cancelled or Stop is called.
func (pw *PromptWatcher) Start(ctx context.Context) error {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	if pw.running {
		return nil
	}

	if err := pw.store.Init(); err != nil {
		return err
	}
	if err := pw.watcher.Add(pw.store.Dir()); err != nil {
		return fmt.Errorf("watch %s: %w", pw.store.Dir(), err)
	}
	logger.Debug("Watching prompts in %s", pw.store.Dir())

	pw.running = true
	go pw.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit.
func (pw *PromptWatcher) Stop() error {
	pw.mu.Lock()
	running := pw.running
	pw.running = false
	pw.mu.Unlock()

	if running {
		close(pw.stopCh)
		<-pw.doneCh
	}
	return pw.watcher.Close()
}

func (pw *PromptWatcher) run(ctx context.Context) {
	defer close(pw.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-pw.stopCh:
			return
		case event, ok := <-pw.watcher.Events:
			if !ok {
				return
			}
			pw.handleEvent(event)
		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Prompt watcher error: %v", err)
		}
	}
}

func (pw *PromptWatcher) handleEvent(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, ".txt") {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	name := strings.TrimSuffix(filepath.Base(event.Name), ".txt")
	pw.store.Reload()
	logger.Debug("Prompt %q changed (%s), cache cleared", name, event.Op)

	if pw.onReload != nil {
		pw.onReload(name)
	}
}
