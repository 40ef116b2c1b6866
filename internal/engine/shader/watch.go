package shader

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/simpleforest/internal/logger"
)

// settle is how long a burst of editor writes is coalesced into one reload.
const settle = 100 * time.Millisecond

// Watcher reports which shader programs in a directory changed on disk.
// Program names are file names without the .vert/.frag extension.
type Watcher struct {
	fs  *fsnotify.Watcher
	log *zap.Logger

	mu      sync.Mutex
	pending map[string]time.Time
	done    chan struct{}
	wg      sync.WaitGroup
}

// Watch starts watching dir for .vert and .frag edits.
func Watch(dir string, log *zap.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("shader watcher: watch %s: %w", dir, err)
	}

	w := &Watcher{
		fs:      fs,
		log:     logger.OrNop(log),
		pending: make(map[string]time.Time),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	w.log.Info("watching shaders", zap.String("dir", dir))
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name, ok := programName(ev.Name)
			if !ok {
				continue
			}
			w.mu.Lock()
			w.pending[name] = time.Now()
			w.mu.Unlock()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("shader watcher error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

func programName(path string) (string, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != ".vert" && ext != ".frag" {
		return "", false
	}
	return strings.TrimSuffix(base, ext), true
}

// Changed returns the programs whose sources were edited at least settle
// ago and forgets them. It never blocks, so the render loop calls it every
// frame.
func (w *Watcher) Changed() []string {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	var names []string
	now := time.Now()
	for name, at := range w.pending {
		if now.Sub(at) >= settle {
			names = append(names, name)
			delete(w.pending, name)
		}
	}
	return names
}

// Close stops watching. Safe on nil.
func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}
