package javagen

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/jpoet/errors"
	"github.com/teranos/jpoet/logger"
)

// DefaultDebounce is how long the watcher waits for changes to settle.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reruns a generation when Go sources in the watched directories
// change. Runs never overlap.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *zap.SugaredLogger
}

// Dirs returns the source directories of pkgs, sorted and without duplicates.
func Dirs(pkgs []Package) []string {
	set := make(map[string]bool)
	for _, pkg := range pkgs {
		for _, f := range pkg.Files {
			set[filepath.Dir(f)] = true
		}
	}
	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// NewWatcher watches dirs. A debounce <= 0 selects DefaultDebounce.
func NewWatcher(dirs []string, debounce time.Duration, log *zap.SugaredLogger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = logger.ComponentLogger("watch")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}
	return &Watcher{watcher: fw, debounce: debounce, logger: log}, nil
}

// Run calls fn after each settled burst of source changes until ctx is done.
// Errors from fn are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, fn func(context.Context) error) error {
	defer w.watcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !isSource(event.Name) || event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}
			w.logger.Debugw("source changed", logger.FieldFile, event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			start := time.Now()
			if err := fn(ctx); err != nil {
				w.logger.Errorw("regeneration failed", logger.FieldError, err)
				continue
			}
			w.logger.Infow("regenerated", logger.FieldDurationMS, time.Since(start).Milliseconds())

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("watcher error", logger.FieldError, err)
		}
	}
}

// isSource reports whether path is a non-test Go file.
func isSource(path string) bool {
	return strings.HasSuffix(path, ".go") && !strings.HasSuffix(path, "_test.go")
}
