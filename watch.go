package scrollcam

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long the file must stay quiet before a change is reported.
// Editors often write a file in several steps.
const debounce = 100 * time.Millisecond

// ConfigWatcher reloads a config file when it changes on disk. The fsnotify
// goroutine only forwards change notices; Poll does the reload on the caller's
// goroutine so the frame loop stays single-threaded.
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	events  chan struct{}
	errors  chan error
	closeCh chan struct{}
	once    sync.Once

	// Overrides, when set, is applied to every reloaded config. Programs use
	// it to keep command-line settings in force across reloads.
	Overrides func(*Config)
}

// WatchConfig starts watching path. The parent directory is watched so
// rename-on-save editors are picked up.
func WatchConfig(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		path:    abs,
		watcher: w,
		events:  make(chan struct{}, 1),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

// Path returns the absolute path being watched.
func (w *ConfigWatcher) Path() string { return w.path }

// Close stops the watcher. Safe to call more than once.
func (w *ConfigWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *ConfigWatcher) run() {
	settle := time.NewTimer(debounce)
	settle.Stop()
	defer settle.Stop()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			settle.Reset(debounce)
		case <-settle.C:
			select {
			case w.events <- struct{}{}:
			default: // a reload is already pending
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Poll never blocks. It reports ok when the file changed since the last call
// and loaded cleanly. A change that fails to load returns the error and
// ok false; the caller keeps its current config.
func (w *ConfigWatcher) Poll() (cfg Config, ok bool, err error) {
	select {
	case err := <-w.errors:
		return Config{}, false, err
	default:
	}
	select {
	case <-w.events:
	default:
		return Config{}, false, nil
	}
	cfg, err = LoadConfig(w.path)
	if err != nil {
		return Config{}, false, err
	}
	if w.Overrides != nil {
		w.Overrides(&cfg)
	}
	return cfg, true, nil
}
