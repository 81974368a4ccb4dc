package assets

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher reports material files changed on disk so edits show up without
// restarting the demo. fsnotify delivers events on its own goroutine; the
// scene drains Changed between frames, keeping all mutation on the main
// thread.
type Watcher struct {
	fw      *fsnotify.Watcher
	changed chan string
	done    chan struct{}
}

// NewWatcher watches dir for writes to *.yaml files.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating material watcher")
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "watching %s", dir)
	}
	w := &Watcher{
		fw:      fw,
		changed: make(chan string, 16),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(ev.Name, ".yaml") {
				continue
			}
			select {
			case w.changed <- ev.Name:
			default: // frame will pick up the next event; drops are fine
			}
		case <-w.fw.Errors:
			// Watch errors are non-fatal; live reload just degrades.
		case <-w.done:
			return
		}
	}
}

// Drain returns the paths changed since the last call, without blocking.
func (w *Watcher) Drain() []string {
	var paths []string
	for {
		select {
		case p := <-w.changed:
			paths = append(paths, p)
		default:
			return paths
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
