package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// ReloadedMsg carries a configuration re-read after its file changed.
type ReloadedMsg struct {
	Config *Config
	Err    error
}

// Watch reloads the file at path whenever it is written or created and
// calls fn with the result. It watches the parent directory so editors that
// replace the file on save are seen too. Watch returns once the watcher is
// running; the loop stops when ctx is done.
func Watch(ctx context.Context, path string, fn func(ReloadedMsg)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return fmt.Errorf("config watcher: %w", err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(abs)
				if err != nil {
					log.Warn().Err(err).Str("path", abs).Msg("config: reload failed")
				} else {
					log.Info().Str("path", abs).Msg("config: reloaded")
				}
				fn(ReloadedMsg{Config: cfg, Err: err})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("config: watcher error")
			}
		}
	}()
	return nil
}
