package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/tailor"
)

// debounce collapses the bursts of events editors emit for one save.
var debounce = 100 * time.Millisecond

// Watch reloads path whenever it changes and calls fn with the result. It
// blocks until ctx is done and then returns nil. fn runs on the calling
// goroutine, one call at a time.
//
// The directory is watched rather than the file, so saves that replace
// the file are seen.
func Watch(ctx context.Context, path string, fn func(*File, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := DecoderFor(abs); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}

	log := tailor.Logger()
	log.Info("config: watching", "path", abs)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("config: watch stopped", "path", abs)
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("config: change detected", "path", abs, "op", ev.Op.String())
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("config: watch error", "err", err)

		case <-timer.C:
			f, err := Load(abs)
			if err != nil {
				log.Warn("config: reload failed", "path", abs, "err", err)
			} else {
				log.Info("config: reloaded", "path", abs)
			}
			fn(f, err)
		}
	}
}
