package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the section file at path whenever it is written or created,
// and sends each successfully parsed store on the returned channel. Parse failures are logged and skipped so a half-saved
// file never replaces good content. The channel is closed when ctx is done.
//
// The parent directory is watched rather than the file so editors that
// save by rename keep working.
func Watch(ctx context.Context, path string) (<-chan *Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	out := make(chan *Store, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				st, err := LoadFile(abs)
				if err != nil {
					slog.Warn("content reload failed", "component", "content", "path", abs, "err", err)
					continue
				}
				slog.Info("content reloaded", "component", "content", "path", abs, "sections", st.Len())
				// Keep only the newest store if the consumer is behind.
				select {
				case <-out:
				default:
				}
				select {
				case out <- st:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("content watcher error", "component", "content", "err", err)
			}
		}
	}()
	return out, nil
}
