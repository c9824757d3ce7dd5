package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/storefront-cli/internal/ports"
	"github.com/fsnotify/fsnotify"
)

var _ ports.StorageWatcher = (*Store)(nil)

// Watch calls onChange with the key of every file written, renamed into
// place or removed in the store root until ctx ends. Temp files and
// subdirectories are not reported. onChange runs on the watcher goroutine.
func (s *Store) Watch(ctx context.Context, onChange func(key string)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.root, storeDirMode); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create storage watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.root); err != nil {
		return fmt.Errorf("watch storage directory: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			key, ok := s.keyForPath(event.Name)
			if !ok {
				continue
			}
			onChange(key)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("storage watcher: %w", err)
		}
	}
}

func (s *Store) keyForPath(path string) (string, bool) {
	if filepath.Dir(filepath.Clean(path)) != s.root {
		return "", false
	}

	name := filepath.Base(path)
	if name == "" || strings.HasPrefix(name, ".") {
		return "", false
	}

	return name, true
}
