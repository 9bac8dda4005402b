package cli

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// awaitChange blocks until one of the given files is written, created or
// renamed, and returns the path that changed. The parent directories are
// watched rather than the files themselves so that editors which replace
// files on save are still observed.
func awaitChange(files []string) (string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return "", err
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, file := range files {
		watched[filepath.Clean(file)] = true
		dirs[filepath.Dir(file)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return "", err
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return "", nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				return event.Name, nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return "", nil
			}
			return "", err
		}
	}
}
