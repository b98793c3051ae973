package watcher

import "context"

// FileWatcher monitors Python sources for changes with debouncing.
type FileWatcher interface {
	// Start begins watching, calling callback with each debounced batch of
	// changed files. Paths in a batch are unique and sorted.
	Start(ctx context.Context, callback func(files []string)) error

	// Stop stops the file watcher and cleans up resources.
	Stop() error
}
