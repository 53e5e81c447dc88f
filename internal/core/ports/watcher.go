package ports

import "context"

// Watcher defines the interface for observing changes to a palette file.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Watch starts observing path. The returned channel receives a value after
	// each write to the file and is closed when ctx is done.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
