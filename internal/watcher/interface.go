package watcher

import "context"

// Watcher monitors a drop directory for new lecture videos.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// IntakeHandler handles one newly dropped video file.
type IntakeHandler func(ctx context.Context, videoPath string) error
