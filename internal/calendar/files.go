package calendar

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// DefaultCleanupDelay is how long a temp calendar file lives before
// removal. Transports read the file well within this window.
const DefaultCleanupDelay = 30 * time.Second

// WriteTemp writes a rendered calendar under dir and schedules its
// removal after delay. The returned path is valid until then. Temp
// files exist only as a debugging convenience; transports send the
// in-memory bytes directly.
func WriteTemp(dir, filename string, data []byte, delay time.Duration, log *zap.Logger) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating temp dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing calendar file: %w", err)
	}
	if delay <= 0 {
		delay = DefaultCleanupDelay
	}
	scheduleCleanup(path, delay, log)
	return path, nil
}

func scheduleCleanup(path string, delay time.Duration, log *zap.Logger) {
	time.AfterFunc(delay, func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Warn("removing temp calendar file", zap.String("path", path), zap.Error(err))
		}
	})
}
