package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/bmi-cli/internal/logger"
)

// reloadDelay coalesces bursts of events, such as the truncate and write
// of a single os.WriteFile or several consecutive Set calls, into one reload.
var reloadDelay = 150 * time.Millisecond

// Watch reloads the store whenever the config file is written, created or
// renamed into place, then calls onChange. The parent directory is watched
// rather than the file so editors that replace the file are still seen.
// Events are debounced by reloadDelay. A zero-length read is never
// published. Watch blocks until ctx is cancelled.
func (s *ConfigStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.filePath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !s.isConfigEvent(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDelay)
			} else {
				timer.Reset(reloadDelay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			changed, err := s.reload()
			if err != nil {
				logger.Warn("Config reload failed: %v", err)
				continue
			}
			if !changed {
				continue
			}
			logger.Debug("Config reloaded from %s", s.filePath)
			if onChange != nil {
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watcher error: %v", err)
		}
	}
}

// reload re-reads the config file for the watcher. It reports false and
// keeps the current values when the file is missing or empty, which is
// what a reader sees partway through a non-atomic write.
func (s *ConfigStore) reload() (bool, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if len(data) == 0 {
		logger.Debug("Skipping reload of empty %s", s.filePath)
		return false, nil
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return false, fmt.Errorf("parse %s: %w", s.filePath, err)
	}

	s.mu.Lock()
	s.data = flattenMap(loaded, "")
	s.mu.Unlock()
	return true, nil
}

func (s *ConfigStore) isConfigEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(s.filePath) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
