package configwatcher

import (
	"path/filepath"
	"sync"
	"time"

	"skillpath_backend/internal/config"
	"skillpath_backend/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

type ConfigReloader func(cfg *config.Config)

// WatchConfig re-reads the config file after each write and hands the fresh
// config to the reloader. Editors tend to fire several write events per save,
// so reloads are debounced by a second. Blocks; run it in a goroutine.
func WatchConfig(configPath string, reloader ConfigReloader) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Log.Error("Failed to create config watcher", zap.Error(err))
		return
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		logger.Log.Error("Failed to resolve config path", zap.Error(err))
		return
	}

	if err := watcher.Add(absPath); err != nil {
		logger.Log.Error("Failed to watch config file", zap.Error(err))
		return
	}

	var mu sync.Mutex
	timer := time.NewTimer(0)
	<-timer.C

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				mu.Lock()
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(1 * time.Second)
				mu.Unlock()
			}
		case <-timer.C:
			newCfg, err := config.LoadConfig(filepath.Dir(configPath))
			if err != nil {
				logger.Log.Error("Failed to reload config", zap.Error(err))
				continue
			}
			reloader(newCfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}
