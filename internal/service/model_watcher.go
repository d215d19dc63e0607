package service

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"betterrest/internal/logger"
	"betterrest/internal/regression"

	"github.com/fsnotify/fsnotify"
)

// ModelWatcherService hot-swaps the model when its artifact file changes.
type ModelWatcherService struct {
	provider *regression.Provider
	log      *logger.Logger
	stat     func(name string) (os.FileInfo, error)

	lastMod time.Time
}

func NewModelWatcherService(provider *regression.Provider, log *logger.Logger) *ModelWatcherService {
	return &ModelWatcherService{provider: provider, log: log, stat: os.Stat}
}

// Run watches the artifact until ctx is canceled. File system events trigger
// a check right away; the ticker catches anything the events miss (network
// mounts, editors that swap directories). It returns at once when there is
// no artifact file to watch or tick is not positive.
func (s *ModelWatcherService) Run(ctx context.Context, tick time.Duration) {
	if s.provider == nil || s.provider.ArtifactPath() == "" || tick <= 0 {
		return
	}
	path := s.provider.ArtifactPath()
	if fi, err := s.stat(path); err == nil {
		s.lastMod = fi.ModTime()
	}

	var events <-chan fsnotify.Event
	var errs <-chan error
	if fsw, err := fsnotify.NewWatcher(); err != nil {
		s.log.Warnw("model_watch_unavailable", "path", path, "err", err)
	} else {
		defer func() { _ = fsw.Close() }()
		// The parent directory survives atomic replaces of the file itself.
		if err := fsw.Add(filepath.Dir(path)); err != nil {
			s.log.Warnw("model_watch_unavailable", "path", path, "err", err)
		} else {
			events, errs = fsw.Events, fsw.Errors
		}
	}

	target := filepath.Clean(path)
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if filepath.Clean(ev.Name) == target && ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				s.check()
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			s.log.Warnw("model_watch_error", "path", path, "err", err)
		case <-t.C:
			s.check()
		}
	}
}

// check reloads when the modification time moved. It reports whether a reload happened.
func (s *ModelWatcherService) check() bool {
	path := s.provider.ArtifactPath()
	fi, err := s.stat(path)
	if err != nil {
		s.log.Debugw("model_artifact_stat_failed", "path", path, "err", err)
		return false
	}
	if fi.ModTime().Equal(s.lastMod) {
		return false
	}

	// lastMod only moves on success, so a half-written file is retried.
	if err := s.provider.Reload(); err != nil {
		s.log.Errorw("model_reload_failed", "path", path, "err", err)
		return false
	}
	s.lastMod = fi.ModTime()
	info, _ := s.provider.Info()
	s.log.Infow("model_reloaded", "path", path, "name", info.Name, "version", info.Version)
	return true
}
