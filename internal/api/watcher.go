package api

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// phraseReloadDebounce coalesces the burst of write events an editor or
// config pusher produces into one reload.
const phraseReloadDebounce = time.Second

// WatchPhrases reloads the scorer whenever the configured phrase file
// changes on disk. Blocks until ctx is done or the watcher breaks.
func (s *Server) WatchPhrases(ctx context.Context) error {
	if s.phrasesFile == "" {
		return errors.New("no phrase file configured to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(s.phrasesFile)
	if err != nil {
		return err
	}
	if err := watcher.Add(absPath); err != nil {
		return err
	}
	s.log.Info("watching phrase tables", zap.String("file", absPath))

	timer := time.NewTimer(phraseReloadDebounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(phraseReloadDebounce)
			}

		case <-timer.C:
			if err := s.reloadScorer(); err != nil {
				s.log.Error("phrase reload failed", zap.Error(err))
				continue
			}
			s.log.Info("phrase tables reloaded", zap.String("source", absPath))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Error("phrase watcher error", zap.Error(err))
		}
	}
}
