package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/enerjitakip/fatura-extract/constants"
)

type WatchConfig struct {
	Roots       []string // directories to watch (recursive)
	AllowedExts map[string]struct{}
	InitialScan bool          // if true, walk roots and emit existing files
	Debounce    time.Duration // coalesce rapid update/rename bursts
}

// StartWatcher emits paths of invoice files created or modified under the
// configured roots. Scanners drop files into a hot folder, so rapid write
// bursts for one file are debounced into a single emit.
func StartWatcher(ctx context.Context, cfg WatchConfig) (<-chan string, <-chan error, error) {
	if len(cfg.Roots) == 0 {
		slog.Error("watcher start failed: no roots provided")
		return nil, nil, errors.New("no roots provided")
	}
	if cfg.AllowedExts == nil {
		cfg.AllowedExts = constants.AllowedExtensions
	}
	evCh := make(chan string, 256)
	errCh := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("failed to create fsnotify watcher", "error", err)
		return nil, nil, err
	}

	// Add roots recursively
	addDir := func(root string) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return w.Add(path)
			}
			if cfg.InitialScan && watchAllowed(path, cfg.AllowedExts) {
				select {
				case evCh <- path:
				default:
				}
			}
			return nil
		})
	}
	for _, r := range cfg.Roots {
		if err := addDir(r); err != nil {
			slog.Error("failed to add root directory", "root", r, "error", err)
			_ = w.Close()
			return nil, nil, err
		}
	}

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer func() {
			if cerr := w.Close(); cerr != nil {
				slog.Warn("watcher close failed", "error", cerr)
			}
		}()

		// pending belongs to this goroutine only. The debounce timer never
		// touches it; it signals back through timerC and the flush happens
		// here in the loop.
		pending := map[string]struct{}{}
		var timer *time.Timer
		var timerC <-chan time.Time

		sendPending := func() {
			for p := range pending {
				select {
				case evCh <- p:
				default:
				}
				delete(pending, p)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-timerC:
				sendPending()
			case e := <-w.Events:
				if e.Op&fsnotify.Create == fsnotify.Create {
					// a created directory must be watched too; for files the
					// add fails and is ignored below
					tryAddDir(w, e.Name)
				}

				if watchAllowed(e.Name, cfg.AllowedExts) && (e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename)) != 0 {
					pending[e.Name] = struct{}{}
					if cfg.Debounce > 0 {
						if timer == nil {
							timer = time.NewTimer(cfg.Debounce)
							timerC = timer.C
						} else {
							if !timer.Stop() {
								select {
								case <-timer.C:
								default:
								}
							}
							timer.Reset(cfg.Debounce)
						}
					} else {
						sendPending()
					}
				}
			case err := <-w.Errors:
				slog.Error("watcher error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}

func watchAllowed(path string, exts map[string]struct{}) bool {
	_, ok := exts[constants.NormalizeExt(filepath.Ext(path))]
	return ok
}

func tryAddDir(w *fsnotify.Watcher, path string) {
	// best-effort: errors for non-directories are expected
	_ = w.Add(path)
}
