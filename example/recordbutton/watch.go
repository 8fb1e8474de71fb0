// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"gioui.org/x/recordbutton"
)

// watcher reloads a configuration file when it changes. It watches the
// file's directory, so the watch survives editors that save by
// replacing the file.
type watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	onReload func(recordbutton.Config)
	done     chan struct{}
}

func newWatcher(path string, onReload func(recordbutton.Config)) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &watcher{
		path:     path,
		fsw:      fsw,
		onReload: onReload,
		done:     make(chan struct{}),
	}, nil
}

func (w *watcher) Start() {
	go w.watch()
}

func (w *watcher) Stop() {
	close(w.done)
	w.fsw.Close()
}

func (w *watcher) watch() {
	for {
		select {
		case <-w.done:
			return
		case e, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Has(fsnotify.Write) || e.Has(fsnotify.Create) {
				w.reload()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Config watcher error: %v", err)
		}
	}
}

func (w *watcher) reload() {
	cfg, err := recordbutton.LoadConfig(w.path)
	if err != nil {
		log.Printf("Failed to reload config: %v", err)
		return
	}
	w.onReload(cfg)
}
