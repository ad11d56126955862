package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/benoitkugler/svgpathgen/logging"
	"github.com/benoitkugler/svgpathgen/svgdoc"
)

// report prints the diagnostic of a failed run, without stopping.
func (j *job) report(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, svgdoc.Diagnostic(err))
	}
}

// watchFile runs the job on `filename`, then again each time
// the file is written, until `ctx` is done.
func watchFile(ctx context.Context, filename string, j *job) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// editors often replace the file : watch its directory instead
	filename = filepath.Clean(filename)
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return err
	}

	j.report(j.runFile(filename))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filename {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {
				logging.Logger().Debug("input changed", "file", filename, "op", event.Op.String())
				j.report(j.runFile(filename))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Logger().Warn("watching input", "error", err)
		}
	}
}
