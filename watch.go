// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is the quiet period before a change triggers regeneration.
const DefaultWatchDebounce = 250 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	// Debounce overrides DefaultWatchDebounce.
	Debounce time.Duration
	// OnResult receives every run outcome; nil ignores them.
	OnResult func(Result, error)
}

// Watch runs Generate once and again after every debounced change of
// file-based schema sources. It returns when ctx ends.
func Watch(ctx context.Context, opt Options, watch WatchOptions, logger Logger) error {
	logger = loggerOrNop(logger)
	if strings.TrimSpace(opt.Schema) == "" {
		return ErrMissingSchemaLocation
	}

	if isURLLocation(opt.Schema) {
		return fmt.Errorf("%w %q", ErrWatchUnsupported, opt.Schema)
	}

	debounce := watch.Debounce
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	report := func(result Result, err error) {
		if err != nil {
			logger.Error("generation failed", "error", err)
		}

		if watch.OnResult != nil {
			watch.OnResult(result, err)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatchUnsupported, err)
	}
	defer func() {
		_ = fsw.Close()
	}()

	dir, file, err := watchTarget(opt.Schema)
	if err != nil {
		return err
	}

	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWatchUnsupported, dir, err)
	}

	logger.Info("watching schema", "location", opt.Schema, "dir", dir, "debounce", debounce)
	report(Generate(ctx, opt, logger))

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			if !isSchemaEvent(event, file) {
				continue
			}

			logger.Debug("schema change", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			logger.Warn("watcher error", "error", err)
		case <-timer.C:
			report(Generate(ctx, opt, logger))
		}
	}
}

// watchTarget returns directory to subscribe for schema location, and the
// schema file itself when location is a single file.
func watchTarget(location string) (string, string, error) {
	if strings.ContainsAny(location, "*?[") {
		return filepath.Dir(location), "", nil
	}

	info, err := os.Stat(location)
	if err != nil {
		return "", "", fmt.Errorf("%w %q: %w", ErrWatchUnsupported, location, err)
	}

	if info.IsDir() {
		return location, "", nil
	}

	return filepath.Dir(location), filepath.Clean(location), nil
}

// isSchemaEvent reports whether event changes the watched schema file, or any
// schema file when file is empty.
func isSchemaEvent(event fsnotify.Event, file string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}

	if file != "" {
		return filepath.Clean(event.Name) == file
	}

	_, ok := schemaFileExtensions[strings.ToLower(filepath.Ext(event.Name))]
	return ok
}
