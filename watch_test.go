// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchRegeneratesOnSchemaChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	schemaPath := writeTestFile(t, dir, "schema.graphql", tweetSDL)
	opt := Options{
		Schema:   schemaPath,
		RootPath: filepath.Join(dir, "docs"),
		TmpDir:   filepath.Join(dir, "tmp"),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var results []Result
	var errs []error
	onResult := func(result Result, err error) {
		if len(results) == 2 {
			return
		}

		results = append(results, result)
		errs = append(errs, err)
		if len(results) == 2 {
			cancel()
			return
		}

		updated := strings.Replace(tweetSDL, "body: String", "body: String\n  likes: Int", 1)
		if err := os.WriteFile(schemaPath, []byte(updated), 0o600); err != nil {
			errs = append(errs, err)
			cancel()
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, opt, WatchOptions{Debounce: 20 * time.Millisecond, OnResult: onResult}, NopLogger())
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		cancel()
		t.Fatal("watch did not regenerate after schema change")
	}

	require.Len(t, results, 2)
	for _, err := range errs {
		require.NoError(t, err)
	}

	assert.True(t, results[0].Changed)
	assert.True(t, results[1].Changed)
	assertContains(t, readTestFile(t, filepath.Join(dir, "docs", "schema", "object", "tweet.mdx")), "Tweet.likes")
}

func TestWatchRejectsUnwatchableLocations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	err := Watch(ctx, Options{}, WatchOptions{}, nil)
	require.ErrorIs(t, err, ErrMissingSchemaLocation)

	err = Watch(ctx, Options{Schema: "https://example.com/schema.graphql"}, WatchOptions{}, nil)
	require.ErrorIs(t, err, ErrWatchUnsupported)

	err = Watch(ctx, Options{Schema: filepath.Join(t.TempDir(), "absent.graphql")}, WatchOptions{}, nil)
	require.ErrorIs(t, err, ErrWatchUnsupported)
}

func TestWatchTarget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeTestFile(t, dir, "schema.graphql", tweetSDL)

	gotDir, gotFile, err := watchTarget(file)
	require.NoError(t, err)
	assert.Equal(t, dir, gotDir)
	assert.Equal(t, filepath.Clean(file), gotFile)

	gotDir, gotFile, err = watchTarget(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, gotDir)
	assert.Empty(t, gotFile)

	gotDir, gotFile, err = watchTarget(filepath.Join(dir, "*.graphql"))
	require.NoError(t, err)
	assert.Equal(t, dir, gotDir)
	assert.Empty(t, gotFile)
}

func TestIsSchemaEvent(t *testing.T) {
	t.Parallel()

	file := filepath.Join("schemas", "schema.graphql")
	tests := []struct {
		name  string
		event fsnotify.Event
		file  string
		want  bool
	}{
		{name: "write watched file", event: fsnotify.Event{Name: file, Op: fsnotify.Write}, file: file, want: true},
		{name: "rename watched file", event: fsnotify.Event{Name: file, Op: fsnotify.Rename}, file: file, want: true},
		{name: "other file in dir", event: fsnotify.Event{Name: filepath.Join("schemas", "other.graphql"), Op: fsnotify.Write}, file: file},
		{name: "chmod only", event: fsnotify.Event{Name: file, Op: fsnotify.Chmod}, file: file},
		{name: "dir mode schema", event: fsnotify.Event{Name: filepath.Join("schemas", "types.GQL"), Op: fsnotify.Create}, want: true},
		{name: "dir mode other", event: fsnotify.Event{Name: filepath.Join("schemas", "notes.txt"), Op: fsnotify.Write}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, isSchemaEvent(tt.event, tt.file))
		})
	}
}
