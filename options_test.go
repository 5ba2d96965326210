// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOptionsPrecedence(t *testing.T) {
	t.Parallel()

	defaults := DefaultOptions()
	file := Options{
		Schema:     "file.graphql",
		BaseURL:    "api",
		DiffMethod: "HASH",
		Skip:       []string{"directive"},
		NoCode:     Bool(true),
		NoIndex:    Bool(true),
		WrapWidth:  100,
	}
	cli := Options{
		Schema:   " cli.graphql ",
		RootPath: "site",
		Force:    Bool(true),
		NoIndex:  Bool(false),
	}

	got := MergeOptions(defaults, file, cli)

	assert.Equal(t, "cli.graphql", got.Schema)
	assert.Equal(t, "site", got.RootPath)
	assert.Equal(t, "api", got.BaseURL)
	assert.Equal(t, "HASH", got.DiffMethod)
	assert.Equal(t, defaults.LinkRoot, got.LinkRoot)
	assert.Equal(t, defaults.TmpDir, got.TmpDir)
	assert.Equal(t, []string{"directive"}, got.Skip)
	assert.Equal(t, 100, got.WrapWidth)
	assert.True(t, enabled(got.NoCode))
	assert.True(t, enabled(got.Force))
	assert.False(t, enabled(got.NoIndex), "explicit false must switch off file value")
	assert.Nil(t, got.NoPretty)
	assert.Equal(t, filepath.Join("site", "api"), got.OutputDir())
}

func TestMergeOptionsBlankDoesNotOverride(t *testing.T) {
	t.Parallel()

	got := MergeOptions(DefaultOptions(), Options{BaseURL: "  "}, Options{})
	assert.Equal(t, defaultBaseURL, got.BaseURL)
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, DefaultConfigFile, `
schema: ./schema.graphql
rootPath: ./website/docs
baseURL: reference
groupByDirective: "@doc(category|=Common)"
deprecated: group
skip: [directives, scalars]
loaders: [file]
noRelated: true
wrapWidth: 72
template: table
`)

	opt, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, Options{
		Schema:           "./schema.graphql",
		RootPath:         "./website/docs",
		BaseURL:          "reference",
		GroupByDirective: "@doc(category|=Common)",
		Deprecated:       "group",
		Skip:             []string{"directives", "scalars"},
		Loaders:          []string{"file"},
		NoRelated:        Bool(true),
		WrapWidth:        72,
		Template:         "table",
	}, opt)
}

func TestLoadConfigFileErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yml"))
	require.ErrorIs(t, err, ErrReadConfig)

	path := writeTestFile(t, t.TempDir(), "bad.yml", "skip: {broken")
	_, err = LoadConfigFile(path)
	require.ErrorIs(t, err, ErrReadConfig)
}

func TestParseDeprecatedMode(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]DeprecatedMode{
		"":        DeprecatedDefault,
		"default": DeprecatedDefault,
		" Group ": DeprecatedGroup,
		"SKIP":    DeprecatedSkip,
	} {
		got, err := ParseDeprecatedMode(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseDeprecatedMode("hide")
	require.ErrorIs(t, err, ErrUnknownDeprecatedMode)
}
