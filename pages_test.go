// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuildPagePlanFlat(t *testing.T) {
	t.Parallel()

	types := BuildTypeMap(loadFixtureSchema(t))
	plan := BuildPagePlan(types, nil, DeprecatedDefault, nil)

	assert.Len(t, plan, len(Categories()))
	assert.Equal(t, "query/tweet", plan[CategoryQuery]["tweet"])
	assert.Equal(t, "query/legacy-stats", plan[CategoryQuery]["legacyStats"])
	assert.Equal(t, "mutation/create-tweet", plan[CategoryMutation]["createTweet"])
	assert.Equal(t, "object/tweet", plan[CategoryObject]["Tweet"])
	assert.Equal(t, "union/search-result", plan[CategoryUnion]["SearchResult"])
	assert.Equal(t, "input/tweet-filter", plan[CategoryInput]["TweetFilter"])
	assert.Equal(t, "scalar/date-time", plan[CategoryScalar]["DateTime"])
	assert.Equal(t, "directive/doc", plan[CategoryDirective]["doc"])
}

func TestBuildPagePlanGroupedDeprecated(t *testing.T) {
	t.Parallel()

	types := BuildTypeMap(loadFixtureSchema(t))
	groups := GetGroups(types, &GroupByDirective{Directive: "doc", Field: "category", Fallback: "Misc"})
	plan := BuildPagePlan(types, groups, DeprecatedGroup, nil)

	assert.Equal(t, "social/query/tweet", plan[CategoryQuery]["tweet"])
	assert.Equal(t, "misc/query/deprecated/legacy-stats", plan[CategoryQuery]["legacyStats"])
	assert.Equal(t, "common/enum/sort", plan[CategoryEnum]["Sort"])
	assert.Equal(t, "misc/object/stat", plan[CategoryObject]["Stat"])
}

func TestBuildPagePlanSkip(t *testing.T) {
	t.Parallel()

	types := BuildTypeMap(loadFixtureSchema(t))
	plan := BuildPagePlan(types, nil, DeprecatedSkip, []Category{CategoryDirective, CategoryScalar})

	assert.NotContains(t, plan, CategoryDirective)
	assert.NotContains(t, plan, CategoryScalar)
	assert.NotContains(t, plan[CategoryQuery], "legacyStats")
	assert.Contains(t, plan[CategoryQuery], "tweet")
}

func TestBuildPagePlanSuffixesCollidingSlugs(t *testing.T) {
	t.Parallel()

	schema := mustParseSchema(t, `
type Query {
  userId: ID
  user_id: ID
  user_id_2: ID
}
`)
	types := BuildTypeMap(schema)
	plan := BuildPagePlan(types, nil, DeprecatedDefault, nil)

	assert.Equal(t, map[string]string{
		"userId":    "query/user-id",
		"user_id":   "query/user-id-2",
		"user_id_2": "query/user-id-2-2",
	}, plan[CategoryQuery])

	printer, err := NewPrinter(schema, types, plan, PrinterOptions{BaseURL: "schema"})
	require.NoError(t, err)

	dir := t.TempDir()
	pages, err := NewRenderer(printer, plan, RendererOptions{OutputDir: dir}, NopLogger()).RenderAll(context.Background(), types)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	for _, page := range pages {
		require.FileExists(t, filepath.Join(dir, filepath.FromSlash(page.Slug)+DefaultPageExtension))
	}
	assert.Contains(t, readTestFile(t, filepath.Join(dir, "query", "user-id-2.mdx")), "title: user_id\n")
}

func TestRendererPruneStaleKeepsRootFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	renderer, _ := newFixtureRenderer(t, nil, RendererOptions{OutputDir: dir})

	kept := writeTestFile(t, dir, "object/tweet.mdx", "kept")
	stale := writeTestFile(t, dir, "object/gone.mdx", "stale")
	notes := writeTestFile(t, dir, "object/notes.md", "other extension")
	writeTestFile(t, dir, "union/"+CategoryMetafile, "label: Union\n")
	writeTestFile(t, dir, "union/entry.mdx", "stale")
	homepage := writeTestFile(t, dir, "overview.mdx", "root page")

	removed, err := renderer.PruneStale([]PageDescriptor{{Category: "Object", Slug: "object/tweet"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{stale, filepath.Join(dir, "union", "entry.mdx")}, removed)

	assert.FileExists(t, kept)
	assert.FileExists(t, notes)
	assert.FileExists(t, homepage)
	assert.NoFileExists(t, stale)
	assert.NoDirExists(t, filepath.Join(dir, "union"))
}

func TestRendererPruneStaleMissingOutput(t *testing.T) {
	t.Parallel()

	renderer, _ := newFixtureRenderer(t, nil, RendererOptions{OutputDir: filepath.Join(t.TempDir(), "absent")})
	removed, err := renderer.PruneStale(nil)
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func newFixtureRenderer(t *testing.T, plan PagePlan, opt RendererOptions) (*Renderer, SchemaTypeMap) {
	t.Helper()

	schema := loadFixtureSchema(t)
	types := BuildTypeMap(schema)
	if plan == nil {
		plan = BuildPagePlan(types, nil, DeprecatedDefault, nil)
	}

	printer, err := NewPrinter(schema, types, plan, PrinterOptions{BaseURL: "schema"})
	require.NoError(t, err)

	return NewRenderer(printer, plan, opt, NopLogger()), types
}

func readMetafile(t *testing.T, path string) map[string]any {
	t.Helper()

	var meta map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(readTestFile(t, path)), &meta))
	return meta
}

func TestRendererRenderAllWritesPagesAndMetafiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	renderer, types := newFixtureRenderer(t, nil, RendererOptions{OutputDir: dir, GeneratedIndex: true, Workers: 2})

	pages, err := renderer.RenderAll(context.Background(), types)
	require.NoError(t, err)
	require.Len(t, pages, types.Len())

	assert.Equal(t, PageDescriptor{Category: "Query", Slug: "query/legacy-stats"}, pages[0])
	assert.Equal(t, PageDescriptor{Category: "Directive", Slug: "directive/doc"}, pages[len(pages)-1])

	for _, page := range pages {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(page.Slug)+DefaultPageExtension))
	}

	query := readMetafile(t, filepath.Join(dir, "query", CategoryMetafile))
	assert.Equal(t, "Query", query["label"])
	assert.Equal(t, 1, query["position"])
	assert.Equal(t, map[string]any{"type": "generated-index"}, query["link"])

	object := readMetafile(t, filepath.Join(dir, "object", CategoryMetafile))
	assert.Equal(t, 4, object["position"])

	assert.NoFileExists(t, filepath.Join(dir, CategoryMetafile))
}

func TestRendererGroupedDeprecatedMetafiles(t *testing.T) {
	t.Parallel()

	schema := loadFixtureSchema(t)
	types := BuildTypeMap(schema)
	groups := GetGroups(types, &GroupByDirective{Directive: "doc", Field: "category", Fallback: "Misc"})
	plan := BuildPagePlan(types, groups, DeprecatedGroup, nil)

	dir := t.TempDir()
	renderer, _ := newFixtureRenderer(t, plan, RendererOptions{OutputDir: dir, Grouped: true})

	_, err := renderer.RenderAll(context.Background(), types)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "misc", "query", "deprecated", "legacy-stats.mdx"))
	assert.FileExists(t, filepath.Join(dir, "social", "query", "tweet.mdx"))

	deprecated := readMetafile(t, filepath.Join(dir, "misc", "query", "deprecated", CategoryMetafile))
	assert.Equal(t, "Deprecated", deprecated["label"])
	assert.Equal(t, 999, deprecated["position"])
	assert.Equal(t, "deprecated", deprecated["className"])

	query := readMetafile(t, filepath.Join(dir, "misc", "query", CategoryMetafile))
	assert.Equal(t, "Query", query["label"])
	assert.NotContains(t, query, "link")

	misc := readMetafile(t, filepath.Join(dir, "misc", CategoryMetafile))
	assert.Equal(t, "Misc", misc["label"])
	assert.Equal(t, 1, misc["position"])

	social := readMetafile(t, filepath.Join(dir, "social", CategoryMetafile))
	assert.Equal(t, 2, social["position"])
}

func TestRendererRenderTypeListDropsUnnamed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	renderer, types := newFixtureRenderer(t, nil, RendererOptions{OutputDir: dir})

	pages, err := renderer.RenderTypeList(context.Background(), CategoryObject, []*NamedType{
		types[CategoryObject]["Tweet"],
		nil,
		{Name: "", Category: CategoryObject},
	})
	require.NoError(t, err)
	assert.Equal(t, []PageDescriptor{{Category: "Object", Slug: "object/tweet"}}, pages)
}

func TestRendererStopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	renderer, types := newFixtureRenderer(t, nil, RendererOptions{OutputDir: t.TempDir()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := renderer.RenderRootTypes(ctx, CategoryQuery, types[CategoryQuery])
	require.ErrorIs(t, err, context.Canceled)
}

func TestRendererReportsWriteFailure(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o600))

	renderer, types := newFixtureRenderer(t, nil, RendererOptions{OutputDir: blocker})
	_, err := renderer.RenderAll(context.Background(), types)
	require.ErrorIs(t, err, ErrWritePage)
}
