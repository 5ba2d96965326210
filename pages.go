// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultPageExtension is the file extension of generated pages.
	DefaultPageExtension = ".mdx"
	// deprecatedDir is the sub-directory receiving deprecated entities in group mode.
	deprecatedDir = "deprecated"
	// deprecatedClassName is the style class of deprecated category.
	deprecatedClassName = "deprecated"
	// deprecatedPosition places deprecated category last.
	deprecatedPosition = 999
)

// PagePlan maps every rendered entity to its output-root relative slug.
type PagePlan map[Category]map[string]string

// BuildPagePlan decides page slugs for all entities.
// Skipped categories and deprecated entities in skip mode are left out.
// Names collapsing into one slug (userId, user_id) get numeric suffixes in
// sorted name order, so the first name keeps the plain slug.
func BuildPagePlan(types SchemaTypeMap, groups GroupMap, mode DeprecatedMode, skip []Category) PagePlan {
	plan := make(PagePlan, len(types))
	for _, category := range categoryOrder {
		if slices.Contains(skip, category) {
			continue
		}

		slugs := make(map[string]string, len(types[category]))
		taken := make(map[string]struct{}, len(types[category]))
		for _, name := range types.Names(category) {
			deprecated, _ := types[category][name].Deprecated()
			if deprecated && mode == DeprecatedSkip {
				continue
			}

			segments := make([]string, 0, 4)
			if groups != nil {
				group := Slugify(groups.Label(category, name))
				if group == "" {
					group = Slugify(DefaultGroupFallback)
				}

				segments = append(segments, group)
			}

			segments = append(segments, Slugify(string(category)))
			if deprecated && mode == DeprecatedGroup {
				segments = append(segments, deprecatedDir)
			}

			slug := uniqueSlug(path.Join(append(segments, pageSlug(name))...), taken)
			taken[slug] = struct{}{}
			slugs[name] = slug
		}

		plan[category] = slugs
	}

	return plan
}

// pageSlug returns file name slug of entity name.
func pageSlug(name string) string {
	if slug := Slugify(name); slug != "" {
		return slug
	}

	// names made of underscores only
	return strings.ToLower(strings.TrimSpace(name))
}

// uniqueSlug appends -2, -3 and so on until slug is not taken.
func uniqueSlug(slug string, taken map[string]struct{}) string {
	if _, exists := taken[slug]; !exists {
		return slug
	}

	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", slug, n)
		if _, exists := taken[candidate]; !exists {
			return candidate
		}
	}
}

// RendererOptions configures page tree rendering.
type RendererOptions struct {
	// OutputDir receives generated pages.
	OutputDir string
	// Extension is the page file extension; empty uses DefaultPageExtension.
	Extension string
	// GeneratedIndex adds generated-index links to category metafiles.
	GeneratedIndex bool
	// Grouped marks plans whose first slug segment is a group directory.
	Grouped bool
	// Workers bounds concurrent page writes; zero uses GOMAXPROCS.
	Workers int
}

// Renderer writes documentation pages for schema entities.
type Renderer struct {
	opt     RendererOptions
	plan    PagePlan
	printer *Printer
	logger  Logger
}

// NewRenderer creates renderer writing pages planned in plan.
func NewRenderer(printer *Printer, plan PagePlan, opt RendererOptions, logger Logger) *Renderer {
	if opt.Extension == "" {
		opt.Extension = DefaultPageExtension
	}

	if opt.OutputDir != "" {
		opt.OutputDir = filepath.Clean(opt.OutputDir)
	}

	if opt.Workers <= 0 {
		opt.Workers = runtime.GOMAXPROCS(0)
	}

	return &Renderer{
		opt:     opt,
		plan:    plan,
		printer: printer,
		logger:  loggerOrNop(logger),
	}
}

// RenderAll renders every planned category concurrently.
// Pages are returned in category order, then by slug.
func (r *Renderer) RenderAll(ctx context.Context, types SchemaTypeMap) ([]PageDescriptor, error) {
	categories := make([]Category, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		if _, planned := r.plan[category]; planned && len(types[category]) > 0 {
			categories = append(categories, category)
		}
	}

	results := make([][]PageDescriptor, len(categories))
	eg, ctx := errgroup.WithContext(ctx)
	for index, category := range categories {
		eg.Go(func() error {
			pages, err := r.RenderRootTypes(ctx, category, types[category])
			if err != nil {
				return err
			}

			results[index] = pages
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	pages := make([]PageDescriptor, 0, types.Len())
	for _, result := range results {
		pages = append(pages, result...)
	}

	if err := r.writeTopLevelMetafiles(pages); err != nil {
		return nil, err
	}

	return pages, nil
}

// PruneStale removes pages under category directories that are not in
// pages, then drops directories left with only a category metafile.
// Files in the output root, such as the homepage, are never touched.
func (r *Renderer) PruneStale(pages []PageDescriptor) ([]string, error) {
	keep := make(map[string]struct{}, len(pages))
	for _, page := range pages {
		keep[r.pagePath(page.Slug)] = struct{}{}
	}

	var (
		removed []string
		dirs    []string
	)

	err := filepath.WalkDir(r.opt.OutputDir, func(filePath string, entry fs.DirEntry, err error) error {
		switch {
		case err != nil:
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}

			return err
		case entry.IsDir():
			if filePath != r.opt.OutputDir {
				dirs = append(dirs, filePath)
			}

			return nil
		case filepath.Dir(filePath) == r.opt.OutputDir || filepath.Ext(filePath) != r.opt.Extension:
			return nil
		}

		if _, planned := keep[filePath]; planned {
			return nil
		}

		if err := os.Remove(filePath); err != nil {
			return err
		}

		removed = append(removed, filePath)
		return nil
	})
	if err != nil {
		return removed, fmt.Errorf("%w %q: %w", ErrPrunePages, r.opt.OutputDir, err)
	}

	// deepest directories first
	for index := len(dirs) - 1; index >= 0; index-- {
		if err := removeEmptyCategoryDir(dirs[index]); err != nil {
			return removed, fmt.Errorf("%w %q: %w", ErrPrunePages, dirs[index], err)
		}
	}

	if len(removed) > 0 {
		r.logger.Info("removed stale pages", "pages", len(removed))
	}

	return removed, nil
}

// removeEmptyCategoryDir deletes dir holding nothing or only a category metafile.
func removeEmptyCategoryDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() != CategoryMetafile {
			return nil
		}
	}

	return os.RemoveAll(dir)
}

// RenderTypeList renders ordered entities of one category; unnamed entries are dropped.
func (r *Renderer) RenderTypeList(ctx context.Context, category Category, types []*NamedType) ([]PageDescriptor, error) {
	return r.RenderRootTypes(ctx, category, NormalizeTypes(types))
}

// RenderRootTypes renders all planned entities of one category concurrently
// and stamps category sub-directories with metadata files.
func (r *Renderer) RenderRootTypes(ctx context.Context, category Category, types map[string]*NamedType) ([]PageDescriptor, error) {
	slugs := r.plan[category]
	names := make([]string, 0, len(types))
	for name := range types {
		if _, planned := slugs[name]; planned {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	pages := make([]PageDescriptor, len(names))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.opt.Workers)
	for index, name := range names {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			page, err := r.renderType(slugs[name], types[name])
			if err != nil {
				return err
			}

			pages[index] = page
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Slug < pages[j].Slug })

	if err := r.writeCategoryMetafiles(category, pages); err != nil {
		return nil, err
	}

	r.logger.Debug("rendered category", "category", category, "pages", len(pages))
	return pages, nil
}

// renderType prints and writes one page.
func (r *Renderer) renderType(slug string, t *NamedType) (PageDescriptor, error) {
	body, err := r.printer.PrintType(slug, t)
	if err != nil {
		return PageDescriptor{}, err
	}

	filePath := r.pagePath(slug)
	if err := ensureDir(filepath.Dir(filePath)); err != nil {
		return PageDescriptor{}, fmt.Errorf("%w %q: %w", ErrWritePage, filePath, err)
	}

	if err := saveFile(filePath, []byte(body)); err != nil {
		return PageDescriptor{}, fmt.Errorf("%w %q: %w", ErrWritePage, filePath, err)
	}

	return PageDescriptor{
		Category: CategoryLabel(strings.SplitN(slug, "/", 2)[0]),
		Slug:     slug,
	}, nil
}

// pagePath returns file path of slug page.
func (r *Renderer) pagePath(slug string) string {
	return filepath.Join(r.opt.OutputDir, filepath.FromSlash(slug)+r.opt.Extension)
}

// writeCategoryMetafiles stamps category and deprecated directories of rendered pages.
func (r *Renderer) writeCategoryMetafiles(category Category, pages []PageDescriptor) error {
	position := slices.Index(categoryOrder, category) + 1
	categorySegment := Slugify(string(category))

	seen := make(map[string]struct{})
	for _, page := range pages {
		dir := path.Dir(page.Slug)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}

		categoryDir := dir
		if path.Base(dir) == deprecatedDir && path.Base(path.Dir(dir)) == categorySegment {
			categoryDir = path.Dir(dir)
			if _, err := GenerateIndexMetafile(r.dirPath(dir), deprecatedDir, MetafileOptions{
				Position:  deprecatedPosition,
				ClassName: deprecatedClassName,
			}); err != nil {
				return err
			}
		}

		if _, err := GenerateIndexMetafile(r.dirPath(categoryDir), categorySegment, MetafileOptions{
			Position:       position,
			GeneratedIndex: r.opt.GeneratedIndex,
		}); err != nil {
			return err
		}
	}

	return nil
}

// writeTopLevelMetafiles stamps group directories in first-seen order.
func (r *Renderer) writeTopLevelMetafiles(pages []PageDescriptor) error {
	if !r.opt.Grouped {
		return nil
	}

	position := 0
	seen := make(map[string]struct{})
	for _, page := range pages {
		group, _, found := strings.Cut(page.Slug, "/")
		if !found {
			continue
		}

		if _, ok := seen[group]; ok {
			continue
		}
		seen[group] = struct{}{}
		position++

		if _, err := GenerateIndexMetafile(r.dirPath(group), group, MetafileOptions{
			Position:       position,
			GeneratedIndex: r.opt.GeneratedIndex,
		}); err != nil {
			return err
		}
	}

	return nil
}

// dirPath converts slug directory into filesystem path.
func (r *Renderer) dirPath(dir string) string {
	return filepath.Join(r.opt.OutputDir, filepath.FromSlash(dir))
}
