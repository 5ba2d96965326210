// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/vektah/gqlparser/v2/ast"
)

// Result summarizes one generation run.
type Result struct {
	// Changed is false when change detection skipped rendering.
	Changed bool
	// Pages lists rendered pages in category order.
	Pages []PageDescriptor
	// Duration is the wall time of the run.
	Duration time.Duration
	// Sidebar is the written sidebar file path.
	Sidebar string
}

// runConfig is the validated form of Options.
type runConfig struct {
	opt           Options
	loaders       []Loader
	groupBy       *GroupByDirective
	method        CompareMethod
	deprecated    DeprecatedMode
	skip          []Category
	exampleMode   ExampleMode
	exampleFormat ExampleFormat
	templateText  string
}

// Generate runs the full documentation pipeline for opt.
// Reference files are persisted only after all pages and the sidebar are written.
func Generate(ctx context.Context, opt Options, logger Logger) (Result, error) {
	logger = loggerOrNop(logger)
	started := time.Now()

	config, err := resolveRunConfig(opt)
	if err != nil {
		return Result{}, err
	}

	logger.Debug("loading schema", "location", config.opt.Schema)
	schema, err := LoadSchema(ctx, config.opt.Schema, config.loaders)
	if err != nil {
		return Result{}, err
	}

	return generateSchema(ctx, schema, config, logger, started)
}

// generateSchema gates, renders and persists reference for loaded schema.
// Reference files created by the gate are removed when the run fails, so the
// next run is not reported as unchanged.
func generateSchema(ctx context.Context, schema *ast.Schema, config runConfig, logger Logger, started time.Time) (Result, error) {
	opt := config.opt
	check := config.method
	if enabled(opt.Force) {
		check = CompareForce
	}

	absent, err := missingReferences(opt.TmpDir)
	if err != nil {
		return Result{}, err
	}

	changed, err := CheckSchemaChanges(ctx, schema, opt.TmpDir, check)
	if err != nil {
		return Result{}, err
	}

	if !changed {
		logger.Info("no changes detected in schema", "method", config.method)
		return Result{Duration: time.Since(started)}, nil
	}

	result, err := renderSchema(ctx, schema, config, logger)
	if err != nil {
		if cleanupErr := removeReferences(absent); cleanupErr != nil {
			logger.Warn("failed to remove schema reference", "error", cleanupErr)
		}

		return Result{}, err
	}

	result.Duration = time.Since(started)
	logger.Info("documentation generated", "pages", len(result.Pages), "duration", result.Duration.Round(time.Millisecond), "output", opt.OutputDir())
	return result, nil
}

// renderSchema writes pages, homepage, sidebar and then reference files.
func renderSchema(ctx context.Context, schema *ast.Schema, config runConfig, logger Logger) (Result, error) {
	opt := config.opt
	types := BuildTypeMap(schema)
	groups := GetGroups(types, config.groupBy)
	plan := BuildPagePlan(types, groups, config.deprecated, config.skip)

	printer, err := NewPrinter(schema, types, plan, PrinterOptions{
		BaseURL:       opt.BaseURL,
		LinkRoot:      opt.LinkRoot,
		TemplateName:  opt.Template,
		TemplateText:  config.templateText,
		WrapWidth:     opt.WrapWidth,
		NoCode:        enabled(opt.NoCode),
		NoRelated:     enabled(opt.NoRelated),
		NoPretty:      enabled(opt.NoPretty),
		ExampleMode:   config.exampleMode,
		ExampleFormat: config.exampleFormat,
	})
	if err != nil {
		return Result{}, err
	}

	outputDir := opt.OutputDir()
	renderer := NewRenderer(printer, plan, RendererOptions{
		OutputDir:      outputDir,
		GeneratedIndex: !enabled(opt.NoIndex),
		Grouped:        groups != nil,
	}, logger)

	pages, err := renderer.RenderAll(ctx, types)
	if err != nil {
		return Result{}, err
	}

	if _, err := renderer.PruneStale(pages); err != nil {
		return Result{}, err
	}

	homepageID, err := RenderHomepage(opt.Homepage, outputDir, time.Now())
	if err != nil {
		return Result{}, err
	}

	sidebarPath := filepath.Join(outputDir, SidebarFile)
	sidebar := BuildSidebar(pages, path.Join(opt.BaseURL, homepageID), opt.BaseURL)
	if err := RenderSidebar(sidebarPath, sidebar); err != nil {
		return Result{}, err
	}

	if err := SaveSchemaReference(schema, opt.TmpDir, config.method); err != nil {
		return Result{}, err
	}

	return Result{
		Changed: true,
		Pages:   pages,
		Sidebar: sidebarPath,
	}, nil
}

// resolveRunConfig validates options before any I/O on outputs.
func resolveRunConfig(opt Options) (runConfig, error) {
	opt = MergeOptions(DefaultOptions(), Options{}, opt)
	if strings.TrimSpace(opt.Schema) == "" {
		return runConfig{}, ErrMissingSchemaLocation
	}

	config := runConfig{
		opt:          opt,
		method:       ParseCompareMethod(opt.DiffMethod),
		templateText: opt.TemplateText,
	}

	var err error
	if config.groupBy, err = ParseGroupByOption(opt.GroupByDirective); err != nil {
		return runConfig{}, err
	}

	if config.loaders, err = LoadersByName(opt.Loaders); err != nil {
		return runConfig{}, err
	}

	if config.deprecated, err = ParseDeprecatedMode(opt.Deprecated); err != nil {
		return runConfig{}, err
	}

	if config.exampleMode, err = ParseExampleMode(opt.Example); err != nil {
		return runConfig{}, err
	}

	if config.exampleFormat, err = ParseExampleFormat(opt.ExampleFormat); err != nil {
		return runConfig{}, err
	}

	for _, name := range opt.Skip {
		category, err := ParseCategory(name)
		if err != nil {
			return runConfig{}, err
		}

		config.skip = append(config.skip, category)
	}

	if config.templateText == "" && strings.TrimSpace(opt.TemplatePath) != "" {
		data, err := os.ReadFile(opt.TemplatePath)
		if err != nil {
			return runConfig{}, fmt.Errorf("%w %q: %w", ErrReadTemplate, opt.TemplatePath, err)
		}

		config.templateText = string(data)
	}

	return config, nil
}
