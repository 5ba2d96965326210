// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

/*
Package graphqlmd renders MDX documentation pages from GraphQL schemas.

Every query, mutation, subscription, object, interface, enum, scalar, union,
input and directive gets one page under a category directory. Pages can be
grouped by a custom directive argument, deprecated entities can be moved into
a sub-directory or skipped, and a navigation sidebar plus per-directory
_category_.yml files are produced for Docusaurus-style sites. Regeneration is
gated by comparing the schema with a reference stored on the previous run.

Full pipeline run:

	opt := graphqlmd.DefaultOptions()
	opt.Schema = "schema.graphql"
	opt.GroupByDirective = "@doc(category|=Common)"

	result, err := graphqlmd.Generate(ctx, opt, slog.Default())
	if err != nil {
		return err
	}

	if !result.Changed {
		fmt.Println("no changes")
	}

Change detection only:

	schema, err := graphqlmd.LoadSchema(ctx, "schema.graphql", graphqlmd.DefaultLoaders())
	if err != nil {
		return err
	}

	changed, err := graphqlmd.CheckSchemaChanges(ctx, schema, tmpDir, graphqlmd.CompareHash)
	if err != nil {
		return err
	}

Structural diff of two schemas:

	for _, change := range graphqlmd.DiffSchemas(oldSchema, newSchema) {
		fmt.Println(change)
	}

Render one page body:

	types := graphqlmd.BuildTypeMap(schema)
	plan := graphqlmd.BuildPagePlan(types, nil, graphqlmd.DeprecatedDefault, nil)
	printer, err := graphqlmd.NewPrinter(schema, types, plan, graphqlmd.PrinterOptions{
		BaseURL:      "schema",
		LinkRoot:     "/",
		TemplateName: "table",
	})
	if err != nil {
		return err
	}

	body, err := printer.PrintType(plan[graphqlmd.CategoryQuery]["tweet"], types[graphqlmd.CategoryQuery]["tweet"])
*/
package graphqlmd
