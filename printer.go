// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/vektah/gqlparser/v2/ast"
)

// PrinterOptions configures page body rendering.
type PrinterOptions struct {
	BaseURL       string
	LinkRoot      string
	TemplateName  string
	TemplateText  string
	WrapWidth     int
	NoCode        bool
	NoRelated     bool
	NoPretty      bool
	ExampleMode   ExampleMode
	ExampleFormat ExampleFormat
}

// Printer renders documentation bodies of schema entities.
// It is safe for concurrent use.
type Printer struct {
	schema        *ast.Schema
	opt           PrinterOptions
	tmpl          *template.Template
	links         linkResolver
	relations     relationIndex
	operationURLs map[Category]map[string]string
}

// NewPrinter prepares printer for schema; pages maps entity names to page slugs
// and decides which names are linked.
func NewPrinter(schema *ast.Schema, types SchemaTypeMap, pages PagePlan, opt PrinterOptions) (*Printer, error) {
	tmpl, err := resolveTemplate(opt.TemplateName, opt.TemplateText)
	if err != nil {
		return nil, err
	}

	typePages := make(map[string]string)
	operationURLs := make(map[Category]map[string]string)
	for category, slugs := range pages {
		if category.IsOperation() {
			operationURLs[category] = make(map[string]string, len(slugs))
		}

		for name, slug := range slugs {
			switch {
			case category.IsOperation():
				operationURLs[category][name] = pageURL(opt.LinkRoot, opt.BaseURL, slug)
			case category == CategoryDirective:
				// directive pages are not type link targets
			default:
				typePages[name] = slug
			}
		}
	}

	return &Printer{
		schema:        schema,
		opt:           opt,
		tmpl:          tmpl,
		links:         newLinkResolver(typePages, opt.LinkRoot, opt.BaseURL),
		relations:     buildRelationIndex(types),
		operationURLs: operationURLs,
	}, nil
}

// PrintType renders page document for one entity stored under slug.
func (p *Printer) PrintType(slug string, t *NamedType) (string, error) {
	if t == nil {
		return "", fmt.Errorf("%w: nil type for %q", ErrExecuteTemplate, slug)
	}

	view, err := p.buildPageView(slug, t)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := p.tmpl.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w for %s: %w", ErrExecuteTemplate, t.Name, err)
	}

	if p.opt.NoPretty {
		return out.String(), nil
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}
