// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

const (
	templateListName  = "list"
	templateTableName = "table"
	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName = templateListName
	// defaultWrapWidth wraps plain description paragraphs at this width.
	defaultWrapWidth = 80
)

// templateFS stores built-in page templates and the default homepage.
//
//go:embed templates/*.mdx.gotmpl templates/homepage.md
var templateFS embed.FS

// builtInTemplateFiles maps template aliases to embedded file paths.
var builtInTemplateFiles = map[string]string{
	templateListName:  "templates/list.mdx.gotmpl",
	templateTableName: "templates/table.mdx.gotmpl",
}

// defaultHomepageFile is the embedded homepage template path.
const defaultHomepageFile = "templates/homepage.md"

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}

// resolveTemplate resolves either custom or built-in template text into a parsed template.
func resolveTemplate(name, text string) (*template.Template, error) {
	if strings.TrimSpace(text) != "" {
		parsed, err := template.New("custom").Funcs(templateFuncs()).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrParseTemplate, "custom", err)
		}

		return parsed, nil
	}

	name = normalizeTemplateName(name)
	if name == "" {
		name = defaultTemplateName
	}

	text, err := BuiltinTemplate(name)
	if err != nil {
		return nil, err
	}

	parsed, err := template.New(name).Funcs(templateFuncs()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseTemplate, name, err)
	}

	return parsed, nil
}

// normalizeTemplateName normalizes built-in template identifiers.
func normalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// templateFuncs provides utility functions available inside page templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"join":             strings.Join,
		"markdownLink":     markdownLink,
		"attributesInline": attributesInline,
		"tableCell":        tableCell,
	}
}

// markdownLink renders link view as markdown link, or inline code without URL.
func markdownLink(link linkView) string {
	if link.URL == "" {
		return "`" + link.Name + "`"
	}

	return fmt.Sprintf("[`%s`](%s)", link.Name, link.URL)
}

// attributesInline joins attributes into one table cell.
func attributesInline(attributes []attributeView) string {
	parts := make([]string, 0, len(attributes))
	for _, attribute := range attributes {
		parts = append(parts, attribute.Name+": "+tableCell(attribute.Value))
	}

	return strings.Join(parts, "<br/>")
}

// tableCell flattens text for a markdown table cell.
func tableCell(text string) string {
	text = strings.ReplaceAll(sanitizeText(text), "|", "\\|")
	return text
}
