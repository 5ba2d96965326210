// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"fmt"
	"path"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// linkResolver maps documented type names to page URLs.
type linkResolver struct {
	urls map[string]string
}

// newLinkResolver builds URLs for every non-operation entity of type map.
func newLinkResolver(pages map[string]string, linkRoot, baseURL string) linkResolver {
	urls := make(map[string]string, len(pages))
	for name, slug := range pages {
		urls[name] = pageURL(linkRoot, baseURL, slug)
	}

	return linkResolver{urls: urls}
}

// pageURL joins link root, base URL and page slug into absolute URL path.
func pageURL(linkRoot, baseURL, slug string) string {
	return path.Join("/", linkRoot, baseURL, slug)
}

// typeLink renders type reference as inline code, linked when documented.
func (r linkResolver) typeLink(t *ast.Type) string {
	if t == nil {
		return ""
	}

	code := fmt.Sprintf("`%s`", escapeInline(t.String()))
	if url, ok := r.urls[t.Name()]; ok {
		return fmt.Sprintf("[%s](%s)", code, url)
	}

	return code
}

// nameLink renders type name as link view.
func (r linkResolver) nameLink(name string) linkView {
	return linkView{Name: escapeInline(name), URL: r.urls[name]}
}

// fieldAttributes renders flat attribute list for one field or argument.
func fieldAttributes(links linkResolver, t *ast.Type, defaultValue *ast.Value, directives ast.DirectiveList) []attributeView {
	out := make([]attributeView, 0, 4)
	if t != nil {
		out = append(out, attributeView{Name: "Type", Value: links.typeLink(t)})
		out = append(out, attributeView{Name: "Required", Value: yesNo(t.NonNull)})
	}

	if defaultValue != nil {
		out = append(out, attributeView{Name: "Default", Value: fmt.Sprintf("`%s`", escapeInline(defaultValue.String()))})
	}

	if deprecated, reason := deprecation(directives); deprecated {
		out = append(out, attributeView{Name: "Deprecated", Value: escapeMDXText(sanitizeText(reason))})
	}

	if applied := appliedDirectivesText(directives); applied != "" {
		out = append(out, attributeView{Name: "Directives", Value: fmt.Sprintf("`%s`", escapeInline(applied))})
	}

	return out
}

// enumValueAttributes renders attribute list for one enum value.
func enumValueAttributes(value *ast.EnumValueDefinition) []attributeView {
	out := make([]attributeView, 0, 1)
	if deprecated, reason := deprecation(value.Directives); deprecated {
		out = append(out, attributeView{Name: "Deprecated", Value: escapeMDXText(sanitizeText(reason))})
	}

	return out
}

// directiveLocationList renders directive locations as inline code tokens.
func directiveLocationList(directive *ast.DirectiveDefinition) []string {
	out := make([]string, 0, len(directive.Locations))
	for _, location := range directive.Locations {
		out = append(out, fmt.Sprintf("`%s`", escapeInline(string(location))))
	}

	return out
}

// kindLabel returns human readable entity kind.
func kindLabel(category Category) string {
	switch category {
	case CategoryInput:
		return "Input object"
	default:
		return strings.ToUpper(string(category[:1])) + string(category[1:])
	}
}

// yesNo renders bool as "yes" or "no".
func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
