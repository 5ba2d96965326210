// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// pageView is the root view model passed to page templates.
type pageView struct {
	ID                string
	Title             string
	Name              string
	Kind              string
	Category          string
	Description       string
	Deprecated        bool
	DeprecationReason string
	Code              string
	ReturnType        string
	Arguments         []memberView
	Fields            []memberView
	Values            []memberView
	Members           []linkView
	Interfaces        []linkView
	Locations         []string
	Repeatable        bool
	Related           []relatedView
	Example           string
	ExampleFormat     string
}

// memberView is one field, argument or enum value of a page.
type memberView struct {
	Name        string
	Description string
	Attributes  []attributeView
	Arguments   []memberView
}

// attributeView is a single rendered name/value metadata item.
type attributeView struct {
	Name  string
	Value string
}

// linkView is a named link to another page; URL is empty for undocumented names.
type linkView struct {
	Name string
	URL  string
}

// relatedView is one titled list of related pages.
type relatedView struct {
	Title string
	Links []linkView
}

// operationRef identifies a root field; names repeat across root types.
type operationRef struct {
	Category Category
	Name     string
}

// relationIndex holds reverse type relations used on pages.
type relationIndex struct {
	memberOf   map[string][]string
	returnedBy map[string][]operationRef
	usedBy     map[string][]string
}

// buildRelationIndex collects union membership, operations returning each
// type and object or input types referencing each type through fields.
func buildRelationIndex(types SchemaTypeMap) relationIndex {
	index := relationIndex{
		memberOf:   make(map[string][]string),
		returnedBy: make(map[string][]operationRef),
		usedBy:     make(map[string][]string),
	}

	for _, name := range types.Names(CategoryUnion) {
		for _, member := range types[CategoryUnion][name].Definition.Types {
			index.memberOf[member] = appendUnique(index.memberOf[member], name)
		}
	}

	for _, category := range []Category{CategoryQuery, CategoryMutation, CategorySubscription} {
		for _, name := range types.Names(category) {
			field := types[category][name].Field
			target := field.Type.Name()
			index.returnedBy[target] = append(index.returnedBy[target], operationRef{Category: category, Name: name})
		}
	}

	// sorted by name, ties keep root type order
	for _, refs := range index.returnedBy {
		slices.SortStableFunc(refs, func(a, b operationRef) int {
			return strings.Compare(a.Name, b.Name)
		})
	}

	for _, category := range []Category{CategoryObject, CategoryInterface, CategoryInput} {
		for _, name := range types.Names(category) {
			for _, field := range types[category][name].Definition.Fields {
				target := field.Type.Name()
				if target == name {
					continue
				}

				index.usedBy[target] = appendUnique(index.usedBy[target], name)
			}
		}
	}

	return index
}

// buildPageView prepares data for one page template.
func (p *Printer) buildPageView(slug string, t *NamedType) (pageView, error) {
	wrapWidth := normalizeWrapWidth(p.opt.WrapWidth)
	deprecated, reason := t.Deprecated()

	view := pageView{
		ID:                slugBase(slug),
		Title:             t.Name,
		Name:              escapeInline(t.Name),
		Kind:              kindLabel(t.Category),
		Category:          string(t.Category),
		Description:       formatDescriptionMarkdown(t.Description(), wrapWidth),
		Deprecated:        deprecated,
		DeprecationReason: escapeMDXText(sanitizeText(reason)),
	}

	if !p.opt.NoCode {
		view.Code = printDefinitionSDL(t)
	}

	switch {
	case t.Field != nil:
		view.ReturnType = p.links.typeLink(t.Field.Type)
		view.Arguments = p.argumentViews(t.Field.Arguments, wrapWidth)
		if err := p.attachExample(&view, t.Field); err != nil {
			return pageView{}, err
		}
	case t.Directive != nil:
		view.Arguments = p.argumentViews(t.Directive.Arguments, wrapWidth)
		view.Locations = directiveLocationList(t.Directive)
		view.Repeatable = t.Directive.IsRepeatable
	case t.Definition != nil:
		p.fillDefinition(&view, t.Definition, wrapWidth)
	}

	if !p.opt.NoRelated {
		view.Related = p.relatedViews(t)
	}

	return view, nil
}

// fillDefinition fills definition specific sections.
func (p *Printer) fillDefinition(view *pageView, def *ast.Definition, wrapWidth int) {
	for _, field := range def.Fields {
		if strings.HasPrefix(field.Name, "__") {
			continue
		}

		view.Fields = append(view.Fields, memberView{
			Name:        escapeInline(field.Name),
			Description: formatDescriptionMarkdown(field.Description, wrapWidth),
			Attributes:  fieldAttributes(p.links, field.Type, field.DefaultValue, field.Directives),
			Arguments:   p.argumentViews(field.Arguments, wrapWidth),
		})
	}

	for _, value := range def.EnumValues {
		view.Values = append(view.Values, memberView{
			Name:        escapeInline(value.Name),
			Description: formatDescriptionMarkdown(value.Description, wrapWidth),
			Attributes:  enumValueAttributes(value),
		})
	}

	for _, member := range def.Types {
		view.Members = append(view.Members, p.links.nameLink(member))
	}

	for _, iface := range def.Interfaces {
		view.Interfaces = append(view.Interfaces, p.links.nameLink(iface))
	}
}

// argumentViews builds member views for argument definitions.
func (p *Printer) argumentViews(arguments ast.ArgumentDefinitionList, wrapWidth int) []memberView {
	if len(arguments) == 0 {
		return nil
	}

	out := make([]memberView, 0, len(arguments))
	for _, argument := range arguments {
		out = append(out, memberView{
			Name:        escapeInline(argument.Name),
			Description: formatDescriptionMarkdown(argument.Description, wrapWidth),
			Attributes:  fieldAttributes(p.links, argument.Type, argument.DefaultValue, argument.Directives),
		})
	}

	return out
}

// attachExample renders example variables for operation pages when enabled.
func (p *Printer) attachExample(view *pageView, field *ast.FieldDefinition) error {
	if p.opt.ExampleMode == "" {
		return nil
	}

	data, err := GenerateExampleVariables(p.schema, field, p.opt.ExampleMode, p.opt.ExampleFormat)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		return nil
	}

	view.Example = strings.TrimRight(string(data), "\n")
	view.ExampleFormat = string(p.opt.ExampleFormat)
	if view.ExampleFormat == "" {
		view.ExampleFormat = string(ExampleFormatJSON)
	}

	return nil
}

// relatedViews lists related pages for one entity.
func (p *Printer) relatedViews(t *NamedType) []relatedView {
	if t.Definition == nil {
		return nil
	}

	name := t.Definition.Name
	out := make([]relatedView, 0, 4)
	add := func(title string, names []string) {
		if len(names) == 0 {
			return
		}

		links := make([]linkView, 0, len(names))
		for _, related := range names {
			links = append(links, p.links.nameLink(related))
		}

		out = append(out, relatedView{Title: title, Links: links})
	}

	if t.Definition.Kind == ast.Interface && p.schema != nil {
		implementations := make([]string, 0)
		for _, possible := range p.schema.GetPossibleTypes(t.Definition) {
			implementations = append(implementations, possible.Name)
		}
		slices.Sort(implementations)
		add("Implemented by", implementations)
	}

	add("Member of", p.relations.memberOf[name])
	add("Used by", p.relations.usedBy[name])

	if returnedBy := p.relations.returnedBy[name]; len(returnedBy) > 0 {
		links := make([]linkView, 0, len(returnedBy))
		for _, operation := range returnedBy {
			links = append(links, linkView{
				Name: escapeInline(operation.Name),
				URL:  p.operationURLs[operation.Category][operation.Name],
			})
		}

		out = append(out, relatedView{Title: "Returned by", Links: links})
	}

	return out
}

// slugBase returns the last path segment of slug.
func slugBase(slug string) string {
	if index := strings.LastIndex(slug, "/"); index >= 0 {
		return slug[index+1:]
	}

	return slug
}

// appendUnique appends value when not already present, keeping list sorted.
func appendUnique(values []string, value string) []string {
	if slices.Contains(values, value) {
		return values
	}

	values = append(values, value)
	slices.Sort(values)
	return values
}
