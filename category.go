// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// Category is one documented schema entity kind.
type Category string

const (
	CategoryQuery        Category = "query"
	CategoryMutation     Category = "mutation"
	CategorySubscription Category = "subscription"
	CategoryObject       Category = "object"
	CategoryInterface    Category = "interface"
	CategoryEnum         Category = "enum"
	CategoryScalar       Category = "scalar"
	CategoryUnion        Category = "union"
	CategoryInput        Category = "input"
	CategoryDirective    Category = "directive"
)

// categoryOrder is the fixed render and sidebar order of categories.
var categoryOrder = []Category{
	CategoryQuery,
	CategoryMutation,
	CategorySubscription,
	CategoryObject,
	CategoryInterface,
	CategoryEnum,
	CategoryScalar,
	CategoryUnion,
	CategoryInput,
	CategoryDirective,
}

// definitionCategories maps AST definition kinds to categories.
var definitionCategories = map[ast.DefinitionKind]Category{
	ast.Object:      CategoryObject,
	ast.Interface:   CategoryInterface,
	ast.Enum:        CategoryEnum,
	ast.Scalar:      CategoryScalar,
	ast.Union:       CategoryUnion,
	ast.InputObject: CategoryInput,
}

// Categories returns all categories in render order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory resolves category from its name, accepting plural forms.
func ParseCategory(name string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "queries":
		normalized = "query"
	case "inputs":
		normalized = "input"
	default:
		normalized = strings.TrimSuffix(normalized, "s")
	}

	for _, category := range categoryOrder {
		if string(category) == normalized {
			return category, nil
		}
	}

	return "", fmt.Errorf("%w %q", ErrUnknownCategory, name)
}

// IsOperation reports whether category documents root operation fields.
func (c Category) IsOperation() bool {
	return c == CategoryQuery || c == CategoryMutation || c == CategorySubscription
}

// NamedType is one documented schema entity.
// Exactly one of Definition, Field or Directive is set.
type NamedType struct {
	Name     string
	Category Category

	Definition *ast.Definition
	Field      *ast.FieldDefinition
	Directive  *ast.DirectiveDefinition
}

// Directives returns the AST directives applied to the entity.
func (t *NamedType) Directives() ast.DirectiveList {
	switch {
	case t == nil:
		return nil
	case t.Definition != nil:
		return t.Definition.Directives
	case t.Field != nil:
		return t.Field.Directives
	default:
		return nil
	}
}

// Description returns the entity description text.
func (t *NamedType) Description() string {
	switch {
	case t == nil:
		return ""
	case t.Definition != nil:
		return t.Definition.Description
	case t.Field != nil:
		return t.Field.Description
	case t.Directive != nil:
		return t.Directive.Description
	default:
		return ""
	}
}

// Deprecated reports @deprecated usage and its reason.
func (t *NamedType) Deprecated() (bool, string) {
	return deprecation(t.Directives())
}

// SchemaTypeMap maps categories to name-keyed entities.
type SchemaTypeMap map[Category]map[string]*NamedType

// Names returns sorted entity names for one category.
func (m SchemaTypeMap) Names(category Category) []string {
	types := m[category]
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Len returns total number of entities over all categories.
func (m SchemaTypeMap) Len() int {
	total := 0
	for _, types := range m {
		total += len(types)
	}

	return total
}

// NormalizeTypes converts ordered entities into name-keyed form, dropping unnamed ones.
func NormalizeTypes(types []*NamedType) map[string]*NamedType {
	out := make(map[string]*NamedType, len(types))
	for _, t := range types {
		if t == nil || strings.TrimSpace(t.Name) == "" {
			continue
		}

		out[t.Name] = t
	}

	return out
}

// BuildTypeMap splits schema into documented categories.
// Built-in and introspection entities are excluded, root operation types are
// documented through their fields.
func BuildTypeMap(schema *ast.Schema) SchemaTypeMap {
	out := make(SchemaTypeMap, len(categoryOrder))
	for _, category := range categoryOrder {
		out[category] = make(map[string]*NamedType)
	}

	if schema == nil {
		return out
	}

	roots := map[Category]*ast.Definition{
		CategoryQuery:        schema.Query,
		CategoryMutation:     schema.Mutation,
		CategorySubscription: schema.Subscription,
	}

	rootNames := make(map[string]struct{}, len(roots))
	for category, root := range roots {
		if root == nil {
			continue
		}

		rootNames[root.Name] = struct{}{}
		for _, field := range root.Fields {
			if strings.HasPrefix(field.Name, "__") {
				continue
			}

			out[category][field.Name] = &NamedType{Name: field.Name, Category: category, Field: field}
		}
	}

	for name, def := range schema.Types {
		if def == nil || def.BuiltIn || strings.HasPrefix(name, "__") {
			continue
		}

		if _, isRoot := rootNames[name]; isRoot {
			continue
		}

		category, ok := definitionCategories[def.Kind]
		if !ok {
			continue
		}

		out[category][name] = &NamedType{Name: name, Category: category, Definition: def}
	}

	for name, directive := range schema.Directives {
		if directive == nil || isBuiltinDirective(directive) {
			continue
		}

		out[CategoryDirective][name] = &NamedType{Name: name, Category: CategoryDirective, Directive: directive}
	}

	return out
}

// isBuiltinDirective reports whether directive definition comes from the prelude.
func isBuiltinDirective(directive *ast.DirectiveDefinition) bool {
	if directive.Position == nil || directive.Position.Src == nil {
		return false
	}

	return directive.Position.Src.BuiltIn
}

// deprecation extracts @deprecated state from applied directives.
func deprecation(directives ast.DirectiveList) (bool, string) {
	directive := directives.ForName("deprecated")
	if directive == nil {
		return false, ""
	}

	reason := "No longer supported"
	if argument := directive.Arguments.ForName("reason"); argument != nil && argument.Value != nil {
		if raw := strings.TrimSpace(argument.Value.Raw); raw != "" {
			reason = raw
		}
	}

	return true, reason
}
