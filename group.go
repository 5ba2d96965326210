// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultGroupFallback is the group label for types without a grouping directive.
const DefaultGroupFallback = "Miscellaneous"

// groupByPattern matches @directive(field) and @directive(field|=fallback).
var groupByPattern = regexp.MustCompile(`^@(\w+)\((\w+)(?:\|=(\w+))?\)$`)

// GroupByDirective selects the directive argument used as navigation group label.
type GroupByDirective struct {
	Directive string
	Field     string
	Fallback  string
}

// GroupMap maps entity names to group labels per category.
// Names repeat across categories, e.g. Query.tweet and Subscription.tweet.
type GroupMap map[Category]map[string]string

// Label returns group label of name in category.
func (g GroupMap) Label(category Category, name string) string {
	return g[category][name]
}

// ParseGroupByOption parses a grouping expression.
// Empty expression means grouping is disabled and yields nil without error.
func ParseGroupByOption(expr string) (*GroupByDirective, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	match := groupByPattern.FindStringSubmatch(expr)
	if match == nil {
		return nil, fmt.Errorf("%w %q: expected @directive(field) or @directive(field|=fallback)", ErrInvalidGroupByFormat, expr)
	}

	fallback := match[3]
	if fallback == "" {
		fallback = DefaultGroupFallback
	}

	return &GroupByDirective{
		Directive: match[1],
		Field:     match[2],
		Fallback:  fallback,
	}, nil
}

// String formats directive back into expression form.
func (g GroupByDirective) String() string {
	return fmt.Sprintf("@%s(%s|=%s)", g.Directive, g.Field, g.Fallback)
}

// GetGroups assigns a group label to every type in every category.
// It returns nil when grouping is disabled.
func GetGroups(rootTypes SchemaTypeMap, groupBy *GroupByDirective) GroupMap {
	if groupBy == nil {
		return nil
	}

	fallback := groupBy.Fallback
	if Slugify(fallback) == "" {
		fallback = DefaultGroupFallback
	}

	groups := make(GroupMap, len(categoryOrder))
	for _, category := range categoryOrder {
		names := rootTypes.Names(category)
		labels := make(map[string]string, len(names))
		for _, name := range names {
			label := GroupName(rootTypes[category][name], *groupBy)
			// label must yield a directory segment
			if Slugify(label) == "" {
				label = fallback
			}

			labels[name] = label
		}

		groups[category] = labels
	}

	return groups
}

// GroupName returns label from the first matching directive argument, or fallback.
func GroupName(t *NamedType, groupBy GroupByDirective) string {
	directives := t.Directives()
	if len(directives) == 0 {
		return groupBy.Fallback
	}

	for _, directive := range directives {
		if directive == nil || directive.Name != groupBy.Directive {
			continue
		}

		argument := directive.Arguments.ForName(groupBy.Field)
		if argument == nil || argument.Value == nil || strings.TrimSpace(argument.Value.Raw) == "" {
			return groupBy.Fallback
		}

		return argument.Value.Raw
	}

	return groupBy.Fallback
}
