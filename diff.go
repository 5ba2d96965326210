// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// ChangeKind classifies one structural schema change.
type ChangeKind string

const (
	ChangeTypeAdded               ChangeKind = "TYPE_ADDED"
	ChangeTypeRemoved             ChangeKind = "TYPE_REMOVED"
	ChangeTypeKindChanged         ChangeKind = "TYPE_KIND_CHANGED"
	ChangeDescriptionChanged      ChangeKind = "DESCRIPTION_CHANGED"
	ChangeFieldAdded              ChangeKind = "FIELD_ADDED"
	ChangeFieldRemoved            ChangeKind = "FIELD_REMOVED"
	ChangeFieldTypeChanged        ChangeKind = "FIELD_TYPE_CHANGED"
	ChangeDeprecationChanged      ChangeKind = "DEPRECATION_CHANGED"
	ChangeArgumentAdded           ChangeKind = "ARGUMENT_ADDED"
	ChangeArgumentRemoved         ChangeKind = "ARGUMENT_REMOVED"
	ChangeArgumentTypeChanged     ChangeKind = "ARGUMENT_TYPE_CHANGED"
	ChangeDefaultValueChanged     ChangeKind = "DEFAULT_VALUE_CHANGED"
	ChangeEnumValueAdded          ChangeKind = "ENUM_VALUE_ADDED"
	ChangeEnumValueRemoved        ChangeKind = "ENUM_VALUE_REMOVED"
	ChangeUnionMemberAdded        ChangeKind = "UNION_MEMBER_ADDED"
	ChangeUnionMemberRemoved      ChangeKind = "UNION_MEMBER_REMOVED"
	ChangeInterfaceAdded          ChangeKind = "INTERFACE_ADDED"
	ChangeInterfaceRemoved        ChangeKind = "INTERFACE_REMOVED"
	ChangeDirectiveAdded          ChangeKind = "DIRECTIVE_ADDED"
	ChangeDirectiveRemoved        ChangeKind = "DIRECTIVE_REMOVED"
	ChangeDirectiveLocationChange ChangeKind = "DIRECTIVE_LOCATIONS_CHANGED"
	ChangeAppliedDirectiveChanged ChangeKind = "APPLIED_DIRECTIVES_CHANGED"
	ChangeRootTypeChanged         ChangeKind = "ROOT_TYPE_CHANGED"
)

// Change is one structural difference between two schemas.
type Change struct {
	Kind    ChangeKind
	Path    string
	Message string
}

// String formats change as one report line.
func (c Change) String() string {
	return fmt.Sprintf("%s %s: %s", c.Kind, c.Path, c.Message)
}

// schemaDiff accumulates changes between two schemas.
type schemaDiff struct {
	changes []Change
}

// DiffSchemas lists structural changes from old to new schema, sorted by path.
// Built-in types and directives are ignored.
func DiffSchemas(oldSchema, newSchema *ast.Schema) []Change {
	d := &schemaDiff{}
	if oldSchema == nil {
		oldSchema = &ast.Schema{}
	}
	if newSchema == nil {
		newSchema = &ast.Schema{}
	}

	d.diffRoot("schema.query", oldSchema.Query, newSchema.Query)
	d.diffRoot("schema.mutation", oldSchema.Mutation, newSchema.Mutation)
	d.diffRoot("schema.subscription", oldSchema.Subscription, newSchema.Subscription)

	oldTypes := userDefinitions(oldSchema.Types)
	newTypes := userDefinitions(newSchema.Types)
	for _, name := range unionKeys(oldTypes, newTypes) {
		d.diffDefinition(name, oldTypes[name], newTypes[name])
	}

	oldDirectives := userDirectives(oldSchema.Directives)
	newDirectives := userDirectives(newSchema.Directives)
	for _, name := range unionKeys(oldDirectives, newDirectives) {
		d.diffDirectiveDefinition(name, oldDirectives[name], newDirectives[name])
	}

	sort.SliceStable(d.changes, func(i, j int) bool {
		return d.changes[i].Path < d.changes[j].Path
	})

	return d.changes
}

func (d *schemaDiff) add(kind ChangeKind, path, format string, args ...any) {
	d.changes = append(d.changes, Change{Kind: kind, Path: path, Message: fmt.Sprintf(format, args...)})
}

func (d *schemaDiff) diffRoot(path string, oldRoot, newRoot *ast.Definition) {
	oldName, newName := definitionName(oldRoot), definitionName(newRoot)
	if oldName != newName {
		d.add(ChangeRootTypeChanged, path, "root type changed from %q to %q", oldName, newName)
	}
}

func (d *schemaDiff) diffDefinition(name string, oldDef, newDef *ast.Definition) {
	switch {
	case oldDef == nil:
		d.add(ChangeTypeAdded, name, "type %s was added", name)
		return
	case newDef == nil:
		d.add(ChangeTypeRemoved, name, "type %s was removed", name)
		return
	case oldDef.Kind != newDef.Kind:
		d.add(ChangeTypeKindChanged, name, "kind changed from %s to %s", oldDef.Kind, newDef.Kind)
		return
	}

	d.diffDescription(name, oldDef.Description, newDef.Description)
	d.diffAppliedDirectives(name, oldDef.Directives, newDef.Directives)
	d.diffFields(name, oldDef.Fields, newDef.Fields)
	d.diffStringSet(name, oldDef.Interfaces, newDef.Interfaces, ChangeInterfaceAdded, ChangeInterfaceRemoved, "interface")
	d.diffStringSet(name, oldDef.Types, newDef.Types, ChangeUnionMemberAdded, ChangeUnionMemberRemoved, "union member")
	d.diffEnumValues(name, oldDef.EnumValues, newDef.EnumValues)
}

func (d *schemaDiff) diffDescription(path, oldText, newText string) {
	if strings.TrimSpace(oldText) != strings.TrimSpace(newText) {
		d.add(ChangeDescriptionChanged, path, "description changed")
	}
}

func (d *schemaDiff) diffDeprecation(path string, oldDirectives, newDirectives ast.DirectiveList) {
	oldDeprecated, oldReason := deprecation(oldDirectives)
	newDeprecated, newReason := deprecation(newDirectives)
	if oldDeprecated != newDeprecated || oldReason != newReason {
		d.add(ChangeDeprecationChanged, path, "deprecation changed from %q to %q", deprecationText(oldDeprecated, oldReason), deprecationText(newDeprecated, newReason))
	}
}

func (d *schemaDiff) diffAppliedDirectives(path string, oldDirectives, newDirectives ast.DirectiveList) {
	d.diffDeprecation(path, oldDirectives, newDirectives)

	oldText := appliedDirectivesText(oldDirectives)
	newText := appliedDirectivesText(newDirectives)
	if oldText != newText {
		d.add(ChangeAppliedDirectiveChanged, path, "applied directives changed from %q to %q", oldText, newText)
	}
}

func (d *schemaDiff) diffFields(owner string, oldFields, newFields ast.FieldList) {
	oldByName := fieldsByName(oldFields)
	newByName := fieldsByName(newFields)
	for _, name := range unionKeys(oldByName, newByName) {
		path := owner + "." + name
		oldField, newField := oldByName[name], newByName[name]
		switch {
		case oldField == nil:
			d.add(ChangeFieldAdded, path, "field %s was added", path)
			continue
		case newField == nil:
			d.add(ChangeFieldRemoved, path, "field %s was removed", path)
			continue
		}

		if oldType, newType := oldField.Type.String(), newField.Type.String(); oldType != newType {
			d.add(ChangeFieldTypeChanged, path, "type changed from %s to %s", oldType, newType)
		}

		if oldValue, newValue := valueText(oldField.DefaultValue), valueText(newField.DefaultValue); oldValue != newValue {
			d.add(ChangeDefaultValueChanged, path, "default value changed from %q to %q", oldValue, newValue)
		}

		d.diffDescription(path, oldField.Description, newField.Description)
		d.diffAppliedDirectives(path, oldField.Directives, newField.Directives)
		d.diffArguments(path, oldField.Arguments, newField.Arguments)
	}
}

func (d *schemaDiff) diffArguments(owner string, oldArguments, newArguments ast.ArgumentDefinitionList) {
	oldByName := argumentsByName(oldArguments)
	newByName := argumentsByName(newArguments)
	for _, name := range unionKeys(oldByName, newByName) {
		path := owner + "(" + name + ")"
		oldArgument, newArgument := oldByName[name], newByName[name]
		switch {
		case oldArgument == nil:
			d.add(ChangeArgumentAdded, path, "argument %s was added", name)
			continue
		case newArgument == nil:
			d.add(ChangeArgumentRemoved, path, "argument %s was removed", name)
			continue
		}

		if oldType, newType := oldArgument.Type.String(), newArgument.Type.String(); oldType != newType {
			d.add(ChangeArgumentTypeChanged, path, "type changed from %s to %s", oldType, newType)
		}

		if oldValue, newValue := valueText(oldArgument.DefaultValue), valueText(newArgument.DefaultValue); oldValue != newValue {
			d.add(ChangeDefaultValueChanged, path, "default value changed from %q to %q", oldValue, newValue)
		}

		d.diffDescription(path, oldArgument.Description, newArgument.Description)
		d.diffDeprecation(path, oldArgument.Directives, newArgument.Directives)
	}
}

func (d *schemaDiff) diffEnumValues(owner string, oldValues, newValues ast.EnumValueList) {
	oldByName := make(map[string]*ast.EnumValueDefinition, len(oldValues))
	for _, value := range oldValues {
		oldByName[value.Name] = value
	}

	newByName := make(map[string]*ast.EnumValueDefinition, len(newValues))
	for _, value := range newValues {
		newByName[value.Name] = value
	}

	for _, name := range unionKeys(oldByName, newByName) {
		path := owner + "." + name
		oldValue, newValue := oldByName[name], newByName[name]
		switch {
		case oldValue == nil:
			d.add(ChangeEnumValueAdded, path, "enum value %s was added", name)
		case newValue == nil:
			d.add(ChangeEnumValueRemoved, path, "enum value %s was removed", name)
		default:
			d.diffDescription(path, oldValue.Description, newValue.Description)
			d.diffDeprecation(path, oldValue.Directives, newValue.Directives)
		}
	}
}

func (d *schemaDiff) diffStringSet(owner string, oldValues, newValues []string, added, removed ChangeKind, noun string) {
	for _, value := range newValues {
		if !slices.Contains(oldValues, value) {
			d.add(added, owner, "%s %s was added", noun, value)
		}
	}

	for _, value := range oldValues {
		if !slices.Contains(newValues, value) {
			d.add(removed, owner, "%s %s was removed", noun, value)
		}
	}
}

func (d *schemaDiff) diffDirectiveDefinition(name string, oldDirective, newDirective *ast.DirectiveDefinition) {
	path := "@" + name
	switch {
	case oldDirective == nil:
		d.add(ChangeDirectiveAdded, path, "directive %s was added", path)
		return
	case newDirective == nil:
		d.add(ChangeDirectiveRemoved, path, "directive %s was removed", path)
		return
	}

	oldLocations := directiveLocations(oldDirective)
	newLocations := directiveLocations(newDirective)
	if oldLocations != newLocations || oldDirective.IsRepeatable != newDirective.IsRepeatable {
		d.add(ChangeDirectiveLocationChange, path, "locations changed from %q to %q", oldLocations, newLocations)
	}

	d.diffDescription(path, oldDirective.Description, newDirective.Description)
	d.diffArguments(path, oldDirective.Arguments, newDirective.Arguments)
}

// userDefinitions filters out built-in and introspection definitions.
func userDefinitions(types map[string]*ast.Definition) map[string]*ast.Definition {
	out := make(map[string]*ast.Definition, len(types))
	for name, def := range types {
		if def == nil || def.BuiltIn || strings.HasPrefix(name, "__") {
			continue
		}

		out[name] = def
	}

	return out
}

// userDirectives filters out prelude directive definitions.
func userDirectives(directives map[string]*ast.DirectiveDefinition) map[string]*ast.DirectiveDefinition {
	out := make(map[string]*ast.DirectiveDefinition, len(directives))
	for name, directive := range directives {
		if directive == nil || isBuiltinDirective(directive) {
			continue
		}

		out[name] = directive
	}

	return out
}

func fieldsByName(fields ast.FieldList) map[string]*ast.FieldDefinition {
	out := make(map[string]*ast.FieldDefinition, len(fields))
	for _, field := range fields {
		if strings.HasPrefix(field.Name, "__") {
			continue
		}

		out[field.Name] = field
	}

	return out
}

func argumentsByName(arguments ast.ArgumentDefinitionList) map[string]*ast.ArgumentDefinition {
	out := make(map[string]*ast.ArgumentDefinition, len(arguments))
	for _, argument := range arguments {
		out[argument.Name] = argument
	}

	return out
}

// unionKeys returns sorted union of both map key sets.
func unionKeys[V any](left, right map[string]V) []string {
	seen := make(map[string]struct{}, len(left)+len(right))
	for key := range left {
		seen[key] = struct{}{}
	}
	for key := range right {
		seen[key] = struct{}{}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}

func definitionName(def *ast.Definition) string {
	if def == nil {
		return ""
	}

	return def.Name
}

func valueText(value *ast.Value) string {
	if value == nil {
		return ""
	}

	return value.String()
}

func deprecationText(deprecated bool, reason string) string {
	if !deprecated {
		return ""
	}

	return reason
}

// appliedDirectivesText renders non-deprecation applied directives in declaration order.
func appliedDirectivesText(directives ast.DirectiveList) string {
	parts := make([]string, 0, len(directives))
	for _, directive := range directives {
		if directive == nil || directive.Name == "deprecated" {
			continue
		}

		arguments := make([]string, 0, len(directive.Arguments))
		for _, argument := range directive.Arguments {
			arguments = append(arguments, argument.Name+": "+valueText(argument.Value))
		}

		part := "@" + directive.Name
		if len(arguments) > 0 {
			part += "(" + strings.Join(arguments, ", ") + ")"
		}

		parts = append(parts, part)
	}

	return strings.Join(parts, " ")
}

func directiveLocations(directive *ast.DirectiveDefinition) string {
	locations := make([]string, 0, len(directive.Locations))
	for _, location := range directive.Locations {
		locations = append(locations, string(location))
	}

	sort.Strings(locations)
	if directive.IsRepeatable {
		locations = append(locations, "repeatable")
	}

	return strings.Join(locations, "|")
}
