// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// PrintSchema returns canonical SDL text of schema without built-in definitions.
func PrintSchema(schema *ast.Schema) string {
	if schema == nil {
		return ""
	}

	var out strings.Builder
	formatter.NewFormatter(&out, formatter.WithIndent("  ")).FormatSchema(schema)
	return ensureTrailingNewline(out.String())
}

// HashSDL returns hex SHA-256 digest of SDL text.
func HashSDL(sdl string) string {
	sum := sha256.Sum256([]byte(sdl))
	return hex.EncodeToString(sum[:])
}

// HashSchema returns hex SHA-256 digest of printed schema.
func HashSchema(schema *ast.Schema) string {
	return HashSDL(PrintSchema(schema))
}

// printDefinitionSDL renders SDL for one definition without descriptions.
func printDefinitionSDL(t *NamedType) string {
	var out strings.Builder
	f := formatter.NewFormatter(&out, formatter.WithIndent("  "))

	switch {
	case t.Definition != nil:
		def := *t.Definition
		def.Description = ""
		def.Fields = stripFieldDescriptions(def.Fields)
		def.EnumValues = stripEnumDescriptions(def.EnumValues)
		f.FormatSchemaDocument(&ast.SchemaDocument{Definitions: ast.DefinitionList{&def}})
	case t.Directive != nil:
		if t.Directive.Position == nil || t.Directive.Position.Src == nil {
			return ""
		}

		directive := *t.Directive
		directive.Description = ""
		directive.Arguments = stripArgumentDescriptions(directive.Arguments)
		f.FormatSchemaDocument(&ast.SchemaDocument{Directives: ast.DirectiveDefinitionList{&directive}})
	case t.Field != nil:
		return printFieldSignature(t.Field) + "\n"
	}

	return strings.TrimSpace(out.String()) + "\n"
}

// printFieldSignature renders operation field signature like SDL field definition.
func printFieldSignature(field *ast.FieldDefinition) string {
	var out strings.Builder
	out.WriteString(field.Name)
	if len(field.Arguments) > 0 {
		out.WriteString("(\n")
		for _, argument := range field.Arguments {
			out.WriteString("  ")
			out.WriteString(argument.Name)
			out.WriteString(": ")
			out.WriteString(argument.Type.String())
			if argument.DefaultValue != nil {
				out.WriteString(" = ")
				out.WriteString(argument.DefaultValue.String())
			}
			out.WriteString("\n")
		}
		out.WriteString(")")
	}

	out.WriteString(": ")
	out.WriteString(field.Type.String())
	for _, directive := range field.Directives {
		out.WriteString(" @")
		out.WriteString(directive.Name)
		if len(directive.Arguments) == 0 {
			continue
		}

		parts := make([]string, 0, len(directive.Arguments))
		for _, argument := range directive.Arguments {
			parts = append(parts, argument.Name+": "+argument.Value.String())
		}
		out.WriteString("(" + strings.Join(parts, ", ") + ")")
	}

	return out.String()
}

func stripFieldDescriptions(fields ast.FieldList) ast.FieldList {
	if len(fields) == 0 {
		return fields
	}

	out := make(ast.FieldList, 0, len(fields))
	for _, field := range fields {
		copied := *field
		copied.Description = ""
		copied.Arguments = stripArgumentDescriptions(copied.Arguments)
		out = append(out, &copied)
	}

	return out
}

func stripArgumentDescriptions(arguments ast.ArgumentDefinitionList) ast.ArgumentDefinitionList {
	if len(arguments) == 0 {
		return arguments
	}

	out := make(ast.ArgumentDefinitionList, 0, len(arguments))
	for _, argument := range arguments {
		copied := *argument
		copied.Description = ""
		out = append(out, &copied)
	}

	return out
}

func stripEnumDescriptions(values ast.EnumValueList) ast.EnumValueList {
	if len(values) == 0 {
		return values
	}

	out := make(ast.EnumValueList, 0, len(values))
	for _, value := range values {
		copied := *value
		copied.Description = ""
		out = append(out, &copied)
	}

	return out
}
