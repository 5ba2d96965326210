// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"gopkg.in/yaml.v3"
)

const (
	// ExampleModeAll builds example with all declared arguments and input fields.
	ExampleModeAll ExampleMode = "all"
	// ExampleModeRequired builds example with non-null arguments and fields without defaults.
	ExampleModeRequired ExampleMode = "required"
)

// ExampleMode configures example variables coverage.
type ExampleMode string

const (
	// ExampleFormatJSON encodes example variables as JSON.
	ExampleFormatJSON ExampleFormat = "json"
	// ExampleFormatYAML encodes example variables as YAML.
	ExampleFormatYAML ExampleFormat = "yaml"
)

// ExampleFormat configures output format for example variables.
type ExampleFormat string

// exampleScalarPlaceholders provides values for built-in scalars.
var exampleScalarPlaceholders = map[string]any{
	"ID":      "<id>",
	"String":  "<string>",
	"Int":     0,
	"Float":   0.0,
	"Boolean": false,
}

// exampleEntry is one ordered key of an example object.
type exampleEntry struct {
	Key         string
	Value       any
	Description string
}

// exampleObject keeps declaration order of example object keys.
type exampleObject []exampleEntry

// exampleBuilder converts argument and input definitions into example values.
type exampleBuilder struct {
	schema      *ast.Schema
	mode        ExampleMode
	activeTypes map[string]int
}

// ParseExampleMode validates and normalizes caller mode value. Empty disables examples.
func ParseExampleMode(mode string) (ExampleMode, error) {
	normalized := ExampleMode(strings.ToLower(strings.TrimSpace(mode)))
	switch normalized {
	case "", ExampleModeAll, ExampleModeRequired:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleMode, mode)
	}
}

// ParseExampleFormat validates and normalizes caller format value. Empty means JSON.
func ParseExampleFormat(format string) (ExampleFormat, error) {
	normalized := ExampleFormat(strings.ToLower(strings.TrimSpace(format)))
	switch normalized {
	case "":
		return ExampleFormatJSON, nil
	case ExampleFormatJSON, ExampleFormatYAML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// GenerateExampleVariables returns example variables for operation field arguments.
// It returns nil when field has no arguments selected by mode.
func GenerateExampleVariables(schema *ast.Schema, field *ast.FieldDefinition, mode ExampleMode, format ExampleFormat) ([]byte, error) {
	if field == nil || len(field.Arguments) == 0 {
		return nil, nil
	}

	builder := exampleBuilder{
		schema:      schema,
		mode:        mode,
		activeTypes: make(map[string]int),
	}

	variables := builder.buildArguments(field.Arguments)
	if len(variables) == 0 {
		return nil, nil
	}

	var (
		data []byte
		err  error
	)

	switch format {
	case ExampleFormatYAML:
		data, err = marshalExampleYAML(variables)
	case ExampleFormatJSON, "":
		data, err = marshalExampleJSON(variables)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExample, err)
	}

	return data, nil
}

// buildArguments builds ordered example object from argument definitions.
func (builder *exampleBuilder) buildArguments(arguments ast.ArgumentDefinitionList) exampleObject {
	out := make(exampleObject, 0, len(arguments))
	for _, argument := range arguments {
		if !builder.includes(argument.Type, argument.DefaultValue) {
			continue
		}

		out = append(out, exampleEntry{
			Key:         argument.Name,
			Value:       builder.buildValue(argument.Type, argument.DefaultValue),
			Description: argument.Description,
		})
	}

	return out
}

// includes reports whether value is selected by builder mode.
func (builder *exampleBuilder) includes(t *ast.Type, defaultValue *ast.Value) bool {
	if builder.mode != ExampleModeRequired {
		return true
	}

	return t.NonNull && defaultValue == nil
}

// buildValue builds example value for one type reference.
func (builder *exampleBuilder) buildValue(t *ast.Type, defaultValue *ast.Value) any {
	if t.Elem != nil {
		return []any{builder.buildValue(t.Elem, nil)}
	}

	if defaultValue != nil {
		if value, err := defaultValue.Value(nil); err == nil {
			return value
		}
	}

	if value, ok := exampleScalarPlaceholders[t.NamedType]; ok {
		return value
	}

	def := builder.schema.Types[t.NamedType]
	if def == nil {
		return nil
	}

	switch def.Kind {
	case ast.Enum:
		if len(def.EnumValues) > 0 {
			return def.EnumValues[0].Name
		}

		return nil
	case ast.InputObject:
		release, ok := builder.enterType(def.Name)
		if !ok {
			return nil
		}
		defer release()

		return builder.buildInputObject(def)
	default:
		return "<" + def.Name + ">"
	}
}

// buildInputObject builds ordered example object for input definition.
func (builder *exampleBuilder) buildInputObject(def *ast.Definition) exampleObject {
	out := make(exampleObject, 0, len(def.Fields))
	for _, field := range def.Fields {
		if !builder.includes(field.Type, field.DefaultValue) {
			continue
		}

		out = append(out, exampleEntry{
			Key:         field.Name,
			Value:       builder.buildValue(field.Type, field.DefaultValue),
			Description: field.Description,
		})
	}

	return out
}

// enterType registers active input type and returns release callback.
// Recursive input types resolve to null on re-entry.
func (builder *exampleBuilder) enterType(name string) (func(), bool) {
	if builder.activeTypes[name] > 0 {
		return nil, false
	}

	builder.activeTypes[name]++
	return func() {
		builder.activeTypes[name]--
		if builder.activeTypes[name] <= 0 {
			delete(builder.activeTypes, name)
		}
	}, true
}

// MarshalJSON encodes example object keeping key order.
func (object exampleObject) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('{')
	for index, entry := range object {
		if index > 0 {
			out.WriteByte(',')
		}

		key, err := encodeJSONValue(entry.Key)
		if err != nil {
			return nil, err
		}

		value, err := encodeJSONValue(entry.Value)
		if err != nil {
			return nil, err
		}

		out.Write(key)
		out.WriteByte(':')
		out.Write(value)
	}
	out.WriteByte('}')

	return out.Bytes(), nil
}

// marshalExampleJSON serializes example payload as pretty JSON.
func marshalExampleJSON(value any) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// encodeJSONValue encodes one value without HTML escaping of placeholders.
func encodeJSONValue(value any) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return bytes.TrimRight(out.Bytes(), "\n"), nil
}

// marshalExampleYAML serializes example payload as YAML with description comments.
func marshalExampleYAML(value any) ([]byte, error) {
	node, err := yamlNodeForValue(value)
	if err != nil {
		return nil, err
	}

	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// yamlNodeForValue builds deterministic yaml.Node tree from example value.
func yamlNodeForValue(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil
	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil
	case string:
		return yamlScalarNode("!!str", typed), nil
	case int:
		return yamlScalarNode("!!int", strconv.Itoa(typed)), nil
	case int64:
		return yamlScalarNode("!!int", strconv.FormatInt(typed, 10)), nil
	case float64:
		return yamlScalarNode("!!float", strconv.FormatFloat(typed, 'f', -1, 64)), nil
	case exampleObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, entry := range typed {
			valueNode, err := yamlNodeForValue(entry.Value)
			if err != nil {
				return nil, err
			}

			keyNode := yamlScalarNode("!!str", entry.Key)
			keyNode.HeadComment = sanitizeText(entry.Description)
			node.Content = append(node.Content, keyNode, valueNode)
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			valueNode, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, valueNode)
		}
		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(typed); err != nil {
			return nil, err
		}
		return node, nil
	}
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}
