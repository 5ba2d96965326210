// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
)

const exampleSDL = `
enum Unit { KM MILE }

input Point {
  "X coordinate."
  x: Float!
  y: Float = 1.5
  unit: Unit
}

type Query {
  near("Center point." at: Point!, tags: [String!], limit: Int! = 5): Int
  ping: Boolean
}
`

func exampleField(t *testing.T, schema *ast.Schema, name string) *ast.FieldDefinition {
	t.Helper()

	field := schema.Query.Fields.ForName(name)
	if field == nil {
		t.Fatalf("query field %q not found", name)
	}

	return field
}

func TestGenerateExampleVariablesAllMode(t *testing.T) {
	t.Parallel()

	schema := loadFixtureSchema(t)
	data, err := GenerateExampleVariables(schema, exampleField(t, schema, "tweets"), ExampleModeAll, ExampleFormatJSON)
	if err != nil {
		t.Fatalf("GenerateExampleVariables: %v", err)
	}

	if !strings.HasPrefix(string(data), "{\n  \"filter\": {\n    \"author\": \"<id>\",") {
		t.Fatalf("example keys must keep declaration order:\n%s", data)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal example: %v", err)
	}

	want := map[string]any{
		"filter": map[string]any{
			"author": "<id>",
			"limit":  float64(10),
			"sort":   "ASC",
			"nested": nil,
		},
		"first": float64(0),
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("all mode mismatch\ngot:  %#v\nwant: %#v", got, want)
	}
}

func TestGenerateExampleVariablesRequiredMode(t *testing.T) {
	t.Parallel()

	schema := mustParseSchema(t, exampleSDL)
	data, err := GenerateExampleVariables(schema, exampleField(t, schema, "near"), ExampleModeRequired, ExampleFormatJSON)
	if err != nil {
		t.Fatalf("GenerateExampleVariables: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal example: %v", err)
	}

	want := map[string]any{"at": map[string]any{"x": float64(0)}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("required mode mismatch\ngot:  %#v\nwant: %#v", got, want)
	}
}

func TestGenerateExampleVariablesEmpty(t *testing.T) {
	t.Parallel()

	schema := loadFixtureSchema(t)
	cases := map[string]ExampleMode{
		"legacyStats": ExampleModeAll,
		"tweets":      ExampleModeRequired,
	}

	for name, mode := range cases {
		data, err := GenerateExampleVariables(schema, exampleField(t, schema, name), mode, ExampleFormatJSON)
		if err != nil {
			t.Fatalf("GenerateExampleVariables(%s): %v", name, err)
		}

		if data != nil {
			t.Fatalf("expected no example for %s, got %s", name, data)
		}
	}

	if data, err := GenerateExampleVariables(schema, nil, ExampleModeAll, ExampleFormatJSON); err != nil || data != nil {
		t.Fatalf("nil field = %q, %v", data, err)
	}
}

func TestGenerateExampleVariablesYAML(t *testing.T) {
	t.Parallel()

	schema := mustParseSchema(t, exampleSDL)
	data, err := GenerateExampleVariables(schema, exampleField(t, schema, "near"), ExampleModeAll, ExampleFormatYAML)
	if err != nil {
		t.Fatalf("GenerateExampleVariables: %v", err)
	}

	text := string(data)
	assertContains(t, text, "# Center point.\nat:\n")
	assertContains(t, text, "# X coordinate.\n")
	assertContains(t, text, "unit: KM\n")
	assertContains(t, text, "tags:\n  - <string>\n")
	assertContains(t, text, "limit: 5\n")
}

func TestGenerateExampleVariablesUnknownFormat(t *testing.T) {
	t.Parallel()

	schema := mustParseSchema(t, exampleSDL)
	_, err := GenerateExampleVariables(schema, exampleField(t, schema, "near"), ExampleModeAll, ExampleFormat("toml"))
	if !errors.Is(err, ErrUnknownExampleFormat) {
		t.Fatalf("error = %v, want ErrUnknownExampleFormat", err)
	}
}

func TestParseExampleOptions(t *testing.T) {
	t.Parallel()

	if mode, err := ParseExampleMode(" Required "); err != nil || mode != ExampleModeRequired {
		t.Fatalf("ParseExampleMode = %q, %v", mode, err)
	}

	if mode, err := ParseExampleMode(""); err != nil || mode != "" {
		t.Fatalf("empty mode = %q, %v", mode, err)
	}

	if _, err := ParseExampleMode("some"); !errors.Is(err, ErrUnknownExampleMode) {
		t.Fatalf("unknown mode error = %v", err)
	}

	if format, err := ParseExampleFormat(""); err != nil || format != ExampleFormatJSON {
		t.Fatalf("empty format = %q, %v", format, err)
	}

	if format, err := ParseExampleFormat("YAML"); err != nil || format != ExampleFormatYAML {
		t.Fatalf("ParseExampleFormat = %q, %v", format, err)
	}

	if _, err := ParseExampleFormat("xml"); !errors.Is(err, ErrUnknownExampleFormat) {
		t.Fatalf("unknown format error = %v", err)
	}
}
