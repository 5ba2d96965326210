// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
)

const (
	fixtureSchemaPath = "testdata/schema.graphql"

	tweetSDL = `
type Query {
  tweet(id: ID!): Tweet
}

type Tweet {
  id: ID!
  body: String
}
`
)

// loadFixtureSchema parses the shared testdata schema.
func loadFixtureSchema(t testing.TB) *ast.Schema {
	t.Helper()

	data, err := os.ReadFile(fixtureSchemaPath)
	if err != nil {
		t.Fatalf("read fixture schema: %v", err)
	}

	return mustParseSchema(t, string(data))
}

// mustParseSchema parses SDL or fails the test.
func mustParseSchema(t testing.TB, sdl string) *ast.Schema {
	t.Helper()

	schema, err := ParseSchemaString("test.graphql", sdl)
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}

	return schema
}

// writeTestFile writes data under dir creating parent directories.
func writeTestFile(t testing.TB, dir, name, data string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	return path
}

// readTestFile reads file content or fails the test.
func readTestFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	return string(data)
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\noutput:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("expected output not to contain %q\noutput:\n%s", needle, haystack)
	}
}
