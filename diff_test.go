// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const diffBaseSDL = `
directive @tag(name: String) on FIELD_DEFINITION

"Tweet body."
type Tweet {
  id: ID!
  body: String
  score(scale: Int = 1): Float
}

enum Sort {
  ASC
  DESC
}

union Entry = Tweet

type Query {
  tweet(id: ID!): Tweet
}
`

func TestDiffSchemasIdentical(t *testing.T) {
	t.Parallel()

	assert.Empty(t, DiffSchemas(mustParseSchema(t, diffBaseSDL), mustParseSchema(t, diffBaseSDL)))
}

func TestDiffSchemasDetectsChanges(t *testing.T) {
	t.Parallel()

	newSDL := `
directive @tag(name: String) repeatable on FIELD_DEFINITION | OBJECT

"Tweet text."
type Tweet {
  id: ID
  body: String @deprecated(reason: "Use text.")
  text: String
  score(scale: Int = 2, round: Boolean): Float
}

type User {
  id: ID!
}

enum Sort {
  ASC
  RANDOM
}

union Entry = Tweet | User

type Query {
  tweet(id: ID!): Tweet
}
`

	changes := DiffSchemas(mustParseSchema(t, diffBaseSDL), mustParseSchema(t, newSDL))
	kinds := make(map[string][]ChangeKind)
	for _, change := range changes {
		kinds[change.Path] = append(kinds[change.Path], change.Kind)
	}

	expect := map[string]ChangeKind{
		"@tag":               ChangeDirectiveLocationChange,
		"Tweet":              ChangeDescriptionChanged,
		"Tweet.id":           ChangeFieldTypeChanged,
		"Tweet.body":         ChangeDeprecationChanged,
		"Tweet.text":         ChangeFieldAdded,
		"Tweet.score(scale)": ChangeDefaultValueChanged,
		"Tweet.score(round)": ChangeArgumentAdded,
		"User":               ChangeTypeAdded,
		"Sort.DESC":          ChangeEnumValueRemoved,
		"Sort.RANDOM":        ChangeEnumValueAdded,
		"Entry":              ChangeUnionMemberAdded,
	}

	for path, kind := range expect {
		assert.Contains(t, kinds[path], kind, "path %s", path)
	}

	assert.True(t, slices.IsSortedFunc(changes, func(a, b Change) int {
		switch {
		case a.Path < b.Path:
			return -1
		case a.Path > b.Path:
			return 1
		default:
			return 0
		}
	}))
}

func TestDiffSchemasRemovedTypeAndKindChange(t *testing.T) {
	t.Parallel()

	oldSchema := mustParseSchema(t, `
type Query { a: Int }
type Gone { id: ID }
type Shape { id: ID }
`)
	newSchema := mustParseSchema(t, `
type Query { a: Int }
interface Shape { id: ID }
`)

	changes := DiffSchemas(oldSchema, newSchema)
	require.Len(t, changes, 2)
	assert.Equal(t, Change{Kind: ChangeTypeRemoved, Path: "Gone", Message: "type Gone was removed"}, changes[0])
	assert.Equal(t, ChangeTypeKindChanged, changes[1].Kind)
	assert.Equal(t, "TYPE_REMOVED Gone: type Gone was removed", changes[0].String())
}

func TestDiffSchemasRootTypeChange(t *testing.T) {
	t.Parallel()

	oldSchema := mustParseSchema(t, `type Query { a: Int }`)
	newSchema := mustParseSchema(t, `
type Query { a: Int }
type Mutation { b: Int }
`)

	changes := DiffSchemas(oldSchema, newSchema)
	paths := make([]string, 0, len(changes))
	for _, change := range changes {
		paths = append(paths, change.Path)
	}

	assert.Contains(t, paths, "schema.mutation")
	assert.Contains(t, paths, "Mutation")
}

func TestDiffSchemasNilSchemas(t *testing.T) {
	t.Parallel()

	assert.Empty(t, DiffSchemas(nil, nil))
	assert.NotEmpty(t, DiffSchemas(nil, mustParseSchema(t, `type Query { a: Int }`)))
}
