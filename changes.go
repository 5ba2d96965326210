// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

const (
	// SchemaReferenceFile stores SDL snapshot used by DIFF comparison.
	SchemaReferenceFile = "schema.graphql"
	// SchemaHashFile stores hex digest used by HASH comparison.
	SchemaHashFile = ".schema"
)

// CompareMethod selects how schema changes are detected between runs.
type CompareMethod string

const (
	// CompareDiff compares structural schema changes against SDL snapshot.
	CompareDiff CompareMethod = "DIFF"
	// CompareHash compares SDL digest against stored hash.
	CompareHash CompareMethod = "HASH"
	// CompareForce always regenerates.
	CompareForce CompareMethod = "FORCE"
	// CompareNone always regenerates and keeps no reference.
	CompareNone CompareMethod = "NONE"
)

// ParseCompareMethod normalizes method name. Unknown names are kept and
// behave like FORCE.
func ParseCompareMethod(name string) CompareMethod {
	return CompareMethod(strings.ToUpper(strings.TrimSpace(name)))
}

// CheckSchemaChanges reports whether docs must be regenerated for schema.
func CheckSchemaChanges(ctx context.Context, schema *ast.Schema, dir string, method CompareMethod) (bool, error) {
	switch method {
	case CompareDiff:
		return checkSchemaDiff(ctx, schema, dir)
	case CompareHash:
		return checkSchemaHash(schema, dir)
	default:
		return true, nil
	}
}

// checkSchemaDiff compares schema with stored SDL snapshot.
// The snapshot is written only on first run.
func checkSchemaDiff(ctx context.Context, schema *ast.Schema, dir string) (bool, error) {
	referencePath := filepath.Join(dir, SchemaReferenceFile)
	exists, err := fileExists(referencePath)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrLoadReference, err)
	}

	if !exists {
		if err := writeSchemaSnapshot(schema, dir); err != nil {
			return false, err
		}

		return true, nil
	}

	reference, err := LoadSchema(ctx, referencePath, []Loader{FileLoader{}})
	if err != nil {
		return false, fmt.Errorf("%w %q: %w", ErrLoadReference, referencePath, err)
	}

	return len(DiffSchemas(reference, schema)) > 0, nil
}

// checkSchemaHash compares schema digest with stored hash.
func checkSchemaHash(schema *ast.Schema, dir string) (bool, error) {
	hashPath := filepath.Join(dir, SchemaHashFile)
	hash := HashSchema(schema)

	exists, err := fileExists(hashPath)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrLoadReference, err)
	}

	if !exists {
		if err := writeSchemaHash(hash, dir); err != nil {
			return false, err
		}

		return true, nil
	}

	stored, err := readFile(hashPath)
	if err != nil {
		return false, fmt.Errorf("%w %q: %w", ErrLoadReference, hashPath, err)
	}

	return strings.TrimSpace(stored) != hash, nil
}

// SaveSchemaReference persists fresh baseline after a successful render.
// DIFF writes SDL, HASH writes digest, FORCE and unknown methods write both,
// NONE writes nothing.
func SaveSchemaReference(schema *ast.Schema, dir string, method CompareMethod) error {
	switch method {
	case CompareNone:
		return nil
	case CompareDiff:
		return writeSchemaSnapshot(schema, dir)
	case CompareHash:
		return writeSchemaHash(HashSchema(schema), dir)
	default:
		if err := writeSchemaSnapshot(schema, dir); err != nil {
			return err
		}

		return writeSchemaHash(HashSchema(schema), dir)
	}
}

func writeSchemaSnapshot(schema *ast.Schema, dir string) error {
	path := filepath.Join(dir, SchemaReferenceFile)
	if err := saveFile(path, []byte(PrintSchema(schema))); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteReference, path, err)
	}

	return nil
}

func writeSchemaHash(hash, dir string) error {
	path := filepath.Join(dir, SchemaHashFile)
	if err := saveFile(path, []byte(hash)); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteReference, path, err)
	}

	return nil
}

// missingReferences lists reference files not present in dir.
func missingReferences(dir string) ([]string, error) {
	var missing []string
	for _, name := range []string{SchemaReferenceFile, SchemaHashFile} {
		path := filepath.Join(dir, name)
		exists, err := fileExists(path)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrLoadReference, path, err)
		}

		if !exists {
			missing = append(missing, path)
		}
	}

	return missing, nil
}

// removeReferences deletes reference files; absent files are skipped.
func removeReferences(paths []string) error {
	var errs []error
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
