// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// CategoryMetafile is the per-directory category metadata file name.
	CategoryMetafile = "_category_.yml"
	// generatedIndexLink is the link type producing an index page for the category.
	generatedIndexLink = "generated-index"
	// defaultSidebarPosition is the category position when none is given.
	defaultSidebarPosition = 1
)

// MetafileOptions tunes one category metadata file.
type MetafileOptions struct {
	// Position overrides sidebar position; zero keeps the default.
	Position int
	// ClassName is an optional style class.
	ClassName string
	// GeneratedIndex adds generated-index link directive.
	GeneratedIndex bool
	// Collapsible and Collapsed default to true when nil.
	Collapsible *bool
	Collapsed   *bool
}

// categoryMetafile is the serialized form of _category_.yml.
type categoryMetafile struct {
	Label       string        `yaml:"label"`
	Position    int           `yaml:"position"`
	ClassName   string        `yaml:"className,omitempty"`
	Link        *metafileLink `yaml:"link,omitempty"`
	Collapsible bool          `yaml:"collapsible"`
	Collapsed   bool          `yaml:"collapsed"`
}

type metafileLink struct {
	Type string `yaml:"type"`
}

// GenerateIndexMetafile writes category metadata into dir unless it already exists.
// It reports whether the file was written.
func GenerateIndexMetafile(dir, category string, opt MetafileOptions) (bool, error) {
	path := filepath.Join(dir, CategoryMetafile)
	exists, err := fileExists(path)
	if err != nil {
		return false, fmt.Errorf("%w %q: %w", ErrWriteMetafile, path, err)
	}

	if exists {
		return false, nil
	}

	meta := categoryMetafile{
		Label:       CategoryLabel(category),
		Position:    defaultSidebarPosition,
		ClassName:   opt.ClassName,
		Collapsible: boolOrTrue(opt.Collapsible),
		Collapsed:   boolOrTrue(opt.Collapsed),
	}

	if opt.Position != 0 {
		meta.Position = opt.Position
	}

	if opt.GeneratedIndex {
		meta.Link = &metafileLink{Type: generatedIndexLink}
	}

	data, err := yaml.Marshal(meta)
	if err != nil {
		return false, fmt.Errorf("%w %q: %w", ErrWriteMetafile, path, err)
	}

	if err := saveFile(path, data); err != nil {
		return false, fmt.Errorf("%w %q: %w", ErrWriteMetafile, path, err)
	}

	return true, nil
}

func boolOrTrue(value *bool) bool {
	if value == nil {
		return true
	}

	return *value
}
