// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
)

const (
	// SidebarFile is the generated sidebar module file name.
	SidebarFile = "sidebar-schema.js"
	// sidebarKey is the exported navigation key.
	sidebarKey = "schemaSidebar"
)

// SidebarNode is one sidebar entry: a doc leaf or a category with items.
type SidebarNode struct {
	Type  string        `json:"type"`
	ID    string        `json:"id,omitempty"`
	Label string        `json:"label,omitempty"`
	Items []SidebarNode `json:"items,omitempty"`
}

// PageDescriptor identifies one rendered page.
type PageDescriptor struct {
	// Category is the display label of the page top-level directory.
	Category string
	// Slug is the output-root relative page path without extension.
	Slug string
}

// sidebarCategory is an intermediate category bucket with sorted doc set.
type sidebarCategory struct {
	label    string
	docs     map[string]struct{}
	children []*sidebarCategory
	index    map[string]*sidebarCategory
}

func newSidebarCategory(label string) *sidebarCategory {
	return &sidebarCategory{
		label: label,
		docs:  make(map[string]struct{}),
		index: make(map[string]*sidebarCategory),
	}
}

// child returns existing sub-category or appends a new one, keeping first-seen order.
func (c *sidebarCategory) child(segment, label string) *sidebarCategory {
	if existing, ok := c.index[segment]; ok {
		return existing
	}

	created := newSidebarCategory(label)
	c.index[segment] = created
	c.children = append(c.children, created)
	return created
}

// nodes serializes bucket children: sorted docs first, then sub-categories.
func (c *sidebarCategory) nodes() []SidebarNode {
	ids := make([]string, 0, len(c.docs))
	for id := range c.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]SidebarNode, 0, len(ids)+len(c.children))
	for _, id := range ids {
		out = append(out, SidebarNode{Type: "doc", ID: id})
	}

	for _, child := range c.children {
		out = append(out, SidebarNode{Type: "category", Label: child.label, Items: child.nodes()})
	}

	return out
}

// BuildSidebar folds flat page list into a nested sidebar.
// The homepage leaf comes first; categories nest by slug directory segments
// in first-seen order, doc ids within a category are sorted.
func BuildSidebar(pages []PageDescriptor, homepageID, baseURL string) []SidebarNode {
	root := newSidebarCategory("")
	for _, page := range pages {
		slug := strings.Trim(page.Slug, "/")
		if slug == "" {
			continue
		}

		segments := strings.Split(slug, "/")
		current := root
		for index, segment := range segments[:len(segments)-1] {
			label := CategoryLabel(segment)
			if index == 0 && strings.TrimSpace(page.Category) != "" {
				label = page.Category
			}

			current = current.child(segment, label)
		}

		current.docs[path.Join(baseURL, slug)] = struct{}{}
	}

	out := make([]SidebarNode, 0, len(root.children)+1)
	if homepageID != "" {
		out = append(out, SidebarNode{Type: "doc", ID: homepageID})
	}

	return append(out, root.nodes()...)
}

// RenderSidebar writes sidebar module exporting schemaSidebar.
func RenderSidebar(filePath string, nodes []SidebarNode) error {
	if nodes == nil {
		nodes = []SidebarNode{}
	}

	var body bytes.Buffer
	encoder := json.NewEncoder(&body)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(map[string][]SidebarNode{sidebarKey: nodes}); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteSidebar, err)
	}

	content := "module.exports = " + strings.TrimRight(body.String(), "\n") + ";\n"
	if err := saveFile(filePath, []byte(content)); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteSidebar, filePath, err)
	}

	return nil
}
