// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// HomepageTimestampToken is replaced with the generation time in homepage text.
	HomepageTimestampToken = "##generated-date-time##"
	// defaultHomepageName is the output file name of the embedded homepage.
	defaultHomepageName = "generated.md"
	// homepageTimeLayout formats generation time for humans.
	homepageTimeLayout = "January 2, 2006 at 15:04:05 MST"
)

// homepageFrontMatter holds front matter keys affecting doc identity.
type homepageFrontMatter struct {
	ID string `yaml:"id"`
}

// RenderHomepage copies homepage source into outputDir substituting the
// generation timestamp token. Empty source uses the embedded homepage.
// It returns the homepage doc id relative to outputDir.
func RenderHomepage(source, outputDir string, now time.Time) (string, error) {
	name := defaultHomepageName
	var (
		data []byte
		err  error
	)

	if strings.TrimSpace(source) == "" {
		data, err = templateFS.ReadFile(defaultHomepageFile)
	} else {
		name = filepath.Base(source)
		data, err = os.ReadFile(source)
	}

	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrReadHomepage, source, err)
	}

	content := strings.ReplaceAll(string(data), HomepageTimestampToken, now.Format(homepageTimeLayout))
	target := filepath.Join(outputDir, name)
	if err := saveFile(target, []byte(content)); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrWritePage, target, err)
	}

	if id := frontMatterID(content); id != "" {
		return id, nil
	}

	return strings.TrimSuffix(name, filepath.Ext(name)), nil
}

// frontMatterID returns id declared in leading YAML front matter.
func frontMatterID(content string) string {
	content = normalizeLineEndings(content)
	rest, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		return ""
	}

	block, _, ok := strings.Cut(rest, "\n---")
	if !ok {
		return ""
	}

	var meta homepageFrontMatter
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return ""
	}

	return strings.TrimSpace(meta.ID)
}
