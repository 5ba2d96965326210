// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the configuration file name looked up next to the working directory.
	DefaultConfigFile = ".graphqlmd.yml"
	// defaultRootPath is the documentation root directory.
	defaultRootPath = "./docs"
	// defaultBaseURL is the docs sub-directory and URL segment of generated pages.
	defaultBaseURL = "schema"
	// defaultLinkRoot is the URL prefix used for cross page links.
	defaultLinkRoot = "/"
	// defaultTmpDirName is the reference directory name under system temp.
	defaultTmpDirName = "graphqlmd"
)

// DeprecatedMode configures rendering of deprecated entities.
type DeprecatedMode string

const (
	// DeprecatedDefault renders deprecated entities in place.
	DeprecatedDefault DeprecatedMode = "default"
	// DeprecatedGroup renders deprecated entities under a "deprecated" sub-directory.
	DeprecatedGroup DeprecatedMode = "group"
	// DeprecatedSkip omits deprecated entities.
	DeprecatedSkip DeprecatedMode = "skip"
)

// ParseDeprecatedMode validates and normalizes deprecated mode value.
func ParseDeprecatedMode(value string) (DeprecatedMode, error) {
	mode := DeprecatedMode(strings.ToLower(strings.TrimSpace(value)))
	switch mode {
	case "":
		return DeprecatedDefault, nil
	case DeprecatedDefault, DeprecatedGroup, DeprecatedSkip:
		return mode, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownDeprecatedMode, value)
	}
}

// Options configures one generation run.
type Options struct {
	// Schema is the schema location: file, directory, glob or URL.
	Schema string `yaml:"schema"`
	// Loaders lists loader names tried in order; empty means all built-in loaders.
	Loaders []string `yaml:"loaders"`
	// RootPath is the documentation root directory.
	RootPath string `yaml:"rootPath"`
	// BaseURL is the sub-directory of RootPath receiving generated pages.
	BaseURL string `yaml:"baseURL"`
	// LinkRoot is the URL prefix used for links between pages.
	LinkRoot string `yaml:"linkRoot"`
	// Homepage is the homepage template path; empty uses the embedded default.
	Homepage string `yaml:"homepage"`
	// DiffMethod is the schema comparison strategy name.
	DiffMethod string `yaml:"diffMethod"`
	// TmpDir stores schema reference files between runs.
	TmpDir string `yaml:"tmpDir"`
	// GroupByDirective is the @directive(field|=fallback) grouping expression.
	GroupByDirective string `yaml:"groupByDirective"`
	// Force regenerates regardless of detected changes.
	Force *bool `yaml:"force"`
	// Skip lists categories excluded from output.
	Skip []string `yaml:"skip"`
	// Deprecated is the deprecated entity handling mode.
	Deprecated string `yaml:"deprecated"`
	// NoCode omits SDL code blocks from pages.
	NoCode *bool `yaml:"noCode"`
	// NoRelated omits related types sections from pages.
	NoRelated *bool `yaml:"noRelated"`
	// NoIndex disables generated-index links in category metafiles.
	NoIndex *bool `yaml:"noIndex"`
	// Example enables example variables for operations ("all" or "required").
	Example string `yaml:"example"`
	// ExampleFormat selects example variables encoding ("json" or "yaml").
	ExampleFormat string `yaml:"exampleFormat"`
	// Template is the built-in page template name ("list" or "table").
	Template string `yaml:"template"`
	// TemplateText overrides built-in page template.
	TemplateText string `yaml:"-"`
	// TemplatePath is a custom page template file path.
	TemplatePath string `yaml:"templatePath"`
	// WrapWidth wraps plain description paragraphs.
	WrapWidth int `yaml:"wrapWidth"`
	// NoPretty writes page markdown without normalization.
	NoPretty *bool `yaml:"noPretty"`
}

// DefaultOptions returns options with all defaults applied.
func DefaultOptions() Options {
	return Options{
		RootPath:      defaultRootPath,
		BaseURL:       defaultBaseURL,
		LinkRoot:      defaultLinkRoot,
		DiffMethod:    string(CompareDiff),
		TmpDir:        filepath.Join(os.TempDir(), defaultTmpDirName),
		Deprecated:    string(DeprecatedDefault),
		ExampleFormat: string(ExampleFormatJSON),
		WrapWidth:     defaultWrapWidth,
	}
}

// OutputDir returns directory receiving generated pages.
func (opt Options) OutputDir() string {
	return filepath.Join(opt.RootPath, filepath.FromSlash(opt.BaseURL))
}

// LoadConfigFile reads YAML options from path.
func LoadConfigFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("%w %q: %w", ErrReadConfig, path, err)
	}

	var opt Options
	if err := yaml.Unmarshal(data, &opt); err != nil {
		return Options{}, fmt.Errorf("%w %q: %w", ErrReadConfig, path, err)
	}

	return opt, nil
}

// MergeOptions merges option tiers key by key, later tiers win on non-zero values.
// Boolean switches are enabled when any tier enables them.
func MergeOptions(defaults, file, cli Options) Options {
	out := defaults
	for _, tier := range []Options{file, cli} {
		out.Schema = pickString(out.Schema, tier.Schema)
		out.RootPath = pickString(out.RootPath, tier.RootPath)
		out.BaseURL = pickString(out.BaseURL, tier.BaseURL)
		out.LinkRoot = pickString(out.LinkRoot, tier.LinkRoot)
		out.Homepage = pickString(out.Homepage, tier.Homepage)
		out.DiffMethod = pickString(out.DiffMethod, tier.DiffMethod)
		out.TmpDir = pickString(out.TmpDir, tier.TmpDir)
		out.GroupByDirective = pickString(out.GroupByDirective, tier.GroupByDirective)
		out.Deprecated = pickString(out.Deprecated, tier.Deprecated)
		out.Example = pickString(out.Example, tier.Example)
		out.ExampleFormat = pickString(out.ExampleFormat, tier.ExampleFormat)
		out.Template = pickString(out.Template, tier.Template)
		out.TemplateText = pickString(out.TemplateText, tier.TemplateText)
		out.TemplatePath = pickString(out.TemplatePath, tier.TemplatePath)

		if len(tier.Loaders) > 0 {
			out.Loaders = append([]string(nil), tier.Loaders...)
		}

		if len(tier.Skip) > 0 {
			out.Skip = append([]string(nil), tier.Skip...)
		}

		if tier.WrapWidth > 0 {
			out.WrapWidth = tier.WrapWidth
		}

		out.Force = pickBool(out.Force, tier.Force)
		out.NoCode = pickBool(out.NoCode, tier.NoCode)
		out.NoRelated = pickBool(out.NoRelated, tier.NoRelated)
		out.NoIndex = pickBool(out.NoIndex, tier.NoIndex)
		out.NoPretty = pickBool(out.NoPretty, tier.NoPretty)
	}

	return out
}

// pickBool returns copy of override when it is set, false included.
func pickBool(current, override *bool) *bool {
	if override == nil {
		return current
	}

	value := *override
	return &value
}

// Bool returns pointer to value for optional switches of Options.
func Bool(value bool) *bool {
	return &value
}

// enabled reports whether optional switch is set to true.
func enabled(value *bool) bool {
	return value != nil && *value
}

// pickString returns override when it is not blank.
func pickString(current, override string) string {
	if strings.TrimSpace(override) == "" {
		return current
	}

	return strings.TrimSpace(override)
}
