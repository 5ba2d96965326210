// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

const (
	// LoaderFile is the name of the filesystem loader.
	LoaderFile = "file"
	// LoaderURL is the name of the HTTP loader.
	LoaderURL = "url"

	// defaultHTTPTimeout bounds one remote schema fetch.
	defaultHTTPTimeout = 30 * time.Second
	// maxRemoteSchemaBytes bounds remote schema body size.
	maxRemoteSchemaBytes = 32 << 20
)

// schemaFileExtensions lists file extensions collected from schema directories.
var schemaFileExtensions = map[string]struct{}{
	".graphql":  {},
	".graphqls": {},
	".gql":      {},
}

// Loader reads schema sources from one kind of location.
type Loader interface {
	// Name returns loader identifier used in configuration.
	Name() string
	// CanLoad reports whether loader handles location.
	CanLoad(location string) bool
	// Load returns SDL sources for location.
	Load(ctx context.Context, location string) ([]*ast.Source, error)
}

// FileLoader loads SDL from a file, a directory of schema files, or a glob.
type FileLoader struct{}

// Name returns loader identifier.
func (FileLoader) Name() string { return LoaderFile }

// CanLoad reports whether location is not a URL.
func (FileLoader) CanLoad(location string) bool {
	return !isURLLocation(location)
}

// Load reads all matched schema files in sorted order.
func (FileLoader) Load(_ context.Context, location string) ([]*ast.Source, error) {
	paths, err := schemaFilePaths(location)
	if err != nil {
		return nil, err
	}

	sources := make([]*ast.Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read schema file %q: %w", path, err)
		}

		sources = append(sources, &ast.Source{Name: filepath.ToSlash(path), Input: string(data)})
	}

	return sources, nil
}

// schemaFilePaths expands file, directory or glob location into schema file paths.
func schemaFilePaths(location string) ([]string, error) {
	if strings.ContainsAny(location, "*?[") {
		matches, err := filepath.Glob(location)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", location, err)
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("glob %q matched no files", location)
		}

		sort.Strings(matches)
		return matches, nil
	}

	info, err := os.Stat(location)
	if err != nil {
		return nil, fmt.Errorf("stat schema location %q: %w", location, err)
	}

	if !info.IsDir() {
		return []string{location}, nil
	}

	var paths []string
	err = filepath.WalkDir(location, func(path string, entry os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			return nil
		}

		if _, ok := schemaFileExtensions[strings.ToLower(filepath.Ext(path))]; ok {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk schema directory %q: %w", location, err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("schema directory %q has no schema files", location)
	}

	sort.Strings(paths)
	return paths, nil
}

// URLLoader fetches SDL text over HTTP.
type URLLoader struct {
	// Client is used for requests; nil uses a client with default timeout.
	Client *http.Client
	// Headers are added to every request.
	Headers map[string]string
}

// Name returns loader identifier.
func (URLLoader) Name() string { return LoaderURL }

// CanLoad reports whether location is an http(s) URL.
func (URLLoader) CanLoad(location string) bool {
	return isURLLocation(location)
}

// Load performs GET request and returns response body as one source.
func (loader URLLoader) Load(ctx context.Context, location string) ([]*ast.Source, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %q: %w", location, err)
	}

	request.Header.Set("Accept", "application/graphql, text/plain, */*")
	for key, value := range loader.Headers {
		request.Header.Set(key, value)
	}

	client := loader.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("fetch schema %q: %w", location, err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("fetch schema %q: unexpected status %s", location, response.Status)
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxRemoteSchemaBytes))
	if err != nil {
		return nil, fmt.Errorf("read schema response %q: %w", location, err)
	}

	return []*ast.Source{{Name: location, Input: string(body)}}, nil
}

// DefaultLoaders returns all built-in loaders.
func DefaultLoaders() []Loader {
	return []Loader{FileLoader{}, URLLoader{}}
}

// LoaderByName resolves built-in loader by name.
func LoaderByName(name string) (Loader, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LoaderFile:
		return FileLoader{}, nil
	case LoaderURL:
		return URLLoader{}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownLoader, name)
	}
}

// LoadersByName resolves loader names; empty list returns default loaders.
func LoadersByName(names []string) ([]Loader, error) {
	if len(names) == 0 {
		return DefaultLoaders(), nil
	}

	loaders := make([]Loader, 0, len(names))
	for _, name := range names {
		loader, err := LoaderByName(name)
		if err != nil {
			return nil, err
		}

		loaders = append(loaders, loader)
	}

	return loaders, nil
}

// LoadSchema reads location with the first accepting loader and parses SDL.
func LoadSchema(ctx context.Context, location string, loaders []Loader) (*ast.Schema, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrMissingSchemaLocation
	}

	if len(loaders) == 0 {
		loaders = DefaultLoaders()
	}

	for _, loader := range loaders {
		if !loader.CanLoad(location) {
			continue
		}

		sources, err := loader.Load(ctx, location)
		if err != nil {
			return nil, fmt.Errorf("%w with %s loader: %w", ErrLoadSchema, loader.Name(), err)
		}

		return ParseSchema(sources...)
	}

	return nil, fmt.Errorf("%w %q", ErrNoLoader, location)
}

// ParseSchema parses and validates SDL sources into schema.
func ParseSchema(sources ...*ast.Source) (*ast.Schema, error) {
	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadSchema, err)
	}

	return schema, nil
}

// ParseSchemaString parses one SDL text.
func ParseSchemaString(name, input string) (*ast.Schema, error) {
	return ParseSchema(&ast.Source{Name: name, Input: input})
}

// isURLLocation reports whether location is an http(s) URL.
func isURLLocation(location string) bool {
	lower := strings.ToLower(strings.TrimSpace(location))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
