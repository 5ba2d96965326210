// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import "errors"

var (
	// ErrInvalidGroupByFormat is returned when group-by expression does not match @directive(field|=fallback).
	ErrInvalidGroupByFormat = errors.New("invalid group-by directive format")
	// ErrMissingSchemaLocation is returned when no schema location is configured.
	ErrMissingSchemaLocation = errors.New("missing schema location")
	// ErrNoLoader is returned when no configured loader accepts the schema location.
	ErrNoLoader = errors.New("no loader for schema location")
	// ErrUnknownLoader is returned when requested loader name is not registered.
	ErrUnknownLoader = errors.New("unknown schema loader")
	// ErrLoadSchema is returned when schema sources cannot be read or parsed.
	ErrLoadSchema = errors.New("load schema")
	// ErrWatchUnsupported is returned when schema location cannot be watched.
	ErrWatchUnsupported = errors.New("schema location cannot be watched")
	// ErrLoadReference is returned when stored reference schema cannot be loaded.
	ErrLoadReference = errors.New("load reference schema")
	// ErrWriteReference is returned when reference snapshot or hash cannot be persisted.
	ErrWriteReference = errors.New("write schema reference")
	// ErrWritePage is returned when one type page cannot be written.
	ErrWritePage = errors.New("write page")
	// ErrPrunePages is returned when stale pages cannot be removed.
	ErrPrunePages = errors.New("prune stale pages")
	// ErrWriteSidebar is returned when sidebar artifact cannot be written.
	ErrWriteSidebar = errors.New("write sidebar")
	// ErrWriteMetafile is returned when category metadata file cannot be written.
	ErrWriteMetafile = errors.New("write category metafile")
	// ErrReadHomepage is returned when homepage template cannot be read.
	ErrReadHomepage = errors.New("read homepage")
	// ErrReadConfig is returned when configuration file loading fails.
	ErrReadConfig = errors.New("read config file")
	// ErrExecuteTemplate is returned when page template execution fails.
	ErrExecuteTemplate = errors.New("execute page template")
	// ErrParseTemplate is returned when page template parsing fails.
	ErrParseTemplate = errors.New("parse page template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadTemplate is returned when custom page template file cannot be read.
	ErrReadTemplate = errors.New("read page template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrUnknownCategory is returned when category name is not one of the documented kinds.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownDeprecatedMode is returned when deprecated handling mode is not supported.
	ErrUnknownDeprecatedMode = errors.New("unknown deprecated mode")
	// ErrUnknownExampleMode is returned when example generation mode is not supported.
	ErrUnknownExampleMode = errors.New("unknown example mode")
	// ErrUnknownExampleFormat is returned when example generation format is not supported.
	ErrUnknownExampleFormat = errors.New("unknown example format")
	// ErrEncodeExample is returned when generated example variables encoding fails.
	ErrEncodeExample = errors.New("encode example variables")
)
