// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify converts a name into lower kebab case.
// A lowercase letter or digit followed by an uppercase letter starts a new
// word; runs of uppercase letters stay together.
func Slugify(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(value) + 4)

	var previous rune
	lastDash := true
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			if !lastDash && (unicode.IsLower(previous) || unicode.IsDigit(previous)) {
				out.WriteByte('-')
			}

			out.WriteRune(unicode.ToLower(r))
			lastDash = false
		case unicode.IsLetter(r), unicode.IsDigit(r):
			out.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				out.WriteByte('-')
				lastDash = true
			}
		}

		previous = r
	}

	return strings.TrimRight(out.String(), "-")
}

// TitleCase converts slug or identifier segment into a display label.
func TitleCase(value string) string {
	words := strings.FieldsFunc(value, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	if len(words) == 0 {
		return ""
	}

	// Caser keeps state and must not be shared between goroutines.
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// StripNumericPrefix removes a leading two-digit ordering prefix like "01-".
func StripNumericPrefix(value string) string {
	if len(value) > 3 && isASCIIDigit(value[0]) && isASCIIDigit(value[1]) && value[2] == '-' {
		return value[3:]
	}

	return value
}

// CategoryLabel returns display label for a directory segment.
func CategoryLabel(segment string) string {
	return TitleCase(StripNumericPrefix(segment))
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
