// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqlmd

package graphqlmd

import (
	"strings"
	"unicode/utf8"
)

// mdxEscaper escapes characters MDX would parse as JSX outside code.
var mdxEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;", "{", "\\{", "}", "\\}")

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// normalizeWrapWidth validates wrap width and falls back to default.
func normalizeWrapWidth(value int) int {
	if value <= 0 {
		return defaultWrapWidth
	}

	return value
}

// formatDescriptionMarkdown wraps plain paragraphs, escapes MDX specials and
// keeps fenced code, lists, headings, quotes and tables as written.
func formatDescriptionMarkdown(text string, wrapWidth int) string {
	text = strings.TrimSpace(normalizeLineEndings(text))
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	paragraph := make([]string, 0, 4)
	inFence := false

	flush := func() {
		if len(paragraph) == 0 {
			return
		}

		joined := escapeMDXText(strings.Join(paragraph, " "))
		out = append(out, wrapParagraph(joined, wrapWidth)...)
		paragraph = paragraph[:0]
	}

	for _, raw := range lines {
		line := strings.TrimRight(raw, " \t")
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "```"):
			flush()
			inFence = !inFence
			out = append(out, line)
		case inFence:
			out = append(out, line)
		case trimmed == "":
			flush()
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
		case isMarkdownStructuredLine(line):
			flush()
			out = append(out, escapeStructuredLine(line))
		default:
			paragraph = append(paragraph, trimmed)
		}
	}

	flush()
	return strings.Join(out, "\n")
}

// isMarkdownStructuredLine reports whether line must bypass paragraph wrapping.
func isMarkdownStructuredLine(line string) bool {
	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return true
	}

	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"#", ">", "- ", "* ", "+ ", "|", "---", "***", "___"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	digits := 0
	for digits < len(trimmed) && trimmed[digits] >= '0' && trimmed[digits] <= '9' {
		digits++
	}

	return digits > 0 && digits+1 < len(trimmed) &&
		(trimmed[digits] == '.' || trimmed[digits] == ')') && trimmed[digits+1] == ' '
}

// escapeStructuredLine escapes MDX specials in a structured line, keeping
// indented code untouched and blockquote markers intact.
func escapeStructuredLine(line string) string {
	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return line
	}

	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]
	if rest, ok := strings.CutPrefix(trimmed, ">"); ok {
		return indent + ">" + escapeMDXText(rest)
	}

	return indent + escapeMDXText(trimmed)
}

// wrapParagraph wraps one plain paragraph to max rune width.
func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	out := make([]string, 0, 2)
	current := words[0]
	currentLen := utf8.RuneCountInString(current)

	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}

		out = append(out, current)
		current = word
		currentLen = wordLen
	}

	return append(out, current)
}

// escapeMDXText escapes JSX-significant characters outside inline code spans.
func escapeMDXText(text string) string {
	if !strings.ContainsAny(text, "<>{}") {
		return text
	}

	parts := strings.Split(text, "`")
	for index := 0; index < len(parts); index += 2 {
		parts[index] = mdxEscaper.Replace(parts[index])
	}

	return strings.Join(parts, "`")
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// normalizeMarkdownOutput collapses extra blank lines outside fenced blocks.
func normalizeMarkdownOutput(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	previousBlank := false
	for _, raw := range lines {
		line := strings.TrimRight(raw, " \t")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
		}

		if !inFence && trimmed == "" {
			if !previousBlank {
				out = append(out, "")
			}

			previousBlank = true
			continue
		}

		previousBlank = false
		out = append(out, line)
	}

	return strings.Trim(strings.Join(out, "\n"), "\n")
}

// escapeInline escapes backticks in inline code markdown segments.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	return strings.TrimRight(value, "\n") + "\n"
}
