// Package wordcount estimates the number of content words in a plain
// text export of a document. The count is heuristic telemetry: boiler-
// plate that the export format injects (comment blocks, suggestion
// blocks, edit banners, bracketed annotations) and non-prose tokens
// (URLs, emails, bare numbers) are stripped before counting.
package wordcount

import (
	"regexp"
	"strings"
)

var (
	// Contiguous non-whitespace runs containing a scheme, a www. prefix,
	// or an @ are treated as URLs or email addresses.
	reLinks = regexp.MustCompile(`\S+://\S+|www\.\S+|\S+@\S+`)

	// Export-format boilerplate, removed case-insensitively. Block
	// patterns run to the next blank line, line patterns to end of line.
	reBlockPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)comments:.*?(?:\n\n|\z)`),
		regexp.MustCompile(`(?is)suggested edits:.*?(?:\n\n|\z)`),
		regexp.MustCompile(`(?i)last edited.*?(?:\n|\z)`),
		regexp.MustCompile(`(?s)\[.*?\]`),
		regexp.MustCompile(`(?s)\{.*?\}`),
	}

	// Everything outside word characters, whitespace, and light
	// punctuation becomes a space.
	reSpecial = regexp.MustCompile(`[^\w\s.,!?"-]`)

	reDigits = regexp.MustCompile(`^\d+$`)
)

// Count returns the heuristic word count of text. It never fails; any
// input degrades to 0 rather than an error, because the count feeds
// best-effort statistics and is never correctness-critical.
func Count(text string) int {
	if text == "" {
		return 0
	}

	text = reLinks.ReplaceAllString(text, "")

	// Boilerplate removal runs before punctuation stripping so that
	// bracket and brace delimiters are still present to match.
	for _, re := range reBlockPatterns {
		text = re.ReplaceAllString(text, "")
	}

	text = reSpecial.ReplaceAllString(text, " ")

	words := 0
	for _, token := range strings.Fields(text) {
		if reDigits.MatchString(token) {
			// "42" is not a word; "42nd" is.
			continue
		}
		words++
	}

	return words
}
