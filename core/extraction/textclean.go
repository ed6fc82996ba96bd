// ABOUTME: Text cleaner that normalizes whitespace and strips boilerplate phrases
// ABOUTME: Applied to strategy output and to the basic-text fallback path

package extraction

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// punctuationRunRe collapses 3+ consecutive punctuation characters to an
	// ellipsis. The replacement is itself a match, which keeps CleanText
	// idempotent.
	punctuationRunRe = regexp.MustCompile(`[.!?,;:]{3,}`)
)

// boilerplatePatterns match common page furniture that survives DOM-level
// noise filtering. Whitespace normalization runs first, so multi-line
// boilerplate collapses onto one line before these are applied.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\badvertisement\b`),
	regexp.MustCompile(`(?i)\bsponsored content\b`),
	regexp.MustCompile(`(?i)\bsubscribe(?: now| today| to our newsletter)?\b`),
	regexp.MustCompile(`(?i)\bsign up for our newsletter\b`),
	regexp.MustCompile(`(?i)\bfollow us(?: on \w+)?\b`),
	regexp.MustCompile(`(?i)\bshare this (?:article|story|post)\b`),
	regexp.MustCompile(`(?i)\bread more\b`),
	regexp.MustCompile(`(?i)\bcontinue reading\b`),
	regexp.MustCompile(`(?i)\bclick here\b`),
	regexp.MustCompile(`(?i)\bthis site uses cookies\b`),
	regexp.MustCompile(`(?i)\baccept all cookies\b`),
	regexp.MustCompile(`\[\d+\]`),
}

// CleanText normalizes whitespace, strips known boilerplate phrases, and
// collapses punctuation runs. CleanText is idempotent.
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}

	text := whitespaceRe.ReplaceAllString(raw, " ")

	// Removing a fragment can join its neighbors into a new boilerplate
	// phrase ("read[3] more" -> "read more"), so repeat the pattern pass
	// until the text stops changing. Each removal shortens the text, so the
	// loop terminates.
	for {
		previous := text
		for _, pattern := range boilerplatePatterns {
			text = pattern.ReplaceAllString(text, " ")
		}
		text = whitespaceRe.ReplaceAllString(text, " ")
		if text == previous {
			break
		}
	}

	text = punctuationRunRe.ReplaceAllString(text, "...")

	return strings.TrimSpace(text)
}
