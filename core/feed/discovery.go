// ABOUTME: Feed link discovery for HTML pages that advertise a syndication alternate
// ABOUTME: Scans head link elements and resolves relative hrefs against the page URL

package feed

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// feedLinkTypes are the type attribute fragments that mark a syndication link.
var feedLinkTypes = []string{"rss", "atom", "xml"}

// DiscoverFeedLink scans an HTML document's head for a <link> advertising a
// syndication feed: rel containing "alternate" or "feed" and type containing
// "rss", "atom", or "xml". The first match's href wins, resolved against
// baseURL when relative (the page's own URL, not any feed URL).
//
// Absence of a matching link is a normal outcome, not an error; the caller
// proceeds to treat the page as non-feed content.
func DiscoverFeedLink(html, baseURL string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}

	var href string
	doc.Find("head link").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		rel := strings.ToLower(s.AttrOr("rel", ""))
		if !strings.Contains(rel, "alternate") && !strings.Contains(rel, "feed") {
			return true
		}

		linkType := strings.ToLower(s.AttrOr("type", ""))
		if !containsAny(linkType, feedLinkTypes) {
			return true
		}

		if value := strings.TrimSpace(s.AttrOr("href", "")); value != "" {
			href = value
			return false
		}
		return true
	})

	if href == "" {
		return "", false
	}

	resolved, ok := resolveAgainstBase(href, baseURL)
	if !ok {
		return "", false
	}
	return resolved, true
}

// resolveAgainstBase makes href absolute using standard base-URI resolution.
func resolveAgainstBase(href, baseURL string) (string, bool) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	if ref.IsAbs() {
		return href, true
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", false
	}
	return base.ResolveReference(ref).String(), true
}

func containsAny(value string, fragments []string) bool {
	for _, fragment := range fragments {
		if strings.Contains(value, fragment) {
			return true
		}
	}
	return false
}
