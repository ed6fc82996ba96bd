// ABOUTME: Noise filter that strips structural clutter from parsed HTML documents
// ABOUTME: Runs once per document before any extraction strategy scores content

package extraction

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseTags are removed wholesale wherever they appear in the tree.
var noiseTags = []string{
	"script",
	"style",
	"nav",
	"header",
	"footer",
	"aside",
	"noscript",
	"iframe",
	"form",
	"button",
}

// noiseClassFragments mark removable subtrees by substring match against an
// element's class and id attributes.
var noiseClassFragments = []string{
	"nav",
	"menu",
	"sidebar",
	"advertisement",
	"ads",
	"promo",
	"banner",
	"social",
	"share",
	"comment",
	"sponsored",
	"related",
	"newsletter",
	"cookie",
	"popup",
	"breadcrumb",
}

// StripNoise removes noise subtrees from doc in place. It is idempotent;
// running it on an already filtered document changes nothing.
func StripNoise(doc *goquery.Document) {
	doc.Find(strings.Join(noiseTags, ", ")).Remove()

	doc.Find("div, section, ul, ol, span, table").Each(func(_ int, s *goquery.Selection) {
		if isNoiseElement(s) {
			s.Remove()
		}
	})
}

// isNoiseElement reports whether the element's class or id contains any of
// the known noise fragments.
func isNoiseElement(s *goquery.Selection) bool {
	class, _ := s.Attr("class")
	id, _ := s.Attr("id")
	if class == "" && id == "" {
		return false
	}

	marker := strings.ToLower(class + " " + id)
	for _, fragment := range noiseClassFragments {
		if strings.Contains(marker, fragment) {
			return true
		}
	}
	return false
}
