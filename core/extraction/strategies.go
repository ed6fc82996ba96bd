// ABOUTME: The three ranked HTML extraction strategies behind one interface
// ABOUTME: Readability article walk, density scoring heuristic, and CSS selector list

package extraction

import (
	"net/url"
	"strings"

	"extractor-app-api/core/domain"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// StrategyResult is the outcome of a single extraction strategy. The
// orchestrator turns it into a domain.ExtractionResult.
type StrategyResult struct {
	Content  string
	Method   string
	Metadata map[string]interface{}
}

// Strategy locates the primary article body within a noise-filtered document.
// Strategies are held in a priority-ordered list; the first success wins.
type Strategy interface {
	Name() string
	Extract(doc *goquery.Document) (StrategyResult, bool)
}

// DefaultStrategies returns the strategy chain in priority order.
func DefaultStrategies(cfg ScoringConfig) []Strategy {
	return []Strategy{
		&readabilityStrategy{},
		&heuristicStrategy{cfg: cfg},
		&selectorStrategy{},
	}
}

// ScoringConfig holds the density-scoring weights and normalization caps used
// by the heuristic strategy. The defaults are carried over unchanged from the
// original tuning; change them only against a labeled corpus.
type ScoringConfig struct {
	DensityWeight    float64
	SizeWeight       float64
	ComplexityWeight float64
	SizeNormChars    float64
	SizeScoreCap     float64
	TagNormCount     float64
	MinContentChars  int
}

// DefaultScoringConfig returns the standard weights (0.6/0.3/0.1) and caps.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		DensityWeight:    0.6,
		SizeWeight:       0.3,
		ComplexityWeight: 0.1,
		SizeNormChars:    1000,
		SizeScoreCap:     2.0,
		TagNormCount:     50,
		MinContentChars:  200,
	}
}

// minBlockChars filters out captions and labels inside an <article>.
const minBlockChars = 20

// readabilityStrategy extracts the body of an <article> element. It first
// lets go-readability take a shot at the document; when that yields nothing
// substantial it falls back to walking the article's block descendants.
type readabilityStrategy struct{}

func (s *readabilityStrategy) Name() string { return domain.MethodReadability }

func (s *readabilityStrategy) Extract(doc *goquery.Document) (StrategyResult, bool) {
	article := doc.Find("article").First()
	if article.Length() == 0 {
		return StrategyResult{}, false
	}

	if content, ok := s.extractWithLibrary(doc); ok {
		return StrategyResult{
			Content:  content,
			Method:   domain.MethodReadability,
			Metadata: map[string]interface{}{"parser": "go-readability"},
		}, true
	}

	blocks := s.collectBlocks(article)
	if len(blocks) == 0 {
		return StrategyResult{}, false
	}

	return StrategyResult{
		Content:  strings.Join(blocks, "\n\n"),
		Method:   domain.MethodReadability,
		Metadata: map[string]interface{}{"parser": "article_blocks", "block_count": len(blocks)},
	}, true
}

// extractWithLibrary runs go-readability over the document HTML.
func (s *readabilityStrategy) extractWithLibrary(doc *goquery.Document) (string, bool) {
	raw, err := doc.Html()
	if err != nil {
		return "", false
	}

	// go-readability only needs the URL to absolutize links, which the text
	// output discards; a placeholder keeps the strategy signature URL-free.
	article, err := readability.FromReader(strings.NewReader(raw), &url.URL{Scheme: "https", Host: "localhost"})
	if err != nil {
		return "", false
	}

	text := CleanText(article.TextContent)
	if len(text) < minBlockChars {
		return "", false
	}
	return text, true
}

// collectBlocks gathers paragraph, heading, and leaf-div text from the
// article element, discarding short caption-like blocks.
func (s *readabilityStrategy) collectBlocks(article *goquery.Selection) []string {
	var blocks []string
	article.Find("p, h1, h2, h3, h4, h5, h6, div").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "div" && sel.Find("p, div").Length() > 0 {
			// Container div; its text is covered by the children.
			return
		}
		text := CleanText(sel.Text())
		if len(text) >= minBlockChars {
			blocks = append(blocks, text)
		}
	})
	return blocks
}

// heuristicStrategy picks the block element with the highest content score:
//
//	score = densityWeight*textDensity + sizeWeight*sizeScore - complexityWeight*complexityPenalty
//
// where textDensity penalizes link-heavy blocks, sizeScore rewards substantial
// text (capped), and complexityPenalty down-ranks deeply nested markup.
type heuristicStrategy struct {
	cfg ScoringConfig
}

func (s *heuristicStrategy) Name() string { return domain.MethodHeuristics }

func (s *heuristicStrategy) Extract(doc *goquery.Document) (StrategyResult, bool) {
	var (
		bestContent string
		bestScore   float64
		found       bool
	)

	doc.Find("div, p, article, section").Each(func(_ int, sel *goquery.Selection) {
		text := CleanText(sel.Text())
		if len(text) < s.cfg.MinContentChars {
			return
		}

		score := s.score(sel, text)

		// Strict comparison keeps the first candidate on a tied score.
		if !found || score > bestScore {
			found = true
			bestScore = score
			bestContent = text
		}
	})

	if !found {
		return StrategyResult{}, false
	}

	return StrategyResult{
		Content: bestContent,
		Method:  domain.MethodHeuristics,
		Metadata: map[string]interface{}{
			"score":       bestScore,
			"text_length": len(bestContent),
		},
	}, true
}

func (s *heuristicStrategy) score(sel *goquery.Selection, text string) float64 {
	textLen := float64(len(text))

	linkLen := float64(len(CleanText(sel.Find("a").Text())))
	if linkLen > textLen {
		linkLen = textLen
	}
	density := (textLen - linkLen) / textLen

	sizeScore := textLen / s.cfg.SizeNormChars
	if sizeScore > s.cfg.SizeScoreCap {
		sizeScore = s.cfg.SizeScoreCap
	}

	penalty := float64(descendantTagCount(sel)) / s.cfg.TagNormCount
	if penalty > 1.0 {
		penalty = 1.0
	}

	return s.cfg.DensityWeight*density + s.cfg.SizeWeight*sizeScore - s.cfg.ComplexityWeight*penalty
}

// descendantTagCount counts element nodes below the selection.
func descendantTagCount(sel *goquery.Selection) int {
	count := 0
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				count++
			}
			walk(c)
		}
	}
	for _, node := range sel.Nodes {
		walk(node)
	}
	return count
}

// selectorMinChars is the minimum cleaned-text length for a selector match
// to count as article content.
const selectorMinChars = 100

// contentSelector pairs a CSS selector with the slug used in the reported
// extraction method.
type contentSelector struct {
	Selector string
	Slug     string
}

// contentSelectors is the ordered table of common article containers.
var contentSelectors = []contentSelector{
	{"article", "article"},
	{"main", "main"},
	{"[role=main]", "role_main"},
	{".content", "content"},
	{".post-content", "post_content"},
	{".entry-content", "entry_content"},
	{".article-body", "article_body"},
	{".article-content", "article_content"},
	{".story-body", "story_body"},
	{"#content", "content_id"},
	{"#main-content", "main_content_id"},
}

// selectorStrategy tries the fixed selector table in order and returns the
// first match with enough cleaned text.
type selectorStrategy struct{}

func (s *selectorStrategy) Name() string { return "selector" }

func (s *selectorStrategy) Extract(doc *goquery.Document) (StrategyResult, bool) {
	for _, cs := range contentSelectors {
		match := doc.Find(cs.Selector).First()
		if match.Length() == 0 {
			continue
		}

		text := CleanText(match.Text())
		if len(text) <= selectorMinChars {
			continue
		}

		return StrategyResult{
			Content: text,
			Method:  domain.MethodSelectorPrefix + cs.Slug,
			Metadata: map[string]interface{}{
				"selector":    cs.Selector,
				"text_length": len(text),
			},
		}, true
	}

	return StrategyResult{}, false
}
