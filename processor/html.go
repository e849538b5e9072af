package processor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	gopidgin "github.com/ZaguanLabs/gopidgin"
	"golang.org/x/net/html"
)

// TranslatableAttrs are element attributes whose values are shown to
// readers and therefore translated alongside text.
var TranslatableAttrs = []string{"alt", "title", "placeholder", "aria-label"}

const noTranslateAttr = "data-no-translate"

// HTMLProcessor extracts and applies translations to HTML content.
type HTMLProcessor struct {
	ignoredTags map[string]bool
	attrs       []string
}

// NewHTMLProcessor creates a new HTML processor with default ignored tags.
func NewHTMLProcessor() *HTMLProcessor {
	return &HTMLProcessor{
		ignoredTags: gopidgin.IgnoredTags,
		attrs:       TranslatableAttrs,
	}
}

// NewHTMLProcessorWithIgnoredTags creates a new HTML processor with custom ignored tags.
func NewHTMLProcessorWithIgnoredTags(tags []string) *HTMLProcessor {
	ignored := make(map[string]bool, len(tags))
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &HTMLProcessor{
		ignoredTags: ignored,
		attrs:       TranslatableAttrs,
	}
}

// attrRef points at one attribute of an element.
type attrRef struct {
	node *html.Node
	idx  int
}

// parsedHTML holds the parsed document and every mutable location.
type parsedHTML struct {
	doc   *goquery.Document
	texts []*html.Node
	attrs []attrRef
}

// Extract parses HTML and extracts translatable text and attribute nodes.
// Nodes are deduplicated by hash; every occurrence is still rewritten by Apply.
func (p *HTMLProcessor) Extract(content string) (interface{}, []gopidgin.TextNode, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, nil, &gopidgin.ProcessorError{
			Message:     "failed to parse HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	ph := &parsedHTML{doc: doc}
	var nodes []gopidgin.TextNode
	seen := make(map[string]bool)

	add := func(text, nodeType string, meta map[string]string, context string) {
		hash := gopidgin.HashText(text)
		if seen[hash] {
			return
		}
		seen[hash] = true
		nodes = append(nodes, gopidgin.TextNode{
			ID:       fmt.Sprintf("node-%d", len(nodes)),
			Text:     text,
			Hash:     hash,
			NodeType: nodeType,
			Context:  context,
			Metadata: meta,
		})
	}

	p.walk(doc, func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			trimmed := strings.TrimSpace(n.Data)
			if trimmed == "" {
				return
			}
			ph.texts = append(ph.texts, n)
			meta := map[string]string{}
			if n.Parent != nil {
				meta["parent_tag"] = n.Parent.Data
			}
			add(trimmed, "html_text", meta, p.buildContext(doc, n.Parent))
		case html.ElementNode:
			for i, a := range n.Attr {
				if !p.translatableAttr(a.Key) || strings.TrimSpace(a.Val) == "" {
					continue
				}
				ph.attrs = append(ph.attrs, attrRef{node: n, idx: i})
				add(strings.TrimSpace(a.Val), "html_attr",
					map[string]string{"tag": n.Data, "attr": a.Key},
					p.buildContext(doc, n))
			}
		}
	})

	return ph, nodes, nil
}

// Apply writes translations, keyed by node hash, back into the document.
func (p *HTMLProcessor) Apply(parsed interface{}, nodes []gopidgin.TextNode, translations map[string]string) (string, error) {
	ph, ok := parsed.(*parsedHTML)
	if !ok {
		return "", &gopidgin.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "html",
		}
	}

	for _, n := range ph.texts {
		if translated, ok := translations[gopidgin.HashText(n.Data)]; ok {
			n.Data = preserveWhitespace(n.Data, translated)
		}
	}
	for _, ref := range ph.attrs {
		a := &ref.node.Attr[ref.idx]
		if translated, ok := translations[gopidgin.HashText(a.Val)]; ok {
			a.Val = preserveWhitespace(a.Val, translated)
		}
	}

	out, err := ph.doc.Html()
	if err != nil {
		return "", &gopidgin.ProcessorError{
			Message:     "failed to serialize HTML",
			Cause:       err,
			ContentType: "html",
		}
	}
	return out, nil
}

// ContentType returns "html".
func (p *HTMLProcessor) ContentType() string {
	return "html"
}

// walk visits every node outside ignored or opted-out subtrees.
func (p *HTMLProcessor) walk(doc *goquery.Document, visit func(*html.Node)) {
	var rec func(*html.Node)
	rec = func(n *html.Node) {
		if n.Type == html.ElementNode && p.skipElement(n) {
			return
		}
		visit(n)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	for _, n := range doc.Nodes {
		rec(n)
	}
}

func (p *HTMLProcessor) skipElement(n *html.Node) bool {
	if p.ignoredTags[strings.ToLower(n.Data)] {
		return true
	}
	for _, a := range n.Attr {
		if a.Key == noTranslateAttr {
			return true
		}
	}
	return false
}

func (p *HTMLProcessor) translatableAttr(key string) bool {
	for _, a := range p.attrs {
		if a == key {
			return true
		}
	}
	return false
}

// buildContext describes where an element sits, e.g.
// `in <h1 class="title"> | inside: section > header`.
func (p *HTMLProcessor) buildContext(doc *goquery.Document, el *html.Node) string {
	if el == nil || el.Type != html.ElementNode {
		return ""
	}
	sel := doc.FindNodes(el)

	var parts []string
	switch {
	case sel.AttrOr("class", "") != "":
		parts = append(parts, fmt.Sprintf("in <%s class=%q>", el.Data, sel.AttrOr("class", "")))
	case sel.AttrOr("id", "") != "":
		parts = append(parts, fmt.Sprintf("in <%s id=%q>", el.Data, sel.AttrOr("id", "")))
	default:
		parts = append(parts, fmt.Sprintf("in <%s>", el.Data))
	}

	var ancestors []string
	sel.ParentsUntil("body").Each(func(i int, s *goquery.Selection) {
		if i < 3 {
			ancestors = append(ancestors, goquery.NodeName(s))
		}
	})
	if len(ancestors) > 0 {
		// outermost first
		for i, j := 0, len(ancestors)-1; i < j; i, j = i+1, j-1 {
			ancestors[i], ancestors[j] = ancestors[j], ancestors[i]
		}
		parts = append(parts, "inside: "+strings.Join(ancestors, " > "))
	}

	return strings.Join(parts, " | ")
}

// preserveWhitespace keeps the original leading and trailing whitespace.
func preserveWhitespace(original, translated string) string {
	leading := original[:len(original)-len(strings.TrimLeft(original, " \t\n\r"))]
	trailing := original[len(strings.TrimRight(original, " \t\n\r")):]
	return leading + translated + trailing
}

var _ ContentProcessor = (*HTMLProcessor)(nil)
