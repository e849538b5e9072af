package processor

import (
	"fmt"
	"strconv"
	"strings"

	gopidgin "github.com/ZaguanLabs/gopidgin"
)

// TextProcessor treats plain text as one node per non-blank line.
// Indentation and blank lines survive Apply untouched.
type TextProcessor struct{}

// NewTextProcessor creates a plain-text processor.
func NewTextProcessor() *TextProcessor {
	return &TextProcessor{}
}

// Extract splits content into lines and returns the translatable ones.
func (p *TextProcessor) Extract(content string) (interface{}, []gopidgin.TextNode, error) {
	lines := strings.Split(content, "\n")
	seen := make(map[string]bool)
	var nodes []gopidgin.TextNode

	for i, line := range lines {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		hash := gopidgin.HashText(text)
		if seen[hash] {
			continue
		}
		seen[hash] = true
		nodes = append(nodes, gopidgin.TextNode{
			ID:       fmt.Sprintf("line-%d", i+1),
			Text:     text,
			Hash:     hash,
			NodeType: "text_line",
			Metadata: map[string]string{"line": strconv.Itoa(i + 1)},
		})
	}
	return lines, nodes, nil
}

// Apply replaces every line whose trimmed text has a translation.
func (p *TextProcessor) Apply(parsed interface{}, nodes []gopidgin.TextNode, translations map[string]string) (string, error) {
	lines, ok := parsed.([]string)
	if !ok {
		return "", &gopidgin.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "text",
		}
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line
		if strings.TrimSpace(line) == "" {
			continue
		}
		if translated, ok := translations[gopidgin.HashText(line)]; ok {
			out[i] = preserveWhitespace(line, translated)
		}
	}
	return strings.Join(out, "\n"), nil
}

// ContentType returns "text".
func (p *TextProcessor) ContentType() string {
	return "text"
}

var _ ContentProcessor = (*TextProcessor)(nil)
