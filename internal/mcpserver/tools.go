// Package mcpserver exposes the translation engine as MCP tools.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

var directionSchema = map[string]interface{}{
	"type":        "string",
	"description": "Translation direction: eng-to-pidgin or pidgin-to-eng (default: server direction)",
	"enum":        []string{"eng-to-pidgin", "pidgin-to-eng"},
}

// NewServer creates an MCP server with every tool registered.
func NewServer(name, version string, h *Handlers) *mcpserver.MCPServer {
	server := mcpserver.NewMCPServer(name, version, mcpserver.WithToolCapabilities(false))
	RegisterTools(server, h)
	return server
}

// RegisterTools registers all tools on server.
func RegisterTools(server *mcpserver.MCPServer, h *Handlers) {
	server.AddTool(mcp.Tool{
		Name:        "translate",
		Description: "Translate text between English and Hawaiian Pidgin. Returns the translation, a 0-1 confidence, the method used and alternatives.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Text to translate",
				},
				"direction": directionSchema,
				"include_chunks": map[string]interface{}{
					"type":        "boolean",
					"description": "Include the per-chunk breakdown (default: false)",
					"default":     false,
				},
			},
			Required: []string{"text"},
		},
	}, h.Translate)

	server.AddTool(mcp.Tool{
		Name:        "translate_html",
		Description: "Translate the visible text of an HTML document, leaving markup, scripts and code untouched.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"html": map[string]interface{}{
					"type":        "string",
					"description": "HTML document or fragment",
				},
				"direction": directionSchema,
			},
			Required: []string{"html"},
		},
	}, h.TranslateHTML)

	server.AddTool(mcp.Tool{
		Name:        "pronounce",
		Description: "Pronunciation guide for the pidgin and Hawaiian terms found in the text.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Pidgin text",
				},
			},
			Required: []string{"text"},
		},
	}, h.Pronounce)

	server.AddTool(mcp.Tool{
		Name:        "suggest",
		Description: "Autocomplete known phrases and sentences starting with a prefix.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"prefix": map[string]interface{}{
					"type":        "string",
					"description": "At least two characters",
				},
				"direction": directionSchema,
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum suggestions (default: 5)",
					"default":     5,
				},
			},
			Required: []string{"prefix"},
		},
	}, h.Suggest)

	server.AddTool(mcp.Tool{
		Name:        "lookup",
		Description: "List every lexicon candidate for a word, phrase or sentence, grouped by granularity.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Word, phrase or sentence",
				},
				"direction": directionSchema,
			},
			Required: []string{"text"},
		},
	}, h.Lookup)

	server.AddTool(mcp.Tool{
		Name:        "is_sentence",
		Description: "Report whether text should be treated as a full sentence (six or more words, or ends in . ! ?).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Text to classify",
				},
			},
			Required: []string{"text"},
		},
	}, h.IsSentence)

	server.AddTool(mcp.Tool{
		Name:        "lexicon_info",
		Description: "Lexicon fingerprint, table sizes and categories of the loaded lexicon.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, h.LexiconInfo)
}
