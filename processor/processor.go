// Package processor extracts translatable text from structured content
// and writes translations back without disturbing markup.
package processor

import gopidgin "github.com/ZaguanLabs/gopidgin"

// ContentProcessor is an alias to the main package interface.
type ContentProcessor = gopidgin.ContentProcessor

// TextNode is an alias to the main package type.
type TextNode = gopidgin.TextNode
