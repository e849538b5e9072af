// Package gopidgin is a rule-based translation engine between English and
// Hawaiian Pidgin (Hawaiʻi Creole English).
//
// A lexicon of dictionary entries, curated phrases and curated sentences is
// compiled into an immutable Index. Translation tries an exact sentence match
// first, then splits the input into the longest known phrases (up to ten
// tokens) with word-by-word fallback, normalizes grammar for the target
// variety and scores the result.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/gopidgin"
//	    "github.com/ZaguanLabs/gopidgin/cache"
//	    "github.com/ZaguanLabs/gopidgin/lexicon"
//	    "github.com/ZaguanLabs/gopidgin/processor"
//	)
//
//	func main() {
//	    engine := gopidgin.NewEngine()
//	    if err := engine.LoadFrom(context.Background(), lexicon.Embedded{}); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    t := gopidgin.NewTranslator(engine, gopidgin.EnglishToPidgin,
//	        gopidgin.WithCache(cache.NewInMemoryCache(3600)),
//	        gopidgin.WithProcessor(processor.NewHTMLProcessor()),
//	    )
//
//	    result, err := t.ProcessHTML(context.Background(), "<p>Thank you</p>")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Content) // <p>Mahalo</p>
//	}
//
// Loading a new lexicon builds a fresh Index and swaps it in atomically, so
// in-flight translations always see one consistent index.
package gopidgin
