// Package hime is the platform-independent core of a Chinese input-method
// engine: phonetic (Zhuyin/Bopomofo), generic-table (GTAB, e.g. Cangjie or
// Boshiamy), internal-code (Unicode/Big5), and TSIN phrase input methods,
// driven by a stream of key events through a single dispatcher.
//
// # Overview
//
// A host creates a Context, feeds it key events with ProcessKey, and reads
// back three observables after each call: a preedit string with cursor, an
// optional commit string, and a paged candidate list. The lexicon and any
// loaded GTAB tables are process-wide and read-only after LoadLexicon;
// everything else lives on the Context.
//
// # Basic usage
//
//	if err := hime.LoadLexicon("./data"); err != nil {
//	    log.Fatal(err)
//	}
//	ctx := hime.NewContext()
//	ctx.SetChineseMode(true)
//	ctx.SetInputMethod(hime.MethodPHO)
//	res := ctx.ProcessKey(0, 'a', 0)
//	fmt.Println(res, ctx.Preedit())
//
// # Scope
//
// This package does not talk to any OS text-services framework, draw any
// UI, or persist user preferences beyond the Context's own buffers; those
// are a host's responsibility.
package hime
