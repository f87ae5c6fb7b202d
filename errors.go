package hime

import "errors"

// Sentinel errors returned by the lexicon and GTAB loaders. Hosts can test
// against these with errors.Is; all wrapping uses fmt.Errorf's %w.
var (
	ErrLexiconNotFound  = errors.New("hime: pho.tab2 not found on any search path")
	ErrLexiconCorrupt   = errors.New("hime: pho.tab2 is truncated or malformed")
	ErrTableNotFound    = errors.New("hime: gtab file not found on any search path")
	ErrMalformedTable   = errors.New("hime: gtab file has an unrecognized header")
	ErrUnknownTableID   = errors.New("hime: no built-in gtab table with that id")
	ErrTableTooWide     = errors.New("hime: gtab keybits*maxPress exceeds 64 bits")
	ErrInvalidEnumValue = errors.New("hime: value is out of the enumeration's range")
)
