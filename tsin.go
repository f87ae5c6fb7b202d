package hime

import "unicode/utf8"

// tsinState layers phrase accumulation over PHO syllable input (spec.md
// §4.T): each completed syllable's sole candidate is appended to phrase
// instead of being committed immediately.
type tsinState struct {
	syllable Syllable
	phrase   string
}

func newTsinState() *tsinState { return &tsinState{} }

func (s *tsinState) label() string { return "詞" }

func (s *tsinState) onKey(ctx *Context, ch byte) KeyResult {
	result, commitChar, didCommit, pinyin := processSyllableKey(ctx, &s.syllable, ctx.layout, ch)
	if didCommit {
		s.phrase += commitChar
		ctx.setPreedit(s.phrase, len([]rune(s.phrase)))
		ctx.feedbackAnnotated(FeedbackCandidate, pinyin)
		return Preedit
	}
	// processSyllableKey already rendered the in-progress syllable (plus
	// any numbered candidates) into ctx's preedit; prepend the phrase
	// accumulated so far so the whole pending phrase stays visible.
	rest := ctx.preedit
	ctx.setPreedit(s.phrase+rest, len([]rune(s.phrase))+ctx.preeditCursor)
	return result
}

// onBackspace clears a pending syllable slot first, matching PHO, and
// only trims the accumulated phrase once the syllable is already empty —
// spec.md §4.T only documents the phrase-trim case, so a partially-typed
// syllable is not silently discarded by one backspace.
func (s *tsinState) onBackspace(ctx *Context) KeyResult {
	if !s.syllable.Empty() {
		result := syllableBackspace(ctx, &s.syllable)
		ctx.setPreedit(s.phrase+ctx.preedit, len([]rune(s.phrase))+ctx.preeditCursor)
		return result
	}
	if s.phrase == "" {
		return Ignored
	}
	_, size := utf8.DecodeLastRuneInString(s.phrase)
	s.phrase = s.phrase[:len(s.phrase)-size]
	ctx.setPreedit(s.phrase, len([]rune(s.phrase)))
	return Absorbed
}

func (s *tsinState) onEscapeClear(ctx *Context) bool {
	had := s.phrase != "" || !s.syllable.Empty() || ctx.candidates.count() > 0
	s.phrase = ""
	s.syllable = Syllable{}
	ctx.candidates.reset()
	ctx.setPreedit("", 0)
	return had
}

// onEnter commits the entire accumulated phrase (spec.md §4.T "Enter
// commits the entire accumulated phrase").
func (s *tsinState) onEnter(ctx *Context) KeyResult {
	if s.phrase == "" {
		return Ignored
	}
	ctx.appendCommit(s.phrase)
	s.phrase = ""
	ctx.setPreedit("", 0)
	return Commit
}

func (s *tsinState) hasPendingState() bool {
	return s.phrase != "" || !s.syllable.Empty()
}

// Phrase returns the phrase accumulated so far (spec.md §6
// "tsin_get_phrase").
func (s *tsinState) Phrase() string { return s.phrase }
