package hime

import "strings"

// phoState is the PHO method's per-context state: just the syllable being
// accumulated (spec.md §4.P).
type phoState struct {
	syllable Syllable
}

func newPhoState() *phoState { return &phoState{} }

func (s *phoState) label() string { return "注" }

// normalizePhoChar lowercases A–Z per spec.md §4.P ("For each incoming
// printable character (lowercased if A–Z)").
func normalizePhoChar(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch - 'A' + 'a'
	}
	return ch
}

// processSyllableKey implements spec.md §4.P's key-handling, auto-commit,
// multi-candidate, and invalid-syllable rules against syll and ctx's
// shared candidate buffer. It is shared by PHO and TSIN (§4.T "TSIN
// delegates syllable input to PHO"); the caller decides what a completed
// syllable's single candidate does (PHO commits it directly, TSIN appends
// it to the phrase buffer).
func processSyllableKey(ctx *Context, syll *Syllable, layout KeyboardLayout, ch byte) (result KeyResult, autoCommitChar string, didAutoCommit bool, pinyin string) {
	norm := normalizePhoChar(ch)
	isSpace := norm == ' '

	if kind, idx, ok := lookupKey(layout, norm); ok {
		syll.Set(kind, idx)
	} else if !isSpace {
		// key not part of this layout: leave the syllable untouched and
		// just re-render, matching "no matching entry" silently.
		ctx.setPreedit(syll.Render(), len([]rune(syll.Render())))
		return Preedit, "", false, ""
	}

	if !syll.Complete() && !isSpace {
		ctx.candidates.reset()
		ctx.setPreedit(syll.Render(), len([]rune(syll.Render())))
		return Preedit, "", false, ""
	}

	// space with no explicit tone key applies the implicit first tone
	// (spec.md §4.P); layouts that map space to a tone slot (e.g. IBM)
	// already set Tone via lookupKey above and this is a no-op.
	if isSpace && syll.Tone == 0 {
		syll.Tone = 1
	}

	packed := syll.Pack()
	cands, ok := LookupPhoKey(packed)
	if !ok || len(cands) == 0 {
		ctx.candidates.reset()
		ctx.setPreedit(syll.Render(), len([]rune(syll.Render())))
		if isSpace {
			ctx.feedback(FeedbackError)
		}
		return Preedit, "", false, ""
	}

	if len(cands) == 1 {
		committed := cands[0]
		py := HanyuPinyin(*syll)
		*syll = Syllable{}
		ctx.candidates.reset()
		ctx.setPreedit("", 0)
		return Commit, committed, true, py
	}

	ctx.candidates.set(cands)
	ctx.setPreedit(renderWithCandidates(syll.Render(), ctx.candidates, numericSelectionLabels), 0)
	return Preedit, "", false, ""
}

// numericSelectionLabels is the default "1234567890"-style label set used
// by PHO's numbered candidates (spec.md §4.P).
const numericSelectionLabels = "1234567890"

// renderWithCandidates builds "<base> 1.c1 2.c2 …" for the current page,
// appending the page-down hint when more pages follow (spec.md §4.P
// "Multi-candidate rule", §4.G "Preedit with candidates" — same format).
func renderWithCandidates(base string, c candidateBuffer, labels string) string {
	var b strings.Builder
	b.WriteString(base)
	for i, cand := range c.pageItems() {
		if i >= len(labels) {
			break
		}
		b.WriteByte(' ')
		b.WriteByte(labels[i])
		b.WriteByte('.')
		b.WriteString(cand)
	}
	if c.hasMorePages() {
		b.WriteString(" ▶")
	}
	return b.String()
}

// syllableBackspace implements spec.md §4.P "Backspace": clears the
// highest-index non-zero slot, or returns Ignored if already empty.
// Candidates are always dropped (§4.P: "Re-renders preedit and drops any
// candidates").
func syllableBackspace(ctx *Context, syll *Syllable) KeyResult {
	kind, ok := syll.HighestNonZeroSlot()
	if !ok {
		return Ignored
	}
	syll.Clear(kind)
	ctx.candidates.reset()
	ctx.setPreedit(syll.Render(), len([]rune(syll.Render())))
	return Absorbed
}

func (s *phoState) onKey(ctx *Context, ch byte) KeyResult {
	result, committed, didCommit, pinyin := processSyllableKey(ctx, &s.syllable, ctx.layout, ch)
	if didCommit {
		ctx.appendCommit(committed)
		ctx.feedbackAnnotated(FeedbackCandidate, pinyin)
	}
	return result
}

func (s *phoState) onBackspace(ctx *Context) KeyResult {
	return syllableBackspace(ctx, &s.syllable)
}

func (s *phoState) onEscapeClear(ctx *Context) bool {
	had := !s.syllable.Empty() || ctx.candidates.count() > 0
	s.syllable = Syllable{}
	ctx.candidates.reset()
	ctx.setPreedit("", 0)
	return had
}

func (s *phoState) onEnter(ctx *Context) KeyResult {
	return Ignored
}

func (s *phoState) hasPendingState() bool {
	return !s.syllable.Empty()
}
