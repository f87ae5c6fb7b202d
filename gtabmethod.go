package hime

import "strings"

// gtabMaxKeys is the largest gtab_keys buffer spec.md §3 allows ("gtab_keys:
// [symbol_index; ≤8]").
const gtabMaxKeys = 8

// gtabState is the GTAB method's per-context state: the active table (a
// non-owning reference, spec.md §3 "Ownership") and the keys pressed so
// far for the code in progress.
type gtabState struct {
	table *GtabTable
	keys  []int
}

func newGtabState(table *GtabTable) *gtabState {
	return &gtabState{table: table, keys: make([]int, 0, gtabMaxKeys)}
}

func (s *gtabState) label() string {
	if s.table == nil || s.table.Name == "" {
		return "碼"
	}
	return string([]rune(s.table.Name)[:1])
}

func (s *gtabState) renderPreedit(ctx *Context) {
	var b strings.Builder
	for _, k := range s.keys {
		if s.table.Keyname != nil && k < len(s.table.Keyname) {
			b.WriteString(s.table.Keyname[k])
		}
	}
	labels := numericSelectionLabels
	if s.table.Selkey != "" {
		labels = s.table.Selkey
	}
	ctx.setPreedit(renderWithCandidates(b.String(), ctx.candidates, labels), 0)
}

// relookup re-runs the prefix search for the keys pressed so far and
// applies the "typing reaches max_press and exactly one exact match"
// auto-commit rule (spec.md §4.G).
func (s *gtabState) relookup(ctx *Context) (result KeyResult, commitChar string, didCommit bool) {
	cands := s.table.Lookup(s.keys)
	if len(cands) == 0 {
		ctx.candidates.reset()
		s.renderPreedit(ctx)
		return Preedit, "", false
	}
	if len(s.keys) == s.table.MaxPress {
		exact := s.table.ExactMatches(s.keys)
		if len(exact) == 1 {
			s.keys = s.keys[:0]
			ctx.candidates.reset()
			ctx.setPreedit("", 0)
			return Commit, exact[0], true
		}
	}
	ctx.candidates.set(cands)
	s.renderPreedit(ctx)
	return Preedit, "", false
}

func (s *gtabState) onKey(ctx *Context, ch byte) KeyResult {
	if s.table == nil {
		return Ignored
	}
	// selection-key commit is handled by the dispatcher's universal step 2
	// before a method ever sees the key, so onKey only needs to handle
	// accumulation, space-commit, and plain symbol input.
	if ch == ' ' {
		if cand, ok := ctx.candidates.at(0); ok {
			s.keys = s.keys[:0]
			ctx.candidates.reset()
			ctx.setPreedit("", 0)
			ctx.appendCommit(cand)
			ctx.feedback(FeedbackCandidate)
			return Commit
		}
		return Absorbed
	}

	idx := s.table.symbolIndex(ch)
	if idx < 0 {
		return Ignored
	}
	if len(s.keys) >= s.table.MaxPress {
		return Absorbed
	}
	s.keys = append(s.keys, idx)

	result, committed, didCommit := s.relookup(ctx)
	if didCommit {
		ctx.appendCommit(committed)
		ctx.feedback(FeedbackCandidate)
	}
	return result
}

func (s *gtabState) onBackspace(ctx *Context) KeyResult {
	if len(s.keys) == 0 {
		return Ignored
	}
	s.keys = s.keys[:len(s.keys)-1]
	if len(s.keys) == 0 {
		ctx.candidates.reset()
		ctx.setPreedit("", 0)
		return Absorbed
	}
	_, _, _ = s.relookup(ctx)
	return Absorbed
}

func (s *gtabState) onEscapeClear(ctx *Context) bool {
	had := len(s.keys) > 0 || ctx.candidates.count() > 0
	s.keys = s.keys[:0]
	ctx.candidates.reset()
	ctx.setPreedit("", 0)
	return had
}

func (s *gtabState) onEnter(ctx *Context) KeyResult {
	return Ignored
}

func (s *gtabState) hasPendingState() bool {
	return len(s.keys) > 0
}
