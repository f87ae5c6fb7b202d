package hime

import "testing"

// installSyntheticLexicon replaces the shared lexicon with a hand-built
// index (no disk I/O), and returns a cleanup func.
func installSyntheticLexicon(t *testing.T, entries map[uint16][]string) func() {
	t.Helper()
	CleanupLexicon()

	keys := make([]uint16, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	// simple insertion sort; len(entries) is always small in tests
	for i := 1; i < len(keys); i++ {
		j := i
		for j > 0 && keys[j-1] > keys[j] {
			keys[j-1], keys[j] = keys[j], keys[j-1]
			j--
		}
	}

	idx := make([]lexiconIndexEntry, 0, len(keys)+1)
	items := make([]lexiconItem, 0)
	for _, k := range keys {
		idx = append(idx, lexiconIndexEntry{key: k, firstItem: int32(len(items))})
		for _, ch := range entries[k] {
			items = append(items, lexiconItem{ch: ch, count: 1})
		}
	}
	idx = append(idx, lexiconIndexEntry{key: 0xFFFF, firstItem: int32(len(items))})

	lexiconMu.Lock()
	sharedLex = &Lexicon{idx: idx, items: items}
	lexiconMu.Unlock()

	return func() { CleanupLexicon() }
}

// dkSpaceKey is the packed key standard-layout "d","k"," " produces: initial
// 10 ('d'), final 3 ('k'), implicit tone 1 from space.
func dkSpaceKey() uint16 {
	return Syllable{Initial: 10, Final: 3, Tone: 1}.Pack()
}

// a8SpaceKey is the packed key for "a","8"," " (spec.md §8 scenario 2).
func a8SpaceKey() uint16 {
	return Syllable{Initial: 3, Final: 1, Tone: 1}.Pack()
}

func TestScenarioSingleCandidateAutoCommit(t *testing.T) {
	defer installSyntheticLexicon(t, map[uint16][]string{dkSpaceKey(): {"的"}})()

	ctx := NewContext()
	ctx.SetChineseMode(true)

	ctx.ProcessKey('d', 'd', 0)
	ctx.ProcessKey('k', 'k', 0)
	result := ctx.ProcessKey(' ', ' ', 0)

	if result != Commit || ctx.CommitText() != "的" {
		t.Fatalf("expected Commit \"的\", got result=%v commit=%q", result, ctx.CommitText())
	}
}

func TestScenarioMultiCandidatePreedit(t *testing.T) {
	defer installSyntheticLexicon(t, map[uint16][]string{a8SpaceKey(): {"媽", "麻", "馬"}})()

	ctx := NewContext()
	ctx.SetChineseMode(true)

	ctx.ProcessKey('a', 'a', 0)
	result := ctx.ProcessKey('8', '8', 0)
	result = ctx.ProcessKey(' ', ' ', 0)

	if result != Preedit {
		t.Fatalf("expected Preedit, got %v", result)
	}
	if ctx.CandidateCount() < 2 {
		t.Fatalf("expected >= 2 candidates, got %d", ctx.CandidateCount())
	}
	preedit := ctx.Preedit()
	wantPrefix := "ㄇㄚ"
	if len(preedit) < len([]byte(wantPrefix)) || preedit[:len([]byte(wantPrefix))] != wantPrefix {
		t.Fatalf("expected preedit to start with %q, got %q", wantPrefix, preedit)
	}
}

func TestScenarioCandidateSelection(t *testing.T) {
	defer installSyntheticLexicon(t, map[uint16][]string{a8SpaceKey(): {"媽", "麻", "馬"}})()

	ctx := NewContext()
	ctx.SetChineseMode(true)
	ctx.ProcessKey('a', 'a', 0)
	ctx.ProcessKey('8', '8', 0)
	ctx.ProcessKey(' ', ' ', 0)

	result := ctx.ProcessKey('1', '1', 0)
	if result != Commit || ctx.CommitText() != "媽" {
		t.Fatalf("expected Commit \"媽\", got result=%v commit=%q", result, ctx.CommitText())
	}
}

func TestScenarioEscapeAfterPartialInput(t *testing.T) {
	ctx := NewContext()
	ctx.SetChineseMode(true)
	ctx.ProcessKey('a', 'a', 0)

	result := ctx.ProcessKey(VKEscape, 0, 0)
	if result != Absorbed {
		t.Fatalf("expected Absorbed, got %v", result)
	}
	if ctx.Preedit() != "" || ctx.CandidateCount() != 0 {
		t.Fatalf("expected empty preedit/candidates after Escape, got preedit=%q count=%d", ctx.Preedit(), ctx.CandidateCount())
	}
}

func TestModePassthroughWhenNotChinese(t *testing.T) {
	ctx := NewContext()
	// chinese_mode defaults to false
	result := ctx.ProcessKey('a', 'a', 0)
	if result != Ignored {
		t.Fatalf("expected Ignored outside chinese mode, got %v", result)
	}
	if ctx.Preedit() != "" || ctx.CommitText() != "" {
		t.Fatalf("expected no buffers touched outside chinese mode")
	}
}

func TestBackspaceShrinksPreedit(t *testing.T) {
	ctx := NewContext()
	ctx.SetChineseMode(true)
	ctx.ProcessKey('a', 'a', 0)
	before := len(ctx.Preedit())

	ctx.ProcessKey(VKBackspace, 0, 0)
	after := len(ctx.Preedit())
	if after >= before {
		t.Fatalf("expected preedit to shrink after backspace: before=%d after=%d", before, after)
	}

	result := ctx.ProcessKey(VKBackspace, 0, 0)
	if result != Ignored {
		t.Fatalf("expected Ignored backspace on empty syllable, got %v", result)
	}
}
