package hime

// layoutEntry is one row of a keyboard layout table (spec.md §3): a
// printable character mapped to the syllable slot it sets. The same
// character may appear more than once across a layout; lookupKey returns
// the last match, since spec.md says "layout tables are written so the
// deliberate fallback is at the end."
type layoutEntry struct {
	char byte
	kind slotKind
	idx  uint8
}

// layoutAliases maps the settings-surface name aliases (spec.md §4.S) to
// the enum value.
var layoutAliases = map[string]KeyboardLayout{
	"standard": LayoutStandard,
	"zo":       LayoutStandard,
	"hsu":      LayoutHSU,
	"eten":     LayoutETen,
	"et":       LayoutETen,
	"eten26":   LayoutETen26,
	"et26":     LayoutETen26,
	"ibm":      LayoutIBM,
	"pinyin":   LayoutPinyin,
	"hanyu":    LayoutPinyin,
	"dvorak":   LayoutDvorak,
}

// LayoutByName resolves one of the settings-surface aliases to a
// KeyboardLayout. ok is false for an unrecognized alias.
func LayoutByName(name string) (layout KeyboardLayout, ok bool) {
	layout, ok = layoutAliases[name]
	return
}

// standardLayout is the baseline Zhuyin keyboard: each key sets exactly one
// slot, keyed by the printable ASCII character HIME's standard layout
// assigns it.
var standardLayout = []layoutEntry{
	{'1', slotInitial, 1}, {'q', slotInitial, 2}, {'a', slotInitial, 3}, {'z', slotInitial, 4},
	{'2', slotInitial, 5}, {'w', slotInitial, 6}, {'s', slotInitial, 7}, {'x', slotInitial, 8},
	{'e', slotInitial, 9}, {'d', slotInitial, 10}, {'c', slotInitial, 11},
	{'r', slotInitial, 12}, {'f', slotInitial, 13}, {'v', slotInitial, 14},
	{'5', slotInitial, 15}, {'t', slotInitial, 16}, {'g', slotInitial, 17}, {'b', slotInitial, 18},
	{'y', slotInitial, 19}, {'h', slotInitial, 20}, {'n', slotInitial, 21},
	{'`', slotInitial, 24},

	{'u', slotMedial, 1}, {'j', slotMedial, 2}, {'m', slotMedial, 3},

	{'8', slotFinal, 1}, {'i', slotFinal, 2}, {'k', slotFinal, 3}, {',', slotFinal, 4},
	{'9', slotFinal, 5}, {'o', slotFinal, 6}, {'l', slotFinal, 7}, {'.', slotFinal, 8},
	{'0', slotFinal, 9}, {'p', slotFinal, 10}, {';', slotFinal, 11}, {'/', slotFinal, 12},
	{'-', slotFinal, 13},

	{'6', slotTone, 2}, {'3', slotTone, 3}, {'4', slotTone, 4}, {'7', slotTone, 5},
}

// hsuLayout is the Hsu mnemonic layout: a small number of letter keys are
// reused for both an initial and a final/medial shape, which is why
// "last match wins" matters for this table.
var hsuLayout = []layoutEntry{
	{'a', slotInitial, 9}, {'b', slotInitial, 8}, {'c', slotInitial, 19}, {'d', slotInitial, 7},
	{'e', slotMedial, 1}, {'f', slotFinal, 9}, {'g', slotInitial, 17}, {'h', slotFinal, 11},
	{'j', slotTone, 3}, {'k', slotTone, 2}, {'l', slotTone, 5},
	{'m', slotInitial, 21}, {'n', slotFinal, 10}, {'o', slotFinal, 6},
	{'p', slotInitial, 13}, {'r', slotFinal, 12}, {'s', slotInitial, 7},
	{'t', slotInitial, 16}, {'u', slotMedial, 2}, {'v', slotInitial, 14},
	{'w', slotMedial, 3}, {'x', slotInitial, 20}, {'y', slotInitial, 19}, {'z', slotFinal, 7},
	// fallback duplicates: Hsu overloads a few letters for a second shape
	// depending on context the base table does not track, so the literal
	// spec behavior ("last matching entry wins") is honored by listing the
	// deliberate fallback after the primary assignment.
	{'s', slotFinal, 7},
}

// etenLayout is the ETen layout: structurally similar to standard with a
// different initial arrangement.
var etenLayout = []layoutEntry{
	{'b', slotInitial, 8}, {'c', slotInitial, 19}, {'d', slotInitial, 10}, {'f', slotInitial, 13},
	{'g', slotInitial, 17}, {'h', slotInitial, 20}, {'j', slotInitial, 2}, {'k', slotInitial, 3},
	{'l', slotInitial, 7}, {'m', slotInitial, 21}, {'n', slotInitial, 6}, {'p', slotInitial, 9},
	{'q', slotInitial, 15}, {'r', slotInitial, 18}, {'s', slotInitial, 11}, {'t', slotInitial, 16},
	{'v', slotInitial, 14}, {'w', slotInitial, 5}, {'x', slotInitial, 4}, {'z', slotInitial, 1},
	{'u', slotMedial, 1}, {'i', slotMedial, 2}, {'o', slotMedial, 3},
	{'6', slotFinal, 9}, {'a', slotFinal, 1}, {'e', slotFinal, 3}, {'y', slotFinal, 2},
	{'1', slotTone, 5}, {'2', slotTone, 2}, {'3', slotTone, 3}, {'4', slotTone, 4},
}

// eten26Layout is ETen26, a 26-key variant where several letters double for
// both an initial and a medial/final/tone depending on which slot is still
// empty at the time of the keystroke; here expressed with the spec's
// "last match wins" fallback convention.
var eten26Layout = append(append([]layoutEntry{}, etenLayout...),
	layoutEntry{'s', slotTone, 3},
	layoutEntry{'d', slotTone, 2},
	layoutEntry{'f', slotTone, 4},
)

// ibmLayout is the IBM layout: another fixed assignment of symbols to
// different physical keys. It maps all 21 initials, the three medials and
// finals 1..8; finals 9..13 have no key in this table.
var ibmLayout = []layoutEntry{
	{'1', slotInitial, 1}, {'2', slotInitial, 5}, {'3', slotInitial, 9}, {'4', slotInitial, 12},
	{'5', slotInitial, 15}, {'q', slotInitial, 2}, {'w', slotInitial, 6}, {'e', slotInitial, 10},
	{'r', slotInitial, 13}, {'t', slotInitial, 16}, {'a', slotInitial, 3}, {'s', slotInitial, 7},
	{'d', slotInitial, 11}, {'f', slotInitial, 14}, {'g', slotInitial, 17},
	{'z', slotInitial, 4}, {'x', slotInitial, 8}, {'v', slotInitial, 18}, {'b', slotInitial, 19},
	{'n', slotInitial, 20}, {'m', slotInitial, 21}, {'`', slotInitial, 24},
	{'y', slotMedial, 1}, {'u', slotMedial, 2}, {'i', slotMedial, 3},
	{'o', slotFinal, 1}, {'p', slotFinal, 2}, {'h', slotFinal, 3}, {'j', slotFinal, 4},
	{'k', slotFinal, 5}, {'l', slotFinal, 6}, {';', slotFinal, 7}, {'c', slotFinal, 8},
	{',', slotTone, 2}, {'.', slotTone, 3}, {'/', slotTone, 4}, {' ', slotTone, 1},
}

// pinyinLayout maps roman letters used by Hanyu Pinyin input onto syllable
// slots ('i' and 'u' have no entry; 'y', 'w' and 'v' stand for the
// medials); like HSU/ETen26 a handful of letters carry a fallback.
var pinyinLayout = []layoutEntry{
	{'b', slotInitial, 1}, {'p', slotInitial, 2}, {'m', slotInitial, 3}, {'f', slotInitial, 4},
	{'d', slotInitial, 5}, {'t', slotInitial, 6}, {'n', slotInitial, 7}, {'l', slotInitial, 8},
	{'g', slotInitial, 9}, {'k', slotInitial, 10}, {'h', slotInitial, 11},
	{'j', slotInitial, 12}, {'q', slotInitial, 13}, {'x', slotInitial, 14},
	{'z', slotInitial, 15}, {'c', slotInitial, 16}, {'s', slotInitial, 17},
	{'r', slotInitial, 18}, {'y', slotMedial, 1}, {'w', slotMedial, 2}, {'v', slotMedial, 3},
	{'a', slotFinal, 1}, {'o', slotFinal, 2}, {'e', slotFinal, 3},
	// fallback: 'y'/'w' also double as finals in open-syllable pinyin
	{'y', slotFinal, 2}, {'w', slotFinal, 1},
}

// dvorakLayout is the standard layout remapped onto Dvorak's physical key
// positions — the symbol assignment is identical to standardLayout, only
// the printable characters that arrive from the host differ.
var dvorakLayout = []layoutEntry{
	{'1', slotInitial, 1}, {'\'', slotInitial, 2}, {'a', slotInitial, 3}, {';', slotInitial, 4},
	{'2', slotInitial, 5}, {',', slotInitial, 6}, {'o', slotInitial, 7}, {'q', slotInitial, 8},
	{'.', slotInitial, 9}, {'e', slotInitial, 10}, {'j', slotInitial, 11},
	{'p', slotInitial, 12}, {'u', slotInitial, 13}, {'k', slotInitial, 14},
	{'5', slotInitial, 15}, {'y', slotInitial, 16}, {'i', slotInitial, 17}, {'x', slotInitial, 18},
	{'f', slotInitial, 19}, {'d', slotInitial, 20}, {'b', slotInitial, 21},
	{'`', slotInitial, 24},

	{'g', slotMedial, 1}, {'h', slotMedial, 2}, {'m', slotMedial, 3},

	{'8', slotFinal, 1}, {'c', slotFinal, 2}, {'t', slotFinal, 3}, {'w', slotFinal, 4},
	{'9', slotFinal, 5}, {'r', slotFinal, 6}, {'n', slotFinal, 7}, {'v', slotFinal, 8},
	{'0', slotFinal, 9}, {'l', slotFinal, 10}, {'s', slotFinal, 11}, {'z', slotFinal, 12},
	{'[', slotFinal, 13},

	{'6', slotTone, 2}, {'3', slotTone, 3}, {'4', slotTone, 4}, {'7', slotTone, 5},
}

// layouts indexes every table by its KeyboardLayout enum value.
var layouts = map[KeyboardLayout][]layoutEntry{
	LayoutStandard: standardLayout,
	LayoutHSU:      hsuLayout,
	LayoutETen:     etenLayout,
	LayoutETen26:   eten26Layout,
	LayoutIBM:      ibmLayout,
	LayoutPinyin:   pinyinLayout,
	LayoutDvorak:   dvorakLayout,
}

// lookupKey scans layout for ch and returns the last matching entry, per
// spec.md §3's deliberate-fallback-at-the-end rule. ch is expected
// pre-lowercased by the caller.
func lookupKey(layout KeyboardLayout, ch byte) (kind slotKind, idx uint8, ok bool) {
	table, exists := layouts[layout]
	if !exists {
		return 0, 0, false
	}
	for _, e := range table {
		if e.char == ch {
			kind, idx, ok = e.kind, e.idx, true
		}
	}
	return
}
