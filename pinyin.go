package hime

import "strconv"

// pinyinInitials maps INITIAL 1..21 to its Hanyu Pinyin consonant; 22..24
// (the bracket/backquote shapes) have no romanization.
var pinyinInitials = []string{
	"",
	"b", "p", "m", "f", "d", "t", "n", "l", "g", "k", "h",
	"j", "q", "x", "zh", "ch", "sh", "r", "z", "c", "s",
	"", "", "",
}

var pinyinMedials = []string{"", "i", "u", "v"}

var pinyinFinals = []string{
	"",
	"a", "o", "e", "e", "ai", "ei", "ao", "ou", "an", "en", "ang", "eng", "er",
}

// HanyuPinyin derives a romanization from a packed syllable's four slots —
// a deterministic mapping, not a lookup table loaded from disk (SPEC_FULL.md
// §4.D: "pinyin_annotation" is a supplemented behavior, so it needs no
// extra data file). Returns "" for an empty or unrecognized syllable.
func HanyuPinyin(s Syllable) string {
	if s.Empty() || int(s.Initial) >= len(pinyinInitials) {
		return ""
	}
	out := pinyinInitials[s.Initial]
	if int(s.Medial) < len(pinyinMedials) {
		out += pinyinMedials[s.Medial]
	}
	if int(s.Final) < len(pinyinFinals) {
		out += pinyinFinals[s.Final]
	}
	if out == "" {
		return ""
	}
	if s.Tone > 1 && int(s.Tone) < 6 {
		out += strconv.Itoa(int(s.Tone))
	}
	return out
}
