package hime

import "testing"

func TestHanyuPinyinBasic(t *testing.T) {
	// INITIAL=9 (g), MEDIAL=0, FINAL=1 (a), TONE=1 (unmarked)
	s := Syllable{Initial: 9, Medial: 0, Final: 1, Tone: 1}
	if got := HanyuPinyin(s); got != "ga" {
		t.Fatalf("HanyuPinyin = %q, want ga", got)
	}
}

func TestHanyuPinyinToneSuffix(t *testing.T) {
	s := Syllable{Initial: 9, Medial: 0, Final: 1, Tone: 3}
	if got := HanyuPinyin(s); got != "ga3" {
		t.Fatalf("HanyuPinyin = %q, want ga3", got)
	}
}

func TestHanyuPinyinEmpty(t *testing.T) {
	if got := HanyuPinyin(Syllable{}); got != "" {
		t.Fatalf("expected empty syllable to produce no pinyin, got %q", got)
	}
}
