package hime

import "testing"

func TestLayoutByNameAliases(t *testing.T) {
	cases := map[string]KeyboardLayout{
		"standard": LayoutStandard,
		"zo":       LayoutStandard,
		"hsu":      LayoutHSU,
		"et":       LayoutETen,
		"et26":     LayoutETen26,
		"ibm":      LayoutIBM,
		"hanyu":    LayoutPinyin,
		"dvorak":   LayoutDvorak,
	}
	for name, want := range cases {
		got, ok := LayoutByName(name)
		if !ok || got != want {
			t.Fatalf("LayoutByName(%q) = %v, %v; want %v, true", name, got, ok, want)
		}
	}
	if _, ok := LayoutByName("nonexistent"); ok {
		t.Fatalf("expected unknown alias to fail")
	}
}

func TestLookupKeyLastMatchWins(t *testing.T) {
	// hsuLayout deliberately lists 's' twice: slotInitial first, then a
	// slotFinal fallback that must win.
	kind, idx, ok := lookupKey(LayoutHSU, 's')
	if !ok || kind != slotFinal || idx != 7 {
		t.Fatalf("expected last entry for 's' (slotFinal,7), got kind=%v idx=%v ok=%v", kind, idx, ok)
	}
}

func TestLookupKeyUnknownCharOrLayout(t *testing.T) {
	if _, _, ok := lookupKey(LayoutStandard, '@'); ok {
		t.Fatalf("expected no match for unmapped char")
	}
	if _, _, ok := lookupKey(KeyboardLayout(99), 'a'); ok {
		t.Fatalf("expected no match for unknown layout")
	}
}
