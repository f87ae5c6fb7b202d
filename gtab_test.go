package hime

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func putFixedCString(b []byte, s string) {
	copy(b, s)
}

// buildGtabV2Bytes assembles a minimal "HGT2" image with 3 keymap symbols
// and 2 items, matching the layout in readGtabV2.
func buildGtabV2Bytes(t *testing.T) []byte {
	t.Helper()
	const (
		keyCount = 3
		maxPress = 2
		keybits  = 5
	)
	keymap := []byte{'a', 'b', 'c'}
	keynames := []string{"A", "B", "C"}

	wordWidth := gtabWordWidth(keybits, maxPress)

	const fixedHdr = 4 + 2 + 2 + v1CNameSize + v1SelkeySize + 1 + 1 + 1 + 1 + 4 + 4 + 4 + 4
	keymapOff := fixedHdr
	keynameOff := keymapOff + keyCount
	itemsOff := keynameOff + keyCount*chSize

	type rawItem struct {
		keys []int
		ch   string
	}
	rawItems := []rawItem{
		{keys: []int{0, 1}, ch: "甲"},
		{keys: []int{0, 2}, ch: "乙"},
	}

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(gtabV2Magic))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(0))
	cname := make([]byte, v1CNameSize)
	putFixedCString(cname, "TestTable")
	buf.Write(cname)
	selkey := make([]byte, v1SelkeySize)
	putFixedCString(selkey, "12345")
	buf.Write(selkey)
	buf.WriteByte(0) // space_style
	buf.WriteByte(byte(keyCount))
	buf.WriteByte(byte(maxPress))
	buf.WriteByte(byte(keybits))
	binary.Write(&buf, binary.LittleEndian, uint32(len(rawItems)))
	binary.Write(&buf, binary.LittleEndian, uint32(keymapOff))
	binary.Write(&buf, binary.LittleEndian, uint32(keynameOff))
	binary.Write(&buf, binary.LittleEndian, uint32(itemsOff))

	buf.Write(keymap)
	for _, name := range keynames {
		field := make([]byte, chSize)
		putFixedCString(field, name)
		buf.Write(field)
	}
	for _, it := range rawItems {
		key := packGtabKey(it.keys, keybits, wordWidth)
		binary.Write(&buf, binary.LittleEndian, uint32(key))
		field := make([]byte, chSize)
		putFixedCString(field, it.ch)
		buf.Write(field)
	}
	return buf.Bytes()
}

func TestReadGtabV2(t *testing.T) {
	tbl, err := readGtabV2(bytes.NewReader(buildGtabV2Bytes(t)))
	if err != nil {
		t.Fatalf("readGtabV2: %v", err)
	}
	if tbl.Name != "TestTable" || tbl.Selkey != "12345" {
		t.Fatalf("unexpected header fields: name=%q selkey=%q", tbl.Name, tbl.Selkey)
	}
	if tbl.KeyCount != 3 || tbl.MaxPress != 2 || tbl.Keybits != 5 {
		t.Fatalf("unexpected dims: %+v", tbl)
	}
	if !tbl.IsValidKey('a') || tbl.IsValidKey('z') {
		t.Fatalf("IsValidKey wrong for keymap %v", tbl.Keymap)
	}
	wantKeymap := []byte{'a', 'b', 'c'}
	if diff := cmp.Diff(wantKeymap, tbl.Keymap); diff != "" {
		t.Fatalf("keymap mismatch (-want +got):\n%s", diff)
	}
	wantKeyname := []string{"A", "B", "C"}
	if diff := cmp.Diff(wantKeyname, tbl.Keyname); diff != "" {
		t.Fatalf("keyname mismatch (-want +got):\n%s", diff)
	}

	cands := tbl.Lookup([]int{0})
	if len(cands) != 2 {
		t.Fatalf("prefix lookup on first symbol should match both items, got %v", cands)
	}
	exact := tbl.ExactMatches([]int{0, 1})
	if len(exact) != 1 || exact[0] != "甲" {
		t.Fatalf("exact match mismatch: %v", exact)
	}
}

// buildGtabV1Bytes assembles a minimal legacy fixed-header image with 3
// keymap symbols and 2 items stored out of key order, matching the layout
// in readGtabV1 (including the radix index it skips over).
func buildGtabV1Bytes(t *testing.T) []byte {
	t.Helper()
	const (
		keyCount = 3
		maxPress = 2
	)
	keybits := bitsNeeded(keyCount) // 2
	wordWidth := gtabWordWidth(keybits, maxPress)
	keyBytes := wordWidth / 8

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int32(1))  // version
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // flag
	cname := make([]byte, v1CNameSize)
	putFixedCString(cname, "LegacyTable")
	buf.Write(cname)
	selkey := make([]byte, v1SelkeySize)
	putFixedCString(selkey, "12345")
	buf.Write(selkey)
	binary.Write(&buf, binary.LittleEndian, int32(0))        // space_style
	binary.Write(&buf, binary.LittleEndian, int32(keyCount)) // key_count
	binary.Write(&buf, binary.LittleEndian, int32(maxPress)) // max_press
	binary.Write(&buf, binary.LittleEndian, int32(0))        // dup_sel
	binary.Write(&buf, binary.LittleEndian, int32(2))        // def_chars
	for buf.Len() < v1HeaderSize {
		buf.WriteByte(0)
	}

	keymap := make([]byte, 128)
	copy(keymap, []byte{'a', 'b', 'c'})
	buf.Write(keymap)

	radixSize := 1 << keybits
	buf.Write(make([]byte, radixSize*4))

	type rawItem struct {
		keys []int
		ch   string
	}
	// stored out of sorted order, to exercise readGtabV1's forced sort
	rawItems := []rawItem{
		{keys: []int{0, 2}, ch: "乙"},
		{keys: []int{0, 1}, ch: "甲"},
	}
	for _, it := range rawItems {
		key := packGtabKey(it.keys, keybits, wordWidth)
		if keyBytes == 4 {
			binary.Write(&buf, binary.LittleEndian, uint32(key))
		} else {
			binary.Write(&buf, binary.LittleEndian, key)
		}
		field := make([]byte, chSize)
		putFixedCString(field, it.ch)
		buf.Write(field)
	}
	return buf.Bytes()
}

func TestReadGtabV1(t *testing.T) {
	tbl, err := readGtabV1(bytes.NewReader(buildGtabV1Bytes(t)))
	if err != nil {
		t.Fatalf("readGtabV1: %v", err)
	}
	if tbl.Name != "LegacyTable" || tbl.Selkey != "12345" {
		t.Fatalf("unexpected header fields: name=%q selkey=%q", tbl.Name, tbl.Selkey)
	}
	if tbl.KeyCount != 3 || tbl.MaxPress != 2 || tbl.Keybits != bitsNeeded(3) {
		t.Fatalf("unexpected dims: %+v", tbl)
	}
	if !tbl.IsValidKey('a') || tbl.IsValidKey('z') {
		t.Fatalf("IsValidKey wrong for keymap %v", tbl.Keymap)
	}
	// items were written out of order ("乙" before "甲"); the loader must
	// sort by packed_key before Lookup/ExactMatches can binary search.
	if len(tbl.items) != 2 || tbl.items[0].ch != "甲" || tbl.items[1].ch != "乙" {
		t.Fatalf("expected items sorted by packed key, got %+v", tbl.items)
	}

	cands := tbl.Lookup([]int{0})
	if len(cands) != 2 {
		t.Fatalf("prefix lookup on first symbol should match both items, got %v", cands)
	}
	exact := tbl.ExactMatches([]int{0, 1})
	if len(exact) != 1 || exact[0] != "甲" {
		t.Fatalf("exact match mismatch: %v", exact)
	}
}

func TestGtabWordWidth(t *testing.T) {
	if gtabWordWidth(5, 2) != 32 {
		t.Fatalf("5*2=10 should fit in 32-bit word")
	}
	if gtabWordWidth(8, 5) != 64 {
		t.Fatalf("8*5=40 should need 64-bit word")
	}
}

func TestPrefixMaskMatchesPackedPrefix(t *testing.T) {
	const keybits, wordWidth = 5, 32
	key := packGtabKey([]int{3, 7}, keybits, wordWidth)
	mask := prefixMask(1, keybits, wordWidth)
	// the first symbol alone should survive a 1-symbol prefix mask
	prefixKey := packGtabKey([]int{3}, keybits, wordWidth)
	if key&mask != prefixKey&mask {
		t.Fatalf("prefix mask mismatch: key=%x mask=%x prefixKey=%x", key, mask, prefixKey)
	}
}

func TestBitsNeeded(t *testing.T) {
	cases := map[int]int{2: 1, 3: 2, 4: 2, 5: 3, 32: 5, 33: 6}
	for n, want := range cases {
		if got := bitsNeeded(n); got != want {
			t.Fatalf("bitsNeeded(%d) = %d, want %d", n, got, want)
		}
	}
}
