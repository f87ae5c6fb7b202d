package hime

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"
)

const (
	chSize       = 8   // CH_SZ: bytes reserved for a keyname/item glyph
	gtabV2Magic  = 0x48475432 // "HGT2"
	v1HeaderSize = 600 // fixed v1 header size, padding included
	v1CNameSize  = 32
	v1SelkeySize = 12
)

// gtabItem is one {packed_key, ch} row of a loaded table (spec.md §4.L).
type gtabItem struct {
	key uint64
	ch  string
}

// GtabTable is a loaded generic-table method, shared read-only by every
// Context once loaded (spec.md §3 "GTAB table (in-memory form)").
type GtabTable struct {
	Name      string
	KeyCount  int
	MaxPress  int
	Keybits   int
	Keymap    []byte   // printable char per input symbol
	Keyname   []string // display label per input symbol
	Selkey    string
	items     []gtabItem
	wordWidth int // 32 or 64
}

// gtabWordWidth chooses the packed-key width per spec.md §9: "keybits *
// max_press ≤ 32 selects the 32-bit path, otherwise 64-bit."
func gtabWordWidth(keybits, maxPress int) int {
	if keybits*maxPress <= 32 {
		return 32
	}
	return 64
}

// symbolIndex returns the index of ch within the table's keymap, or -1.
func (t *GtabTable) symbolIndex(ch byte) int {
	for i, k := range t.Keymap {
		if k == ch {
			return i
		}
	}
	return -1
}

// IsValidKey reports whether ch is one of this table's input symbols
// (spec.md §4.G "Valid-key query").
func (t *GtabTable) IsValidKey(ch byte) bool {
	return t.symbolIndex(ch) >= 0
}

// packGtabKey encodes a sequence of symbol indices into a packed key, left
// justified within the word so prefix search reduces to a high-bit range
// scan (spec.md §3 "Packed GTAB key encoding").
func packGtabKey(keys []int, keybits, wordWidth int) uint64 {
	perWord := wordWidth / keybits
	lastBit := (perWord - 1) * keybits
	var key uint64
	for i, s := range keys {
		if i >= perWord {
			break
		}
		key |= uint64(s) << (lastBit - i*keybits)
	}
	return key
}

// prefixMask returns the mask selecting the high k*keybits bits of a
// wordWidth-wide packed key (spec.md §4.G "Lookup (prefix or exact)").
func prefixMask(k, keybits, wordWidth int) uint64 {
	perWord := wordWidth / keybits
	lastBit := (perWord - 1) * keybits
	shift := lastBit + keybits - k*keybits
	if k == 0 {
		return 0
	}
	return ((uint64(1) << (k * keybits)) - 1) << shift
}

// LoadTable loads a GTAB file (v1 or v2, auto-detected by its first 4
// bytes per spec.md §4.L) found via the same three-path search order as
// the lexicon, and registers it under its filename for GtabByID lookup.
func LoadTable(dataDir, filename string) (*GtabTable, error) {
	path, err := findDataFile(dataDir, filename)
	if err != nil {
		return nil, fmt.Errorf("LoadTable(%s): %w", filename, ErrTableNotFound)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadTable(%s): %w", filename, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	magic, err := peekMagic(br)
	if err != nil {
		return nil, fmt.Errorf("LoadTable(%s): %w", filename, ErrMalformedTable)
	}

	var tbl *GtabTable
	if magic == gtabV2Magic {
		tbl, err = readGtabV2(br)
	} else {
		tbl, err = readGtabV1(br)
	}
	if err != nil {
		log().Error().Err(err).Str("file", filename).Msg("gtab load failed")
		return nil, fmt.Errorf("LoadTable(%s): %w", filename, err)
	}

	lexiconMu.Lock()
	sharedTables[filename] = tbl
	lexiconMu.Unlock()
	return tbl, nil
}

// GtabByID returns the table for a built-in registry id: the one already
// loaded for that id or under its registry filename, or else loads it.
func GtabByID(dataDir string, id int) (*GtabTable, error) {
	lexiconMu.Lock()
	if tbl, ok := builtinByID[id]; ok {
		lexiconMu.Unlock()
		return tbl, nil
	}
	lexiconMu.Unlock()

	info, ok := BuiltinTableByID(id)
	if !ok {
		return nil, fmt.Errorf("GtabByID(%d): %w", id, ErrUnknownTableID)
	}
	lexiconMu.Lock()
	tbl, loaded := sharedTables[info.Filename]
	if loaded {
		builtinByID[id] = tbl
	}
	lexiconMu.Unlock()
	if loaded {
		return tbl, nil
	}
	tbl, err := LoadTable(dataDir, info.Filename)
	if err != nil {
		return nil, err
	}
	lexiconMu.Lock()
	builtinByID[id] = tbl
	lexiconMu.Unlock()
	return tbl, nil
}

func peekMagic(br *bufio.Reader) (uint32, error) {
	b, err := br.Peek(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func readCString(b []byte) string {
	end := 0
	for end < len(b) && b[end] != 0 {
		end++
	}
	return string(b[:end])
}

// readGtabV2 parses the compact little-endian v2 format (magic "HGT2")
// described in spec.md §4.L.
func readGtabV2(r io.Reader) (*GtabTable, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	const fixedHdr = 4 + 2 + 2 + v1CNameSize + v1SelkeySize + 1 + 1 + 1 + 1 + 4 + 4 + 4 + 4
	if len(buf) < fixedHdr {
		return nil, fmt.Errorf("%w: header too short", ErrMalformedTable)
	}
	p := 0
	magic := binary.LittleEndian.Uint32(buf[p:])
	p += 4
	if magic != gtabV2Magic {
		return nil, fmt.Errorf("%w: bad magic", ErrMalformedTable)
	}
	_ = binary.LittleEndian.Uint16(buf[p:]) // version
	p += 2
	_ = binary.LittleEndian.Uint16(buf[p:]) // flags
	p += 2
	cname := readCString(buf[p : p+v1CNameSize])
	p += v1CNameSize
	selkey := readCString(buf[p : p+v1SelkeySize])
	p += v1SelkeySize
	_ = buf[p] // space_style
	p++
	keyCount := int(buf[p])
	p++
	maxPress := int(buf[p])
	p++
	keybits := int(buf[p])
	p++
	itemCount := int(binary.LittleEndian.Uint32(buf[p:]))
	p += 4
	keymapOff := int(binary.LittleEndian.Uint32(buf[p:]))
	p += 4
	keynameOff := int(binary.LittleEndian.Uint32(buf[p:]))
	p += 4
	itemsOff := int(binary.LittleEndian.Uint32(buf[p:]))
	p += 4

	if keymapOff+keyCount > len(buf) || keynameOff+keyCount*chSize > len(buf) {
		return nil, fmt.Errorf("%w: offsets out of range", ErrMalformedTable)
	}
	keymap := append([]byte(nil), buf[keymapOff:keymapOff+keyCount]...)
	keyname := make([]string, keyCount)
	for i := 0; i < keyCount; i++ {
		start := keynameOff + i*chSize
		keyname[i] = readCString(buf[start : start+chSize])
	}

	wordWidth := gtabWordWidth(keybits, maxPress)
	keyBytes := wordWidth / 8
	itemStride := keyBytes + chSize
	items := make([]gtabItem, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		start := itemsOff + i*itemStride
		if start+itemStride > len(buf) {
			return nil, fmt.Errorf("%w: item[%d] out of range", ErrMalformedTable, i)
		}
		var key uint64
		if keyBytes == 4 {
			key = uint64(binary.LittleEndian.Uint32(buf[start:]))
		} else {
			key = binary.LittleEndian.Uint64(buf[start:])
		}
		ch := readCString(buf[start+keyBytes : start+itemStride])
		items = append(items, gtabItem{key: key, ch: ch})
	}

	return &GtabTable{
		Name: cname, KeyCount: keyCount, MaxPress: maxPress, Keybits: keybits,
		Keymap: keymap, Keyname: keyname, Selkey: selkey,
		items: items, wordWidth: wordWidth,
	}, nil
}

// readGtabV1 parses the legacy fixed-header format described in spec.md
// §4.L. v1 items may be stored unsorted on disk; per the spec's open
// question this loader always sorts on load, so every *GtabTable in memory
// (v1 or v2) is sorted by packed_key and Lookup/ExactMatches can always
// binary search (DESIGN.md "Legacy v1 GTAB sort order").
func readGtabV1(r io.Reader) (*GtabTable, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if len(buf) < v1HeaderSize {
		return nil, fmt.Errorf("%w: header too short", ErrMalformedTable)
	}
	p := 0
	_ = int32(binary.LittleEndian.Uint32(buf[p:])) // version
	p += 4
	_ = binary.LittleEndian.Uint32(buf[p:]) // flag
	p += 4
	cname := readCString(buf[p : p+v1CNameSize])
	p += v1CNameSize
	selkey := readCString(buf[p : p+v1SelkeySize])
	p += v1SelkeySize
	_ = int32(binary.LittleEndian.Uint32(buf[p:])) // space_style
	p += 4
	keyCount := int(int32(binary.LittleEndian.Uint32(buf[p:])))
	p += 4
	maxPress := int(int32(binary.LittleEndian.Uint32(buf[p:])))
	p += 4
	_ = int32(binary.LittleEndian.Uint32(buf[p:])) // dup_sel
	p += 4
	defChars := int(int32(binary.LittleEndian.Uint32(buf[p:])))
	p += 4

	// remaining header bytes up to v1HeaderSize are reserved padding
	p = v1HeaderSize

	if p+128 > len(buf) {
		return nil, fmt.Errorf("%w: keymap out of range", ErrMalformedTable)
	}
	keymapFull := buf[p : p+128]
	p += 128

	keybits := bitsNeeded(keyCount)
	radixSize := 1 << keybits
	if p+radixSize*4 > len(buf) {
		return nil, fmt.Errorf("%w: radix index out of range", ErrMalformedTable)
	}
	// the radix index itself is not needed once items are decoded and
	// (re-)sorted, so it is skipped rather than kept around unused.
	p += radixSize * 4

	wordWidth := gtabWordWidth(keybits, maxPress)
	keyBytes := wordWidth / 8
	itemStride := keyBytes + chSize
	items := make([]gtabItem, 0, defChars)
	for i := 0; i < defChars; i++ {
		start := p + i*itemStride
		if start+itemStride > len(buf) {
			return nil, fmt.Errorf("%w: item[%d] out of range", ErrMalformedTable, i)
		}
		var raw uint64
		if keyBytes == 4 {
			raw = uint64(binary.LittleEndian.Uint32(buf[start:]))
		} else {
			raw = binary.LittleEndian.Uint64(buf[start:])
		}
		ch := readCString(buf[start+keyBytes : start+itemStride])
		items = append(items, gtabItem{key: raw, ch: ch})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].key < items[j].key })

	// keymap is conventionally only keyCount bytes meaningful; trim trailing
	// NULs from the fixed 128-byte array.
	keymap := append([]byte(nil), keymapFull[:keyCount]...)

	return &GtabTable{
		Name: cname, KeyCount: keyCount, MaxPress: maxPress, Keybits: keybits,
		Keymap: keymap, Keyname: nil, Selkey: selkey,
		items: items, wordWidth: wordWidth,
	}, nil
}

// bitsNeeded returns the minimum number of bits to represent values
// 0..n-1 (1-indexed symbol codes in practice), used to derive v1's radix
// index width from key_count.
func bitsNeeded(n int) int {
	bits := 1
	for (1 << bits) < n {
		bits++
	}
	return bits
}

// Lookup performs the prefix/exact search described in spec.md §4.G over
// keys (a sequence of symbol indices already pressed). It returns every
// item whose key matches the high len(keys)*Keybits bits.
func (t *GtabTable) Lookup(keys []int) []string {
	k := len(keys)
	if k == 0 {
		return nil
	}
	q := packGtabKey(keys, t.Keybits, t.wordWidth)
	mask := prefixMask(k, t.Keybits, t.wordWidth)
	qMasked := q & mask

	const maxCandidates = 200
	var out []string
	lo := sort.Search(len(t.items), func(i int) bool { return t.items[i].key&mask >= qMasked })
	for i := lo; i < len(t.items) && len(out) < maxCandidates; i++ {
		if t.items[i].key&mask != qMasked {
			break
		}
		out = append(out, t.items[i].ch)
	}
	return out
}

// ExactMatches returns the items whose full packed key (at MaxPress
// length) equals keys exactly — used by the auto-commit rule in spec.md
// §4.G ("typing reaches max_press and exactly one item matches the exact
// key").
func (t *GtabTable) ExactMatches(keys []int) []string {
	q := packGtabKey(keys, t.Keybits, t.wordWidth)
	var out []string
	lo := sort.Search(len(t.items), func(i int) bool { return t.items[i].key >= q })
	for i := lo; i < len(t.items) && t.items[i].key == q; i++ {
		out = append(out, t.items[i].ch)
	}
	return out
}
