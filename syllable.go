package hime

// Syllable is the four-slot phonetic decomposition described in spec.md
// §3: INITIAL (1..21, or 24 for the backquote shape), MEDIAL (1..3), FINAL
// (1..13), TONE (1..5, 1=flat, 5=neutral). A zero slot means empty.
type Syllable struct {
	Initial uint8
	Medial  uint8
	Final   uint8
	Tone    uint8
}

// slotKind identifies which field of a Syllable a keyboard-layout entry
// overwrites.
type slotKind int

const (
	slotInitial slotKind = iota
	slotMedial
	slotFinal
	slotTone
)

// Empty reports whether every slot is unset.
func (s Syllable) Empty() bool {
	return s.Initial == 0 && s.Medial == 0 && s.Final == 0 && s.Tone == 0
}

// Complete reports whether the syllable is ready to be looked up: either a
// tone was explicitly chosen, or (per spec.md §4.P) the implicit first tone
// applies because space was pressed — callers signal that case separately.
func (s Syllable) Complete() bool {
	return s.Tone != 0
}

// These are the bit widths, in INITIAL→MEDIAL→FINAL→TONE order, used
// to left-shift-and-OR the four slots into one 16-bit packed key (spec.md
// §3). The same technique as the teacher's symbol.setCodeLen: pack several
// small fields into one integer via shift+OR.
const (
	initialBits = 5
	medialBits  = 2
	finalBits   = 4
	toneBits    = 3
)

// backquoteInitial is the special INITIAL value (24) that packs differently:
// spec.md §3 says "if INITIAL==24 the key is (24<<9) | MEDIAL".
const backquoteInitial = 24

// Pack encodes the syllable into a 16-bit packed key. Packing is lossless;
// Unpack is its exact inverse (spec.md §8, "Phonetic round-trip").
func (s Syllable) Pack() uint16 {
	if s.Initial == backquoteInitial {
		return uint16(backquoteInitial)<<9 | uint16(s.Medial)
	}
	key := uint16(s.Initial)
	key = key<<medialBits | uint16(s.Medial)
	key = key<<finalBits | uint16(s.Final)
	key = key<<toneBits | uint16(s.Tone)
	return key
}

// UnpackSyllable is the inverse of Syllable.Pack.
func UnpackSyllable(key uint16) Syllable {
	if key>>9 == backquoteInitial {
		return Syllable{Initial: backquoteInitial, Medial: uint8(key & ((1 << medialBits) - 1))}
	}
	tone := uint8(key & ((1 << toneBits) - 1))
	key >>= toneBits
	final := uint8(key & ((1 << finalBits) - 1))
	key >>= finalBits
	medial := uint8(key & ((1 << medialBits) - 1))
	key >>= medialBits
	initial := uint8(key)
	return Syllable{Initial: initial, Medial: medial, Final: final, Tone: tone}
}

// bopomofoInitials maps INITIAL 1..21 to their glyph; 22..24 map to the
// three punctuation-like shapes spec.md §4.P calls out by name.
var bopomofoInitials = []string{
	"", // 0: empty
	"ㄅ", "ㄆ", "ㄇ", "ㄈ", "ㄉ", "ㄊ", "ㄋ", "ㄌ", "ㄍ", "ㄎ", "ㄏ",
	"ㄐ", "ㄑ", "ㄒ", "ㄓ", "ㄔ", "ㄕ", "ㄖ", "ㄗ", "ㄘ", "ㄙ", // 1..21
	"[", "]", "`", // 22..24
}

var bopomofoMedials = []string{"", "ㄧ", "ㄨ", "ㄩ"} // 0..3

var bopomofoFinals = []string{
	"", // 0
	"ㄚ", "ㄛ", "ㄜ", "ㄝ", "ㄞ", "ㄟ", "ㄠ", "ㄡ", "ㄢ", "ㄣ", "ㄤ", "ㄥ", "ㄦ", // 1..13
}

var bopomofoTones = []string{"", "", "ˊ", "ˇ", "ˋ", "˙"} // 0 unused, 1 empty by design

// Render concatenates the Bopomofo glyphs for the syllable's slots in
// INITIAL→MEDIAL→FINAL→TONE order (spec.md §4.P "Preedit rendering"). Tone
// 1 renders empty on purpose: the bare syllable indicates first tone.
func (s Syllable) Render() string {
	var out string
	if int(s.Initial) < len(bopomofoInitials) {
		out += bopomofoInitials[s.Initial]
	}
	if int(s.Medial) < len(bopomofoMedials) {
		out += bopomofoMedials[s.Medial]
	}
	if int(s.Final) < len(bopomofoFinals) {
		out += bopomofoFinals[s.Final]
	}
	if int(s.Tone) < len(bopomofoTones) {
		out += bopomofoTones[s.Tone]
	}
	return out
}

// HighestNonZeroSlot returns which slot kind should be cleared by a
// backspace: the highest-index non-zero slot (spec.md §4.P "Backspace"),
// and false if every slot is already empty.
func (s *Syllable) HighestNonZeroSlot() (slotKind, bool) {
	switch {
	case s.Tone != 0:
		return slotTone, true
	case s.Final != 0:
		return slotFinal, true
	case s.Medial != 0:
		return slotMedial, true
	case s.Initial != 0:
		return slotInitial, true
	default:
		return 0, false
	}
}

// Clear zeroes the given slot.
func (s *Syllable) Clear(k slotKind) {
	switch k {
	case slotInitial:
		s.Initial = 0
	case slotMedial:
		s.Medial = 0
	case slotFinal:
		s.Final = 0
	case slotTone:
		s.Tone = 0
	}
}

// Set overwrites the given slot with idx, per spec.md §4.P: "If a matching
// entry is found, overwrite syllable[slot_kind] with slot_index."
func (s *Syllable) Set(k slotKind, idx uint8) {
	switch k {
	case slotInitial:
		s.Initial = idx
	case slotMedial:
		s.Medial = idx
	case slotFinal:
		s.Final = idx
	case slotTone:
		s.Tone = idx
	}
}
