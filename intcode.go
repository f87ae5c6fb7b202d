package hime

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/traditionalchinese"
)

const (
	intcodeMaxBig5    = 4
	intcodeMaxUnicode = 6
)

// intcodeState accumulates hex digits for the Unicode/Big5 internal-code
// method (spec.md §4.I).
type intcodeState struct {
	mode   IntcodeMode
	buffer string // upper-cased hex digits
}

func newIntcodeState() *intcodeState { return &intcodeState{mode: IntcodeUnicode} }

func (s *intcodeState) label() string { return "碼" }

func (s *intcodeState) maxLen() int {
	if s.mode == IntcodeBig5 {
		return intcodeMaxBig5
	}
	return intcodeMaxUnicode
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func (s *intcodeState) onKey(ctx *Context, ch byte) KeyResult {
	if !isHexDigit(ch) {
		return Ignored
	}
	if len(s.buffer) >= s.maxLen() {
		return Absorbed
	}
	s.buffer += strings.ToUpper(string(ch))
	ctx.setPreedit("U+"+s.buffer, len([]rune(s.buffer))+2)

	if len(s.buffer) == s.maxLen() {
		out, ok := convertIntcode(s.mode, s.buffer)
		s.buffer = ""
		ctx.setPreedit("", 0)
		if !ok {
			ctx.feedback(FeedbackError)
			return Absorbed
		}
		ctx.appendCommit(out)
		ctx.feedback(FeedbackCandidate)
		return Commit
	}
	return Preedit
}

func (s *intcodeState) onBackspace(ctx *Context) KeyResult {
	if s.buffer == "" {
		return Ignored
	}
	s.buffer = s.buffer[:len(s.buffer)-1]
	ctx.setPreedit("U+"+s.buffer, len([]rune(s.buffer))+2)
	return Absorbed
}

func (s *intcodeState) onEscapeClear(ctx *Context) bool {
	had := s.buffer != ""
	s.buffer = ""
	ctx.setPreedit("", 0)
	return had
}

// onEnter implements spec.md §4.I "On Enter, convert the current buffer if
// non-empty and commit."
func (s *intcodeState) onEnter(ctx *Context) KeyResult {
	if s.buffer == "" {
		return Ignored
	}
	out, ok := convertIntcode(s.mode, s.buffer)
	s.buffer = ""
	ctx.setPreedit("", 0)
	if !ok {
		ctx.feedback(FeedbackError)
		return Absorbed
	}
	ctx.appendCommit(out)
	return Commit
}

func (s *intcodeState) hasPendingState() bool { return s.buffer != "" }

// ConvertIntcode exposes spec.md §6's intcode_convert: converts hex
// (without mutating any context) and reports whether the conversion
// succeeded. Empty or non-hex input, or a Unicode code point ≥ U+110000,
// fails per spec.md §7.
func ConvertIntcode(mode IntcodeMode, hex string) (string, bool) {
	return convertIntcode(mode, hex)
}

func convertIntcode(mode IntcodeMode, hex string) (string, bool) {
	if hex == "" {
		return "", false
	}
	code, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "", false
	}
	switch mode {
	case IntcodeUnicode:
		return convertUnicode(uint32(code))
	case IntcodeBig5:
		return convertBig5(uint16(code))
	default:
		return "", false
	}
}

// convertUnicode emits UTF-8 for code via the standard encoding rules
// (spec.md §4.I), rejecting code points ≥ U+110000.
func convertUnicode(code uint32) (string, bool) {
	if code >= 0x110000 {
		return "", false
	}
	if !utf8.ValidRune(rune(code)) {
		return "", false
	}
	return string(rune(code)), true
}

// convertBig5 resolves spec.md §9's Big5 Open Question: rather than the
// stub mapping the original code shipped, the standard Big5 codec from
// golang.org/x/text/encoding/traditionalchinese decodes the two-byte code
// into its Unicode equivalent, failing silently (returns ok=false) for an
// unmapped code, matching spec.md §4.I's "conversion fails silently" rule.
func convertBig5(code uint16) (string, bool) {
	raw := []byte{byte(code >> 8), byte(code & 0xFF)}
	decoded, err := traditionalchinese.Big5.NewDecoder().Bytes(raw)
	// the decoder substitutes U+FFFD for an unmapped code instead of
	// returning an error
	if err != nil || len(decoded) == 0 || strings.ContainsRune(string(decoded), utf8.RuneError) {
		return "", false
	}
	return string(decoded), true
}
