package hime

import (
	"sync"
)

// simpToTradMap and tradToSimpMap are built once from convertData, de-duplicated first-occurrence-wins (spec.md
// §9 "Open question (simplified/traditional duplicates)").
var (
	convOnce      sync.Once
	simpToTradMap map[string]string
	tradToSimpMap map[string]string
)

func buildConvTables() {
	simpToTradMap = make(map[string]string, len(convertData))
	tradToSimpMap = make(map[string]string, len(convertData))
	for _, pair := range convertData {
		simp, trad := pair[0], pair[1]
		if _, exists := simpToTradMap[simp]; exists {
			log().Debug().Str("simp", simp).Str("trad", trad).Msg("duplicate conversion key, keeping first occurrence")
		} else {
			simpToTradMap[simp] = trad
		}
		if _, exists := tradToSimpMap[trad]; exists {
			log().Debug().Str("trad", trad).Str("simp", simp).Msg("duplicate conversion key, keeping first occurrence")
		} else {
			tradToSimpMap[trad] = simp
		}
	}
}

// walkUTF8 calls fn once per UTF-8 character in s, using the leading
// byte's high bits to determine its length (spec.md §4.X): 0xxxxxxx→1,
// 110xxxxx→2, 1110xxxx→3, 11110xxx→4.
func walkUTF8(s string, fn func(ch string)) {
	for i := 0; i < len(s); {
		length := utf8CharLen(s[i])
		end := i + length
		if end > len(s) {
			end = len(s)
		}
		fn(s[i:end])
		i = end
	}
}

func utf8CharLen(lead byte) int {
	switch {
	case lead&0x80 == 0x00:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

func convertString(s string, table map[string]string) string {
	convOnce.Do(buildConvTables)
	var out []byte
	walkUTF8(s, func(ch string) {
		if mapped, ok := table[ch]; ok {
			out = append(out, mapped...)
		} else {
			out = append(out, ch...)
		}
	})
	return string(out)
}

// SimpToTrad converts each Simplified character in s to its Traditional
// form, leaving unmapped characters (including non-CJK text) unchanged
// (spec.md §4.X). No re-flow, no context disambiguation.
func SimpToTrad(s string) string {
	convOnce.Do(buildConvTables)
	return convertString(s, simpToTradMap)
}

// TradToSimp is SimpToTrad's inverse direction.
func TradToSimp(s string) string {
	convOnce.Do(buildConvTables)
	return convertString(s, tradToSimpMap)
}

// SetCharset sets the context's output variant (spec.md §3 "charset").
func (c *Context) SetCharset(cs Charset) bool {
	if c == nil {
		return false
	}
	if cs != Traditional && cs != Simplified {
		return false
	}
	c.charset = cs
	return true
}

func (c *Context) GetCharset() Charset {
	if c == nil {
		return Traditional
	}
	return c.charset
}

// convertOutputVariant post-converts a committed string per the context's
// charset setting (spec.md §4.X "The context's output variant setting
// can optionally post-convert committed candidates."). The lexicon and
// GTAB tables are authored in Traditional, so only the Simplified variant
// needs a conversion pass.
func (c *Context) convertOutputVariant(s string) string {
	if c.charset == Simplified {
		return TradToSimp(s)
	}
	return s
}
