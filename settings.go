package hime

import (
	"sort"
	"strings"
)

// Plain getters/setters over enumerated options (spec.md §4.S).

func (c *Context) SetCandidateStyle(style CandidateStyle) bool {
	if c == nil {
		return false
	}
	c.candidateStyle = style
	return true
}

func (c *Context) GetCandidateStyle() CandidateStyle {
	if c == nil {
		return StyleHorizontal
	}
	return c.candidateStyle
}

func (c *Context) SetColorScheme(scheme ColorScheme) bool {
	if c == nil {
		return false
	}
	c.colorScheme = scheme
	return true
}

func (c *Context) GetColorScheme() ColorScheme {
	if c == nil {
		return ColorLight
	}
	return c.colorScheme
}

func (c *Context) SetSystemDarkMode(dark bool) {
	if c == nil {
		return
	}
	c.systemDarkMode = dark
}

func (c *Context) SystemDarkMode() bool {
	if c == nil {
		return false
	}
	return c.systemDarkMode
}

func (c *Context) SetSmartPunctuation(enabled bool) {
	if c == nil {
		return
	}
	c.smartPunctuation = enabled
	if !enabled {
		c.ResetPunctuationState()
	}
}

func (c *Context) SmartPunctuation() bool {
	if c == nil {
		return false
	}
	return c.smartPunctuation
}

func (c *Context) SetPinyinAnnotation(enabled bool) {
	if c == nil {
		return
	}
	c.pinyinAnnotation = enabled
}

func (c *Context) PinyinAnnotation() bool {
	if c == nil {
		return false
	}
	return c.pinyinAnnotation
}

func (c *Context) SetSoundEnabled(enabled bool) {
	if c == nil {
		return
	}
	c.soundEnabled = enabled
}

func (c *Context) SoundEnabled() bool {
	if c == nil {
		return false
	}
	return c.soundEnabled
}

func (c *Context) SetVibrationEnabled(enabled bool) {
	if c == nil {
		return
	}
	c.vibrationEnabled = enabled
}

func (c *Context) VibrationEnabled() bool {
	if c == nil {
		return false
	}
	return c.vibrationEnabled
}

// SetVibrationDuration clamps ms to [1, 500] (spec.md §8 "Clamping").
func (c *Context) SetVibrationDuration(ms int) {
	if c == nil {
		return
	}
	switch {
	case ms < 1:
		ms = 1
	case ms > 500:
		ms = 500
	}
	c.vibrationDurationMs = ms
}

func (c *Context) VibrationDuration() int {
	if c == nil {
		return 50
	}
	return c.vibrationDurationMs
}

// SearchResult is one scored hit from Search (spec.md §4.S).
type SearchResult struct {
	Name  string
	Score int
	// Method is set for a built-in input method hit, GtabTableID for a
	// registered GTAB table hit; exactly one is meaningful per result.
	Method      Method
	IsMethod    bool
	GtabTableID int
}

// searchCandidate is an internal (name, method-or-table-id) pair scored
// uniformly by Search.
type searchCandidate struct {
	name        string
	isMethod    bool
	method      Method
	gtabTableID int
}

func builtinMethodNames() []searchCandidate {
	return []searchCandidate{
		{name: "Zhuyin", isMethod: true, method: MethodPHO},
		{name: "Phonetic", isMethod: true, method: MethodPHO},
		{name: "TSIN Phrase", isMethod: true, method: MethodTSIN},
		{name: "Generic Table", isMethod: true, method: MethodGTAB},
		{name: "Internal Code", isMethod: true, method: MethodIntcode},
	}
}

// Search scores name against the union of built-in methods and
// registered GTAB tables (spec.md §4.S): 0 if query is not a substring
// (ASCII case-insensitive, UTF-8 matched byte-exactly); else
// 100-offset_of_match, +50 bonus for a zero-offset (prefix) match.
// Empty query matches everything with score 100. Results are sorted
// descending by score; ties keep the candidate's natural order.
func Search(query string) []SearchResult {
	candidates := builtinMethodNames()
	for _, info := range ListBuiltinTables() {
		candidates = append(candidates, searchCandidate{name: info.Name, isMethod: false, gtabTableID: info.ID})
	}

	var results []SearchResult
	for _, cand := range candidates {
		score, ok := scoreMatch(cand.name, query)
		if !ok {
			continue
		}
		results = append(results, SearchResult{
			Name:        cand.name,
			Score:       score,
			Method:      cand.method,
			IsMethod:    cand.isMethod,
			GtabTableID: cand.gtabTableID,
		})
	}

	sortResultsByScoreDesc(results)
	return results
}

func scoreMatch(name, query string) (int, bool) {
	if query == "" {
		return 100, true
	}
	offset := asciiInsensitiveIndex(name, query)
	if offset < 0 {
		return 0, false
	}
	score := 100 - offset
	if offset == 0 {
		score += 50
	}
	return score, true
}

// asciiInsensitiveIndex finds query in name, folding ASCII letter case
// only; non-ASCII bytes (UTF-8 continuation bytes included) are matched
// byte-exactly, per spec.md §4.S.
func asciiInsensitiveIndex(name, query string) int {
	return strings.Index(foldASCII(name), foldASCII(query))
}

func foldASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

func sortResultsByScoreDesc(results []SearchResult) {
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
}
