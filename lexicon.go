package hime

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// lexiconIndexEntry is one {packed_key, first_item} row of the pho.tab2
// index (spec.md §4.L), plus the trailing sentinel appended on load so
// range queries never need a bounds check.
type lexiconIndexEntry struct {
	key       uint16
	firstItem int32
}

// lexiconItem is a decoded candidate: either a direct UTF-8 character or a
// phrase pulled from phrase_area at load time (spec.md §3's 0x1B escape is
// resolved once here, never at lookup time).
type lexiconItem struct {
	ch    string
	count int32
}

// Lexicon is the in-memory phonetic lexicon, process-wide and read-only
// after LoadLexicon (spec.md §3 "Lifecycles").
type Lexicon struct {
	idx   []lexiconIndexEntry
	items []lexiconItem
}

var (
	lexiconMu    sync.Mutex
	sharedLex    *Lexicon
	sharedTables = map[string]*GtabTable{}
	builtinByID  = map[int]*GtabTable{}
)

// LoadLexicon loads pho.tab2 from dataDir, replacing any previously loaded
// lexicon. It is idempotent for the same dataDir per spec.md §3 Lifecycles
// and §8 "Lifecycle idempotence": calling it twice with the same directory
// leaves observable state unchanged.
func LoadLexicon(dataDir string) error {
	lexiconMu.Lock()
	defer lexiconMu.Unlock()

	path, err := findDataFile(dataDir, "pho.tab2")
	if err != nil {
		log().Warn().Err(err).Str("dataDir", dataDir).Msg("pho.tab2 not found")
		return fmt.Errorf("LoadLexicon: %w", ErrLexiconNotFound)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("LoadLexicon: %w", err)
	}
	defer f.Close()

	lex, err := readLexicon(f)
	if err != nil {
		log().Error().Err(err).Msg("pho.tab2 malformed")
		return fmt.Errorf("LoadLexicon: %w", err)
	}
	sharedLex = lex
	return nil
}

// CleanupLexicon releases the shared lexicon and GTAB tables. Idempotent.
func CleanupLexicon() {
	lexiconMu.Lock()
	defer lexiconMu.Unlock()
	sharedLex = nil
	sharedTables = map[string]*GtabTable{}
	builtinByID = map[int]*GtabTable{}
}

func readLexicon(r io.Reader) (*Lexicon, error) {
	var idxnumA, idxnumB uint16
	if err := binary.Read(r, binary.LittleEndian, &idxnumA); err != nil {
		return nil, fmt.Errorf("%w: reading idxnum (1st): %v", ErrLexiconCorrupt, err)
	}
	// pho.tab2 writes idxnum twice; the second copy is read and discarded
	// to preserve on-disk compatibility (spec.md §9 "Quirk preservation").
	if err := binary.Read(r, binary.LittleEndian, &idxnumB); err != nil {
		return nil, fmt.Errorf("%w: reading idxnum (2nd): %v", ErrLexiconCorrupt, err)
	}
	idxnum := idxnumA

	var totalItems int32
	if err := binary.Read(r, binary.LittleEndian, &totalItems); err != nil {
		return nil, fmt.Errorf("%w: reading total_items: %v", ErrLexiconCorrupt, err)
	}
	var phraseAreaSize int32
	if err := binary.Read(r, binary.LittleEndian, &phraseAreaSize); err != nil {
		return nil, fmt.Errorf("%w: reading phrase_area_size: %v", ErrLexiconCorrupt, err)
	}

	idx := make([]lexiconIndexEntry, 0, int(idxnum)+1)
	for i := 0; i < int(idxnum); i++ {
		var key, firstItem uint16
		if err := binary.Read(r, binary.LittleEndian, &key); err != nil {
			return nil, fmt.Errorf("%w: reading idx[%d].key: %v", ErrLexiconCorrupt, i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &firstItem); err != nil {
			return nil, fmt.Errorf("%w: reading idx[%d].first_item: %v", ErrLexiconCorrupt, i, err)
		}
		idx = append(idx, lexiconIndexEntry{key: key, firstItem: int32(firstItem)})
	}
	// sentinel terminates range queries without a bounds check
	idx = append(idx, lexiconIndexEntry{key: 0xFFFF, firstItem: totalItems})

	rawItems := make([]struct {
		ch    [4]byte
		count int32
	}, totalItems)
	for i := range rawItems {
		if _, err := io.ReadFull(r, rawItems[i].ch[:]); err != nil {
			return nil, fmt.Errorf("%w: reading item[%d].ch: %v", ErrLexiconCorrupt, i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &rawItems[i].count); err != nil {
			return nil, fmt.Errorf("%w: reading item[%d].count: %v", ErrLexiconCorrupt, i, err)
		}
	}

	phraseArea := make([]byte, phraseAreaSize)
	if _, err := io.ReadFull(r, phraseArea); err != nil {
		return nil, fmt.Errorf("%w: reading phrase_area: %v", ErrLexiconCorrupt, err)
	}

	items := make([]lexiconItem, len(rawItems))
	for i, raw := range rawItems {
		items[i] = lexiconItem{ch: decodeLexiconChar(raw.ch, phraseArea), count: raw.count}
	}

	return &Lexicon{idx: idx, items: items}, nil
}

// decodeLexiconChar resolves one item's ch[4] field: a NUL-terminated UTF-8
// character, or (if ch[0]==0x1B) an escape into phraseArea (spec.md §3).
func decodeLexiconChar(ch [4]byte, phraseArea []byte) string {
	if ch[0] == 0x1B {
		offset := int(ch[1]) | int(ch[2])<<8 | int(ch[3])<<16
		if offset < 0 || offset >= len(phraseArea) {
			return ""
		}
		end := offset
		for end < len(phraseArea) && phraseArea[end] != 0 {
			end++
		}
		return string(phraseArea[offset:end])
	}
	end := 0
	for end < len(ch) && ch[end] != 0 {
		end++
	}
	return string(ch[:end])
}

// LookupPhoKey returns the candidates for packed, in the lexicon's
// author-supplied order (spec.md §4.L). ok is false when the lexicon is
// not loaded or the key has no candidates.
func LookupPhoKey(packed uint16) (candidates []string, ok bool) {
	lexiconMu.Lock()
	lex := sharedLex
	lexiconMu.Unlock()
	if lex == nil {
		return nil, false
	}
	i := sort.Search(len(lex.idx)-1, func(i int) bool { return lex.idx[i].key >= packed })
	if i >= len(lex.idx)-1 || lex.idx[i].key != packed {
		return nil, false
	}
	start, end := lex.idx[i].firstItem, lex.idx[i+1].firstItem
	if start >= end {
		return nil, false
	}
	out := make([]string, 0, end-start)
	for _, it := range lex.items[start:end] {
		out = append(out, it.ch)
	}
	return out, true
}

// findDataFile implements the three-path search order from spec.md §4.L:
// <data_dir>/<name>, <data_dir>/data/<name>, <dll_dir>/../data/<name>.
func findDataFile(dataDir, name string) (string, error) {
	candidates := []string{
		filepath.Join(dataDir, name),
		filepath.Join(dataDir, "data", name),
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "..", "data", name))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", ErrLexiconNotFound
}
