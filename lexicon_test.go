package hime

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// buildLexiconBytes assembles a synthetic pho.tab2 image: idxnum is
// written twice (spec.md §9 "Quirk preservation"), one phrase is stored
// via the phrase_area escape, the rest as direct UTF-8.
func buildLexiconBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer

	type item struct {
		key  uint16
		chs  []string
	}
	entries := []item{
		{key: 100, chs: []string{"你"}},
		{key: 200, chs: []string{"好", "號"}},
	}

	phraseArea := []byte("世界\x00")
	phraseOffset := 0

	var totalItems int32
	for _, e := range entries {
		totalItems += int32(len(e.chs))
	}
	totalItems++ // the escaped phrase item appended below

	idxnum := uint16(len(entries))
	write := func(v interface{}) {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	write(idxnum)
	write(idxnum)
	write(totalItems)
	write(int32(len(phraseArea)))

	firstItem := uint16(0)
	for _, e := range entries {
		write(e.key)
		write(firstItem)
		firstItem += uint16(len(e.chs))
	}
	// one extra index entry whose sole item is the escaped phrase
	write(uint16(300))
	write(firstItem)

	for _, e := range entries {
		for _, ch := range e.chs {
			var field [4]byte
			copy(field[:], ch)
			buf.Write(field[:])
			write(int32(1))
		}
	}
	// escaped phrase item: ch[0]=0x1B, ch[1..3] = 24-bit LE offset
	var escaped [4]byte
	escaped[0] = 0x1B
	escaped[1] = byte(phraseOffset)
	escaped[2] = byte(phraseOffset >> 8)
	escaped[3] = byte(phraseOffset >> 16)
	buf.Write(escaped[:])
	write(int32(5))

	buf.Write(phraseArea)

	return buf.Bytes()
}

func TestReadLexiconRoundtrip(t *testing.T) {
	data := buildLexiconBytes(t)
	lex, err := readLexicon(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("readLexicon: %v", err)
	}
	if len(lex.idx) != 4 { // 3 entries + sentinel
		t.Fatalf("expected 4 idx entries (incl. sentinel), got %d", len(lex.idx))
	}
	if len(lex.items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(lex.items))
	}
	if lex.items[0].ch != "你" || lex.items[1].ch != "好" || lex.items[2].ch != "號" {
		t.Fatalf("unexpected decoded items: %+v", lex.items)
	}
	if lex.items[3].ch != "世界" {
		t.Fatalf("expected escaped phrase to decode to 世界, got %q", lex.items[3].ch)
	}
}

func TestLookupPhoKey(t *testing.T) {
	CleanupLexicon()
	defer CleanupLexicon()

	lexiconMu.Lock()
	lex, err := readLexicon(bytes.NewReader(buildLexiconBytes(t)))
	if err != nil {
		t.Fatalf("readLexicon: %v", err)
	}
	sharedLex = lex
	lexiconMu.Unlock()

	cands, ok := LookupPhoKey(200)
	if !ok || len(cands) != 2 || cands[0] != "好" || cands[1] != "號" {
		t.Fatalf("LookupPhoKey(200) = %v, %v", cands, ok)
	}

	if _, ok := LookupPhoKey(999); ok {
		t.Fatalf("expected no candidates for unknown key")
	}
}

func TestLoadLexiconFromDisk(t *testing.T) {
	CleanupLexicon()
	defer CleanupLexicon()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pho.tab2"), buildLexiconBytes(t), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := LoadLexicon(dir); err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	if _, ok := LookupPhoKey(100); !ok {
		t.Fatalf("expected key 100 to resolve after LoadLexicon")
	}

	// idempotent: loading the same directory again must not error
	if err := LoadLexicon(dir); err != nil {
		t.Fatalf("second LoadLexicon: %v", err)
	}
}

func TestLoadLexiconMissingFile(t *testing.T) {
	CleanupLexicon()
	defer CleanupLexicon()

	if err := LoadLexicon(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing pho.tab2")
	}
}
