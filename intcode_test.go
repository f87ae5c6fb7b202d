package hime

import "testing"

func TestConvertIntcodeUnicode(t *testing.T) {
	out, ok := ConvertIntcode(IntcodeUnicode, "4E2D") // 中
	if !ok || out != "中" {
		t.Fatalf("ConvertIntcode(Unicode, 4E2D) = %q, %v", out, ok)
	}
}

func TestConvertIntcodeUnicodeRejectsOutOfRange(t *testing.T) {
	if _, ok := ConvertIntcode(IntcodeUnicode, "110000"); ok {
		t.Fatalf("expected codepoint >= U+110000 to fail")
	}
}

func TestConvertIntcodeEmptyOrNonHex(t *testing.T) {
	if _, ok := ConvertIntcode(IntcodeUnicode, ""); ok {
		t.Fatalf("expected empty hex to fail")
	}
	if _, ok := ConvertIntcode(IntcodeUnicode, "zzzz"); ok {
		t.Fatalf("expected non-hex input to fail")
	}
}

func TestIntcodeStateAccumulateAndCommit(t *testing.T) {
	ctx := NewContext()
	ctx.SetChineseMode(true)
	ctx.SetInputMethod(MethodIntcode)

	// "4E2D" -> 中, 4 hex digits, but default mode is Unicode (max 6 digits)
	// so confirm via Enter instead of auto-commit at max length.
	for _, ch := range "4E2D" {
		ctx.ProcessKey(int(ch), ch, 0)
	}
	if ctx.Preedit() != "U+4E2D" {
		t.Fatalf("expected preedit U+4E2D, got %q", ctx.Preedit())
	}
	result := ctx.ProcessKey(VKEnter, 0, 0)
	if result != Commit || ctx.CommitText() != "中" {
		t.Fatalf("expected Enter to commit 中, got result=%v commit=%q", result, ctx.CommitText())
	}
}

func TestIntcodeStateAutoCommitAtMaxLen(t *testing.T) {
	ctx := NewContext()
	ctx.SetChineseMode(true)
	ctx.SetInputMethod(MethodIntcode)
	ctx.IntcodeSetMode(IntcodeBig5)

	for _, ch := range "A440" { // 4 hex digits = Big5 max length
		ctx.ProcessKey(int(ch), ch, 0)
	}
	if ctx.CommitText() == "" {
		t.Fatalf("expected auto-commit at Big5 max length, commit is empty")
	}
}
