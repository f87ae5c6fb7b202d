package hime

import "testing"

func TestConvertPunctuationSmartQuotePairing(t *testing.T) {
	ctx := NewContext()
	ctx.SetSmartPunctuation(true)

	want := []string{"“", "”", "“", "”"}
	for i, w := range want {
		out, handled := ctx.ConvertPunctuation('"')
		if !handled || out != w {
			t.Fatalf("call %d: got %q handled=%v, want %q", i, out, handled, w)
		}
	}
}

func TestConvertPunctuationStaticTable(t *testing.T) {
	ctx := NewContext()
	out, handled := ctx.ConvertPunctuation(',')
	if !handled || out != "，" {
		t.Fatalf("comma conversion = %q, %v", out, handled)
	}
	if _, handled := ctx.ConvertPunctuation('Q'); handled {
		t.Fatalf("expected unmapped punctuation to report unhandled")
	}
}

func TestResetPunctuationState(t *testing.T) {
	ctx := NewContext()
	ctx.ConvertPunctuation('"')
	ctx.ResetPunctuationState()
	out, _ := ctx.ConvertPunctuation('"')
	if out != "“" {
		t.Fatalf("expected reset to restore opening quote, got %q", out)
	}
}

func TestConvertPunctuationNilContext(t *testing.T) {
	var ctx *Context
	if _, handled := ctx.ConvertPunctuation(','); handled {
		t.Fatalf("nil context must report unhandled")
	}
}
