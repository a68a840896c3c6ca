package colorize

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

func TestLexerRegistered(t *testing.T) {
	for _, name := range []string{"jvmdis", "jvm-listing"} {
		if lexers.Get(name) == nil {
			t.Errorf("lexers.Get(%q) = nil", name)
		}
	}
}

func TestLexerTokens(t *testing.T) {
	it, err := ListingLexer.Tokenise(nil, "   12: ldc #3\n   14: newarray int\n   16: goto -4")
	if err != nil {
		t.Fatal(err)
	}
	types := map[string]chroma.TokenType{}
	for _, tok := range it.Tokens() {
		if v := strings.TrimSpace(tok.Value); v != "" {
			types[v] = tok.Type
		}
	}
	want := map[string]chroma.TokenType{
		"12:":      chroma.NameLabel,
		"ldc":      chroma.Keyword,
		"#3":       chroma.NameVariable,
		"newarray": chroma.Keyword,
		"int":      chroma.KeywordType,
		"-4":       chroma.LiteralNumberInteger,
	}
	for v, tt := range want {
		if types[v] != tt {
			t.Errorf("%q tokenised as %s, want %s", v, types[v], tt)
		}
	}
}

func TestListingPreservesText(t *testing.T) {
	t.Setenv("JVMDIS_NO_COLOR", "")
	t.Setenv("NO_COLOR", "")
	in := "    0: aload_0\n    1: tableswitch { 0: 20, default: 24 }\n"
	out, err := Listing(in)
	if err != nil {
		t.Fatal(err)
	}
	if out == in {
		t.Error("no colors applied")
	}
	if got := StripANSI(out); got != in {
		t.Errorf("StripANSI(Listing(x)) = %q, want %q", got, in)
	}
}

func TestNoColor(t *testing.T) {
	t.Setenv("JVMDIS_NO_COLOR", "1")
	if Enabled() {
		t.Fatal("Enabled() with JVMDIS_NO_COLOR set")
	}
	if got := Line("    0: nop"); got != "    0: nop" {
		t.Errorf("Line = %q", got)
	}
}
