package colorize

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ListingLexer tokenises jvmdis listings: "   12: 2a b7  tableswitch { 0: 40, default: 48 }".
var ListingLexer = lexers.Register(chroma.MustNewLexer(
	&chroma.Config{
		Name:      "JVM listing",
		Aliases:   []string{"jvmdis", "jvm-listing"},
		Filenames: []string{"*.jvmdis"},
	},
	func() chroma.Rules {
		return chroma.Rules{
			"root": {
				{Pattern: `(?m)^[ \t]*\d+:`, Type: chroma.NameLabel, Mutator: chroma.Push("raw")},
				{Pattern: `\n`, Type: chroma.TextWhitespace},
				{Pattern: `[ \t]+`, Type: chroma.TextWhitespace},
				{Pattern: `.`, Type: chroma.Text},
			},
			// optional hex column, then the mnemonic
			"raw": {
				{Pattern: `\n`, Type: chroma.TextWhitespace, Mutator: chroma.Pop(1)},
				{Pattern: `[ \t]+`, Type: chroma.TextWhitespace},
				{Pattern: `\b[0-9a-f]{2}\b`, Type: chroma.LiteralNumberHex},
				{Pattern: `\.\.`, Type: chroma.Comment},
				{Pattern: `[a-z][a-z0-9_]*`, Type: chroma.Keyword, Mutator: chroma.Push("operands")},
				{Pattern: `.`, Type: chroma.Text},
			},
			"operands": {
				{Pattern: `\n`, Type: chroma.TextWhitespace, Mutator: chroma.Pop(2)},
				{Pattern: `[ \t]+`, Type: chroma.TextWhitespace},
				{Pattern: `#\d+`, Type: chroma.NameVariable},
				{Pattern: `\bdefault\b`, Type: chroma.KeywordPseudo},
				{Pattern: `\b(?:boolean|char|float|double|byte|short|int|long)\b`, Type: chroma.KeywordType},
				{Pattern: `-?\d+`, Type: chroma.LiteralNumberInteger},
				{Pattern: `[{}:,]`, Type: chroma.Punctuation},
				{Pattern: `.`, Type: chroma.Text},
			},
		}
	},
))

// ListingDark is the listing palette: mnemonics in white, addresses in gray,
// numbers in pink and constant pool references in gold.
var ListingDark = styles.Register(chroma.MustNewStyle("jvmdis-dark", chroma.StyleEntries{
	chroma.Text:                 "#FFFFFF",
	chroma.Background:           "bg:#1e1e1e",
	chroma.Comment:              "#6A9955",
	chroma.Keyword:              "#FFFFFF",
	chroma.KeywordPseudo:        "#7C9C9D",
	chroma.KeywordType:          "#7C9C9D",
	chroma.NameLabel:            "#4F4F4F",
	chroma.NameVariable:         "#FFD700",
	chroma.LiteralNumberHex:     "#858585",
	chroma.LiteralNumberInteger: "#FF5F87",
	chroma.Punctuation:          "#FFFFFF",
}))
