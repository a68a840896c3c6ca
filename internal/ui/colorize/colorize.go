// Package colorize highlights jvmdis listings for the terminal.
package colorize

import (
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
)

// Enabled reports whether output may carry ANSI colors. JVMDIS_NO_COLOR and
// NO_COLOR both turn colors off.
func Enabled() bool {
	return os.Getenv("JVMDIS_NO_COLOR") == "" && os.Getenv("NO_COLOR") == ""
}

// getListingStyle returns the listing style with fallbacks
func getListingStyle() *chroma.Style {
	candidates := []string{"jvmdis-dark", "dracula", "monokai"}
	for _, name := range candidates {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

// getTerminalFormatter returns an appropriate terminal formatter
func getTerminalFormatter() chroma.Formatter {
	candidates := []string{"terminal16m", "terminal256"}
	for _, name := range candidates {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// Listing colorizes a whole listing. On failure the input comes back
// unchanged along with the error.
func Listing(text string) (string, error) {
	if !Enabled() {
		return text, nil
	}

	iterator, err := ListingLexer.Tokenise(nil, text)
	if err != nil {
		return text, err
	}

	var buf strings.Builder
	if err := getTerminalFormatter().Format(&buf, getListingStyle(), iterator); err != nil {
		return text, err
	}
	return buf.String(), nil
}

// Line colorizes one listing line, falling back to the plain line.
func Line(line string) string {
	out, err := Listing(line)
	if err != nil {
		return line
	}
	return out
}

// StripANSI removes ANSI escape sequences.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false

	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
		} else if inEscape {
			if r == 'm' {
				inEscape = false
			}
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}
