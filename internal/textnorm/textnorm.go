package textnorm

import (
	"regexp"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// strippedSet enumerates the code points deleted from every line:
//   - ASCII control characters except TAB, LF, CR
//   - zero-width and bidirectional formatting controls
//     (U+200B–200F, U+202A–202E, U+2060–2069, U+FEFF)
//   - the Private Use Area (icon-font glyphs)
//   - the Specials block (replacement characters, noncharacters)
var strippedSet = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0000, Hi: 0x0008, Stride: 1},
		{Lo: 0x000B, Hi: 0x000C, Stride: 1},
		{Lo: 0x000E, Hi: 0x001F, Stride: 1},
		{Lo: 0x200B, Hi: 0x200F, Stride: 1},
		{Lo: 0x202A, Hi: 0x202E, Stride: 1},
		{Lo: 0x2060, Hi: 0x2069, Stride: 1},
		{Lo: 0xE000, Hi: 0xF8FF, Stride: 1},
		{Lo: 0xFEFF, Hi: 0xFEFF, Stride: 1},
		{Lo: 0xFFF0, Hi: 0xFFFF, Stride: 1},
	},
	LatinOffset: 3,
}

// cleaner deletes strippedSet first so stray formatting characters cannot
// survive inside NFKC recompositions.
var cleaner = transform.Chain(runes.Remove(runes.In(strippedSet)), norm.NFKC)

// boilerplateRE matches blog "continued" stubs: a line starting with the
// [続き marker, or with a two-dot-or-longer ellipsis prefix followed by 続き.
// Checked after NFKC, so U+2026 ellipses are already folded to dots.
var boilerplateRE = regexp.MustCompile(`^\[続き|^\.{2,}続き`)

// Clean returns line with the stripped set removed and NFKC applied. The
// result may be empty when the line consisted only of removed characters.
func Clean(line string) string {
	out, _, err := transform.String(cleaner, line)
	if err != nil {
		// Neither rune removal nor NFKC fails on UTF-8 input; the scanner
		// upstream already guarantees whole lines.
		return line
	}
	return out
}

// Boilerplate reports whether a cleaned line is a "continued..." stub that
// should be dropped from its document.
func Boilerplate(line string) bool {
	return boilerplateRE.MatchString(line)
}
