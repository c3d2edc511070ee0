package evaluator

// Runes that type as the same key on a standard keyboard. Dashes always
// collapse to a hyphen; curly quotes only when the option is enabled.
var dashClass = map[rune]rune{
	'\u2010': '-',
	'\u2013': '-',
	'\u2014': '-',
}

var quoteClass = map[rune]rune{
	'\u2018': '\'',
	'\u2019': '\'',
	'\u201c': '"',
	'\u201d': '"',
}

// fold maps r to the representative of its equivalence class.
func fold(r rune, curlyQuotes bool) rune {
	if c, ok := dashClass[r]; ok {
		return c
	}
	if curlyQuotes {
		if c, ok := quoteClass[r]; ok {
			return c
		}
	}
	return r
}

// Equivalent reports whether typed matches expected under the configured classes.
func Equivalent(typed, expected rune, curlyQuotes bool) bool {
	return typed == expected || fold(typed, curlyQuotes) == fold(expected, curlyQuotes)
}
