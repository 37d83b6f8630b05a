package srcscan

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// replaceEscapedControlChars turns literal "\n", "\r", "\t" sequences (as
// they appear inside a source literal) into plain spaces so they don't
// confuse the classification regexes.
func replaceEscapedControlChars(s string) string {
	replacer := strings.NewReplacer(`\n`, " ", `\r`, " ", `\t`, " ")
	return replacer.Replace(s)
}

func removeHexColorValues(s string) string {
	return hexColorRE.ReplaceAllString(s, "")
}

// removePrintfCommands strips printf-style conversion commands while keeping
// the surrounding text (the leading context captured by each pattern stays).
func removePrintfCommands(s string) string {
	for _, re := range []*regexp.Regexp{printfCppIntRE, printfCppFloatRE, printfCppStringRE, printfCppPointerRE} {
		s = re.ReplaceAllString(s, "$1")
	}
	return s
}

func removePositionalCommands(s string) string {
	return positionalCommandRE.ReplaceAllString(s, "")
}

func removeEscapedUnicodeValues(s string) string {
	return escapedUnicodeRE.ReplaceAllString(s, "")
}

// loadMatches returns every match of re in s.
func loadMatches(s string, re *regexp.Regexp) []string {
	return re.FindAllString(s, -1)
}

// loadCppPrintfCommands extracts printf conversion commands. A single regex
// for every command family is too complex, so this is a multi-pass over the
// int, float, string, and pointer patterns.
func loadCppPrintfCommands(s string) []string {
	var results []string
	for _, re := range []*regexp.Regexp{printfCppIntRE, printfCppFloatRE, printfCppStringRE, printfCppPointerRE} {
		for _, m := range re.FindAllStringSubmatch(s, -1) {
			results = append(results, m[2])
		}
	}
	return results
}

func loadPositionalCommands(s string) []string {
	return positionalSearchRE.FindAllString(s, -1)
}

// FoldWidth maps fullwidth and halfwidth variants to their canonical narrow
// forms, so "１２３" compares as "123".
func FoldWidth(s string) string {
	return width.Narrow.String(s)
}

// WidenHalfwidth maps halfwidth variants to their fullwidth forms; the
// report suggests this form when the halfwidth check fires.
func WidenHalfwidth(s string) string {
	return width.Widen.String(s)
}

// containsHalfwidth reports whether any rune falls in the halfwidth CJK
// punctuation/katakana/jamo range.
func containsHalfwidth(s string) bool {
	return halfwidthRangeRE.MatchString(s)
}

// hasSurroundingSpaces reports whether a literal keeps leading or trailing
// spaces, which usually betrays runtime concatenation.
func hasSurroundingSpaces(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		// a leading or trailing space hints that another piece is joined
		// to this one at runtime
		return true
	}
	return strings.HasPrefix(s, `\t`) || strings.HasSuffix(s, `\t`)
}

var fileAddressPrefixRE = regexp.MustCompile(`(?i)^(https?|ftps?|file|mailto|gopher)://?`)
var windowsPathRE = regexp.MustCompile(`^[a-zA-Z]:[\\/]`)
var uncPathRE = regexp.MustCompile(`^\\\\[[:alnum:]]`)

// isFileAddress is the last-resort heuristic for paths, URLs, and email
// addresses that the battery did not already classify.
func isFileAddress(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if fileAddressPrefixRE.MatchString(s) || windowsPathRE.MatchString(s) || uncPathRE.MatchString(s) {
		return true
	}
	if strings.HasPrefix(s, "www.") && strings.Count(s, ".") >= 2 {
		return true
	}
	// a single token ending in a known file extension
	if !strings.ContainsAny(s, " \t\n\r") {
		if dot := strings.LastIndexByte(s, '.'); dot > 0 && dot < len(s)-1 {
			if fileExtensions.contains(strings.ToLower(s[dot+1:])) {
				return true
			}
		}
	}
	return false
}

func isFontName(s string) bool {
	return fontNames.contains(strings.ToLower(strings.TrimSpace(s)))
}

func isFileExtension(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "*")
	s = strings.TrimPrefix(s, ".")
	return fileExtensions.contains(s)
}

func isDigitsPunctOrSpacesOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.IsPunct(r) && !unicode.IsSpace(r) &&
			!unicode.IsSymbol(r) && !unicode.IsControl(r) {
			return false
		}
	}
	return true
}
