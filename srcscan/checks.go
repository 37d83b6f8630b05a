package srcscan

import (
	"strings"
	"unicode"
)

// Per-string heuristics consumed by the aggregate review pass.

func isStringFauxPlural(s string) bool {
	return fauxPluralRE.MatchString(s)
}

// Qt (and possibly other frameworks) dynamically detects "(s)" and makes
// separate strings when a number is provided via the context arguments, so
// anything with a context is left alone.
func isEntryFauxPlural(entry StringEntry) bool {
	if entry.Usage.HasContext {
		return false
	}
	return isStringFauxPlural(entry.Text)
}

// A multipart string holds several logical messages separated by runs of
// spaces or tab escapes, typically sliced at runtime.
func isStringMultipart(s string) bool {
	return len(multipartSpacesRE.FindAllString(s, -1)) > 2
}

func isStringPronoun(s string) bool {
	return pronounOnlyRE.MatchString(s)
}

// Assuming % or { is a dynamic placeholder may yield false positives, but a
// real article preceding one of those otherwise would be very rare.
func isStringArticleIssue(s string) bool {
	return articlePlaceholderRE.MatchString(s)
}

var commonAcronyms = newStringSet("N/A", "NA", "OK", "ASCII", "US-ASCII", "CD", "CD-ROM", "DVD", "URL")

// "%1 of %2", "Page %d", etc. are self explanatory even though they trip
// the command-count thresholds.
var selfExplanatoryFormats = newStringSet(" of ", "Page ", "Column ", "Row ", "Line ", "Page  of ")

func trimMatchedEnds(s, prefix, suffix string) (string, bool) {
	if len(s) >= len(prefix)+len(suffix) && strings.HasPrefix(s, prefix) && strings.HasSuffix(s, suffix) {
		return s[len(prefix) : len(s)-len(suffix)], true
	}
	return s, false
}

// isStringAmbiguous decides whether a translatable string is too cryptic to
// hand to a translator without a disambiguation comment. The printf-command
// thresholds (3, or 2 with length < 16, or 1 with length < 10) are
// empirical; keep them exactly.
func (r *Reviewer) isStringAmbiguous(s string) bool {
	// just one word?
	if !strings.ContainsAny(s, " \t\n\r") && !strings.Contains(s, `\t`) {
		// probably some sort of complex syntactical string if it's
		// abnormally long and has no spaces
		if len(s) >= 32 {
			return true
		}
		// trim ignorable punctuation before the final review
		for _, pair := range [][2]string{{`'`, `'`}, {`"`, `"`}, {"<", ">"}, {"(", ")"}, {"[", "]"}} {
			s, _ = trimMatchedEnds(s, pair[0], pair[1])
		}
		s = strings.TrimSuffix(s, ":")
		for _, prefix := range []string{`\"`, `\'`} {
			s = strings.TrimPrefix(s, prefix)
		}
		for _, suffix := range []string{`\"`, `\'`, "...", "(s)"} {
			s = strings.TrimSuffix(s, suffix)
		}
		s = strings.TrimPrefix(s, "&")
		s = strings.TrimPrefix(s, "<br/>")
		s = strings.TrimSuffix(s, "<br/>")
		s = strings.TrimPrefix(s, "<br>")
		s = strings.TrimSuffix(s, "<br>")

		if s == "" {
			return false
		}
		// some acronyms are self explanatory
		if commonAcronyms.contains(s) {
			return false
		}
		// single word with multiple punctuation marks?
		punctCount := 0
		for _, chr := range s {
			if unicode.IsPunct(chr) && chr != '-' && chr != '/' && chr != '\\' && chr != '&' && chr != '.' {
				punctCount++
			}
		}
		if punctCount > 1 {
			return true
		}
		// all CAPS and/or punctuation?
		cappedOrPunct := 0
		total := 0
		for _, chr := range s {
			total++
			if unicode.IsUpper(chr) || unicode.IsPunct(chr) {
				cappedOrPunct++
			}
		}
		return cappedOrPunct == total
	}

	// placeholders that may need an explanation
	if strings.Contains(s, "###") || strings.Contains(s, "XXXX") {
		return true
	}

	// ignore something like "Name: %s", where '%s' is obviously a name
	colonAndPrintfs := len(colonAndPrintfRE.FindAllString(s, -1))

	// a string with many printf commands, or a short one with at least one,
	// could use a context comment
	printfCmds := loadCppPrintfCommands(s)
	nonObvious := 0
	if len(printfCmds) > colonAndPrintfs {
		nonObvious = len(printfCmds) - colonAndPrintfs
	}
	if nonObvious >= 3 || (nonObvious >= 2 && len(s) < 16) || (nonObvious >= 1 && len(s) < 10) {
		filtered := removePrintfCommands(s)
		if selfExplanatoryFormats.contains(filtered) {
			return false
		}
		return true
	}

	// same for "%1"-style positional commands
	posCmds := loadPositionalCommands(s)
	nonObvious = 0
	if len(posCmds) > colonAndPrintfs {
		nonObvious = len(posCmds) - colonAndPrintfs
	}
	if nonObvious >= 3 || (nonObvious >= 2 && len(s) < 16) || (nonObvious >= 1 && len(s) < 10) {
		filtered := removePositionalCommands(s)
		if selfExplanatoryFormats.contains(filtered) {
			return false
		}
		return true
	}

	// more than one abbreviation makes a string difficult to understand
	// for a translator (or anyone, really)
	return len(abbreviationRE.FindAllString(s, -1)) > 1
}

// isConcatenatedOperator reports whether the adjacent operator recovered by
// the backscan implies runtime concatenation (or a ternary splice).
func isConcatenatedOperator(entry StringEntry) bool {
	switch entry.Usage.Variable.Operator {
	case "+", "+=", "?", ":":
		return true
	}
	return false
}

// hasComparisonOperator reports whether the literal sits next to an
// equality comparison.
func hasComparisonOperator(entry StringEntry) bool {
	op := entry.Usage.Variable.Operator
	return strings.HasPrefix(op, "==") || strings.HasPrefix(op, "!=")
}
