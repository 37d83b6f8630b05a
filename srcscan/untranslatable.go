package srcscan

import "strings"

func hasNoRealWhitespace(s string) bool {
	return !strings.ContainsAny(s, " \n\r") &&
		!strings.Contains(s, `\n`) && !strings.Contains(s, `\r`) && !strings.Contains(s, `\t`)
}

// isUntranslatable decides whether a string is a real user-facing message.
// It is a pure function of its input and the (immutable) rule sets; the
// returned length is that of the content that survived normalization, which
// the excessive-non-l10n check compares against the raw length.
//
// Order matters throughout; see the individual steps.
func (r *Reviewer) isUntranslatable(s string, limitWordCount bool) (bool, int) {
	// no spaces but lengthy: probably some sort of GUID
	if len(s) >= 32 && hasNoRealWhitespace(s) {
		return true, len(s)
	}

	// something like "%d%%" or "50%" should be translatable
	if percentageRE.MatchString(s) {
		return false, len(s)
	}

	s = replaceEscapedControlChars(s)
	s = strings.TrimSpace(s)
	// a function signature, before stripping printf commands and whatnot;
	// but allow something like "Item(s)"
	if (functionSignatureRE.MatchString(s) || openFunctionSignatureRE.MatchString(s)) &&
		!pluralRE.MatchString(s) {
		return true, len(s)
	}

	s = removeHexColorValues(s)
	s = removePrintfCommands(s)
	s = removeEscapedUnicodeValues(s)
	s = strings.TrimSpace(s)
	// control characters wreak havoc with the classification regexes
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r == '\r' {
			return ' '
		}
		return r
	}, s)
	s = strings.TrimSpace(s)

	if isDigitsPunctOrSpacesOnly(s) {
		if strings.Contains(s, "%%") || s == "..." {
			return false, len(s)
		}
		if !r.opts.AllowTranslatingPunctuationOnlyStrings {
			return true, len(s)
		}
	}

	// Hard-coded HTML syntax: strip it down and see if what is left
	// contains translatable content.
	s = brTagRE.ReplaceAllString(s, "\n")
	s = strings.TrimSpace(s)
	if xmlElementRE.MatchString(s) || htmlRE.MatchString(s) ||
		htmlElementWithContentRE.MatchString(s) || htmlTagRE.MatchString(s) ||
		htmlTagUnicodeRE.MatchString(s) {
		// it's really something like "<enter comment.>", which can be translatable
		if notXMLElementRE.MatchString(s) {
			return false, len(s)
		}
		// A single word in braces may be an HTML/XML element, but it may
		// also be a user-facing string; err on the side of the latter.
		if angleBracedOneWordRE.MatchString(s) && !htmlKnownElementsRE.MatchString(s) {
			if !limitWordCount {
				return false, len(s)
			}
			if len(oneWordRE.FindAllString(s, -1)) < r.opts.MinWordsForUnavailable {
				return true, len(s)
			}
		}
		s = scriptElementRE.ReplaceAllString(s, "")
		s = styleElementRE.ReplaceAllString(s, "")
		s = angledFragmentRE.ReplaceAllString(s, "")
		s = xmlElementRE.ReplaceAllString(s, "")
		// strip things like &ldquo;
		s = htmlEntityRE.ReplaceAllString(s, "")
		s = htmlEntityNumRE.ReplaceAllString(s, "")
	}

	// strings that may look untranslatable, but are actually OK
	if _, ok := anyRegexMatch(translatableRegexes, s); ok {
		return false, len(s)
	}

	// does it have enough words?
	wordCount := len(oneWordRE.FindAllString(s, -1))
	if !r.opts.AllowTranslatingPunctuationOnlyStrings && wordCount == 0 {
		return true, len(s)
	}
	if limitWordCount && wordCount < r.opts.MinWordsForUnavailable {
		return true, len(s)
	}

	// nothing but punctuation? if that's allowed, let it through
	if r.opts.AllowTranslatingPunctuationOnlyStrings && punctOnlyRE.MatchString(s) {
		return false, len(s)
	}

	// "N/A", "O&n", and "O&K" won't meet the two-consecutive-letters
	// criterion below, but are fine to translate
	if len(s) == 3 {
		lower := strings.ToLower(s)
		if lower == "n/a" || lower == "o&n" || lower == "o&k" {
			return false, len(s)
		}
	}

	const maxWordSize = 20
	if len(s) <= 1 ||
		// not at least two letters together
		!twoLetterRE.MatchString(s) ||
		// single word (no separators) over 20 characters doesn't seem like
		// a real word meant for translation
		(len(s) > maxWordSize &&
			!strings.ContainsAny(s, " \n\t\r/-") &&
			!strings.Contains(s, `\n`) && !strings.Contains(s, `\r`) && !strings.Contains(s, `\t`)) ||
		knownInternalStrings.contains(s) ||
		// a string like "_tcscoll" would be odd inside a string, but just
		// in case, it should not be localized
		hasDeprecatedName(s) {
		return true, len(s)
	}

	// RTF text
	if strings.HasPrefix(s, `{\\`) {
		return true, len(s)
	}

	// social media hashtag (or a formatting code of some sort),
	// keyboard shortcuts, SQL, placeholder text
	if hashtagRE.MatchString(s) || keyShortcutRE.MatchString(s) || sqlCodeRE.MatchString(s) {
		return true, len(s)
	}

	// with at least one word and this long, it probably is a real
	// user message, not an internal string
	const minMessageLength = 200
	if len(s) > minMessageLength {
		return false, len(s)
	}

	if untranslatableExceptions.contains(s) || r.extraExceptions.contains(s) {
		return false, len(s)
	}

	if _, ok := anyRegexMatch(untranslatableRegexes, s); ok {
		return true, len(s)
	}

	return isFontName(s) || r.extraFonts.contains(strings.ToLower(s)) ||
		isFileExtension(s) || isFileAddress(s), len(s)
}

func hasDeprecatedName(s string) bool {
	if _, ok := deprecatedStringFunctions[s]; ok {
		return true
	}
	_, ok := deprecatedStringMacros[s]
	return ok
}
