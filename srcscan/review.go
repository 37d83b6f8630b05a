package srcscan

import (
	"sort"
	"strconv"
	"strings"
)

// collapseMultipartString merges literals that spanned multiple quoted
// pieces: the intermediate quote/whitespace/quote runs are removed, and
// (for dialects using doubled quotes as a raw escape) "" collapses to ".
func (r *Reviewer) collapseMultipartString(s string) string {
	s = multilineJoinRE.ReplaceAllString(s, "$1")
	if r.opts.CollapseDoubleQuotes {
		s = strings.ReplaceAll(s, `""`, `"`)
	}
	return s
}

func (r *Reviewer) processStrings() {
	collapse := func(entries []StringEntry) {
		for i := range entries {
			entries[i].Text = r.collapseMultipartString(entries[i].Text)
		}
	}
	collapse(r.results.Localizable)
	collapse(r.results.LocalizableInInternalCall)
	collapse(r.results.NotAvailableForL10N)
	collapse(r.results.MarkedNonLocalizable)
	collapse(r.results.Internal)
	collapse(r.results.UnsafeLocalizable)
}

// Review runs the cross-cutting passes once all files are scanned.
func (r *Reviewer) Review() {
	r.processStrings()

	for _, entry := range r.results.Localizable {
		untranslatable, translatableLength := r.isUntranslatable(entry.Text, false)
		if r.style.has(CheckL10NContainsExcessiveNonL10NContent) && !untranslatable &&
			len(entry.Text) > translatableLength*3 && !entry.Usage.HasContext {
			r.results.LocalizableWithExcessiveNonL10N = append(r.results.LocalizableWithExcessiveNonL10N, entry)
		}
		if r.style.has(CheckL10NStrings) && len(entry.Text) > 0 && untranslatable {
			r.results.UnsafeLocalizable = append(r.results.UnsafeLocalizable, entry)
		}
		if r.style.has(CheckMultipartStrings) && isStringMultipart(entry.Text) {
			r.results.Multipart = append(r.results.Multipart, entry)
		}
		if r.style.has(CheckPluralization) && isEntryFauxPlural(entry) {
			r.results.FauxPlural = append(r.results.FauxPlural, entry)
		}
		if r.style.has(CheckArticlesProceedingPlaceholder) &&
			(isStringArticleIssue(entry.Text) || isStringPronoun(entry.Text)) {
			r.results.ArticleIssue = append(r.results.ArticleIssue, entry)
		}
		if r.style.has(CheckL10NContainsURL) &&
			(urlEmailRE.MatchString(entry.Text) ||
				usPhoneNumberRE.MatchString(entry.Text) ||
				nonUSPhoneNumberRE.MatchString(entry.Text)) {
			r.results.LocalizableWithURL = append(r.results.LocalizableWithURL, entry)
		}
		if r.style.has(CheckNeedingContext) && !entry.Usage.HasContext && r.isStringAmbiguous(entry.Text) {
			r.results.LocalizableNeedingContext = append(r.results.LocalizableNeedingContext, entry)
		}
		if r.style.has(CheckL10NConcatenatedStrings) &&
			(hasSurroundingSpaces(entry.Text) || isConcatenatedOperator(entry)) {
			r.results.LocalizableBeingConcatenated = append(r.results.LocalizableBeingConcatenated, entry)
		}
		if r.style.has(CheckLiteralL10NStringComparison) && hasComparisonOperator(entry) {
			r.results.LiteralL10NBeingCompared = append(r.results.LiteralL10NBeingCompared, entry)
		}
		if r.style.has(CheckHalfwidth) && containsHalfwidth(entry.Text) {
			r.results.LocalizableWithHalfwidth = append(r.results.LocalizableWithHalfwidth, entry)
		}
	}

	if r.style.has(CheckL10NConcatenatedStrings) {
		// internal strings pieced together with an operator (+, +=, ?, :)
		// are reported as concatenations too
		for _, entry := range r.results.Internal {
			if isConcatenatedOperator(entry) {
				r.results.LocalizableBeingConcatenated = append(r.results.LocalizableBeingConcatenated, entry)
			}
		}
	}

	if r.style.has(CheckMalformedStrings) {
		classifyMalformed := func(entries []StringEntry) {
			for _, entry := range entries {
				if malformedHTMLTagRE.MatchString(entry.Text) ||
					malformedHTMLTagBadAmpRE.MatchString(entry.Text) {
					r.results.Malformed = append(r.results.Malformed, entry)
				}
			}
		}
		classifyMalformed(r.results.Localizable)
		classifyMalformed(r.results.MarkedNonLocalizable)
		classifyMalformed(r.results.Internal)
		classifyMalformed(r.results.NotAvailableForL10N)
	}

	if r.style.has(CheckUnencodedExtASCII) {
		classifyUnencoded := func(entries []StringEntry) {
			for _, entry := range entries {
				for i := 0; i < len(entry.Text); i++ {
					if entry.Text[i] >= 128 {
						r.results.UnencodedExtASCII = append(r.results.UnencodedExtASCII, entry)
						break
					}
				}
			}
		}
		classifyUnencoded(r.results.Localizable)
		classifyUnencoded(r.results.MarkedNonLocalizable)
		classifyUnencoded(r.results.Internal)
		classifyUnencoded(r.results.NotAvailableForL10N)
	}

	if r.style.has(CheckPrintfSingleNumber) {
		// only integral and simple floating-point conversions
		classifyPrintfNumber := func(entries []StringEntry) {
			for _, entry := range entries {
				if printfSingleIntRE.MatchString(entry.Text) || printfSingleFloatRE.MatchString(entry.Text) {
					r.results.PrintfSingleNumbers = append(r.results.PrintfSingleNumbers, entry)
				}
			}
		}
		classifyPrintfNumber(r.results.Internal)
		classifyPrintfNumber(r.results.LocalizableInInternalCall)
	}

	if r.style.has(CheckSuspectI18NUsage) {
		classifyYearIssue := func(entries []StringEntry) {
			for _, entry := range entries {
				if (strings.Contains(entry.Text, "%g") || strings.Contains(entry.Text, "%C") ||
					strings.Contains(entry.Text, "%y")) &&
					strftimeFunctions.contains(entry.Usage.Value) {
					expanded := entry
					expanded.Usage.Value = "Don't use two-digit year specifiers ('%g', '%y', '%C') in strftime-like functions."
					r.results.SuspectI18NUsage = append(r.results.SuspectI18NUsage, expanded)
				}
			}
		}
		classifyYearIssue(r.results.Localizable)
		classifyYearIssue(r.results.NotAvailableForL10N)
		classifyYearIssue(r.results.Internal)

		// if this is wxWidgets code, see if the locale framework was
		// ever initialized
		if r.wxInfo.appInit != nil {
			if !r.wxInfo.uiLocaleInitialized {
				entry := *r.wxInfo.appInit
				entry.Usage.Value = "wxUILocale::UseDefault() should be called from your OnInit() function."
				r.results.SuspectI18NUsage = append(r.results.SuspectI18NUsage, entry)
			}
			if r.opts.Verbose && !r.wxInfo.wxLocaleInitialized {
				entry := *r.wxInfo.appInit
				entry.Usage.Value = "A wxLocale object should be constructed from your OnInit() function if you rely on C runtime functions to be localized."
				r.results.SuspectI18NUsage = append(r.results.SuspectI18NUsage, entry)
			}
		}
	}

	r.runDiagnostics()
}

// runDiagnostics logs entries whose usage could not be resolved; the entry
// is still emitted, this is a self-check of the backscan.
func (r *Reviewer) runDiagnostics() {
	check := func(entries []StringEntry) {
		for _, entry := range entries {
			if entry.Usage.Value == "" && entry.Usage.Kind != UsageOrphan {
				r.results.ErrorLog = append(r.results.ErrorLog, LogEntry{
					Value:   entry.Text,
					Message: "Unknown function or variable assignment for this string.",
					File:    entry.File,
					Pos:     entry.Pos,
				})
			}
		}
	}
	check(r.results.Localizable)
	check(r.results.NotAvailableForL10N)
	check(r.results.MarkedNonLocalizable)
	check(r.results.Internal)
	check(r.results.UnsafeLocalizable)
}

// loadDeprecatedFunctions sweeps the working buffer for the deprecated-API
// map, word-boundary matched, one entry per occurrence in source order.
func (r *Reviewer) loadDeprecatedFunctions(text string) {
	if !r.style.has(CheckDeprecatedMacros) {
		return
	}
	type hit struct {
		offset int
		name   string
	}
	var hits []hit
	for name := range r.deprecatedFuncs {
		for offset := 0; ; {
			found := strings.Index(text[offset:], name)
			if found == -1 {
				break
			}
			found += offset
			offset = found + len(name)
			// whole-word match with something after it
			if found+len(name) >= len(text) || isValidNameRune(rune(text[found+len(name)])) {
				continue
			}
			if found > 0 && isValidNameRune(rune(text[found-1])) {
				continue
			}
			hits = append(hits, hit{offset: found, name: name})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].offset < hits[j].offset })
	for _, h := range hits {
		r.results.DeprecatedMacros = append(r.results.DeprecatedMacros, StringEntry{
			Text:  h.name,
			Usage: Usage{Kind: UsageFunction, Value: r.deprecatedFuncs[h.name]},
			File:  r.fileName,
			Pos:   r.pos(h.offset),
		})
	}
}

func isAlpha7Bit(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// loadSuspectI18NUsage sweeps for ::LoadString() calls and for _() or
// wxPLURAL() invocations whose first argument is an identifier rather than
// a string literal.
func (r *Reviewer) loadSuspectI18NUsage(text string) {
	if !r.style.has(CheckSuspectI18NUsage) {
		return
	}
	for _, loc := range loadStringRE.FindAllStringIndex(text, -1) {
		if loc[0] > 0 && (isAlpha7Bit(text[loc[0]-1]) || text[loc[0]-1] == '.') {
			continue
		}
		r.results.SuspectI18NUsage = append(r.results.SuspectI18NUsage, StringEntry{
			Text: text[loc[0]:loc[1]],
			Usage: Usage{
				Kind: UsageFunction,
				Value: "Prefer using CString::LoadString() (if using MFC) or a different framework's " +
					"string loading function. Calling ::LoadString() requires a fixed-size buffer " +
					"and may result in truncating translated strings.",
			},
			File: r.fileName,
			Pos:  r.pos(loc[0]),
		})
	}
	for _, m := range l10nNonLiteralArgRE.FindAllStringSubmatchIndex(text, -1) {
		arg := text[m[4]:m[5]]
		punct := text[m[6]:m[7]]
		// only something like LR, L, u8 can sit between the paren and a quote
		if len(arg) > 2 && punct != `"` {
			r.results.SuspectI18NUsage = append(r.results.SuspectI18NUsage, StringEntry{
				Text: arg,
				Usage: Usage{
					Kind:  UsageFunction,
					Value: "Only string literals should be passed to _() and wxPLURAL() functions.",
				},
				File: r.fileName,
				Pos:  r.pos(m[2]),
			})
		}
	}
}

// loadIDAssignments sweeps for hard-coded numeric IDs and duplicate ID
// values. Hex (0x) and decimal parse into the same integer space, and
// digit separators (1'000) are removed first.
func (r *Reviewer) loadIDAssignments(text string) {
	if !r.style.has(CheckDuplicateValueAssignedToIDs) && !r.style.has(CheckNumberAssignedToID) {
		return
	}
	type idAssignment struct {
		offset int
		name   string
		value  string
	}
	var assignments []idAssignment
	for _, m := range idAssignmentRE.FindAllStringSubmatchIndex(text, -1) {
		name := text[m[6]:m[7]]
		value := text[m[8]:m[9]]
		trailing := ""
		if m[10] != -1 {
			trailing = text[m[10]:m[11]]
		}
		// ignore function calls or constructed objects assigning an ID
		if trailing == "(" || trailing == "{" {
			continue
		}
		// clean up the value (e.g., 1'000 -> 1000)
		value = strings.ReplaceAll(value, "'", "")
		value = strings.TrimSpace(value)
		value = strings.ReplaceAll(value, " ", "")
		// see what's around "ID"; "WIDTH" contains it without being one
		parts := varNamePartsRE.FindStringSubmatch(name)
		if parts == nil {
			continue
		}
		prefix, suffix := parts[1], parts[3]
		isMFC := (prefix == "" || !isUpperByte(prefix[len(prefix)-1])) &&
			(strings.HasPrefix(suffix, "R_") || strings.HasPrefix(suffix, "D_") ||
				strings.HasPrefix(suffix, "C_") || strings.HasPrefix(suffix, "I_") ||
				strings.HasPrefix(suffix, "B_") || strings.HasPrefix(suffix, "S_") ||
				strings.HasPrefix(suffix, "M_") || strings.HasPrefix(suffix, "P_"))
		if !isMFC {
			if (prefix != "" && isUpperByte(prefix[len(prefix)-1])) ||
				(suffix != "" && isUpperByte(suffix[0])) {
				continue
			}
		}
		assignments = append(assignments, idAssignment{offset: m[0], name: name, value: value})
	}

	assignedIDs := make(map[string]string)
	for _, assignment := range assignments {
		idParts := varNameIDPartsRE.FindStringSubmatch(assignment.name)
		if idParts == nil {
			continue
		}
		idPrefix := idParts[2]
		idVal, idValOK := parseIDValue(assignment.value)

		const (
			idRangeStart       = 1
			menuIDRangeEnd     = 0x6FFF
			stringIDRangeEnd   = 0x7FFF
			dialogIDRangeStart = 8
			dialogIDRangeEnd   = 0xDFFF
		)
		numberCheck := r.style.has(CheckNumberAssignedToID)
		pos := r.pos(assignment.offset)
		switch {
		case numberCheck && idValOK &&
			!(idVal >= idRangeStart && idVal <= menuIDRangeEnd) &&
			(idPrefix == "IDR_" || idPrefix == "IDD_" || idPrefix == "IDM_" ||
				idPrefix == "IDC_" || idPrefix == "IDI_" || idPrefix == "IDB_"):
			r.results.IDsAssignedNumber = append(r.results.IDsAssignedNumber, StringEntry{
				Text: assignment.value + " assigned to " + assignment.name +
					"; value should be between 1 and 0x6FFF if this is an MFC project.",
				File: r.fileName,
				Pos:  pos,
			})
		case numberCheck && idValOK &&
			!(idVal >= idRangeStart && idVal <= stringIDRangeEnd) &&
			(idPrefix == "IDS_" || idPrefix == "IDP_"):
			r.results.IDsAssignedNumber = append(r.results.IDsAssignedNumber, StringEntry{
				Text: assignment.value + " assigned to " + assignment.name +
					"; value should be between 1 and 0x7FFF if this is an MFC project.",
				File: r.fileName,
				Pos:  pos,
			})
		case numberCheck && idValOK &&
			!(idVal >= dialogIDRangeStart && idVal <= dialogIDRangeEnd) &&
			idPrefix == "IDC_":
			r.results.IDsAssignedNumber = append(r.results.IDsAssignedNumber, StringEntry{
				Text: assignment.value + " assigned to " + assignment.name +
					"; value should be between 8 and 0xDFFF if this is an MFC project.",
				File: r.fileName,
				Pos:  pos,
			})
		case numberCheck && len(idPrefix) <= 3 && // MFC IDs handled above
			plainNumberRE.MatchString(assignment.value) &&
			// -1 and 0 are usually generic framework IDs or init values
			assignment.value != "-1" && assignment.value != "0":
			r.results.IDsAssignedNumber = append(r.results.IDsAssignedNumber, StringEntry{
				Text: assignment.value + " assigned to " + assignment.name,
				File: r.fileName,
				Pos:  pos,
			})
		}

		previousName, seen := assignedIDs[assignment.value]
		if !seen {
			assignedIDs[assignment.value] = assignment.name
		}
		if r.style.has(CheckDuplicateValueAssignedToIDs) && seen && assignment.value != "" &&
			// ignore the same ID re-assigned to the same variable name
			assignment.name != previousName &&
			assignment.value != "wxID_ANY" && assignment.value != "wxID_NONE" &&
			assignment.value != "-1" && assignment.value != "0" {
			r.results.DuplicateIDs = append(r.results.DuplicateIDs, StringEntry{
				Text: assignment.value + " has been assigned to multiple ID variables.",
				File: r.fileName,
				Pos:  pos,
			})
		}
	}
}

func isUpperByte(b byte) bool { return b >= 'A' && b <= 'Z' }

func parseIDValue(s string) (int32, bool) {
	var v int64
	var err error
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = strconv.ParseInt(s[2:], 16, 32)
	} else {
		v, err = strconv.ParseInt(s, 10, 32)
	}
	if err != nil {
		return 0, false
	}
	return int32(v), true
}
