package srcscan

import (
	"bytes"
	"strconv"
	"strings"
)

func isGettextTranslatorComment(comment string) bool {
	return strings.HasPrefix(strings.TrimLeft(comment, " \t\n\r"), "TRANSLATORS:")
}

// Qt-style translator comments start with a colon (//: or /*:) and stay
// attached to the next translation call regardless of its name.
func isQtTranslatorComment(comment string) bool {
	return len(comment) > 0 && comment[0] == ':'
}

const (
	suppressBegin = "sprakvakt-suppress-begin"
	suppressEnd   = "sprakvakt-suppress-end"
)

// isBlockSuppressed checks whether a comment opens a suppression region and
// returns the offset (relative to the comment content) just past the end
// marker.
func isBlockSuppressed(comment string) (bool, int) {
	firstNonSpace := len(comment) - len(strings.TrimLeft(comment, " \t\n\r"))
	if firstNonSpace == len(comment) {
		return false, -1
	}
	trimmed := comment[firstNonSpace:]
	if !strings.HasPrefix(trimmed, suppressBegin) {
		return false, -1
	}
	endOfBlock := strings.Index(trimmed, suppressEnd)
	if endOfBlock == -1 {
		return false, -1
	}
	return true, firstNonSpace + endOfBlock + len(suppressEnd)
}

func isRawStringMarker(b byte) bool { return b == 'R' || b == '@' }

// ScanFile consumes one decoded source buffer, emitting every string
// literal with its recovered usage context into the result buckets. The
// buffer is copied; handled regions of the copy are blanked so the
// whole-buffer sweeps at the end don't re-trip on them.
func (r *Reviewer) ScanFile(text string, file FileRef) {
	r.fileName = file
	if text == "" {
		return
	}
	r.orig = text
	r.buf = []byte(text)
	n := len(r.buf)
	i := 0

	for i < n {
		for i+1 < n && r.buf[i] == ' ' {
			i++
		}
		if i >= n {
			break
		}
		switch {
		case r.buf[i] == '/' && i+1 < n && r.buf[i+1] == '*':
			next, ok := r.scanBlockComment(i)
			if !ok {
				// can't find the ending tag; nothing past here is reliable
				r.logMessage("/*", "Unterminated block comment.", i)
				r.finishFile()
				return
			}
			i = next
		case r.buf[i] == '/' && i+1 < n && r.buf[i+1] == '/':
			i = r.scanLineComment(i)
		case r.buf[i] == '#':
			i = r.processPreprocessorDirective(i)
			if i < 0 || i >= n {
				r.finishFile()
				return
			}
		case (i == 0 || !isValidNameByte(r.buf, i-1)) && r.isAssemblyBlock(i):
			i = r.processAssemblyBlock(i)
			if i < 0 || i >= n {
				r.finishFile()
				return
			}
		case r.buf[i] == '"':
			// skip escaped quotes
			if i > 1 && r.buf[i-1] == '\\' && r.buf[i-2] != '\\' {
				i++
				continue
			}
			// skip a quote symbol that is actually inside a char literal
			if i > 1 && i+1 < n && r.buf[i-1] == '\'' && r.buf[i+1] == '\'' {
				i++
				continue
			}
			i = r.scanStringLiteral(i)
			if i < 0 || i >= n {
				r.finishFile()
				return
			}
		case r.buf[i] == ';' && i+1 < n && r.buf[i+1] == '}':
			// ";}" should have a space or newline between them
			r.logMessage("MISSING SPACE", "Space or newline should be inserted between ';' and '}'.", i)
			i++
		default:
			r.scanFormattingChecks(i)
			i++
		}
	}
	r.finishFile()
}

// scanBlockComment handles /*...*/ including translator comments and
// suppression regions. Returns the resume index and false when the comment
// never terminates.
func (r *Reviewer) scanBlockComment(i int) (int, bool) {
	n := len(r.buf)
	content := string(r.buf[i+2:])

	isQtComment := isQtTranslatorComment(content)
	r.contextCommentActive = isGettextTranslatorComment(content)

	if suppressed, suppressionEnd := isBlockSuppressed(content); suppressed {
		r.contextCommentActive = false
		r.clearSection(i, i+2+suppressionEnd)
		i += suppressionEnd
	}
	r.checkCommentSpace(i, 2)
	end := bytes.Index(r.buf[i:], []byte("*/"))
	if end == -1 {
		return i, false
	}
	end += i + 2
	r.clearSection(i, end)
	i = end
	if i >= n {
		return i, true
	}
	for i+1 < n && isSpaceByte(r.buf[i]) {
		i++
	}
	// look ahead: the translator comment only survives if the next call is
	// a translation function (Qt-style comments attach unconditionally)
	if r.contextCommentActive && !isQtComment {
		r.lookAheadForI18nCall(i)
	} else if isQtComment {
		r.contextCommentActive = true
	}
	return i, true
}

func (r *Reviewer) scanLineComment(i int) int {
	n := len(r.buf)
	content := string(r.buf[i+2:])

	isQtComment := isQtTranslatorComment(content)
	r.contextCommentActive = isGettextTranslatorComment(content)

	if suppressed, suppressionEnd := isBlockSuppressed(content); suppressed {
		r.contextCommentActive = false
		r.clearSection(i, i+2+suppressionEnd)
		i += suppressionEnd
	}
	r.checkCommentSpace(i, 2)
	i = r.clearToEndOfLine(i)
	for i+1 < n && isSpaceByte(r.buf[i]) {
		i++
	}
	if r.contextCommentActive && !isQtComment {
		// multiple consecutive '//' comment lines keep the context-comment
		// state alive
		for i+1 < n && r.buf[i] == '/' && r.buf[i+1] == '/' {
			r.checkCommentSpace(i, 2)
			i = r.clearToEndOfLine(i)
			for i+1 < n && isSpaceByte(r.buf[i]) {
				i++
			}
		}
		r.lookAheadForI18nCall(i)
	} else if isQtComment {
		r.contextCommentActive = true
	}
	return i
}

func (r *Reviewer) clearToEndOfLine(i int) int {
	end := i
	for end < len(r.buf) && r.buf[end] != '\n' && r.buf[end] != '\r' {
		end++
	}
	r.clearSection(i, end)
	return end
}

// checkCommentSpace records a comments-missing-space entry for //X or /*X
// where X is alphanumeric ("//------" banners are OK).
func (r *Reviewer) checkCommentSpace(i, markerLen int) {
	if !r.style.has(CheckSpaceAfterComment) {
		return
	}
	j := i + markerLen
	if j < len(r.buf) && isValidNameByte(r.buf, j) && r.buf[j] != '-' {
		r.results.CommentsMissingSpace = append(r.results.CommentsMissingSpace, StringEntry{
			Usage: Usage{Kind: UsageOrphan},
			File:  r.fileName,
			Pos:   r.pos(i),
		})
	}
}

// lookAheadForI18nCall keeps the context-comment flag only when the next
// call in the buffer is a translation function.
func (r *Reviewer) lookAheadForI18nCall(i int) {
	openingParen := bytes.IndexByte(r.buf[i:], '(')
	if openingParen == -1 {
		return
	}
	name := strings.TrimSpace(string(r.buf[i : i+openingParen]))
	r.contextCommentActive = isI18nFunction(removeDecorations(name))
}

// scanStringLiteral processes the literal whose opening quote is at i,
// including raw strings and multi-piece joining, then hands it to the
// classifier. Returns the resume index.
func (r *Reviewer) scanStringLiteral(i int) int {
	n := len(r.buf)
	quotePos := i

	isRawString := false
	rawMarker := byte('R')
	startPos := i - 1
	if startPos >= 0 && isRawStringMarker(r.buf[startPos]) {
		rawMarker = r.buf[startPos]
		isRawString = true
		startPos--
	}
	// triple quote (C#-like syntax): treat as raw
	if i+2 < n && r.buf[i+1] == '"' && r.buf[i+2] == '"' && !isRawString {
		rawMarker = '"'
		isRawString = true
	}
	// step back over wide, u16, or u32 prefixes
	if startPos >= 0 && (r.buf[startPos] == 'L' || r.buf[startPos] == 'u' || r.buf[startPos] == 'U') {
		startPos--
	}
	// step back over the UTF-8 'u8' prefix
	if startPos > 0 && r.buf[startPos] == '8' && r.buf[startPos-1] == 'u' {
		startPos -= 2
	}
	// ...and spaces in front of the quote
	for startPos > 0 && isSpaceByte(r.buf[startPos]) {
		startPos--
	}

	var bs backscanResult
	if startPos >= 0 && isValidNameByte(r.buf, startPos) {
		// a name character right in front of the quote: this is likely a
		// #define'd variable
		nameStart := startPos
		for nameStart > 0 && isValidNameByte(r.buf, nameStart-1) {
			nameStart--
		}
		bs.variable.Name = string(r.buf[nameStart : startPos+1])
		bs.namePos = nameStart
	} else if startPos >= 0 {
		bs = r.readVarOrFunctionName(startPos)
	}

	contentStart := i + 1
	var contentEnd, resume int
	if isRawString {
		var ok bool
		contentStart, contentEnd, resume, ok = r.rawStringBounds(i, rawMarker)
		if !ok {
			r.logMessage(`R"`, "Unterminated raw string literal.", i)
			return -1
		}
	} else {
		closeQuote, ok := r.findStringEnd(contentStart)
		if !ok {
			r.logMessage(`"`, "Unterminated string literal.", i)
			return -1
		}
		contentEnd = closeQuote
		resume = closeQuote + 1
	}

	next := resume
	for next+1 < n && isSpaceByte(r.buf[next]) {
		next++
	}
	isFollowedByComma := next < n && r.buf[next] == ','

	r.processQuote(quotePos, contentStart, contentEnd, bs, isFollowedByComma)
	// the classifier cleared the content; blank the quotes and prefixes too
	r.clearSection(quotePos, contentStart)
	r.clearSection(contentEnd, resume)
	return resume
}

// rawStringBounds resolves the content bounds of a raw literal. The marker
// decides the dialect: 'R' is a C++ raw string with an optional delimiter
// (the delimiter, not the naive '"', terminates it), '"' is a triple-quoted
// string, '@' is a C# verbatim string with doubled-quote escapes.
func (r *Reviewer) rawStringBounds(quotePos int, marker byte) (contentStart, contentEnd, resume int, ok bool) {
	buf := r.buf
	n := len(buf)
	switch marker {
	case 'R':
		j := quotePos + 1
		delimStart := j
		for j < n && buf[j] != '(' && buf[j] != '\n' && j-delimStart <= 16 {
			j++
		}
		if j >= n || buf[j] != '(' {
			return 0, 0, 0, false
		}
		delim := string(buf[delimStart:j])
		contentStart = j + 1
		closing := ")" + delim + `"`
		end := bytes.Index(buf[contentStart:], []byte(closing))
		if end == -1 {
			return 0, 0, 0, false
		}
		contentEnd = contentStart + end
		return contentStart, contentEnd, contentEnd + len(closing), true
	case '"':
		contentStart = quotePos + 3
		end := bytes.Index(buf[contentStart:], []byte(`"""`))
		if end == -1 {
			return 0, 0, 0, false
		}
		contentEnd = contentStart + end
		return contentStart, contentEnd, contentEnd + 3, true
	default: // '@'
		contentStart = quotePos + 1
		j := contentStart
		for j < n {
			if buf[j] == '"' {
				if j+1 < n && buf[j+1] == '"' {
					j += 2
					continue
				}
				return contentStart, j, j + 1, true
			}
			j++
		}
		return 0, 0, 0, false
	}
}

// findStringEnd locates the closing quote of a conventional literal,
// stepping over escaped quotes and joining adjacent pieces separated by
// whitespace, comments, line continuations, and integer printf formatter
// macros.
func (r *Reviewer) findStringEnd(i int) (closeQuote int, ok bool) {
	buf := r.buf
	n := len(buf)
	pos := i
	for {
		idx := bytes.IndexByte(buf[pos:], '"')
		if idx == -1 {
			return 0, false
		}
		end := pos + idx
		// watch out for escaped quotes; an even run of slashes in front of
		// the quote belongs to the text, not the quote
		slashes := 0
		for j := end - 1; j >= 0 && buf[j] == '\\'; j-- {
			slashes++
		}
		if slashes%2 != 0 {
			pos = end + 1
			continue
		}
		// see if there is more to this string on another line
		j := end + 1
		for j < n && isSpaceByte(buf[j]) {
			j++
		}
		// a '\' at the end of the line: step over it and restart skipping
		// spaces on the next line
		if j+1 < n && buf[j] == '\\' && (buf[j+1] == '\r' || buf[j+1] == '\n') {
			r.clearSection(j, j+1)
			j++
			for j < n && isSpaceByte(buf[j]) {
				j++
			}
		} else if j+1 < n && buf[j] == '/' && buf[j+1] == '/' {
			// step over comments at the end of the line
			j = r.clearToEndOfLine(j)
			for j < n && isSpaceByte(buf[j]) {
				j++
			}
		} else if j+1 < n && buf[j] == '/' && buf[j+1] == '*' {
			if blockEnd := bytes.Index(buf[j:], []byte("*/")); blockEnd != -1 {
				r.clearSection(j, j+blockEnd+2)
				j += blockEnd + 2
				for j < n && isSpaceByte(buf[j]) {
					j++
				}
			}
		}
		if j < n && buf[j] == '"' {
			pos = j + 1
			continue
		}
		if j+1 < n && buf[j] == 'L' && buf[j+1] == '"' {
			pos = j + 2
			continue
		}
		// step over a PRIu64-family macro between two printf string pieces;
		// the suffix match is exact, so a PRIu46 splits the string
		macroEnd := j
		for macroEnd < n && isValidNameByte(buf, macroEnd) {
			macroEnd++
		}
		if macroEnd > j && intPrintfMacroRE.Match(buf[j:macroEnd]) {
			r.clearSection(j, macroEnd)
			j = macroEnd
			for j < n && isSpaceByte(buf[j]) {
				j++
			}
			if j < n && buf[j] == '"' {
				pos = j + 1
				continue
			}
		} else if j < n && buf[j] == '\\' {
			scanAhead := j + 1
			for scanAhead < n && (buf[scanAhead] == '\n' || buf[scanAhead] == '\r') {
				scanAhead++
			}
			if scanAhead < n && buf[scanAhead] == '"' {
				r.clearSection(j, j+1)
				pos = scanAhead + 1
				continue
			}
		}
		return end, true
	}
}

// scanFormattingChecks handles the standalone character checks that don't
// involve literals.
func (r *Reviewer) scanFormattingChecks(i int) {
	c := r.buf[i]
	switch {
	case r.style.has(CheckTabs) && c == '\t':
		r.results.Tabs = append(r.results.Tabs, StringEntry{
			Usage: Usage{Kind: UsageOrphan},
			File:  r.fileName,
			Pos:   r.pos(i),
		})
	case (r.style.has(CheckLineWidth) || r.style.has(CheckTrailingSpaces)) && (c == '\n' || c == '\r') && i > 0:
		prevNewline := strings.LastIndexAny(r.orig[:i], "\n\r")
		lineStart := prevNewline + 1
		line := r.orig[lineStart:i]
		if r.style.has(CheckTrailingSpaces) && strings.HasSuffix(line, " ") {
			trimmed := strings.TrimRight(line, " ")
			r.results.TrailingSpaces = append(r.results.TrailingSpaces, StringEntry{
				Text:  strings.TrimLeft(trimmed, " \t"),
				Usage: Usage{Kind: UsageOrphan},
				File:  r.fileName,
				Pos:   r.pos(lineStart + len(trimmed)),
			})
		}
		// wide raw strings (an "LR" anywhere on the line) and long bitmasks
		// are awkward to split over lines, so don't warn about those
		if r.style.has(CheckLineWidth) && len(line) > r.opts.MaxLineLength &&
			!strings.Contains(line, "LR") && !strings.ContainsRune(line, '|') {
			display := line
			if len(display) > 32 {
				display = display[:32]
			}
			r.results.WideLines = append(r.results.WideLines, StringEntry{
				Text:  display + "...",
				Usage: Usage{Kind: UsageOrphan, Value: strconv.Itoa(len(line))},
				File:  r.fileName,
				Pos:   r.pos(i),
			})
		}
	}
}

// finishFile reviews the (cleared) working copy once more for fingerprints
// and runs the whole-buffer sweeps.
func (r *Reviewer) finishFile() {
	working := string(r.buf)
	if r.wxInfo.appInit == nil {
		foundImplApp := strings.Index(working, "wxIMPLEMENT_APP")
		foundOnInit := strings.Index(working, "::OnInit()")
		if foundImplApp != -1 && foundOnInit != -1 {
			entry := StringEntry{
				Usage: Usage{Kind: UsageFunction, Value: "OnInit()"},
				File:  r.fileName,
				Pos:   r.pos(foundOnInit),
			}
			r.wxInfo.appInit = &entry
		}
	}
	if strings.Contains(working, "wxUILocale::UseDefault()") {
		r.wxInfo.uiLocaleInitialized = true
	}
	if strings.Contains(working, "wxLocale") {
		r.wxInfo.wxLocaleInitialized = true
	}

	r.loadIDAssignments(working)
	r.loadDeprecatedFunctions(working)
	r.loadSuspectI18NUsage(working)

	r.fileName = ""
	r.orig = ""
	r.buf = nil
}
