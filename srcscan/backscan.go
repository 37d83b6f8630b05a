package srcscan

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"
)

// Character classes for identifier recovery. xid gives Unicode identifier
// semantics, extended with the ASCII glue C-family member access drags
// along.

func isValidNameRune(r rune) bool {
	return r == '_' || xid.Continue(r)
}

func isValidNameByte(buf []byte, i int) bool {
	if i < 0 || i >= len(buf) {
		return false
	}
	r, _ := utf8.DecodeRune(buf[i:])
	return isValidNameRune(r)
}

// isValidNameByteEx additionally accepts the accessor and namespace glue
// (::, ., ->, &) so "wxString::Format", "str.Format" and "obj->Name" read
// as one token; decoration removal strips the glue afterwards.
func isValidNameByteEx(buf []byte, i int) bool {
	if i < 0 || i >= len(buf) {
		return false
	}
	switch buf[i] {
	case ':', '.', '>', '-', '&':
		return true
	}
	return isValidNameByte(buf, i)
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// removeDecorations normalizes a recovered identifier: trailing reference
// markers, template arguments (keeping the element type for shared_ptr
// construction), leading namespace colons, and member-access prefixes.
func removeDecorations(s string) string {
	for len(s) > 0 && s[len(s)-1] == '&' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '>' {
		if templateStart := strings.LastIndexByte(s, '<'); templateStart != -1 {
			head := s[:templateStart]
			// if constructing a shared_ptr, use the type it is constructing
			if head == "std::make_shared" || head == "make_shared" ||
				head == "std::shared_ptr" || head == "shared_ptr" {
				s = s[templateStart+1 : len(s)-1]
			} else {
				// use the root type with template info stripped off
				s = s[:templateStart]
			}
		}
	}
	// strip colons in front (the common practice of typing "::" for the
	// global namespace) and any accessor remnants ('>' from "->", '.')
	s = strings.TrimLeft(s, ":>.")
	// lop off the object from a member call ("str.Format" becomes "Format")
	if accessor := strings.IndexAny(s, ">."); accessor != -1 {
		s = s[accessor+1:]
	}
	return s
}

// extractBaseFunction returns the trailing identifier of a qualified name
// ("QObject::tr" gives "tr").
func extractBaseFunction(s string) string {
	if s == "" {
		return ""
	}
	if r, _ := utf8.DecodeLastRuneInString(s); !isValidNameRune(r) {
		return ""
	}
	for i := len(s) - 1; i >= 0; i-- {
		if !isValidNameRune(rune(s[i])) && s[i] != '_' {
			return s[i+1:]
		}
	}
	return s
}

func isKeyword(name string) bool { return keywords.contains(name) }

func isVariableTypeDecorator(name string) bool { return variableTypeDecorators.contains(name) }

// backscanResult is everything readVarOrFunctionName recovers for one quote.
type backscanResult struct {
	functionName      string
	variable          VariableInfo
	deprecatedMacro   string
	parameterPosition int
	// namePos is the buffer offset of the recovered name; the classifier
	// backscans again from here for the suspect-l10n-usage check.
	namePos int
}

// readVarOrFunctionName walks leftward from the character before an opening
// quote and recovers the enclosing call or assignment. Iterative with two
// counters (unmatched close-paren and close-brace); the only recursion is
// the lookup of the call enclosing an i18n function.
func (r *Reviewer) readVarOrFunctionName(startPos int) backscanResult {
	buf := r.buf
	res := backscanResult{namePos: startPos}
	closeParenCount := 0
	closeBraceCount := 0
	quoteWrappedInCTOR := false

	readOperator := func(start, operatorEnd int) {
		if start < operatorEnd {
			for start+1 < operatorEnd && isSpaceByte(buf[start]) {
				start++
			}
			res.variable.Operator = strings.TrimSpace(string(buf[start:operatorEnd]))
		}
	}

	// reads the identifier ending at pos (inclusive), returning its start
	readNameLeft := func(pos int) int {
		namePos := pos
		for namePos > 0 && isValidNameByteEx(buf, namePos) {
			namePos--
		}
		if !isValidNameByteEx(buf, namePos) {
			namePos++
		}
		return namePos
	}

	loadVarType := func() {
		res.variable.Type = ""
		if res.namePos <= 0 {
			return
		}
		pos := res.namePos - 1
		for pos > 0 && isSpaceByte(buf[pos]) {
			pos--
		}
		typeEnd := pos + 1
		// if a template, step backwards over the arguments to the root type
		if typeEnd-1 > 0 && buf[typeEnd-1] == '>' {
			// a pointer accessor (->) won't be a variable assignment
			if typeEnd-2 > 0 && buf[typeEnd-2] == '-' {
				return
			}
			openingAngle := strings.LastIndexByte(string(buf[:pos+1]), '<')
			if openingAngle == -1 {
				r.logMessage("Template parse error", "Unable to find opening < for template variable.", pos)
				return
			}
			pos = openingAngle - 1
		}
		for pos > 0 && (isValidNameByteEx(buf, pos) || buf[pos] == '&') {
			pos--
		}
		if !isValidNameByteEx(buf, pos) {
			pos++
		}
		res.namePos = pos
		typ := string(buf[pos:typeEnd])
		// make sure the variable type is a word, not something like "<<"
		if typ != "" {
			if first, _ := utf8.DecodeRuneInString(typ); !unicode.IsLetter(first) {
				typ = ""
			}
		}
		res.variable.Type = removeDecorations(typ)
	}

	readVarType := func() {
		loadVarType()
		if isVariableTypeDecorator(res.variable.Type) {
			loadVarType()
		}
		// ignore case labels, else commands, etc.
		if isKeyword(res.variable.Type) ||
			(len(res.variable.Type) > 0 && res.variable.Type[len(res.variable.Type)-1] == ':') {
			res.variable.Type = ""
		}
	}

	for startPos > 0 {
		c := buf[startPos]
		switch {
		case c == ')':
			closeParenCount++
			startPos--
		case c == '}':
			closeBraceCount++
			startPos--
		case c == '(' || c == '{':
			currentOpeningChar := c
			startPos--
			if currentOpeningChar == '(' {
				closeParenCount--
			} else {
				closeBraceCount--
			}
			// just closing a nested call inside the parameter list; keep
			// going to find the outer call this string really belongs to
			if closeParenCount >= 0 && closeBraceCount >= 0 {
				continue
			}
			for startPos > 0 && isSpaceByte(buf[startPos]) {
				startPos--
			}
			res.namePos = readNameLeft(startPos)
			res.functionName = string(buf[res.namePos : startPos+1])
			hasExtraneousParens := res.functionName == ""
			res.functionName = removeDecorations(res.functionName)
			// wrapped in a string CTOR (e.g., std::wstring): skip it and
			// keep going backwards; no name at all means extraneous
			// parentheses, also keep going
			if hasExtraneousParens || ctorsToIgnore.contains(res.functionName) {
				if res.namePos < startPos {
					startPos = res.namePos
				}
				// the current open parenthesis isn't relevant anymore
				if currentOpeningChar == '(' {
					closeParenCount = 0
				} else {
					closeBraceCount = 0
				}
				if _, ok := deprecatedStringMacros[res.functionName]; ok {
					res.deprecatedMacro = res.functionName
				}
				res.functionName = ""
				// we should now be looking at a + operator, comma, ( or {
				// in front of this (unless we already are, from stepping
				// back over an empty parenthesis)
				if buf[startPos] != ',' && buf[startPos] != '+' &&
					buf[startPos] != '&' && buf[startPos] != '=' {
					quoteWrappedInCTOR = true
				}
				if !hasExtraneousParens {
					startPos--
				}
				continue
			}
			// construction of a variable type that takes non-localizable
			// strings, skip it entirely
			if variableTypesToIgnore.contains(res.functionName) {
				return res
			}
			if res.functionName != "" {
				// see if the "function" is actually a CTOR of a typed variable
				if res.variable.Name == "" &&
					!localizationFunctions.contains(res.functionName) &&
					!nonLocalizableFunctions.contains(res.functionName) &&
					!internalFunctions.contains(res.functionName) &&
					!logFunctions.contains(res.functionName) &&
					!isKeyword(res.functionName) {
					saved := res.namePos
					readVarType()
					if res.variable.Type != "" {
						res.variable.Name = res.functionName
						res.functionName = ""
					} else {
						res.namePos = saved
					}
				}
				// if the call is being compared or assigned, record that
				// for later analyses
				if startPos-1 > 0 {
					startPos--
					operatorEnd := startPos + 1
					for startPos > 0 && (isSpaceByte(buf[startPos]) || buf[startPos] == '=' || buf[startPos] == '!') {
						startPos--
					}
					readOperator(startPos+1, operatorEnd)
				}
				if res.functionName != "" && isI18nFunction(res.functionName) {
					outer := r.readVarOrFunctionName(startPos)
					if r.style.has(CheckLiteralL10NStringComparison) &&
						searchOrComparisonFunctions.contains(outer.functionName) {
						r.results.LiteralL10NBeingCompared = append(r.results.LiteralL10NBeingCompared,
							StringEntry{
								Text:  outer.functionName,
								Usage: Usage{Kind: UsageFunction, Value: outer.functionName},
								File:  r.fileName,
								Pos:   r.pos(startPos),
							})
					}
				}
				return res
			}
		// variable assignments (comparisons (>=, <=, ==, !=) are handled
		// as though this string is a parameter to a function)
		case c == '=' && startPos+1 < len(buf) && buf[startPos+1] != '=' &&
			buf[startPos-1] != '=' && buf[startPos-1] != '!' &&
			buf[startPos-1] != '>' && buf[startPos-1] != '<':
			operatorEnd := startPos + 1
			startPos--
			// skip spaces (and the '+' of "+=")
			for startPos > 0 && (isSpaceByte(buf[startPos]) || buf[startPos] == '+') {
				startPos--
			}
			readOperator(startPos+1, operatorEnd)
			// skip array subscript
			if startPos > 0 && buf[startPos] == ']' {
				for startPos > 0 && buf[startPos] != '[' {
					startPos--
				}
				startPos--
				for startPos > 0 && isSpaceByte(buf[startPos]) {
					startPos--
				}
			}
			res.namePos = readNameLeft(startPos)
			res.variable.Name = string(buf[res.namePos : startPos+1])
			readVarType()
			if res.variable.Name != "" {
				return res
			}
		case isSpaceByte(c):
			startPos--
		case quoteWrappedInCTOR && (c == ',' || c == '+' || c == '&'):
			quoteWrappedInCTOR = false
		case quoteWrappedInCTOR:
			// a bare CTOR expression statement: the wrapper itself is the
			// enclosing context, so stop here
			return res
		case c == '<':
			// << stream operator; skip over it, and over one ')' argument
			// list in front of it, to allow gDebug() << "message". Only one
			// parenthesized group is stepped over, so deeper nesting on the
			// left of << can misidentify the streamer.
			startPos--
			if startPos > 0 && buf[startPos] == '<' {
				isFunctionCall := false
				startPos--
				for startPos > 0 && isSpaceByte(buf[startPos]) {
					startPos--
				}
				if startPos > 0 && buf[startPos] == ')' {
					startPos--
					for startPos > 0 && buf[startPos] != '(' {
						startPos--
					}
					if startPos > 0 {
						startPos--
					}
					isFunctionCall = true
				}
				res.namePos = readNameLeft(startPos)
				if isFunctionCall {
					res.functionName = string(buf[res.namePos : startPos+1])
					// the string object's << operator is being called here,
					// not the localization function itself
					if localizationFunctions.contains(res.functionName) ||
						nonLocalizableFunctions.contains(res.functionName) {
						res.functionName = ""
					}
				} else {
					res.variable.Name = string(buf[res.namePos : startPos+1])
				}
				return res
			}
		default:
			if c == ',' {
				res.parameterPosition++
			} else if c == '+' || c == '?' || c == ':' {
				readOperator(startPos, startPos+1)
			}
			startPos--
		}
	}
	return res
}
