package srcscan

import (
	"bytes"
	"strings"
)

// clearSection blanks a handled region of the working buffer so later
// whole-buffer passes don't re-trip on it. Newlines survive so offsets keep
// mapping to the right line.
func (r *Reviewer) clearSection(from, to int) {
	if from < 0 {
		from = 0
	}
	if to > len(r.buf) {
		to = len(r.buf)
	}
	for i := from; i < to; i++ {
		if r.buf[i] != '\n' && r.buf[i] != '\r' {
			r.buf[i] = ' '
		}
	}
}

func (r *Reviewer) skipSpaces(i int) int {
	for i < len(r.buf) && isSpaceByte(r.buf[i]) {
		i++
	}
	return i
}

// findMatchingDirective finds the directive ("#elif" or "#endif") that
// closes the "#if"-family block starting after `start`, accounting for
// nested #if blocks. Returns the index just past the closing directive
// keyword, or -1.
func findMatchingDirective(buf []byte, start int, close string) int {
	depth := 0
	i := start
	for i < len(buf) {
		next := bytes.IndexByte(buf[i:], '#')
		if next == -1 {
			return -1
		}
		i += next
		rest := buf[i:]
		switch {
		case bytes.HasPrefix(rest, []byte("#endif")):
			if depth == 0 && close == "#endif" {
				return i + len("#endif")
			}
			if depth > 0 {
				depth--
			}
			i += len("#endif")
		case bytes.HasPrefix(rest, []byte("#elif")):
			if depth == 0 && close == "#elif" {
				return i + len("#elif")
			}
			i += len("#elif")
		case bytes.HasPrefix(rest, []byte("#if")):
			depth++
			i += len("#if")
		default:
			i++
		}
	}
	return -1
}

func findDebugSectionEnd(buf []byte, start int) int {
	closingElif := findMatchingDirective(buf, start, "#elif")
	closingEndif := findMatchingDirective(buf, start, "#endif")
	switch {
	case closingElif != -1 && closingEndif != -1:
		if closingElif < closingEndif {
			return closingElif
		}
		return closingEndif
	case closingElif != -1:
		return closingElif
	case closingEndif != -1:
		return closingEndif
	}
	return -1
}

// skipPreprocessorDefineBlock finds the end of debug-only (and
// ifndef-release-only) conditional sections for the caller to erase. i
// points just after the '#'. Returns the index past the block, or -1 when
// the directive is not one of those.
func (r *Reviewer) skipPreprocessorDefineBlock(i int) int {
	rest := r.buf[i:]
	readSymbol := func(offset int) (string, int) {
		j := r.skipSpaces(i + offset)
		return r.readNameAt(j)
	}
	if bytes.HasPrefix(rest, []byte("ifndef")) {
		symbol, end := readSymbol(len("ifndef"))
		// NDEBUG (i.e., release) is a standard symbol; if not defined,
		// this is a debug preprocessor section
		if symbol == "NDEBUG" || releaseSymbolRE.MatchString(symbol) {
			return findDebugSectionEnd(r.buf, end)
		}
		return -1
	}
	if bytes.HasPrefix(rest, []byte("ifdef")) {
		symbol, end := readSymbol(len("ifdef"))
		if debugSymbolRE.MatchString(symbol) {
			return findDebugSectionEnd(r.buf, end)
		}
		return -1
	}
	if bytes.HasPrefix(rest, []byte("if defined")) {
		symbol, end := readSymbol(len("if defined"))
		if debugSymbolRE.MatchString(symbol) {
			return findDebugSectionEnd(r.buf, end)
		}
		return -1
	}
	if bytes.HasPrefix(rest, []byte("if")) {
		symbol, end := readSymbol(len("if"))
		if debugLevelSymbolRE.MatchString(symbol) {
			return findDebugSectionEnd(r.buf, end)
		}
		return -1
	}
	return -1
}

func (r *Reviewer) readNameAt(i int) (string, int) {
	end := i
	for end < len(r.buf) && isValidNameByte(r.buf, end) {
		end++
	}
	return string(r.buf[i:end]), end
}

var preprocessorDirectives = []string{
	"include", "ifdef", "ifndef", "if", "else", "elif", "endif",
	"undef", "define", "error", "warning", "pragma",
}

// processPreprocessorDirective consumes the directive starting at the '#'
// at index i and returns the index to resume scanning from, or -1 at end
// of buffer.
func (r *Reviewer) processPreprocessorDirective(i int) int {
	originalStart := i
	if r.buf[i] == '#' {
		i++
	}
	// step over spaces between '#' and its directive (e.g., pragma)
	for i < len(r.buf) && (r.buf[i] == ' ' || r.buf[i] == '\t') {
		i++
	}
	if i >= len(r.buf) {
		return -1
	}

	if blockEnd := r.skipPreprocessorDefineBlock(i); blockEnd != -1 {
		r.clearSection(i, blockEnd)
		return blockEnd
	}

	directive := r.buf[i:]
	known := false
	for _, d := range preprocessorDirectives {
		if bytes.HasPrefix(directive, []byte(d)) {
			known = true
			break
		}
	}
	if !known {
		// unknown preprocessor, just skip the '#'
		return i
	}

	// consume to end of line, joining continuation lines
	end := i
	for end < len(r.buf) {
		if r.buf[end] == '\n' || r.buf[end] == '\r' {
			multiLine := false
			for backTrace := end - 1; backTrace > i; backTrace-- {
				if isSpaceByte(r.buf[backTrace]) {
					continue
				}
				multiLine = r.buf[backTrace] == '\\'
				break
			}
			if !multiLine {
				break
			}
		}
		end++
	}

	shouldClearSection := true
	// special parsing logic for #define sections
	// (review strings in here as best we can)
	if bytes.HasPrefix(directive, []byte("define")) {
		j := i + len("define")
		for j < len(r.buf) && (r.buf[j] == ' ' || r.buf[j] == '\t') {
			j++
		}
		if j >= len(r.buf) {
			return j
		}
		definedTerm, termEnd := r.readNameAt(j)
		j = termEnd
		if j < len(r.buf) {
			j++
		}
		for j < len(r.buf) && (r.buf[j] == ' ' || r.buf[j] == '\t' || r.buf[j] == '(') {
			j++
		}
		if j >= len(r.buf) {
			return j
		}
		possibleFunc, funcEnd := r.readNameAt(j)
		if funcEnd < len(r.buf) && r.buf[funcEnd] == '(' && ctorsToIgnore.contains(possibleFunc) {
			j = funcEnd + 1
		}
		switch {
		// #define'd variable followed by a quote? Process as a string variable.
		case j < len(r.buf) && (r.buf[j] == '"' || (j+1 < len(r.buf) && r.buf[j+1] == '"')):
			if r.buf[j] != '"' {
				j++
			}
			quoteEnd := findUnescapedByte(r.buf, j+1, '"')
			if quoteEnd > j {
				value := string(r.buf[j+1 : quoteEnd])
				r.processVariable(VariableInfo{Name: definedTerm}, value, j)
			}
		// example: #define VALUE height, #define VALUE 0x5
		// No open parentheses after the defined value--not a function.
		// Leave the assignment tail as-is for the variable-assignment
		// checks later.
		case end > j && !bytes.ContainsRune(r.buf[j:end], '('):
			shouldClearSection = false
		// ...or more like a #defined function, so let the main scan loop
		// deal with it (just strip out the preprocessor junk here)
		default:
			end = j
		}
	}
	if shouldClearSection {
		r.clearSection(originalStart, end)
	}
	return end
}

// findUnescapedByte returns the index of the next unescaped occurrence of c
// at or after i, or -1.
func findUnescapedByte(buf []byte, i int, c byte) int {
	for ; i < len(buf); i++ {
		if buf[i] != c {
			continue
		}
		slashes := 0
		for j := i - 1; j >= 0 && buf[j] == '\\'; j-- {
			slashes++
		}
		if slashes%2 == 0 {
			return i
		}
	}
	return -1
}

// isAssemblyBlock reports whether an inline-assembly keyword starts at i.
func (r *Reviewer) isAssemblyBlock(i int) bool {
	rest := r.buf[i:]
	for _, kw := range []string{"__asm__", "__asm", "asm"} {
		if bytes.HasPrefix(rest, []byte(kw)) && !isValidNameByte(r.buf, i+len(kw)) {
			return true
		}
	}
	return false
}

// processAssemblyBlock erases an asm/__asm/__asm__ block and returns the
// index to resume from, or -1 at end of buffer.
func (r *Reviewer) processAssemblyBlock(i int) int {
	originalStart := i
	rest := string(r.buf[i:])
	// GCC
	if strings.HasPrefix(rest, "asm") || strings.HasPrefix(rest, "__asm__") {
		if strings.HasPrefix(rest, "__asm__") {
			i += len("__asm__")
		} else {
			i += len("asm")
		}
		i = r.skipSpaces(i)
		for _, volatileKw := range []string{"__volatile__", "volatile"} {
			if strings.HasPrefix(string(r.buf[i:]), volatileKw) {
				i += len(volatileKw)
				i = r.skipSpaces(i)
				break
			}
		}
		if i < len(r.buf) && r.buf[i] == '(' {
			end := findMatchingCloseChar(r.buf, i+1, '(', ')')
			if end == -1 {
				r.logMessage("asm", "Missing closing ')' in asm block.", i)
				return i + 1
			}
			r.clearSection(originalStart, end+1)
			return end + 1
		}
		if i < len(r.buf) {
			end := i
			for end < len(r.buf) && r.buf[end] != '\n' && r.buf[end] != '\r' {
				end++
			}
			r.clearSection(originalStart, end+1)
			return end + 1
		}
		return -1
	}
	// MSVC
	if strings.HasPrefix(rest, "__asm") {
		i += len("__asm")
		i = r.skipSpaces(i)
		if i < len(r.buf) && r.buf[i] == '{' {
			end := findMatchingCloseChar(r.buf, i+1, '{', '}')
			if end == -1 {
				r.logMessage("__asm", "Missing closing '}' in __asm block.", i)
				return i + 1
			}
			r.clearSection(originalStart, end+1)
			return end + 1
		}
		if i < len(r.buf) {
			end := i
			for end < len(r.buf) && r.buf[end] != '\n' && r.buf[end] != '\r' {
				end++
			}
			r.clearSection(originalStart, end+1)
			return end + 1
		}
		return -1
	}
	return i + 1
}

// findMatchingCloseChar scans forward for the close matching one already
// open occurrence of open. Returns the index of the close, or -1.
func findMatchingCloseChar(buf []byte, i int, open, close byte) int {
	depth := 0
	for ; i < len(buf); i++ {
		switch buf[i] {
		case open:
			depth++
		case close:
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}
