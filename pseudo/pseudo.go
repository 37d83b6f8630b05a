// Package pseudo generates pseudo-translated messages for layout and
// encoding testing. Placeholders (printf commands and %1-style positional
// arguments) survive the transformation untouched so the program can still
// format the result.
package pseudo

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Method selects how source characters are mutated.
type Method int

const (
	// None leaves characters as-is (width/bracket/tracking decorations
	// still apply).
	None Method = iota
	// Uppercase maps every letter to uppercase.
	Uppercase
	// EuropeanCharacters swaps letters for accented equivalents.
	EuropeanCharacters
	// FillWithXes replaces every uppercase letter with 'X' and every other
	// letter with 'x'.
	FillWithXes
)

var placeholderRE = regexp.MustCompile(`%(%|[0-9]+\$)?[-+ #0]*[0-9*]*(\.[0-9*]+)?(h|hh|l|ll|L|z|j|t|I32|I64)?[a-zA-Z]|%L?[0-9]+|\{[0-9]+\}`)

var europeanLetters = map[rune]rune{
	'a': 'å', 'A': 'Å', 'b': 'ƀ', 'B': 'ß', 'c': 'ç', 'C': 'Ç',
	'd': 'đ', 'D': 'Ð', 'e': 'é', 'E': 'É', 'f': 'ƒ', 'F': 'Ƒ',
	'g': 'ğ', 'G': 'Ğ', 'h': 'ĥ', 'H': 'Ĥ', 'i': 'í', 'I': 'Í',
	'j': 'ĵ', 'J': 'Ĵ', 'k': 'ķ', 'K': 'Ķ', 'l': 'ł', 'L': 'Ł',
	'n': 'ñ', 'N': 'Ñ', 'o': 'ø', 'O': 'Ø', 'r': 'ř', 'R': 'Ř',
	's': 'š', 'S': 'Š', 't': 'ŧ', 'T': 'Ŧ', 'u': 'ü', 'U': 'Ü',
	'w': 'ŵ', 'W': 'Ŵ', 'y': 'ý', 'Y': 'Ý', 'z': 'ž', 'Z': 'Ž',
}

// Transformer mutates catalog messages. Not safe for concurrent use; the
// tracking counter is per-transformer state.
type Transformer struct {
	method          Method
	widthIncrease   int
	addBrackets     bool
	addTracking     bool
	trackingCounter int
}

func NewTransformer(method Method, widthIncrease int, addBrackets, addTracking bool) *Transformer {
	return &Transformer{
		method:        method,
		widthIncrease: widthIncrease,
		addBrackets:   addBrackets,
		addTracking:   addTracking,
	}
}

func (t *Transformer) mutateRune(r rune) rune {
	switch t.method {
	case Uppercase:
		return unicode.ToUpper(r)
	case EuropeanCharacters:
		if mapped, ok := europeanLetters[r]; ok {
			return mapped
		}
		return r
	case FillWithXes:
		if unicode.IsLetter(r) {
			if unicode.IsUpper(r) {
				return 'X'
			}
			return 'x'
		}
		return r
	default:
		return r
	}
}

// Transform pseudo-translates one message.
func (t *Transformer) Transform(msg string) string {
	var out strings.Builder
	last := 0
	for _, loc := range placeholderRE.FindAllStringIndex(msg, -1) {
		out.WriteString(strings.Map(t.mutateRune, msg[last:loc[0]]))
		out.WriteString(msg[loc[0]:loc[1]])
		last = loc[1]
	}
	out.WriteString(strings.Map(t.mutateRune, msg[last:]))
	result := out.String()

	if t.widthIncrease > 0 {
		extra := (len([]rune(msg))*t.widthIncrease + 99) / 100
		result += strings.Repeat("-", extra)
	}
	if t.addBrackets {
		result = "[" + result + "]"
	}
	if t.addTracking {
		t.trackingCounter++
		result = strconv.Itoa(t.trackingCounter) + ":" + result
	}
	return result
}
