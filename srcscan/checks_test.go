package srcscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStringAmbiguous(t *testing.T) {
	r := NewReviewer(Options{Style: CheckAll})

	ambiguous := func(s string) func(*testing.T) {
		return func(t *testing.T) {
			assert.True(t, r.isStringAmbiguous(s), "expected ambiguous: %q", s)
		}
	}
	clear := func(s string) func(*testing.T) {
		return func(t *testing.T) {
			assert.False(t, r.isStringAmbiguous(s), "expected clear: %q", s)
		}
	}

	// single cryptic tokens
	t.Run("", ambiguous("configuration_export_manifest_v2"))
	t.Run("", ambiguous("SAVE/LOAD:NOW!"))
	t.Run("", ambiguous("VERSION"))
	// placeholders
	t.Run("", ambiguous("enter #### here"))
	t.Run("", ambiguous("value XXXX set"))
	// printf thresholds: >=3 commands, >=2 with len<16, >=1 with len<10
	t.Run("", ambiguous("%s %d %s extra"))
	t.Run("", ambiguous("%s-%d"))
	t.Run("", ambiguous("%s: %d"))
	// positional commands
	t.Run("", ambiguous("%1 %2 %3 pieces"))
	// multiple abbreviations
	t.Run("", ambiguous("incl. taxes and excl. shipping"))

	// self-explanatory or labeled strings
	t.Run("", clear("Save"))
	t.Run("", clear("OK"))
	t.Run("", clear("N/A"))
	t.Run("", clear("&Open"))
	t.Run("", clear("Print..."))
	t.Run("", clear("Name: %s"))
	t.Run("", clear("%s of %d"))
	t.Run("", clear("Page %d of %d is being printed right now"))
	t.Run("", clear("Please choose a file to open"))
}

func TestFauxPlural(t *testing.T) {
	assert.True(t, isStringFauxPlural("%d file(s) copied"))
	assert.False(t, isStringFauxPlural("%d files copied"))

	// contexted strings are expanded by the framework, so they are exempt
	entry := StringEntry{Text: "%d file(s)", Usage: Usage{HasContext: true}}
	assert.False(t, isEntryFauxPlural(entry))
	entry.Usage.HasContext = false
	assert.True(t, isEntryFauxPlural(entry))
}

func TestMultipart(t *testing.T) {
	assert.True(t, isStringMultipart(`First  Second  Third  Fourth`))
	assert.True(t, isStringMultipart(`a\tb\tc\td`))
	assert.False(t, isStringMultipart("One message with  a double space"))
	assert.False(t, isStringMultipart("Plain sentence"))
}

func TestArticleAndPronoun(t *testing.T) {
	assert.True(t, isStringArticleIssue("Delete a %s now"))
	assert.True(t, isStringArticleIssue("Open the {0} file"))
	assert.False(t, isStringArticleIssue("Delete %s now"))

	assert.True(t, isStringPronoun("he"))
	assert.True(t, isStringPronoun(" She "))
	assert.False(t, isStringPronoun("they are here"))
}

func TestConcatenationAndComparisonOperators(t *testing.T) {
	plus := StringEntry{Usage: Usage{Variable: VariableInfo{Operator: "+"}}}
	ternary := StringEntry{Usage: Usage{Variable: VariableInfo{Operator: "?"}}}
	equals := StringEntry{Usage: Usage{Variable: VariableInfo{Operator: "=="}}}
	none := StringEntry{}

	assert.True(t, isConcatenatedOperator(plus))
	assert.True(t, isConcatenatedOperator(ternary))
	assert.False(t, isConcatenatedOperator(equals))
	assert.False(t, isConcatenatedOperator(none))

	assert.True(t, hasComparisonOperator(equals))
	assert.False(t, hasComparisonOperator(plus))
}
