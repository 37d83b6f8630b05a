package srcscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldWidth(t *testing.T) {
	assert.Equal(t, "123", FoldWidth("１２３"))
	assert.Equal(t, "abc 123", FoldWidth("abc 123"))
	assert.Equal(t, "カタカナ", WidenHalfwidth("ｶﾀｶﾅ"))
}

func TestContainsHalfwidth(t *testing.T) {
	assert.True(t, containsHalfwidth("ｶﾀｶﾅ"))
	assert.False(t, containsHalfwidth("カタカナ"))
	assert.False(t, containsHalfwidth("plain ascii"))
}

func TestRemovePrintfCommands(t *testing.T) {
	assert.Equal(t, "Printing  pages", removePrintfCommands("Printing %d pages"))
	assert.Equal(t, " of ", removePrintfCommands("%s of %d"))
	// %% is a literal percent, not a command
	assert.Equal(t, "100%% done", removePrintfCommands("100%% done"))
}

func TestLoadCppPrintfCommands(t *testing.T) {
	cmds := loadCppPrintfCommands("%d of %s at %f")
	assert.Len(t, cmds, 3)

	assert.Empty(t, loadCppPrintfCommands("no commands here"))
	// doubled percents negate the command
	assert.Empty(t, loadCppPrintfCommands("75%%d"))
}

func TestLoadPositionalCommands(t *testing.T) {
	assert.Len(t, loadPositionalCommands("%1 of %2"), 2)
	assert.Len(t, loadPositionalCommands("%L1 items"), 1)
	assert.Empty(t, loadPositionalCommands("%s only"))
}

func TestIsFileAddress(t *testing.T) {
	assert.True(t, isFileAddress("https://example.org/page"))
	assert.True(t, isFileAddress(`C:\temp\file.log`))
	assert.True(t, isFileAddress("www.example.org.uk"))
	assert.True(t, isFileAddress("notes.docx"))
	assert.False(t, isFileAddress("Hello there"))
	assert.False(t, isFileAddress(""))
}

func TestSurroundingSpaces(t *testing.T) {
	assert.True(t, hasSurroundingSpaces("trailing "))
	assert.True(t, hasSurroundingSpaces(" leading"))
	assert.True(t, hasSurroundingSpaces(`tab escape\t`))
	assert.False(t, hasSurroundingSpaces("clean"))
	assert.False(t, hasSurroundingSpaces(""))
}
