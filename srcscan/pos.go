package srcscan

import "strings"

// dedicated type for reference to file, in case we need to refactor this later..
type FileRef string

type Pos struct {
	File      FileRef
	Line, Col int
}

// lineAndColumn converts a byte offset in the original buffer into a
// 1-indexed line/column pair. The scanner remembers the original text for
// the whole file, so a linear scan here is bounded by the file size and only
// runs when an entry is actually recorded.
func lineAndColumn(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	line = strings.Count(text[:offset], "\n") + 1
	lastNewline := strings.LastIndexByte(text[:offset], '\n')
	col = offset - lastNewline // lastNewline == -1 gives 1-indexed column from start
	return line, col
}
