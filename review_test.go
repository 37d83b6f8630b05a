package sprakvakt

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprakvakt/sprakvakt/srcscan"
)

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil))
	return logger
}

func defaultOptions() Options {
	return Options{Scan: srcscan.Options{Style: srcscan.CheckAll}}
}

func TestAnalyzeWalksSourceFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"ui/dialog.cpp":  {Data: []byte(`wxMessageBox(_("Hello, world!"));`)},
		"ui/dialog.h":    {Data: []byte(`void ShowGreeting();`)},
		"notes/todo.txt": {Data: []byte(`_("not a source file")`)},
	}
	session, err := Analyze(defaultOptions(), testLogger(), fsys)
	require.NoError(t, err)

	require.Len(t, session.Results.Localizable, 1)
	assert.Equal(t, srcscan.FileRef("ui/dialog.cpp"), session.Results.Localizable[0].File)
	assert.ElementsMatch(t, []string{"ui/dialog.cpp", "ui/dialog.h"}, session.ParsedFiles)
}

func TestAnalyzeMergesInPathOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"b.cpp": {Data: []byte(`tr("Beta message here");`)},
		"a.cpp": {Data: []byte(`tr("Alpha message here");`)},
		"c.cpp": {Data: []byte(`tr("Gamma message here");`)},
	}
	opts := defaultOptions()
	opts.Workers = 3
	session, err := Analyze(opts, testLogger(), fsys)
	require.NoError(t, err)

	require.Len(t, session.Results.Localizable, 3)
	assert.Equal(t, srcscan.FileRef("a.cpp"), session.Results.Localizable[0].File)
	assert.Equal(t, srcscan.FileRef("b.cpp"), session.Results.Localizable[1].File)
	assert.Equal(t, srcscan.FileRef("c.cpp"), session.Results.Localizable[2].File)
}

func TestAnalyzeBOMAndEncoding(t *testing.T) {
	fsys := fstest.MapFS{
		"bom.cpp":    {Data: append([]byte{0xEF, 0xBB, 0xBF}, []byte(`tr("With byte order mark");`)...)},
		"broken.cpp": {Data: []byte{'a', 0xFF, 0xFE, 'b'}},
	}
	session, err := Analyze(defaultOptions(), testLogger(), fsys)
	require.NoError(t, err)

	assert.Equal(t, []string{"bom.cpp"}, session.FilesWithBOM)
	assert.Equal(t, []string{"broken.cpp"}, session.NonUTF8Files)
	// the BOM is stripped before scanning, so the literal still comes out
	require.Len(t, session.Results.Localizable, 1)
	assert.Equal(t, "With byte order mark", session.Results.Localizable[0].Text)
}

func TestAnalyzeCallbackAbort(t *testing.T) {
	fsys := fstest.MapFS{
		"a.cpp": {Data: []byte(`tr("One message here");`)},
		"b.cpp": {Data: []byte(`tr("Two messages here");`)},
	}
	opts := defaultOptions()
	opts.Workers = 1
	var seen []string
	opts.Callback = func(index int, path string) bool {
		seen = append(seen, path)
		return false
	}
	session, err := Analyze(opts, testLogger(), fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.cpp"}, seen)
	assert.Empty(t, session.Results.Localizable)
}

func TestAnalyzeResetCallback(t *testing.T) {
	fsys := fstest.MapFS{
		"a.cpp": {Data: []byte(`int x = 1;`)},
		"b.cpp": {Data: []byte(`int y = 2;`)},
	}
	var total int
	opts := defaultOptions()
	opts.ResetCallback = func(fileCount int) { total = fileCount }
	_, err := Analyze(opts, testLogger(), fsys)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestSessionErr(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.cpp": {Data: []byte("/* never closed\n")},
	}
	session, err := Analyze(defaultOptions(), testLogger(), fsys)
	require.NoError(t, err)
	require.True(t, session.HasErrors())
	assert.Contains(t, session.Err().Error(), "bad.cpp:1:1")
}

func TestReportRows(t *testing.T) {
	fsys := fstest.MapFS{
		"app.cpp": {Data: []byte(`message = "Please choose a file to open";`)},
	}
	session, err := Analyze(defaultOptions(), testLogger(), fsys)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, session.Report(&buf, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "File\tLine\tColumn\tValue\tExplanation\tWarningID", lines[0])

	var found bool
	for _, line := range lines[1:] {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 6)
		if fields[5] == "[notL10NAvailable]" {
			found = true
			assert.Equal(t, "app.cpp", fields[0])
			assert.Equal(t, `"Please choose a file to open"`, fields[3])
		}
	}
	assert.True(t, found, "expected a [notL10NAvailable] row:\n%s", buf.String())
}

func TestReportEscapesControlCharacters(t *testing.T) {
	fsys := fstest.MapFS{
		"app.cpp": {Data: []byte(`message = "Two lines\nof text in here";`)},
	}
	session, err := Analyze(defaultOptions(), testLogger(), fsys)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, session.Report(&buf, false))
	// a report row never spans lines
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.Len(t, strings.Split(line, "\t"), 6)
	}
}
