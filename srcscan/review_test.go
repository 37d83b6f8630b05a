package srcscan

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticFunctionsAreInternal(t *testing.T) {
	test := func(src string) func(*testing.T) {
		return func(t *testing.T) {
			res := scanSource(t, src, Options{})
			assert.NotEmpty(t, res.Internal, src)
			assert.Empty(t, res.Localizable, src)
			assert.Empty(t, res.NotAvailableForL10N, src)
		}
	}

	t.Run("", test(`assert(cond, "must not be empty here");`))
	t.Run("", test(`wxASSERT_MSG(cond, "must not be empty here");`))
	t.Run("", test(`qDebug("loading the panel now");`))
	t.Run("", test(`MY_CUSTOM_ASSERT(cond, "must not be empty here");`))
	t.Run("", test(`LOG_CHANNEL_DEBUG("network retry happening now");`))
	t.Run("", test(`printf("processing item number here\n");`))
}

func TestLogMessagesCanBeTranslatable(t *testing.T) {
	src := `wxLogMessage("Saving the current document");`

	res := scanSource(t, src, Options{})
	assert.NotEmpty(t, res.Internal)
	assert.Empty(t, res.NotAvailableForL10N)

	res = scanSource(t, src, Options{LogMessagesCanBeTranslatable: true})
	// allowed to be translatable, so neither flagged internal nor missing
	assert.Empty(t, res.Internal)
	assert.Empty(t, res.NotAvailableForL10N)
}

func TestMarkedNonLocalizable(t *testing.T) {
	res := scanSource(t, `auto tag = _DT("Do not translate me ever");`, Options{})
	// _DT wraps the literal; the enclosing assignment is not consulted
	require.Len(t, res.MarkedNonLocalizable, 1)
	assert.Empty(t, res.NotAvailableForL10N)
}

func TestQtContextArguments(t *testing.T) {
	res := scanSource(t, `translate("FileDialog", "Open the selected file")`, Options{})

	require.Len(t, res.Internal, 1)
	assert.Equal(t, "FileDialog", res.Internal[0].Text)
	require.Len(t, res.Localizable, 1)
	assert.Equal(t, "Open the selected file", res.Localizable[0].Text)
	assert.True(t, res.Localizable[0].Usage.HasContext)
}

func TestTrWithDisambiguationComma(t *testing.T) {
	res := scanSource(t, `tr("Open", "menu entry")`, Options{})

	// first argument is the message (followed by a comma, so it has a
	// disambiguation context); second argument is the context itself
	require.Len(t, res.Localizable, 1)
	assert.Equal(t, "Open", res.Localizable[0].Text)
	assert.True(t, res.Localizable[0].Usage.HasContext)
	require.Len(t, res.Internal, 1)
	assert.Equal(t, "menu entry", res.Internal[0].Text)
}

func TestLongContextArgumentIsSuspect(t *testing.T) {
	res := scanSource(t,
		`translate("This is a considerably long context string argument", "Open")`,
		Options{})

	require.NotEmpty(t, res.SuspectI18NUsage)
	assert.Contains(t, res.SuspectI18NUsage[0].Usage.Value, "transposed")
}

func TestTrIDWithLongMessageIsSuspect(t *testing.T) {
	res := scanSource(t, `qtTrId("This really looks like a full message, not an identifier")`, Options{})

	require.NotEmpty(t, res.SuspectI18NUsage)
	assert.Contains(t, res.SuspectI18NUsage[0].Usage.Value, "string IDs")

	res = scanSource(t, `qtTrId("short_message_id")`, Options{})
	assert.Empty(t, res.SuspectI18NUsage)
}

func TestExceptionPolicy(t *testing.T) {
	src := `throw std::runtime_error("The configuration file is corrupt");`

	res := scanSource(t, src, Options{})
	assert.NotEmpty(t, res.Internal)
	assert.Empty(t, res.NotAvailableForL10N)

	res = scanSource(t, src, Options{ExceptionsShouldBeTranslatable: true})
	assert.Empty(t, res.Internal)
	assert.NotEmpty(t, res.NotAvailableForL10N)
}

func TestIgnoredVariablePatternOption(t *testing.T) {
	src := `const char* traceMsg = "Internal failure: %d happened";`

	res := scanSource(t, src, Options{})
	assert.NotEmpty(t, res.NotAvailableForL10N)

	res = scanSource(t, src, Options{
		IgnoredVariablePatterns: []*regexp.Regexp{regexp.MustCompile(`^trace.*`)},
	})
	require.Len(t, res.Internal, 1)
	assert.Empty(t, res.NotAvailableForL10N)
}

func TestIgnoredVariableTypes(t *testing.T) {
	res := scanSource(t, `wxRegEx re("[0-9]+ left");`, Options{})
	assert.Empty(t, res.NotAvailableForL10N)
	assert.Empty(t, res.Localizable)
}

func TestUnsafeLocalizable(t *testing.T) {
	res := scanSource(t, `_("C:/Users/admin/config.ini")`, Options{})

	require.Len(t, res.Localizable, 1)
	require.Len(t, res.UnsafeLocalizable, 1)
	assert.Equal(t, "C:/Users/admin/config.ini", res.UnsafeLocalizable[0].Text)
}

func TestLocalizableWithURL(t *testing.T) {
	res := scanSource(t, `_("Visit www.example.com/help for more information")`, Options{})
	assert.Len(t, res.LocalizableWithURL, 1)
}

func TestLocalizableInInternalCall(t *testing.T) {
	res := scanSource(t, `assert(cond, _("Unable to open the file"));`, Options{})

	require.Len(t, res.Localizable, 1)
	require.Len(t, res.LocalizableInInternalCall, 1)
	assert.Equal(t, "Unable to open the file", res.LocalizableInInternalCall[0].Text)
	assert.Equal(t, "assert", res.LocalizableInInternalCall[0].Usage.Value)
}

func TestConcatenatedInternalString(t *testing.T) {
	// piecing a message together next to a log call; the '+' operator is
	// carried on the internal entry and flagged by the aggregate pass
	res := scanSource(t, `AppendLog(code + " failed badly here")`, Options{})
	require.Len(t, res.LocalizableBeingConcatenated, 1)
	assert.Equal(t, "+", res.LocalizableBeingConcatenated[0].Usage.Variable.Operator)
}

func TestSurroundingSpacesAreConcatenation(t *testing.T) {
	res := scanSource(t, `_("trailing space here ")`, Options{})
	require.Len(t, res.LocalizableBeingConcatenated, 1)
}

func TestComparedLocalizable(t *testing.T) {
	res := scanSource(t, `if (choice == _("Yes please")) { }`, Options{})
	assert.NotEmpty(t, res.LiteralL10NBeingCompared)
}

func TestHalfwidthCharacters(t *testing.T) {
	res := scanSource(t, `_("halfwidth ｶﾀｶﾅ text")`, Options{})
	assert.Len(t, res.LocalizableWithHalfwidth, 1)
}

func TestPrintfSingleNumber(t *testing.T) {
	res := scanSource(t, `printf("%d");`, Options{})

	require.Len(t, res.Internal, 1)
	require.Len(t, res.PrintfSingleNumbers, 1)
	assert.Equal(t, "%d", res.PrintfSingleNumbers[0].Text)
}

func TestStrftimeTwoDigitYear(t *testing.T) {
	res := scanSource(t, `strftime(buffer, sizeof buffer, "%y-%m-%d", tm);`, Options{})

	require.NotEmpty(t, res.SuspectI18NUsage)
	assert.Contains(t, res.SuspectI18NUsage[0].Usage.Value, "two-digit year")
}

func TestWxLocaleInitializationCheck(t *testing.T) {
	res := scanSource(t, `
wxIMPLEMENT_APP(MyApp);
bool MyApp::OnInit() { return true; }
`, Options{})

	require.NotEmpty(t, res.SuspectI18NUsage)
	assert.Contains(t, res.SuspectI18NUsage[0].Usage.Value, "wxUILocale::UseDefault()")
}

func TestWxLocaleInitialized(t *testing.T) {
	res := scanSource(t, `
wxIMPLEMENT_APP(MyApp);
bool MyApp::OnInit() { wxUILocale::UseDefault(); return true; }
`, Options{})

	for _, entry := range res.SuspectI18NUsage {
		assert.NotContains(t, entry.Usage.Value, "wxUILocale::UseDefault() should")
	}
}

func TestLoadStringSweep(t *testing.T) {
	res := scanSource(t, `::LoadString(instance, resourceId, targetBuffer, bufferLength)`, Options{})

	require.NotEmpty(t, res.SuspectI18NUsage)
	assert.Contains(t, res.SuspectI18NUsage[0].Usage.Value, "LoadString")
}

func TestNonLiteralToUnderscoreSweep(t *testing.T) {
	res := scanSource(t, `label = _(message);`, Options{})

	require.NotEmpty(t, res.SuspectI18NUsage)
	assert.Equal(t, "message", res.SuspectI18NUsage[0].Text)

	// width prefixes in front of a literal are fine
	res = scanSource(t, `label = _(L"Some words here");`, Options{})
	assert.Empty(t, res.SuspectI18NUsage)
}

func TestDeprecatedMacroThroughBackscan(t *testing.T) {
	res := scanSource(t, `SetLabel(wxT("caption"));`, Options{})

	require.NotEmpty(t, res.DeprecatedMacros)
	assert.Equal(t, "wxT", res.DeprecatedMacros[0].Text)
	assert.Contains(t, res.DeprecatedMacros[0].Usage.Value, "can be removed")
}

func TestDeprecatedFunctionSweep(t *testing.T) {
	res := scanSource(t, "TCHAR buffer[MAX_PATH];\nlen = _tcslen(buffer);\n", Options{})

	found := map[string]bool{}
	for _, entry := range res.DeprecatedMacros {
		found[entry.Text] = true
	}
	assert.True(t, found["TCHAR"])
	assert.True(t, found["_tcslen"])
}

func TestIDAssignments(t *testing.T) {
	t.Run("define out of range", func(t *testing.T) {
		res := scanSource(t, "#define IDC_FOO 32784\n", Options{})
		require.Len(t, res.IDsAssignedNumber, 1)
		assert.Contains(t, res.IDsAssignedNumber[0].Text, "32784 assigned to IDC_FOO")
		assert.Contains(t, res.IDsAssignedNumber[0].Text, "0x6FFF")
	})

	t.Run("define in range", func(t *testing.T) {
		res := scanSource(t, "#define IDC_FOO 2000\n", Options{})
		assert.Empty(t, res.IDsAssignedNumber)
	})

	t.Run("hex parses like decimal", func(t *testing.T) {
		res := scanSource(t, "#define IDD_ABOUT 0x8010\n", Options{})
		require.Len(t, res.IDsAssignedNumber, 1)
	})

	t.Run("string id range", func(t *testing.T) {
		res := scanSource(t, "#define IDS_GREETING 0x7000\n", Options{})
		assert.Empty(t, res.IDsAssignedNumber)
	})

	t.Run("plain int id variable", func(t *testing.T) {
		res := scanSource(t, "int windowID = 1042;\n", Options{})
		require.Len(t, res.IDsAssignedNumber, 1)
		assert.Contains(t, res.IDsAssignedNumber[0].Text, "1042 assigned to windowID")
	})

	t.Run("sentinels ignored", func(t *testing.T) {
		res := scanSource(t, "int windowID = -1;\nint otherID = 0;\n", Options{})
		assert.Empty(t, res.IDsAssignedNumber)
	})

	t.Run("id inside word ignored", func(t *testing.T) {
		res := scanSource(t, "int WIDTH = 500;\n", Options{})
		assert.Empty(t, res.IDsAssignedNumber)
	})

	t.Run("duplicates", func(t *testing.T) {
		res := scanSource(t, "#define IDC_FIRST 100\n#define IDC_SECOND 100\n", Options{})
		require.Len(t, res.DuplicateIDs, 1)
		assert.Contains(t, res.DuplicateIDs[0].Text, "100 has been assigned to multiple ID variables")
	})

	t.Run("same name redeclared", func(t *testing.T) {
		res := scanSource(t, "#define IDC_FIRST 100\n#define IDC_FIRST 100\n", Options{})
		assert.Empty(t, res.DuplicateIDs)
	})
}

func TestMalformedStrings(t *testing.T) {
	res := scanSource(t, `page = "&amp;nbsp; is doubly encoded text";`, Options{})
	assert.NotEmpty(t, res.Malformed)
}

func TestUnencodedExtendedASCII(t *testing.T) {
	res := scanSource(t, `label = "Grüße aus Berlin heute";`, Options{})
	assert.NotEmpty(t, res.UnencodedExtASCII)
}

func TestMergePreservesOrder(t *testing.T) {
	first := NewReviewer(Options{Style: CheckAll})
	first.ScanFile(`tr("Alpha message one");`, "a.cpp")

	second := NewReviewer(Options{Style: CheckAll})
	second.ScanFile(`tr("Beta message two");`, "b.cpp")

	merged := NewReviewer(Options{Style: CheckAll})
	merged.Merge(first.Results())
	merged.Merge(second.Results())
	merged.Review()

	res := merged.Results()
	require.Len(t, res.Localizable, 2)
	assert.Equal(t, FileRef("a.cpp"), res.Localizable[0].File)
	assert.Equal(t, FileRef("b.cpp"), res.Localizable[1].File)
}

func TestClearThenRescanMatchesFirstRun(t *testing.T) {
	src := `
wxMessageBox(_("Hello, world!"));
tr("Open the file now");
dbPath = "/var/lib/app.db";
`
	run := func() Results {
		r := NewReviewer(Options{Style: CheckAll})
		r.ScanFile(src, "x.cpp")
		r.Review()
		return *r.Results()
	}
	firstRun := run()

	r := NewReviewer(Options{Style: CheckAll})
	r.ScanFile(`_("throwaway")`, "junk.cpp")
	r.Review()
	r.Clear()
	r.ScanFile(src, "x.cpp")
	r.Review()

	if diff := cmp.Diff(firstRun, *r.Results()); diff != "" {
		t.Errorf("rescan after Clear differs (-want +got):\n%s", diff)
	}
}
