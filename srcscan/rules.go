package srcscan

import "regexp"

// The curated rule sets. These are data, not code: loaded once per process,
// read-only after construction, and safe to share between reviewers.

type stringSet map[string]struct{}

func newStringSet(items ...string) stringSet {
	s := make(stringSet, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s stringSet) contains(item string) bool {
	_, ok := s[item]
	return ok
}

// functions/macros that indicate that a string will be localizable
var localizationFunctions = newStringSet(
	// GNU's gettext C/C++ functions
	"_", "gettext", "dgettext", "ngettext", "dngettext", "pgettext", "dpgettext",
	"npgettext", "dnpgettext", "dcgettext",
	// GNU's propername module
	"proper_name", "proper_name_utf8",
	// wxWidgets gettext wrapper functions
	"wxPLURAL", "wxGETTEXT_IN_CONTEXT", "wxGETTEXT_IN_CONTEXT_PLURAL", "wxTRANSLATE",
	"wxTRANSLATE_IN_CONTEXT", "wxGetTranslation",
	// Qt (note that the NOOP variants do load something for translation,
	// just not in-place)
	"tr", "trUtf8", "translate", "QT_TR_NOOP", "QT_TRANSLATE_NOOP",
	"QApplication::translate", "QApplication::tr", "QApplication::trUtf8",
	// KDE (ki18n)
	"i18n", "i18np", "i18ncp", "i18nc", "xi18n", "xi18nc", "ki18n", "ki18np",
	"ki18ncp", "ki18nc",
)

// tr (in Qt) takes an optional disambiguation argument, but because it is
// optional it is not in this list.
var localizationWithContextFunctions = newStringSet(
	"translate", "i18nc", "i18ncp", "ki18ncp", "ki18nc",
	"QApplication::translate", "QCoreApplication::translate", "QT_TRANSLATE_NOOP",
	"wxTRANSLATE_IN_CONTEXT", "wxGETTEXT_IN_CONTEXT_PLURAL", "wxGETTEXT_IN_CONTEXT",
	"wxGetTranslation",
)

// functions that mark a string as explicitly not translatable
var nonLocalizableFunctions = newStringSet(
	"_DT", "DONTTRANSLATE",
	// not defined explicitly in gettext, but its documentation suggests
	// adding them as defines in your code
	"gettext_noop", "N_",
)

// i18n functions that expect a string ID argument, not a message
var trIDFunctions = newStringSet("QT_TRID_NOOP", "QT_TRID_N_NOOP", "qtTrId")

// Constructors and macros that the backscan steps over transparently,
// moving to the function or assignment to their left.
var ctorsToIgnore = newStringSet(
	// Win32 text macros
	"_T", "__T", "TEXT", "_TEXT", "__TEXT", "_WIDE", "W",
	// macOS
	"CFSTR", "CFStringRef",
	// similar macros from other libraries
	"T",
	// wxWidgets
	"wxT", "wxT_2", "wxS", "wxString", "wxBasicString", "wxCFStringRef",
	"wxASCII_STR", "wxFile",
	// Qt
	"QString", "QLatin1String", "QStringLiteral", "setStyleSheet", "QFile",
	// standard string objects
	"basic_string", "string", "wstring", "u8string", "u16string", "u32string",
	"std::basic_string", "std::string", "std::wstring", "std::u8string",
	"std::u16string", "std::u32string", "std::pmr::basic_string", "std::pmr::string",
	"std::pmr::wstring", "std::pmr::u8string", "std::pmr::u16string",
	"std::pmr::u32string", "pmr::basic_string", "pmr::string", "pmr::wstring",
	"pmr::u8string", "pmr::u16string", "pmr::u32string", "std::ifstream",
	"std::ofstream",
	// MFC, ATL, COM
	"CString", "_bstr_t", "OLESTR", "T2COLE", "T2OLE", "OLE2CT", "OLE2T",
	"CComBSTR", "SysAllocString",
	// Java
	"Locale",
	// formatting functions (not actually a CTOR) that should be skipped over
	"wxString::Format", "string.Format",
)

// Debugging, system call, and other internal functions that should never
// have their string parameters translated. Includes resource loading
// functions that take a string ID.
var internalFunctions = newStringSet(
	// Java resource/key functions
	"getBundle", "getObject", "handleGetObject", "getString", "getStringArray",
	"containsKey",
	// attributes
	"deprecated", "nodiscard", "_Pragma",
	// assert functions
	"check_assertion", "static_assert", "assert", "Assert", "__android_log_assert",
	"Assert.True",
	// wxWidgets functions and macros
	"wxDEPRECATED_MSG", "wxSTC_DEPRECATED_MACRO_VALUE", "wxPG_DEPRECATED_MACRO_VALUE",
	"GetExt", "SetExt", "XRCID", "wxSystemOptions::GetOptionInt", "WXTRACE",
	"wxTrace", "wxDATETIME_CHECK", "wxASSERT", "wxASSERT_MSG", "wxASSERT_LEVEL_2",
	"wxASSERT_LEVEL_2_MSG", "wxOnAssert", "wxCHECK", "wxCHECK2", "wxCHECK2_MSG",
	"wxCHECK_MSG", "wxCHECK_RET", "wxCOMPILE_TIME_ASSERT", "wxPROPERTY_FLAGS",
	"wxPROPERTY", "wxMISSING_IMPLEMENTATION", "wxCOMPILE_TIME_ASSERT2", "wxFAIL_MSG",
	"wxFAILED_HRESULT_MSG", "ExecCommand", "CanExecCommand", "IgnoreAppSubDir",
	"put_designMode", "SetExtension", "wxSystemOptions::SetOption",
	"wxFileName::CreateTempFileName", "wxExecute", "SetFailedWithLastError",
	"wxIconHandler", "wxBitmapHandler", "OutputDumpLine", "wxFileTypeInfo",
	"TAG_HANDLER_BEGIN", "FDEBUG", "MDEBUG", "wxVersionInfo", "Platform::DebugPrintf",
	"wxGetCommandOutput", "SetKeyWords", "AddDeveloper", "AddDocWriter", "AddArtist",
	"AddTranslator", "MarkerSetBackground", "SetProperty", "SetAppName",
	"SetPrintToFile", "GetAttribute", "SetAuthor", "GetPropertyAsSize",
	"GetPropertyAsInteger", "FoundSwitch",
	// Qt
	"Q_ASSERT", "Q_ASSERT_X", "qSetMessagePattern", "qmlRegisterUncreatableMetaObject",
	"addShaderFromSourceCode", "QStandardPaths::findExecutable", "QDateTime::fromString",
	"QFileInfo", "qCDebug", "qDebug", "Q_MOC_INCLUDE", "Q_CLASSINFO",
	"setApplicationName", "QApplication::setApplicationName",
	// Catch2
	"TEST_CASE", "BENCHMARK", "TEMPLATE_TEST_CASE", "SECTION", "DYNAMIC_SECTION",
	"REQUIRE", "REQUIRE_THROWS_WITH", "REQUIRE_THAT", "CHECK", "CATCH_ENFORCE",
	"INFO", "SUCCEED", "SCENARIO", "GIVEN", "AND_GIVEN", "WHEN", "THEN",
	"SCENARIO_METHOD", "WARN", "TEST_CASE_METHOD", "Catch::Clara::Arg",
	"Catch::TestCaseInfo", "GENERATE", "CATCH_INTERNAL_ERROR", "CATCH_ERROR",
	"CATCH_MAKE_MSG", "INTERNAL_CATCH_DYNAMIC_SECTION", "CATCH_RUNTIME_ERROR",
	"CATCH_REQUIRE_THROWS_WIT", "CATCH_SUCCEED", "CATCH_INFO",
	"CATCH_UNSCOPED_INFO", "CATCH_WARN", "CATCH_SECTION",
	// CppUnit
	"CPPUNIT_ASSERT", "CPPUNIT_ASSERT_EQUAL", "CPPUNIT_ASSERT_DOUBLES_EQUAL",
	// Google Test
	"EXPECT_STREQ", "EXPECT_STRNE", "EXPECT_STRCASEEQ", "EXPECT_STRCASENE",
	"EXPECT_TRUE", "EXPECT_THAT", "EXPECT_FALSE", "EXPECT_EQ", "EXPECT_NE",
	"EXPECT_LT", "EXPECT_LE", "EXPECT_GT", "EXPECT_GE", "ASSERT_STREQ",
	"ASSERT_STRNE", "ASSERT_STRCASEEQ", "ASSERT_STRCASENE", "ASSERT_TRUE",
	"ASSERT_THAT", "ASSERT_FALSE", "ASSERT_EQ", "ASSERT_NE", "ASSERT_LT", "ASSERT_LE",
	"ASSERT_GT", "ASSERT_GE",
	// JUnit asserts
	"assertEquals", "assertNotEquals", "assertArrayEquals", "assertTrue", "assertNull",
	"assertNotNull", "assertThat", "assertNotSame", "assertSame",
	"assertThrows", "fail",
	// other testing frameworks
	"do_test", "run_check", "GNC_TEST_ADD_FUNC", "GNC_TEST_ADD", "g_test_message",
	"check_binary_op", "check_binary_op_equal", "MockProvider",
	// MAME
	"TEST_INSTRUCTION", "ASIO_CHECK", "ASIO_ERROR", "ASIO_HANDLER_CREATION",
	"ASMJIT_DEPRECATED",
	// low-level printf functions
	"wprintf", "printf", "sprintf", "snprintf", "fprintf", "wxSnprintf",
	// KDE
	"getDocumentProperty", "setDocumentProperty",
	// GTK
	"gtk_assert_dialog_append_text_column", "gtk_assert_dialog_add_button_to",
	"gtk_assert_dialog_add_button", "g_object_set_property", "gdk_atom_intern",
	"g_object_class_override_property", "g_object_get", "g_assert_cmpstr",
	"gtk_rc_parse_string", "g_param_spec_enum", "g_error_new",
	"g_dbus_method_invocation_return_error", "GTKApplyCssStyle",
	// TCL
	"Tcl_PkgRequire", "Tcl_PkgRequireEx",
	// debugging functions from various open-source projects
	"print_debug", "DPRINTF", "print_warning", "perror",
	"LogDebug", "DebugMsg",
	// system functions that don't process user messages
	"fopen", "getenv", "setenv", "system", "run", "exec", "execute", "_tfopen",
	"_wfopen", "_fdopen", "_sopen", "_wsopen",
	// Unix calls
	"popen", "dlopen", "dlsym", "g_signal_connect", "handle_system_error",
	// macOS calls
	"CFBundleCopyResourceURL", "sysctlbyname",
	// Windows/MFC/COM/ATL
	"OutputDebugString", "OutputDebugStringA", "OutputDebugStringW", "QueryValue",
	"OutputFormattedDebugString", "dbgprint", "ASSERT", "_ASSERTE", "TRACE",
	"ATLTRACE", "TRACE0", "ATLTRACE2", "ATLENSURE", "ATLASSERT", "VERIFY",
	"LoadLibrary", "LoadLibraryEx", "LoadModule", "GetModuleHandle", "QueryDWORDValue",
	"GetTempFileName", "QueryMultiStringValue", "SetMultiStringValue",
	"GetTempDirectory", "FormatGmt", "GetProgIDVersion", "RegCreateKeyEx",
	"RegCreateKey", "GetProfileInt", "WriteProfileInt", "RegOpenKeyEx",
	"RegOpenKeyExW", "RegOpenKeyExA", "QueryStringValue", "lpVerb", "Invoke",
	"Invoke0", "ShellExecute", "GetProfileString", "GetProcAddress",
	"RegisterClipboardFormat", "CreateIC", "_makepath", "_splitpath", "VerQueryValue",
	"CLSIDFromProgID", "StgOpenStorage", "InvokeN", "CreateStream", "DestroyElement",
	"CreateStorage", "OpenStream", "CallMethod", "PutProperty", "GetProperty",
	"HasProperty", "SetRegistryKey", "CreateDC", "GetModuleFileName",
	"GetModuleFileNameEx", "GetProcessImageFileName", "GetMappedFileName",
	"GetDeviceDriverFileName", "GetDeviceDriverBaseName", "DECLARE_WND_SUPERCLASS",
	"DECLARE_WND_CLASS_EX", "DECLARE_WND_CLASS2", "DECLARE_WND_CLASS", "SHGetFileInfo",
	"WFCTRACE", "WFCTRACEVAL", "WFCTRACEVARIANT", "WFCLTRACEINIT",
	"TRACE1", "TRACE2", "TRACE3", "TRACE4", "TRACE5", "TRACEERROR", "_RPT0",
	"_RPT1", "_RPT2", "_RPT3", "_RPT4", "_RPT5", "_RPTF0", "_RPTF1", "_RPTF2",
	"_RPTF3", "_RPTF4", "_RPTF5", "_RPTW0", "_RPTW1", "_RPTW2", "_RPTW3", "_RPTW4",
	"_RPTW5", "_RPTFW0", "_RPTFW1", "_RPTFW2", "_RPTFW3", "_RPTFW4", "_RPTFW5",
	"OpenFromInitializationString", "CreateADOCommand", "ExecuteSql",
	"com_interface_entry", "uuid", "idl_quote", "threading", "vi_progid", "progid",
	"CreatePointFont", "CreateFont", "FindWindow", "RegisterServer",
	"UnregisterServer", "MIDL_INTERFACE", "DECLSPEC_UUID", "DebugPrintfW",
	"DebugPrintfA", "DEBUGLOGRESULT", "CreateTextFormat", "DbgLog",
	"GetPrivateProfileString", "WritePrivateProfileString", "RegDeleteKey",
	"RegDeleteKeyEx", "RegDeleteKeyValue", "RegDeleteTree", "RegLoadAppKey",
	"RegOpenKey", "RegRenameKey", "RegSaveKey", "RegSaveKeyEx", "RegSetKeyValue",
	"RegSetKeyValueEx", "RegOpenKeyTransactedA", "GetDataSource", "TraceMsg",
	// .NET
	"FindSystemTimeZoneById", "CreateSpecificCulture", "DebuggerDisplay", "Debug.Fail",
	"DeriveKey", "Assert.Fail", "Debug.Assert", "Debug.Print", "Debug.WriteLine",
	"Debug.Write", "Debug.WriteIf", "Debug.WriteLineIf", "Assert.Equal", "DEBUGARG",
	"noway_assert", "DISASM_DUMP", "NO_WAY", "printfAlloc", "Directory.GetFiles",
	"Directory.EnumerateFiles", "Utils.RunProcess", "Utils.TryRunProcess",
	"System.Diagnostics.Debug.Print",
	// zlib
	"Tracev", "Trace", "Tracevv",
	// libpng
	"png_debug", "png_debug1", "png_debug2", "png_error", "png_warning",
	"png_chunk_warning", "png_chunk_error",
	// Lua
	"luaL_error", "lua_pushstring", "lua_setglobal",
	// more functions from various apps
	"trace", "ActionFormat", "ErrorFormat", "DEBUG", "setParameters", "getopt",
	"_PrintEnter", "_PrintExit", "ERROR0", "ERROR1", "ERROR2", "ERROR3",
	"TraceString",
	// assembly calls
	"asm",
)

// Log functions are internal unless the review is configured to treat log
// messages as translatable.
var logFunctions = newStringSet(
	// wxWidgets
	"wxLogLastError", "wxLogError", "wxLogFatalError", "wxLogGeneric", "wxLogMessage",
	"wxLogStatus", "wxLogSysError", "wxLogTrace", "wxLogVerbose", "wxLogWarning",
	"wxLogDebug", "wxLogApiError", "LogTraceArray", "DoLogRecord", "DoLogText",
	"DoLogTextAtLevel", "LogRecord", "DDELogError", "LogTraceLargeArray",
	// Qt
	"qDebug", "qInfo", "qWarning", "qCritical", "qFatal", "qCDebug", "qCInfo",
	"qCWarning", "qCCritical",
	// GLIB
	"g_error", "g_info", "g_log", "g_message", "g_debug", "g_warning",
	"g_log_structured", "g_critical",
	// SDL
	"SDL_Log", "SDL_LogCritical", "SDL_LogDebug", "SDL_LogError", "SDL_LogInfo",
	"SDL_LogMessage", "SDL_LogMessageV", "SDL_LogVerbose", "SDL_LogWarn",
	// GnuCash
	"PERR", "PWARN", "PINFO", "ENTER", "LEAVE",
	// actual console (or file) functions; most console apps are not
	// localized, and in a GUI these messages are meant for developers
	"printf", "Console.WriteLine", "dprintf", "WriteLine", "System.Console.WriteLine",
	"_tprintf", "wprintf",
	// .NET
	"LoggerMessage", "JITDUMP", "LOG", "LogSpew", "LOG_HANDLE_OBJECT_CLASS",
	"LOG_HANDLE_OBJECT", "CorDisToolsLogERROR", "LOG_ERROR", "LOG_INFO", "LogError",
	"LogMessage", "LogAsErrorException", "LogVerbose", "LogEvent", "LogLine", "Log",
	// TinyXML
	"TIXML_LOG",
	// other programs
	"log_message", "outLog", "Error", "AppendLog", "DBG_PRINT",
)

// Exception types whose CTOR argument routing depends on the
// exceptions-should-be-translatable policy.
var exceptionTypes = newStringSet(
	// std exceptions
	"logic_error", "std::logic_error", "domain_error", "std::domain_error",
	"length_error", "std::length_error", "out_of_range", "std::out_of_range",
	"runtime_error", "std::runtime_error", "overflow_error", "std::overflow_error",
	"underflow_error", "std::underflow_error", "range_error", "std::range_error",
	"invalid_argument", "std::invalid_argument", "exception", "std::exception",
	// MFC
	"AfxThrowOleDispatchException", "Win32Exception",
	// Qt
	"QException",
	// .NET
	"NotImplementedException", "ArgumentException", "InvalidOperationException",
	"OptionException", "NotSupportedException", "Exception", "BadImageFormatException",
	"JsonException", "ArgumentOutOfRangeException", "ArgumentNullException",
	"InvalidCastException",
)

// variables whose CTORs take a string that should never be translated
var variableTypesToIgnore = newStringSet(
	"wxUxThemeHandle", "wxRegKey", "wxXmlNode", "wxLoadedDLL", "wxConfigPathChanger",
	"wxWebViewEvent", "wxFileSystemWatcherEvent", "wxStdioPipe",
	"wxCMD_LINE_CHARS_ALLOWED_BY_SHORT_OPTION", "vmsWarningHandler", "vmsErrorHandler",
	"wxFFileOutputStream", "wxFFile", "wxFileName", "QFileInfo", "QDir",
	"QTemporaryFile", "wxColor", "wxColour", "wxFont", "LOGFONTW", "Font",
	"SecretSchema", "GtkTypeInfo", "QKeySequence", "QRegExp", "wxRegEx",
	"wregex", "std::wregex", "regex", "std::regex", "Regex",
	"ifstream", "ofstream", "FileStream", "StreamWriter", "CultureInfo",
	"TagHelperAttribute", "QRegularExpression",
	"wxDataViewRenderer", "wxDataViewBitmapRenderer", "wxDataViewDateRenderer",
	"wxDataViewTextRenderer", "wxDataViewIconTextRenderer", "wxDataViewCustomRenderer",
	"wxDataViewToggleRenderer", "wxDataObjectSimple",
)

// search and comparison functions; a translatable literal fed to one of
// these is being compared at runtime
var searchOrComparisonFunctions = newStringSet(
	"strcmp", "stricmp", "strcmpi", "strcasecmp", "wcscmp", "wcsicmp", "wcscasecmp",
	"strncmp", "wcsncmp", "_stricmp", "_wcsicmp", "_strnicmp", "_wcsnicmp",
	"CompareTo", "Cmp", "CmpNoCase", "IsSameAs", "compare", "Contains", "Find",
	"find", "rfind", "find_first_of", "find_last_of", "StartsWith", "EndsWith",
	"starts_with", "ends_with", "Matches", "Replace", "IndexOf",
)

// keywords in the language that can appear in front of a string only
var keywords = newStringSet("return", "else", "if", "goto", "new", "delete", "throw")

// type decorators stepped over when reading a variable type
var variableTypeDecorators = newStringSet("const", "constexpr", "static", "mutable", "volatile", "inline", "extern")

// known strings to ignore
var knownInternalStrings = newStringSet(
	"size-points", "background-gdk", "foreground-gdk", "foreground-set",
	"background-set", "weight-set", "style-set", "underline-set", "size-set",
	"charset", "xml", "gdiplus", "Direct2D", "DirectX", "localhost",
	"32 bit", "32-bit", "64 bit", "64-bit", "NULL",
	// build types
	"NDEBUG",
	// RTF font families
	"fnil", "fdecor", "froman", "fscript", "fswiss", "fmodern", "ftech",
	// common UNIX names (Windows versions are handled by regex elsewhere)
	"UNIX", "macOS", "Apple Mac OS", "Apple Mac OS X", "OSX",
	"Linux", "FreeBSD", "POSIX", "NetBSD",
)

// short strings that look untranslatable but are real user-facing messages
var untranslatableExceptions = newStringSet("PhD")

// common font faces that would usually be ignored (config can add more);
// compared case-insensitively
var fontNames = newStringSet(
	"arial", "seaford", "skeena", "tenorite", "courier new", "garamond",
	"calibri", "gabriola", ".helvetica neue deskinterface", ".lucida grande ui",
	"times new roman", "georgia", "segoe ui", "segoe script", "century gothic",
	"century", "cascadia mono", "urw bookman l", "ar berkley", "brush script",
	"consolas", "century schoolbook l", "lucida grande", "helvetica neue",
	"liberation serif", "sans serif", "luxi serif", "ms sans serif",
	"microsoft sans serif", "ms shell dlg", "ms shell dlg 2",
	"bitstream vera serif", "urw palladio l", "urw chancery l", "comic sans ms",
	"dejavu serif", "dejavu lgc serif", "nimbus sans l", "urw gothic l",
	"lucida sans", "andale mono", "luxi sans", "liberation sans",
	"bitstream vera sans", "dejavu lgc sans", "dejavu sans", "nimbus mono l",
	"lucida sans typewriter", "luxi mono", "dejavu sans mono",
	"dejavu lgc sans mono", "bitstream vera sans mono", "liberation mono",
	"franklin gothic", "aptos", "grandview", "bierstadt", "tahoma", "mingliu",
	"ms pgothic", "gulim", "nsimsun",
)

// document extensions; compared case-insensitively
var fileExtensions = newStringSet(
	"xml", "html", "htm", "xhtml", "rtf", "doc", "docx", "dot", "docm", "txt",
	"ppt", "pptx", "pdf", "ps", "odt", "ott", "odp", "otp", "pptm", "md", "xaml",
	// Visual Studio files
	"sln", "csproj", "json", "pbxproj", "apk", "tlb", "ocx", "pdb", "tlh", "hlp",
	"msi", "rc", "vcxproj", "resx", "appx", "vcproj",
	// macOS
	"dmg", "proj", "xbuild", "xmlns",
	// database
	"mdb", "db",
	// markdown
	"rmd", "qmd", "yml",
	// help files
	"hhc", "hhk", "hhp",
	// spreadsheets
	"xls", "xlsx", "ods", "csv",
	// image formats
	"gif", "jpg", "jpeg", "jpe", "bmp", "tiff", "tif", "png", "tga", "svg", "xcf",
	"ico", "psd", "hdr", "pcx",
	// webpages
	"asp", "aspx", "cfm", "cfml", "php", "php3", "php4", "sgml", "wmf", "js",
	// style sheets
	"css",
	// movies
	"mov", "qt", "rv", "rm", "wmv", "mpg", "mpeg", "mpe", "avi",
	// music
	"mp3", "wav", "wma", "midi", "ra", "ram",
	// programs
	"exe", "swf", "vbs",
	// source files
	"cpp", "h", "c", "idl", "cs", "hpp", "po",
	// compressed files
	"gzip", "bz2",
)

// deprecated text macros that wrap a literal; the backscan records these
// when it steps over them
var deprecatedStringMacros = map[string]string{
	"wxT":   "wxT() macro can be removed.",
	"wxT_2": "wxT_2() macro can be removed.",
	// wxWidgets can convert ANSI strings to double-byte, but Win32/MFC can't
	// and will need an 'L' prefixed to properly replace _T like macros.
	"_T":     "_T() macro can be removed. Prefix with 'L' to make string wide.",
	"__T":    "__T() macro can be removed. Prefix with 'L' to make string wide.",
	"TEXT":   "TEXT() macro can be removed. Prefix with 'L' to make string wide.",
	"_TEXT":  "_TEXT() macro can be removed. Prefix with 'L' to make string wide.",
	"__TEXT": "__TEXT() macro can be removed. Prefix with 'L' to make string wide.",
	"_WIDE":  "_WIDE() macro can be removed. Prefix with 'L' to make string wide.",
}

// Deprecated functions and types. The whole file is swept for these, as
// string variables can be passed to them as well as hard-coded strings.
var deprecatedStringFunctions = map[string]string{
	// Win32 TCHAR functions (which mapped between _MBCS and _UNICODE builds).
	// Nowadays you should always be compiling as _UNICODE (i.e., UTF-16).
	"_tcsftime":  "Use wcsftime instead of _tcsftime().",
	"_tfopen":    "Use fopen() instead of _tfopen().",
	"__targv":    "Use __wargv instead of __targv.",
	"__tcserror": "Use __wcserror() instead of __tcserror().",
	"_tcscat":    "Use std::wcscat() instead of _tcscat().",
	"_tcscat_s":  "Use wcscat_s() instead of _tcscat_s().",
	"_tcschr":    "Use std::wcschr() instead of _tcschr().",
	"_tcsclen":   "Use std::wcslen() instead of _tcsclen().",
	"_tcscmp":    "Use std::wcscmp() instead of _tcscmp().",
	"_tcscnlen":  "Use std::wcsnlen() instead of _tcscnlen().",
	"_tcscoll":   "Use std::wcscoll() instead of _tcscoll().",
	"_tcscpy":    "Use std::wcscpy() instead of _tcscpy().",
	"_tcscpy_s":  "Use wcscpy_s() instead of _tcscpy_s().",
	"_tcscspn":   "Use std::wcscspn() instead of _tcscspn().",
	"_tcsdup":    "Use _wcsdup() instead of _tcsdup().",
	"_tcserror":  "Use _wcserror() instead of _tcserror().",
	"_tcsicmp":   "Use _wcsicmp() instead of _tcsicmp().",
	"_tcsicoll":  "Use _wcsicoll() instead of _tcsicoll().",
	"_tcslen":    "Use std::wcslen() instead of _tcslen().",
	"_tcsncat":   "Use std::wcsncat() instead of _tcsncat().",
	"_tcsnccmp":  "Use std::wcsncmp() instead of _tcsnccmp().",
	"_tcsncicmp": "Use _wcsnicmp() instead of _tcsncicmp().",
	"_tcsncmp":   "Use std::wcsncmp() instead of _tcsncmp().",
	"_tcsncoll":  "Use _wcsncoll() instead of _tcsncoll().",
	"_tcsncpy":   "Use std::wcsncpy() instead of _tcsncpy().",
	"_tcsncpy_s": "Use wcsncpy_s() instead of _tcsncpy_s().",
	"_tcsnicmp":  "Use _wcsnicmp() instead of _tcsnicmp().",
	"_tcsnicoll": "Use _wcsnicoll() instead of _tcsnicoll().",
	"_tcsnlen":   "Use std::wcsnlen() instead of _tcsnlen().",
	"_tcsnset":   "Use _wcsnset() instead of _tcsnset().",
	"_tcspbrk":   "Use std::wcspbrk() instead of _tcspbrk().",
	"_tcsrchr":   "Use std::wcsrchr() instead of _tcsrchr().",
	"_tcsrev":    "Use _wcsrev() instead of _tcsrev().",
	"_tcsset":    "Use _wcsset() instead of _tcsset().",
	"_tcsspn":    "Use std::wcsspn() instead of _tcsspn().",
	"_tcsstr":    "Use std::wcsstr() instead of _tcsstr().",
	"_tcstod":    "Use std::wcstod() instead of _tcstod().",
	"_tcstof":    "Use std::wcstof() instead of _tcstof().",
	"_tcstoimax": "Use std::wcstoimax() instead of _tcstoimax().",
	"_tcstok":    "Use _wcstok() instead of _tcstok().",
	"_tcstol":    "Use std::wcstol() instead of _tcstol().",
	"_tcstold":   "Use std::wcstold() instead of _tcstold().",
	"_tcstoll":   "Use std::wcstoll() instead of _tcstoll().",
	"_tcstoul":   "Use std::wcstoul() instead of _tcstoul().",
	"_tcstoull":  "Use std::wcstoull() instead of _tcstoull().",
	"_tcstoumax": "Use std::wcstoumax() instead of _tcstoumax().",
	"_tcsxfrm":   "Use std::wcsxfrm() instead of _tcsxfrm()",
	"_tenviron":  "Use _wenviron() instead of _tenviron().",
	"_tmain":     "Use wmain() instead of _tmain().",
	"_tprintf":   "Use wprintf() instead of _tprintf().",
	"_tprintf_s": "Use wprintf_s() instead of _tprintf_s().",
	"_tWinMain":  "Use wWinMain() instead of _tWinMain().",
	"wsprintf":   "Use std::swprintf() instead of wsprintf().",
	"_stprintf":  "Use std::swprintf() instead of _stprintf().",
	"TCHAR":      "Use wchar_t instead of TCHAR.",
	"_TCHAR":     "Use wchar_t instead of _TCHAR.",
	"WCHAR":      "Use wchar_t instead of WCHAR.",
	"_MBCS":      "Multibyte code should be replaced with Unicode ready code.",
	"SBCS":       "ANSI code should be replaced with Unicode ready code.",
	"PTCHAR":     "Use wchar_t* instead of PTCHAR.",
	"LPTSTR":     "Use LPWSTR (or wchar_t*) instead of LPTSTR.",
	"LPCTSTR":    "Use LPCWSTR (or const wchar_t*) instead of LPCTSTR.",
	// wxWidgets
	"wxStrlen":           "Use std::wcslen() (or wrap in a std::wstring_view) instead of wxStrlen().",
	"wxStrstr":           "Use std::wcsstr() instead of wxStrstr().",
	"wxStrchr":           "Use std::wcschr() instead of wxStrchr().",
	"wxStrdup":           "Use std::wcsdup() instead of wxStrdup().",
	"wxStrcpy":           "Use std::wcscpy() instead of wxStrcpy() (or prefer safer functions that process N number of characters).",
	"wxStrncpy":          "Use std::wcsncpy() (or wxStrlcpy) instead of wxStrncpy().",
	"wxStrcat ":          "Use std::wcscat() instead of wxStrcat() (or prefer safer functions that process N number of characters).",
	"wxStrncat":          "Use std::wcsncat() instead of wxStrncat().",
	"wxStrtok":           "Use std::wcstok() instead of wxStrtok().",
	"wxStrrchr":          "Use std::wcsrchr() instead of wxStrrchr().",
	"wxStrpbrk":          "Use std::wcspbrk() instead of wxStrpbrk().",
	"wxStrxfrm":          "Use std::wcsxfrm() instead of wxStrxfrm.",
	"wxIsEmpty":          "Use wxString's empty() member instead of wxIsEmpty().",
	"wxIsdigit":          "Use std::iswdigit() instead of wxIsdigit().",
	"wxIsalnum":          "Use std::iswalnum() instead of wxIsalnum().",
	"wxIsalpha":          "Use std::iswalpha() instead of wxIsalpha().",
	"wxIsctrl":           "Use std::iswctrl() instead of wxIsctrl().",
	"wxIspunct":          "Use std::iswpunct() instead of wxIspunct().",
	"wxIsspace":          "Use std::iswpspace() instead of wxIsspace().",
	"wxChar":             "Use wchar_t instead of wxChar.",
	"wxSChar":            "Use wchar_t instead of wxSChar.",
	"wxUChar":            "Use wchar_t instead of wxUChar.",
	"wxStrftime":         "Use wxDateTime's formatting functions instead of wxStrftime().",
	"wxStrtod":           "Use wxString::ToDouble() instead of wxStrtod.",
	"wxStrtol":           "Use wxString::ToLong() instead of wxStrtol.",
	"wxW64":              "wxW64 is obsolete; remove it.",
	"__WXFUNCTION__":     "Use __func__ or __WXFUNCTION_SIG__ (requires wxWidgets 3.3) instead of __WXFUNCTION__.",
	"wxTrace":            "Use one of the wxLogTrace() functions or one of the wxVLogTrace() functions instead of wxTrace.",
	"WXTRACE":            "Use one of the wxLogTrace() functions or one of the wxVLogTrace() functions instead of WXTRACE.",
	"wxTraceLevel":       "Use one of the wxLogTrace() functions or one of the wxVLogTrace() functions instead of wxTraceLevel.",
	"wxUnix2DosFilename": "Construct a wxFileName with wxPATH_UNIX and then use wxFileName::GetFullPath(wxPATH_DOS) instead of using wxUnix2DosFilename.",
	"wxSplitPath":        "wxSplitPath is obsolete, please use wxFileName::SplitPath() instead.",
	"wxConvCurrent":      "Prefer using a wxConvAuto object instead.",
	"mb_str()":           "Relying on wxConvLibc can be unpredictable on some platforms. Prefer calling utf8_str() instead.",
	"wxConvLibc":         "Relying on wxConvLibc can be unpredictable on some platforms. Prefer calling utf8_str() instead.",
}

// verbose-only modernization suggestions, gated on the configured minimum
// C++ version; not i18n related, just legacy wx functions that can be
// modernized
type versionedDeprecation struct {
	minCppVersion int
	message       string
}

var verboseDeprecatedFunctions = map[string]versionedDeprecation{
	"_STATIC_ASSERT":          {2011, "Use static_assert() instead of _STATIC_ASSERT()."},
	"wxMEMBER_DELETE":         {2011, "Use '= delete' instead of wxMEMBER_DELETE."},
	"wxOVERRIDE":              {2011, "Use override or final instead of wxOVERRIDE."},
	"wxNODISCARD":             {2017, "Use [[nodiscard]] instead of wxNODISCARD."},
	"WXSIZEOF":                {2017, "Use std::size() instead of WXSIZEOF()."},
	"wxUnusedVar":             {2017, "Use [[maybe_unused]] instead of wxUnusedVar."},
	"WXUNUSED":                {2017, "Use [[maybe_unused]] instead of WXUNUSED()."},
	"Q_UNUSED":                {2017, "Use [[maybe_unused]] instead of Q_UNUSED()."},
	"wxEXPAND":                {0, "Call wxSizer::Add() with a wxSizerFlags object using Expand() instead of wxEXPAND."},
	"wxGROW":                  {0, "Call wxSizer::Add() with a wxSizerFlags object using Expand() instead of wxGROW."},
	"DECLARE_NO_COPY_CLASS":   {0, "Delete the copy CTOR and assignment operator instead of DECLARE_NO_COPY_CLASS."},
	"wxDECLARE_NO_COPY_CLASS": {0, "Delete the copy CTOR and assignment operator instead of wxDECLARE_NO_COPY_CLASS."},
	"wxMin":                   {0, "Use std::min() instead of wxMin()."},
	"wxMax":                   {0, "Use std::max() instead of wxMax()."},
	"wxRound":                 {0, "Use std::lround() instead of wxRound()."},
	"wxIsNan":                 {0, "Use std::isnan() instead of wxIsNan()."},
	"wxNOEXCEPT":              {0, "Use noexcept instead of wxNOEXCEPT."},
	"__WXMAC__":               {0, "Use __WXOSX__ instead of __WXMAC__."},
}

// default variable-name patterns whose assignments are internal
var defaultIgnoredVariablePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^debug.*`),
	regexp.MustCompile(`(?i)^stacktrace.*`),
	regexp.MustCompile(`(?i)^([[:alnum:]_\-])*xpm$`),
	regexp.MustCompile(`(?i)^xpm([[:alnum:]_\-])*$`),
	regexp.MustCompile(`(?i)^(sql|db|database)(Table|Update|Query|Command|Upgrade)?[[:alnum:]_\-]*$`),
	regexp.MustCompile(`^log$`),
	regexp.MustCompile(`^[Cc]ommand(_)?[Ss]tring$`),
	regexp.MustCompile(`^wxColourDialogNames$`),
	regexp.MustCompile(`^wxColourTable$`),
	regexp.MustCompile(`^QT_MESSAGE_PATTERN$`),
	// console objects
	regexp.MustCompile(`^(std::)?[w]?(cout|cerr|qout|qerr)$`),
}

// strftime-family functions for the two-digit-year check
var strftimeFunctions = newStringSet("strftime", "_strftime_l", "wcsftime", "_wcsftime_l", "_tcsftime")
