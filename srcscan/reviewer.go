package srcscan

import (
	"regexp"
	"strings"
)

// Options configures a review session. The zero value is usable; defaults
// are applied by NewReviewer.
type Options struct {
	Style ReviewStyle

	// MinWordsForUnavailable is the number of words a string needs before
	// the not-available-for-l10n classification considers it a real
	// user-facing message. Default 2.
	MinWordsForUnavailable int

	// MinCppVersion gates the verbose modernization suggestions
	// (e.g. 2011, 2017). Default 2014.
	MinCppVersion int

	// ExceptionsShouldBeTranslatable routes exception CTOR arguments to
	// not-available-for-l10n instead of internal.
	ExceptionsShouldBeTranslatable bool

	// LogMessagesCanBeTranslatable stops log functions from being treated
	// as internal sinks.
	LogMessagesCanBeTranslatable bool

	// AllowTranslatingPunctuationOnlyStrings lets punctuation-only strings
	// count as translatable.
	AllowTranslatingPunctuationOnlyStrings bool

	// CollapseDoubleQuotes collapses "" to " inside collected strings
	// (C# raw-string escaping).
	CollapseDoubleQuotes bool

	// MaxLineLength is the wide-line threshold. Default 120.
	MaxLineLength int

	// Verbose adds the modernization deprecations and extra diagnostics.
	Verbose bool

	// IgnoredVariablePatterns extends the built-in set of variable-name
	// patterns whose string assignments are internal.
	IgnoredVariablePatterns []*regexp.Regexp

	// ExtraFontNames and ExtraUntranslatableExceptions extend the
	// corresponding rule sets for this session.
	ExtraFontNames                []string
	ExtraUntranslatableExceptions []string
}

func (o Options) withDefaults() Options {
	if o.MinWordsForUnavailable == 0 {
		o.MinWordsForUnavailable = 2
	}
	if o.MinCppVersion == 0 {
		o.MinCppVersion = 2014
	}
	if o.MaxLineLength == 0 {
		o.MaxLineLength = 120
	}
	return o
}

// wxProjectInfo tracks the framework-initialization fingerprints the
// suspect-i18n-usage check needs across files.
type wxProjectInfo struct {
	appInit             *StringEntry
	uiLocaleInitialized bool
	wxLocaleInitialized bool
}

// Reviewer scans source buffers and collects review results. It holds
// mutable per-file state (working buffer, context-comment flag), so one
// instance must not be used concurrently; run one Reviewer per worker and
// fold their Results together with Merge.
type Reviewer struct {
	opts  Options
	style ReviewStyle

	ignoredVarPatterns []*regexp.Regexp
	extraFonts         stringSet
	extraExceptions    stringSet
	deprecatedFuncs    map[string]string

	results Results

	// per-file scan state
	fileName             FileRef
	orig                 string
	buf                  []byte
	contextCommentActive bool

	wxInfo wxProjectInfo
}

func NewReviewer(opts Options) *Reviewer {
	opts = opts.withDefaults()
	r := &Reviewer{
		opts:  opts,
		style: opts.Style,
	}
	r.ignoredVarPatterns = append(r.ignoredVarPatterns, defaultIgnoredVariablePatterns...)
	r.ignoredVarPatterns = append(r.ignoredVarPatterns, opts.IgnoredVariablePatterns...)
	r.extraFonts = newStringSet()
	for _, f := range opts.ExtraFontNames {
		r.extraFonts[strings.ToLower(f)] = struct{}{}
	}
	r.extraExceptions = newStringSet(opts.ExtraUntranslatableExceptions...)

	r.deprecatedFuncs = make(map[string]string, len(deprecatedStringFunctions))
	for name, msg := range deprecatedStringFunctions {
		r.deprecatedFuncs[name] = msg
	}
	if opts.Verbose {
		for name, dep := range verboseDeprecatedFunctions {
			if dep.minCppVersion == 0 || opts.MinCppVersion >= dep.minCppVersion {
				r.deprecatedFuncs[name] = dep.message
			}
		}
	}
	return r
}

// Style returns the configured check set.
func (r *Reviewer) Style() ReviewStyle { return r.style }

// Results exposes the collected buckets. The pointer stays valid across
// ScanFile calls; Review finalizes its contents.
func (r *Reviewer) Results() *Results { return &r.results }

// Clear zeroes all buckets and resets cross-file state so the reviewer can
// be reused for another session.
func (r *Reviewer) Clear() {
	r.results.Clear()
	r.wxInfo = wxProjectInfo{}
	r.contextCommentActive = false
	r.fileName = ""
	r.orig = ""
	r.buf = nil
}

// Merge folds another reviewer's results into this one.
func (r *Reviewer) Merge(other *Results) {
	r.results.Merge(other)
}

// MergeProjectInfo folds another reviewer's framework-init fingerprints in;
// the driver calls this alongside Merge so the cross-file wx check still
// works when scanning is spread over workers.
func (r *Reviewer) MergeProjectInfo(other *Reviewer) {
	if r.wxInfo.appInit == nil {
		r.wxInfo.appInit = other.wxInfo.appInit
	}
	r.wxInfo.uiLocaleInitialized = r.wxInfo.uiLocaleInitialized || other.wxInfo.uiLocaleInitialized
	r.wxInfo.wxLocaleInitialized = r.wxInfo.wxLocaleInitialized || other.wxInfo.wxLocaleInitialized
}

func (r *Reviewer) logMessage(value, message string, offset int) {
	entry := LogEntry{Value: value, Message: message, File: r.fileName}
	if offset >= 0 && r.orig != "" {
		line, col := lineAndColumn(r.orig, offset)
		entry.Pos = Pos{File: r.fileName, Line: line, Col: col}
	}
	r.results.ErrorLog = append(r.results.ErrorLog, entry)
}

func (r *Reviewer) pos(offset int) Pos {
	line, col := lineAndColumn(r.orig, offset)
	return Pos{File: r.fileName, Line: line, Col: col}
}
