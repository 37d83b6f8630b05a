package srcscan

// LogEntry is one diagnostic recorded while scanning. No error escapes the
// scanner; everything lands here and the driver decides what to surface.
type LogEntry struct {
	Value   string
	Message string
	File    FileRef
	Pos     Pos
}

// Results holds the typed buckets a review session fills. Within one
// reviewer, entries appear in file-then-source-position order. The
// cross-cutting buckets are additional classifications of entries that
// already live in a primary bucket; the sweep and formatting buckets hold
// findings of their own.
type Results struct {
	// primary buckets
	Localizable          []StringEntry
	NotAvailableForL10N  []StringEntry
	MarkedNonLocalizable []StringEntry
	Internal             []StringEntry
	UnsafeLocalizable    []StringEntry

	// cross-cutting observations over localizable strings
	LocalizableWithURL              []StringEntry
	LocalizableWithExcessiveNonL10N []StringEntry
	LocalizableNeedingContext       []StringEntry
	LocalizableInInternalCall       []StringEntry
	LocalizableBeingConcatenated    []StringEntry
	LiteralL10NBeingCompared        []StringEntry
	LocalizableWithHalfwidth        []StringEntry
	Multipart                       []StringEntry
	FauxPlural                      []StringEntry
	ArticleIssue                    []StringEntry

	// sweeps over the whole buffer
	DeprecatedMacros    []StringEntry
	UnencodedExtASCII   []StringEntry
	PrintfSingleNumbers []StringEntry
	IDsAssignedNumber   []StringEntry
	DuplicateIDs        []StringEntry
	Malformed           []StringEntry
	SuspectI18NUsage    []StringEntry

	// formatting hygiene
	TrailingSpaces       []StringEntry
	Tabs                 []StringEntry
	WideLines            []StringEntry
	CommentsMissingSpace []StringEntry

	ErrorLog []LogEntry
}

// Clear zeroes all buckets. Allocation is left to append so an empty session
// costs nothing.
func (r *Results) Clear() {
	*r = Results{}
}

// Merge appends other's buckets onto r. The driver calls this once per
// worker, in file-path order, so cross-worker ordering follows the order
// the paths were handed out.
func (r *Results) Merge(other *Results) {
	r.Localizable = append(r.Localizable, other.Localizable...)
	r.NotAvailableForL10N = append(r.NotAvailableForL10N, other.NotAvailableForL10N...)
	r.MarkedNonLocalizable = append(r.MarkedNonLocalizable, other.MarkedNonLocalizable...)
	r.Internal = append(r.Internal, other.Internal...)
	r.UnsafeLocalizable = append(r.UnsafeLocalizable, other.UnsafeLocalizable...)
	r.LocalizableWithURL = append(r.LocalizableWithURL, other.LocalizableWithURL...)
	r.LocalizableWithExcessiveNonL10N = append(r.LocalizableWithExcessiveNonL10N, other.LocalizableWithExcessiveNonL10N...)
	r.LocalizableNeedingContext = append(r.LocalizableNeedingContext, other.LocalizableNeedingContext...)
	r.LocalizableInInternalCall = append(r.LocalizableInInternalCall, other.LocalizableInInternalCall...)
	r.LocalizableBeingConcatenated = append(r.LocalizableBeingConcatenated, other.LocalizableBeingConcatenated...)
	r.LiteralL10NBeingCompared = append(r.LiteralL10NBeingCompared, other.LiteralL10NBeingCompared...)
	r.LocalizableWithHalfwidth = append(r.LocalizableWithHalfwidth, other.LocalizableWithHalfwidth...)
	r.Multipart = append(r.Multipart, other.Multipart...)
	r.FauxPlural = append(r.FauxPlural, other.FauxPlural...)
	r.ArticleIssue = append(r.ArticleIssue, other.ArticleIssue...)
	r.DeprecatedMacros = append(r.DeprecatedMacros, other.DeprecatedMacros...)
	r.UnencodedExtASCII = append(r.UnencodedExtASCII, other.UnencodedExtASCII...)
	r.PrintfSingleNumbers = append(r.PrintfSingleNumbers, other.PrintfSingleNumbers...)
	r.IDsAssignedNumber = append(r.IDsAssignedNumber, other.IDsAssignedNumber...)
	r.DuplicateIDs = append(r.DuplicateIDs, other.DuplicateIDs...)
	r.Malformed = append(r.Malformed, other.Malformed...)
	r.SuspectI18NUsage = append(r.SuspectI18NUsage, other.SuspectI18NUsage...)
	r.TrailingSpaces = append(r.TrailingSpaces, other.TrailingSpaces...)
	r.Tabs = append(r.Tabs, other.Tabs...)
	r.WideLines = append(r.WideLines, other.WideLines...)
	r.CommentsMissingSpace = append(r.CommentsMissingSpace, other.CommentsMissingSpace...)
	r.ErrorLog = append(r.ErrorLog, other.ErrorLog...)
}
