package srcscan

// ReviewStyle is a bitset of independent check categories. Components consult
// it to decide whether to run each subcheck; flags that only apply to
// resource files are representable here so that one flag set can be shared
// with the resource-file scanners.
type ReviewStyle uint64

const (
	CheckL10NStrings ReviewStyle = 1 << iota
	CheckSuspectI18NUsage
	CheckSuspectL10NStringUsage
	CheckMismatchingPrintfCommands
	CheckAccelerators
	CheckConsistency
	CheckHalfwidth
	CheckNumbers
	CheckLength
	CheckNeedingContext
	CheckL10NContainsURL
	CheckMultipartStrings
	CheckPluralization
	CheckArticlesProceedingPlaceholder
	CheckL10NContainsExcessiveNonL10NContent
	CheckL10NConcatenatedStrings
	CheckLiteralL10NStringComparison
	CheckNotAvailableForL10N
	CheckDeprecatedMacros
	CheckUTF8Encoded
	CheckUTF8WithSignature
	CheckUnencodedExtASCII
	CheckPrintfSingleNumber
	CheckNumberAssignedToID
	CheckDuplicateValueAssignedToIDs
	CheckMalformedStrings
	CheckFonts
	CheckTrailingSpaces
	CheckTabs
	CheckLineWidth
	CheckSpaceAfterComment
)

// CheckAll enables every check category.
const CheckAll = ReviewStyle(1<<31) - 1

// styleNames maps the configuration names accepted in sprakvakt.yaml to
// their flags. The names follow the canonical warning categories.
var styleNames = map[string]ReviewStyle{
	"suspectL10NString":        CheckL10NStrings,
	"suspectI18NUsage":         CheckSuspectI18NUsage,
	"suspectL10NUsage":         CheckSuspectL10NStringUsage,
	"printfMismatch":           CheckMismatchingPrintfCommands,
	"acceleratorMismatch":      CheckAccelerators,
	"transInconsistency":       CheckConsistency,
	"halfWidth":                CheckHalfwidth,
	"numberInconsistency":      CheckNumbers,
	"lengthInconsistency":      CheckLength,
	"L10NStringNeedsContext":   CheckNeedingContext,
	"urlInL10NString":          CheckL10NContainsURL,
	"multipartString":          CheckMultipartStrings,
	"pluralization":            CheckPluralization,
	"articleOrPronoun":         CheckArticlesProceedingPlaceholder,
	"excessiveNonL10NContent":  CheckL10NContainsExcessiveNonL10NContent,
	"concatenatedStrings":      CheckL10NConcatenatedStrings,
	"literalL10NStringCompare": CheckLiteralL10NStringComparison,
	"notL10NAvailable":         CheckNotAvailableForL10N,
	"deprecatedMacro":          CheckDeprecatedMacros,
	"nonUTF8File":              CheckUTF8Encoded,
	"UTF8FileWithBOM":          CheckUTF8WithSignature,
	"unencodedExtASCII":        CheckUnencodedExtASCII,
	"printfSingleNumber":       CheckPrintfSingleNumber,
	"numberAssignedToId":       CheckNumberAssignedToID,
	"dupValAssignedToIds":      CheckDuplicateValueAssignedToIDs,
	"malformedString":          CheckMalformedStrings,
	"fontIssue":                CheckFonts,
	"trailingSpaces":           CheckTrailingSpaces,
	"tabs":                     CheckTabs,
	"wideLine":                 CheckLineWidth,
	"commentMissingSpace":      CheckSpaceAfterComment,
}

// StyleFromNames builds a ReviewStyle from configuration names. Unknown
// names are returned so the caller can log and skip them.
func StyleFromNames(names []string) (style ReviewStyle, unknown []string) {
	for _, n := range names {
		if n == "all" {
			style |= CheckAll
			continue
		}
		flag, ok := styleNames[n]
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		style |= flag
	}
	return style, unknown
}

// Names returns the configuration names of the enabled checks, in a stable
// order.
func (s ReviewStyle) Names() []string {
	var result []string
	for _, n := range styleNameOrder {
		if s&styleNames[n] != 0 {
			result = append(result, n)
		}
	}
	return result
}

func (s ReviewStyle) has(flag ReviewStyle) bool { return s&flag != 0 }

var styleNameOrder = []string{
	"suspectL10NString", "suspectI18NUsage", "suspectL10NUsage",
	"printfMismatch", "acceleratorMismatch", "transInconsistency",
	"halfWidth", "numberInconsistency", "lengthInconsistency",
	"L10NStringNeedsContext", "urlInL10NString", "multipartString",
	"pluralization", "articleOrPronoun", "excessiveNonL10NContent",
	"concatenatedStrings", "literalL10NStringCompare", "notL10NAvailable",
	"deprecatedMacro", "nonUTF8File", "UTF8FileWithBOM", "unencodedExtASCII",
	"printfSingleNumber", "numberAssignedToId", "dupValAssignedToIds",
	"malformedString", "fontIssue", "trailingSpaces", "tabs", "wideLine",
	"commentMissingSpace",
}
