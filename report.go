package sprakvakt

import (
	"fmt"
	"io"
	"strings"

	"github.com/sprakvakt/sprakvakt/srcscan"
)

// Warning identifiers, as they appear in the report's last column.
const (
	WarningSuspectL10NString   = "suspectL10NString"
	WarningSuspectI18NUsage    = "suspectI18NUsage"
	WarningSuspectL10NUsage    = "suspectL10NUsage"
	WarningNeedsContext        = "L10NStringNeedsContext"
	WarningURLInL10NString     = "urlInL10NString"
	WarningMultipartString     = "multipartString"
	WarningPluralization       = "pluralization"
	WarningArticleOrPronoun    = "articleOrPronoun"
	WarningExcessiveNonL10N    = "excessiveNonL10NContent"
	WarningConcatenatedStrings = "concatenatedStrings"
	WarningLiteralL10NCompare  = "literalL10NStringCompare"
	WarningHalfWidth           = "halfWidth"
	WarningNotL10NAvailable    = "notL10NAvailable"
	WarningDeprecatedMacro     = "deprecatedMacro"
	WarningNonUTF8File         = "nonUTF8File"
	WarningUTF8FileWithBOM     = "UTF8FileWithBOM"
	WarningUnencodedExtASCII   = "unencodedExtASCII"
	WarningPrintfSingleNumber  = "printfSingleNumber"
	WarningNumberAssignedToID  = "numberAssignedToId"
	WarningDupValAssignedToIDs = "dupValAssignedToIds"
	WarningMalformedString     = "malformedString"
	WarningTrailingSpaces      = "trailingSpaces"
	WarningTabs                = "tabs"
	WarningWideLine            = "wideLine"
	WarningCommentMissingSpace = "commentMissingSpace"
	WarningDebugParserInfo     = "debugParserInfo"
)

// escapeReportField keeps the tab-separated format intact.
func escapeReportField(s string) string {
	replacer := strings.NewReplacer("\t", `\t`, "\n", `\n`, "\r", `\r`)
	return replacer.Replace(s)
}

func writeReportRow(w io.Writer, file srcscan.FileRef, pos srcscan.Pos, value, explanation, warningID string) error {
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t\"%s\"\t\"%s\"\t[%s]\n",
		file, pos.Line, pos.Col, escapeReportField(value), escapeReportField(explanation), warningID)
	return err
}

// writeHalfwidth suggests the fullwidth form of the offending string.
func writeHalfwidth(w io.Writer, entries []srcscan.StringEntry) error {
	for _, entry := range entries {
		explanation := "String contains halfwidth characters; fullwidth form: " + srcscan.WidenHalfwidth(entry.Text)
		if err := writeReportRow(w, entry.File, entry.Pos, entry.Text, explanation, WarningHalfWidth); err != nil {
			return err
		}
	}
	return nil
}

// Report writes the tab-separated report the formatter and GUI consume:
// file, line, column, value, explanation, warning id. The verbose flag adds
// the parser's own diagnostics at the end.
func (s Session) Report(w io.Writer, verbose bool) error {
	if _, err := fmt.Fprintln(w, "File\tLine\tColumn\tValue\tExplanation\tWarningID"); err != nil {
		return err
	}

	write := func(entries []srcscan.StringEntry, explanation, warningID string) error {
		for _, entry := range entries {
			text := explanation
			if text == "" {
				text = entry.Usage.Value
			}
			if err := writeReportRow(w, entry.File, entry.Pos, entry.Text, text, warningID); err != nil {
				return err
			}
		}
		return nil
	}

	res := s.Results
	if res == nil {
		return nil
	}
	steps := []error{
		write(res.UnsafeLocalizable,
			"String available for translation that probably should not be.", WarningSuspectL10NString),
		write(res.LocalizableWithURL,
			"String available for translation that contains an URL, email address, or phone number.", WarningURLInL10NString),
		write(res.LocalizableWithExcessiveNonL10N,
			"String available for translation that mostly consists of content that should not be translated.", WarningExcessiveNonL10N),
		write(res.LocalizableNeedingContext,
			"Ambiguous string available for translation that lacks a translator comment or context.", WarningNeedsContext),
		write(res.LocalizableInInternalCall, "", WarningSuspectL10NUsage),
		write(res.LocalizableBeingConcatenated,
			"String available for translation that is being concatenated at runtime.", WarningConcatenatedStrings),
		write(res.LiteralL10NBeingCompared,
			"Translated string literal is being compared.", WarningLiteralL10NCompare),
		writeHalfwidth(w, res.LocalizableWithHalfwidth),
		write(res.Multipart,
			"String appears to contain multiple messages sliced apart at runtime.", WarningMultipartString),
		write(res.FauxPlural,
			"\"(s)\" pluralization will break for languages with more than two plural forms.", WarningPluralization),
		write(res.ArticleIssue,
			"Article (or pronoun) in front of a dynamic placeholder.", WarningArticleOrPronoun),
		write(res.NotAvailableForL10N,
			"String not available for translation.", WarningNotL10NAvailable),
		write(res.SuspectI18NUsage, "", WarningSuspectI18NUsage),
		write(res.DeprecatedMacros, "", WarningDeprecatedMacro),
		write(res.UnencodedExtASCII,
			"String contains extended ASCII characters that should be encoded.", WarningUnencodedExtASCII),
		write(res.PrintfSingleNumbers,
			"Printf command that is just formatting one number.", WarningPrintfSingleNumber),
		write(res.IDsAssignedNumber, "Hard-coded ID number.", WarningNumberAssignedToID),
		write(res.DuplicateIDs, "Duplicate ID value.", WarningDupValAssignedToIDs),
		write(res.Malformed, "Malformed HTML entity or tag.", WarningMalformedString),
		write(res.TrailingSpaces, "Trailing spaces at end of line.", WarningTrailingSpaces),
		write(res.Tabs, "Tab detected; spaces are recommended.", WarningTabs),
		write(res.CommentsMissingSpace, "Space should be inserted between comment mark and comment.", WarningCommentMissingSpace),
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}
	for _, entry := range res.WideLines {
		if err := writeReportRow(w, entry.File, entry.Pos, entry.Text,
			"Line is "+entry.Usage.Value+" characters long.", WarningWideLine); err != nil {
			return err
		}
	}
	for _, file := range s.FilesWithBOM {
		if s.style == 0 || s.style&srcscan.CheckUTF8WithSignature != 0 {
			if err := writeReportRow(w, srcscan.FileRef(file), srcscan.Pos{Line: 1, Col: 1}, "",
				"File contains a UTF-8 signature (BOM).", WarningUTF8FileWithBOM); err != nil {
				return err
			}
		}
	}
	for _, file := range s.NonUTF8Files {
		if s.style == 0 || s.style&srcscan.CheckUTF8Encoded != 0 {
			if err := writeReportRow(w, srcscan.FileRef(file), srcscan.Pos{Line: 1, Col: 1}, "",
				"File is not UTF-8 encoded.", WarningNonUTF8File); err != nil {
				return err
			}
		}
	}
	if verbose {
		for _, entry := range res.ErrorLog {
			if err := writeReportRow(w, entry.File, entry.Pos, entry.Value, entry.Message, WarningDebugParserInfo); err != nil {
				return err
			}
		}
	}
	return nil
}
