package srcscan

import "strings"

func isI18nFunction(name string) bool {
	return localizationFunctions.contains(name)
}

func isI18nWithContextFunction(name string) bool {
	return localizationWithContextFunctions.contains(name)
}

func isNonI18nFunction(name string) bool {
	return nonLocalizableFunctions.contains(name)
}

// isDiagnosticFunction covers asserts, debug printfs, test framework
// macros, registry/system APIs, and (by configuration) log sinks.
func (r *Reviewer) isDiagnosticFunction(name string) bool {
	return diagnosticFunctionRE.MatchString(name) ||
		internalFunctions.contains(name) ||
		internalFunctions.contains(extractBaseFunction(name)) ||
		strings.HasSuffix(name, "_TRACE") || strings.HasSuffix(name, "_DEBUG") ||
		(!r.opts.LogMessagesCanBeTranslatable && logFunctions.contains(name))
}

// isContextArgument reports whether the literal at the given parameter
// position of an i18n function is the context/disambiguation argument
// rather than the message.
func isContextArgument(functionName string, parameterPosition int) bool {
	switch functionName {
	// Qt
	case "translate", "QApplication::translate", "QApplication::tr", "QApplication::trUtf8",
		"QCoreApplication::translate", "QCoreApplication::tr", "QCoreApplication::trUtf8",
		"QT_TRANSLATE_NOOP":
		return parameterPosition == 0
	case "tr", "trUtf8":
		return parameterPosition == 1
	// wxWidgets
	case "wxTRANSLATE_IN_CONTEXT", "wxGETTEXT_IN_CONTEXT_PLURAL", "wxGETTEXT_IN_CONTEXT":
		return parameterPosition == 0
	// KDE
	case "i18nc", "i18ncp", "ki18nc", "ki18ncp":
		return parameterPosition == 0
	case "i18n", "ki18n": // acts like printf
		return parameterPosition > 0
	case "wxGetTranslation":
		return parameterPosition >= 1
	}
	return false
}

// processQuote files one extracted literal into the appropriate bucket,
// given everything the backscan recovered for it.
func (r *Reviewer) processQuote(quotePos, contentStart, contentEnd int, bs backscanResult, isFollowedByComma bool) {
	text := string(r.buf[contentStart:contentEnd])
	pos := r.pos(quotePos)
	// the operator value is carried even when the quote goes to a function:
	// it picks up any + or ?: in front of the quote inside the parent
	// call's arguments, which matters to the concatenation checks later
	op := bs.variable.Operator

	if bs.deprecatedMacro != "" && r.style.has(CheckDeprecatedMacros) {
		r.results.DeprecatedMacros = append(r.results.DeprecatedMacros, StringEntry{
			Text: bs.deprecatedMacro,
			Usage: Usage{
				Kind:     UsageFunction,
				Value:    deprecatedStringMacros[bs.deprecatedMacro],
				Variable: VariableInfo{Operator: op},
			},
			File: r.fileName,
			Pos:  pos,
		})
	}

	switch {
	case bs.variable.Name != "":
		r.processVariable(bs.variable, text, quotePos)
	case bs.functionName != "":
		functionName := bs.functionName
		switch {
		case r.isDiagnosticFunction(functionName) || trIDFunctions.contains(functionName):
			r.results.Internal = append(r.results.Internal, StringEntry{
				Text:  text,
				Usage: Usage{Kind: UsageFunction, Value: functionName, Variable: VariableInfo{Operator: op}},
				File:  r.fileName,
				Pos:   pos,
			})
			// these functions expect string IDs, not messages
			if r.style.has(CheckSuspectI18NUsage) && trIDFunctions.contains(functionName) && len(text) > 32 {
				r.results.SuspectI18NUsage = append(r.results.SuspectI18NUsage, StringEntry{
					Text: functionName,
					Usage: Usage{
						Kind:       UsageFunction,
						Value:      "This function is meant for string IDs, not translatable strings. Are you sure the provided argument is an ID?",
						HasContext: true,
					},
					File: r.fileName,
					Pos:  pos,
				})
			}
		case isI18nFunction(functionName):
			if isContextArgument(functionName, bs.parameterPosition) {
				// the context argument itself is not translatable
				r.results.Internal = append(r.results.Internal, StringEntry{
					Text:  text,
					Usage: Usage{Kind: UsageFunction, Value: functionName, Variable: VariableInfo{Operator: op}},
					File:  r.fileName,
					Pos:   pos,
				})
				// the i18n/ki18n "context" positions are really printf
				// arguments, so don't second-guess their length
				if r.style.has(CheckSuspectI18NUsage) && len(text) > 32 &&
					!strings.HasPrefix(functionName, "i18n") && !strings.HasPrefix(functionName, "ki18n") {
					r.results.SuspectI18NUsage = append(r.results.SuspectI18NUsage, StringEntry{
						Text: text,
						Usage: Usage{
							Kind:       UsageFunction,
							Value:      "Context string is considerably long. Are the context and string arguments possibly transposed?",
							HasContext: true,
						},
						File: r.fileName,
						Pos:  pos,
					})
				}
			} else {
				r.results.Localizable = append(r.results.Localizable, StringEntry{
					Text: text,
					Usage: Usage{
						Kind:     UsageFunction,
						Value:    functionName,
						Variable: VariableInfo{Operator: op},
						HasContext: isI18nWithContextFunction(functionName) ||
							functionName == "wxPLURAL" ||
							(isFollowedByComma && extractBaseFunction(functionName) == "tr") ||
							r.contextCommentActive,
					},
					File: r.fileName,
					Pos:  pos,
				})
				if r.style.has(CheckSuspectL10NStringUsage) {
					r.checkL10NStringInInternalCall(text, bs.namePos, pos, op)
				}
			}
			// the active translation function consumed the translator
			// comment, so switch the state back off
			r.contextCommentActive = false
		case isNonI18nFunction(functionName):
			r.results.MarkedNonLocalizable = append(r.results.MarkedNonLocalizable, StringEntry{
				Text:  text,
				Usage: Usage{Kind: UsageFunction, Value: functionName, Variable: VariableInfo{Operator: op}},
				File:  r.fileName,
				Pos:   pos,
			})
		case variableTypesToIgnore.contains(functionName):
			r.results.Internal = append(r.results.Internal, StringEntry{
				Text:  text,
				Usage: Usage{Kind: UsageFunction, Value: functionName, Variable: VariableInfo{Operator: op}},
				File:  r.fileName,
				Pos:   pos,
			})
		case isKeyword(functionName):
			// a literal in raw control flow is effectively an orphan
			r.classifyNonLocalizableString(StringEntry{
				Text:  text,
				Usage: Usage{Kind: UsageOrphan, Variable: VariableInfo{Operator: op}},
				File:  r.fileName,
				Pos:   pos,
			})
		default:
			r.classifyNonLocalizableString(StringEntry{
				Text:  text,
				Usage: Usage{Kind: UsageFunction, Value: functionName, Variable: VariableInfo{Operator: op}},
				File:  r.fileName,
				Pos:   pos,
			})
		}
	default:
		r.classifyNonLocalizableString(StringEntry{
			Text:  text,
			Usage: Usage{Kind: UsageOrphan, Variable: VariableInfo{Operator: op}},
			File:  r.fileName,
			Pos:   pos,
		})
	}
	r.clearSection(contentStart, contentEnd)
}

// checkL10NStringInInternalCall backscans once more from the i18n call's
// own name to see whether the translation is nested inside a diagnostic
// call or assigned to an internal variable.
func (r *Reviewer) checkL10NStringInInternalCall(text string, namePos int, pos Pos, op string) {
	outer := r.readVarOrFunctionName(namePos)
	if outer.deprecatedMacro != "" && r.style.has(CheckDeprecatedMacros) {
		r.results.DeprecatedMacros = append(r.results.DeprecatedMacros, StringEntry{
			Text:  outer.deprecatedMacro,
			Usage: Usage{Kind: UsageFunction, Variable: VariableInfo{Operator: op}},
			File:  r.fileName,
			Pos:   pos,
		})
	}
	switch {
	case r.isDiagnosticFunction(outer.functionName) ||
		// CTORs whose arguments should not be translated
		variableTypesToIgnore.contains(outer.functionName):
		r.results.LocalizableInInternalCall = append(r.results.LocalizableInInternalCall, StringEntry{
			Text:  text,
			Usage: Usage{Kind: UsageFunction, Value: outer.functionName, Variable: VariableInfo{Operator: op}},
			File:  r.fileName,
			Pos:   pos,
		})
	case variableTypesToIgnore.contains(outer.variable.Type):
		r.results.LocalizableInInternalCall = append(r.results.LocalizableInInternalCall, StringEntry{
			Text:  text,
			Usage: Usage{Kind: UsageVariable, Value: outer.variable.Name, Variable: outer.variable},
			File:  r.fileName,
			Pos:   pos,
		})
	case outer.variable.Name != "":
		for _, re := range r.ignoredVarPatterns {
			if re.MatchString(outer.variable.Name) {
				r.results.LocalizableInInternalCall = append(r.results.LocalizableInInternalCall, StringEntry{
					Text:  text,
					Usage: Usage{Kind: UsageVariable, Value: outer.variable.Name, Variable: outer.variable},
					File:  r.fileName,
					Pos:   pos,
				})
				break
			}
		}
	}
}

// maxClassifiedValueLength bounds the substring used for classification; a
// 1024-character prefix classifies a large value just as well and keeps the
// regex passes cheap.
const maxClassifiedValueLength = 1024

// processVariable buckets a literal assigned to a variable.
func (r *Reviewer) processVariable(variable VariableInfo, value string, offset int) {
	if len(value) > maxClassifiedValueLength {
		value = value[:maxClassifiedValueLength]
	}
	entry := StringEntry{
		Text:  value,
		Usage: Usage{Kind: UsageVariable, Value: variable.Name, Variable: variable},
		File:  r.fileName,
		Pos:   r.pos(offset),
	}
	if variableTypesToIgnore.contains(variable.Type) {
		r.results.Internal = append(r.results.Internal, entry)
		return
	}
	for _, re := range r.ignoredVarPatterns {
		if re.MatchString(variable.Name) {
			r.results.Internal = append(r.results.Internal, entry)
			return
		}
	}
	r.classifyNonLocalizableString(entry)
}

// classifyNonLocalizableString handles a candidate user message that is not
// wrapped in an i18n function.
func (r *Reviewer) classifyNonLocalizableString(entry StringEntry) {
	if !r.style.has(CheckNotAvailableForL10N) {
		return
	}
	if exceptionTypes.contains(entry.Usage.Value) || exceptionTypes.contains(entry.Usage.Variable.Type) {
		// whether exception messages get translated is policy, not a guess
		if !r.opts.ExceptionsShouldBeTranslatable {
			r.results.Internal = append(r.results.Internal, entry)
		} else {
			r.results.NotAvailableForL10N = append(r.results.NotAvailableForL10N, entry)
		}
		return
	}
	if logFunctions.contains(entry.Usage.Value) {
		return
	}
	if untranslatable, _ := r.isUntranslatable(entry.Text, true); untranslatable {
		r.results.Internal = append(r.results.Internal, entry)
	} else {
		r.results.NotAvailableForL10N = append(r.results.NotAvailableForL10N, entry)
	}
}
