package srcscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backscan runs the resolver against the character just before the first
// quote in src.
func backscan(t *testing.T, src string) backscanResult {
	t.Helper()
	r := NewReviewer(Options{Style: CheckAll})
	r.fileName = "test.cpp"
	r.orig = src
	r.buf = []byte(src)
	quote := -1
	for i, c := range src {
		if c == '"' {
			quote = i
			break
		}
	}
	require.NotEqual(t, -1, quote, "source needs a quote")
	return r.readVarOrFunctionName(quote - 1)
}

func TestBackscanFunctionCall(t *testing.T) {
	res := backscan(t, `ShowMessage("hello")`)
	assert.Equal(t, "ShowMessage", res.functionName)
	assert.Equal(t, 0, res.parameterPosition)
}

func TestBackscanParameterPosition(t *testing.T) {
	res := backscan(t, `Format(first, second, "hello")`)
	assert.Equal(t, "Format", res.functionName)
	assert.Equal(t, 2, res.parameterPosition)
}

func TestBackscanNestedCall(t *testing.T) {
	// the closed inner call is skipped to find the outer owner; every comma
	// walked over counts toward the parameter position
	res := backscan(t, `Outer(Inner(a, b), "hello")`)
	assert.Equal(t, "Outer", res.functionName)
	assert.Equal(t, 2, res.parameterPosition)
}

func TestBackscanVariableAssignment(t *testing.T) {
	test := func(src, wantName, wantType, wantOperator string) func(*testing.T) {
		return func(t *testing.T) {
			res := backscan(t, src)
			assert.Empty(t, res.functionName)
			assert.Equal(t, wantName, res.variable.Name)
			assert.Equal(t, wantType, res.variable.Type)
			assert.Equal(t, wantOperator, res.variable.Operator)
		}
	}

	t.Run("", test(`wxString caption = "hello";`, "caption", "wxString", "="))
	t.Run("", test(`msg += "hello";`, "msg", "", "+="))
	t.Run("", test(`values[2] = "hello";`, "values", "", "="))
	t.Run("", test(`const char* dbgMsg = "hello";`, "dbgMsg", "", "="))
}

func TestBackscanTemplateTypes(t *testing.T) {
	test := func(src, wantName, wantType string) func(*testing.T) {
		return func(t *testing.T) {
			res := backscan(t, src)
			assert.Equal(t, wantName, res.variable.Name)
			assert.Equal(t, wantType, res.variable.Type)
		}
	}

	// template arguments are stripped to the root type
	t.Run("", test(`std::vector<int> names = "hello";`, "names", "std::vector"))
	// ...except for shared_ptr construction, which uses its element type
	t.Run("", test(`std::shared_ptr<wxRegEx> re = "hello";`, "re", "wxRegEx"))
	t.Run("", test(`make_shared<wxColour> c = "hello";`, "c", "wxColour"))
}

func TestBackscanCTORTransparency(t *testing.T) {
	// string wrappers are stepped over to the real owner
	res := backscan(t, `ShowMessage(wxString("hello"))`)
	assert.Equal(t, "ShowMessage", res.functionName)
}

func TestBackscanBareCTORWrapper(t *testing.T) {
	// a bare wxT("x") expression statement: the wrapper is transparent but
	// nothing owns the quote
	res := backscan(t, `; wxT("hello")`)
	assert.Empty(t, res.functionName)
	assert.Empty(t, res.variable.Name)
	assert.Equal(t, "wxT", res.deprecatedMacro)
}

func TestBackscanDeprecatedMacroThroughCall(t *testing.T) {
	res := backscan(t, `SetLabel(_T("hello"))`)
	assert.Equal(t, "SetLabel", res.functionName)
	assert.Equal(t, "_T", res.deprecatedMacro)
}

func TestBackscanStreamOperator(t *testing.T) {
	res := backscan(t, `std::wcout << "hello"`)
	assert.Empty(t, res.functionName)
	assert.Equal(t, "std::wcout", res.variable.Name)
}

func TestBackscanStreamFunctionCall(t *testing.T) {
	// one parenthesized argument list is stepped over before the receiver
	res := backscan(t, `gDebug() << "hello"`)
	assert.Equal(t, "gDebug", res.functionName)
	assert.Empty(t, res.variable.Name)
}

func TestBackscanMemberCallDecoration(t *testing.T) {
	res := backscan(t, `label.SetText("hello")`)
	assert.Equal(t, "SetText", res.functionName)
}

func TestBackscanGlobalNamespaceDecoration(t *testing.T) {
	res := backscan(t, `::MessageBoxW("hello")`)
	assert.Equal(t, "MessageBoxW", res.functionName)
}

func TestBackscanConcatenationOperator(t *testing.T) {
	res := backscan(t, `Show(title + "hello")`)
	assert.Equal(t, "Show", res.functionName)
	assert.Equal(t, "+", res.variable.Operator)
}

func TestBackscanComparisonOperator(t *testing.T) {
	// the equality lands in the operator slot of the translation call
	res := backscan(t, `str == _("hello")`)
	assert.Equal(t, "_", res.functionName)
	assert.Equal(t, "==", res.variable.Operator)
}

func TestBackscanKeywordOwner(t *testing.T) {
	res := backscan(t, `if ("some text")`)
	assert.Equal(t, "if", res.functionName)
}

func TestRemoveDecorations(t *testing.T) {
	test := func(input, expected string) func(*testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, expected, removeDecorations(input))
		}
	}

	t.Run("", test("name&", "name"))
	t.Run("", test("name&&", "name"))
	t.Run("", test("::Global", "Global"))
	t.Run("", test("obj.Method", "Method"))
	t.Run("", test("ptr->Method", "Method"))
	t.Run("", test("std::vector<int>", "std::vector"))
	t.Run("", test("std::make_shared<wxFont>", "wxFont"))
	t.Run("", test("shared_ptr<Thing>", "Thing"))
	t.Run("", test("plain", "plain"))
}

func TestExtractBaseFunction(t *testing.T) {
	assert.Equal(t, "tr", extractBaseFunction("QObject::tr"))
	assert.Equal(t, "translate", extractBaseFunction("translate"))
	assert.Equal(t, "", extractBaseFunction("name("))
	assert.Equal(t, "", extractBaseFunction(""))
}
