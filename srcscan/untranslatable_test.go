package srcscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUntranslatable(t *testing.T) {
	r := NewReviewer(Options{Style: CheckAll})

	untranslatable := func(s string) func(*testing.T) {
		return func(t *testing.T) {
			result, _ := r.isUntranslatable(s, true)
			assert.True(t, result, "expected untranslatable: %q", s)
		}
	}
	translatable := func(s string) func(*testing.T) {
		return func(t *testing.T) {
			result, _ := r.isUntranslatable(s, true)
			assert.False(t, result, "expected translatable: %q", s)
		}
	}

	// long single tokens (GUID-like)
	t.Run("", untranslatable("e6b4a1c77a2c4f0b930ec6cbd79aa2c1af29cd00"))
	// identifiers
	t.Run("", untranslatable("user_level_permission"))
	t.Run("", untranslatable("__HIGH_SCORE__"))
	t.Run("", untranslatable("Config_File_Path"))
	t.Run("", untranslatable("GetValueFromUser"))
	t.Run("", untranslatable("getValueFromUser"))
	// paths, URLs, files
	t.Run("", untranslatable("/usr/local/share/icons"))
	t.Run("", untranslatable(`C:\Program Files\App`))
	t.Run("", untranslatable("shaders/player1.vert"))
	t.Run("", untranslatable("readme.txt"))
	t.Run("", untranslatable("*.png"))
	t.Run("", untranslatable("www.example.com/download"))
	t.Run("", untranslatable("support@example.com"))
	// code fragments
	t.Run("", untranslatable("wxWidgets::wxString"))
	t.Run("", untranslatable("SELECT * FROM users"))
	t.Run("", untranslatable("#define VALUE 5"))
	t.Run("", untranslatable("--enable-logging"))
	t.Run("", untranslatable("ComputeNumbers()"))
	t.Run("", untranslatable("HKEY_LOCAL_MACHINE\\Software"))
	// encodings and standards
	t.Run("", untranslatable("UTF-8"))
	t.Run("", untranslatable("windows-1252"))
	// file filters
	t.Run("", untranslatable("PNG (*.png)"))
	t.Run("", untranslatable("TIFF (*.tif;*.tiff)|*.tif;*.tiff"))
	// placeholder junk
	t.Run("", untranslatable("XXXX, XXX"))
	t.Run("", untranslatable("123"))
	t.Run("", untranslatable("ODCTask"))
	// hashtags and shortcuts
	t.Run("", untranslatable("#Fundraising"))
	t.Run("", untranslatable("CTRL+SHIFT+P"))
	// fonts
	t.Run("", untranslatable("Times New Roman"))
	// MIME
	t.Run("", untranslatable("application/x-tar"))
	// culture tags
	t.Run("", untranslatable("en_US"))

	// real messages
	t.Run("", translatable("Hello, world!"))
	t.Run("", translatable("Unable to open the selected file."))
	t.Run("", translatable("Printing %d pages of %s today"))
	t.Run("", translatable("N/A"))
	t.Run("", translatable("%d%%"))
	t.Run("", translatable("..."))
	t.Run("", translatable("50%"))
	t.Run("", translatable("Item(s) found here"))
	t.Run("", translatable("<No Name Specified>"))

	// short whitelisted strings fail the word-count gate, so they are only
	// reachable when the caller isn't limiting by word count
	translatableNoLimit := func(s string) func(*testing.T) {
		return func(t *testing.T) {
			result, _ := r.isUntranslatable(s, false)
			assert.False(t, result, "expected translatable: %q", s)
		}
	}
	t.Run("", translatableNoLimit("O&K"))
	t.Run("", translatableNoLimit("O&n"))
	t.Run("", translatableNoLimit("PhD"))
}

func TestIsUntranslatableMinWords(t *testing.T) {
	strict := NewReviewer(Options{Style: CheckAll, MinWordsForUnavailable: 2})
	loose := NewReviewer(Options{Style: CheckAll, MinWordsForUnavailable: 1})

	result, _ := strict.isUntranslatable("Cancel", true)
	assert.True(t, result, "one word under a two-word minimum")

	result, _ = loose.isUntranslatable("Cancel", true)
	assert.False(t, result, "one word passes a one-word minimum")

	// the word-count gate only applies when limiting is requested
	result, _ = strict.isUntranslatable("Cancel", false)
	assert.False(t, result)
}

func TestIsUntranslatableIsPure(t *testing.T) {
	r := NewReviewer(Options{Style: CheckAll})
	for i := 0; i < 3; i++ {
		result, length := r.isUntranslatable("Open the pod bay doors", true)
		assert.False(t, result)
		assert.Equal(t, len("Open the pod bay doors"), length)
	}
}

func TestUntranslatableExceptionOption(t *testing.T) {
	r := NewReviewer(Options{Style: CheckAll, ExtraUntranslatableExceptions: []string{"WiFi"}})
	result, _ := r.isUntranslatable("WiFi", false)
	assert.False(t, result)

	plain := NewReviewer(Options{Style: CheckAll})
	result, _ = plain.isUntranslatable("WiFi", false)
	assert.True(t, result, "camel-case word without the exception")
}

func TestHTMLHandling(t *testing.T) {
	r := NewReviewer(Options{Style: CheckAll})

	// markup with real content strips down to translatable text
	result, _ := r.isUntranslatable("<span>Choose a color below</span>", true)
	assert.False(t, result)

	// pure markup is not translatable
	result, _ = r.isUntranslatable(`<meta charset="utf-8">`, true)
	assert.True(t, result)
}
