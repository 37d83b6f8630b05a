package sprakvakt

import (
	"errors"
	"os"
	"path"
	"regexp"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/sprakvakt/sprakvakt/srcscan"
)

// Config is the project-level configuration read from sprakvakt.yaml in the
// scanned directory.
type Config struct {
	// Checks lists enabled check names ("all" enables everything); empty
	// means all checks.
	Checks []string `yaml:"checks"`

	IgnoredVariablePatterns  []string `yaml:"ignored_variable_patterns"`
	FontNames                []string `yaml:"font_names"`
	UntranslatableExceptions []string `yaml:"untranslatable_exceptions"`

	MinWordsForUnavailable int `yaml:"min_words_for_unavailable"`
	MinCppVersion          int `yaml:"min_cpp_version"`
	MaxLineLength          int `yaml:"max_line_length"`

	ExceptionsShouldBeTranslatable         bool `yaml:"exceptions_should_be_translatable"`
	LogMessagesCanBeTranslatable           bool `yaml:"log_messages_can_be_translatable"`
	AllowTranslatingPunctuationOnlyStrings bool `yaml:"allow_translating_punctuation_only_strings"`
	CollapseDoubleQuotes                   bool `yaml:"collapse_double_quotes"`
}

// ErrNoConfig is returned when the scanned directory has no sprakvakt.yaml.
var ErrNoConfig = errors.New("no sprakvakt.yaml found in directory")

func LoadConfig(dir string) (Config, error) {
	var result Config

	configFilename := path.Join(dir, "sprakvakt.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return Config{}, ErrNoConfig
	}

	yamlFile, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(yamlFile, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}

// ScanOptions converts the configuration into scanner options. Unknown
// check names and invalid regexes are logged and skipped rather than
// failing the run.
func (c Config) ScanOptions(logger logrus.FieldLogger) srcscan.Options {
	opts := srcscan.Options{
		MinWordsForUnavailable:                 c.MinWordsForUnavailable,
		MinCppVersion:                          c.MinCppVersion,
		MaxLineLength:                          c.MaxLineLength,
		ExceptionsShouldBeTranslatable:         c.ExceptionsShouldBeTranslatable,
		LogMessagesCanBeTranslatable:           c.LogMessagesCanBeTranslatable,
		AllowTranslatingPunctuationOnlyStrings: c.AllowTranslatingPunctuationOnlyStrings,
		CollapseDoubleQuotes:                   c.CollapseDoubleQuotes,
		ExtraFontNames:                         c.FontNames,
		ExtraUntranslatableExceptions:          c.UntranslatableExceptions,
	}
	if len(c.Checks) == 0 {
		opts.Style = srcscan.CheckAll
	} else {
		style, unknown := srcscan.StyleFromNames(c.Checks)
		for _, name := range unknown {
			logger.WithField("check", name).Warn("unknown check name in configuration; skipping")
		}
		opts.Style = style
	}
	for _, pattern := range c.IgnoredVariablePatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			logger.WithError(err).WithField("pattern", pattern).Warn("invalid ignored-variable pattern; skipping")
			continue
		}
		opts.IgnoredVariablePatterns = append(opts.IgnoredVariablePatterns, re)
	}
	return opts
}
