package pagination

import (
	"fmt"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to errors returned by this package.
const (
	TextCodeMissingPlaceholder = "MISSING_PLACEHOLDER"
	TextCodeDuplicateRule      = "DUPLICATE_RULE"
	TextCodeInvalidRule        = "INVALID_RULE_PATTERN"
	TextCodeInvalidConfig      = "INVALID_CONFIG"
	TextCodeInvalidRuleTable   = "INVALID_RULE_TABLE"
)

func newMissingPlaceholderError(suffix string) *goerrors.Error {
	message := fmt.Sprintf("suffix %q must contain the %s placeholder", suffix, Placeholder)
	return goerrors.NewValidation(message, goerrors.FieldError{
		Field:   "suffix",
		Message: "missing " + Placeholder,
		Value:   suffix,
	}).
		WithCode(http.StatusBadRequest).
		WithTextCode(TextCodeMissingPlaceholder)
}

func newDuplicateRuleError(pattern string, first, second int) *goerrors.Error {
	message := fmt.Sprintf("rule %d duplicates pattern %q from rule %d and will never match", second, pattern, first)
	return goerrors.New(message, goerrors.CategoryConflict).
		WithCode(http.StatusConflict).
		WithTextCode(TextCodeDuplicateRule).
		WithMetadata(map[string]any{
			"pattern": pattern,
			"first":   first,
			"second":  second,
		})
}

func newInvalidRuleError(err error, pattern string, index int) *goerrors.Error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, fmt.Sprintf("rule %d has an invalid pattern", index)).
		WithCode(http.StatusBadRequest).
		WithTextCode(TextCodeInvalidRule).
		WithMetadata(map[string]any{
			"pattern": pattern,
			"index":   index,
		})
}

func newConfigError(err error, source string) *goerrors.Error {
	return goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to load pagination config").
		WithTextCode(TextCodeInvalidConfig).
		WithMetadata(map[string]any{"source": source})
}

func newRuleTableError(err error) *goerrors.Error {
	return goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to decode rule table").
		WithTextCode(TextCodeInvalidRuleTable)
}
