package translation

import "errors"

var (
	// ErrTranslationNotFound indicates the translation was not found
	ErrTranslationNotFound = errors.New("translation not found")

	// ErrRuleNotApplicable indicates the submitted plural category is not
	// one the entity requires in the target language
	ErrRuleNotApplicable = errors.New("plural category not applicable to entity in this language")
)
