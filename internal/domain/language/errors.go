package language

import "errors"

var (
	// ErrUnknownLanguage indicates the language code is not in the catalog
	ErrUnknownLanguage = errors.New("unknown language code")
)
