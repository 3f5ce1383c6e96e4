package oidc

import (
	"strings"

	"golang.org/x/text/language"
)

type Locale language.Tag

type Locales []language.Tag

// UnmarshalText parses a space separated list of BCP 47 language tags.
// Unparsable or root tags are dropped, the request must not fail on a
// malformed display hint.
func (l *Locales) UnmarshalText(text []byte) error {
	locales := strings.Split(string(text), " ")
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err == nil && !tag.IsRoot() {
			*l = append(*l, tag)
		}
	}
	return nil
}
