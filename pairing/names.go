/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package pairing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds case, strips diacritics and collapses whitespace, so that
// "MARÍA  Garcia " and "maria garcia" compare equal.
func Normalize(s string) string {
	// Transformers carry state; build a fresh chain per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	return strings.Join(strings.Fields(cases.Fold().String(stripped)), " ")
}

// Resolve maps free text onto a canonical roster name.
//
// An exact match on the normalized form always wins. Otherwise, unless the
// engine was built with WithStrictNames, the first normalized name that
// contains the input (or is contained by it) is accepted. Candidates are
// tried in lexicographic order of their normalized form, so the fallback is
// stable across runs even when the input is ambiguous.
func (e *Engine) Resolve(text string) (string, error) {
	n := Normalize(text)
	if n == "" {
		return "", ErrNameRequired
	}

	if name, ok := e.names[n]; ok {
		return name, nil
	}

	if !e.strict {
		for _, k := range e.keys {
			if strings.Contains(k, n) || strings.Contains(n, k) {
				return e.names[k], nil
			}
		}
	}

	return "", ErrNameNotRecognized
}
