package engine

import iso "github.com/barbashov/iso639-3"

// CanonicalLangCode resolves an arbitrary ISO 639-1/2/3 code to the
// two-letter code this module reports labels in. Callers that receive
// language codes from external systems — a corpus tagged in ISO 639-3,
// a caller's own config in ISO 639-2 — don't need to pre-normalize
// before comparing against a Segment's Language or configuring
// language-scoped behavior.
func CanonicalLangCode(code string) (string, bool) {
	if isSupportedLang(code) {
		return code, true
	}
	lang := iso.FromAnyCode(code)
	if lang == nil {
		return "", false
	}
	if isSupportedLang(lang.Part1) {
		return lang.Part1, true
	}
	return "", false
}
