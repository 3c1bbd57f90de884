package engine

import (
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/unicode/norm"
)

// Script is a coarse writing-system family, matching the name-prefix
// heuristic the detector is grounded on: the first whitespace-delimited
// word of a character's Unicode name (e.g. "LATIN SMALL LETTER A" -> LATIN).
// Go's standard library has no equivalent of Python's unicodedata.name, so
// script families are recovered from unicode.RangeTable membership instead;
// the mapping below is built to agree with the name-prefix heuristic for
// every character in the tables that matter for the 20 supported languages.
type Script int

const (
	OTHER Script = iota
	LATIN
	CYRILLIC
	ARABIC
	DEVANAGARI
	BENGALI
	HAN
	HIRAGANA
	KATAKANA
	HANGUL
	THAI
)

func (s Script) String() string {
	switch s {
	case LATIN:
		return "LATIN"
	case CYRILLIC:
		return "CYRILLIC"
	case ARABIC:
		return "ARABIC"
	case DEVANAGARI:
		return "DEVANAGARI"
	case BENGALI:
		return "BENGALI"
	case HAN:
		return "HAN"
	case HIRAGANA:
		return "HIRAGANA"
	case KATAKANA:
		return "KATAKANA"
	case HANGUL:
		return "HANGUL"
	case THAI:
		return "THAI"
	default:
		return "OTHER"
	}
}

var scriptCache *lru.Cache[rune, Script]

func init() {
	c, err := lru.New[rune, Script](8192)
	if err != nil {
		panic(err)
	}
	scriptCache = c
}

// normalizeText canonicalizes input to NFC.
func normalizeText(s string) string {
	return norm.NFC.String(s)
}

// charScript classifies a single rune into its script family. Non-letters
// map to OTHER. Reads through a thread-safe LRU cache.
func charScript(r rune) Script {
	if !unicode.IsLetter(r) {
		return OTHER
	}
	if v, ok := scriptCache.Get(r); ok {
		return v
	}
	s := classifyRune(r)
	scriptCache.Add(r, s)
	return s
}

func classifyRune(r rune) Script {
	switch {
	case unicode.Is(unicode.Latin, r):
		return LATIN
	case unicode.Is(unicode.Cyrillic, r):
		return CYRILLIC
	case unicode.Is(unicode.Arabic, r):
		return ARABIC
	case unicode.Is(unicode.Devanagari, r):
		return DEVANAGARI
	case unicode.Is(unicode.Bengali, r):
		return BENGALI
	case unicode.Is(unicode.Hiragana, r):
		return HIRAGANA
	case unicode.Is(unicode.Katakana, r):
		return KATAKANA
	case unicode.Is(unicode.Hangul, r):
		return HANGUL
	case unicode.Is(unicode.Thai, r):
		return THAI
	case unicode.Is(unicode.Han, r):
		return HAN
	default:
		return OTHER
	}
}

// dominantScript returns the most-frequent letter-script among a string's
// characters, ties broken by first-seen order.
func dominantScript(s string) Script {
	var order []Script
	counts := map[Script]int{}
	for _, r := range s {
		sc := charScript(r)
		if sc == OTHER {
			continue
		}
		if _, ok := counts[sc]; !ok {
			order = append(order, sc)
		}
		counts[sc]++
	}
	best := OTHER
	bestCount := 0
	for _, sc := range order {
		if counts[sc] > bestCount {
			best = sc
			bestCount = counts[sc]
		}
	}
	return best
}

// perfectScriptMap mirrors PERFECT_SCRIPT_MAP in the original detector: a
// script that maps to exactly one supported language.
var perfectScriptMap = map[Script]string{
	BENGALI:    "bn",
	HIRAGANA:   "ja",
	KATAKANA:   "ja",
	HANGUL:     "ko",
	THAI:       "th",
	DEVANAGARI: "hi",
}

// scriptLangMap mirrors SCRIPT_LANG_MAP: scripts shared by multiple
// supported languages.
var scriptLangMap = map[Script][]string{
	LATIN:      {"en", "fr", "de", "es", "it", "pt", "nl", "pl", "tr", "vi", "id"},
	CYRILLIC:   {"ru"},
	ARABIC:     {"ar", "ur"},
	DEVANAGARI: {"hi"},
	HAN:        {"zh", "ja"},
	HIRAGANA:   {"ja"},
	KATAKANA:   {"ja"},
	HANGUL:     {"ko"},
	THAI:       {"th"},
	BENGALI:    {"bn"},
}

// langPrimaryScript mirrors LANG_PRIMARY_SCRIPT, used by the decoder's
// script-mismatch penalty.
var langPrimaryScript = map[string]Script{
	"hi": DEVANAGARI, "bn": BENGALI, "ar": ARABIC, "ur": ARABIC,
	"zh": HAN, "ja": HAN, "ko": HANGUL, "th": THAI, "ru": CYRILLIC,
}

// shortNoPenaltyScripts mirrors SHORT_NO_PENALTY_SCRIPTS.
var shortNoPenaltyScripts = map[Script]bool{
	HAN: true, HIRAGANA: true, KATAKANA: true, THAI: true, HANGUL: true,
}
