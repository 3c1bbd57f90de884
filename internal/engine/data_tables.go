package engine

import (
	_ "embed"

	"gopkg.in/yaml.v2"
)

// Lookup tables keyed by language code, implementing "dynamic dispatch
// via tables" — there is no per-language behavior complex enough here to
// warrant a polymorphic type, so allowed scripts, character hints,
// pattern lists and curated word lists are plain data. The curated word
// and pattern lists are authored in data/*.yaml and compiled into the
// binary via go:embed, so the module carries its data with it and needs
// no files on disk at runtime.

//go:embed data/patterns.yaml
var patternsYAML []byte

//go:embed data/strong_en_words.yaml
var strongEnWordsYAML []byte

//go:embed data/problematic_words.yaml
var problematicWordsYAML []byte

// languagePatterns mirrors LANGUAGE_PATTERNS: curated regexes used by the
// pattern-hint signal provider.
var languagePatterns = mustLoadPatterns(patternsYAML)

// strongEnWords mirrors STRONG_EN_WORDS: function words pinned to en
// regardless of other evidence.
var strongEnWords = buildStringSet(mustLoadStringList(strongEnWordsYAML))

// problematicWords mirrors PROBLEMATIC_WORDS: surface forms known to be
// systematically misclassified, overridden by table lookup.
var problematicWords = mustLoadStringMap(problematicWordsYAML)

func mustLoadPatterns(raw []byte) map[string][]string {
	var m map[string][]string
	if err := yaml.Unmarshal(raw, &m); err != nil {
		panic("engine: malformed embedded patterns.yaml: " + err.Error())
	}
	return m
}

func mustLoadStringList(raw []byte) []string {
	var s []string
	if err := yaml.Unmarshal(raw, &s); err != nil {
		panic("engine: malformed embedded yaml string list: " + err.Error())
	}
	return s
}

func mustLoadStringMap(raw []byte) map[string]string {
	var m map[string]string
	if err := yaml.Unmarshal(raw, &m); err != nil {
		panic("engine: malformed embedded yaml string map: " + err.Error())
	}
	return m
}

// characterPatterns mirrors CHARACTER_PATTERNS: distinctive accented
// characters per language, used by the character-set-hint provider.
var characterPatterns = map[string][]string{
	"de": {"ä", "ö", "ü", "ß"},
	"fr": {"ç", "é", "è", "ê", "à", "ù", "ô", "â", "î", "œ", "ï"},
	"es": {"ñ", "í", "ó", "á", "é", "ú", "ü"},
	"pt": {"ã", "õ", "ç", "à", "á", "â", "é", "ê", "í", "ó", "ô", "ú"},
	"it": {"à", "è", "é", "ì", "ò", "ù"},
	"tr": {"ğ", "ı", "ş", "ç", "ü", "ö"},
	"pl": {"ą", "ć", "ę", "ł", "ń", "ó", "ś", "ź", "ż"},
	"nl": {"ij", "oe", "eu", "aa", "ee", "oo", "uu"},
	"vi": {"ă", "â", "ê", "ô", "ơ", "ư", "đ"},
}

// simpOnlyChars / tradBiasChars / jpSpecificChars ground the zh/ja
// disambiguation fight.
var simpOnlyChars = buildRuneSet("艺术爱优现书庆问观联广产众讯电车门闻医气")
var tradBiasChars = buildRuneSet("藝術愛優現書觀聯廣門醫氣國體學專靜寧駅時円見曜")
var jpSpecificChars = buildRuneSet("円駅時曜見")

// idComprehensiveRoots mirrors ID_COMPREHENSIVE_ROOTS: a curated root
// dictionary used by the stemmer fallback, compound splitter, and
// morphology checks.
var idComprehensiveRoots = buildStringSet([]string{
	"alam", "harapan", "esensi", "jiwa", "keluarga", "cahaya", "bunga", "lautan",
	"bayangan", "keberanian", "keheningan", "buku", "keanggunan", "gunung",
	"kebijaksanaan", "mimpi", "sungai", "perdamaian", "kebebasan", "kehidupan",
	"pikiran", "perasaan", "perjalanan", "strategi", "kebenaran", "keadilan",
	"kemerdekaan", "kesehatan", "kekuatan", "kematian", "kesempatan", "kemajuan",
	"kemunduran", "keterampilan", "kecantikan", "kebersihan", "kesabaran",
	"kejujuran", "kemurahan", "kekayaan", "kemiskinan", "kesulitan", "kemudahan",
	"kebugaran", "kecerdasan", "kemampuan", "kebodohan", "kemalasan", "kegembiraan",
	"kesedihan", "kekhawatiran", "kebingungan", "kebosanan", "kecemasan",
	"kegelisahan", "kegagalan", "kesuksesan", "kemenangan", "kekalahan",
	"keterbatasan", "keterikatan", "keterasingan", "keterpaksaan",
	"keterbukaan", "bencana", "kucing", "natureza", "dunia", "masyarakat", "masa",
	"depan", "masadepan", "seni", "musik", "cinta",
})

// idTriggers mirrors ID_TRIGGERS: roots plus common function words, used
// by the disambiguator's sentence-level Indonesian evidence count.
var idTriggers = buildStringSet(append([]string{
	"ini", "adalah", "teks", "indonesia", "bahasa", "yang", "dan", "dengan", "untuk",
	"pada", "dari", "ke", "di", "akan", "sudah", "belum", "sedang", "bisa", "dapat",
	"harus", "mau", "ingin", "mereka",
}, setKeys(idComprehensiveRoots)...))

// urSpecificChars / urWords / arSpecificChars ground the ar/ur
// disambiguation fight.
var urSpecificChars = buildRuneSet("یگپچژڑںے")
var urWords = buildStringSet([]string{"ہے", "میں", "نے", "کا", "کی", "کے", "سے", "اور", "کرنا", "ہونا"})
var arSpecificChars = buildRuneSet("ظضغ")

func buildStringSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func setKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
