package engine

import "testing"

func TestLanguagePatternsLoadedFromEmbeddedYAML(t *testing.T) {
	if len(languagePatterns) == 0 {
		t.Fatal("languagePatterns is empty; embedded patterns.yaml failed to load")
	}
	enPats, ok := languagePatterns["en"]
	if !ok || len(enPats) == 0 {
		t.Fatal("expected non-empty \"en\" pattern list")
	}
}

func TestStrongEnWordsLoadedFromEmbeddedYAML(t *testing.T) {
	if !strongEnWords["hello"] {
		t.Fatal(`expected "hello" in strongEnWords`)
	}
	if !strongEnWords["the"] {
		t.Fatal(`expected "the" in strongEnWords`)
	}
}

func TestProblematicWordsLoadedFromEmbeddedYAML(t *testing.T) {
	if got := problematicWords["eleganz"]; got != "de" {
		t.Fatalf(`problematicWords["eleganz"] = %q, want "de"`, got)
	}
	if got := problematicWords["kucing"]; got != "id" {
		t.Fatalf(`problematicWords["kucing"] = %q, want "id"`, got)
	}
}

func TestAllTop20HaveAtLeastOnePatternOrCharHint(t *testing.T) {
	for _, lang := range top20 {
		_, hasPattern := languagePatterns[lang]
		_, hasChar := characterPatterns[lang]
		if !hasPattern && !hasChar {
			t.Errorf("language %q has neither a pattern nor a character hint table entry", lang)
		}
	}
}
