package engine

import "testing"

func TestCanonicalLangCodeAlreadyTop20(t *testing.T) {
	code, ok := CanonicalLangCode("en")
	if !ok || code != "en" {
		t.Fatalf("got %q, %v; want \"en\", true", code, ok)
	}
}

func TestCanonicalLangCodeNormalizesISO6393(t *testing.T) {
	code, ok := CanonicalLangCode("deu")
	if !ok || code != "de" {
		t.Fatalf("got %q, %v; want \"de\", true", code, ok)
	}
}

func TestCanonicalLangCodeUnsupportedLanguage(t *testing.T) {
	_, ok := CanonicalLangCode("swa")
	if ok {
		t.Fatal("expected swa (Swahili) to not resolve to a supported language")
	}
}

func TestCanonicalLangCodeUnknownCode(t *testing.T) {
	_, ok := CanonicalLangCode("not-a-real-code")
	if ok {
		t.Fatal("expected an unrecognized code to fail")
	}
}
