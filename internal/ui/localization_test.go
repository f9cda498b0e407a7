package ui

import "testing"

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyNoSelection); got != "You haven't selected a project!" {
		t.Errorf("unexpected english text %q", got)
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("system language should resolve to en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("missing key should return itself, got %q", got)
	}
}

func TestLocalizationComplete(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Fatalf("no texts for %s", lang)
		}
		for key := range l.texts["en"] {
			if texts[key] == "" {
				t.Errorf("%s: missing translation for %s", lang, key)
			}
		}
	}
}
