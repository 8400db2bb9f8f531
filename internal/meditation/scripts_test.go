package meditation

import (
	"testing"

	"github.com/serenitylabs/serenity/internal/assistant"
)

func TestLookupBreathingFiveEnglish(t *testing.T) {
	script := Lookup("breathing", "5", assistant.LocaleEnglish)
	if len(script.Lines) != 10 {
		t.Fatalf("expected the 10-line breathing script, got %d lines", len(script.Lines))
	}
	if script.SessionType != "breathing" || script.Duration != "5" || script.Locale != assistant.LocaleEnglish {
		t.Fatalf("unexpected script metadata: %+v", script)
	}
}

func TestLookupNormalizesSessionType(t *testing.T) {
	script := Lookup("  BREATHING ", "5", assistant.LocaleEnglish)
	if len(script.Lines) != 10 {
		t.Fatalf("expected case-insensitive session type match, got %d lines", len(script.Lines))
	}
}

func TestLookupUnknownKeysFallBack(t *testing.T) {
	tests := []struct {
		name        string
		sessionType string
		duration    string
		locale      assistant.Locale
	}{
		{"unknown type", "yoga", "5", assistant.LocaleEnglish},
		{"unknown duration", "breathing", "45", assistant.LocaleEnglish},
		{"unknown both", "levitation", "0", assistant.LocaleHindi},
	}
	for _, tt := range tests {
		script := Lookup(tt.sessionType, tt.duration, tt.locale)
		if script.SessionType != "breathing" || script.Duration != "5" {
			t.Errorf("%s: expected generic breathing fallback, got %s/%s", tt.name, script.SessionType, script.Duration)
		}
		if len(script.Lines) == 0 {
			t.Errorf("%s: fallback script must not be empty", tt.name)
		}
		if script.Locale != tt.locale {
			t.Errorf("%s: fallback must keep the requested locale, got %s", tt.name, script.Locale)
		}
	}
}

func TestLookupUnsupportedLocaleUsesEnglish(t *testing.T) {
	script := Lookup("breathing", "5", assistant.Locale("fr"))
	if script.Locale != assistant.LocaleEnglish {
		t.Fatalf("expected English fallback locale, got %s", script.Locale)
	}
}

func TestLookupHindiTables(t *testing.T) {
	script := Lookup("bodyscan", "10", assistant.LocaleHindi)
	if len(script.Lines) != 14 {
		t.Fatalf("expected the 14-line Hindi body scan, got %d lines", len(script.Lines))
	}
}
