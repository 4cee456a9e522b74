package i18n

import (
	"strings"
	"testing"
)

func TestT(t *testing.T) {
	if got := T("en", "error_prefix"); got != "Error:" {
		t.Errorf("en error_prefix = %q", got)
	}
	if got := T("ru", "error_prefix"); got != "Ошибка:" {
		t.Errorf("ru error_prefix = %q", got)
	}
}

func TestT_Formatting(t *testing.T) {
	got := T("en", "model_label", "llama3")
	if got != "Model: llama3. Analyzing changes..." {
		t.Errorf("model_label = %q", got)
	}

	// The model name appears twice in this message.
	got = T("en", "ollama_model_not_found", "codestral")
	if strings.Count(got, "codestral") != 2 {
		t.Errorf("ollama_model_not_found should repeat the model name, got %q", got)
	}
}

func TestT_FallbackLocale(t *testing.T) {
	if got := T("de", "error_prefix"); got != "Error:" {
		t.Errorf("unknown locale should fall back to en, got %q", got)
	}
}

func TestT_UnknownKey(t *testing.T) {
	if got := T("en", "nonexistent_key"); got != "nonexistent_key" {
		t.Errorf("unknown key should be returned as-is, got %q", got)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct{ in, want string }{
		{"auto", "en"},
		{"", "en"},
		{"en", "en"},
		{"ru", "ru"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLocalesCoverSameKeys(t *testing.T) {
	for key := range messages["en"] {
		if _, ok := messages["ru"][key]; !ok {
			t.Errorf("ru table missing key %q", key)
		}
	}
	for key := range messages["ru"] {
		if _, ok := messages["en"][key]; !ok {
			t.Errorf("en table missing key %q", key)
		}
	}
}
