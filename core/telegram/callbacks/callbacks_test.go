package callbacks

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantKey     string
		wantPayload string
	}{
		{"unique with payload", "\fedit|phone", "edit", "phone"},
		{"unique only", "\ffiles_done", "files_done", ""},
		{"no prefix", "lang|ru", "lang", "ru"},
		{"empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, payload := Parse(&tele.Callback{Data: tt.data})
			if key != tt.wantKey || payload != tt.wantPayload {
				t.Fatalf("Parse(%q) = (%q, %q), want (%q, %q)", tt.data, key, payload, tt.wantKey, tt.wantPayload)
			}
		})
	}
}

func TestParseNil(t *testing.T) {
	key, payload := Parse(nil)
	if key != "" || payload != "" {
		t.Fatalf("Parse(nil) = (%q, %q), want empty", key, payload)
	}
}
