package enhance

import (
	"strings"
	"testing"
	"time"
)

func TestExtractKeyPoints(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "sentences split on punctuation",
			input: "Need to renovate the kitchen. Also fix the bathroom! Budget is flexible",
			want:  []string{"Need to renovate the kitchen", "Also fix the bathroom", "Budget is flexible"},
		},
		{
			name:  "short fragments dropped",
			input: "Fix roof. ok. The whole thing leaks badly",
			want:  []string{"Fix roof", "The whole thing leaks badly"},
		},
		{
			name:  "single sentence",
			input: "Complete apartment renovation",
			want:  []string{"Complete apartment renovation"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractKeyPoints(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d points %v, want %d %v", len(got), got, len(tc.want), tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("point %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestDetectProjectType(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Нужен ремонт квартиры", "Ремонт"},
		{"kitchen renovation needed", "Ремонт"},
		{"planning new construction of a garage", "Строительство"},
		{"нужна сантехника в ванной", "Сантехника"},
		{"rewiring, electrical panel replacement", "Электрика"},
		{"течет крыша", "Кровля"},
		{"fasada treba obnovu", "Фасад"},
		{"interior design for living room", "Интерьер"},
		{"landscape work in the garden", "Ландшафт"},
		{"что-то непонятное", ""},
	}
	for _, tc := range cases {
		if got := DetectProjectType(tc.input); got != tc.want {
			t.Errorf("DetectProjectType(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestDetectProjectTypeOrder(t *testing.T) {
	// Both renovation and roofing keywords present: earlier category wins.
	got := DetectProjectType("ремонт крыши")
	if got != "Ремонт" {
		t.Errorf("got %q, want Ремонт", got)
	}
}

func TestExtractUrgency(t *testing.T) {
	urgent := []string{
		"нужно срочно", "this is URGENT", "hitno molim", "treba danas",
		"asap please", "fix it today",
	}
	for _, in := range urgent {
		if got := ExtractUrgency(in); got != UrgencyHigh {
			t.Errorf("ExtractUrgency(%q) = %q, want high", in, got)
		}
	}
	if got := ExtractUrgency("когда-нибудь потом"); got != UrgencyNormal {
		t.Errorf("got %q, want normal", got)
	}
}

func TestExtractBudgetMention(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"готов потратить 5000 €", "💰 Упомянут бюджет: ~5000"},
		{"примерно 3000 евро", "💰 Упомянут бюджет: ~3000"},
		{"around 1500 euro", "💰 Упомянут бюджет: ~1500"},
		{"бюджет: 2000", "💰 Упомянут бюджет: ~2000"},
		{"budget 4500 for everything", "💰 Упомянут бюджет: ~4500"},
		{"no money talk here", ""},
	}
	for _, tc := range cases {
		// The currency patterns may capture a trailing space after the amount.
		if got := ExtractBudgetMention(tc.input); strings.TrimSpace(got) != tc.want {
			t.Errorf("ExtractBudgetMention(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	s := Structure(
		"Срочно нужен ремонт кухни. Бюджет: 5000",
		"Ivan Petrov", "+382 67 123 456", "ivan@example.com",
		time.Now(),
	)

	ru := Format(s, "ru")
	for _, want := range []string{
		"📋 СТРУКТУРИРОВАННАЯ ЗАЯВКА",
		"🏗️ Тип проекта: Ремонт",
		UrgencyHigh,
		"💰 Упомянут бюджет: ~5000",
		"✅ Ключевые требования:",
		"  1. Срочно нужен ремонт кухни",
		"📝 Оригинальное описание клиента:",
	} {
		if !strings.Contains(ru, want) {
			t.Errorf("ru output missing %q:\n%s", want, ru)
		}
	}

	en := Format(s, "en")
	if !strings.Contains(en, "📋 STRUCTURED REQUEST") || !strings.Contains(en, "✅ Key Requirements:") {
		t.Errorf("en output missing headers:\n%s", en)
	}
	me := Format(s, "me")
	if !strings.Contains(me, "📋 STRUKTURIRANA PRIJAVA") || !strings.Contains(me, "✅ Ključni zahtjevi:") {
		t.Errorf("me output missing headers:\n%s", me)
	}
}

func TestFormatOmitsEmptySections(t *testing.T) {
	s := Structure("zzzzzzzzzzz", "A B", "067123456789", "", time.Now())
	out := Format(s, "en")
	if strings.Contains(out, "🏗️") {
		t.Errorf("unexpected project type section:\n%s", out)
	}
	if strings.Contains(out, "💰") {
		t.Errorf("unexpected budget section:\n%s", out)
	}
	if !strings.Contains(out, UrgencyNormal) {
		t.Errorf("urgency line should always render:\n%s", out)
	}
	if !strings.Contains(out, "\"zzzzzzzzzzz\"") {
		t.Errorf("original description missing:\n%s", out)
	}
}
