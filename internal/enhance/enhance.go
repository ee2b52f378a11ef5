// Package enhance structures raw project descriptions for the admin
// notification: key requirements, project category, urgency and budget
// mentions are extracted with keyword heuristics.
package enhance

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gradnja/leadbot/core/logger"
	"log/slog"
)

// UrgencyHigh and UrgencyNormal are the two urgency labels attached to
// a structured description.
const (
	UrgencyHigh   = "🔴 Срочно"
	UrgencyNormal = "⚪ Обычный приоритет"
)

// Structured is the analysis result for one description.
type Structured struct {
	Original    string
	KeyPoints   []string
	ProjectType string
	Urgency     string
	Budget      string
	ClientName  string
	ClientPhone string
	ClientEmail string
	AnalyzedAt  time.Time
}

var sentenceRe = regexp.MustCompile(`[.!?;]\s+`)

// ExtractKeyPoints splits the description into sentences and keeps the
// ones longer than five runes after trimming.
func ExtractKeyPoints(description string) []string {
	var points []string
	for _, s := range sentenceRe.Split(description, -1) {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) > 5 {
			points = append(points, s)
		}
	}
	return points
}

// projectCategory pairs a label with the keywords that select it.
// Order matters: the first matching category wins.
type projectCategory struct {
	label    string
	keywords []string
}

var projectCategories = []projectCategory{
	{"Ремонт", []string{"ремонт", "renovation", "renovacija", "отделка", "finishing"}},
	{"Строительство", []string{"строительство", "construction", "gradnja", "постройка", "build"}},
	{"Сантехника", []string{"сантехника", "plumbing", "водопровод", "канализация", "pipes"}},
	{"Электрика", []string{"электрика", "electrical", "električni", "проводка", "wiring"}},
	{"Кровля", []string{"крыша", "кровля", "roof", "roofing", "кров"}},
	{"Фасад", []string{"фасад", "facade", "fasada", "внешняя отделка"}},
	{"Интерьер", []string{"интерьер", "interior", "дизайн", "design"}},
	{"Ландшафт", []string{"ландшафт", "landscape", "участок", "garden", "yard"}},
}

// DetectProjectType matches the description against known categories.
// Returns an empty string when nothing matches.
func DetectProjectType(description string) string {
	lower := strings.ToLower(description)
	for _, cat := range projectCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.label
			}
		}
	}
	return ""
}

var urgentKeywords = []string{
	"срочно", "urgent", "hitno", "быстро", "quickly",
	"asap", "немедленно", "сегодня", "today", "danas",
}

// ExtractUrgency classifies the description as urgent or normal priority.
func ExtractUrgency(description string) string {
	lower := strings.ToLower(description)
	for _, kw := range urgentKeywords {
		if strings.Contains(lower, kw) {
			return UrgencyHigh
		}
	}
	return UrgencyNormal
}

var budgetRes = []*regexp.Regexp{
	regexp.MustCompile(`(\d+[\s,]?\d*)\s*€`),
	regexp.MustCompile(`(\d+[\s,]?\d*)\s*евро`),
	regexp.MustCompile(`(\d+[\s,]?\d*)\s*euro`),
	regexp.MustCompile(`бюджет[:\s]+(\d+)`),
	regexp.MustCompile(`budget[:\s]+(\d+)`),
}

// ExtractBudgetMention looks for an amount with a currency marker.
// Returns an empty string when no budget is mentioned.
func ExtractBudgetMention(description string) string {
	lower := strings.ToLower(description)
	for _, re := range budgetRes {
		if m := re.FindStringSubmatch(lower); m != nil {
			return fmt.Sprintf("💰 Упомянут бюджет: ~%s", m[1])
		}
	}
	return ""
}

// Structure runs all extractors over the description.
func Structure(description, fullName, phone, email string, now time.Time) Structured {
	return Structured{
		Original:    description,
		KeyPoints:   ExtractKeyPoints(description),
		ProjectType: DetectProjectType(description),
		Urgency:     ExtractUrgency(description),
		Budget:      ExtractBudgetMention(description),
		ClientName:  fullName,
		ClientPhone: phone,
		ClientEmail: email,
		AnalyzedAt:  now,
	}
}

// Format renders the structured analysis for the given language.
// Sections without data are omitted.
func Format(s Structured, lang string) string {
	var b strings.Builder

	switch lang {
	case "ru":
		b.WriteString("📋 СТРУКТУРИРОВАННАЯ ЗАЯВКА\n\n")
	case "me":
		b.WriteString("📋 STRUKTURIRANA PRIJAVA\n\n")
	default:
		b.WriteString("📋 STRUCTURED REQUEST\n\n")
	}

	if s.ProjectType != "" {
		fmt.Fprintf(&b, "🏗️ Тип проекта: %s\n\n", s.ProjectType)
	}
	if s.Urgency != "" {
		fmt.Fprintf(&b, "%s\n\n", s.Urgency)
	}
	if s.Budget != "" {
		fmt.Fprintf(&b, "%s\n\n", s.Budget)
	}

	if len(s.KeyPoints) > 0 {
		switch lang {
		case "ru":
			b.WriteString("✅ Ключевые требования:\n")
		case "me":
			b.WriteString("✅ Ključni zahtjevi:\n")
		default:
			b.WriteString("✅ Key Requirements:\n")
		}
		for i, point := range s.KeyPoints {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, point)
		}
		b.WriteString("\n")
	}

	switch lang {
	case "ru":
		b.WriteString("📝 Оригинальное описание клиента:\n")
	case "me":
		b.WriteString("📝 Originalni opis klijenta:\n")
	default:
		b.WriteString("📝 Original Client Description:\n")
	}
	fmt.Fprintf(&b, "\"%s\"", s.Original)

	return b.String()
}

// Enhance structures and formats the description in one step.
// Never fails: on empty analysis the original description still shows.
func Enhance(ctx context.Context, description, fullName, phone, email, lang string) string {
	structured := Structure(description, fullName, phone, email, time.Now())
	out := Format(structured, lang)
	logger.Info(ctx, "enh", "description.enhanced",
		slog.Int("key_points", len(structured.KeyPoints)),
		slog.String("project_type", structured.ProjectType),
		slog.Bool("budget", structured.Budget != ""),
	)
	return out
}
