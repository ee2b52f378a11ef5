package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"

	coreconfig "github.com/gradnja/leadbot/core/config"
	"github.com/gradnja/leadbot/core/logger"
	"log/slog"
)

// Validation failures returned by SaveLead and SaveUserLanguage.
var (
	ErrEmptyName           = errors.New("full name cannot be empty")
	ErrEmptyPhone          = errors.New("phone cannot be empty")
	ErrEmptyDescription    = errors.New("description cannot be empty")
	ErrDescriptionTooShort = errors.New("description must be at least 10 characters")
	ErrUnsupportedLanguage = errors.New("unsupported language code")
)

var validLanguages = map[string]struct{}{"ru": {}, "me": {}, "en": {}}

// Repo wraps the database handle with lead and user queries.
// SQL is written with ? placeholders and rebound per driver.
type Repo struct {
	db     *sqlx.DB
	driver string
}

// NewRepo builds a Repo for the given driver (config.DriverSQLite or
// config.DriverPostgres).
func NewRepo(db *sqlx.DB, driver string) *Repo {
	return &Repo{db: db, driver: driver}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// SaveUserLanguage stores or replaces the user's language preference.
func (r *Repo) SaveUserLanguage(ctx context.Context, tgUserID int64, language string) error {
	if _, ok := validLanguages[language]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	query := r.db.Rebind(`
		INSERT INTO users (tg_user_id, language, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (tg_user_id) DO UPDATE SET language = excluded.language`)
	if _, err := r.db.ExecContext(ctx, query, tgUserID, language, now()); err != nil {
		return fmt.Errorf("save user language: %w", err)
	}
	logger.Debug(ctx, "db", "user.language.saved",
		slog.Int64("tg_user_id", tgUserID),
		slog.String("language", language),
	)
	return nil
}

// UserLanguage returns the stored language or "" for unknown users.
func (r *Repo) UserLanguage(ctx context.Context, tgUserID int64) (string, error) {
	var language string
	query := r.db.Rebind(`SELECT language FROM users WHERE tg_user_id = ?`)
	err := r.db.GetContext(ctx, &language, query, tgUserID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get user language: %w", err)
	}
	return language, nil
}

// SaveLead validates and inserts a lead, returning its id.
func (r *Repo) SaveLead(ctx context.Context, lead NewLead) (int64, error) {
	fullName := strings.TrimSpace(lead.FullName)
	phone := strings.TrimSpace(lead.Phone)
	email := strings.TrimSpace(lead.Email)
	description := strings.TrimSpace(lead.Description)

	switch {
	case fullName == "":
		return 0, ErrEmptyName
	case phone == "":
		return 0, ErrEmptyPhone
	case description == "":
		return 0, ErrEmptyDescription
	case utf8.RuneCountInString(description) < 10:
		return 0, ErrDescriptionTooShort
	}

	var emailCol sql.NullString
	if email != "" {
		emailCol = sql.NullString{String: email, Valid: true}
	}
	var filesCol sql.NullString
	if len(lead.Files) > 0 {
		raw, err := json.Marshal(lead.Files)
		if err != nil {
			return 0, fmt.Errorf("encode files: %w", err)
		}
		filesCol = sql.NullString{String: string(raw), Valid: true}
	}

	var id int64
	if r.driver == coreconfig.DriverPostgres {
		query := r.db.Rebind(`
			INSERT INTO leads (tg_user_id, full_name, phone, email, description, files, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`)
		err := r.db.GetContext(ctx, &id, query,
			lead.TgUserID, fullName, phone, emailCol, description, filesCol, now())
		if err != nil {
			return 0, fmt.Errorf("insert lead: %w", err)
		}
	} else {
		query := r.db.Rebind(`
			INSERT INTO leads (tg_user_id, full_name, phone, email, description, files, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		res, err := r.db.ExecContext(ctx, query,
			lead.TgUserID, fullName, phone, emailCol, description, filesCol, now())
		if err != nil {
			return 0, fmt.Errorf("insert lead: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("insert lead id: %w", err)
		}
	}

	logger.Info(ctx, "db", "lead.saved",
		slog.Int64("lead_id", id),
		slog.Int64("tg_user_id", lead.TgUserID),
		slog.Int("files", len(lead.Files)),
	)
	return id, nil
}

// LastLeadByUser returns the user's most recent lead, or nil when the
// user has none.
func (r *Repo) LastLeadByUser(ctx context.Context, tgUserID int64) (*Lead, error) {
	var lead Lead
	query := r.db.Rebind(`
		SELECT * FROM leads WHERE tg_user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT 1`)
	err := r.db.GetContext(ctx, &lead, query, tgUserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last lead: %w", err)
	}
	return &lead, nil
}

// LeadByID returns a lead by id, or nil when not found.
func (r *Repo) LeadByID(ctx context.Context, id int64) (*Lead, error) {
	var lead Lead
	query := r.db.Rebind(`SELECT * FROM leads WHERE id = ?`)
	err := r.db.GetContext(ctx, &lead, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &lead, nil
}

// LeadsByUser returns the user's leads, newest first.
func (r *Repo) LeadsByUser(ctx context.Context, tgUserID int64) ([]Lead, error) {
	var leads []Lead
	query := r.db.Rebind(`
		SELECT * FROM leads WHERE tg_user_id = ?
		ORDER BY created_at DESC, id DESC`)
	if err := r.db.SelectContext(ctx, &leads, query, tgUserID); err != nil {
		return nil, fmt.Errorf("list user leads: %w", err)
	}
	return leads, nil
}

// AllLeads returns every lead, newest first.
func (r *Repo) AllLeads(ctx context.Context) ([]Lead, error) {
	var leads []Lead
	query := `SELECT * FROM leads ORDER BY created_at DESC, id DESC`
	if err := r.db.SelectContext(ctx, &leads, query); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

// DeleteLead removes a lead after verifying it belongs to the user.
// Returns false when the lead does not exist or belongs to someone else.
func (r *Repo) DeleteLead(ctx context.Context, id, tgUserID int64) (bool, error) {
	query := r.db.Rebind(`DELETE FROM leads WHERE id = ? AND tg_user_id = ?`)
	res, err := r.db.ExecContext(ctx, query, id, tgUserID)
	if err != nil {
		return false, fmt.Errorf("delete lead: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete lead rows: %w", err)
	}
	if affected == 0 {
		return false, nil
	}
	logger.Info(ctx, "db", "lead.deleted",
		slog.Int64("lead_id", id),
		slog.Int64("tg_user_id", tgUserID),
	)
	return true, nil
}
