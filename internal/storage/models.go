// Package storage persists users and leads through sqlx.
package storage

import (
	"database/sql"
	"encoding/json"
)

// User is a row in the users table.
type User struct {
	TgUserID  int64  `db:"tg_user_id"`
	Language  string `db:"language"`
	CreatedAt string `db:"created_at"`
}

// Attachment describes one file attached to a lead.
// Type is one of "photo", "document" or "video"; FileID is the
// Telegram file identifier.
type Attachment struct {
	Type   string `json:"type"`
	FileID string `json:"file_id"`
}

// Lead is a row in the leads table. Timestamps are stored as RFC 3339
// text so ordering works the same on both drivers.
type Lead struct {
	ID          int64          `db:"id"`
	TgUserID    int64          `db:"tg_user_id"`
	FullName    string         `db:"full_name"`
	Phone       string         `db:"phone"`
	Email       sql.NullString `db:"email"`
	Description string         `db:"description"`
	Files       sql.NullString `db:"files"`
	CreatedAt   string         `db:"created_at"`
}

// EmailOrEmpty returns the email or "" when none was provided.
func (l *Lead) EmailOrEmpty() string {
	if l.Email.Valid {
		return l.Email.String
	}
	return ""
}

// Attachments decodes the JSON files column. A missing or malformed
// column yields an empty list.
func (l *Lead) Attachments() []Attachment {
	if !l.Files.Valid || l.Files.String == "" {
		return nil
	}
	var files []Attachment
	if err := json.Unmarshal([]byte(l.Files.String), &files); err != nil {
		return nil
	}
	return files
}

// CreatedDate returns the date part (YYYY-MM-DD) of CreatedAt.
func (l *Lead) CreatedDate() string {
	if len(l.CreatedAt) >= 10 {
		return l.CreatedAt[:10]
	}
	return l.CreatedAt
}

// NewLead carries the fields for inserting a lead.
type NewLead struct {
	TgUserID    int64
	FullName    string
	Phone       string
	Email       string
	Description string
	Files       []Attachment
}
