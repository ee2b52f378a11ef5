// Package commands defines the metadata attached to registered bot commands.
package commands

import (
	tele "gopkg.in/telebot.v4"
)

// Command binds a handler to its menu description and access rules.
// AdminOnly commands are wrapped with the access middleware; Hidden
// ones are excluded from the Telegram command menu. Aliases match when
// the command is typed as plain text.
type Command struct {
	Handler     tele.HandlerFunc
	Description string
	AdminOnly   bool
	Hidden      bool
	Aliases     []string
}
