package service

import (
	"context"

	"github.com/sportsmessenger/backend/internal/model"
)

// ContactListService assembles the read-only contact view for a user:
// who they can message now, who they could request, and which incoming
// requests await their response. It never mutates exchange or message
// state and does not gate sending — that is the PermissionService's job.
type ContactListService interface {
	ListContacts(ctx context.Context, userID string) (*model.ContactList, error)
}
