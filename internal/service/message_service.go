package service

import (
	"context"

	"github.com/sportsmessenger/backend/internal/model"
)

// LimitsReport is the limits view exposed at the API boundary. Pointer
// fields are omitted for users the corresponding limit does not apply to.
type LimitsReport struct {
	TotalToday    int  `json:"total_today"`
	ToOfficial    *int `json:"to_official,omitempty"`
	DailyLimit    *int `json:"daily_limit"`
	OfficialLimit *int `json:"official_limit,omitempty"`
	IsExceeded    bool `json:"is_exceeded"`
}

// MessageService はメッセージ送信・取得のビジネスロジック
type MessageService interface {
	// Send validates content, checks permission, and persists the message.
	// The permission check and the insert run under a per-sender lock so
	// concurrent sends cannot race past a daily limit. A business denial is
	// returned as the Decision with a nil message and a nil error.
	Send(ctx context.Context, senderID, recipientID, content string) (*model.Message, Decision, error)

	// Conversation returns the full history between the two users, oldest
	// first, then marks the messages from contactID to userID as read.
	Conversation(ctx context.Context, userID, contactID string) ([]*model.Message, error)

	// Limits reports today's counters for a user. The per-official counter
	// is included only when the user is an athlete and officialID is given.
	Limits(ctx context.Context, userID, officialID string) (*LimitsReport, error)

	// Validate runs the permission check without sending.
	Validate(ctx context.Context, senderID, recipientID string) (Decision, error)
}
