package repository

import (
	"context"
	"time"

	"github.com/sportsmessenger/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// UserRepository はユーザー永続化のインターフェース
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// ExchangeRepository は連絡先交換レコード永続化のインターフェース。
// Create は (athlete_id, official_id) のユニーク制約によりペアごとに
// アトミックで、重複は ErrDuplicatePair を返す
type ExchangeRepository interface {
	FindByID(ctx context.Context, id string) (*model.ContactExchange, error)
	FindByPair(ctx context.Context, athleteID, officialID string) (*model.ContactExchange, error)
	ListForUser(ctx context.Context, userID string, status model.ExchangeStatus) ([]*model.ContactExchange, error)
	Create(ctx context.Context, exchange *model.ContactExchange) error
	UpdateStatus(ctx context.Context, id string, status model.ExchangeStatus, respondedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// MessageRepository はメッセージ永続化のインターフェース。
// カウント系は [from, to) の半開区間で数える
type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	CountBySender(ctx context.Context, senderID string, from, to time.Time) (int, error)
	CountBySenderToRecipient(ctx context.Context, senderID, recipientID string, from, to time.Time) (int, error)
	ConversationBetween(ctx context.Context, userID, contactID string) ([]*model.Message, error)
	LastBetween(ctx context.Context, userID, contactID string) (*model.Message, error)
	CountUnread(ctx context.Context, recipientID, senderID string) (int, error)
	MarkRead(ctx context.Context, recipientID, senderID string) error

	// WithSenderLock runs fn while holding a per-sender advisory lock, so
	// that counting today's messages and inserting the next one cannot
	// interleave between two concurrent sends from the same sender.
	WithSenderLock(ctx context.Context, senderID string, fn func(ctx context.Context) error) error
}
