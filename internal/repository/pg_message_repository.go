package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportsmessenger/backend/internal/model"
)

// PgMessageRepository は MessageRepository の PostgreSQL 実装
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository は PgMessageRepository を生成する
func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

var _ MessageRepository = (*PgMessageRepository)(nil)

const messageSelectCols = `id, sender_id, recipient_id, content, created_at, read`

func scanMessage(scan func(...any) error) (*model.Message, error) {
	var m model.Message
	if err := scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.CreatedAt, &m.Read); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create はメッセージを作成する。ID 未設定の場合はここで採番する
func (r *PgMessageRepository) Create(ctx context.Context, msg *model.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO messages (id, sender_id, recipient_id, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, read`,
		msg.ID, msg.SenderID, msg.RecipientID, msg.Content,
	).Scan(&msg.CreatedAt, &msg.Read)
}

// CountBySender は [from, to) の区間に送信者が送った全メッセージ数を返す
func (r *PgMessageRepository) CountBySender(ctx context.Context, senderID string, from, to time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages
		 WHERE sender_id = $1 AND created_at >= $2 AND created_at < $3`,
		senderID, from, to,
	).Scan(&count)
	return count, err
}

// CountBySenderToRecipient は [from, to) の区間に特定の相手へ送った数を返す
func (r *PgMessageRepository) CountBySenderToRecipient(ctx context.Context, senderID, recipientID string, from, to time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages
		 WHERE sender_id = $1 AND recipient_id = $2 AND created_at >= $3 AND created_at < $4`,
		senderID, recipientID, from, to,
	).Scan(&count)
	return count, err
}

// ConversationBetween returns every message exchanged between the two users,
// oldest first.
func (r *PgMessageRepository) ConversationBetween(ctx context.Context, userID, contactID string) ([]*model.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+messageSelectCols+` FROM messages
		 WHERE (sender_id = $1 AND recipient_id = $2)
		    OR (sender_id = $2 AND recipient_id = $1)
		 ORDER BY created_at ASC`,
		userID, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.Message
	for rows.Next() {
		m, err := scanMessage(rows.Scan)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// LastBetween は 2 ユーザー間の最新メッセージを返す。なければ nil
func (r *PgMessageRepository) LastBetween(ctx context.Context, userID, contactID string) (*model.Message, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+messageSelectCols+` FROM messages
		 WHERE (sender_id = $1 AND recipient_id = $2)
		    OR (sender_id = $2 AND recipient_id = $1)
		 ORDER BY created_at DESC LIMIT 1`,
		userID, contactID)
	m, err := scanMessage(row.Scan)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return m, err
}

// CountUnread は senderID から recipientID への未読メッセージ数を返す
func (r *PgMessageRepository) CountUnread(ctx context.Context, recipientID, senderID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages
		 WHERE sender_id = $1 AND recipient_id = $2 AND read = FALSE`,
		senderID, recipientID,
	).Scan(&count)
	return count, err
}

// MarkRead は senderID から recipientID への未読メッセージを既読にする
func (r *PgMessageRepository) MarkRead(ctx context.Context, recipientID, senderID string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE messages SET read = TRUE
		 WHERE sender_id = $1 AND recipient_id = $2 AND read = FALSE`,
		senderID, recipientID)
	return err
}

// WithSenderLock runs fn while a transaction holds
// pg_advisory_xact_lock(hashtext(senderID)). The lock is released at commit,
// after fn's count-and-insert has completed, so a second concurrent send
// from the same sender counts the first one's committed row instead of
// racing past the daily limit.
func (r *PgMessageRepository) WithSenderLock(ctx context.Context, senderID string, fn func(ctx context.Context) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, senderID); err != nil {
		return err
	}
	if err := fn(ctx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
