package service

import (
	"context"

	"github.com/sportsmessenger/backend/internal/model"
)

// ExchangeService は連絡先交換リクエストのライフサイクルを司る。
// PENDING → {ACCEPTED, REJECTED} の遷移は非発信者だけが行え、削除
// （切断）はどの状態からでも両参加者が行える
type ExchangeService interface {
	// Request creates a new pending exchange between the two users. Only
	// athlete-official pairs are valid; either side may initiate. A stale
	// REJECTED record for the pair is replaced.
	Request(ctx context.Context, fromUserID, toUserID string) (*model.ContactExchange, error)

	// Accept transitions a pending exchange to ACCEPTED. userID must be a
	// participant other than the initiator.
	Accept(ctx context.Context, exchangeID, userID string) (*model.ContactExchange, error)

	// Reject transitions a pending exchange to REJECTED. userID must be a
	// participant other than the initiator.
	Reject(ctx context.Context, exchangeID, userID string) (*model.ContactExchange, error)

	// Disconnect deletes the exchange regardless of its status. userID must
	// be a participant.
	Disconnect(ctx context.Context, exchangeID, userID string) error
}
