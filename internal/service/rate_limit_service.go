package service

import (
	"context"
	"time"

	"github.com/sportsmessenger/backend/internal/repository"
)

// LimitStatus は 1 つの上限に対する現時点の使用状況。
// Exceeded は「次の 1 通が上限を超えるか」= Count >= Limit
type LimitStatus struct {
	Count    int
	Limit    int
	Exceeded bool
}

// Limits holds the daily caps applied to athlete senders. Officials are
// never limited.
type Limits struct {
	// Daily caps the total messages an athlete may send per day.
	Daily int
	// PerOfficial caps the messages an athlete may send to one official per day.
	PerOfficial int
}

// DefaultLimits are the product defaults: 100 messages per day in total,
// 5 per day to any one official.
var DefaultLimits = Limits{Daily: 100, PerOfficial: 5}

// RateLimitService computes daily message counters for a sender against the
// configured caps. It only counts; role-based exemptions are the
// PermissionService's concern.
type RateLimitService interface {
	CheckGlobal(ctx context.Context, senderID string) (LimitStatus, error)
	CheckPerRecipient(ctx context.Context, senderID, recipientID string) (LimitStatus, error)
}

// rateLimitServiceImpl は RateLimitService の実装
type rateLimitServiceImpl struct {
	messages repository.MessageRepository
	limits   Limits
	now      func() time.Time
}

// NewRateLimitService creates a RateLimitService. A nil now defaults to
// time.Now; tests inject a fixed clock.
func NewRateLimitService(messages repository.MessageRepository, limits Limits, now func() time.Time) RateLimitService {
	if now == nil {
		now = time.Now
	}
	return &rateLimitServiceImpl{messages: messages, limits: limits, now: now}
}

// CheckGlobal は送信者が今日送った総メッセージ数を全体上限と比較する
func (s *rateLimitServiceImpl) CheckGlobal(ctx context.Context, senderID string) (LimitStatus, error) {
	from, to := dayWindow(s.now())
	count, err := s.messages.CountBySender(ctx, senderID, from, to)
	if err != nil {
		return LimitStatus{}, err
	}
	return LimitStatus{Count: count, Limit: s.limits.Daily, Exceeded: count >= s.limits.Daily}, nil
}

// CheckPerRecipient は特定の相手へ今日送った数を相手別上限と比較する
func (s *rateLimitServiceImpl) CheckPerRecipient(ctx context.Context, senderID, recipientID string) (LimitStatus, error) {
	from, to := dayWindow(s.now())
	count, err := s.messages.CountBySenderToRecipient(ctx, senderID, recipientID, from, to)
	if err != nil {
		return LimitStatus{}, err
	}
	return LimitStatus{Count: count, Limit: s.limits.PerOfficial, Exceeded: count >= s.limits.PerOfficial}, nil
}
