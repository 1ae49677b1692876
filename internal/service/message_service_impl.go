package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sportsmessenger/backend/internal/model"
	"github.com/sportsmessenger/backend/internal/repository"
)

// messageServiceImpl は MessageService の実装
type messageServiceImpl struct {
	users       repository.UserRepository
	messages    repository.MessageRepository
	permissions PermissionService
	limits      Limits
	now         func() time.Time
}

// NewMessageService は MessageService を生成する。now が nil なら time.Now
func NewMessageService(users repository.UserRepository, messages repository.MessageRepository, permissions PermissionService, limits Limits, now func() time.Time) MessageService {
	if now == nil {
		now = time.Now
	}
	return &messageServiceImpl{
		users:       users,
		messages:    messages,
		permissions: permissions,
		limits:      limits,
		now:         now,
	}
}

// Send はメッセージを送信する
func (s *messageServiceImpl) Send(ctx context.Context, senderID, recipientID, content string) (*model.Message, Decision, error) {
	content = strings.TrimSpace(content)
	if content == "" || len([]rune(content)) > model.MaxMessageLength {
		return nil, Decision{}, ErrInvalidContent
	}

	var msg *model.Message
	var decision Decision
	err := s.messages.WithSenderLock(ctx, senderID, func(ctx context.Context) error {
		d, err := s.permissions.CanSend(ctx, senderID, recipientID)
		if err != nil {
			return err
		}
		decision = d
		if !d.Allowed {
			return nil
		}
		m := &model.Message{SenderID: senderID, RecipientID: recipientID, Content: content}
		if err := s.messages.Create(ctx, m); err != nil {
			return err
		}
		msg = m
		return nil
	})
	if err != nil {
		return nil, Decision{}, err
	}
	return msg, decision, nil
}

// Conversation は 2 ユーザー間の全履歴を返し、相手からの未読を既読にする
func (s *messageServiceImpl) Conversation(ctx context.Context, userID, contactID string) ([]*model.Message, error) {
	messages, err := s.messages.ConversationBetween(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}
	if err := s.messages.MarkRead(ctx, userID, contactID); err != nil {
		return nil, err
	}
	return messages, nil
}

// Limits は当日の送信数と上限のレポートを返す。ユーザーが存在しない場合は
// ゼロ値のレポートを返す（従来 API 互換の挙動）
func (s *messageServiceImpl) Limits(ctx context.Context, userID, officialID string) (*LimitsReport, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		zero := 0
		return &LimitsReport{DailyLimit: &zero}, nil
	}
	if err != nil {
		return nil, err
	}

	from, to := dayWindow(s.now())
	total, err := s.messages.CountBySender(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	report := &LimitsReport{TotalToday: total}
	if user.Role == model.RoleAthlete {
		daily := s.limits.Daily
		report.DailyLimit = &daily
		report.IsExceeded = total >= daily

		if officialID != "" {
			toOfficial, err := s.messages.CountBySenderToRecipient(ctx, userID, officialID, from, to)
			if err != nil {
				return nil, err
			}
			perOfficial := s.limits.PerOfficial
			report.ToOfficial = &toOfficial
			report.OfficialLimit = &perOfficial
		}
	}
	return report, nil
}

// Validate は送信せずに許可判定だけを行う
func (s *messageServiceImpl) Validate(ctx context.Context, senderID, recipientID string) (Decision, error) {
	return s.permissions.CanSend(ctx, senderID, recipientID)
}
