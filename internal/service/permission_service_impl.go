package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportsmessenger/backend/internal/model"
	"github.com/sportsmessenger/backend/internal/repository"
)

// permissionServiceImpl は PermissionService の実装
type permissionServiceImpl struct {
	users     repository.UserRepository
	exchanges repository.ExchangeRepository
	limiter   RateLimitService
}

// NewPermissionService は PermissionService を生成する
func NewPermissionService(users repository.UserRepository, exchanges repository.ExchangeRepository, limiter RateLimitService) PermissionService {
	return &permissionServiceImpl{users: users, exchanges: exchanges, limiter: limiter}
}

// CanSend evaluates the send rules in order, first match wins:
//  1. unknown sender or recipient
//  2. official → official is never allowed
//  3. athlete → athlete needs only the global daily limit
//  4. athlete ↔ official needs an accepted exchange; an athlete sender is
//     then checked against the per-official limit and the global limit,
//     while an official sender is unlimited
func (s *permissionServiceImpl) CanSend(ctx context.Context, senderID, recipientID string) (Decision, error) {
	sender, err := s.users.FindByID(ctx, senderID)
	if errors.Is(err, repository.ErrNotFound) {
		return deny(CodeUserNotFound, "User not found"), nil
	}
	if err != nil {
		return Decision{}, err
	}
	recipient, err := s.users.FindByID(ctx, recipientID)
	if errors.Is(err, repository.ErrNotFound) {
		return deny(CodeUserNotFound, "User not found"), nil
	}
	if err != nil {
		return Decision{}, err
	}

	if sender.Role == model.RoleOfficial && recipient.Role == model.RoleOfficial {
		return deny(CodeOfficialsCannotMessage, "Officials cannot message each other"), nil
	}

	if sender.Role == model.RoleAthlete && recipient.Role == model.RoleAthlete {
		return s.checkGlobalLimit(ctx, senderID)
	}

	// Athlete and official, either direction.
	athleteID, officialID := senderID, recipientID
	if sender.Role == model.RoleOfficial {
		athleteID, officialID = recipientID, senderID
	}

	exchange, err := s.exchanges.FindByPair(ctx, athleteID, officialID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return Decision{}, err
	}
	if err != nil || exchange.Status != model.ExchangeAccepted {
		return deny(CodeExchangeRequired, "Contact exchange required. Please send a request first."), nil
	}

	if sender.Role == model.RoleAthlete {
		status, err := s.limiter.CheckPerRecipient(ctx, senderID, recipientID)
		if err != nil {
			return Decision{}, err
		}
		if status.Exceeded {
			reason := fmt.Sprintf("You have exceeded the daily limit of %d messages to this official", status.Limit)
			return denyLimit(CodeOfficialDailyLimitExceeded, reason, status), nil
		}
		return s.checkGlobalLimit(ctx, senderID)
	}

	// Official sending to an athlete: no limits apply.
	return allow(), nil
}

func (s *permissionServiceImpl) checkGlobalLimit(ctx context.Context, senderID string) (Decision, error) {
	status, err := s.limiter.CheckGlobal(ctx, senderID)
	if err != nil {
		return Decision{}, err
	}
	if status.Exceeded {
		reason := fmt.Sprintf("You have exceeded the daily limit of %d messages", status.Limit)
		return denyLimit(CodeDailyLimitExceeded, reason, status), nil
	}
	return allow(), nil
}
