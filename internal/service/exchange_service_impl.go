package service

import (
	"context"
	"errors"
	"time"

	"github.com/sportsmessenger/backend/internal/model"
	"github.com/sportsmessenger/backend/internal/repository"
)

// exchangeServiceImpl は ExchangeService の実装
type exchangeServiceImpl struct {
	users     repository.UserRepository
	exchanges repository.ExchangeRepository
	now       func() time.Time
}

// NewExchangeService は ExchangeService を生成する。now が nil なら time.Now
func NewExchangeService(users repository.UserRepository, exchanges repository.ExchangeRepository, now func() time.Time) ExchangeService {
	if now == nil {
		now = time.Now
	}
	return &exchangeServiceImpl{users: users, exchanges: exchanges, now: now}
}

// Request は新しい交換リクエストを作成する
func (s *exchangeServiceImpl) Request(ctx context.Context, fromUserID, toUserID string) (*model.ContactExchange, error) {
	fromUser, err := s.findUser(ctx, fromUserID)
	if err != nil {
		return nil, err
	}
	toUser, err := s.findUser(ctx, toUserID)
	if err != nil {
		return nil, err
	}

	// Role pairing is re-checked on every request rather than trusted from
	// stored rows.
	if fromUser.Role == toUser.Role {
		return nil, ErrRolesEqual
	}

	// Canonical pair key: who initiated does not change which side is the
	// athlete.
	athleteID, officialID := fromUserID, toUserID
	if fromUser.Role == model.RoleOfficial {
		athleteID, officialID = toUserID, fromUserID
	}

	existing, err := s.exchanges.FindByPair(ctx, athleteID, officialID)
	switch {
	case err == nil:
		switch existing.Status {
		case model.ExchangeAccepted:
			return nil, ErrAlreadyAccepted
		case model.ExchangePending:
			return nil, ErrAlreadyPending
		default:
			// A rejected record no longer blocks the pair; replace it.
			if err := s.exchanges.Delete(ctx, existing.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
		}
	case errors.Is(err, repository.ErrNotFound):
		// No record for the pair, proceed.
	default:
		return nil, err
	}

	exchange := &model.ContactExchange{
		AthleteID:   athleteID,
		OfficialID:  officialID,
		Status:      model.ExchangePending,
		InitiatedBy: fromUserID,
	}
	if err := s.exchanges.Create(ctx, exchange); err != nil {
		// Lost a race against a concurrent request for the same pair; the
		// unique constraint guarantees only one record survives.
		if errors.Is(err, repository.ErrDuplicatePair) {
			return nil, ErrAlreadyPending
		}
		return nil, err
	}
	return exchange, nil
}

// Accept は交換リクエストを承諾する
func (s *exchangeServiceImpl) Accept(ctx context.Context, exchangeID, userID string) (*model.ContactExchange, error) {
	return s.respond(ctx, exchangeID, userID, model.ExchangeAccepted)
}

// Reject は交換リクエストを拒否する
func (s *exchangeServiceImpl) Reject(ctx context.Context, exchangeID, userID string) (*model.ContactExchange, error) {
	return s.respond(ctx, exchangeID, userID, model.ExchangeRejected)
}

func (s *exchangeServiceImpl) respond(ctx context.Context, exchangeID, userID string, status model.ExchangeStatus) (*model.ContactExchange, error) {
	exchange, err := s.findExchange(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	if exchange.InitiatedBy == userID {
		return nil, ErrOwnRequest
	}
	if !exchange.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}

	respondedAt := s.now().UTC()
	if err := s.exchanges.UpdateStatus(ctx, exchange.ID, status, respondedAt); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExchangeNotFound
		}
		return nil, err
	}
	exchange.Status = status
	exchange.RespondedAt = &respondedAt
	return exchange, nil
}

// Disconnect は交換レコードを削除する。PENDING 含むどの状態でも可
func (s *exchangeServiceImpl) Disconnect(ctx context.Context, exchangeID, userID string) error {
	exchange, err := s.findExchange(ctx, exchangeID)
	if err != nil {
		return err
	}
	if !exchange.HasParticipant(userID) {
		return ErrNotParticipant
	}
	if err := s.exchanges.Delete(ctx, exchange.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExchangeNotFound
		}
		return err
	}
	return nil
}

func (s *exchangeServiceImpl) findUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *exchangeServiceImpl) findExchange(ctx context.Context, id string) (*model.ContactExchange, error) {
	exchange, err := s.exchanges.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrExchangeNotFound
	}
	return exchange, err
}
