package service

import (
	"context"
	"errors"

	"github.com/samber/lo"
	"github.com/sportsmessenger/backend/internal/model"
	"github.com/sportsmessenger/backend/internal/repository"
)

// contactListServiceImpl は ContactListService の実装
type contactListServiceImpl struct {
	users     repository.UserRepository
	exchanges repository.ExchangeRepository
	messages  repository.MessageRepository
}

// NewContactListService は ContactListService を生成する
func NewContactListService(users repository.UserRepository, exchanges repository.ExchangeRepository, messages repository.MessageRepository) ContactListService {
	return &contactListServiceImpl{users: users, exchanges: exchanges, messages: messages}
}

// ListContacts はユーザーの連絡先ビューを組み立てる
func (s *contactListServiceImpl) ListContacts(ctx context.Context, userID string) (*model.ContactList, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if user.Role == model.RoleAthlete {
		return s.listForAthlete(ctx, user)
	}
	return s.listForOfficial(ctx, user)
}

// listForAthlete: 他の選手は無条件に連絡可、役員は ACCEPTED な交換がある
// 場合のみ連絡可。残りの役員はリクエスト候補
func (s *contactListServiceImpl) listForAthlete(ctx context.Context, athlete *model.User) (*model.ContactList, error) {
	contacts := make([]model.ContactEntry, 0)
	potential := make([]model.ContactEntry, 0)

	athletes, err := s.users.ListByRole(ctx, model.RoleAthlete)
	if err != nil {
		return nil, err
	}
	for _, other := range athletes {
		if other.ID == athlete.ID {
			continue
		}
		entry, err := s.reachableEntry(ctx, athlete.ID, other, nil)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, entry)
	}

	accepted, err := s.exchanges.ListForUser(ctx, athlete.ID, model.ExchangeAccepted)
	if err != nil {
		return nil, err
	}
	acceptedByOfficial := lo.KeyBy(accepted, func(e *model.ContactExchange) string {
		return e.OfficialID
	})

	officials, err := s.users.ListByRole(ctx, model.RoleOfficial)
	if err != nil {
		return nil, err
	}
	for _, official := range officials {
		if exchange, ok := acceptedByOfficial[official.ID]; ok {
			entry, err := s.reachableEntry(ctx, athlete.ID, official, exchange)
			if err != nil {
				return nil, err
			}
			contacts = append(contacts, entry)
			continue
		}
		pending, err := s.pendingForPair(ctx, athlete.ID, official.ID)
		if err != nil {
			return nil, err
		}
		potential = append(potential, potentialEntry(official, pending))
	}

	pendingRequests, err := s.pendingRequests(ctx, athlete)
	if err != nil {
		return nil, err
	}

	return &model.ContactList{
		Contacts:          contacts,
		PotentialContacts: potential,
		PendingRequests:   pendingRequests,
	}, nil
}

// listForOfficial: ACCEPTED な交換のある選手のみ連絡可。他の役員は
// 一切表示しない。残りの選手はリクエスト候補
func (s *contactListServiceImpl) listForOfficial(ctx context.Context, official *model.User) (*model.ContactList, error) {
	contacts := make([]model.ContactEntry, 0)
	potential := make([]model.ContactEntry, 0)

	accepted, err := s.exchanges.ListForUser(ctx, official.ID, model.ExchangeAccepted)
	if err != nil {
		return nil, err
	}
	acceptedByAthlete := lo.KeyBy(accepted, func(e *model.ContactExchange) string {
		return e.AthleteID
	})

	athletes, err := s.users.ListByRole(ctx, model.RoleAthlete)
	if err != nil {
		return nil, err
	}
	for _, athlete := range athletes {
		if exchange, ok := acceptedByAthlete[athlete.ID]; ok {
			entry, err := s.reachableEntry(ctx, official.ID, athlete, exchange)
			if err != nil {
				return nil, err
			}
			contacts = append(contacts, entry)
			continue
		}
		pending, err := s.pendingForPair(ctx, athlete.ID, official.ID)
		if err != nil {
			return nil, err
		}
		potential = append(potential, potentialEntry(athlete, pending))
	}

	pendingRequests, err := s.pendingRequests(ctx, official)
	if err != nil {
		return nil, err
	}

	return &model.ContactList{
		Contacts:          contacts,
		PotentialContacts: potential,
		PendingRequests:   pendingRequests,
	}, nil
}

// reachableEntry builds a messageable contact row enriched with the latest
// message between the two users and the unread count addressed to userID.
func (s *contactListServiceImpl) reachableEntry(ctx context.Context, userID string, other *model.User, exchange *model.ContactExchange) (model.ContactEntry, error) {
	entry := model.ContactEntry{
		ID:         other.ID,
		Name:       other.Name,
		Role:       other.Role,
		CanMessage: true,
	}
	if exchange != nil {
		status := exchange.Status
		id := exchange.ID
		entry.ExchangeStatus = &status
		entry.ExchangeID = &id
	}

	last, err := s.messages.LastBetween(ctx, userID, other.ID)
	if err != nil {
		return model.ContactEntry{}, err
	}
	if last != nil {
		content := last.Content
		at := last.CreatedAt
		entry.LastMessage = &content
		entry.LastMessageTime = &at
	}

	unread, err := s.messages.CountUnread(ctx, userID, other.ID)
	if err != nil {
		return model.ContactEntry{}, err
	}
	entry.UnreadCount = unread
	return entry, nil
}

// potentialEntry builds a not-yet-messageable row. A pending request for the
// pair blocks sending another one.
func potentialEntry(other *model.User, pending *model.ContactExchange) model.ContactEntry {
	entry := model.ContactEntry{
		ID:             other.ID,
		Name:           other.Name,
		Role:           other.Role,
		CanSendRequest: pending == nil,
	}
	if pending != nil {
		status := pending.Status
		id := pending.ID
		entry.ExchangeStatus = &status
		entry.ExchangeID = &id
	}
	return entry
}

// pendingForPair はペアの PENDING 交換を返す。なければ nil
func (s *contactListServiceImpl) pendingForPair(ctx context.Context, athleteID, officialID string) (*model.ContactExchange, error) {
	exchange, err := s.exchanges.FindByPair(ctx, athleteID, officialID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if exchange.Status != model.ExchangePending {
		return nil, nil
	}
	return exchange, nil
}

// pendingRequests は自分が発信者でない PENDING 交換を集める
func (s *contactListServiceImpl) pendingRequests(ctx context.Context, user *model.User) ([]model.PendingRequest, error) {
	pending, err := s.exchanges.ListForUser(ctx, user.ID, model.ExchangePending)
	if err != nil {
		return nil, err
	}
	incoming := lo.Filter(pending, func(e *model.ContactExchange, _ int) bool {
		return e.InitiatedBy != user.ID
	})

	requests := make([]model.PendingRequest, 0, len(incoming))
	for _, exchange := range incoming {
		from, err := s.users.FindByID(ctx, exchange.InitiatedBy)
		if errors.Is(err, repository.ErrNotFound) {
			// Dangling initiator; skip rather than fail the whole view.
			continue
		}
		if err != nil {
			return nil, err
		}
		requests = append(requests, model.PendingRequest{
			ExchangeID: exchange.ID,
			FromUser:   *from,
			ToUser:     *user,
			Status:     exchange.Status,
			CreatedAt:  exchange.CreatedAt,
		})
	}
	return requests, nil
}
