package service

import (
	"context"
	"time"

	"github.com/sportsmessenger/backend/internal/model"
	"github.com/sportsmessenger/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Shared repository mocks for the service tests
// ---------------------------------------------------------------------------

type mockUserRepository struct {
	findByIDFunc   func(ctx context.Context, id string) (*model.User, error)
	listFunc       func(ctx context.Context) ([]*model.User, error)
	listByRoleFunc func(ctx context.Context, role model.Role) ([]*model.User, error)
	createFunc     func(ctx context.Context, user *model.User) error
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockUserRepository) List(ctx context.Context) ([]*model.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}
func (m *mockUserRepository) ListByRole(ctx context.Context, role model.Role) ([]*model.User, error) {
	if m.listByRoleFunc != nil {
		return m.listByRoleFunc(ctx, role)
	}
	return nil, nil
}
func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

// userDirectory is a convenience FindByID over a fixed set of users.
func userDirectory(users ...*model.User) func(ctx context.Context, id string) (*model.User, error) {
	return func(ctx context.Context, id string) (*model.User, error) {
		for _, u := range users {
			if u.ID == id {
				return u, nil
			}
		}
		return nil, repository.ErrNotFound
	}
}

type mockExchangeRepository struct {
	findByIDFunc     func(ctx context.Context, id string) (*model.ContactExchange, error)
	findByPairFunc   func(ctx context.Context, athleteID, officialID string) (*model.ContactExchange, error)
	listForUserFunc  func(ctx context.Context, userID string, status model.ExchangeStatus) ([]*model.ContactExchange, error)
	createFunc       func(ctx context.Context, exchange *model.ContactExchange) error
	updateStatusFunc func(ctx context.Context, id string, status model.ExchangeStatus, respondedAt time.Time) error
	deleteFunc       func(ctx context.Context, id string) error
}

func (m *mockExchangeRepository) FindByID(ctx context.Context, id string) (*model.ContactExchange, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockExchangeRepository) FindByPair(ctx context.Context, athleteID, officialID string) (*model.ContactExchange, error) {
	if m.findByPairFunc != nil {
		return m.findByPairFunc(ctx, athleteID, officialID)
	}
	return nil, repository.ErrNotFound
}
func (m *mockExchangeRepository) ListForUser(ctx context.Context, userID string, status model.ExchangeStatus) ([]*model.ContactExchange, error) {
	if m.listForUserFunc != nil {
		return m.listForUserFunc(ctx, userID, status)
	}
	return nil, nil
}
func (m *mockExchangeRepository) Create(ctx context.Context, exchange *model.ContactExchange) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, exchange)
	}
	return nil
}
func (m *mockExchangeRepository) UpdateStatus(ctx context.Context, id string, status model.ExchangeStatus, respondedAt time.Time) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status, respondedAt)
	}
	return nil
}
func (m *mockExchangeRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockMessageRepository struct {
	createFunc                   func(ctx context.Context, msg *model.Message) error
	countBySenderFunc            func(ctx context.Context, senderID string, from, to time.Time) (int, error)
	countBySenderToRecipientFunc func(ctx context.Context, senderID, recipientID string, from, to time.Time) (int, error)
	conversationBetweenFunc      func(ctx context.Context, userID, contactID string) ([]*model.Message, error)
	lastBetweenFunc              func(ctx context.Context, userID, contactID string) (*model.Message, error)
	countUnreadFunc              func(ctx context.Context, recipientID, senderID string) (int, error)
	markReadFunc                 func(ctx context.Context, recipientID, senderID string) error
	withSenderLockFunc           func(ctx context.Context, senderID string, fn func(ctx context.Context) error) error
}

func (m *mockMessageRepository) Create(ctx context.Context, msg *model.Message) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, msg)
	}
	return nil
}
func (m *mockMessageRepository) CountBySender(ctx context.Context, senderID string, from, to time.Time) (int, error) {
	if m.countBySenderFunc != nil {
		return m.countBySenderFunc(ctx, senderID, from, to)
	}
	return 0, nil
}
func (m *mockMessageRepository) CountBySenderToRecipient(ctx context.Context, senderID, recipientID string, from, to time.Time) (int, error) {
	if m.countBySenderToRecipientFunc != nil {
		return m.countBySenderToRecipientFunc(ctx, senderID, recipientID, from, to)
	}
	return 0, nil
}
func (m *mockMessageRepository) ConversationBetween(ctx context.Context, userID, contactID string) ([]*model.Message, error) {
	if m.conversationBetweenFunc != nil {
		return m.conversationBetweenFunc(ctx, userID, contactID)
	}
	return nil, nil
}
func (m *mockMessageRepository) LastBetween(ctx context.Context, userID, contactID string) (*model.Message, error) {
	if m.lastBetweenFunc != nil {
		return m.lastBetweenFunc(ctx, userID, contactID)
	}
	return nil, nil
}
func (m *mockMessageRepository) CountUnread(ctx context.Context, recipientID, senderID string) (int, error) {
	if m.countUnreadFunc != nil {
		return m.countUnreadFunc(ctx, recipientID, senderID)
	}
	return 0, nil
}
func (m *mockMessageRepository) MarkRead(ctx context.Context, recipientID, senderID string) error {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, recipientID, senderID)
	}
	return nil
}
func (m *mockMessageRepository) WithSenderLock(ctx context.Context, senderID string, fn func(ctx context.Context) error) error {
	if m.withSenderLockFunc != nil {
		return m.withSenderLockFunc(ctx, senderID, fn)
	}
	return fn(ctx)
}

// ---------------------------------------------------------------------------
// Service-level mocks
// ---------------------------------------------------------------------------

type mockRateLimitService struct {
	checkGlobalFunc       func(ctx context.Context, senderID string) (LimitStatus, error)
	checkPerRecipientFunc func(ctx context.Context, senderID, recipientID string) (LimitStatus, error)
}

func (m *mockRateLimitService) CheckGlobal(ctx context.Context, senderID string) (LimitStatus, error) {
	if m.checkGlobalFunc != nil {
		return m.checkGlobalFunc(ctx, senderID)
	}
	return LimitStatus{Limit: DefaultLimits.Daily}, nil
}
func (m *mockRateLimitService) CheckPerRecipient(ctx context.Context, senderID, recipientID string) (LimitStatus, error) {
	if m.checkPerRecipientFunc != nil {
		return m.checkPerRecipientFunc(ctx, senderID, recipientID)
	}
	return LimitStatus{Limit: DefaultLimits.PerOfficial}, nil
}

type mockPermissionService struct {
	canSendFunc func(ctx context.Context, senderID, recipientID string) (Decision, error)
}

func (m *mockPermissionService) CanSend(ctx context.Context, senderID, recipientID string) (Decision, error) {
	if m.canSendFunc != nil {
		return m.canSendFunc(ctx, senderID, recipientID)
	}
	return allow(), nil
}
