package handler

import (
	"context"

	"github.com/sportsmessenger/backend/internal/model"
	"github.com/sportsmessenger/backend/internal/repository"
	"github.com/sportsmessenger/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Shared mocks for the handler tests
// ---------------------------------------------------------------------------

type mockDB struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockDB) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

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

type mockContactListService struct {
	listContactsFunc func(ctx context.Context, userID string) (*model.ContactList, error)
}

func (m *mockContactListService) ListContacts(ctx context.Context, userID string) (*model.ContactList, error) {
	if m.listContactsFunc != nil {
		return m.listContactsFunc(ctx, userID)
	}
	return &model.ContactList{}, nil
}

type mockExchangeService struct {
	requestFunc    func(ctx context.Context, fromUserID, toUserID string) (*model.ContactExchange, error)
	acceptFunc     func(ctx context.Context, exchangeID, userID string) (*model.ContactExchange, error)
	rejectFunc     func(ctx context.Context, exchangeID, userID string) (*model.ContactExchange, error)
	disconnectFunc func(ctx context.Context, exchangeID, userID string) error
}

func (m *mockExchangeService) Request(ctx context.Context, fromUserID, toUserID string) (*model.ContactExchange, error) {
	if m.requestFunc != nil {
		return m.requestFunc(ctx, fromUserID, toUserID)
	}
	return &model.ContactExchange{}, nil
}
func (m *mockExchangeService) Accept(ctx context.Context, exchangeID, userID string) (*model.ContactExchange, error) {
	if m.acceptFunc != nil {
		return m.acceptFunc(ctx, exchangeID, userID)
	}
	return &model.ContactExchange{}, nil
}
func (m *mockExchangeService) Reject(ctx context.Context, exchangeID, userID string) (*model.ContactExchange, error) {
	if m.rejectFunc != nil {
		return m.rejectFunc(ctx, exchangeID, userID)
	}
	return &model.ContactExchange{}, nil
}
func (m *mockExchangeService) Disconnect(ctx context.Context, exchangeID, userID string) error {
	if m.disconnectFunc != nil {
		return m.disconnectFunc(ctx, exchangeID, userID)
	}
	return nil
}

type mockMessageService struct {
	sendFunc         func(ctx context.Context, senderID, recipientID, content string) (*model.Message, service.Decision, error)
	conversationFunc func(ctx context.Context, userID, contactID string) ([]*model.Message, error)
	limitsFunc       func(ctx context.Context, userID, officialID string) (*service.LimitsReport, error)
	validateFunc     func(ctx context.Context, senderID, recipientID string) (service.Decision, error)
}

func (m *mockMessageService) Send(ctx context.Context, senderID, recipientID, content string) (*model.Message, service.Decision, error) {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, senderID, recipientID, content)
	}
	return &model.Message{}, service.Decision{Allowed: true}, nil
}
func (m *mockMessageService) Conversation(ctx context.Context, userID, contactID string) ([]*model.Message, error) {
	if m.conversationFunc != nil {
		return m.conversationFunc(ctx, userID, contactID)
	}
	return nil, nil
}
func (m *mockMessageService) Limits(ctx context.Context, userID, officialID string) (*service.LimitsReport, error) {
	if m.limitsFunc != nil {
		return m.limitsFunc(ctx, userID, officialID)
	}
	return &service.LimitsReport{}, nil
}
func (m *mockMessageService) Validate(ctx context.Context, senderID, recipientID string) (service.Decision, error) {
	if m.validateFunc != nil {
		return m.validateFunc(ctx, senderID, recipientID)
	}
	return service.Decision{Allowed: true}, nil
}
