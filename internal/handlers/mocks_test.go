package handlers

import (
	"context"
	"errors"
	"io"

	"github.com/B01812625/sportgames/internal/models"
	"github.com/B01812625/sportgames/internal/service"
)

// =============================================================================
// Mock AuthService
// =============================================================================

type mockAuthService struct {
	registerFunc      func(ctx context.Context, input service.RegisterInput) (*models.User, error)
	loginFunc         func(ctx context.Context, email, password string, remember bool) (*service.LoginResult, error)
	logoutFunc        func(ctx context.Context, token string) error
	currentUserFunc   func(ctx context.Context, token string) (*models.User, error)
	deleteAccountFunc func(ctx context.Context, user *models.User, password, token string) error
}

func (m *mockAuthService) Register(ctx context.Context, input service.RegisterInput) (*models.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, input)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Login(ctx context.Context, email, password string, remember bool) (*service.LoginResult, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password, remember)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, token)
	}
	return errors.New("not implemented")
}

func (m *mockAuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if m.currentUserFunc != nil {
		return m.currentUserFunc(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) DeleteAccount(ctx context.Context, user *models.User, password, token string) error {
	if m.deleteAccountFunc != nil {
		return m.deleteAccountFunc(ctx, user, password, token)
	}
	return errors.New("not implemented")
}

// =============================================================================
// Mock ApplicationService
// =============================================================================

type mockApplicationService struct {
	submitFunc   func(ctx context.Context, user *models.User, input service.SubmitInput) (*models.Application, error)
	listMineFunc func(ctx context.Context, userID int64) ([]models.Application, error)
	getOwnedFunc func(ctx context.Context, id, userID int64) (*models.Application, error)
	getFunc      func(ctx context.Context, id int64) (*models.Application, error)
}

func (m *mockApplicationService) Submit(ctx context.Context, user *models.User, input service.SubmitInput) (*models.Application, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, user, input)
	}
	return nil, errors.New("not implemented")
}

func (m *mockApplicationService) ListMine(ctx context.Context, userID int64) ([]models.Application, error) {
	if m.listMineFunc != nil {
		return m.listMineFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockApplicationService) GetOwned(ctx context.Context, id, userID int64) (*models.Application, error) {
	if m.getOwnedFunc != nil {
		return m.getOwnedFunc(ctx, id, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockApplicationService) Get(ctx context.Context, id int64) (*models.Application, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Mock DocumentStore
// =============================================================================

type mockDocumentStore struct {
	pathFunc func(userID int64, filename string) string
}

func (m *mockDocumentStore) Save(userID int64, filename string, r io.Reader) (string, error) {
	return filename, nil
}

func (m *mockDocumentStore) Remove(userID int64, filename string) error {
	return nil
}

func (m *mockDocumentStore) Path(userID int64, filename string) string {
	if m.pathFunc != nil {
		return m.pathFunc(userID, filename)
	}
	return filename
}
