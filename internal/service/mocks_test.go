package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/B01812625/sportgames/internal/models"
)

// =============================================================================
// Mock Repositories
// =============================================================================

type mockUserRepository struct {
	findByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
	findByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	findByIDFunc       func(ctx context.Context, id int64) (*models.User, error)
	createFunc         func(ctx context.Context, user *models.User) error
	countFunc          func(ctx context.Context) (int64, error)
	deleteCascadeFunc  func(ctx context.Context, id int64) error
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockUserRepository) DeleteCascade(ctx context.Context, id int64) error {
	if m.deleteCascadeFunc != nil {
		return m.deleteCascadeFunc(ctx, id)
	}
	return errors.New("not implemented")
}

type mockCompetitionRepository struct {
	listFunc            func(ctx context.Context) ([]models.Competition, error)
	listNewestFirstFunc func(ctx context.Context) ([]models.Competition, error)
	listOpenFunc        func(ctx context.Context, now time.Time) ([]models.Competition, error)
	listUpcomingFunc    func(ctx context.Context, now time.Time, limit int) ([]models.Competition, error)
	findByIDFunc        func(ctx context.Context, id int64) (*models.Competition, error)
	createFunc          func(ctx context.Context, competition *models.Competition) error
	updateFunc          func(ctx context.Context, competition *models.Competition) error
	countFunc           func(ctx context.Context) (int64, error)
	deleteCascadeFunc   func(ctx context.Context, id int64) error
}

func (m *mockCompetitionRepository) List(ctx context.Context) ([]models.Competition, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCompetitionRepository) ListNewestFirst(ctx context.Context) ([]models.Competition, error) {
	if m.listNewestFirstFunc != nil {
		return m.listNewestFirstFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCompetitionRepository) ListOpen(ctx context.Context, now time.Time) ([]models.Competition, error) {
	if m.listOpenFunc != nil {
		return m.listOpenFunc(ctx, now)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCompetitionRepository) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]models.Competition, error) {
	if m.listUpcomingFunc != nil {
		return m.listUpcomingFunc(ctx, now, limit)
	}
	return nil, nil
}

func (m *mockCompetitionRepository) FindByID(ctx context.Context, id int64) (*models.Competition, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCompetitionRepository) Create(ctx context.Context, competition *models.Competition) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, competition)
	}
	return errors.New("not implemented")
}

func (m *mockCompetitionRepository) Update(ctx context.Context, competition *models.Competition) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, competition)
	}
	return errors.New("not implemented")
}

func (m *mockCompetitionRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockCompetitionRepository) DeleteCascade(ctx context.Context, id int64) error {
	if m.deleteCascadeFunc != nil {
		return m.deleteCascadeFunc(ctx, id)
	}
	return errors.New("not implemented")
}

type mockApplicationRepository struct {
	createFunc            func(ctx context.Context, application *models.Application) error
	findByIDFunc          func(ctx context.Context, id int64) (*models.Application, error)
	findByIDAndUserFunc   func(ctx context.Context, id, userID int64) (*models.Application, error)
	existsFunc            func(ctx context.Context, userID, competitionID int64) (bool, error)
	listByUserFunc        func(ctx context.Context, userID int64) ([]models.Application, error)
	listByStatusFunc      func(ctx context.Context, status models.ApplicationStatus) ([]models.Application, error)
	listRecentPendingFunc func(ctx context.Context, limit int) ([]models.Application, error)
	updateFunc            func(ctx context.Context, application *models.Application) error
	countFunc             func(ctx context.Context) (int64, error)
	countByStatusFunc     func(ctx context.Context, status models.ApplicationStatus) (int64, error)
	listByCompetitionFunc func(ctx context.Context, competitionID int64) ([]models.Application, error)
}

func (m *mockApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, application)
	}
	return errors.New("not implemented")
}

func (m *mockApplicationRepository) FindByID(ctx context.Context, id int64) (*models.Application, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockApplicationRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (*models.Application, error) {
	if m.findByIDAndUserFunc != nil {
		return m.findByIDAndUserFunc(ctx, id, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockApplicationRepository) ExistsForUserAndCompetition(ctx context.Context, userID, competitionID int64) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, userID, competitionID)
	}
	return false, nil
}

func (m *mockApplicationRepository) ListByUser(ctx context.Context, userID int64) ([]models.Application, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockApplicationRepository) ListByStatus(ctx context.Context, status models.ApplicationStatus) ([]models.Application, error) {
	if m.listByStatusFunc != nil {
		return m.listByStatusFunc(ctx, status)
	}
	return nil, errors.New("not implemented")
}

func (m *mockApplicationRepository) ListRecentPending(ctx context.Context, limit int) ([]models.Application, error) {
	if m.listRecentPendingFunc != nil {
		return m.listRecentPendingFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockApplicationRepository) Update(ctx context.Context, application *models.Application) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, application)
	}
	return errors.New("not implemented")
}

func (m *mockApplicationRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockApplicationRepository) CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error) {
	if m.countByStatusFunc != nil {
		return m.countByStatusFunc(ctx, status)
	}
	return 0, nil
}

func (m *mockApplicationRepository) ListByCompetition(ctx context.Context, competitionID int64) ([]models.Application, error) {
	if m.listByCompetitionFunc != nil {
		return m.listByCompetitionFunc(ctx, competitionID)
	}
	return nil, nil
}

// =============================================================================
// Mock Document Store
// =============================================================================

// mockDocumentStore records saves and removals in memory.
type mockDocumentStore struct {
	mu      sync.Mutex
	saved   map[string][]byte
	removed []string
	saveErr error
	rmErr   error
}

func newMockDocumentStore() *mockDocumentStore {
	return &mockDocumentStore{saved: make(map[string][]byte)}
}

func (m *mockDocumentStore) Save(userID int64, filename string, r io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved[m.Path(userID, filename)] = buf.Bytes()
	return filename, nil
}

func (m *mockDocumentStore) Remove(userID int64, filename string) error {
	if m.rmErr != nil {
		return m.rmErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path := m.Path(userID, filename)
	delete(m.saved, path)
	m.removed = append(m.removed, path)
	return nil
}

func (m *mockDocumentStore) Path(userID int64, filename string) string {
	return fmt.Sprintf("%d/%s", userID, filename)
}
