package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/B01812625/sportgames/internal/models"
	"github.com/B01812625/sportgames/internal/repository"
	"github.com/B01812625/sportgames/internal/storage"
)

// SubmitInput carries the fields of an application submission. Document
// and DocumentName are both empty when no file was attached.
type SubmitInput struct {
	CompetitionID int64
	TeamName      string
	Notes         string
	Document      io.Reader
	DocumentName  string
}

// ApplicationService implements the application submission workflow.
type ApplicationService interface {
	Submit(ctx context.Context, user *models.User, input SubmitInput) (*models.Application, error)
	// ListMine returns the user's applications, newest first, with
	// their competitions.
	ListMine(ctx context.Context, userID int64) ([]models.Application, error)
	// GetOwned fetches one application by id, scoped to its owner.
	GetOwned(ctx context.Context, id, userID int64) (*models.Application, error)
	// Get fetches one application by id without an ownership scope,
	// for admin use.
	Get(ctx context.Context, id int64) (*models.Application, error)
}

type applicationService struct {
	appRepo     repository.ApplicationRepository
	compRepo    repository.CompetitionRepository
	documents   DocumentStore
	allowedExts map[string]bool
}

// NewApplicationService creates a new ApplicationService instance.
func NewApplicationService(
	appRepo repository.ApplicationRepository,
	compRepo repository.CompetitionRepository,
	documents DocumentStore,
	allowedExtensions []string,
) ApplicationService {
	allowed := make(map[string]bool, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		allowed[strings.ToLower(ext)] = true
	}
	return &applicationService{
		appRepo:     appRepo,
		compRepo:    compRepo,
		documents:   documents,
		allowedExts: allowed,
	}
}

func (s *applicationService) Submit(ctx context.Context, user *models.User, input SubmitInput) (*models.Application, error) {
	now := time.Now().UTC()

	// The whole workflow short-circuits when nothing is open, before
	// any per-competition checks.
	open, err := s.compRepo.ListOpen(ctx, now)
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return nil, ErrNoOpenCompetitions
	}

	competition, err := s.compRepo.FindByID(ctx, input.CompetitionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !competition.IsOpen(now) {
		return nil, ErrCompetitionClosed
	}

	exists, err := s.appRepo.ExistsForUserAndCompetition(ctx, user.ID, competition.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateApplication
	}

	application := &models.Application{
		UserID:         user.ID,
		CompetitionID:  competition.ID,
		Notes:          strings.TrimSpace(input.Notes),
		Status:         models.StatusPending,
		SubmissionDate: now,
	}

	// A blank team name means an individual entry.
	if team := strings.TrimSpace(input.TeamName); team != "" {
		application.TeamName = &team
	}

	if input.Document != nil && input.DocumentName != "" {
		if !s.allowedExts[storage.Extension(input.DocumentName)] {
			return nil, ErrFileTypeNotAllowed
		}
		saved, err := s.documents.Save(user.ID, input.DocumentName, input.Document)
		if err != nil {
			return nil, err
		}
		application.DocumentFilename = &saved
	}

	if err := s.appRepo.Create(ctx, application); err != nil {
		// Undo the file write so a failed submission leaves nothing
		// behind.
		if application.DocumentFilename != nil {
			_ = s.documents.Remove(user.ID, *application.DocumentFilename)
		}
		// A racing submit from another tab loses here on the unique
		// index and gets the same conflict answer as the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}

	return application, nil
}

func (s *applicationService) ListMine(ctx context.Context, userID int64) ([]models.Application, error) {
	return s.appRepo.ListByUser(ctx, userID)
}

func (s *applicationService) GetOwned(ctx context.Context, id, userID int64) (*models.Application, error) {
	application, err := s.appRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return application, nil
}

func (s *applicationService) Get(ctx context.Context, id int64) (*models.Application, error) {
	application, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return application, nil
}
