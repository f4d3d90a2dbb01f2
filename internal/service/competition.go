package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"gorm.io/gorm"

	"github.com/B01812625/sportgames/internal/models"
	"github.com/B01812625/sportgames/internal/repository"
)

// ErrNameRequired and friends are competition field validation errors.
var (
	ErrNameRequired        = errors.New("competition name is required")
	ErrNameTooLong         = errors.New("competition name must not exceed 100 characters")
	ErrDescriptionRequired = errors.New("competition description is required")
	ErrDatesRequired       = errors.New("start date and application deadline are required")
)

// CompetitionInput carries the fields for creating or updating a
// competition.
type CompetitionInput struct {
	Name                string
	Description         string
	Category            models.Category
	StartDate           time.Time
	ApplicationDeadline time.Time
}

// CompetitionDetail is a competition plus its description rendered
// from markdown for display.
type CompetitionDetail struct {
	models.Competition
	DescriptionHTML string `json:"description_html"`
	Open            bool   `json:"open_for_application"`
}

// CompetitionService implements the competition browsing and
// management workflows.
type CompetitionService interface {
	// List returns all competitions, soonest first. Public.
	List(ctx context.Context) ([]models.Competition, error)
	// ListForAdmin returns all competitions, latest first.
	ListForAdmin(ctx context.Context) ([]models.Competition, error)
	// ListOpen returns competitions still accepting applications at
	// the given instant.
	ListOpen(ctx context.Context, now time.Time) ([]models.Competition, error)
	Get(ctx context.Context, id int64) (*CompetitionDetail, error)
	Create(ctx context.Context, input CompetitionInput) (*models.Competition, error)
	Update(ctx context.Context, id int64, input CompetitionInput) (*models.Competition, error)
	// Delete removes the competition, its applications and their
	// uploaded documents.
	Delete(ctx context.Context, id int64) error
}

type competitionService struct {
	compRepo  repository.CompetitionRepository
	appRepo   repository.ApplicationRepository
	documents DocumentStore
}

// NewCompetitionService creates a new CompetitionService instance.
func NewCompetitionService(
	compRepo repository.CompetitionRepository,
	appRepo repository.ApplicationRepository,
	documents DocumentStore,
) CompetitionService {
	return &competitionService{
		compRepo:  compRepo,
		appRepo:   appRepo,
		documents: documents,
	}
}

func (s *competitionService) List(ctx context.Context) ([]models.Competition, error) {
	return s.compRepo.List(ctx)
}

func (s *competitionService) ListForAdmin(ctx context.Context) ([]models.Competition, error) {
	return s.compRepo.ListNewestFirst(ctx)
}

func (s *competitionService) ListOpen(ctx context.Context, now time.Time) ([]models.Competition, error) {
	return s.compRepo.ListOpen(ctx, now)
}

func (s *competitionService) Get(ctx context.Context, id int64) (*CompetitionDetail, error) {
	competition, err := s.compRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var rendered bytes.Buffer
	if err := goldmark.Convert([]byte(competition.Description), &rendered); err != nil {
		return nil, fmt.Errorf("failed to render competition description: %w", err)
	}

	return &CompetitionDetail{
		Competition:     *competition,
		DescriptionHTML: rendered.String(),
		Open:            competition.IsOpen(time.Now().UTC()),
	}, nil
}

func (s *competitionService) Create(ctx context.Context, input CompetitionInput) (*models.Competition, error) {
	if err := validateCompetitionInput(&input); err != nil {
		return nil, err
	}

	competition := &models.Competition{
		Name:                input.Name,
		Description:         input.Description,
		Category:            input.Category,
		StartDate:           input.StartDate,
		ApplicationDeadline: input.ApplicationDeadline,
	}
	if err := s.compRepo.Create(ctx, competition); err != nil {
		return nil, err
	}
	return competition, nil
}

func (s *competitionService) Update(ctx context.Context, id int64, input CompetitionInput) (*models.Competition, error) {
	if err := validateCompetitionInput(&input); err != nil {
		return nil, err
	}

	competition, err := s.compRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	competition.Name = input.Name
	competition.Description = input.Description
	competition.Category = input.Category
	competition.StartDate = input.StartDate
	competition.ApplicationDeadline = input.ApplicationDeadline
	if err := s.compRepo.Update(ctx, competition); err != nil {
		return nil, err
	}
	return competition, nil
}

func (s *competitionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.compRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	applications, err := s.appRepo.ListByCompetition(ctx, id)
	if err != nil {
		return err
	}
	// Document files first, rows after, matching the account deletion
	// cascade. Missing files are tolerated.
	for _, app := range applications {
		if app.DocumentFilename == nil {
			continue
		}
		if err := s.documents.Remove(app.UserID, *app.DocumentFilename); err != nil {
			return err
		}
	}

	return s.compRepo.DeleteCascade(ctx, id)
}

func validateCompetitionInput(input *CompetitionInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)

	switch {
	case input.Name == "":
		return ErrNameRequired
	case len(input.Name) > 100:
		return ErrNameTooLong
	case input.Description == "":
		return ErrDescriptionRequired
	case !input.Category.Valid():
		return ErrInvalidCategory
	case input.StartDate.IsZero() || input.ApplicationDeadline.IsZero():
		return ErrDatesRequired
	case !input.ApplicationDeadline.Before(input.StartDate):
		return ErrInvalidDates
	}
	return nil
}
