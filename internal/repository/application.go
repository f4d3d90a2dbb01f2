package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/B01812625/sportgames/internal/models"
)

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	FindByID(ctx context.Context, id int64) (*models.Application, error)
	// FindByIDAndUser scopes the id lookup to an owner in the same
	// query so a miss and a foreign application are indistinguishable.
	FindByIDAndUser(ctx context.Context, id, userID int64) (*models.Application, error)
	ExistsForUserAndCompetition(ctx context.Context, userID, competitionID int64) (bool, error)
	// ListByUser returns the user's applications, newest submission
	// first, with their competitions.
	ListByUser(ctx context.Context, userID int64) ([]models.Application, error)
	// ListByStatus returns applications, newest submission first, with
	// user and competition; an empty status means all.
	ListByStatus(ctx context.Context, status models.ApplicationStatus) ([]models.Application, error)
	// ListRecentPending returns up to limit pending applications,
	// newest submission first, with user and competition.
	ListRecentPending(ctx context.Context, limit int) ([]models.Application, error)
	Update(ctx context.Context, application *models.Application) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error)
	// ListByCompetition returns the bare applications tied to a
	// competition, used to collect documents before a cascade delete.
	ListByCompetition(ctx context.Context, competitionID int64) ([]models.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository instance.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *applicationRepository) FindByID(ctx context.Context, id int64) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Competition").
		First(&application, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find application by id %d: %w", id, err)
	}
	return &application, nil
}

func (r *applicationRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("Competition").
		Where("id = ? AND user_id = ?", id, userID).
		First(&application).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find application %d for user %d: %w", id, userID, err)
	}
	return &application, nil
}

func (r *applicationRepository) ExistsForUserAndCompetition(ctx context.Context, userID, competitionID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("user_id = ? AND competition_id = ?", userID, competitionID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existing application: %w", err)
	}
	return count > 0, nil
}

func (r *applicationRepository) ListByUser(ctx context.Context, userID int64) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Competition").
		Where("user_id = ?", userID).
		Order("submission_date desc").
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for user %d: %w", userID, err)
	}
	return applications, nil
}

func (r *applicationRepository) ListByStatus(ctx context.Context, status models.ApplicationStatus) ([]models.Application, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Preload("Competition").
		Order("submission_date desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var applications []models.Application
	if err := query.Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

func (r *applicationRepository) ListRecentPending(ctx context.Context, limit int) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Competition").
		Where("status = ?", models.StatusPending).
		Order("submission_date desc").
		Limit(limit).
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent pending applications: %w", err)
	}
	return applications, nil
}

func (r *applicationRepository) Update(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Save(application).Error; err != nil {
		return fmt.Errorf("failed to update application %d: %w", application.ID, err)
	}
	return nil
}

func (r *applicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Application{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

func (r *applicationRepository) CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count %s applications: %w", status, err)
	}
	return count, nil
}

func (r *applicationRepository) ListByCompetition(ctx context.Context, competitionID int64) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Where("competition_id = ?", competitionID).
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for competition %d: %w", competitionID, err)
	}
	return applications, nil
}
