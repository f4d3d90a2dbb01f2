package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/B01812625/sportgames/internal/models"
)

// CompetitionRepository defines the interface for competition data operations.
type CompetitionRepository interface {
	// List returns every competition, soonest start date first.
	List(ctx context.Context) ([]models.Competition, error)
	// ListNewestFirst returns every competition, latest start date
	// first, for the admin management view.
	ListNewestFirst(ctx context.Context) ([]models.Competition, error)
	// ListOpen returns competitions whose application deadline is
	// after now, soonest start date first.
	ListOpen(ctx context.Context, now time.Time) ([]models.Competition, error)
	// ListUpcoming returns up to limit competitions starting after now.
	ListUpcoming(ctx context.Context, now time.Time, limit int) ([]models.Competition, error)
	FindByID(ctx context.Context, id int64) (*models.Competition, error)
	Create(ctx context.Context, competition *models.Competition) error
	Update(ctx context.Context, competition *models.Competition) error
	Count(ctx context.Context) (int64, error)
	// DeleteCascade removes the competition and every application tied
	// to it in one transaction.
	DeleteCascade(ctx context.Context, id int64) error
}

type competitionRepository struct {
	db *gorm.DB
}

// NewCompetitionRepository creates a new CompetitionRepository instance.
func NewCompetitionRepository(db *gorm.DB) CompetitionRepository {
	return &competitionRepository{db: db}
}

func (r *competitionRepository) List(ctx context.Context) ([]models.Competition, error) {
	var competitions []models.Competition
	err := r.db.WithContext(ctx).Order("start_date asc").Find(&competitions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return competitions, nil
}

func (r *competitionRepository) ListNewestFirst(ctx context.Context) ([]models.Competition, error) {
	var competitions []models.Competition
	err := r.db.WithContext(ctx).Order("start_date desc").Find(&competitions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return competitions, nil
}

func (r *competitionRepository) ListOpen(ctx context.Context, now time.Time) ([]models.Competition, error) {
	var competitions []models.Competition
	err := r.db.WithContext(ctx).
		Where("application_deadline > ?", now).
		Order("start_date asc").
		Find(&competitions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list open competitions: %w", err)
	}
	return competitions, nil
}

func (r *competitionRepository) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]models.Competition, error) {
	var competitions []models.Competition
	err := r.db.WithContext(ctx).
		Where("start_date > ?", now).
		Order("start_date asc").
		Limit(limit).
		Find(&competitions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming competitions: %w", err)
	}
	return competitions, nil
}

func (r *competitionRepository) FindByID(ctx context.Context, id int64) (*models.Competition, error) {
	var competition models.Competition
	err := r.db.WithContext(ctx).First(&competition, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find competition by id %d: %w", id, err)
	}
	return &competition, nil
}

func (r *competitionRepository) Create(ctx context.Context, competition *models.Competition) error {
	if err := r.db.WithContext(ctx).Create(competition).Error; err != nil {
		return fmt.Errorf("failed to create competition: %w", err)
	}
	return nil
}

func (r *competitionRepository) Update(ctx context.Context, competition *models.Competition) error {
	if err := r.db.WithContext(ctx).Save(competition).Error; err != nil {
		return fmt.Errorf("failed to update competition %d: %w", competition.ID, err)
	}
	return nil
}

func (r *competitionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Competition{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count competitions: %w", err)
	}
	return count, nil
}

func (r *competitionRepository) DeleteCascade(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("competition_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Competition{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete competition %d: %w", id, err)
	}
	return nil
}
