package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/B01812625/sportgames/internal/models"
	"github.com/B01812625/sportgames/internal/repository"
)

// dashboardLimit caps the upcoming-competition and recent-pending
// lists on the dashboard.
const dashboardLimit = 3

// DashboardStats is the read-only aggregate view for the admin
// dashboard.
type DashboardStats struct {
	TotalUsers           int64                `json:"total_users"`
	TotalCompetitions    int64                `json:"total_competitions"`
	TotalApplications    int64                `json:"total_applications"`
	PendingApplications  int64                `json:"pending_applications"`
	ApprovedApplications int64                `json:"approved_applications"`
	RejectedApplications int64                `json:"rejected_applications"`
	UpcomingCompetitions []models.Competition `json:"upcoming_competitions"`
	RecentPending        []models.Application `json:"recent_pending"`
}

// AdminService implements the review workflow and dashboard reporting.
type AdminService interface {
	// ListApplications returns applications filtered by status, newest
	// first; filter "all" or "" returns everything.
	ListApplications(ctx context.Context, statusFilter string) ([]models.Application, error)
	// Review records an approve/reject decision with optional notes
	// and stamps the review time. A later review may overwrite an
	// earlier decision.
	Review(ctx context.Context, applicationID int64, decision models.ApplicationStatus, notes string) (*models.Application, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type adminService struct {
	userRepo repository.UserRepository
	compRepo repository.CompetitionRepository
	appRepo  repository.ApplicationRepository
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(
	userRepo repository.UserRepository,
	compRepo repository.CompetitionRepository,
	appRepo repository.ApplicationRepository,
) AdminService {
	return &adminService{
		userRepo: userRepo,
		compRepo: compRepo,
		appRepo:  appRepo,
	}
}

func (s *adminService) ListApplications(ctx context.Context, statusFilter string) ([]models.Application, error) {
	switch statusFilter {
	case "", "all":
		return s.appRepo.ListByStatus(ctx, "")
	case string(models.StatusPending), string(models.StatusApproved), string(models.StatusRejected):
		return s.appRepo.ListByStatus(ctx, models.ApplicationStatus(statusFilter))
	default:
		return nil, ErrInvalidStatusFilter
	}
}

func (s *adminService) Review(ctx context.Context, applicationID int64, decision models.ApplicationStatus, notes string) (*models.Application, error) {
	if decision != models.StatusApproved && decision != models.StatusRejected {
		return nil, ErrInvalidDecision
	}

	application, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	application.Status = decision
	application.Notes = strings.TrimSpace(notes)
	application.ApprovedAt = &now
	if err := s.appRepo.Update(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

func (s *adminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	now := time.Now().UTC()

	var err error
	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCompetitions, err = s.compRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalApplications, err = s.appRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingApplications, err = s.appRepo.CountByStatus(ctx, models.StatusPending); err != nil {
		return nil, err
	}
	if stats.ApprovedApplications, err = s.appRepo.CountByStatus(ctx, models.StatusApproved); err != nil {
		return nil, err
	}
	if stats.RejectedApplications, err = s.appRepo.CountByStatus(ctx, models.StatusRejected); err != nil {
		return nil, err
	}
	if stats.UpcomingCompetitions, err = s.compRepo.ListUpcoming(ctx, now, dashboardLimit); err != nil {
		return nil, err
	}
	if stats.RecentPending, err = s.appRepo.ListRecentPending(ctx, dashboardLimit); err != nil {
		return nil, err
	}

	return stats, nil
}
