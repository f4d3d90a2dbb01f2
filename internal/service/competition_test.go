package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/B01812625/sportgames/internal/models"
)

// =============================================================================
// Test Helpers
// =============================================================================

func setupTestCompetitionService(t *testing.T) (*competitionService, *mockCompetitionRepository, *mockApplicationRepository, *mockDocumentStore) {
	t.Helper()

	compRepo := &mockCompetitionRepository{}
	appRepo := &mockApplicationRepository{}
	docs := newMockDocumentStore()

	svc := NewCompetitionService(compRepo, appRepo, docs).(*competitionService)
	return svc, compRepo, appRepo, docs
}

func validInput() CompetitionInput {
	return CompetitionInput{
		Name:                "Autumn Poetry Slam",
		Description:         "An evening of **competitive** poetry.",
		Category:            models.CategoryIndividualTeam,
		StartDate:           time.Date(2026, 10, 20, 18, 0, 0, 0, time.UTC),
		ApplicationDeadline: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

// =============================================================================
// Validation
// =============================================================================

func TestCreateCompetitionValidation(t *testing.T) {
	svc, compRepo, _, _ := setupTestCompetitionService(t)
	compRepo.createFunc = func(ctx context.Context, competition *models.Competition) error {
		t.Fatal("Invalid input must never reach the repository")
		return nil
	}

	tests := []struct {
		name    string
		mutate  func(*CompetitionInput)
		wantErr error
	}{
		{"empty name", func(in *CompetitionInput) { in.Name = "  " }, ErrNameRequired},
		{"name too long", func(in *CompetitionInput) { in.Name = strings.Repeat("x", 101) }, ErrNameTooLong},
		{"empty description", func(in *CompetitionInput) { in.Description = "" }, ErrDescriptionRequired},
		{"bad category", func(in *CompetitionInput) { in.Category = "Solo" }, ErrInvalidCategory},
		{"missing dates", func(in *CompetitionInput) { in.StartDate = time.Time{} }, ErrDatesRequired},
		{"deadline after start", func(in *CompetitionInput) {
			in.ApplicationDeadline = in.StartDate.Add(time.Hour)
		}, ErrInvalidDates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := svc.Create(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateCompetitionSuccess(t *testing.T) {
	svc, compRepo, _, _ := setupTestCompetitionService(t)
	compRepo.createFunc = func(ctx context.Context, competition *models.Competition) error {
		competition.ID = 8
		return nil
	}

	competition, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if competition.ID != 8 {
		t.Errorf("Expected assigned id, got %d", competition.ID)
	}
}

func TestUpdateCompetitionNotFound(t *testing.T) {
	svc, compRepo, _, _ := setupTestCompetitionService(t)
	compRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Competition, error) {
		return nil, gorm.ErrRecordNotFound
	}

	_, err := svc.Update(context.Background(), 99, validInput())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// =============================================================================
// Detail rendering
// =============================================================================

func TestGetRendersMarkdown(t *testing.T) {
	svc, compRepo, _, _ := setupTestCompetitionService(t)
	compRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Competition, error) {
		return &models.Competition{
			ID:                  id,
			Name:                "Autumn Poetry Slam",
			Description:         "An evening of **competitive** poetry.",
			ApplicationDeadline: time.Now().Add(time.Hour),
		}, nil
	}

	detail, err := svc.Get(context.Background(), 8)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !strings.Contains(detail.DescriptionHTML, "<strong>competitive</strong>") {
		t.Errorf("Expected rendered markdown, got %q", detail.DescriptionHTML)
	}
	if !detail.Open {
		t.Error("Competition with a future deadline must read as open")
	}
}

// =============================================================================
// Cascade delete
// =============================================================================

func TestDeleteCompetitionCascades(t *testing.T) {
	svc, compRepo, appRepo, docs := setupTestCompetitionService(t)
	compRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Competition, error) {
		return &models.Competition{ID: id}, nil
	}

	docA, docB := "teamA.pdf", "teamB.docx"
	appRepo.listByCompetitionFunc = func(ctx context.Context, competitionID int64) ([]models.Application, error) {
		return []models.Application{
			{ID: 1, UserID: 5, CompetitionID: competitionID, DocumentFilename: &docA},
			{ID: 2, UserID: 6, CompetitionID: competitionID, DocumentFilename: &docB},
			{ID: 3, UserID: 7, CompetitionID: competitionID},
		}, nil
	}
	var cascaded int64
	compRepo.deleteCascadeFunc = func(ctx context.Context, id int64) error {
		cascaded = id
		return nil
	}

	if err := svc.Delete(context.Background(), 8); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if cascaded != 8 {
		t.Errorf("Expected cascade of competition 8, got %d", cascaded)
	}
	if len(docs.removed) != 2 {
		t.Errorf("Expected 2 documents removed, got %v", docs.removed)
	}
}

func TestDeleteCompetitionStorageFailureAborts(t *testing.T) {
	svc, compRepo, appRepo, docs := setupTestCompetitionService(t)
	compRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Competition, error) {
		return &models.Competition{ID: id}, nil
	}
	doc := "teamA.pdf"
	docs.rmErr = errors.New("disk detached")
	appRepo.listByCompetitionFunc = func(ctx context.Context, competitionID int64) ([]models.Application, error) {
		return []models.Application{{ID: 1, UserID: 5, DocumentFilename: &doc}}, nil
	}
	compRepo.deleteCascadeFunc = func(ctx context.Context, id int64) error {
		t.Fatal("Rows must not be deleted when storage fails")
		return nil
	}

	if err := svc.Delete(context.Background(), 8); err == nil {
		t.Fatal("Expected a storage error")
	}
}
