package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/B01812625/sportgames/internal/models"
	"github.com/B01812625/sportgames/internal/repository"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Consent  bool
}

// LoginResult is a freshly established session plus its user.
type LoginResult struct {
	Token string
	TTL   time.Duration
	User  *models.User
}

// AuthService implements registration, login, logout and
// account deletion.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string, remember bool) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	// DeleteAccount verifies the password, removes the user's uploaded
	// documents and deletes their applications and the user row
	// atomically. The caller's session is destroyed afterwards.
	DeleteAccount(ctx context.Context, user *models.User, password, token string) error
}

type authService struct {
	userRepo  repository.UserRepository
	appRepo   repository.ApplicationRepository
	sessions  SessionService
	documents DocumentStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	userRepo repository.UserRepository,
	appRepo repository.ApplicationRepository,
	sessions SessionService,
	documents DocumentStore,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		appRepo:   appRepo,
		sessions:  sessions,
		documents: documents,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if !input.Consent {
		return nil, ErrConsentRequired
	}

	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Request binding measures the raw value; padding must not let a
	// too-short or too-long name through.
	if n := utf8.RuneCountInString(username); n < 2 || n > 20 {
		return nil, ErrInvalidUsername
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		ConsentGiven: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique indexes back up the pre-checks under
		// concurrent registration. Either index may have fired, so
		// look the email up again to report the right field.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if _, lookupErr := s.userRepo.FindByEmail(ctx, email); lookupErr == nil {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string, remember bool) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Same error for unknown email and wrong password; anything
		// else is a storage failure and must not read as a 401.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, ttl, err := s.sessions.Create(ctx, user.ID, remember)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, TTL: ttl, User: user}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

func (s *authService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		// The account may have been deleted since the session was
		// issued; treat the session as dead.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) DeleteAccount(ctx context.Context, user *models.User, password, token string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	applications, err := s.appRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	// Documents go first, rows after; a missing file is tolerated but
	// any other storage failure aborts before rows are touched.
	for _, app := range applications {
		if app.DocumentFilename == nil {
			continue
		}
		if err := s.documents.Remove(user.ID, *app.DocumentFilename); err != nil {
			return err
		}
	}

	if err := s.userRepo.DeleteCascade(ctx, user.ID); err != nil {
		return err
	}

	return s.sessions.Destroy(ctx, token)
}
