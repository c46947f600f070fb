package organizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	organizerRepo "meetly/database/repository/organizer"
	"meetly/models"
	"meetly/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

// ErrInvalidCredentials is returned on a failed login. The reason (unknown
// email vs wrong password) is deliberately not distinguished.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering an already used email.
var ErrEmailTaken = organizerRepo.ErrEmailTaken

// OrganizerService handles organizer account registration and login.
type OrganizerService interface {
	Register(ctx context.Context, name, email, password string) (*models.Organizer, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, id string) (*models.Organizer, error)
}

// DefaultOrganizerService implements OrganizerService.
type DefaultOrganizerService struct {
	Repo organizerRepo.OrganizerRepository
}

// Register creates the organizer account used for the initial deployment setup.
func (s *DefaultOrganizerService) Register(ctx context.Context, name, email, password string) (*models.Organizer, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	organizer := &models.Organizer{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, organizer); err != nil {
		return nil, err
	}
	return organizer, nil
}

// Authenticate verifies the credentials and returns a signed JWT.
func (s *DefaultOrganizerService) Authenticate(ctx context.Context, email, password string) (string, error) {
	organizer, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, organizerRepo.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up organizer: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(organizer.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(organizer.ID, organizer.Email, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (s *DefaultOrganizerService) GetByID(ctx context.Context, id string) (*models.Organizer, error) {
	return s.Repo.GetByID(ctx, id)
}
