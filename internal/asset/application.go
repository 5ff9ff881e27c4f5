package asset

import (
	"context"
	"fmt"
	"strings"

	"github.com/grclabs/asset-api/internal/domain"
	"github.com/grclabs/asset-api/internal/repository"

	"github.com/google/uuid"
)

// ApplicationService manages the business application catalogue.
type ApplicationService struct {
	repo repository.BusinessApplicationRepository
}

// NewApplicationService creates a business application service.
func NewApplicationService(repo repository.BusinessApplicationRepository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

// Create persists one business application.
func (s *ApplicationService) Create(ctx context.Context, app domain.BusinessApplication, userID string) (domain.BusinessApplication, error) {
	if strings.TrimSpace(app.UniqueIdentifier) == "" {
		app.UniqueIdentifier = newIdentifier("BA")
	}

	exists, err := s.repo.ExistsByIdentifier(ctx, app.UniqueIdentifier)
	if err != nil {
		return domain.BusinessApplication{}, fmt.Errorf("failed to check identifier: %w", err)
	}
	if exists {
		return domain.BusinessApplication{}, duplicateErr(app.UniqueIdentifier)
	}

	app.ID = uuid.New()
	app.CreatedBy = userID
	return s.repo.Create(ctx, app)
}

// List returns a page of business applications, most recent first.
func (s *ApplicationService) List(ctx context.Context, limit, offset int) ([]domain.BusinessApplication, error) {
	return s.repo.List(ctx, limit, offset)
}
