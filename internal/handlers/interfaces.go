package handlers

import (
	"context"

	"github.com/adriagil/placelog-api/internal/models"
	"github.com/adriagil/placelog-api/internal/services"
)

// ReviewServiceInterface defines the methods used by handlers from ReviewService
type ReviewServiceInterface interface {
	List(ctx context.Context, filter services.ReviewFilter) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	GetByID(ctx context.Context, id string) (*models.Review, error)
	Update(ctx context.Context, id string, patch services.ReviewPatch) (*models.Review, error)
	Delete(ctx context.Context, id string) error
}

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, patch services.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
