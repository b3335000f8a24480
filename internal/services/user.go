package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/adriagil/placelog-api/internal/models"
	"github.com/adriagil/placelog-api/internal/repository"
)

// UserService mirrors ReviewService without asset reconciliation: avatar URLs
// are never garbage-collected. User ids come from the identity provider and
// are used verbatim, so there is no id parsing step either.
type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// UserPatch is a partial update where nil means "leave untouched".
type UserPatch struct {
	Alias     *string
	AvatarURL *string
	ExpiresAt *time.Time
}

func (p UserPatch) fields() bson.M {
	fields := bson.M{}
	if p.Alias != nil {
		fields["alias"] = *p.Alias
	}
	if p.AvatarURL != nil {
		fields["avatar_url"] = *p.AvatarURL
	}
	if p.ExpiresAt != nil {
		fields["expires_at"] = *p.ExpiresAt
	}
	return fields
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.LoginAt.IsZero() {
		user.LoginAt = time.Now()
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, patch UserPatch) (*models.User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	fields := patch.fields()
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrNotFound
	}

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDeleteFailed
	}
	return nil
}
