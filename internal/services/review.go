package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/adriagil/placelog-api/internal/models"
	"github.com/adriagil/placelog-api/internal/repository"
)

// AssetReconciler garbage-collects hosted images dropped from a record.
// Implementations must not block the caller and must not return errors;
// cleanup is best-effort by contract.
type AssetReconciler interface {
	Reconcile(ctx context.Context, oldLinks, newLinks []string)
}

type ReviewService struct {
	repo     repository.ReviewRepository
	assets   AssetReconciler
	location *time.Location
}

func NewReviewService(repo repository.ReviewRepository, assets AssetReconciler, location *time.Location) *ReviewService {
	return &ReviewService{repo: repo, assets: assets, location: location}
}

// ReviewPatch is a partial update where nil means "leave untouched". Non-nil
// pointers apply, including pointers to empty slices, so clearing image links
// is distinct from not mentioning them.
type ReviewPatch struct {
	OwnerID     *string
	Name        *string
	Address     *string
	Rating      *int
	Visited     *bool
	VisitedAt   *time.Time
	Coordinates *[]models.Coordinate
	ImageLinks  *[]string
}

func (p ReviewPatch) fields() bson.M {
	fields := bson.M{}
	if p.OwnerID != nil {
		fields["owner_id"] = *p.OwnerID
	}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Address != nil {
		fields["address"] = *p.Address
	}
	if p.Rating != nil {
		fields["rating"] = *p.Rating
	}
	if p.Visited != nil {
		fields["visited"] = *p.Visited
	}
	if p.VisitedAt != nil {
		fields["visited_at"] = *p.VisitedAt
	}
	if p.Coordinates != nil {
		fields["coordinates"] = *p.Coordinates
	}
	if p.ImageLinks != nil {
		fields["image_links"] = *p.ImageLinks
	}
	return fields
}

func (s *ReviewService) List(ctx context.Context, filter ReviewFilter) ([]models.Review, error) {
	return s.repo.List(ctx, filter.Document(s.location))
}

func (s *ReviewService) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	if review.VisitedAt.IsZero() {
		review.VisitedAt = time.Now()
	}

	id, err := s.repo.Insert(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	review.ID = id
	return review, nil
}

func (s *ReviewService) GetByID(ctx context.Context, id string) (*models.Review, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	review, err := s.repo.GetByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, id string, patch ReviewPatch) (*models.Review, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	current, err := s.repo.GetByID(ctx, objectID)
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

	if patch.ImageLinks != nil {
		s.assets.Reconcile(ctx, current.ImageLinks, *patch.ImageLinks)
	}

	if err := s.repo.UpdateFields(ctx, objectID, fields); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	current, err := s.repo.GetByID(ctx, objectID)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrNotFound
	}

	s.assets.Reconcile(ctx, current.ImageLinks, nil)

	deleted, err := s.repo.DeleteByID(ctx, objectID)
	if err != nil {
		return err
	}
	if !deleted {
		// The review vanished between the fetch and the delete.
		return ErrDeleteFailed
	}
	return nil
}
