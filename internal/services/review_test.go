package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/adriagil/placelog-api/internal/models"
)

func newReviewService(t *testing.T) (*ReviewService, *mockReviewRepository, *mockReconciler) {
	t.Helper()
	repo := new(mockReviewRepository)
	assets := new(mockReconciler)
	return NewReviewService(repo, assets, madrid(t)), repo, assets
}

func TestReviewService_List(t *testing.T) {
	svc, repo, _ := newReviewService(t)
	ctx := context.Background()

	expected := []models.Review{{Name: "Casa Lucio"}, {Name: "Botín"}}
	repo.On("List", ctx, bson.M{"rating": 5}).Return(expected, nil)

	reviews, err := svc.List(ctx, ReviewFilter{Rating: intPtr(5)})

	require.NoError(t, err)
	assert.Equal(t, expected, reviews)
	repo.AssertExpectations(t)
}

func TestReviewService_Create(t *testing.T) {
	svc, repo, _ := newReviewService(t)
	ctx := context.Background()
	id := bson.NewObjectID()

	t.Run("assigns generated id", func(t *testing.T) {
		review := &models.Review{Name: "Casa Lucio", VisitedAt: time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)}
		repo.On("Insert", ctx, review).Return(id, nil).Once()

		created, err := svc.Create(ctx, review)

		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
		assert.Equal(t, time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC), created.VisitedAt)
	})

	t.Run("defaults missing visit time to now", func(t *testing.T) {
		review := &models.Review{Name: "Botín"}
		repo.On("Insert", ctx, review).Return(id, nil).Once()

		created, err := svc.Create(ctx, review)

		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), created.VisitedAt, time.Minute)
	})

	t.Run("insert failure", func(t *testing.T) {
		review := &models.Review{Name: "broken"}
		repo.On("Insert", ctx, review).Return(bson.ObjectID{}, errors.New("connection reset")).Once()

		_, err := svc.Create(ctx, review)

		assert.ErrorContains(t, err, "failed to create review")
	})

	repo.AssertExpectations(t)
}

func TestReviewService_GetByID(t *testing.T) {
	svc, repo, _ := newReviewService(t)
	ctx := context.Background()
	id := bson.NewObjectID()

	t.Run("found", func(t *testing.T) {
		expected := &models.Review{ID: id, Name: "Casa Lucio"}
		repo.On("GetByID", ctx, id).Return(expected, nil).Once()

		review, err := svc.GetByID(ctx, id.Hex())

		require.NoError(t, err)
		assert.Equal(t, expected, review)
	})

	t.Run("malformed id never reaches the repository", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "not-an-object-id")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("missing review", func(t *testing.T) {
		repo.On("GetByID", ctx, id).Return(nil, nil).Once()

		_, err := svc.GetByID(ctx, id.Hex())

		assert.ErrorIs(t, err, ErrNotFound)
	})

	repo.AssertExpectations(t)
}

func TestReviewService_Update(t *testing.T) {
	ctx := context.Background()
	id := bson.NewObjectID()

	t.Run("updates and re-reads", func(t *testing.T) {
		svc, repo, assets := newReviewService(t)
		current := &models.Review{ID: id, Name: "Casa Lucio"}
		updated := &models.Review{ID: id, Name: "Casa Lucio", Rating: 4}
		repo.On("GetByID", ctx, id).Return(current, nil).Once()
		repo.On("UpdateFields", ctx, id, bson.M{"rating": 4}).Return(nil).Once()
		repo.On("GetByID", ctx, id).Return(updated, nil).Once()

		result, err := svc.Update(ctx, id.Hex(), ReviewPatch{Rating: intPtr(4)})

		require.NoError(t, err)
		assert.Equal(t, updated, result)
		assets.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertExpectations(t)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, repo, _ := newReviewService(t)

		_, err := svc.Update(ctx, "nope", ReviewPatch{Rating: intPtr(4)})

		assert.ErrorIs(t, err, ErrInvalidID)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("missing review", func(t *testing.T) {
		svc, repo, _ := newReviewService(t)
		repo.On("GetByID", ctx, id).Return(nil, nil).Once()

		_, err := svc.Update(ctx, id.Hex(), ReviewPatch{Rating: intPtr(4)})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty patch", func(t *testing.T) {
		svc, repo, _ := newReviewService(t)
		repo.On("GetByID", ctx, id).Return(&models.Review{ID: id}, nil).Once()

		_, err := svc.Update(ctx, id.Hex(), ReviewPatch{})

		assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
		repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("replacing image links reconciles old against new", func(t *testing.T) {
		svc, repo, assets := newReviewService(t)
		oldLinks := []string{"https://res.cloudinary.com/demo/image/upload/a.jpg", "https://res.cloudinary.com/demo/image/upload/b.jpg"}
		newLinks := []string{"https://res.cloudinary.com/demo/image/upload/b.jpg"}
		current := &models.Review{ID: id, ImageLinks: oldLinks}
		updated := &models.Review{ID: id, ImageLinks: newLinks}
		repo.On("GetByID", ctx, id).Return(current, nil).Once()
		assets.On("Reconcile", ctx, oldLinks, newLinks).Once()
		repo.On("UpdateFields", ctx, id, bson.M{"image_links": newLinks}).Return(nil).Once()
		repo.On("GetByID", ctx, id).Return(updated, nil).Once()

		result, err := svc.Update(ctx, id.Hex(), ReviewPatch{ImageLinks: &newLinks})

		require.NoError(t, err)
		assert.Equal(t, newLinks, result.ImageLinks)
		assets.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("clearing image links reconciles against empty slice", func(t *testing.T) {
		svc, repo, assets := newReviewService(t)
		oldLinks := []string{"https://res.cloudinary.com/demo/image/upload/a.jpg"}
		empty := []string{}
		current := &models.Review{ID: id, ImageLinks: oldLinks}
		repo.On("GetByID", ctx, id).Return(current, nil).Once()
		assets.On("Reconcile", ctx, oldLinks, empty).Once()
		repo.On("UpdateFields", ctx, id, bson.M{"image_links": empty}).Return(nil).Once()
		repo.On("GetByID", ctx, id).Return(&models.Review{ID: id, ImageLinks: empty}, nil).Once()

		_, err := svc.Update(ctx, id.Hex(), ReviewPatch{ImageLinks: &empty})

		require.NoError(t, err)
		assets.AssertExpectations(t)
	})
}

func TestReviewService_Delete(t *testing.T) {
	ctx := context.Background()
	id := bson.NewObjectID()

	t.Run("reconciles every image before deleting", func(t *testing.T) {
		svc, repo, assets := newReviewService(t)
		links := []string{"https://res.cloudinary.com/demo/image/upload/a.jpg", "https://res.cloudinary.com/demo/image/upload/b.jpg"}
		repo.On("GetByID", ctx, id).Return(&models.Review{ID: id, ImageLinks: links}, nil).Once()
		assets.On("Reconcile", ctx, links, []string(nil)).Once()
		repo.On("DeleteByID", ctx, id).Return(true, nil).Once()

		err := svc.Delete(ctx, id.Hex())

		require.NoError(t, err)
		assets.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _, _ := newReviewService(t)
		assert.ErrorIs(t, svc.Delete(ctx, "nope"), ErrInvalidID)
	})

	t.Run("missing review", func(t *testing.T) {
		svc, repo, assets := newReviewService(t)
		repo.On("GetByID", ctx, id).Return(nil, nil).Once()

		assert.ErrorIs(t, svc.Delete(ctx, id.Hex()), ErrNotFound)
		assets.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("review vanished mid-delete", func(t *testing.T) {
		svc, repo, assets := newReviewService(t)
		repo.On("GetByID", ctx, id).Return(&models.Review{ID: id}, nil).Once()
		assets.On("Reconcile", ctx, []string(nil), []string(nil)).Once()
		repo.On("DeleteByID", ctx, id).Return(false, nil).Once()

		assert.ErrorIs(t, svc.Delete(ctx, id.Hex()), ErrDeleteFailed)
	})
}
