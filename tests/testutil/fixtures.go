package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/adriagil/placelog-api/internal/database"
	"github.com/adriagil/placelog-api/internal/models"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateReview inserts a test review with default values
func (f *Fixtures) CreateReview(t *testing.T, opts ...ReviewOption) *models.Review {
	t.Helper()
	f.counter++

	review := &models.Review{
		OwnerID:   fmt.Sprintf("owner-%d", f.counter),
		Name:      fmt.Sprintf("Place %d", f.counter),
		Address:   fmt.Sprintf("%d Example Street", f.counter),
		Rating:    3,
		VisitedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	for _, opt := range opts {
		opt(review)
	}

	ctx := context.Background()
	result, err := f.db.Database.Collection("reviews").InsertOne(ctx, review)
	if err != nil {
		t.Fatalf("failed to create review: %v", err)
	}
	review.ID = result.InsertedID.(bson.ObjectID)

	return review
}

// ReviewOption configures a test review
type ReviewOption func(*models.Review)

// WithOwner sets the review owner
func WithOwner(ownerID string) ReviewOption {
	return func(r *models.Review) { r.OwnerID = ownerID }
}

// WithName sets the review name
func WithName(name string) ReviewOption {
	return func(r *models.Review) { r.Name = name }
}

// WithRating sets the review rating
func WithRating(rating int) ReviewOption {
	return func(r *models.Review) { r.Rating = rating }
}

// WithVisited sets the visited flag
func WithVisited(visited bool) ReviewOption {
	return func(r *models.Review) { r.Visited = visited }
}

// WithVisitedAt sets the visit time
func WithVisitedAt(at time.Time) ReviewOption {
	return func(r *models.Review) { r.VisitedAt = at }
}

// WithImageLinks sets the hosted image links
func WithImageLinks(links ...string) ReviewOption {
	return func(r *models.Review) { r.ImageLinks = links }
}

// CreateUser inserts a test user with default values
func (f *Fixtures) CreateUser(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	now := time.Now().UTC().Truncate(time.Millisecond)
	user := &models.User{
		ID:        fmt.Sprintf("auth0|%s", uuid.NewString()),
		Email:     fmt.Sprintf("user%d@example.com", f.counter),
		LoginAt:   now,
		ExpiresAt: now.Add(24 * time.Hour),
	}

	for _, opt := range opts {
		opt(user)
	}

	ctx := context.Background()
	if _, err := f.db.Database.Collection("users").InsertOne(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

// UserOption configures a test user
type UserOption func(*models.User)

// WithUserID sets the provider-issued id
func WithUserID(id string) UserOption {
	return func(u *models.User) { u.ID = id }
}

// WithEmail sets the user email
func WithEmail(email string) UserOption {
	return func(u *models.User) { u.Email = email }
}

// WithAlias sets the user alias
func WithAlias(alias string) UserOption {
	return func(u *models.User) { u.Alias = &alias }
}
