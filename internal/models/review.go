package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Rating bounds for a review.
const (
	MinRating = 0
	MaxRating = 5
)

type Review struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID     string        `bson:"owner_id" json:"owner_id"`
	Name        string        `bson:"name" json:"name"`
	Address     string        `bson:"address" json:"address"`
	Rating      int           `bson:"rating" json:"rating"`
	Visited     bool          `bson:"visited" json:"visited"`
	VisitedAt   time.Time     `bson:"visited_at" json:"visited_at"`
	Coordinates []Coordinate  `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	ImageLinks  []string      `bson:"image_links,omitempty" json:"image_links,omitempty"`
}

// Coordinate is a (latitude, longitude) pair kept as text, the way the
// frontend map widget submits it.
type Coordinate struct {
	Latitude  string `bson:"latitude" json:"latitude"`
	Longitude string `bson:"longitude" json:"longitude"`
}
