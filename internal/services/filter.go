package services

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ReviewFilter holds the optional, independent list criteria. A nil field
// imposes no constraint.
type ReviewFilter struct {
	OwnerID *string
	Name    *string
	Rating  *int
	Visited *bool
	From    *time.Time
	To      *time.Time
}

// Document combines the present criteria into a single query document with
// AND semantics. Zero criteria produce an empty document that matches every
// review. From/To carry only a calendar date; they expand to the first and
// last instant of that day in loc.
func (f ReviewFilter) Document(loc *time.Location) bson.M {
	filter := bson.M{}

	if f.OwnerID != nil {
		filter["owner_id"] = *f.OwnerID
	}
	if f.Name != nil {
		filter["name"] = bson.M{"$regex": *f.Name, "$options": "i"}
	}
	if f.Rating != nil {
		filter["rating"] = *f.Rating
	}
	if f.Visited != nil {
		filter["visited"] = *f.Visited
	}

	if f.From != nil || f.To != nil {
		visited := bson.M{}
		if f.From != nil {
			y, m, d := f.From.Date()
			visited["$gte"] = time.Date(y, m, d, 0, 0, 0, 0, loc)
		}
		if f.To != nil {
			y, m, d := f.To.Date()
			visited["$lte"] = time.Date(y, m, d, 23, 59, 59, 999999999, loc)
		}
		filter["visited_at"] = visited
	}

	return filter
}
