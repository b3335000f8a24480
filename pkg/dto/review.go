package dto

import "time"

type Coordinate struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type CreateReviewRequest struct {
	OwnerID     string       `json:"owner_id"`
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Rating      int          `json:"rating"`
	Visited     bool         `json:"visited"`
	VisitedAt   *time.Time   `json:"visited_at,omitempty"`
	Coordinates []Coordinate `json:"coordinates,omitempty"`
	ImageLinks  []string     `json:"image_links,omitempty"`
}

// UpdateReviewRequest is a partial update: absent fields stay untouched,
// present fields are applied, including explicit empty lists.
type UpdateReviewRequest struct {
	OwnerID     *string       `json:"owner_id,omitempty"`
	Name        *string       `json:"name,omitempty"`
	Address     *string       `json:"address,omitempty"`
	Rating      *int          `json:"rating,omitempty"`
	Visited     *bool         `json:"visited,omitempty"`
	VisitedAt   *time.Time    `json:"visited_at,omitempty"`
	Coordinates *[]Coordinate `json:"coordinates,omitempty"`
	ImageLinks  *[]string     `json:"image_links,omitempty"`
}

type ReviewResponse struct {
	ID          string       `json:"id"`
	OwnerID     string       `json:"owner_id"`
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Rating      int          `json:"rating"`
	Visited     bool         `json:"visited"`
	VisitedAt   time.Time    `json:"visited_at"`
	Coordinates []Coordinate `json:"coordinates,omitempty"`
	ImageLinks  []string     `json:"image_links,omitempty"`
}
