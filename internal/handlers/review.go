package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/adriagil/placelog-api/internal/models"
	"github.com/adriagil/placelog-api/internal/services"
	"github.com/adriagil/placelog-api/pkg/dto"
)

const dateLayout = "2006-01-02"

type ReviewHandler struct {
	reviewService ReviewServiceInterface
}

func NewReviewHandler(reviewService ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) List(c *drift.Context) {
	var filter services.ReviewFilter

	if v := c.QueryParam("owner_id"); v != "" {
		filter.OwnerID = &v
	}
	if v := c.QueryParam("name"); v != "" {
		filter.Name = &v
	}
	if v := c.QueryParam("rating"); v != "" {
		rating, err := strconv.Atoi(v)
		if err != nil {
			c.BadRequest("invalid rating")
			return
		}
		filter.Rating = &rating
	}
	if v := c.QueryParam("visited"); v != "" {
		visited, err := strconv.ParseBool(v)
		if err != nil {
			c.BadRequest("invalid visited flag")
			return
		}
		filter.Visited = &visited
	}
	if v := c.QueryParam("from"); v != "" {
		from, err := time.Parse(dateLayout, v)
		if err != nil {
			c.BadRequest("invalid from date, expected YYYY-MM-DD")
			return
		}
		filter.From = &from
	}
	if v := c.QueryParam("to"); v != "" {
		to, err := time.Parse(dateLayout, v)
		if err != nil {
			c.BadRequest("invalid to date, expected YYYY-MM-DD")
			return
		}
		filter.To = &to
	}

	reviews, err := h.reviewService.List(context.Background(), filter)
	if err != nil {
		c.InternalServerError("failed to list reviews")
		return
	}

	response := make([]dto.ReviewResponse, len(reviews))
	for i, review := range reviews {
		response[i] = toReviewResponse(&review)
	}

	_ = c.JSON(200, response)
}

func (h *ReviewHandler) Create(c *drift.Context) {
	var req dto.CreateReviewRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.OwnerID == "" {
		c.BadRequest("owner_id is required")
		return
	}
	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}
	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		c.BadRequest("rating must be between 0 and 5")
		return
	}

	review := &models.Review{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Address:     req.Address,
		Rating:      req.Rating,
		Visited:     req.Visited,
		Coordinates: toModelCoordinates(req.Coordinates),
		ImageLinks:  req.ImageLinks,
	}
	if req.VisitedAt != nil {
		review.VisitedAt = *req.VisitedAt
	}

	created, err := h.reviewService.Create(context.Background(), review)
	if err != nil {
		c.InternalServerError("failed to create review")
		return
	}

	_ = c.JSON(201, toReviewResponse(created))
}

func (h *ReviewHandler) Get(c *drift.Context) {
	review, err := h.reviewService.GetByID(context.Background(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "failed to get review")
		return
	}

	_ = c.JSON(200, toReviewResponse(review))
}

func (h *ReviewHandler) Update(c *drift.Context) {
	var req dto.UpdateReviewRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Rating != nil && (*req.Rating < models.MinRating || *req.Rating > models.MaxRating) {
		c.BadRequest("rating must be between 0 and 5")
		return
	}

	patch := services.ReviewPatch{
		OwnerID:    req.OwnerID,
		Name:       req.Name,
		Address:    req.Address,
		Rating:     req.Rating,
		Visited:    req.Visited,
		VisitedAt:  req.VisitedAt,
		ImageLinks: req.ImageLinks,
	}
	if req.Coordinates != nil {
		coordinates := toModelCoordinates(*req.Coordinates)
		patch.Coordinates = &coordinates
	}

	updated, err := h.reviewService.Update(context.Background(), c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, err, "failed to update review")
		return
	}

	_ = c.JSON(200, toReviewResponse(updated))
}

func (h *ReviewHandler) Delete(c *drift.Context) {
	if err := h.reviewService.Delete(context.Background(), c.Param("id")); err != nil {
		respondServiceError(c, err, "failed to delete review")
		return
	}

	c.Response.WriteHeader(http.StatusNoContent)
}

// respondServiceError maps every domain error onto 404, matching the
// original API contract, and everything else onto 500.
func respondServiceError(c *drift.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrNoFieldsToUpdate),
		errors.Is(err, services.ErrDeleteFailed):
		c.NotFound(err.Error())
	default:
		c.InternalServerError(fallback)
	}
}

func toReviewResponse(review *models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:          review.ID.Hex(),
		OwnerID:     review.OwnerID,
		Name:        review.Name,
		Address:     review.Address,
		Rating:      review.Rating,
		Visited:     review.Visited,
		VisitedAt:   review.VisitedAt,
		Coordinates: toDTOCoordinates(review.Coordinates),
		ImageLinks:  review.ImageLinks,
	}
}

func toModelCoordinates(coordinates []dto.Coordinate) []models.Coordinate {
	if coordinates == nil {
		return nil
	}
	result := make([]models.Coordinate, len(coordinates))
	for i, coordinate := range coordinates {
		result[i] = models.Coordinate{Latitude: coordinate.Latitude, Longitude: coordinate.Longitude}
	}
	return result
}

func toDTOCoordinates(coordinates []models.Coordinate) []dto.Coordinate {
	if coordinates == nil {
		return nil
	}
	result := make([]dto.Coordinate, len(coordinates))
	for i, coordinate := range coordinates {
		result[i] = dto.Coordinate{Latitude: coordinate.Latitude, Longitude: coordinate.Longitude}
	}
	return result
}
