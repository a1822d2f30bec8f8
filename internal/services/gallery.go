package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"fotomodel-backend/internal/models"
)

// GalleryPageSize is the fixed page size for the gallery listing.
const GalleryPageSize = 20

// ErrAlreadySaved means the (user, generation result) pair is already in the
// gallery.
var ErrAlreadySaved = errors.New("generation result is already in the gallery")

type GalleryStore interface {
	InsertGalleryItem(userID, resultID uuid.UUID, imageURL, thumbnailURL string, savedAt time.Time) (uuid.UUID, bool, error)
	CountCompletedGenerations(userID uuid.UUID) (int, error)
	ListCompletedGenerations(userID uuid.UUID, limit, offset int) ([]models.GenerationWithResults, error)
}

type GalleryService struct {
	store GalleryStore
}

func NewGalleryService(store GalleryStore) *GalleryService {
	return &GalleryService{store: store}
}

// Save puts a generation result into the user's gallery exactly once. The
// store's conditional insert carries the idempotence; a duplicate surfaces
// as ErrAlreadySaved.
func (s *GalleryService) Save(userID, resultID uuid.UUID, imageURL, thumbnailURL string) (uuid.UUID, error) {
	id, inserted, err := s.store.InsertGalleryItem(userID, resultID, imageURL, thumbnailURL, time.Now().UTC())
	if err != nil {
		return uuid.Nil, err
	}
	if !inserted {
		return uuid.Nil, ErrAlreadySaved
	}

	return id, nil
}

// ListPage returns one page of the user's completed generations with their
// results. Pages are zero-based.
func (s *GalleryService) ListPage(userID uuid.UUID, page int) (models.GalleryListResponse, error) {
	if page < 0 {
		page = 0
	}

	total, err := s.store.CountCompletedGenerations(userID)
	if err != nil {
		return models.GalleryListResponse{}, err
	}

	generations, err := s.store.ListCompletedGenerations(userID, GalleryPageSize, page*GalleryPageSize)
	if err != nil {
		return models.GalleryListResponse{}, err
	}

	responses := make([]models.GenerationResponse, len(generations))
	for i, g := range generations {
		responses[i] = GenerationToResponse(g)
	}

	return models.GalleryListResponse{
		Generations: responses,
		Pagination:  BuildPagination(page, GalleryPageSize, total),
	}, nil
}

// BuildPagination computes the pagination envelope for a zero-based page.
func BuildPagination(page, pageSize, total int) models.Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return models.Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    (page+1)*pageSize < total,
	}
}

// GenerationToResponse maps a generation row and its results to the API shape.
func GenerationToResponse(g models.GenerationWithResults) models.GenerationResponse {
	results := make([]models.GenerationResultResponse, len(g.Results))
	for i, r := range g.Results {
		results[i] = models.GenerationResultResponse{
			ID:          r.ID.String(),
			ImageURL:    r.ImageURL,
			IsPurchased: r.IsPurchased,
		}
		if r.ThumbnailURL.Valid {
			results[i].ThumbnailURL = r.ThumbnailURL.String
		}
	}

	resp := models.GenerationResponse{
		ID:          g.Generation.ID.String(),
		Status:      g.Generation.Status,
		CreditsUsed: g.Generation.CreditsUsed,
		Results:     results,
		CreatedAt:   g.Generation.CreatedAt,
		UpdatedAt:   g.Generation.UpdatedAt,
	}
	if g.Generation.Prompt.Valid {
		resp.Prompt = g.Generation.Prompt.String
	}
	if g.Generation.ErrorMessage.Valid {
		resp.ErrorMessage = g.Generation.ErrorMessage.String
	}

	return resp
}
