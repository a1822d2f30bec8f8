package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fotomodel-backend/internal/handlers"
	"fotomodel-backend/internal/models"
	"fotomodel-backend/internal/services"
)

type fakeGalleryStore struct {
	saved   map[uuid.UUID]bool
	inserts int
	total   int
}

func newFakeGalleryStore() *fakeGalleryStore {
	return &fakeGalleryStore{saved: make(map[uuid.UUID]bool)}
}

func (f *fakeGalleryStore) InsertGalleryItem(userID, resultID uuid.UUID, imageURL, thumbnailURL string, savedAt time.Time) (uuid.UUID, bool, error) {
	f.inserts++
	if f.saved[resultID] {
		return uuid.Nil, false, nil
	}
	f.saved[resultID] = true
	return uuid.New(), true, nil
}

func (f *fakeGalleryStore) CountCompletedGenerations(userID uuid.UUID) (int, error) {
	return f.total, nil
}

func (f *fakeGalleryStore) ListCompletedGenerations(userID uuid.UUID, limit, offset int) ([]models.GenerationWithResults, error) {
	return nil, nil
}

func galleryRouter(store *fakeGalleryStore, userID uuid.UUID) *gin.Engine {
	router := authedRouter(userID)
	handler := handlers.NewGalleryHandler(services.NewGalleryService(store))
	router.POST("/api/gallery/save", handler.Save)
	router.GET("/api/gallery", handler.List)
	return router
}

func TestGallerySave_MissingResultID(t *testing.T) {
	store := newFakeGalleryStore()
	router := galleryRouter(store, uuid.New())

	w := doJSON(router, "POST", "/api/gallery/save", models.GallerySaveRequest{
		ImageURL: "https://img.test/a.png",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "generationResultId is required")
	assert.Equal(t, 0, store.inserts)
}

func TestGallerySave_MalformedResultID(t *testing.T) {
	store := newFakeGalleryStore()
	router := galleryRouter(store, uuid.New())

	w := doJSON(router, "POST", "/api/gallery/save", models.GallerySaveRequest{
		GenerationResultID: "not-a-uuid",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid generation result id")
	assert.Equal(t, 0, store.inserts)
}

func TestGallerySave_FirstSaveThenDuplicate(t *testing.T) {
	store := newFakeGalleryStore()
	router := galleryRouter(store, uuid.New())
	body := models.GallerySaveRequest{
		GenerationResultID: uuid.New().String(),
		ImageURL:           "https://img.test/a.png",
	}

	w := doJSON(router, "POST", "/api/gallery/save", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "image saved to gallery")
	assert.Contains(t, w.Body.String(), "galleryItemId")

	w = doJSON(router, "POST", "/api/gallery/save", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already in your gallery")
}

func TestGalleryList_ReturnsPagination(t *testing.T) {
	store := newFakeGalleryStore()
	store.total = 3
	router := galleryRouter(store, uuid.New())

	w := doJSON(router, "GET", "/api/gallery", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"total\":3")
	assert.Contains(t, w.Body.String(), "\"hasMore\":false")
}
