package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fotomodel-backend/internal/handlers"
	"fotomodel-backend/internal/models"
	"fotomodel-backend/internal/services"
)

type wardrobePlanStore struct {
	plan *models.SubscriptionPlan
}

func (s *wardrobePlanStore) GetUserPlan(userID uuid.UUID) (*models.SubscriptionPlan, error) {
	return s.plan, nil
}

type wardrobeItemStore struct {
	count    int
	inserted int
}

func (s *wardrobeItemStore) CountWardrobeItems(userID uuid.UUID) (int, error) {
	return s.count, nil
}

func (s *wardrobeItemStore) InsertWardrobeItem(item *models.WardrobeItem) (uuid.UUID, bool, error) {
	s.inserted++
	return uuid.New(), true, nil
}

type wardrobeObjects struct{}

func (wardrobeObjects) WardrobePath(userID uuid.UUID, uploadID string) string {
	return "users/" + userID.String() + "/wardrobe/" + uploadID
}

func (wardrobeObjects) GetPublicURL(path string) string {
	return "https://storage.test/" + path
}

func wardrobeRouter(plans *wardrobePlanStore, items *wardrobeItemStore, userID uuid.UUID) *gin.Engine {
	router := authedRouter(userID)
	service := services.NewWardrobeService(plans, items, wardrobeObjects{})
	handler := handlers.NewWardrobeHandler(service, nil, nil)
	router.GET("/api/wardrobe/can-add", handler.CanAdd)
	router.POST("/api/wardrobe/save-items", handler.SaveItems)
	return router
}

func TestWardrobeCanAdd_FreeUserDefaults(t *testing.T) {
	router := wardrobeRouter(&wardrobePlanStore{}, &wardrobeItemStore{count: 2}, uuid.New())

	w := doJSON(router, "GET", "/api/wardrobe/can-add", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"canAddMore\":true")
	assert.Contains(t, w.Body.String(), "\"planSlug\":\"free\"")
	assert.Contains(t, w.Body.String(), "\"remaining\":3")
}

func TestWardrobeCanAdd_AtLimit(t *testing.T) {
	plan := &models.SubscriptionPlan{ID: uuid.New(), Slug: "starter", Name: "Starter", MaxWardrobeItems: 10}
	router := wardrobeRouter(&wardrobePlanStore{plan: plan}, &wardrobeItemStore{count: 10}, uuid.New())

	w := doJSON(router, "GET", "/api/wardrobe/can-add", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"canAddMore\":false")
	assert.Contains(t, w.Body.String(), "\"isAtLimit\":true")
}

func TestWardrobeSaveItems_EmptyUploadsRejected(t *testing.T) {
	items := &wardrobeItemStore{}
	router := wardrobeRouter(&wardrobePlanStore{}, items, uuid.New())

	w := doJSON(router, "POST", "/api/wardrobe/save-items", models.WardrobeSaveItemsRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "uploadIds cannot be empty")
	assert.Equal(t, 0, items.inserted)
}

func TestWardrobeSaveItems_SavesWithinCapacity(t *testing.T) {
	items := &wardrobeItemStore{count: 0}
	router := wardrobeRouter(&wardrobePlanStore{}, items, uuid.New())

	w := doJSON(router, "POST", "/api/wardrobe/save-items", models.WardrobeSaveItemsRequest{
		UploadIDs: []string{"u1", "u2"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, items.inserted)
	assert.Contains(t, w.Body.String(), "\"saved\":2")
}
