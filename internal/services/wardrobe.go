package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"fotomodel-backend/internal/models"
)

const (
	// DefaultMaxWardrobeItems applies when no plan resolves for the user.
	DefaultMaxWardrobeItems = 5

	// UnlimitedWardrobeItems is the plan sentinel for no cap.
	UnlimitedWardrobeItems = -1
)

type PlanStore interface {
	GetUserPlan(userID uuid.UUID) (*models.SubscriptionPlan, error)
}

type WardrobeStore interface {
	CountWardrobeItems(userID uuid.UUID) (int, error)
	InsertWardrobeItem(item *models.WardrobeItem) (uuid.UUID, bool, error)
}

// WardrobeObjectStore resolves where wardrobe uploads live in object storage.
type WardrobeObjectStore interface {
	WardrobePath(userID uuid.UUID, uploadID string) string
	GetPublicURL(path string) string
}

type WardrobeService struct {
	plans   PlanStore
	items   WardrobeStore
	objects WardrobeObjectStore
}

func NewWardrobeService(plans PlanStore, items WardrobeStore, objects WardrobeObjectStore) *WardrobeService {
	return &WardrobeService{
		plans:   plans,
		items:   items,
		objects: objects,
	}
}

// Capacity reports whether the user may add another wardrobe item. The plan
// lookup and the item count are independent reads, so they are issued
// concurrently and both awaited before the policy is applied. Read-only.
func (s *WardrobeService) Capacity(userID uuid.UUID) (models.WardrobeCapacityResponse, error) {
	var (
		plan     *models.SubscriptionPlan
		count    int
		planErr  error
		countErr error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		plan, planErr = s.plans.GetUserPlan(userID)
	}()
	go func() {
		defer wg.Done()
		count, countErr = s.items.CountWardrobeItems(userID)
	}()
	wg.Wait()

	if planErr != nil {
		return models.WardrobeCapacityResponse{}, planErr
	}
	if countErr != nil {
		return models.WardrobeCapacityResponse{}, countErr
	}

	return EvaluateCapacity(plan, count), nil
}

// EvaluateCapacity applies the wardrobe limit policy. A nil plan falls back
// to the free defaults; max_wardrobe_items of -1 means unlimited.
func EvaluateCapacity(plan *models.SubscriptionPlan, currentCount int) models.WardrobeCapacityResponse {
	slug := "free"
	name := "Free"
	maxItems := DefaultMaxWardrobeItems
	if plan != nil {
		slug = plan.Slug
		name = plan.Name
		maxItems = plan.MaxWardrobeItems
	}

	if maxItems == UnlimitedWardrobeItems {
		return models.WardrobeCapacityResponse{
			CanAddMore:   true,
			IsAtLimit:    false,
			PlanSlug:     slug,
			PlanName:     name,
			MaxItems:     maxItems,
			CurrentCount: currentCount,
			Remaining:    -1,
			IsUnlimited:  true,
		}
	}

	remaining := maxItems - currentCount
	if remaining < 0 {
		remaining = 0
	}
	canAdd := currentCount < maxItems

	return models.WardrobeCapacityResponse{
		CanAddMore:   canAdd,
		IsAtLimit:    !canAdd,
		PlanSlug:     slug,
		PlanName:     name,
		MaxItems:     maxItems,
		CurrentCount: currentCount,
		Remaining:    remaining,
		IsUnlimited:  false,
	}
}

// SaveItems records uploads as wardrobe items up to the user's remaining
// capacity. Uploads beyond the cap, and uploads already in the wardrobe,
// count as skipped. The capacity check here is advisory, not transactional;
// concurrent saves can briefly overshoot a plan limit (soft limit).
func (s *WardrobeService) SaveItems(userID uuid.UUID, req models.WardrobeSaveItemsRequest) (models.WardrobeSaveItemsResponse, error) {
	capacity, err := s.Capacity(userID)
	if err != nil {
		return models.WardrobeSaveItemsResponse{}, err
	}

	allowed := len(req.UploadIDs)
	if !capacity.IsUnlimited && capacity.Remaining < allowed {
		allowed = capacity.Remaining
	}

	var collectionID uuid.NullUUID
	if req.CollectionID != "" {
		parsed, err := uuid.Parse(req.CollectionID)
		if err != nil {
			return models.WardrobeSaveItemsResponse{}, fmt.Errorf("invalid collection id: %w", err)
		}
		collectionID = uuid.NullUUID{UUID: parsed, Valid: true}
	}

	itemIDs := make([]string, 0, allowed)
	skipped := len(req.UploadIDs) - allowed
	for _, uploadID := range req.UploadIDs[:allowed] {
		path := s.objects.WardrobePath(userID, uploadID)
		item := &models.WardrobeItem{
			UserID:       userID,
			UploadID:     uploadID,
			CollectionID: collectionID,
			StoragePath:  path,
			ImageURL:     s.objects.GetPublicURL(path),
		}
		if req.Category != "" {
			item.Category.String = req.Category
			item.Category.Valid = true
		}

		id, inserted, err := s.items.InsertWardrobeItem(item)
		if err != nil {
			return models.WardrobeSaveItemsResponse{}, err
		}
		if !inserted {
			skipped++
			continue
		}
		itemIDs = append(itemIDs, id.String())
	}

	saved := len(itemIDs)
	message := fmt.Sprintf("saved %d items", saved)
	if skipped > 0 {
		message = fmt.Sprintf("saved %d items, skipped %d", saved, skipped)
		if !capacity.IsUnlimited && capacity.Remaining < len(req.UploadIDs) {
			message += " (wardrobe limit reached)"
		}
	}

	return models.WardrobeSaveItemsResponse{
		Success: true,
		ItemIDs: itemIDs,
		Saved:   saved,
		Skipped: skipped,
		Message: message,
	}, nil
}
