package models

import "time"

type HealthResponse struct {
	Status string `json:"status"`
}

type CreditTransactionResponse struct {
	ID          string    `json:"id"`
	Amount      int       `json:"amount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreditHistoryResponse struct {
	Transactions []CreditTransactionResponse `json:"transactions"`
	Total        int                         `json:"total"`
	Limit        int                         `json:"limit"`
	Offset       int                         `json:"offset"`
}

type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

type GenerationResultResponse struct {
	ID           string `json:"id"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	IsPurchased  bool   `json:"is_purchased"`
}

type GenerationResponse struct {
	ID           string                     `json:"id"`
	Status       string                     `json:"status"`
	Prompt       string                     `json:"prompt,omitempty"`
	CreditsUsed  int                        `json:"credits_used"`
	ErrorMessage string                     `json:"error_message,omitempty"`
	Results      []GenerationResultResponse `json:"results"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

type GalleryListResponse struct {
	Generations []GenerationResponse `json:"generations"`
	Pagination  Pagination           `json:"pagination"`
}

type GallerySaveResponse struct {
	Success       bool   `json:"success"`
	GalleryItemID string `json:"galleryItemId,omitempty"`
	Message       string `json:"message"`
}

type WardrobeCapacityResponse struct {
	CanAddMore   bool   `json:"canAddMore"`
	IsAtLimit    bool   `json:"isAtLimit"`
	PlanSlug     string `json:"planSlug"`
	PlanName     string `json:"planName"`
	MaxItems     int    `json:"maxItems"`
	CurrentCount int    `json:"currentCount"`
	Remaining    int    `json:"remaining"`
	IsUnlimited  bool   `json:"isUnlimited"`
}

type WardrobeSaveItemsResponse struct {
	Success bool     `json:"success"`
	ItemIDs []string `json:"itemIds"`
	Saved   int      `json:"saved"`
	Skipped int      `json:"skipped"`
	Message string   `json:"message"`
}

type WardrobeItemResponse struct {
	ID           string    `json:"id"`
	UploadID     string    `json:"upload_id"`
	CollectionID string    `json:"collection_id,omitempty"`
	Category     string    `json:"category,omitempty"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type WardrobeListResponse struct {
	Items []WardrobeItemResponse `json:"items"`
}

type UpdateNameResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	FullName string `json:"fullName,omitempty"`
}

type PhoneResponse struct {
	Success bool   `json:"success"`
	Phone   string `json:"phone"`
}

type GenerateBackgroundResponse struct {
	Success   bool   `json:"success"`
	ImageData string `json:"imageData"`
	MimeType  string `json:"mimeType"`
}

type SeedPosesResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type ConversationResponse struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
}
